// Package deck imports markdown decks from a request body, a local
// directory or a git repository.
package deck

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/conorfennell/leitner/internal/domain"
	"github.com/conorfennell/leitner/internal/gitsource"
	"github.com/conorfennell/leitner/internal/parser"
	"go.uber.org/zap"
)

// CardImporter stores parsed cards for an owner, skipping ones it already has.
type CardImporter interface {
	ImportCards(ctx context.Context, ownerID string, cards []domain.Card) (domain.ImportReport, error)
}

// Importer turns deck sources into cards.
type Importer struct {
	cards    CardImporter
	reposDir string
	log      *zap.Logger
}

// NewImporter returns an Importer that clones git decks under reposDir.
func NewImporter(cards CardImporter, reposDir string, log *zap.Logger) *Importer {
	return &Importer{cards: cards, reposDir: reposDir, log: log}
}

// ImportReader imports a single markdown deck read from r.
func (im *Importer) ImportReader(ctx context.Context, ownerID string, r io.Reader) (domain.ImportReport, error) {
	cards, parseErr := parser.Parse(r)
	if parseErr != nil && len(cards) == 0 {
		return domain.ImportReport{}, parseErr
	}

	report, err := im.cards.ImportCards(ctx, ownerID, cards)
	if err != nil {
		return domain.ImportReport{}, err
	}
	if parseErr != nil {
		report.Errors = append(report.Errors, parseErr.Error())
	}
	return report, nil
}

// ImportSource imports every .md file under source. A git URL is cloned or
// pulled into the repos directory first.
func (im *Importer) ImportSource(ctx context.Context, ownerID, source string) (domain.ImportReport, error) {
	dir := source
	if gitsource.IsGitURL(source) {
		local, err := gitsource.LocalPath(im.reposDir, source)
		if err != nil {
			return domain.ImportReport{}, err
		}
		if err := gitsource.Sync(ctx, im.log, source, local); err != nil {
			return domain.ImportReport{}, err
		}
		dir = local
	}
	return im.importDir(ctx, ownerID, dir)
}

func (im *Importer) importDir(ctx context.Context, ownerID, dir string) (domain.ImportReport, error) {
	var (
		cards      []domain.Card
		fileErrors []string
	)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		fileCards, parseErr := parser.ParseFile(path)
		if parseErr != nil {
			fileErrors = append(fileErrors, fmt.Sprintf("%s: %v", path, parseErr))
		}
		cards = append(cards, fileCards...)
		return nil
	})
	if walkErr != nil {
		return domain.ImportReport{}, fmt.Errorf("error walking directory %s: %w", dir, walkErr)
	}

	report, err := im.cards.ImportCards(ctx, ownerID, cards)
	if err != nil {
		return domain.ImportReport{}, err
	}
	report.Errors = append(report.Errors, fileErrors...)

	im.log.Info("deck import complete",
		zap.String("owner", ownerID),
		zap.String("path", dir),
		zap.Int("parsed", report.Parsed),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("errors", len(report.Errors)),
	)
	return report, nil
}
