// Package parser reads flashcard decks written in markdown.
//
// A deck is a sequence of cards. Each card starts with a "Q:" line,
// followed by an "A:" line and an optional "I:" image line. Any of them may
// continue over several lines. Cards are separated by a new "Q:" or a "---"
// line; anything before the first "Q:" is ignored.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conorfennell/leitner/internal/domain"
)

const (
	questionPrefix = "Q:"
	answerPrefix   = "A:"
	imagePrefix    = "I:"
	separator      = "---"

	// maxLineBytes bounds a single deck line. It matches the largest
	// deck accepted over HTTP.
	maxLineBytes = 1 << 20
)

type state int

const (
	seeking state = iota
	readingQuestion
	readingAnswer
	readingImage
)

// ParseFile reads a deck from the file at path.
func ParseFile(path string) ([]domain.Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a deck from r. Only Question, Answer and Image are set on the
// returned cards. A card with a question but no answer is reported as an error
// alongside the cards that did parse.
func Parse(r io.Reader) ([]domain.Card, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var (
		cards   []domain.Card
		current domain.Card
		block   []string
		line    int
		start   int
		missing []int
	)
	st := seeking

	flushBlock := func() {
		if len(block) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(block, "\n"))
		switch st {
		case readingQuestion:
			current.Question = content
		case readingAnswer:
			current.Answer = content
		case readingImage:
			current.Image = content
		}
		block = nil
	}

	finishCard := func() {
		flushBlock()
		if current.Question != "" {
			if current.Answer == "" {
				missing = append(missing, start)
			} else {
				cards = append(cards, current)
			}
		}
		current = domain.Card{}
		st = seeking
	}

	for scanner.Scan() {
		line++
		text := scanner.Text()

		if strings.TrimSpace(text) == separator {
			finishCard()
			continue
		}

		next, rest, ok := prefixed(text)
		if !ok {
			if st != seeking {
				block = append(block, text)
			}
			continue
		}

		if next == readingQuestion {
			finishCard()
			start = line
		} else if st == seeking {
			// Answer or image with no question: skip until the next card.
			continue
		} else {
			flushBlock()
		}
		st = next
		block = append(block, rest)
	}
	finishCard()

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d longer than %d bytes", domain.ErrValidation, line+1, maxLineBytes)
		}
		return nil, err
	}
	if len(missing) > 0 {
		return cards, fmt.Errorf("%w: question without answer at line(s) %v", domain.ErrValidation, missing)
	}
	return cards, nil
}

func prefixed(line string) (state, string, bool) {
	for _, p := range []struct {
		prefix string
		state  state
	}{
		{questionPrefix, readingQuestion},
		{answerPrefix, readingAnswer},
		{imagePrefix, readingImage},
	} {
		if strings.HasPrefix(line, p.prefix) {
			return p.state, strings.TrimPrefix(line[len(p.prefix):], " "), true
		}
	}
	return seeking, "", false
}
