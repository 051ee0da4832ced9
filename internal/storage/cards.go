package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/conorfennell/leitner/internal/domain"
	"github.com/conorfennell/leitner/internal/streak"
)

const cardColumns = `id, owner_id, question, answer, image, box, next_review_date, content_hash, created_at, updated_at`

// InsertCard inserts a new card.
func (db *DB) InsertCard(ctx context.Context, card domain.Card) error {
	_, err := db.exec(ctx, `
		INSERT INTO cards (`+cardColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		card.ID,
		card.OwnerID,
		card.Question,
		card.Answer,
		card.Image,
		card.Box,
		dbTime(card.NextReviewDate),
		card.ContentHash,
		dbTime(card.CreatedAt),
		dbTime(card.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert card %s: %w", card.ID, err)
	}
	return nil
}

// FindCard returns the card with id if ownerID owns it.
func (db *DB) FindCard(ctx context.Context, ownerID, id string) (domain.Card, error) {
	var card domain.Card
	err := db.get(ctx, &card, `
		SELECT `+cardColumns+`
		FROM cards WHERE id = ? AND owner_id = ?
	`, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Card{}, fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
		}
		return domain.Card{}, fmt.Errorf("failed to find card %s: %w", id, err)
	}
	return card, nil
}

// ListCards returns every card of ownerID, oldest first.
func (db *DB) ListCards(ctx context.Context, ownerID string) ([]domain.Card, error) {
	cards := []domain.Card{}
	err := db.selectAll(ctx, &cards, `
		SELECT `+cardColumns+`
		FROM cards WHERE owner_id = ?
		ORDER BY created_at ASC, id ASC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for owner %s: %w", ownerID, err)
	}
	return cards, nil
}

// DueCards returns the cards of ownerID due at or before asOf, earliest due first.
func (db *DB) DueCards(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error) {
	cards := []domain.Card{}
	err := db.selectAll(ctx, &cards, `
		SELECT `+cardColumns+`
		FROM cards WHERE owner_id = ? AND next_review_date <= ?
		ORDER BY next_review_date ASC, id ASC
	`, ownerID, asOf.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get due cards for owner %s: %w", ownerID, err)
	}
	return cards, nil
}

// UpdateCardSchedule stores the box, next review date and image of card.
func (db *DB) UpdateCardSchedule(ctx context.Context, card domain.Card) error {
	n, err := db.exec(ctx, `
		UPDATE cards
		SET box = ?, next_review_date = ?, image = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`,
		card.Box,
		dbTime(card.NextReviewDate),
		card.Image,
		dbTime(card.UpdatedAt),
		card.ID,
		card.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule for card %s: %w", card.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("card %s: %w", card.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteCard removes the card with id if ownerID owns it.
func (db *DB) DeleteCard(ctx context.Context, ownerID, id string) error {
	n, err := db.exec(ctx, `
		DELETE FROM cards
		WHERE id = ? AND owner_id = ?
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete card %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ContentHashes returns the set of content hashes of ownerID's cards.
func (db *DB) ContentHashes(ctx context.Context, ownerID string) (map[string]struct{}, error) {
	var hashes []string
	err := db.selectAll(ctx, &hashes, `
		SELECT DISTINCT content_hash FROM cards WHERE owner_id = ?
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content hashes for owner %s: %w", ownerID, err)
	}
	set := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		set[h] = struct{}{}
	}
	return set, nil
}

// CountDay splits ownerID's cards into those due by endOfDay and those
// scheduled after it.
func (db *DB) CountDay(ctx context.Context, ownerID string, endOfDay time.Time) (streak.DayCounts, error) {
	var counts streak.DayCounts
	bound := endOfDay.UTC()
	err := db.get(ctx, &counts, `
		SELECT
			COALESCE(SUM(CASE WHEN next_review_date <= ? THEN 1 ELSE 0 END), 0) AS due,
			COALESCE(SUM(CASE WHEN next_review_date > ? THEN 1 ELSE 0 END), 0) AS reviewed
		FROM cards
		WHERE owner_id = ?
	`, bound, bound, ownerID)
	if err != nil {
		return streak.DayCounts{}, fmt.Errorf("failed to count cards for owner %s: %w", ownerID, err)
	}
	return counts, nil
}

type boxCount struct {
	Box   int `db:"box"`
	Count int `db:"n"`
}

// Stats aggregates ownerID's cards per box and counts those due by asOf.
func (db *DB) Stats(ctx context.Context, ownerID string, asOf time.Time) (domain.Stats, error) {
	var totals struct {
		Total int `db:"total"`
		Due   int `db:"due"`
	}
	err := db.get(ctx, &totals, `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN next_review_date <= ? THEN 1 ELSE 0 END), 0) AS due
		FROM cards
		WHERE owner_id = ?
	`, asOf.UTC(), ownerID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to get stats for owner %s: %w", ownerID, err)
	}

	var boxes []boxCount
	err = db.selectAll(ctx, &boxes, `
		SELECT box, COUNT(*) AS n
		FROM cards
		WHERE owner_id = ?
		GROUP BY box
	`, ownerID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to get box stats for owner %s: %w", ownerID, err)
	}

	stats := domain.Stats{TotalCards: totals.Total, DueCards: totals.Due}
	for _, b := range boxes {
		if b.Box < domain.MinBox || b.Box > domain.MaxBox {
			return domain.Stats{}, fmt.Errorf("%w: %d cards of owner %s in box %d", domain.ErrIntegrity, b.Count, ownerID, b.Box)
		}
		stats.BoxStats[b.Box-1] = b.Count
	}
	return stats, nil
}
