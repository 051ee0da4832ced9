package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/conorfennell/leitner/internal/domain"
)

const reviewColumns = `id, owner_id, card_id, correct, box_before, box_after, reviewed_at, idempotency_key`

// InsertReview appends rec to the review log.
func (db *DB) InsertReview(ctx context.Context, rec domain.ReviewRecord) error {
	_, err := db.exec(ctx, `
		INSERT INTO reviews (`+reviewColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.OwnerID,
		rec.CardID,
		rec.Correct,
		rec.BoxBefore,
		rec.BoxAfter,
		dbTime(rec.ReviewedAt),
		rec.IdempotencyKey,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review for card %s: %w", rec.CardID, err)
	}
	return nil
}

// FindReviewByKey returns the review ownerID recorded under an idempotency key.
func (db *DB) FindReviewByKey(ctx context.Context, ownerID, key string) (domain.ReviewRecord, error) {
	var rec domain.ReviewRecord
	err := db.get(ctx, &rec, `
		SELECT `+reviewColumns+`
		FROM reviews WHERE owner_id = ? AND idempotency_key = ?
	`, ownerID, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ReviewRecord{}, fmt.Errorf("review key %q: %w", key, domain.ErrNotFound)
		}
		return domain.ReviewRecord{}, fmt.Errorf("failed to find review by key for owner %s: %w", ownerID, err)
	}
	return rec, nil
}

// ListReviews returns ownerID's reviews, newest first. An empty cardID
// selects every card.
func (db *DB) ListReviews(ctx context.Context, ownerID, cardID string) ([]domain.ReviewRecord, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE owner_id = ?`
	args := []any{ownerID}
	if cardID != "" {
		query += ` AND card_id = ?`
		args = append(args, cardID)
	}
	query += ` ORDER BY reviewed_at DESC, id DESC`

	recs := []domain.ReviewRecord{}
	if err := db.selectAll(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list reviews for owner %s: %w", ownerID, err)
	}
	return recs, nil
}
