package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/conorfennell/leitner/internal/domain"
)

type streakRow struct {
	Count              int          `db:"streak_count"`
	LastCompletionDate sql.NullTime `db:"last_completion_date"`
	LastCheckDate      sql.NullTime `db:"last_check_date"`
}

// GetStreak returns ownerID's streak, or the zero state if none was saved.
func (db *DB) GetStreak(ctx context.Context, ownerID string) (domain.StreakState, error) {
	var row streakRow
	err := db.get(ctx, &row, `
		SELECT streak_count, last_completion_date, last_check_date
		FROM streaks WHERE owner_id = ?
	`, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.StreakState{}, nil
		}
		return domain.StreakState{}, fmt.Errorf("failed to get streak for owner %s: %w", ownerID, err)
	}
	return domain.StreakState{
		Count:              row.Count,
		LastCompletionDate: fromNullTime(row.LastCompletionDate),
		LastCheckDate:      fromNullTime(row.LastCheckDate),
	}, nil
}

// SaveStreak inserts or replaces ownerID's streak.
func (db *DB) SaveStreak(ctx context.Context, ownerID string, s domain.StreakState) error {
	_, err := db.exec(ctx, `
		INSERT INTO streaks (owner_id, streak_count, last_completion_date, last_check_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner_id) DO UPDATE SET
			streak_count = excluded.streak_count,
			last_completion_date = excluded.last_completion_date,
			last_check_date = excluded.last_check_date
	`, ownerID, s.Count, toNullTime(s.LastCompletionDate), toNullTime(s.LastCheckDate))
	if err != nil {
		return fmt.Errorf("failed to save streak for owner %s: %w", ownerID, err)
	}
	return nil
}

// AddCompletedDate records d as completed. Recording a day twice is a no-op.
func (db *DB) AddCompletedDate(ctx context.Context, ownerID string, d domain.Date) error {
	_, err := db.exec(ctx, `
		INSERT INTO completed_days (owner_id, day)
		VALUES (?, ?)
		ON CONFLICT (owner_id, day) DO NOTHING
	`, ownerID, d.String())
	if err != nil {
		return fmt.Errorf("failed to add completed date %s for owner %s: %w", d, ownerID, err)
	}
	return nil
}

// CompletedDates returns ownerID's completed days in ascending order.
func (db *DB) CompletedDates(ctx context.Context, ownerID string) ([]domain.Date, error) {
	var days []string
	err := db.selectAll(ctx, &days, `
		SELECT day FROM completed_days
		WHERE owner_id = ?
		ORDER BY day ASC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get completed dates for owner %s: %w", ownerID, err)
	}

	dates := make([]domain.Date, 0, len(days))
	for _, s := range days {
		d, err := domain.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("completed date for owner %s: %w", ownerID, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: dbTime(*t), Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}
