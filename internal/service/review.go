package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/conorfennell/leitner/internal/domain"
	"github.com/conorfennell/leitner/internal/leitner"
	"github.com/conorfennell/leitner/internal/storage"
	"github.com/conorfennell/leitner/internal/streak"
	"go.uber.org/zap"
)

// ReviewCard moves the card to its next box, then re-evaluates today's
// completion and the streak. Reviews of one owner are serialized.
//
// Without an idempotency key every call advances the card. With one, a repeat
// for the same card returns the current state without advancing again.
func (s *Service) ReviewCard(ctx context.Context, ownerID string, in domain.ReviewOutcome) (ReviewResult, error) {
	if err := requireOwner(ownerID); err != nil {
		return ReviewResult{}, err
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	now := s.now()
	var res ReviewResult
	err := s.store.InTx(ctx, func(tx storage.Repository) error {
		if in.IdempotencyKey != "" {
			replayed, err := s.replay(ctx, tx, ownerID, in)
			if err == nil {
				res = replayed
				return nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}

		card, err := tx.FindCard(ctx, ownerID, in.CardID)
		if err != nil {
			return err
		}

		box, next, err := leitner.Advance(card.Box, in.Correct, now, s.loc)
		if err != nil {
			s.log.Error("card box outside leitner range",
				zap.String("owner", ownerID),
				zap.String("card", card.ID),
				zap.Int("box", card.Box),
				zap.Error(err),
			)
			return err
		}

		rec := domain.ReviewRecord{
			ID:         s.newID(),
			OwnerID:    ownerID,
			CardID:     card.ID,
			Correct:    in.Correct,
			BoxBefore:  card.Box,
			BoxAfter:   box,
			ReviewedAt: now,
		}
		if in.IdempotencyKey != "" {
			key := in.IdempotencyKey
			rec.IdempotencyKey = &key
		}

		card.Box = box
		card.NextReviewDate = next
		card.UpdatedAt = now
		if in.Image != nil {
			card.Image = *in.Image
		}
		if err := tx.UpdateCardSchedule(ctx, card); err != nil {
			return err
		}
		if err := tx.InsertReview(ctx, rec); err != nil {
			return err
		}

		st, err := s.updateStreak(ctx, tx, ownerID, now)
		if err != nil {
			return err
		}
		dates, err := tx.CompletedDates(ctx, ownerID)
		if err != nil {
			return err
		}
		res = ReviewResult{Card: card, Streak: st, CompletedDates: dates}
		return nil
	})
	if err != nil {
		return ReviewResult{}, err
	}

	s.log.Debug("card reviewed",
		zap.String("owner", ownerID),
		zap.String("card", res.Card.ID),
		zap.Bool("correct", in.Correct),
		zap.Int("box", res.Card.Box),
		zap.Int("streak", res.Streak.Count),
	)
	return res, nil
}

// replay returns the current state for a review already recorded under
// in.IdempotencyKey, or ErrNotFound if the key is new.
func (s *Service) replay(ctx context.Context, tx storage.Repository, ownerID string, in domain.ReviewOutcome) (ReviewResult, error) {
	prev, err := tx.FindReviewByKey(ctx, ownerID, in.IdempotencyKey)
	if err != nil {
		return ReviewResult{}, err
	}
	if prev.CardID != in.CardID {
		return ReviewResult{}, fmt.Errorf("%w: key %q belongs to card %s", domain.ErrDuplicateReview, in.IdempotencyKey, prev.CardID)
	}

	card, err := tx.FindCard(ctx, ownerID, in.CardID)
	if err != nil {
		return ReviewResult{}, fmt.Errorf("replaying review: %w", err)
	}
	st, err := tx.GetStreak(ctx, ownerID)
	if err != nil {
		return ReviewResult{}, err
	}
	dates, err := tx.CompletedDates(ctx, ownerID)
	if err != nil {
		return ReviewResult{}, err
	}
	return ReviewResult{Card: card, Streak: st, CompletedDates: dates}, nil
}

// EvaluateDay reports whether ownerID cleared every card due on day.
func (s *Service) EvaluateDay(ctx context.Context, ownerID string, day domain.Date) (bool, error) {
	if err := requireOwner(ownerID); err != nil {
		return false, err
	}
	counts, err := s.store.CountDay(ctx, ownerID, leitner.EndOfDay(day.In(s.loc), s.loc))
	if err != nil {
		return false, err
	}
	return counts.Completed(), nil
}

// UpdateStreak re-evaluates today and stores the resulting streak.
func (s *Service) UpdateStreak(ctx context.Context, ownerID string) (domain.StreakState, error) {
	if err := requireOwner(ownerID); err != nil {
		return domain.StreakState{}, err
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	now := s.now()
	var st domain.StreakState
	err := s.store.InTx(ctx, func(tx storage.Repository) error {
		var err error
		st, err = s.updateStreak(ctx, tx, ownerID, now)
		return err
	})
	return st, err
}

// GetStreak recomputes the streak so a lapsed streak reads as zero.
func (s *Service) GetStreak(ctx context.Context, ownerID string) (domain.StreakState, error) {
	return s.UpdateStreak(ctx, ownerID)
}

// GetCalendar returns the days ownerID completed, in ascending order.
func (s *Service) GetCalendar(ctx context.Context, ownerID string) ([]domain.Date, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.store.CompletedDates(ctx, ownerID)
}

// updateStreak must run under ownerID's lock.
func (s *Service) updateStreak(ctx context.Context, tx storage.Repository, ownerID string, now time.Time) (domain.StreakState, error) {
	counts, err := tx.CountDay(ctx, ownerID, leitner.EndOfDay(now, s.loc))
	if err != nil {
		return domain.StreakState{}, err
	}
	completed := counts.Completed()

	prev, err := tx.GetStreak(ctx, ownerID)
	if err != nil {
		return domain.StreakState{}, err
	}
	next := streak.Update(prev, completed, now, s.loc)
	if err := tx.SaveStreak(ctx, ownerID, next); err != nil {
		return domain.StreakState{}, err
	}

	if completed {
		if err := tx.AddCompletedDate(ctx, ownerID, domain.DateOf(now, s.loc)); err != nil {
			return domain.StreakState{}, err
		}
	}
	return next, nil
}
