// Package service wires the Leitner scheduler and the streak tracker to
// persistence. Every method takes the owner id resolved by the caller's auth
// layer; cards of other owners are reported as not found.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/conorfennell/leitner/internal/domain"
	"github.com/conorfennell/leitner/internal/knol"
	"github.com/conorfennell/leitner/internal/leitner"
	"github.com/conorfennell/leitner/internal/storage"
	"github.com/conorfennell/leitner/internal/streak"
	"github.com/conorfennell/leitner/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the card, review, streak and calendar operations.
type Service struct {
	store storage.Repository
	log   *zap.Logger
	locks *streak.Locker
	loc   *time.Location
	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the location whose midnight separates calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithIDGenerator replaces the uuid generator used for new cards and reviews.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// New returns a Service on top of store. Days are UTC unless WithLocation is given.
func New(store storage.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   log,
		locks: streak.NewLocker(),
		loc:   time.UTC,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCardInput holds the user-supplied fields of a new card.
type CreateCardInput struct {
	Question string `validate:"required"`
	Answer   string `validate:"required"`
	Image    string
}

// ReviewResult is returned by ReviewCard.
type ReviewResult struct {
	Card           domain.Card        `json:"card"`
	Streak         domain.StreakState `json:"streak"`
	CompletedDates []domain.Date      `json:"completedDates"`
}

func requireOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("owner: %w", domain.ErrNotFound)
	}
	return nil
}

func validate(in *CreateCardInput) error {
	in.Question = strings.TrimSpace(in.Question)
	in.Answer = strings.TrimSpace(in.Answer)
	in.Image = strings.TrimSpace(in.Image)
	if err := validator.ValidateStruct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

func (s *Service) newCard(ownerID string, in CreateCardInput, now time.Time) domain.Card {
	return domain.Card{
		ID:             s.newID(),
		OwnerID:        ownerID,
		Question:       in.Question,
		Answer:         in.Answer,
		Image:          in.Image,
		Box:            domain.MinBox,
		NextReviewDate: now,
		ContentHash:    knol.Hash(in.Question, in.Answer),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CreateCard stores a new card in the first box, due immediately.
func (s *Service) CreateCard(ctx context.Context, ownerID string, in CreateCardInput) (domain.Card, error) {
	if err := requireOwner(ownerID); err != nil {
		return domain.Card{}, err
	}
	if err := validate(&in); err != nil {
		return domain.Card{}, err
	}

	card := s.newCard(ownerID, in, s.now())
	if err := s.store.InsertCard(ctx, card); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

// ImportCards creates the cards whose question and answer ownerID does not
// already have. Invalid cards are reported and skipped.
func (s *Service) ImportCards(ctx context.Context, ownerID string, cards []domain.Card) (domain.ImportReport, error) {
	if err := requireOwner(ownerID); err != nil {
		return domain.ImportReport{}, err
	}

	report := domain.ImportReport{Parsed: len(cards), Errors: []string{}}
	now := s.now()
	err := s.store.InTx(ctx, func(tx storage.Repository) error {
		known, err := tx.ContentHashes(ctx, ownerID)
		if err != nil {
			return err
		}
		for i, c := range cards {
			in := CreateCardInput{Question: c.Question, Answer: c.Answer, Image: c.Image}
			if err := validate(&in); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("card %d: %v", i+1, err))
				continue
			}
			card := s.newCard(ownerID, in, now)
			if _, ok := known[card.ContentHash]; ok {
				report.Skipped++
				continue
			}
			if err := tx.InsertCard(ctx, card); err != nil {
				return err
			}
			known[card.ContentHash] = struct{}{}
			report.Created++
		}
		return nil
	})
	if err != nil {
		return domain.ImportReport{}, err
	}
	return report, nil
}

// ListCards returns every card of ownerID.
func (s *Service) ListCards(ctx context.Context, ownerID string) ([]domain.Card, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.store.ListCards(ctx, ownerID)
}

// ListDue returns the cards due by the end of today, earliest first, so a
// card created later today is part of today's session.
func (s *Service) ListDue(ctx context.Context, ownerID string) ([]domain.Card, error) {
	return s.DueCards(ctx, ownerID, leitner.EndOfDay(s.now(), s.loc))
}

// DueCards returns the cards due at or before asOf, earliest first.
func (s *Service) DueCards(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.store.DueCards(ctx, ownerID, asOf)
}

// DeleteCard removes one card. Its review history is kept.
func (s *Service) DeleteCard(ctx context.Context, ownerID, cardID string) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	return s.store.DeleteCard(ctx, ownerID, cardID)
}

// Stats counts ownerID's cards per box and those due by the end of today.
func (s *Service) Stats(ctx context.Context, ownerID string) (domain.Stats, error) {
	if err := requireOwner(ownerID); err != nil {
		return domain.Stats{}, err
	}
	stats, err := s.store.Stats(ctx, ownerID, leitner.EndOfDay(s.now(), s.loc))
	if err != nil {
		if errors.Is(err, domain.ErrIntegrity) {
			s.log.Error("card box outside leitner range", zap.String("owner", ownerID), zap.Error(err))
		}
		return domain.Stats{}, err
	}
	return stats, nil
}

// ListReviews returns ownerID's review log, newest first, optionally for one card.
func (s *Service) ListReviews(ctx context.Context, ownerID, cardID string) ([]domain.ReviewRecord, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.store.ListReviews(ctx, ownerID, cardID)
}
