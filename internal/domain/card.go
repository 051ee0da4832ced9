package domain

import (
	"time"
)

// MinBox and MaxBox bound the Leitner boxes a card can sit in.
const (
	MinBox = 1
	MaxBox = 5
)

// Card is a single question-answer flashcard owned by one user.
type Card struct {
	ID             string    `json:"id" db:"id"`
	OwnerID        string    `json:"ownerId" db:"owner_id"`
	Question       string    `json:"question" db:"question"`
	Answer         string    `json:"answer" db:"answer"`
	Image          string    `json:"image,omitempty" db:"image"`
	Box            int       `json:"box" db:"box"`
	NextReviewDate time.Time `json:"nextReviewDate" db:"next_review_date"`
	ContentHash    string    `json:"-" db:"content_hash"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// ReviewOutcome is what the user reports after looking at a card.
// It is never stored, only its effect on the card.
type ReviewOutcome struct {
	CardID  string
	Correct bool
	// Image replaces the card image when non-nil.
	Image *string
	// IdempotencyKey makes a retried review return the first result.
	IdempotencyKey string
}

// ReviewRecord is one entry of the append-only review log.
type ReviewRecord struct {
	ID             string    `json:"id" db:"id"`
	OwnerID        string    `json:"-" db:"owner_id"`
	CardID         string    `json:"cardId" db:"card_id"`
	Correct        bool      `json:"correct" db:"correct"`
	BoxBefore      int       `json:"boxBefore" db:"box_before"`
	BoxAfter       int       `json:"boxAfter" db:"box_after"`
	ReviewedAt     time.Time `json:"reviewedAt" db:"reviewed_at"`
	IdempotencyKey *string   `json:"-" db:"idempotency_key"`
}

// Stats aggregates an owner's cards. BoxStats[i] counts cards in box i+1.
type Stats struct {
	TotalCards int         `json:"totalCards"`
	DueCards   int         `json:"dueCards"`
	BoxStats   [MaxBox]int `json:"boxStats"`
}

// ImportReport summarises one deck import.
type ImportReport struct {
	Parsed  int      `json:"parsed"`
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}
