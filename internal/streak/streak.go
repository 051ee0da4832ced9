// Package streak tracks consecutive days on which a user cleared every card
// that was due.
package streak

import (
	"time"

	"github.com/conorfennell/leitner/internal/domain"
)

// DayCounts splits an owner's cards around the end of one calendar day.
type DayCounts struct {
	// Due holds cards whose next review is at or before the end of the day.
	Due int `db:"due"`
	// Reviewed holds cards already pushed past the end of the day.
	Reviewed int `db:"reviewed"`
}

// Completed reports whether the day counts as cleared.
//
// There is no per-day review log behind this: a card whose due date now lies
// beyond today is taken as reviewed. Cards created with a future due date are
// therefore counted as reviewed too. A day with nothing due never completes.
func (c DayCounts) Completed() bool {
	return c.Due > 0 && c.Reviewed >= c.Due
}

// Update applies one evaluation at now to s and returns the new state.
// Calendar days are taken in loc. s is not modified.
func Update(s domain.StreakState, completed bool, now time.Time, loc *time.Location) domain.StreakState {
	checked := now
	next := domain.StreakState{
		Count:              s.Count,
		LastCompletionDate: s.LastCompletionDate,
		LastCheckDate:      &checked,
	}

	if s.LastCompletionDate == nil {
		if completed {
			next.Count = 1
			next.LastCompletionDate = &checked
		}
		return next
	}

	gap := Gap(*s.LastCompletionDate, now, loc)
	switch {
	case gap <= 0:
		// Already counted today.
	case gap == 1 && completed:
		next.Count = s.Count + 1
		next.LastCompletionDate = &checked
	case gap == 1:
		// Today can still be completed.
	case completed:
		next.Count = 1
		next.LastCompletionDate = &checked
	default:
		next.Count = 0
		next.LastCompletionDate = nil
	}
	return next
}

// Gap returns the number of calendar days in loc from last to now.
func Gap(last, now time.Time, loc *time.Location) int {
	return domain.DateOf(last, loc).DaysUntil(domain.DateOf(now, loc))
}
