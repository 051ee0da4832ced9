// Package leitner implements the five-box Leitner schedule.
//
// Every function here is pure: the caller supplies the instant and the
// location that defines calendar days.
package leitner

import (
	"fmt"
	"time"

	"github.com/conorfennell/leitner/internal/domain"
)

// intervals maps a box to the number of days until its next review.
var intervals = [domain.MaxBox + 1]int{
	1: 1,  // every day
	2: 2,  // every other day
	3: 7,  // once a week
	4: 14, // every other week
	5: 30, // once a month
}

// ValidBox reports whether box is one of the five Leitner boxes.
func ValidBox(box int) bool {
	return box >= domain.MinBox && box <= domain.MaxBox
}

// Interval returns the number of days a card in box waits before it is due.
func Interval(box int) (int, error) {
	if !ValidBox(box) {
		return 0, fmt.Errorf("%w: box %d outside [%d,%d]", domain.ErrIntegrity, box, domain.MinBox, domain.MaxBox)
	}
	return intervals[box], nil
}

// NextBox moves a card up one box on a correct answer, capped at the last
// box, and back to the first box on any incorrect answer.
func NextBox(box int, correct bool) (int, error) {
	if !ValidBox(box) {
		return 0, fmt.Errorf("%w: box %d outside [%d,%d]", domain.ErrIntegrity, box, domain.MinBox, domain.MaxBox)
	}
	if !correct {
		return domain.MinBox, nil
	}
	return min(box+1, domain.MaxBox), nil
}

// Advance computes the box and next review date after a review at now.
// The due date is midnight of today in loc plus the new box's interval.
func Advance(box int, correct bool, now time.Time, loc *time.Location) (int, time.Time, error) {
	newBox, err := NextBox(box, correct)
	if err != nil {
		return 0, time.Time{}, err
	}
	days, err := Interval(newBox)
	if err != nil {
		return 0, time.Time{}, err
	}
	return newBox, StartOfDay(now, loc).AddDate(0, 0, days), nil
}

// StartOfDay returns midnight of the calendar day t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay returns the last millisecond of the calendar day t falls on in loc.
// Millisecond resolution survives every supported storage backend.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Millisecond)
}
