package leitner

import (
	"errors"
	"testing"
	"time"

	"github.com/conorfennell/leitner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2025, 6, 15+offset, 0, 0, 0, 0, time.UTC)
}

func TestNextBox(t *testing.T) {
	for b := domain.MinBox; b <= domain.MaxBox; b++ {
		up, err := NextBox(b, true)
		require.NoError(t, err)
		assert.Equal(t, min(b+1, domain.MaxBox), up, "correct from box %d", b)

		down, err := NextBox(b, false)
		require.NoError(t, err)
		assert.Equal(t, domain.MinBox, down, "incorrect from box %d", b)
	}
}

func TestNextBoxInvalid(t *testing.T) {
	for _, b := range []int{-1, 0, 6, 100} {
		_, err := NextBox(b, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrIntegrity), "box %d", b)
	}
}

func TestIntervalTable(t *testing.T) {
	want := map[int]int{1: 1, 2: 2, 3: 7, 4: 14, 5: 30}
	for box, days := range want {
		got, err := Interval(box)
		require.NoError(t, err)
		assert.Equal(t, days, got, "box %d", box)
	}
	_, err := Interval(0)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		box      int
		correct  bool
		wantBox  int
		wantNext time.Time
	}{
		{"new card correct", 1, true, 2, day(2)},
		{"new card incorrect", 1, false, 1, day(1)},
		{"box 2 correct", 2, true, 3, day(7)},
		{"box 3 correct", 3, true, 4, day(14)},
		{"box 4 correct", 4, true, 5, day(30)},
		{"box 5 stays capped", 5, true, 5, day(30)},
		{"box 5 incorrect resets", 5, false, 1, day(1)},
		{"box 3 incorrect resets", 3, false, 1, day(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, next, err := Advance(tt.box, tt.correct, t0, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBox, box)
			assert.True(t, tt.wantNext.Equal(next), "next = %v, want %v", next, tt.wantNext)
		})
	}
}

func TestAdvanceIsDeterministicWithinADay(t *testing.T) {
	_, early, err := Advance(2, true, time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC), time.UTC)
	require.NoError(t, err)
	_, late, err := Advance(2, true, time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC), time.UTC)
	require.NoError(t, err)
	assert.True(t, early.Equal(late))
}

func TestAdvanceUsesLocationDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:00 UTC on the 16th is still the 15th in New York.
	now := time.Date(2025, 6, 16, 2, 0, 0, 0, time.UTC)
	_, next, err := Advance(1, false, now, ny)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, ny), next)
}

func TestAdvanceAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2025, 3, 8, 12, 0, 0, 0, ny)
	_, next, err := Advance(1, true, now, ny)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, ny), next)
}

func TestDayBounds(t *testing.T) {
	start := StartOfDay(t0, time.UTC)
	end := EndOfDay(t0, time.UTC)
	assert.Equal(t, day(0), start)
	assert.Equal(t, day(1).Add(-time.Millisecond), end)
	assert.True(t, end.Before(day(1)))
}

func TestAdvanceInvalidBox(t *testing.T) {
	_, _, err := Advance(7, true, t0, time.UTC)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}
