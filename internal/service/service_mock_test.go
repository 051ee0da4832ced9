package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/conorfennell/leitner/internal/domain"
	"github.com/conorfennell/leitner/internal/storage"
	mock_storage "github.com/conorfennell/leitner/internal/storage/mock"
	"github.com/conorfennell/leitner/internal/streak"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockService(t *testing.T) (*Service, *mock_storage.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_storage.NewMockRepository(ctrl)
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(storage.Repository) error) error {
			return fn(repo)
		}).AnyTimes()

	svc := New(repo, zap.NewNop(),
		WithClock(func() time.Time { return t0 }),
		WithIDGenerator(func() string { return "id-1" }),
	)
	return svc, repo
}

func TestReviewCorruptBoxLeavesCardUntouched(t *testing.T) {
	svc, repo := newMockService(t)
	ctx := context.Background()

	repo.EXPECT().FindCard(ctx, "alice", "c1").
		Return(domain.Card{ID: "c1", OwnerID: "alice", Box: 9}, nil)
	repo.EXPECT().UpdateCardSchedule(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().InsertReview(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().SaveStreak(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ReviewCard(ctx, "alice", domain.ReviewOutcome{CardID: "c1", Correct: true})
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}

func TestReviewPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("disk full")

	t.Run("update", func(t *testing.T) {
		svc, repo := newMockService(t)
		repo.EXPECT().FindCard(gomock.Any(), "alice", "c1").
			Return(domain.Card{ID: "c1", OwnerID: "alice", Box: 1}, nil)
		repo.EXPECT().UpdateCardSchedule(gomock.Any(), gomock.Any()).Return(boom)

		_, err := svc.ReviewCard(context.Background(), "alice", domain.ReviewOutcome{CardID: "c1", Correct: true})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("streak", func(t *testing.T) {
		svc, repo := newMockService(t)
		repo.EXPECT().FindCard(gomock.Any(), "alice", "c1").
			Return(domain.Card{ID: "c1", OwnerID: "alice", Box: 1}, nil)
		repo.EXPECT().UpdateCardSchedule(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().InsertReview(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().CountDay(gomock.Any(), "alice", gomock.Any()).Return(streak.DayCounts{}, boom)

		_, err := svc.ReviewCard(context.Background(), "alice", domain.ReviewOutcome{CardID: "c1", Correct: true})
		assert.ErrorIs(t, err, boom)
	})
}

func TestReviewWritesScheduleAndLog(t *testing.T) {
	svc, repo := newMockService(t)
	ctx := context.Background()

	repo.EXPECT().FindCard(ctx, "alice", "c1").
		Return(domain.Card{ID: "c1", OwnerID: "alice", Box: 3}, nil)
	repo.EXPECT().UpdateCardSchedule(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.Card) error {
			assert.Equal(t, 4, c.Box)
			assert.True(t, time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC).Equal(c.NextReviewDate))
			return nil
		})
	repo.EXPECT().InsertReview(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.ReviewRecord) error {
			assert.Equal(t, "id-1", rec.ID)
			assert.Equal(t, 3, rec.BoxBefore)
			assert.Equal(t, 4, rec.BoxAfter)
			require.NotNil(t, rec.IdempotencyKey)
			assert.Equal(t, "k", *rec.IdempotencyKey)
			return nil
		})
	repo.EXPECT().FindReviewByKey(ctx, "alice", "k").
		Return(domain.ReviewRecord{}, domain.ErrNotFound)
	repo.EXPECT().CountDay(ctx, "alice", gomock.Any()).Return(streak.DayCounts{Due: 1, Reviewed: 1}, nil)
	repo.EXPECT().GetStreak(ctx, "alice").Return(domain.StreakState{}, nil)
	repo.EXPECT().SaveStreak(ctx, "alice", gomock.Any()).Return(nil)
	repo.EXPECT().AddCompletedDate(ctx, "alice", domain.DateOf(t0, time.UTC)).Return(nil)
	repo.EXPECT().CompletedDates(ctx, "alice").Return([]domain.Date{domain.DateOf(t0, time.UTC)}, nil)

	res, err := svc.ReviewCard(ctx, "alice", domain.ReviewOutcome{CardID: "c1", Correct: true, IdempotencyKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak.Count)
	assert.Len(t, res.CompletedDates, 1)
}

func TestStatsIntegrityError(t *testing.T) {
	svc, repo := newMockService(t)
	repo.EXPECT().Stats(gomock.Any(), "alice", gomock.Any()).
		Return(domain.Stats{}, domain.ErrIntegrity)

	_, err := svc.Stats(context.Background(), "alice")
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestEmptyOwnerNeverReachesStore(t *testing.T) {
	svc, _ := newMockService(t)
	ctx := context.Background()

	_, err := svc.ListCards(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetStreak(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.ReviewCard(ctx, "", domain.ReviewOutcome{CardID: "c1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewsOfOneOwnerNeverOverlap(t *testing.T) {
	svc, repo := newMockService(t)

	var (
		inside   atomic.Int32
		overlaps atomic.Int32
		entered  = make(chan struct{}, 2)
		release  = make(chan struct{})
	)
	repo.EXPECT().FindCard(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, owner, id string) (domain.Card, error) {
			return domain.Card{ID: id, OwnerID: owner, Box: 1}, nil
		}).AnyTimes()
	repo.EXPECT().UpdateCardSchedule(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().InsertReview(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().CountDay(gomock.Any(), "alice", gomock.Any()).Return(streak.DayCounts{Due: 1}, nil).AnyTimes()
	repo.EXPECT().GetStreak(gomock.Any(), "alice").
		DoAndReturn(func(context.Context, string) (domain.StreakState, error) {
			if inside.Add(1) > 1 {
				overlaps.Add(1)
			}
			entered <- struct{}{}
			<-release
			inside.Add(-1)
			return domain.StreakState{}, nil
		}).Times(2)
	repo.EXPECT().SaveStreak(gomock.Any(), "alice", gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().CompletedDates(gomock.Any(), "alice").Return(nil, nil).AnyTimes()

	var wg sync.WaitGroup
	for _, id := range []string{"c1", "c2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.ReviewCard(context.Background(), "alice", domain.ReviewOutcome{CardID: id, Correct: true})
			assert.NoError(t, err)
		}(id)
	}

	<-entered
	select {
	case <-entered:
		t.Error("second review entered the streak update while the first held it")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)
	wg.Wait()

	assert.Len(t, entered, 1)
	assert.Zero(t, overlaps.Load())
}
