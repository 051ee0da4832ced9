package handler

import (
	"context"
	"net/http"

	"github.com/conorfennell/leitner/internal/auth"
	"github.com/conorfennell/leitner/internal/domain"
	"go.uber.org/zap"
)

type StreakService interface {
	GetStreak(ctx context.Context, ownerID string) (domain.StreakState, error)
	GetCalendar(ctx context.Context, ownerID string) ([]domain.Date, error)
}

type StreakHandler struct {
	Svc StreakService
	Log *zap.Logger
}

func (h *StreakHandler) Streak(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())
	st, err := h.Svc.GetStreak(r.Context(), owner)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *StreakHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())
	days, err := h.Svc.GetCalendar(r.Context(), owner)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"completedDates": orEmpty(days)})
}
