package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/conorfennell/leitner/internal/auth"
	"github.com/conorfennell/leitner/internal/domain"
	"github.com/conorfennell/leitner/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxDeckBytes = 1 << 20

type CardService interface {
	CreateCard(ctx context.Context, ownerID string, in service.CreateCardInput) (domain.Card, error)
	ListCards(ctx context.Context, ownerID string) ([]domain.Card, error)
	ListDue(ctx context.Context, ownerID string) ([]domain.Card, error)
	Stats(ctx context.Context, ownerID string) (domain.Stats, error)
	ReviewCard(ctx context.Context, ownerID string, in domain.ReviewOutcome) (service.ReviewResult, error)
	DeleteCard(ctx context.Context, ownerID, cardID string) error
	ListReviews(ctx context.Context, ownerID, cardID string) ([]domain.ReviewRecord, error)
}

type DeckImporter interface {
	ImportReader(ctx context.Context, ownerID string, r io.Reader) (domain.ImportReport, error)
}

type CardHandler struct {
	Svc  CardService
	Deck DeckImporter
	Log  *zap.Logger
}

type createCardReq struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Image    string `json:"image"`
}

func (req *createCardReq) trim() {
	req.Question = strings.TrimSpace(req.Question)
	req.Answer = strings.TrimSpace(req.Answer)
	req.Image = strings.TrimSpace(req.Image)
}

func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())

	var req createCardReq
	if err := decode(r, &req); err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	card, err := h.Svc.CreateCard(r.Context(), owner, service.CreateCardInput{
		Question: req.Question,
		Answer:   req.Answer,
		Image:    req.Image,
	})
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (h *CardHandler) Due(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())
	cards, err := h.Svc.ListDue(r.Context(), owner)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(cards))
}

func (h *CardHandler) All(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())
	cards, err := h.Svc.ListCards(r.Context(), owner)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(cards))
}

func (h *CardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())
	stats, err := h.Svc.Stats(r.Context(), owner)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type reviewReq struct {
	Correct *bool   `json:"correct" validate:"required"`
	Image   *string `json:"image"`
}

// Review applies one answer. A repeated Idempotency-Key returns the first
// outcome instead of moving the card again.
func (h *CardHandler) Review(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())

	var req reviewReq
	if err := decode(r, &req); err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	res, err := h.Svc.ReviewCard(r.Context(), owner, domain.ReviewOutcome{
		CardID:         chi.URLParam(r, "id"),
		Correct:        *req.Correct,
		Image:          req.Image,
		IdempotencyKey: idempotencyKey(r),
	})
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	res.CompletedDates = orEmpty(res.CompletedDates)
	writeJSON(w, http.StatusOK, res)
}

func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())
	if err := h.Svc.DeleteCard(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CardHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())
	recs, err := h.Svc.ListReviews(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(recs))
}

// Import reads a markdown deck from the request body.
func (h *CardHandler) Import(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.OwnerIDFromContext(r.Context())

	report, err := h.Deck.ImportReader(r.Context(), owner, http.MaxBytesReader(w, r.Body, maxDeckBytes))
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
