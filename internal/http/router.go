package http

import (
	"net/http"

	"github.com/conorfennell/leitner/internal/auth"
	"github.com/conorfennell/leitner/internal/config"
	"github.com/conorfennell/leitner/internal/http/handler"
	mw "github.com/conorfennell/leitner/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Service is everything the routes call on the scheduling service.
type Service interface {
	handler.CardService
	handler.StreakService
}

func NewRouter(cfg config.Config, svc Service, deck handler.DeckImporter, jwtSvc *auth.JWT, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(log))
	r.Use(chimw.Recoverer)

	if len(cfg.CORS.Origins) > 0 {
		r.Use(mw.CORS(cfg.CORS.Origins))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	cards := &handler.CardHandler{Svc: svc, Deck: deck, Log: log}
	streaks := &handler.StreakHandler{Svc: svc, Log: log}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Use(chimw.Timeout(cfg.HTTP.Timeout))

		r.Route("/flashcards", func(r chi.Router) {
			r.Post("/create", cards.Create)
			r.Post("/import", cards.Import)
			r.Get("/due", cards.Due)
			r.Get("/all", cards.All)
			r.Get("/stats", cards.Stats)

			r.Put("/{id}", cards.Review)
			r.Delete("/{id}", cards.Delete)
			r.Get("/{id}/reviews", cards.Reviews)
		})

		r.Get("/streak", streaks.Streak)
		r.Get("/calendar", streaks.Calendar)
	})

	return r
}
