package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/MikhailRaia/shorturl/internal/logger"
	"github.com/MikhailRaia/shorturl/internal/middleware"
	"github.com/MikhailRaia/shorturl/internal/model"
	"github.com/MikhailRaia/shorturl/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const greeting = "Hello, World!"

type URLService interface {
	ShortenURL(ctx context.Context, originalURL string) (model.Entry, error)
	GetOriginalURL(ctx context.Context, id uint32) (string, error)
	GetStats(ctx context.Context) int
}

type Handler struct {
	urlService URLService
}

func NewHandler(urlService URLService) *Handler {
	return &Handler{
		urlService: urlService,
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)
	r.Use(middleware.Metrics)

	r.Get("/", h.handleRoot)
	r.Post("/api/shorturl", h.handleShorten)
	r.Get("/api/shorturl/{id}", h.handleRedirect)
	r.Get("/api/stats", h.handleStats)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(greeting))
}

func (h *Handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	originalURL, err := h.urlService.GetOriginalURL(r.Context(), uint32(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		log.Error().Err(err).Uint64("id", id).Msg("Failed to resolve short URL")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Location carries the stored URL verbatim and the body stays empty.
	w.Header().Set("Location", originalURL)
	w.WriteHeader(http.StatusFound)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatsResponse{URLs: h.urlService.GetStats(r.Context())})
}
