package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
	wordsvc "github.com/heartmarshall/wordoftheday-backend/internal/service/word"
)

type wordService interface {
	Today(ctx context.Context, date string) (*domain.Word, error)
	BySlug(ctx context.Context, slug string) (*domain.Word, error)
	History(ctx context.Context, input wordsvc.HistoryInput) ([]domain.HistoryEntry, error)
	Preview(ctx context.Context) (map[domain.VisualizationType]*domain.Word, error)
}

// WordHandler serves the /word and /preview endpoints.
type WordHandler struct {
	words wordService
	cache CachePolicy
	log   *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(words wordService, cache CachePolicy, logger *slog.Logger) *WordHandler {
	return &WordHandler{
		words: words,
		cache: cache,
		log:   logger.With("handler", "word"),
	}
}

// Today handles GET /word/today?date=YYYY-MM-DD.
func (h *WordHandler) Today(w http.ResponseWriter, r *http.Request) {
	word, err := h.words.Today(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		handleError(w, r, h.log, err, dateCodes)
		return
	}

	setCache(w, h.cache.Today)
	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// BySlug handles GET /word/{slug}.
func (h *WordHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	word, err := h.words.BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, r, h.log, err, slugCodes)
		return
	}

	setCache(w, h.cache.Today)
	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// History handles GET /word/history?type=&limit=&before=.
func (h *WordHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entries, err := h.words.History(r.Context(), wordsvc.HistoryInput{
		Type:   q.Get("type"),
		Limit:  q.Get("limit"),
		Before: q.Get("before"),
	})
	if err != nil {
		handleError(w, r, h.log, err, listCodes)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponse(entries))
}

// Preview handles GET /preview/words.
func (h *WordHandler) Preview(w http.ResponseWriter, r *http.Request) {
	words, err := h.words.Preview(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, listCodes)
		return
	}

	setCache(w, h.cache.Preview)
	writeJSON(w, http.StatusOK, toPreviewResponse(words))
}
