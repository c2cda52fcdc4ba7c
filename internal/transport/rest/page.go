package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

type pageService interface {
	TodayPage(ctx context.Context, date string) (*domain.Page, error)
	SlugPage(ctx context.Context, slug string) (*domain.Page, error)
}

// PageHandler serves render-ready page views. A page whose visual data is
// invalid is still a 200 with status "invalid_data".
type PageHandler struct {
	pages pageService
	cache CachePolicy
	log   *slog.Logger
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(pages pageService, cache CachePolicy, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		pages: pages,
		cache: cache,
		log:   logger.With("handler", "page"),
	}
}

// Today handles GET /page/today?date=YYYY-MM-DD.
func (h *PageHandler) Today(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.TodayPage(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		handleError(w, r, h.log, err, dateCodes)
		return
	}

	setCache(w, h.cache.Today)
	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// BySlug handles GET /page/{slug}.
func (h *PageHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.SlugPage(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, r, h.log, err, slugCodes)
		return
	}

	setCache(w, h.cache.Today)
	writeJSON(w, http.StatusOK, toPageResponse(page))
}
