// Package presentation turns a looked-up word into a renderable page,
// validating the visual payload for the word's visualization type.
package presentation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
	"github.com/heartmarshall/wordoftheday-backend/internal/schema"
)

type wordLookup interface {
	Today(ctx context.Context, date string) (*domain.Word, error)
	BySlug(ctx context.Context, slug string) (*domain.Word, error)
}

var layouts = map[domain.VisualizationType]string{
	domain.VisualizationMap:      "map",
	domain.VisualizationTree:     "tree",
	domain.VisualizationTimeline: "timeline",
	domain.VisualizationGrid:     "grid",
}

// Service builds pages for the word endpoints.
type Service struct {
	words wordLookup
	log   *slog.Logger
}

// NewService creates a new Presentation service.
func NewService(log *slog.Logger, words wordLookup) *Service {
	return &Service{
		words: words,
		log:   log.With("service", "presentation"),
	}
}

// Select validates w's visual_data against the schema of its visualization
// type. The payload is either fully valid or not used at all.
func Select(w *domain.Word) domain.Page {
	page := domain.Page{
		Word:   w,
		Layout: layouts[w.VisualizationType],
	}

	visual, err := schema.ValidateVisual(w.VisualizationType, w.Content.VisualData)
	if err != nil {
		page.Status = domain.PageStatusInvalidData
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			page.Issues = ve.Errors
		} else {
			page.Issues = []domain.FieldError{{Field: "visual_data", Message: err.Error()}}
		}
		return page
	}

	page.Visual = visual
	page.Status = domain.PageStatusOK
	return page
}

// TodayPage builds the page for the word of date (today when empty).
func (s *Service) TodayPage(ctx context.Context, date string) (*domain.Page, error) {
	w, err := s.words.Today(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, w), nil
}

// SlugPage builds the page for the word matching slug.
func (s *Service) SlugPage(ctx context.Context, slug string) (*domain.Page, error) {
	w, err := s.words.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, w), nil
}

func (s *Service) page(ctx context.Context, w *domain.Word) *domain.Page {
	page := Select(w)
	if page.Status == domain.PageStatusInvalidData {
		s.log.WarnContext(ctx, "invalid visual data",
			slog.String("date", w.PublishDate),
			slog.String("type", w.VisualizationType.String()),
			slog.Any("issues", page.Issues),
		)
	}
	return &page
}
