package word

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

// Today returns the word published on date, or on today's date when date is
// empty. A date after today is rejected with an error matching both
// domain.ErrFutureDate and domain.ErrValidation.
func (s *Service) Today(ctx context.Context, date string) (*domain.Word, error) {
	today := s.today()

	if date == "" {
		date = today
	} else {
		if !domain.IsDate(date) {
			return nil, domain.NewValidationError("date", "must be a YYYY-MM-DD date")
		}
		if domain.IsAfter(date, today) {
			return nil, fmt.Errorf("%w: %w", domain.ErrFutureDate,
				domain.NewValidationError("date", "must not be after "+today))
		}
	}

	return s.words.GetByDate(ctx, date)
}

// BySlug returns the most recently published word matching slug.
// Unlike Today, no publish-date restriction applies.
func (s *Service) BySlug(ctx context.Context, slug string) (*domain.Word, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	return s.words.GetBySlug(ctx, slug)
}

// Preview returns the latest word of each visualization type, keyed by type.
// All four types are present; a type without a usable word maps to nil.
func (s *Service) Preview(ctx context.Context) (map[domain.VisualizationType]*domain.Word, error) {
	return s.words.GetOnePerType(ctx)
}
