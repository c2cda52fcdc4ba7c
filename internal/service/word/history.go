package word

import (
	"context"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

// History returns recent words of one visualization type, newest first,
// published on or before input.Before (today when empty). The cutoff is
// inclusive. Invalid input yields one ValidationError naming every bad field.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.HistoryEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cutoff := input.Before
	if cutoff == "" {
		cutoff = s.today()
	}

	return s.words.GetRecentByType(ctx, domain.VisualizationType(input.Type), input.limit(), cutoff)
}
