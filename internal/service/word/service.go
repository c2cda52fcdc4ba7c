package word

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

type wordRepo interface {
	GetByDate(ctx context.Context, date string) (*domain.Word, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Word, error)
	GetRecentByType(ctx context.Context, vt domain.VisualizationType, limit int, cutoff string) ([]domain.HistoryEntry, error)
	GetOnePerType(ctx context.Context) (map[domain.VisualizationType]*domain.Word, error)
}

// Clock reports the current instant. "Today" is derived from it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Service answers word lookups and history queries. It keeps no state
// between calls; every call is one repository round trip.
type Service struct {
	words wordRepo
	clock Clock
	log   *slog.Logger
}

// NewService creates a new Word service.
func NewService(log *slog.Logger, words wordRepo, clock Clock) *Service {
	return &Service{
		words: words,
		clock: clock,
		log:   log.With("service", "word"),
	}
}

// today is the current calendar date in domain.ReferenceLocation.
func (s *Service) today() string {
	return domain.Today(s.clock.Now())
}
