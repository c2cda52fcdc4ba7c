// Package word implements the read-only word repository over the daily_words
// table. Every row is passed through schema.ValidateWord before it leaves the
// package: single-record lookups surface an invalid row as a
// *domain.IntegrityError, list lookups log it and drop it.
package word

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/wordoftheday-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
	"github.com/heartmarshall/wordoftheday-backend/internal/schema"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50

	tableName = "daily_words"
)

// columns lists the daily_words columns in RawWord order. Dates are read as text.
var columns = []string{
	"id",
	"publish_date::text AS publish_date",
	"word",
	"definition",
	"phonetic",
	"pronunciation_audio_url",
	"visualization_type",
	"content_json",
	"accent_color",
	"created_at",
	"approved_by",
	"root_family",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides word lookups backed by PostgreSQL.
type Repo struct {
	q   postgres.Querier
	log *slog.Logger
}

// New creates a new word repository.
func New(q postgres.Querier, logger *slog.Logger) *Repo {
	return &Repo{q: q, log: logger.With("repo", "word")}
}

func selectWords() sq.SelectBuilder {
	return psql.Select(columns...).From(tableName)
}

// ---------------------------------------------------------------------------
// Single-record lookups
// ---------------------------------------------------------------------------

// GetByDate returns the word published on date (YYYY-MM-DD).
// Returns domain.ErrNotFound if no word has that publish date.
func (r *Repo) GetByDate(ctx context.Context, date string) (*domain.Word, error) {
	query := selectWords().
		Where(sq.Expr("publish_date = ?::date", date)).
		Limit(1)

	return r.getOne(ctx, query, date)
}

// GetBySlug returns the word whose text matches slug case-insensitively,
// either verbatim or in its slug form. When several words share the text the
// most recently published one wins. No publish-date restriction is applied.
// Returns domain.ErrNotFound if nothing matches.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Word, error) {
	query := selectWords().
		Where(sq.Or{
			sq.Expr("lower(word) = lower(?)", slug),
			sq.Expr("regexp_replace(lower(word), '[^a-z0-9]+', '-', 'g') = lower(?)", slug),
		}).
		OrderBy("publish_date DESC").
		Limit(1)

	return r.getOne(ctx, query, slug)
}

func (r *Repo) getOne(ctx context.Context, query sq.SelectBuilder, key string) (*domain.Word, error) {
	rows, err := r.selectRaw(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "word", key)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("word %s: %w", key, domain.ErrNotFound)
	}

	w, err := schema.ValidateWord(rows[0])
	if err != nil {
		return nil, domain.NewIntegrityError(key, err)
	}
	return w, nil
}

// ---------------------------------------------------------------------------
// List lookups
// ---------------------------------------------------------------------------

// GetRecentByType returns history entries of the given type published on or
// before cutoff (inclusive), newest first. limit is clamped to
// [1, MaxHistoryLimit]; zero or negative means DefaultHistoryLimit.
// Invalid rows are logged and skipped. Returns an empty slice (not nil) when
// nothing matches.
func (r *Repo) GetRecentByType(ctx context.Context, vt domain.VisualizationType, limit int, cutoff string) ([]domain.HistoryEntry, error) {
	limit = normalizeLimit(limit)

	query := selectWords().
		Where(sq.Eq{"visualization_type": vt.String()}).
		Where(sq.Expr("publish_date <= ?::date", cutoff)).
		OrderBy("publish_date DESC").
		Limit(uint64(limit))

	rows, err := r.selectRaw(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "word history", vt.String())
	}

	entries := make([]domain.HistoryEntry, 0, len(rows))
	for _, raw := range rows {
		w, ok := r.validateListItem(ctx, raw)
		if !ok {
			continue
		}
		entries = append(entries, domain.NewHistoryEntry(w))
	}

	return entries, nil
}

// GetOnePerType returns, for each visualization type, the word with the most
// recent publish date, future dates included. The map always holds all four
// types; a type without a valid latest word maps to nil.
func (r *Repo) GetOnePerType(ctx context.Context) (map[domain.VisualizationType]*domain.Word, error) {
	query := selectWords().
		Options("DISTINCT ON (visualization_type)").
		OrderBy("visualization_type", "publish_date DESC")

	rows, err := r.selectRaw(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "word preview", "all types")
	}

	result := make(map[domain.VisualizationType]*domain.Word, 4)
	for _, vt := range domain.AllVisualizationTypes() {
		result[vt] = nil
	}

	for _, raw := range rows {
		w, ok := r.validateListItem(ctx, raw)
		if !ok {
			continue
		}
		result[w.VisualizationType] = w
	}

	return result, nil
}

func (r *Repo) validateListItem(ctx context.Context, raw schema.RawWord) (*domain.Word, bool) {
	w, err := schema.ValidateWord(raw)
	if err == nil {
		return w, true
	}

	attrs := []any{slog.String("key", raw.Key())}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		attrs = append(attrs, slog.Any("violations", ve.Errors))
	} else {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	r.log.WarnContext(ctx, "skipping invalid word", attrs...)

	return nil, false
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectRaw(ctx context.Context, query sq.SelectBuilder) ([]schema.RawWord, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []schema.RawWord
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}
