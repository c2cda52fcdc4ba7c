package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/heartmarshall/wordoftheday-backend/internal/config"
	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
	"github.com/heartmarshall/wordoftheday-backend/internal/service/presentation"
	wordsvc "github.com/heartmarshall/wordoftheday-backend/internal/service/word"
	"github.com/heartmarshall/wordoftheday-backend/internal/transport/middleware"
)

const mapVisual = `{"stops":[{"name":"Mocha","lat":13.3,"lng":43.2},{"name":"Venice","lat":45.4,"lng":12.3}]}`

// memWords is an in-memory word store with the repository's lookup rules.
type memWords struct {
	mu        sync.Mutex
	words     []*domain.Word
	integrity map[string]error // publish date -> error returned for single lookups
	err       error            // returned by every call when set
}

func (m *memWords) add(w *domain.Word) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words = append(m.words, w)
}

func (m *memWords) GetByDate(_ context.Context, date string) (*domain.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if err, ok := m.integrity[date]; ok {
		return nil, err
	}
	for _, w := range m.words {
		if w.PublishDate == date {
			return w, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memWords) GetBySlug(_ context.Context, slug string) (*domain.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var best *domain.Word
	for _, w := range m.words {
		if !strings.EqualFold(w.Word, slug) && w.Slug() != strings.ToLower(slug) {
			continue
		}
		if best == nil || w.PublishDate > best.PublishDate {
			best = w
		}
	}
	if best == nil {
		return nil, domain.ErrNotFound
	}
	return best, nil
}

func (m *memWords) GetRecentByType(_ context.Context, vt domain.VisualizationType, limit int, cutoff string) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var matched []*domain.Word
	for _, w := range m.words {
		if w.VisualizationType == vt && w.PublishDate <= cutoff {
			matched = append(matched, w)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].PublishDate > matched[j].PublishDate })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]domain.HistoryEntry, 0, len(matched))
	for _, w := range matched {
		out = append(out, domain.NewHistoryEntry(w))
	}
	return out, nil
}

func (m *memWords) GetOnePerType(_ context.Context) (map[domain.VisualizationType]*domain.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[domain.VisualizationType]*domain.Word, 4)
	for _, vt := range domain.AllVisualizationTypes() {
		out[vt] = nil
	}
	for _, w := range m.words {
		if cur := out[w.VisualizationType]; cur == nil || w.PublishDate > cur.PublishDate {
			out[w.VisualizationType] = w
		}
	}
	return out, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// testNow is 2026-02-08 in UTC.
var testNow = time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

func newWord(id int64, date, text string, vt domain.VisualizationType, visual string) *domain.Word {
	return &domain.Word{
		ID:                id,
		PublishDate:       date,
		Word:              text,
		Definition:        "Definition of " + text,
		VisualizationType: vt,
		AccentColor:       "#6F4E37",
		Content: domain.WordContent{
			Hook:       "hook",
			FunFact:    "fact",
			VisualData: json.RawMessage(visual),
		},
	}
}

func coffeeWord() *domain.Word {
	return newWord(1, "2026-02-08", "Coffee", domain.VisualizationMap, mapVisual)
}

type testServer struct {
	handler http.Handler
	logs    *bytes.Buffer
}

func newTestServer(t *testing.T, store *memWords) *testServer {
	t.Helper()

	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	words := wordsvc.NewService(log, store, fixedClock{now: testNow})
	pages := presentation.NewService(log, words)
	cache := NewCachePolicy(config.CacheConfig{
		TodaySMaxAge:                5 * time.Minute,
		TodayStaleWhileRevalidate:   10 * time.Minute,
		PreviewSMaxAge:              12 * time.Hour,
		PreviewStaleWhileRevalidate: 24 * time.Hour,
	})
	mw := middleware.Standard(log, config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,OPTIONS"})

	return &testServer{
		handler: NewRouter(mw,
			NewWordHandler(words, cache, log),
			NewPageHandler(pages, cache, log),
			NewHealthHandler(&dbPingerMock{}, "test", log),
		),
		logs: &logs,
	}
}

func (s *testServer) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func (s *testServer) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, http.MethodGet, target)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func detailFields(resp ErrorResponse) []string {
	fields := make([]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		fields = append(fields, d.Field)
	}
	return fields
}
