package presentation

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

func wordWithVisual(vt domain.VisualizationType, visual string) *domain.Word {
	return &domain.Word{
		ID:                1,
		PublishDate:       "2026-02-08",
		Word:              "Coffee",
		Definition:        "A drink",
		VisualizationType: vt,
		AccentColor:       "#6F4E37",
		Content: domain.WordContent{
			Hook:       "h",
			FunFact:    "f",
			VisualData: json.RawMessage(visual),
		},
	}
}

func TestSelect_ValidPayloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		vt     domain.VisualizationType
		visual string
		layout string
		check  func(t *testing.T, v domain.VisualPayload)
	}{
		{
			vt:     domain.VisualizationMap,
			visual: `{"stops":[{"name":"Mocha","lat":13.3,"lng":43.2},{"name":"Venice","lat":45.4,"lng":12.3}]}`,
			layout: "map",
			check: func(t *testing.T, v domain.VisualPayload) {
				m, ok := v.(domain.MapVisual)
				require.True(t, ok)
				assert.Len(t, m.Stops, 2)
			},
		},
		{
			vt:     domain.VisualizationTree,
			visual: `{"root":{"label":"qahwa","children":[{"label":"kahve"}]}}`,
			layout: "tree",
			check: func(t *testing.T, v domain.VisualPayload) {
				tr, ok := v.(domain.TreeVisual)
				require.True(t, ok)
				assert.Equal(t, "qahwa", tr.Root.Label)
			},
		},
		{
			vt:     domain.VisualizationTimeline,
			visual: `{"events":[{"era":"1600s","title":"Arrival"}]}`,
			layout: "timeline",
			check: func(t *testing.T, v domain.VisualPayload) {
				_, ok := v.(domain.TimelineVisual)
				assert.True(t, ok)
			},
		},
		{
			vt:     domain.VisualizationGrid,
			visual: `{"cells":[{"term":"café"},{"term":"Kaffee"}]}`,
			layout: "grid",
			check: func(t *testing.T, v domain.VisualPayload) {
				g, ok := v.(domain.GridVisual)
				require.True(t, ok)
				assert.Len(t, g.Cells, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.vt.String(), func(t *testing.T) {
			t.Parallel()

			w := wordWithVisual(tt.vt, tt.visual)
			page := Select(w)

			assert.Equal(t, domain.PageStatusOK, page.Status)
			assert.Equal(t, tt.layout, page.Layout)
			assert.Same(t, w, page.Word)
			assert.Empty(t, page.Issues)
			require.NotNil(t, page.Visual)
			assert.Equal(t, tt.vt, page.Visual.VisualizationType())
			tt.check(t, page.Visual)
		})
	}
}

func TestSelect_InvalidPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		vt     domain.VisualizationType
		visual string
	}{
		{"map without stops", domain.VisualizationMap, `{"stops":[]}`},
		{"tree without root", domain.VisualizationTree, `{}`},
		{"timeline payload for grid", domain.VisualizationGrid, `{"events":[{"era":"x","title":"y"}]}`},
		{"wrong field type", domain.VisualizationTimeline, `{"events":"soon"}`},
		{"not an object", domain.VisualizationMap, `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := Select(wordWithVisual(tt.vt, tt.visual))

			assert.Equal(t, domain.PageStatusInvalidData, page.Status)
			assert.Nil(t, page.Visual, "no partial payload")
			assert.NotEmpty(t, page.Issues)
			assert.NotNil(t, page.Word)
		})
	}
}

func TestTodayPage(t *testing.T) {
	t.Parallel()

	lookup := &wordLookupMock{
		TodayFunc: func(ctx context.Context, date string) (*domain.Word, error) {
			return wordWithVisual(domain.VisualizationTimeline, `{"events":[{"era":"1600s","title":"Arrival"}]}`), nil
		},
	}
	svc := NewService(slog.Default(), lookup)

	page, err := svc.TodayPage(context.Background(), "2026-02-08")
	require.NoError(t, err)
	assert.Equal(t, domain.PageStatusOK, page.Status)

	calls := lookup.TodayCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "2026-02-08", calls[0].Date)
}

func TestTodayPage_PropagatesErrors(t *testing.T) {
	t.Parallel()

	lookup := &wordLookupMock{
		TodayFunc: func(ctx context.Context, date string) (*domain.Word, error) {
			return nil, domain.ErrNotFound
		},
	}

	page, err := NewService(slog.Default(), lookup).TodayPage(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, page)
}

func TestSlugPage_LogsInvalidData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	lookup := &wordLookupMock{
		BySlugFunc: func(ctx context.Context, slug string) (*domain.Word, error) {
			return wordWithVisual(domain.VisualizationMap, `{"stops":[{"name":"Nowhere","lat":200,"lng":0}]}`), nil
		},
	}

	page, err := NewService(log, lookup).SlugPage(context.Background(), "coffee")
	require.NoError(t, err)
	assert.Equal(t, domain.PageStatusInvalidData, page.Status)
	require.Len(t, page.Issues, 1)
	assert.Equal(t, "visual_data.stops[0].lat", page.Issues[0].Field)

	assert.Contains(t, buf.String(), "invalid visual data")
	assert.Contains(t, buf.String(), `"service":"presentation"`)
}
