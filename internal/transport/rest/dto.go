package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

// WordResponse is the JSON form of a word record.
type WordResponse struct {
	ID                    int64           `json:"id"`
	PublishDate           string          `json:"publish_date"`
	Word                  string          `json:"word"`
	Slug                  string          `json:"slug"`
	Definition            string          `json:"definition"`
	Phonetic              *string         `json:"phonetic"`
	PronunciationAudioURL *string         `json:"pronunciation_audio_url"`
	VisualizationType     string          `json:"visualization_type"`
	ContentJSON           ContentResponse `json:"content_json"`
	AccentColor           string          `json:"accent_color"`
	CreatedAt             *time.Time      `json:"created_at"`
	ApprovedBy            *string         `json:"approved_by"`
	RootFamily            *string         `json:"root_family"`
}

// ContentResponse is the editorial content of a word.
type ContentResponse struct {
	Hook       string          `json:"hook"`
	FunFact    string          `json:"fun_fact"`
	VisualData json.RawMessage `json:"visual_data"`
}

// HistoryEntryResponse is one item of GET /word/history.
type HistoryEntryResponse struct {
	Date string `json:"date"`
	Word string `json:"word"`
	Slug string `json:"slug"`
}

// PageResponse is the render-ready view of a word.
type PageResponse struct {
	Word   WordResponse         `json:"word"`
	Layout string               `json:"layout"`
	Visual domain.VisualPayload `json:"visual"`
	Status string               `json:"status"`
	Issues []domain.FieldError  `json:"issues,omitempty"`
}

func toWordResponse(w *domain.Word) *WordResponse {
	if w == nil {
		return nil
	}
	return &WordResponse{
		ID:                    w.ID,
		PublishDate:           w.PublishDate,
		Word:                  w.Word,
		Slug:                  w.Slug(),
		Definition:            w.Definition,
		Phonetic:              w.Phonetic,
		PronunciationAudioURL: w.PronunciationAudioURL,
		VisualizationType:     w.VisualizationType.String(),
		ContentJSON: ContentResponse{
			Hook:       w.Content.Hook,
			FunFact:    w.Content.FunFact,
			VisualData: w.Content.VisualData,
		},
		AccentColor: w.AccentColor,
		CreatedAt:   w.CreatedAt,
		ApprovedBy:  w.ApprovedBy,
		RootFamily:  w.RootFamily,
	}
}

func toHistoryResponse(entries []domain.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{Date: e.Date, Word: e.Word, Slug: e.Slug})
	}
	return out
}

// toPreviewResponse keys by type tag; absent types encode as null.
func toPreviewResponse(m map[domain.VisualizationType]*domain.Word) map[string]*WordResponse {
	out := make(map[string]*WordResponse, 4)
	for _, vt := range domain.AllVisualizationTypes() {
		out[vt.String()] = toWordResponse(m[vt])
	}
	return out
}

func toPageResponse(p *domain.Page) PageResponse {
	return PageResponse{
		Word:   *toWordResponse(p.Word),
		Layout: p.Layout,
		Visual: p.Visual,
		Status: p.Status.String(),
		Issues: p.Issues,
	}
}
