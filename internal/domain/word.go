package domain

import (
	"encoding/json"
	"time"
)

// Word is one validated entry of the word store.
type Word struct {
	ID                    int64
	PublishDate           string
	Word                  string
	Definition            string
	Phonetic              *string
	PronunciationAudioURL *string
	VisualizationType     VisualizationType
	Content               WordContent
	AccentColor           string
	CreatedAt             *time.Time
	ApprovedBy            *string
	RootFamily            *string
}

// WordContent is the editorial payload of a word. VisualData stays raw until
// a page for the word is prepared; its shape depends on the visualization type.
type WordContent struct {
	Hook       string
	FunFact    string
	VisualData json.RawMessage
}

// Slug returns the derived lookup slug of the word.
func (w *Word) Slug() string {
	return Slugify(w.Word)
}

// HistoryEntry is one item of the "previous words" navigation.
type HistoryEntry struct {
	Date string
	Word string
	Slug string
}

// NewHistoryEntry derives a HistoryEntry from a validated word.
func NewHistoryEntry(w *Word) HistoryEntry {
	return HistoryEntry{
		Date: w.PublishDate,
		Word: w.Word,
		Slug: w.Slug(),
	}
}
