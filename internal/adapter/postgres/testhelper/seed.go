package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WordRow is a daily_words row to insert. Fields are inserted verbatim, so
// tests can seed records that fail validation.
type WordRow struct {
	PublishDate           string
	Word                  string
	Definition            string
	Phonetic              *string
	PronunciationAudioURL *string
	VisualizationType     string
	ContentJSON           string
	AccentColor           string
	ApprovedBy            *string
	RootFamily            *string
}

// DefaultWordRow returns a valid TIMELINE row for the given word and date.
func DefaultWordRow(word, date string) WordRow {
	return WordRow{
		PublishDate:       date,
		Word:              word,
		Definition:        "Definition of " + word,
		VisualizationType: "TIMELINE",
		ContentJSON: `{"hook":"A hook","fun_fact":"A fact","visual_data":` +
			`{"events":[{"era":"1600s","title":"First recorded"}]}}`,
		AccentColor: "#6F4E37",
	}
}

// SeedWord inserts row into daily_words and returns its id.
func SeedWord(t *testing.T, pool *pgxpool.Pool, row WordRow) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO daily_words (publish_date, word, definition, phonetic, pronunciation_audio_url,
		     visualization_type, content_json, accent_color, created_at, approved_by, root_family)
		 VALUES ($1::date, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10, $11)
		 RETURNING id`,
		row.PublishDate, row.Word, row.Definition, row.Phonetic, row.PronunciationAudioURL,
		row.VisualizationType, row.ContentJSON, row.AccentColor,
		time.Now().UTC().Truncate(time.Microsecond), row.ApprovedBy, row.RootFamily,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedWord %s: %v", row.PublishDate, err)
	}

	return id
}
