package schema

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

// RawWord is a daily_words row exactly as the store returned it. Every column
// is nullable here so that a malformed row reaches validation instead of
// failing inside the driver.
type RawWord struct {
	ID                    *int64     `db:"id"                      json:"id"                      validate:"required"`
	PublishDate           *string    `db:"publish_date"            json:"publish_date"            validate:"required,isodate"`
	Word                  *string    `db:"word"                    json:"word"                    validate:"required,notblank"`
	Definition            *string    `db:"definition"              json:"definition"              validate:"required,notblank"`
	Phonetic              *string    `db:"phonetic"                json:"phonetic"`
	PronunciationAudioURL *string    `db:"pronunciation_audio_url" json:"pronunciation_audio_url"`
	VisualizationType     *string    `db:"visualization_type"      json:"visualization_type"      validate:"required,vistype"`
	ContentJSON           []byte     `db:"content_json"            json:"-"`
	AccentColor           *string    `db:"accent_color"            json:"accent_color"            validate:"required,hexrgb"`
	CreatedAt             *time.Time `db:"created_at"              json:"created_at"`
	ApprovedBy            *string    `db:"approved_by"             json:"approved_by"`
	RootFamily            *string    `db:"root_family"             json:"root_family"`
}

// Key identifies the row in logs: its publish date when present, else its id.
func (r RawWord) Key() string {
	switch {
	case r.PublishDate != nil:
		return *r.PublishDate
	case r.ID != nil:
		return "id:" + strconv.FormatInt(*r.ID, 10)
	default:
		return "unknown"
	}
}

// ValidateWord turns a stored row into a domain.Word. All violations are
// collected; on any violation the whole record is rejected.
func ValidateWord(raw RawWord) (*domain.Word, error) {
	errs := structErrors("", raw)

	content, contentErrs := decodeContent(raw.ContentJSON)
	errs = append(errs, contentErrs...)

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	return &domain.Word{
		ID:                    *raw.ID,
		PublishDate:           *raw.PublishDate,
		Word:                  *raw.Word,
		Definition:            *raw.Definition,
		Phonetic:              raw.Phonetic,
		PronunciationAudioURL: raw.PronunciationAudioURL,
		VisualizationType:     domain.VisualizationType(*raw.VisualizationType),
		Content:               content,
		AccentColor:           *raw.AccentColor,
		CreatedAt:             raw.CreatedAt,
		ApprovedBy:            raw.ApprovedBy,
		RootFamily:            raw.RootFamily,
	}, nil
}

var jsonNull = []byte("null")

// decodeContent checks content_json: an object with string hook, string
// fun_fact and a non-null visual_data. visual_data itself is kept raw.
func decodeContent(data []byte) (domain.WordContent, []domain.FieldError) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return domain.WordContent{}, []domain.FieldError{{Field: "content_json", Message: "required"}}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.WordContent{}, []domain.FieldError{{Field: "content_json", Message: "must be a JSON object"}}
	}

	var (
		content domain.WordContent
		errs    []domain.FieldError
	)

	if fe := decodeString(fields, "hook", &content.Hook); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := decodeString(fields, "fun_fact", &content.FunFact); fe != nil {
		errs = append(errs, *fe)
	}

	visual := bytes.TrimSpace(fields["visual_data"])
	if len(visual) == 0 || bytes.Equal(visual, jsonNull) {
		errs = append(errs, domain.FieldError{Field: "content_json.visual_data", Message: "required"})
	} else {
		content.VisualData = json.RawMessage(visual)
	}

	return content, errs
}

func decodeString(fields map[string]json.RawMessage, key string, dst *string) *domain.FieldError {
	raw := bytes.TrimSpace(fields[key])
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return &domain.FieldError{Field: "content_json." + key, Message: "required"}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &domain.FieldError{Field: "content_json." + key, Message: "must be a string"}
	}
	return nil
}
