package word

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

const (
	DefaultHistoryLimit = 10
	MinHistoryLimit     = 1
	MaxHistoryLimit     = 50
)

// HistoryInput holds the raw history query parameters.
type HistoryInput struct {
	Type   string
	Limit  string // empty = DefaultHistoryLimit
	Before string // empty = today
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Type == "":
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	case !domain.VisualizationType(i.Type).IsValid():
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of MAP, TREE, TIMELINE, GRID"})
	}

	if i.Limit != "" {
		n, ok := parseLimit(i.Limit)
		switch {
		case !ok:
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		case n < MinHistoryLimit || n > MaxHistoryLimit:
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 50"})
		}
	}

	if i.Before != "" && !domain.IsDate(i.Before) {
		errs = append(errs, domain.FieldError{Field: "before", Message: "must be a YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// limit returns the effective limit. Call only after Validate succeeded.
func (i HistoryInput) limit() int {
	if i.Limit == "" {
		return DefaultHistoryLimit
	}
	n, _ := parseLimit(i.Limit)
	return n
}

var decimalPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// parseLimit accepts plain decimal text with an integral value ("7", " 7 ", "7.0").
// Hex, exponent and special float forms are rejected.
func parseLimit(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	if math.Abs(f) > math.MaxInt32 {
		return 0, true // integral but far out of range
	}
	return int(f), true
}
