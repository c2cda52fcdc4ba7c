package domain

import (
	"regexp"
	"time"
)

// DateLayout is the wire and storage format of publish dates.
const DateLayout = "2006-01-02"

// ReferenceLocation is the timezone that defines "today" for every visitor.
var ReferenceLocation = time.UTC

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Today returns the calendar date of now in ReferenceLocation as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.In(ReferenceLocation).Format(DateLayout)
}

// IsDate reports whether s is a strict YYYY-MM-DD string naming a real calendar date.
func IsDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.ParseInLocation(DateLayout, s, ReferenceLocation)
	return err == nil
}

// IsAfter reports whether date a is strictly later than date b.
// Both must already be valid YYYY-MM-DD strings, which order lexicographically.
func IsAfter(a, b string) bool {
	return a > b
}
