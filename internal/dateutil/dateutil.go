// Package dateutil resolves user-supplied post dates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date value that is neither a keyword nor YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// ISOLayout is the only literal date layout accepted.
const ISOLayout = "2006-01-02"

// MaxDateLength limits input length to prevent abuse.
const MaxDateLength = 30

// ResolveDate turns a date value into a calendar date.
//   - "" / "auto" / "today" → now
//   - "yesterday"           → now minus one day
//   - "YYYY-MM-DD"          → that date, in now's location
//
// Keywords are case-insensitive. The time parameter allows injecting a
// fixed clock for testing.
func ResolveDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxDateLength {
		return time.Time{}, fmt.Errorf("%w: exceeds %d characters", ErrInvalidDate, MaxDateLength)
	}

	switch strings.ToLower(value) {
	case "", "auto", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	t, err := time.ParseInLocation(ISOLayout, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, use auto, today, yesterday or YYYY-MM-DD", ErrInvalidDate, value)
	}
	return t, nil
}
