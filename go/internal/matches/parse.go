package matches

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mcdev12/leaguehub/go/internal/errs"
)

const (
	dateLayout       = time.DateOnly
	clockLayout      = time.TimeOnly
	shortClockLayout = "15:04"
)

// ParseScore parses a score as entered by a user. Missing, non-integer,
// negative and out-of-range values are rejected; scores are stored as int32.
func ParseScore(field, text string) (*int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.Validation(field, "is required")
	}
	v, err := strconv.ParseInt(text, 10, 32)
	switch {
	case err == nil && v < 0, errors.Is(err, strconv.ErrRange) && strings.HasPrefix(text, "-"):
		return nil, errs.Validation(field, "must not be negative")
	case errors.Is(err, strconv.ErrRange):
		return nil, errs.Validation(field, "must be at most %d", math.MaxInt32)
	case err != nil:
		return nil, errs.Validation(field, "must be a whole number")
	}
	n := int(v)
	return &n, nil
}

// parseDate parses a YYYY-MM-DD calendar date as midnight UTC
func parseDate(text string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, errs.Validation("match_date", "must be a calendar date in YYYY-MM-DD form")
	}
	return d, nil
}

// parseClock accepts HH:MM or HH:MM:SS and returns HH:MM:SS
func parseClock(text string) (string, error) {
	text = strings.TrimSpace(text)
	for _, layout := range []string{clockLayout, shortClockLayout} {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Format(clockLayout), nil
		}
	}
	return "", errs.Validation("match_time", "must be a time in HH:MM or HH:MM:SS form")
}

func validateScores(home, away *int) error {
	if home == nil {
		return errs.Validation("home_score", "is required")
	}
	if away == nil {
		return errs.Validation("away_score", "is required")
	}
	if *home < 0 {
		return errs.Validation("home_score", "must not be negative")
	}
	if *away < 0 {
		return errs.Validation("away_score", "must not be negative")
	}
	if *home > math.MaxInt32 {
		return errs.Validation("home_score", "must be at most %d", math.MaxInt32)
	}
	if *away > math.MaxInt32 {
		return errs.Validation("away_score", "must be at most %d", math.MaxInt32)
	}
	return nil
}
