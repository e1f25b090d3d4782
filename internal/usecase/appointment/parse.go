package appointment

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

// Accepted request date formats. Layouts without an offset are read in the
// configured location.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

const dayLayout = "2006-01-02"

func parseDateTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, domain.ErrValidation
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrValidation
}

// parseDay reads a YYYY-MM-DD day, or the current day when raw is empty.
func parseDay(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.In(loc), nil
	}

	day, err := time.ParseInLocation(dayLayout, raw, loc)
	if err != nil {
		return time.Time{}, domain.ErrValidation
	}
	return day, nil
}
