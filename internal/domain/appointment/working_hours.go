package appointment

import (
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
)

// Providers take bookings on the hour, from FirstHour to LastHour inclusive.
const (
	FirstHour = 8
	LastHour  = 19
)

type TimeSlot struct {
	Time      string    `json:"time"`
	Value     time.Time `json:"value"`
	Available bool      `json:"available"`
}

// DaySlots lists the bookable hour starts of day, in loc.
func DaySlots(day time.Time, loc *time.Location) []time.Time {
	start, _ := clock.DayBounds(day, loc)

	slots := make([]time.Time, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		slots = append(slots, time.Date(start.Year(), start.Month(), start.Day(), h, 0, 0, 0, loc))
	}
	return slots
}
