// Package demand models how much a travel date inflates or deflates a base
// price: season, day of week, booking lead time, and a bounded seeded jitter.
package demand

import (
	"time"

	"github.com/you/go-safar-pricing/internal/prand"
)

// Multiplier returns the combined demand factor for a travel date, always
// positive. now is injected rather than read from the clock so callers can
// freeze "today" in tests; seed drives the jitter band reproducibly.
//
// The factors multiply independently:
//   - season: May/June and December peak (x1.3), monsoon July-September is
//     off-season (x0.85), everything else neutral.
//   - weekend: Friday or Saturday departures carry a x1.15 premium.
//   - lead time: last-minute bookings cost more, far-out bookings less.
//   - jitter: 0.85 + Float(seed)*0.30, a deterministic +-15% band.
func Multiplier(travel, now time.Time, seed int64) float64 {
	return seasonFactor(travel.Month()) *
		weekendFactor(travel.Weekday()) *
		leadTimeFactor(daysUntil(travel, now)) *
		(0.85 + prand.Float(seed)*0.30)
}

func seasonFactor(m time.Month) float64 {
	switch m {
	case time.May, time.June, time.December:
		return 1.3
	case time.July, time.August, time.September:
		return 0.85
	default:
		return 1.0
	}
}

func weekendFactor(d time.Weekday) float64 {
	if d == time.Friday || d == time.Saturday {
		return 1.15
	}
	return 1.0
}

// leadTimeFactor checks brackets in ascending order of N, so a negative or
// zero lead time (past or same-day travel) lands in the last-minute bracket.
func leadTimeFactor(days int) float64 {
	switch {
	case days <= 3:
		return 1.4
	case days <= 7:
		return 1.2
	case days <= 14:
		return 1.05
	case days >= 60:
		return 0.9
	default:
		return 1.0
	}
}

// daysUntil counts whole calendar days from now's date to the travel date.
func daysUntil(travel, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(travel.Year(), travel.Month(), travel.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today).Hours() / 24)
}
