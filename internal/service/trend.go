package service

import (
	"time"

	"github.com/you/go-safar-pricing/internal/pricing"
)

// MonthPoint is one point on a route's fare trend: the cheapest quote for a
// representative date in that month.
type MonthPoint struct {
	Month       string `json:"month"` // YYYY-MM
	LowestPrice int    `json:"lowest_price"`
	Currency    string `json:"currency"`
}

// TrendService projects a route's cheapest fare over the coming months by
// re-running the engine against the middle of each month. The series is as
// deterministic as the engine itself, so the fare calendar is stable across
// refreshes within a day.
type TrendService struct {
	engine PriceEngine
	now    func() time.Time
}

func NewTrendService(engine PriceEngine) *TrendService {
	return &TrendService{engine: engine, now: time.Now}
}

// MonthlyLowest returns one point per month starting with the current month.
// months defaults to 12 when zero or negative.
func (t *TrendService) MonthlyLowest(from, to string, months int) []MonthPoint {
	if months <= 0 {
		months = 12
	}
	now := t.now().UTC()
	out := make([]MonthPoint, 0, months)
	for i := 0; i < months; i++ {
		m := time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		date := m.Format("2006-01-02")
		quotes := t.engine.FlightQuotes(from, to, date)
		out = append(out, MonthPoint{
			Month:       m.Format("2006-01"),
			LowestPrice: pricing.LowestFlightPrice(quotes),
			Currency:    pricing.Currency,
		})
	}
	return out
}
