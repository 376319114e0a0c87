package pricing

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/you/go-safar-pricing/internal/demand"
	"github.com/you/go-safar-pricing/internal/prand"
)

// StopCount is the closed set of itinerary stop labels.
type StopCount string

const (
	StopsDirect StopCount = "Direct"
	StopsOne    StopCount = "1 Stop"
	StopsTwo    StopCount = "2 Stops"
)

// FlightQuote is one priced itinerary from one simulated provider. Quotes
// are generated fresh per search and never persisted.
type FlightQuote struct {
	ID         string    `json:"id"`
	Provider   string    `json:"provider"`
	Price      int       `json:"price"`
	Currency   string    `json:"currency"`
	Duration   string    `json:"duration"`
	Departure  string    `json:"departure"`
	Arrival    string    `json:"arrival"`
	Stops      StopCount `json:"stops"`
	BookingURL string    `json:"booking_url"`
	Logo       string    `json:"logo"`
	BestDeal   bool      `json:"is_best_deal"`
}

// Currency is the single currency every quote is priced in.
const Currency = "INR"

// minFlightPrice is the floor below which no synthesized fare is allowed.
const minFlightPrice = 3500

// FlightQuotes prices the route once per configured provider and returns the
// quotes sorted ascending by price, cheapest flagged as the best deal.
// Identical (from, to, date) inputs produce identical output for the whole
// calendar day because today's date is folded into every seed.
func (e *Engine) FlightQuotes(from, to, date string) []FlightQuote {
	dist := e.reg.DistanceKm(from, to)
	tierSum := int(e.reg.Tier(from)) + int(e.reg.Tier(to))

	base := baseFare(dist)
	// Big-city pairs carry a surcharge, small-town pairs a discount.
	base *= 1 + 0.05*float64(tierSum-2)

	today := e.today()
	out := make([]FlightQuote, 0, len(e.flights))
	for _, p := range e.flights {
		seed := prand.Seed(today, date, from, to, p.Name)
		d := demand.Multiplier(e.parseDate(date), e.now(), seed)
		jitter := 0.95 + prand.Float(seed+1)*0.10
		price := int(math.Round(base * p.BaseMultiplier * d * jitter))
		if price < minFlightPrice {
			price = minFlightPrice
		}

		durH := int(dist/800) + 1
		durM := int(prand.Float(seed+4) * 60)
		depH := 6 + int(prand.Float(seed+5)*14)
		depM := int(prand.Float(seed+6) * 60)
		// Minutes carry into hours; hours intentionally do not roll over
		// past midnight, matching how the UI renders late arrivals.
		arrH := depH + durH + (depM+durM)/60
		arrM := (depM + durM) % 60

		out = append(out, FlightQuote{
			ID:         quoteID("flight", p.Name, seed),
			Provider:   p.Name,
			Price:      price,
			Currency:   Currency,
			Duration:   fmt.Sprintf("%dh %dm", durH, durM),
			Departure:  fmt.Sprintf("%02d:%02d", depH, depM),
			Arrival:    fmt.Sprintf("%02d:%02d", arrH, arrM),
			Stops:      stopCount(dist, seed),
			BookingURL: p.BookingURL(from, to, date),
			Logo:       p.Logo,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].Provider < out[j].Provider
	})
	if len(out) > 0 {
		out[0].BestDeal = true
	}
	return out
}

// baseFare maps distance to a base fare with a diminishing per-km rate, so
// long-haul fares grow sublinearly.
func baseFare(distKm float64) float64 {
	switch {
	case distKm < 500:
		return 2500 + 3*distKm
	case distKm < 2000:
		return 4000 + 2.5*distKm
	case distKm < 5000:
		return 8000 + 2*distKm
	default:
		return 15000 + 1.5*distKm
	}
}

// stopCount adds stops only on longer routes, each behind its own seeded
// coin flip.
func stopCount(distKm float64, seed int64) StopCount {
	if distKm > 6000 && prand.Float(seed+3) > 0.5 {
		return StopsTwo
	}
	if distKm > 3000 && prand.Float(seed+2) > 0.5 {
		return StopsOne
	}
	return StopsDirect
}

// quoteID derives a stable UUID from the provider and seed, so a repeated
// search yields the same IDs and the UI can key its list on them.
func quoteID(domain, provider string, seed int64) string {
	name := domain + ":" + provider + ":" + strconv.FormatInt(seed, 10)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// LowestFlightPrice returns the minimum price across the quotes, or 0 for an
// empty slice. Callers treat 0 as "no data", not a real fare.
func LowestFlightPrice(quotes []FlightQuote) int {
	lowest := 0
	for _, q := range quotes {
		if lowest == 0 || q.Price < lowest {
			lowest = q.Price
		}
	}
	return lowest
}
