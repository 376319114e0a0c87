// Package pricing is the meta-search quote engine: a deterministic synthetic
// price generator that produces plausible flight and hotel quotes across the
// simulated provider tables without calling any external pricing API. Prices
// combine great-circle distance, city tier, seasonal demand, and a
// string-seeded PRNG, so a given search is stable for a whole calendar day
// and drifts to fresh values the next.
package pricing

import (
	"time"

	"github.com/you/go-safar-pricing/internal/geo"
)

const dateLayout = "2006-01-02"

// Engine generates flight and hotel quotes. All state is immutable after
// construction, so a single Engine is safe for concurrent use; every call
// allocates and returns a fresh result slice.
type Engine struct {
	reg     *geo.Registry
	flights []FlightProvider
	hotels  []HotelProvider
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithNow overrides the clock the engine folds into every seed. Tests use it
// to freeze "today"; production code leaves it at time.Now.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an engine over a city registry and provider tables. The
// slices are taken as-is and must not be mutated afterwards.
func NewEngine(reg *geo.Registry, flights []FlightProvider, hotels []HotelProvider, opts ...Option) *Engine {
	e := &Engine{
		reg:     reg,
		flights: flights,
		hotels:  hotels,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// today returns the current calendar date in the engine's clock, formatted
// the way it is folded into seeds.
func (e *Engine) today() string {
	return e.now().UTC().Format(dateLayout)
}

// parseDate is deliberately permissive: the callers pass through whatever
// the UI sent, and an unparseable date degrades to "today" rather than
// failing the whole search.
func (e *Engine) parseDate(s string) time.Time {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	n := e.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}
