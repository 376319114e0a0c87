package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/you/go-safar-pricing/internal/pricing"
)

// PriceEngine is the slice of the pricing engine the service consumes.
// Generation is pure and synchronous; concurrency and caching live here.
type PriceEngine interface {
	FlightQuotes(from, to, date string) []pricing.FlightQuote
	HotelQuotes(city, checkIn, checkOut string) []pricing.HotelQuote
}

// TripQuotes bundles a combined flight+stay search for one destination.
type TripQuotes struct {
	Flights      []pricing.FlightQuote `json:"flights"`
	Hotels       []pricing.HotelQuote  `json:"hotels"`
	LowestFlight int                   `json:"lowest_flight"`
	LowestHotel  int                   `json:"lowest_hotel"`
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// QuoteService fronts the engine with a TTL cache. Quotes are already stable
// for a calendar day, so cache keys carry the day and entries can never leak
// a stale price across midnight.
type QuoteService struct {
	engine PriceEngine
	cache  map[string]cacheEntry
	mu     sync.RWMutex
	ttl    time.Duration
	now    func() time.Time
}

func NewQuoteService(engine PriceEngine, ttl time.Duration) *QuoteService {
	return &QuoteService{
		engine: engine,
		cache:  make(map[string]cacheEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *QuoteService) day() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *QuoteService) cached(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ce, ok := s.cache[key]
	if !ok || s.now().After(ce.expiresAt) {
		return nil, false
	}
	return ce.value, true
}

func (s *QuoteService) store(key string, value any) {
	s.mu.Lock()
	s.cache[key] = cacheEntry{value: value, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
}

// Flights returns priced flight quotes for the route, serving repeated
// same-day searches from cache.
func (s *QuoteService) Flights(ctx context.Context, from, to, date string) ([]pricing.FlightQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := "flights|" + from + "|" + to + "|" + date + "|" + s.day()
	if v, ok := s.cached(key); ok {
		return v.([]pricing.FlightQuote), nil
	}
	quotes := s.engine.FlightQuotes(from, to, date)
	s.store(key, quotes)
	return quotes, nil
}

// Hotels returns priced stay quotes for the city and date range.
func (s *QuoteService) Hotels(ctx context.Context, city, checkIn, checkOut string) ([]pricing.HotelQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := "hotels|" + city + "|" + checkIn + "|" + checkOut + "|" + s.day()
	if v, ok := s.cached(key); ok {
		return v.([]pricing.HotelQuote), nil
	}
	quotes := s.engine.HotelQuotes(city, checkIn, checkOut)
	s.store(key, quotes)
	return quotes, nil
}

// Trip runs the flight and hotel searches for one destination concurrently
// and returns them with their headline lowest prices.
func (s *QuoteService) Trip(ctx context.Context, from, to, date, checkOut string) (TripQuotes, error) {
	var trip TripQuotes
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		flights, err := s.Flights(ctx, from, to, date)
		if err != nil {
			return err
		}
		trip.Flights = flights
		return nil
	})
	g.Go(func() error {
		hotels, err := s.Hotels(ctx, to, date, checkOut)
		if err != nil {
			return err
		}
		trip.Hotels = hotels
		return nil
	})
	if err := g.Wait(); err != nil {
		return TripQuotes{}, err
	}
	trip.LowestFlight = pricing.LowestFlightPrice(trip.Flights)
	trip.LowestHotel = pricing.LowestHotelPrice(trip.Hotels)
	return trip, nil
}
