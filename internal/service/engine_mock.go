package service

import (
	"sync/atomic"

	"github.com/you/go-safar-pricing/internal/pricing"
)

// EngineMock is a canned PriceEngine for service tests; it counts calls so
// cache behavior can be asserted.
type EngineMock struct {
	flights []pricing.FlightQuote
	hotels  []pricing.HotelQuote

	flightCalls int32
	hotelCalls  int32
}

func (m *EngineMock) FlightQuotes(from, to, date string) []pricing.FlightQuote {
	atomic.AddInt32(&m.flightCalls, 1)
	return m.flights
}

func (m *EngineMock) HotelQuotes(city, checkIn, checkOut string) []pricing.HotelQuote {
	atomic.AddInt32(&m.hotelCalls, 1)
	return m.hotels
}

func (m *EngineMock) FlightCalls() int32 { return atomic.LoadInt32(&m.flightCalls) }
func (m *EngineMock) HotelCalls() int32  { return atomic.LoadInt32(&m.hotelCalls) }
