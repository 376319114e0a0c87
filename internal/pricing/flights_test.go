package pricing

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/you/go-safar-pricing/internal/geo"
)

// fixedNow freezes "today" so seeds are stable across the whole test run.
var fixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return NewEngine(
		geo.DefaultRegistry(),
		DefaultFlightProviders(),
		DefaultHotelProviders(),
		WithNow(func() time.Time { return fixedNow }),
	)
}

func TestFlightQuotesDeterministicWithinDay(t *testing.T) {
	e := testEngine()

	a := e.FlightQuotes("Delhi", "Goa", "2025-04-09")
	b := e.FlightQuotes("Delhi", "Goa", "2025-04-09")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same-day repeat search differs\na=%+v\nb=%+v", a, b)
	}

	// A fresh engine with the same frozen clock must agree too.
	c := testEngine().FlightQuotes("Delhi", "Goa", "2025-04-09")
	if !reflect.DeepEqual(a, c) {
		t.Fatal("fresh engine with same clock produced different quotes")
	}
}

func TestFlightQuotesDriftAcrossDays(t *testing.T) {
	a := testEngine().FlightQuotes("Delhi", "Goa", "2025-04-09")

	nextDay := NewEngine(
		geo.DefaultRegistry(),
		DefaultFlightProviders(),
		DefaultHotelProviders(),
		WithNow(func() time.Time { return fixedNow.AddDate(0, 0, 1) }),
	)
	b := nextDay.FlightQuotes("Delhi", "Goa", "2025-04-09")

	if reflect.DeepEqual(a, b) {
		t.Fatal("quotes should drift when the calendar day changes")
	}
}

func TestFlightQuotesOnePerProviderSortedWithBestDeal(t *testing.T) {
	e := testEngine()
	quotes := e.FlightQuotes("Chennai", "Mumbai", "2025-04-09")

	require.Len(t, quotes, len(DefaultFlightProviders()))

	bestDeals := 0
	for i, q := range quotes {
		if q.BestDeal {
			bestDeals++
		}
		if i > 0 && quotes[i-1].Price > q.Price {
			t.Fatalf("quotes not sorted ascending at index %d", i)
		}
	}
	require.Equal(t, 1, bestDeals, "exactly one best deal")
	require.True(t, quotes[0].BestDeal, "cheapest quote carries the flag")
	require.Equal(t, LowestFlightPrice(quotes), quotes[0].Price)
}

func TestFlightQuotesShortDomesticRoute(t *testing.T) {
	e := testEngine()
	date := fixedNow.AddDate(0, 0, 30).Format("2006-01-02")
	quotes := e.FlightQuotes("Chennai", "Mumbai", date)

	for _, q := range quotes {
		if q.Price < 3500 || q.Price > 18000 {
			t.Fatalf("%s: price %d outside plausible short-domestic range", q.Provider, q.Price)
		}
		require.Equal(t, Currency, q.Currency)
		require.Equal(t, StopsDirect, q.Stops, "short route should be direct")
		require.NotEmpty(t, q.ID)
		require.NotEmpty(t, q.BookingURL)
		require.NotEmpty(t, q.Logo)
	}
}

func TestFlightQuotesUnknownCityFallback(t *testing.T) {
	e := testEngine()
	quotes := e.FlightQuotes("Nowhereville", "Atlantis", "2025-04-09")

	require.Len(t, quotes, len(DefaultFlightProviders()))
	for _, q := range quotes {
		require.GreaterOrEqual(t, q.Price, minFlightPrice)
		// 1500 km fallback keeps the route under the stop threshold.
		require.Equal(t, StopsDirect, q.Stops)
	}
}

func TestFlightQuotesPriceFloor(t *testing.T) {
	e := testEngine()
	// Off-season tiny route with the far-out discount: worst case for the floor.
	quotes := e.FlightQuotes("Mysore", "Bangalore", "2025-08-20")
	for _, q := range quotes {
		if q.Price < minFlightPrice {
			t.Fatalf("%s: price %d below floor %d", q.Provider, q.Price, minFlightPrice)
		}
	}
}

func TestFlightQuotesSchedulePlausible(t *testing.T) {
	e := testEngine()
	for _, q := range e.FlightQuotes("Delhi", "Singapore", "2025-04-09") {
		require.Regexp(t, `^\d{2}:\d{2}$`, q.Departure)
		require.Regexp(t, `^\d{2}:\d{2}$`, q.Arrival)
		require.Regexp(t, `^\d+h \d+m$`, q.Duration)

		dep := q.Departure[:2]
		if dep < "06" || dep > "20" {
			t.Fatalf("departure hour %s outside the 06-20 window", dep)
		}
	}
}

func TestFlightQuotesBookingURLCarriesRoute(t *testing.T) {
	e := testEngine()
	for _, q := range e.FlightQuotes("Delhi", "Goa", "2025-04-09") {
		if !strings.Contains(q.BookingURL, "Delhi") || !strings.Contains(q.BookingURL, "Goa") {
			t.Fatalf("%s: booking URL %q missing route", q.Provider, q.BookingURL)
		}
	}
}

func TestFlightQuotesMalformedDateDegrades(t *testing.T) {
	e := testEngine()
	quotes := e.FlightQuotes("Delhi", "Goa", "not-a-date")
	require.Len(t, quotes, len(DefaultFlightProviders()))
	for _, q := range quotes {
		require.GreaterOrEqual(t, q.Price, minFlightPrice)
	}
}

func TestBaseFareBrackets(t *testing.T) {
	cases := []struct {
		dist float64
		want float64
	}{
		{100, 2500 + 3*100},
		{499, 2500 + 3*499},
		{500, 4000 + 2.5*500},
		{1999, 4000 + 2.5*1999},
		{2000, 8000 + 2*2000},
		{4999, 8000 + 2*4999},
		{5000, 15000 + 1.5*5000},
		{9000, 15000 + 1.5*9000},
	}
	for _, c := range cases {
		if got := baseFare(c.dist); got != c.want {
			t.Fatalf("baseFare(%.0f): got %v, want %v", c.dist, got, c.want)
		}
	}
}

func TestLowestFlightPrice(t *testing.T) {
	require.Equal(t, 0, LowestFlightPrice(nil))
	require.Equal(t, 0, LowestFlightPrice([]FlightQuote{}))

	quotes := []FlightQuote{{Price: 7200}, {Price: 4100}, {Price: 9900}}
	require.Equal(t, 4100, LowestFlightPrice(quotes))
}
