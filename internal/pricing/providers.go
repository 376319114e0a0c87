package pricing

import "net/url"

// StayKind is the closed set of property kinds a hotel provider lists.
type StayKind string

const (
	StayHotel  StayKind = "hotel"
	StayHostel StayKind = "hostel"
	StayAll    StayKind = "all"
)

// FlightProvider is one simulated flight meta-search source. BaseMultiplier
// skews the whole provider cheap or expensive relative to the computed base
// fare; BookingURL builds the deep link the UI opens on "Book Now".
type FlightProvider struct {
	Name           string
	BaseMultiplier float64
	Logo           string
	BookingURL     func(from, to, date string) string
}

// HotelProvider is one simulated accommodation source. Kind controls whether
// the provider lists hotels, hostels, or both.
type HotelProvider struct {
	Name           string
	BaseMultiplier float64
	Kind           StayKind
	Logo           string
	BookingURL     func(city, checkIn, checkOut string) string
}

// DefaultFlightProviders returns the built-in flight provider table. Order
// is insignificant; results are sorted by price regardless.
func DefaultFlightProviders() []FlightProvider {
	return []FlightProvider{
		{
			Name:           "MakeMyTrip",
			BaseMultiplier: 1.0,
			Logo:           "/logos/makemytrip.png",
			BookingURL: func(from, to, date string) string {
				return "https://www.makemytrip.com/flight/search?from=" + url.QueryEscape(from) +
					"&to=" + url.QueryEscape(to) + "&date=" + url.QueryEscape(date)
			},
		},
		{
			Name:           "Goibibo",
			BaseMultiplier: 0.97,
			Logo:           "/logos/goibibo.png",
			BookingURL: func(from, to, date string) string {
				return "https://www.goibibo.com/flights/?src=" + url.QueryEscape(from) +
					"&dest=" + url.QueryEscape(to) + "&depart=" + url.QueryEscape(date)
			},
		},
		{
			Name:           "Cleartrip",
			BaseMultiplier: 1.05,
			Logo:           "/logos/cleartrip.png",
			BookingURL: func(from, to, date string) string {
				return "https://www.cleartrip.com/flights/results?from=" + url.QueryEscape(from) +
					"&to=" + url.QueryEscape(to) + "&depart_date=" + url.QueryEscape(date)
			},
		},
		{
			Name:           "Yatra",
			BaseMultiplier: 1.02,
			Logo:           "/logos/yatra.png",
			BookingURL: func(from, to, date string) string {
				return "https://www.yatra.com/flights?origin=" + url.QueryEscape(from) +
					"&destination=" + url.QueryEscape(to) + "&date=" + url.QueryEscape(date)
			},
		},
		{
			Name:           "EaseMyTrip",
			BaseMultiplier: 0.94,
			Logo:           "/logos/easemytrip.png",
			BookingURL: func(from, to, date string) string {
				return "https://www.easemytrip.com/flights.html?org=" + url.QueryEscape(from) +
					"&dst=" + url.QueryEscape(to) + "&dep=" + url.QueryEscape(date)
			},
		},
	}
}

// DefaultHotelProviders returns the built-in accommodation provider table.
func DefaultHotelProviders() []HotelProvider {
	return []HotelProvider{
		{
			Name:           "Booking.com",
			BaseMultiplier: 1.08,
			Kind:           StayAll,
			Logo:           "/logos/booking.png",
			BookingURL: func(city, checkIn, checkOut string) string {
				return "https://www.booking.com/searchresults.html?ss=" + url.QueryEscape(city) +
					"&checkin=" + url.QueryEscape(checkIn) + "&checkout=" + url.QueryEscape(checkOut)
			},
		},
		{
			Name:           "Agoda",
			BaseMultiplier: 0.98,
			Kind:           StayHotel,
			Logo:           "/logos/agoda.png",
			BookingURL: func(city, checkIn, checkOut string) string {
				return "https://www.agoda.com/search?city=" + url.QueryEscape(city) +
					"&checkIn=" + url.QueryEscape(checkIn) + "&checkOut=" + url.QueryEscape(checkOut)
			},
		},
		{
			Name:           "OYO",
			BaseMultiplier: 0.82,
			Kind:           StayHotel,
			Logo:           "/logos/oyo.png",
			BookingURL: func(city, checkIn, checkOut string) string {
				return "https://www.oyorooms.com/search?location=" + url.QueryEscape(city) +
					"&checkin=" + url.QueryEscape(checkIn) + "&checkout=" + url.QueryEscape(checkOut)
			},
		},
		{
			Name:           "Hostelworld",
			BaseMultiplier: 0.9,
			Kind:           StayHostel,
			Logo:           "/logos/hostelworld.png",
			BookingURL: func(city, checkIn, checkOut string) string {
				return "https://www.hostelworld.com/s?q=" + url.QueryEscape(city) +
					"&from=" + url.QueryEscape(checkIn) + "&to=" + url.QueryEscape(checkOut)
			},
		},
	}
}
