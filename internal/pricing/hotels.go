package pricing

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/you/go-safar-pricing/internal/demand"
	"github.com/you/go-safar-pricing/internal/geo"
	"github.com/you/go-safar-pricing/internal/prand"
)

// PropertyType labels a quote for the UI filter chips.
type PropertyType string

const (
	PropertyHotel  PropertyType = "Hotel"
	PropertyHostel PropertyType = "Hostel"
)

// HotelQuote is one priced stay option from one simulated provider.
type HotelQuote struct {
	ID            string       `json:"id"`
	HotelName     string       `json:"hotel_name"`
	Rating        float64      `json:"rating"`
	PricePerNight int          `json:"price_per_night"`
	TotalPrice    int          `json:"total_price"`
	Currency      string       `json:"currency"`
	Provider      string       `json:"provider"`
	Nights        int          `json:"nights"`
	BookingURL    string       `json:"booking_url"`
	Logo          string       `json:"logo"`
	Type          PropertyType `json:"type"`
	BestDeal      bool         `json:"is_best_deal"`
	Amenities     []string     `json:"amenities"`
}

var hotelPrefixes = []string{"Grand", "Royal", "Blue Lotus", "Golden", "Emerald", "Crown", "Heritage", "Silver Sands"}

var hotelSuffixes = []string{"Palace", "Residency", "Inn", "Suites", "Regency", "Retreat", "Towers", "Lodge"}

var hostelNames = []string{"Backpacker's Den", "Wander Nest", "Nomad House", "Common Room", "The Dorm Story"}

// amenityPool is ordered cheapest-first; a property gets the first
// floor(rating)+2 entries, so better-rated stays list more amenities.
var amenityPool = []string{
	"Free WiFi",
	"Air Conditioning",
	"Breakfast Included",
	"Restaurant",
	"Room Service",
	"Swimming Pool",
	"Gym",
	"Spa",
	"Airport Shuttle",
}

// nightlyFloor is the minimum nightly price by city tier; hostels in small
// towns still never quote below this.
var nightlyFloor = map[geo.Tier]int{
	geo.TierMetro:     1200,
	geo.TierSecondary: 800,
	geo.TierSmall:     500,
}

// baseNightly is the tier-scaled starting nightly price before provider,
// type, and demand multipliers.
var baseNightly = map[geo.Tier]float64{
	geo.TierMetro:     5500,
	geo.TierSecondary: 3500,
	geo.TierSmall:     2200,
}

// HotelQuotes prices a stay in the city across every configured provider.
// Each provider contributes two or three seeded options; the flattened set
// comes back sorted ascending by nightly price with the cheapest flagged.
func (e *Engine) HotelQuotes(city, checkIn, checkOut string) []HotelQuote {
	tier := e.reg.Tier(city)
	base, ok := baseNightly[tier]
	if !ok {
		base = baseNightly[geo.TierSecondary]
	}
	nights := e.nights(checkIn, checkOut)
	today := e.today()

	var out []HotelQuote
	for _, p := range e.hotels {
		provSeed := prand.Seed(today, checkIn, city, p.Name)
		numOptions := 2 + int(prand.Float(provSeed)*2)
		for i := 0; i < numOptions; i++ {
			seed := prand.Seed(today, checkIn, city, p.Name, strconv.Itoa(i))
			d := demand.Multiplier(e.parseDate(checkIn), e.now(), seed)

			var (
				name     string
				rating   float64
				typeMult float64
				ptype    PropertyType
			)
			if p.Kind == StayHostel {
				name = pick(hostelNames, seed+1) + " " + titleCase(city)
				rating = round1(3.5 + prand.Float(seed+3)*1.5)
				typeMult = 0.4
				ptype = PropertyHostel
			} else {
				name = pick(hotelPrefixes, seed+1) + " " + pick(hotelSuffixes, seed+2)
				rating = round1(3.0 + prand.Float(seed+3)*2.0)
				// Higher-rated properties cost more.
				typeMult = 0.6 + (rating/5)*0.8
				ptype = PropertyHotel
			}

			nightly := int(math.Round(base * p.BaseMultiplier * typeMult * d * (0.9 + 0.2*prand.Float(seed+4))))
			if floor := nightlyFloor[tier]; nightly < floor {
				nightly = floor
			}

			out = append(out, HotelQuote{
				ID:            quoteID("hotel", p.Name+":"+strconv.Itoa(i), seed),
				HotelName:     name,
				Rating:        rating,
				PricePerNight: nightly,
				TotalPrice:    nightly * nights,
				Currency:      Currency,
				Provider:      p.Name,
				Nights:        nights,
				BookingURL:    p.BookingURL(city, checkIn, checkOut),
				Logo:          p.Logo,
				Type:          ptype,
				Amenities:     amenityPool[:int(rating)+2],
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PricePerNight != out[j].PricePerNight {
			return out[i].PricePerNight < out[j].PricePerNight
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > 0 {
		out[0].BestDeal = true
	}
	return out
}

// nights counts whole nights between the stay dates, never less than one:
// a same-day checkout is still billed as a single night.
func (e *Engine) nights(checkIn, checkOut string) int {
	in := e.parseDate(checkIn)
	out := e.parseDate(checkOut)
	n := int(math.Ceil(out.Sub(in).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// pick selects a deterministic element of list from the seed.
func pick(list []string, seed int64) string {
	return list[int(prand.Float(seed)*float64(len(list)))]
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func titleCase(city string) string {
	city = strings.TrimSpace(city)
	if i := strings.Index(city, ","); i >= 0 {
		city = strings.TrimSpace(city[:i])
	}
	words := strings.Fields(strings.ToLower(city))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// LowestHotelPrice returns the minimum nightly price across the quotes, or 0
// for an empty slice ("no data", not a real price).
func LowestHotelPrice(quotes []HotelQuote) int {
	lowest := 0
	for _, q := range quotes {
		if lowest == 0 || q.PricePerNight < lowest {
			lowest = q.PricePerNight
		}
	}
	return lowest
}
