package geo

import (
	"math"
	"strings"
)

// Tier is a coarse city classification: 1 = major metro, 2 = secondary,
// 3 = smaller town. It scales both the flight surcharge and the hotel base
// nightly price.
type Tier int

const (
	TierMetro     Tier = 1
	TierSecondary Tier = 2
	TierSmall     Tier = 3
)

// City is an immutable registry entry. Name is the lowercase lookup key.
type City struct {
	Name string
	Lat  float64
	Lon  float64
	Tier Tier
}

const (
	earthRadiusKm = 6371

	// DefaultDistanceKm is the medium-haul assumption used when either city
	// is unknown, so downstream pricing never sees a zero distance.
	DefaultDistanceKm = 1500

	// DefaultTier is assumed for cities missing from the registry.
	DefaultTier = TierSecondary
)

// Registry maps normalized city names to coordinates and tiers. It is built
// once at startup and read-only afterwards.
type Registry struct {
	cities map[string]City
}

// NewRegistry builds a registry from a city table. Entry names are
// normalized the same way lookups are.
func NewRegistry(cities []City) *Registry {
	m := make(map[string]City, len(cities))
	for _, c := range cities {
		m[normalize(c.Name)] = c
	}
	return &Registry{cities: m}
}

// DefaultRegistry returns the built-in city table: the Indian routes the app
// actually sells, plus the handful of international destinations the packages
// page links to.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultCities)
}

var defaultCities = []City{
	{"delhi", 28.6139, 77.2090, TierMetro},
	{"new delhi", 28.6139, 77.2090, TierMetro},
	{"mumbai", 19.0760, 72.8777, TierMetro},
	{"bangalore", 12.9716, 77.5946, TierMetro},
	{"bengaluru", 12.9716, 77.5946, TierMetro},
	{"chennai", 13.0827, 80.2707, TierMetro},
	{"kolkata", 22.5726, 88.3639, TierMetro},
	{"hyderabad", 17.3850, 78.4867, TierMetro},
	{"pune", 18.5204, 73.8567, TierSecondary},
	{"ahmedabad", 23.0225, 72.5714, TierSecondary},
	{"jaipur", 26.9124, 75.7873, TierSecondary},
	{"goa", 15.2993, 74.1240, TierSecondary},
	{"kochi", 9.9312, 76.2673, TierSecondary},
	{"lucknow", 26.8467, 80.9462, TierSecondary},
	{"chandigarh", 30.7333, 76.7794, TierSecondary},
	{"indore", 22.7196, 75.8577, TierSecondary},
	{"varanasi", 25.3176, 82.9739, TierSecondary},
	{"amritsar", 31.6340, 74.8723, TierSecondary},
	{"udaipur", 24.5854, 73.7125, TierSmall},
	{"rishikesh", 30.0869, 78.2676, TierSmall},
	{"manali", 32.2396, 77.1887, TierSmall},
	{"shimla", 31.1048, 77.1734, TierSmall},
	{"darjeeling", 27.0360, 88.2627, TierSmall},
	{"leh", 34.1526, 77.5771, TierSmall},
	{"srinagar", 34.0837, 74.7973, TierSecondary},
	{"agra", 27.1767, 78.0081, TierSecondary},
	{"mysore", 12.2958, 76.6394, TierSmall},
	{"pondicherry", 11.9416, 79.8083, TierSmall},
	{"dubai", 25.2048, 55.2708, TierMetro},
	{"singapore", 1.3521, 103.8198, TierMetro},
	{"bangkok", 13.7563, 100.5018, TierMetro},
	{"kathmandu", 27.7172, 85.3240, TierSecondary},
	{"colombo", 6.9271, 79.8612, TierSecondary},
	{"london", 51.5074, -0.1278, TierMetro},
	{"paris", 48.8566, 2.3522, TierMetro},
	{"new york", 40.7128, -74.0060, TierMetro},
}

// normalize lowercases and keeps only the part before the first comma, so
// "Mumbai, Maharashtra" and "mumbai" hit the same entry.
func normalize(name string) string {
	if i := strings.Index(name, ","); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the registry entry for a city name, if known.
func (r *Registry) Lookup(name string) (City, bool) {
	c, ok := r.cities[normalize(name)]
	return c, ok
}

// Tier returns the city's tier, or DefaultTier for unknown cities.
func (r *Registry) Tier(name string) Tier {
	if c, ok := r.Lookup(name); ok {
		return c.Tier
	}
	return DefaultTier
}

// DistanceKm returns the great-circle distance between two named cities.
// Unknown cities fall back to DefaultDistanceKm instead of erroring; the
// result is symmetric in its arguments.
func (r *Registry) DistanceKm(a, b string) float64 {
	ca, okA := r.Lookup(a)
	cb, okB := r.Lookup(b)
	if !okA || !okB {
		return DefaultDistanceKm
	}
	return haversineKm(ca.Lat, ca.Lon, cb.Lat, cb.Lon)
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
