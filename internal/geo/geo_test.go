package geo

import (
	"math"
	"testing"
)

func TestDistanceKnownRoute(t *testing.T) {
	r := DefaultRegistry()

	// Delhi-Mumbai is roughly 1150 km great-circle.
	d := r.DistanceKm("Delhi", "Mumbai")
	if d < 1100 || d > 1200 {
		t.Fatalf("Delhi-Mumbai distance: got %.1f km, want ~1150", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	r := DefaultRegistry()

	ab := r.DistanceKm("Delhi", "Mumbai")
	ba := r.DistanceKm("Mumbai", "Delhi")
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %.6f vs %.6f", ab, ba)
	}
}

func TestDistanceUnknownCityFallback(t *testing.T) {
	r := DefaultRegistry()

	if d := r.DistanceKm("Nowhereville", "Mumbai"); d != DefaultDistanceKm {
		t.Fatalf("unknown origin: got %.1f, want %d", d, DefaultDistanceKm)
	}
	if d := r.DistanceKm("Delhi", "Atlantis"); d != DefaultDistanceKm {
		t.Fatalf("unknown destination: got %.1f, want %d", d, DefaultDistanceKm)
	}
}

func TestDistanceSameCityIsZero(t *testing.T) {
	r := DefaultRegistry()
	if d := r.DistanceKm("Goa", "Goa"); d != 0 {
		t.Fatalf("same city distance: got %.6f, want 0", d)
	}
}

func TestLookupNormalization(t *testing.T) {
	r := DefaultRegistry()

	cases := []string{"Mumbai", "mumbai", "  MUMBAI  ", "Mumbai, Maharashtra", "mumbai, India"}
	for _, in := range cases {
		c, ok := r.Lookup(in)
		if !ok {
			t.Fatalf("Lookup(%q): not found", in)
		}
		if c.Name != "mumbai" {
			t.Fatalf("Lookup(%q): got entry %q", in, c.Name)
		}
	}

	if _, ok := r.Lookup("Nowhereville"); ok {
		t.Fatal("Lookup of unknown city should miss")
	}
}

func TestTier(t *testing.T) {
	r := DefaultRegistry()

	if got := r.Tier("Delhi"); got != TierMetro {
		t.Fatalf("Delhi tier: got %d, want %d", got, TierMetro)
	}
	if got := r.Tier("Manali"); got != TierSmall {
		t.Fatalf("Manali tier: got %d, want %d", got, TierSmall)
	}
	if got := r.Tier("Atlantis"); got != DefaultTier {
		t.Fatalf("unknown city tier: got %d, want default %d", got, DefaultTier)
	}
}
