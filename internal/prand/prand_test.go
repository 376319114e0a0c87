package prand

import "testing"

func TestSeedDeterministic(t *testing.T) {
	a := Seed("2025-10-01", "Delhi", "Goa", "MakeMyTrip")
	b := Seed("2025-10-01", "Delhi", "Goa", "MakeMyTrip")
	if a != b {
		t.Fatalf("same inputs gave different seeds: %d vs %d", a, b)
	}
}

func TestSeedNonNegative(t *testing.T) {
	inputs := [][]string{
		{""},
		{"a"},
		{"2025-10-01", "Delhi", "Goa"},
		{"a-very-long-string-that-overflows-the-32-bit-accumulator-many-times-over"},
	}
	for _, parts := range inputs {
		if s := Seed(parts...); s < 0 {
			t.Fatalf("Seed(%v) = %d, want non-negative", parts, s)
		}
	}
}

func TestSeedSensitiveToOrder(t *testing.T) {
	// "ab"+"c" and "a"+"bc" fold identically (concatenation), but swapping
	// whole values must not.
	if Seed("Delhi", "Goa") == Seed("Goa", "Delhi") {
		t.Fatal("swapped parts should hash differently")
	}
}

func TestFloatRangeAndDeterminism(t *testing.T) {
	for seed := int64(0); seed < 1000; seed++ {
		f := Float(seed)
		if f < 0 || f >= 1 {
			t.Fatalf("Float(%d) = %f, want [0,1)", seed, f)
		}
		if f != Float(seed) {
			t.Fatalf("Float(%d) not deterministic", seed)
		}
	}
}

func TestFloatSpread(t *testing.T) {
	// Consecutive seeds should not collapse onto one value.
	seen := map[float64]bool{}
	for seed := int64(1); seed <= 50; seed++ {
		seen[Float(seed)] = true
	}
	if len(seen) < 40 {
		t.Fatalf("only %d distinct values from 50 seeds", len(seen))
	}
}
