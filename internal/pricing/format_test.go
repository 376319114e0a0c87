package pricing

import (
	"strings"
	"testing"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "₹0"},
		{7, "₹7"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{100000, "₹1,00,000"},
		{-4500, "-₹4,500"},
	}
	for _, c := range cases {
		if got := FormatINR(c.in); got != c.want {
			t.Fatalf("FormatINR(%d): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatINRRoundTrip(t *testing.T) {
	got := FormatINR(1234567)
	digits := strings.NewReplacer("₹", "", ",", "").Replace(got)
	if digits != "1234567" {
		t.Fatalf("stripping separators from %q gave %q", got, digits)
	}
}
