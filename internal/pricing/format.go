package pricing

import "strconv"

// FormatINR renders a price with the rupee sign and Indian digit grouping:
// the last three digits form one group, every group above that has two
// digits, e.g. FormatINR(1234567) == "₹12,34,567".
func FormatINR(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + "₹" + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	grouped := ""
	for len(head) > 2 {
		grouped = "," + head[len(head)-2:] + grouped
		head = head[:len(head)-2]
	}
	return sign + "₹" + head + grouped + "," + tail
}
