package utils

import "testing"

func TestParseAmountAcceptsFormattedStrings(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"20000", "20000"},
		{"20,000", "20000"},
		{"₹ 20,000", "20000"},
		{"Rs -20,000", "-20000"},
		{"INR 1,234.50", "1234.5"},
		{"  rs 99  ", "99"},
	}
	for _, tc := range cases {
		d, err := ParseAmount(tc.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q) error: %v", tc.in, err)
		}
		if d.String() != tc.expected {
			t.Fatalf("ParseAmount(%q) expected %s, got %s", tc.in, tc.expected, d.String())
		}
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "₹", "abc"} {
		if _, err := ParseAmount(in); err == nil {
			t.Fatalf("ParseAmount(%q) expected error", in)
		}
	}
}
