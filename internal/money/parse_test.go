package money

import "testing"

func TestParseAmount_AcceptsFormattedStrings(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"36500000", "36500000"},
		{"36,500,000", "36500000"},
		{"۳۶٬۵۰۰٬۰۰۰", "36500000"},
		{"۴۹۵۰۰۰", "495000"},
		{"  2,100,000 ریال ", "2100000"},
		{"abc", "0"},
		{"", "0"},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if got.String() != tc.expected {
			t.Fatalf("ParseAmount(%q) expected %s, got %s", tc.in, tc.expected, got.String())
		}
	}
}
