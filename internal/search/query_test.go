package search

import "testing"

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"water", "water"},
		{"  WATER ", "water"},
		{"clean   water\t\nact", "clean water act"},
		{"Straße", "strasse"}, // case folding goes beyond ASCII lowercasing
		{"ΔΙΚΑΙΟΣΥΝΗ", "δικαιοσυνη"},
	}
	for _, tc := range cases {
		if got := NormalizeQuery(tc.in); got != tc.want {
			t.Errorf("NormalizeQuery(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
