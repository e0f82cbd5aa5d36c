package util

import "testing"

func TestIsWithinDateRange(t *testing.T) {
	cases := []struct {
		date string
		from string
		to   string
		want bool
	}{
		{date: "2025-06-02", from: "", to: "", want: true},
		{date: "2025-06-02", from: "2025-06-01", to: "2025-06-03", want: true},
		{date: "2025-06-02", from: "2025-06-03", to: "", want: false},
		{date: "2025-06-02", from: "", to: "2025-06-01", want: false},
		{date: "TBD", from: "2025-06-01", to: "", want: false},
		{date: "TBD", from: "", to: "", want: true},
	}

	for _, tc := range cases {
		if got := IsWithinDateRange(tc.date, tc.from, tc.to); got != tc.want {
			t.Fatalf("IsWithinDateRange(%q, %q, %q) = %v, want %v", tc.date, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestMatchesQuery(t *testing.T) {
	cases := []struct {
		query  string
		fields []string
		want   bool
	}{
		{query: "", fields: []string{"anything"}, want: true},
		{query: "so-1", fields: []string{"SO-123", "rush"}, want: true},
		{query: "RUSH", fields: []string{"SO-123", "rush order"}, want: true},
		{query: "missing", fields: []string{"SO-123"}, want: false},
	}

	for _, tc := range cases {
		if got := MatchesQuery(tc.query, tc.fields...); got != tc.want {
			t.Fatalf("MatchesQuery(%q, %v) = %v, want %v", tc.query, tc.fields, got, tc.want)
		}
	}
}
