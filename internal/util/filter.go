package util

import (
	"strings"
	"time"
)

// IsWithinDateRange checks an ISO date against optional from/to bounds.
// Empty bounds do not filter; unparseable dates are filtered out.
func IsWithinDateRange(date string, fromDate, toDate string) bool {
	if fromDate == "" && toDate == "" {
		return true
	}

	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}

	if fromDate != "" {
		fromTime, err := time.Parse("2006-01-02", fromDate)
		if err == nil && t.Before(fromTime) {
			return false
		}
	}

	if toDate != "" {
		toTime, err := time.Parse("2006-01-02", toDate)
		if err == nil && t.After(toTime) {
			return false
		}
	}

	return true
}

// MatchesQuery does a case-insensitive substring match over the given
// fields.
func MatchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
