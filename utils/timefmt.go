package utils

import "time"

// FormatTime renders t as RFC 3339 in UTC, or "" for the zero time
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
