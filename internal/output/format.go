package output

import (
	"time"
)

// NotAvailable is shown in place of an empty value.
const NotAvailable = "N/A"

// DescriptionWidth is the number of characters of a description shown in tables.
const DescriptionWidth = 50

// Truncate shortens s to max characters, appending "..." when it was longer.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// OrNA returns s, or NotAvailable when s is empty.
func OrNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// ParseTime parses an ISO-8601 timestamp as returned by the API or accepted
// on the command line.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO-8601 timestamp as a local date.
// Empty values become NotAvailable; unparsable values are returned as is.
func FormatDate(s string) string {
	if s == "" {
		return NotAvailable
	}
	t, ok := ParseTime(s)
	if !ok {
		return s
	}
	return t.Local().Format("2006-01-02")
}

// FormatDateTime renders an ISO-8601 timestamp as a local date and time.
func FormatDateTime(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return s
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
