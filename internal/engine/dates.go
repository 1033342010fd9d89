// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"strings"
	"time"
)

// dateFormats lists the layouts attempted by safeParseDate, in order.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2006-01",
	"2006",
}

// safeParseDate parses a free-form date string. Empty or sentinel input
// ("-", "N/A" in any case) and unparseable values yield the zero time, so
// such records sort last under a descending date order instead of being
// dropped. Never fails.
func safeParseDate(date string) time.Time {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" || trimmed == "-" || strings.EqualFold(trimmed, "n/a") {
		return time.Time{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}

// yearOf extracts the leading 4-digit year from a date string. Returns
// false when the string does not start with four digits, so sentinel
// dates contribute no year to aggregates.
func yearOf(date string) (string, bool) {
	if len(date) < 4 {
		return "", false
	}
	year := date[:4]
	for _, c := range year {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	return year, true
}
