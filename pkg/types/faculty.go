// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the faculty record and the per-stage
// configuration shared across the scholar-tracker pipeline.
package types

import (
	"strings"
	"time"
)

// DateLayout is the ISO date format used in the as_of_date column.
const DateLayout = "2006-01-02"

// Faculty is one row of the dataset. Identity is by Name; the
// remaining fields start empty and are filled in by the discover and
// update stages. Numeric fields stay strings so an empty value
// round-trips through the CSV unchanged.
type Faculty struct {
	Name      string
	ScholarID string
	Citations string
	HIndex    string
	AsOfDate  string
}

// HasScholarID reports whether the record carries a scholar ID.
func (f Faculty) HasScholarID() bool {
	return strings.TrimSpace(f.ScholarID) != ""
}

// NeedsRefresh reports whether the record's citation data is due for a
// refresh. An empty or malformed as_of_date always needs one. A window
// of zero or less disables the staleness check entirely, so every
// record is refreshed.
func (f Faculty) NeedsRefresh(now time.Time, window time.Duration) bool {
	s := strings.TrimSpace(f.AsOfDate)
	if s == "" {
		return true
	}
	asOf, err := time.Parse(DateLayout, s)
	if err != nil {
		return true
	}
	if window <= 0 {
		return true
	}
	return now.Sub(asOf) >= window
}
