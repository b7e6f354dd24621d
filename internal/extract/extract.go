// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/scholar-tracker/pkg/types"
)

// sectionPrefixes are paragraph openers that belong to a summary
// section rather than introducing a new faculty member.
var sectionPrefixes = []string{
	"Current Appointment",
	"PhD Year",
	"Fields of Interest",
	"Short Bio:",
	"Examples of Publications",
	"Google Scholar",
	"External Funding",
	"Public Outreach:",
	"Notes:",
	"Cornell Department",
	"Faculty Summaries",
}

var (
	// namePattern matches a standalone capitalized multi-word line,
	// the document's convention for a faculty name heading.
	namePattern = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+)+$`)

	// metricsPattern parses lines like
	// "Google Scholar Citations: 2,163     Google Scholar H-index: 16".
	metricsPattern = regexp.MustCompile(`Citations:\s*([\d,]+)\s*.*H-index:\s*(\d+)`)
)

// ParseFaculty scans document paragraphs for faculty name headings and
// their Google Scholar metric lines. Records appear in document order.
// When asOf is non-empty it is stamped on records whose metric line was
// found; records without metrics keep an empty as_of_date.
func ParseFaculty(paragraphs []string, asOf string) []types.Faculty {
	var records []types.Faculty
	var cur *types.Faculty

	for _, text := range paragraphs {
		switch {
		case isNameHeading(text):
			if cur != nil {
				records = append(records, *cur)
			}
			cur = &types.Faculty{Name: text}

		case strings.HasPrefix(text, "Google Scholar Citations:") && cur != nil:
			m := metricsPattern.FindStringSubmatch(text)
			if m != nil {
				cur.Citations = strings.ReplaceAll(m[1], ",", "")
				cur.HIndex = m[2]
				cur.AsOfDate = asOf
			}
		}
	}
	if cur != nil {
		records = append(records, *cur)
	}

	return records
}

// isNameHeading applies the document heuristics: a short standalone
// line of capitalized words that is not a known section opener, a
// numbered item, a quotation, or a bullet.
func isNameHeading(text string) bool {
	if text == "" {
		return false
	}
	for _, prefix := range sectionPrefixes {
		if strings.HasPrefix(text, prefix) {
			return false
		}
	}
	if len(text) >= 100 {
		return false
	}
	first := []rune(text)[0]
	if unicode.IsDigit(first) || first == '"' || first == '•' {
		return false
	}
	return namePattern.MatchString(text)
}
