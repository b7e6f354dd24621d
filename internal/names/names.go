// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names normalizes person names and judges whether two name
// strings refer to the same person. Matching is pure and
// deterministic; the discover stage uses it to verify that a scraped
// profile actually belongs to the faculty member being searched for.
package names

import (
	"regexp"
	"strings"

	"github.com/caltechlibrary/datatools"
)

// firstNameThreshold is the minimum similarity between two full first
// names for them to be considered equivalent.
const firstNameThreshold = 0.8

var (
	// suffixPattern matches honorifics and generational suffixes that
	// carry no identity information.
	suffixPattern = regexp.MustCompile(`(?i)\b(jr\.?|sr\.?|iii|ii|iv|ph\.?d\.?|dr\.?|prof\.?)\b`)

	// punctPattern matches punctuation to strip, keeping hyphens and
	// apostrophes which are load-bearing in surnames.
	punctPattern = regexp.MustCompile(`[^\p{L}\p{N}\s'-]`)
)

// Normalize lowercases a name and strips honorifics, suffixes, and
// punctuation (except hyphen and apostrophe), collapsing whitespace.
func Normalize(name string) string {
	s := suffixPattern.ReplaceAllString(name, "")
	s = punctPattern.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}

// Match reports whether candidate plausibly names the same person as
// canonical. Exact normalized equality passes; otherwise both names
// need a first and last token, the last tokens must be identical, the
// first tokens must agree (exactly, by initial, or by similarity), and
// when both names carry middle tokens at least one pair must overlap.
func Match(canonical, candidate string) bool {
	a := Normalize(canonical)
	b := Normalize(candidate)

	if a == b {
		return a != ""
	}

	at := strings.Fields(a)
	bt := strings.Fields(b)

	// Need at least first and last name on both sides.
	if len(at) < 2 || len(bt) < 2 {
		return false
	}

	// The last name is the most distinctive part and must match exactly.
	if at[len(at)-1] != bt[len(bt)-1] {
		return false
	}

	if !firstTokensAgree(at[0], bt[0]) {
		return false
	}

	am := at[1 : len(at)-1]
	bm := bt[1 : len(bt)-1]
	if len(am) > 0 && len(bm) > 0 {
		return middleTokensOverlap(am, bm)
	}

	return true
}

// Exact reports whether two names are identical after normalization.
func Exact(canonical, candidate string) bool {
	a := Normalize(canonical)
	return a != "" && a == Normalize(candidate)
}

// firstTokensAgree compares first-name tokens. A single-character token
// is treated as an initial and only needs to agree with the other
// token's leading character; full first names need similarity above
// the threshold.
func firstTokensAgree(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) == 1 || len(b) == 1 {
		return a[0] == b[0]
	}
	return Similarity(a, b) >= firstNameThreshold
}

// middleTokensOverlap reports whether any middle-token pair is equal or
// initial-compatible.
func middleTokensOverlap(am, bm []string) bool {
	for _, a := range am {
		for _, b := range bm {
			if a == b {
				return true
			}
			if (len(a) == 1 && a[0] == b[0]) || (len(b) == 1 && b[0] == a[0]) {
				return true
			}
		}
	}
	return false
}

// Similarity returns an edit-distance ratio in [0, 1]: 1 for identical
// strings, 0 for entirely different ones.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	d := datatools.Levenshtein(a, b, 1, 1, 1, true)
	return 1 - float64(d)/float64(longest)
}
