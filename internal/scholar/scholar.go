// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar fetches and parses Google Scholar profile pages.
// The profile page carries both the display name used for identity
// verification and the citation metrics table, so one fetch serves the
// discover and update stages alike.
package scholar

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// baseURL is the Scholar origin. Declared as a var so tests can
// substitute an httptest server.
var baseURL = "https://scholar.google.com"

// userParamPattern extracts the user= token from a citations URL.
var userParamPattern = regexp.MustCompile(`[?&]user=([^&]+)`)

// ExtractID pulls the scholar ID out of a profile URL, or returns ""
// when the URL carries no user= parameter.
func ExtractID(rawURL string) string {
	m := userParamPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// ProfileURL returns the canonical profile URL for a scholar ID.
func ProfileURL(id string) string {
	return fmt.Sprintf("%s/citations?user=%s&hl=en", baseURL, url.QueryEscape(id))
}

// SearchURL returns the author-search URL used for manual lookup.
func SearchURL(name string) string {
	return fmt.Sprintf("%s/citations?view_op=search_authors&mauthors=%s", baseURL, url.QueryEscape(name))
}

// ValidID reports whether a manually entered string looks like a
// scholar ID: an opaque token longer than five characters with no
// embedded whitespace.
func ValidID(id string) bool {
	return len(id) > 5 && !strings.ContainsAny(id, " \t")
}
