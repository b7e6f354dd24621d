// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package websearch finds candidate Scholar profile links on the open
// web. Each engine implements Backend per the Strategy pattern so the
// discover stage can run against whichever are configured, or against
// a stub in tests.
package websearch

import (
	"context"
	"fmt"
)

// Result is one search hit.
type Result struct {
	Title string
	URL   string
}

// Backend searches a single web search engine.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// ProfileQuery builds the site-restricted query for an author name.
// The optional keyword (typically the institution) narrows common
// names.
func ProfileQuery(name, keyword string) string {
	q := fmt.Sprintf("site:scholar.google.com/citations %s", name)
	if keyword != "" {
		q += " " + keyword
	}
	return q
}
