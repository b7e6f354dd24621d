// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scholar-tracker/internal/httputil"
	"github.com/pdiddy/scholar-tracker/pkg/types"
)

// duckDuckGoBase is the DuckDuckGo HTML endpoint. Declared as a var so
// tests can substitute an httptest server.
var duckDuckGoBase = "https://html.duckduckgo.com/html/"

// DuckDuckGo queries the DuckDuckGo HTML frontend, which needs no API
// key and tolerates modest request rates.
type DuckDuckGo struct {
	Client *http.Client
	Cfg    types.HTTPConfig
}

// NewDuckDuckGo returns a backend with a client sized from cfg.
func NewDuckDuckGo(cfg types.HTTPConfig) *DuckDuckGo {
	return &DuckDuckGo{Client: httputil.NewClient(cfg.Timeout), Cfg: cfg}
}

// Name returns the backend identifier.
func (b *DuckDuckGo) Name() string { return "duckduckgo" }

// Search fetches the result page for query and returns up to
// maxResults links. Result anchors wrap targets in a /l/?uddg=
// redirect, which is decoded before returning.
func (b *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty search query")
	}

	params := url.Values{"q": {query}}
	reqURL := duckDuckGoBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	ua := b.Cfg.UserAgent
	if ua == "" {
		ua = httputil.DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := httputil.Do(ctx, b.Client, req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	var results []Result
	doc.Find("a.result__a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		results = append(results, Result{
			Title: strings.TrimSpace(sel.Text()),
			URL:   decodeRedirect(href),
		})
		return maxResults <= 0 || len(results) < maxResults
	})
	return results, nil
}

// decodeRedirect unwraps the uddg= indirection. Unparseable hrefs are
// returned unchanged.
func decodeRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
