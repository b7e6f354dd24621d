// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scholar-tracker/internal/httputil"
	"github.com/pdiddy/scholar-tracker/pkg/types"
)

// Profile is the parsed content of a Scholar profile page.
type Profile struct {
	ID          string
	Name        string
	Affiliation string
	Interests   []string
	Citations   int
	HIndex      int
	URL         string
}

// ProfileSource retrieves Scholar profiles by ID. The discover and
// update stages depend on this interface so tests can substitute fakes
// without touching the network.
type ProfileSource interface {
	Fetch(ctx context.Context, id string) (*Profile, error)
}

// Source fetches profiles over HTTP.
type Source struct {
	Client *http.Client
	Cfg    types.HTTPConfig
}

// NewSource returns a Source with a client sized from cfg.
func NewSource(cfg types.HTTPConfig) *Source {
	return &Source{Client: httputil.NewClient(cfg.Timeout), Cfg: cfg}
}

// Fetch retrieves and parses the profile page for a scholar ID. A page
// without a display name is an error: it usually means a CAPTCHA or an
// unknown ID, and the caller must not treat it as a verified profile.
func (s *Source) Fetch(ctx context.Context, id string) (*Profile, error) {
	reqURL := ProfileURL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	ua := s.Cfg.UserAgent
	if ua == "" {
		ua = httputil.DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := httputil.Do(ctx, s.Client, req)
	if err != nil {
		return nil, fmt.Errorf("fetching profile %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile %s returned HTTP %d", id, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", id, err)
	}

	p := parseProfile(doc)
	p.ID = id
	p.URL = reqURL
	if p.Name == "" {
		return nil, fmt.Errorf("profile %s has no display name", id)
	}
	return p, nil
}

func parseProfile(doc *goquery.Document) *Profile {
	p := &Profile{}

	p.Name = strings.TrimSpace(doc.Find("#gsc_prf_in").Text())
	if p.Name == "" {
		// Fallback: the page title is "Name - Google Scholar".
		title := strings.TrimSpace(doc.Find("title").Text())
		if base, ok := strings.CutSuffix(title, " - Google Scholar"); ok {
			p.Name = strings.TrimSpace(base)
		}
	}

	p.Affiliation = strings.TrimSpace(doc.Find(".gsc_prf_il").First().Text())

	doc.Find("#gsc_prf_int a").Each(func(_ int, sel *goquery.Selection) {
		if v := strings.TrimSpace(sel.Text()); v != "" {
			p.Interests = append(p.Interests, v)
		}
	})

	// The stats table has one row per metric; the first value column is
	// the all-time figure.
	doc.Find("#gsc_rsb_st tr").Each(func(_ int, row *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(row.Find("td").First().Text()))
		value := row.Find("td.gsc_rsb_std").Eq(0).Text()
		switch {
		case strings.Contains(label, "citations"):
			p.Citations = parseCount(value)
		case strings.Contains(label, "h-index"):
			p.HIndex = parseCount(value)
		}
	})

	return p
}

// parseCount parses a metric cell, tolerating thousands separators.
func parseCount(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
