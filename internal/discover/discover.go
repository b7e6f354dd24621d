// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover fills in missing Google Scholar IDs. For each
// faculty record without an ID it searches the web for candidate
// profile links, verifies each candidate by scraping the profile's
// display name and matching it against the faculty name, and then
// either auto-accepts, prompts the operator, or falls back to manual
// entry. The CSV is saved after every accepted ID so an interrupted
// run loses at most one change.
package discover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/scholar-tracker/internal/httputil"
	"github.com/pdiddy/scholar-tracker/internal/names"
	"github.com/pdiddy/scholar-tracker/internal/scholar"
	"github.com/pdiddy/scholar-tracker/internal/websearch"
	"github.com/pdiddy/scholar-tracker/pkg/types"
)

const defaultMaxCandidates = 5

// MatchQuality grades how a verified profile name compared to the
// faculty name.
type MatchQuality string

const (
	QualityExact MatchQuality = "exact"
	QualityGood  MatchQuality = "good"
)

// Candidate is a verified profile option for one faculty member.
type Candidate struct {
	Profile *scholar.Profile
	Quality MatchQuality
}

// Runner drives ID discovery. Every collaborator is injected: search
// backends, the profile source, the prompt streams, the sleeper, and
// the save hook, so tests can run the whole flow against fakes.
type Runner struct {
	Backends []websearch.Backend
	Profiles scholar.ProfileSource
	Cfg      types.DiscoveryConfig

	In    io.Reader
	Out   io.Writer
	Sleep func(time.Duration)
	Save  func([]types.Faculty) error
}

// Summary holds the outcome of a discovery run.
type Summary struct {
	Updated      int
	Skipped      int
	StillMissing []string
	Ambiguous    []AmbiguousResult
}

// Run processes every record missing a scholar ID and returns the run
// summary. The loop always runs to completion; ambiguous results are
// collected and reported afterwards rather than cutting the run short.
func (r *Runner) Run(ctx context.Context, records []types.Faculty) (Summary, error) {
	out := r.out()
	p := newPrompter(r.In, out)

	manualOnly := r.Cfg.ManualOnly
	if !manualOnly && len(r.Backends) == 0 {
		fmt.Fprintln(out, "warning: no search backend configured, switching to manual-only mode")
		manualOnly = true
	}

	var s Summary
	for i := range records {
		f := &records[i]
		if f.HasScholarID() {
			continue
		}

		fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 70))
		fmt.Fprintf(out, "Searching for: %s (%d/%d)\n", f.Name, i+1, len(records))
		fmt.Fprintf(out, "%s\n", strings.Repeat("=", 70))

		var cands []Candidate
		searched := false
		if !manualOnly {
			searched = true
			cands = r.searchCandidates(ctx, f.Name)
		}

		var err error
		switch {
		case len(cands) == 1:
			err = r.handleSingle(records, f, cands[0], p, &s)
		case len(cands) > 1:
			err = r.handleMultiple(records, f, cands, p, &s)
		case r.Cfg.Interactive:
			err = r.manual(records, f, p, &s)
		default:
			r.skip(f.Name, &s)
		}
		if err != nil {
			return s, err
		}

		if searched && i < len(records)-1 {
			r.sleep()
		}
	}

	return s, nil
}

// searchCandidates queries the backends in order and returns the first
// non-empty set of verified candidates. Backend failures are warnings;
// the next backend gets its turn.
func (r *Runner) searchCandidates(ctx context.Context, name string) []Candidate {
	out := r.out()
	query := websearch.ProfileQuery(name, r.Cfg.Keyword)
	maxCands := r.Cfg.MaxResults
	if maxCands <= 0 {
		maxCands = defaultMaxCandidates
	}

	for _, b := range r.Backends {
		fmt.Fprintf(out, "  searching %s for a Scholar profile...\n", b.Name())

		// Fetch extra hits; name verification discards most of them.
		results, err := b.Search(ctx, query, maxCands*3)
		if err != nil {
			fmt.Fprintf(out, "  warning: backend %s failed: %v\n", b.Name(), err)
			continue
		}
		fmt.Fprintf(out, "  found %d search result(s), verifying names...\n", len(results))

		cands := r.verify(ctx, name, results, maxCands)
		fmt.Fprintf(out, "  %d profile(s) with matching names\n", len(cands))
		if len(cands) > 0 {
			return cands
		}
	}
	return nil
}

// verify extracts scholar IDs from the result links, fetches each
// profile once, and keeps those whose display name matches. Fetch
// failures are expected for some links and are skipped quietly, except
// rate limiting which the operator needs to know about.
func (r *Runner) verify(ctx context.Context, name string, results []websearch.Result, max int) []Candidate {
	seen := make(map[string]bool)
	var cands []Candidate

	for _, res := range results {
		id := scholar.ExtractID(res.URL)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		p, err := r.Profiles.Fetch(ctx, id)
		if err != nil {
			var rle *httputil.RateLimitedError
			if errors.As(err, &rle) {
				fmt.Fprintf(r.out(), "  warning: %v\n", err)
			}
			continue
		}
		if !names.Match(name, p.Name) {
			continue
		}

		q := QualityGood
		if names.Exact(name, p.Name) {
			q = QualityExact
		}
		cands = append(cands, Candidate{Profile: p, Quality: q})
		if len(cands) >= max {
			break
		}
	}
	return cands
}

func (r *Runner) handleSingle(records []types.Faculty, f *types.Faculty, c Candidate, p *prompter, s *Summary) error {
	out := r.out()
	fmt.Fprintf(out, "\n  Found 1 matching result:\n")
	printCandidate(out, c)

	if !r.Cfg.Interactive {
		fmt.Fprintf(out, "  auto-accepting %s for %s\n", c.Profile.Name, f.Name)
		return r.accept(records, f, c.Profile.ID, s)
	}

	var state promptState
	if c.Quality == QualityExact {
		state = p.confirm("\n  Accept this profile? (Y/n/skip/manual) [Y]: ", true)
	} else {
		state = p.confirm("\n  Is this correct? (y/n/skip/manual): ", false)
	}

	switch state {
	case stateConfirmed:
		return r.accept(records, f, c.Profile.ID, s)
	case stateManual:
		return r.manual(records, f, p, s)
	default:
		r.skip(f.Name, s)
		return nil
	}
}

func (r *Runner) handleMultiple(records []types.Faculty, f *types.Faculty, cands []Candidate, p *prompter, s *Summary) error {
	out := r.out()
	fmt.Fprintf(out, "\n  Found %d matching profile(s):\n\n", len(cands))
	for i, c := range cands {
		fmt.Fprintf(out, "  %d. ", i+1)
		printCandidate(out, c)
		fmt.Fprintln(out)
	}

	if !r.Cfg.Interactive {
		fmt.Fprintln(out, "  multiple matches found (non-interactive mode), skipping")
		r.markAmbiguous(f.Name, cands, s)
		r.skip(f.Name, s)
		return nil
	}

	idx, state := p.choose(len(cands))
	switch state {
	case stateConfirmed:
		return r.accept(records, f, cands[idx].Profile.ID, s)
	case stateManual:
		return r.manual(records, f, p, s)
	default:
		r.markAmbiguous(f.Name, cands, s)
		r.skip(f.Name, s)
		return nil
	}
}

// manual runs the manual-entry flow and accepts or skips based on the
// operator's input.
func (r *Runner) manual(records []types.Faculty, f *types.Faculty, p *prompter, s *Summary) error {
	id, ok := p.manualID(f.Name)
	if !ok {
		r.skip(f.Name, s)
		return nil
	}
	return r.accept(records, f, id, s)
}

// accept records an ID and saves the dataset immediately.
func (r *Runner) accept(records []types.Faculty, f *types.Faculty, id string, s *Summary) error {
	f.ScholarID = id
	if r.Save != nil {
		if err := r.Save(records); err != nil {
			return fmt.Errorf("saving dataset: %w", err)
		}
	}
	s.Updated++
	fmt.Fprintf(r.out(), "  updated %s with scholar_id: %s\n", f.Name, id)
	return nil
}

func (r *Runner) skip(name string, s *Summary) {
	s.Skipped++
	s.StillMissing = append(s.StillMissing, name)
	fmt.Fprintf(r.out(), "  skipped %s\n", name)
}

func (r *Runner) markAmbiguous(name string, cands []Candidate, s *Summary) {
	ar := AmbiguousResult{Name: name}
	for _, c := range cands {
		ar.Candidates = append(ar.Candidates, AmbiguousCandidate{
			ProfileName: c.Profile.Name,
			URL:         c.Profile.URL,
		})
	}
	s.Ambiguous = append(s.Ambiguous, ar)
}

func printCandidate(w io.Writer, c Candidate) {
	fmt.Fprintf(w, "  Name: %s\n", c.Profile.Name)
	affiliation := c.Profile.Affiliation
	if affiliation == "" {
		affiliation = "N/A"
	}
	fmt.Fprintf(w, "     Affiliation: %s\n", affiliation)
	if len(c.Profile.Interests) > 0 {
		fmt.Fprintf(w, "     Interests: %s\n", strings.Join(c.Profile.Interests, ", "))
	}
	fmt.Fprintf(w, "     URL: %s\n", c.Profile.URL)
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

func (r *Runner) sleep() {
	if r.Cfg.RequestDelay <= 0 {
		return
	}
	if r.Sleep != nil {
		r.Sleep(r.Cfg.RequestDelay)
		return
	}
	time.Sleep(r.Cfg.RequestDelay)
}
