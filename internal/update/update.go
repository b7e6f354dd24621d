// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package update refreshes citation metrics for faculty records that
// already carry a scholar ID. Records without an ID or with fresh data
// are skipped; per-record failures are counted and the loop moves on.
package update

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/scholar-tracker/internal/scholar"
	"github.com/pdiddy/scholar-tracker/pkg/types"
)

// Result holds the outcome of a refresh run.
type Result struct {
	Updated int
	Skipped int
	Errors  int
}

// Total returns the number of records processed.
func (r Result) Total() int {
	return r.Updated + r.Skipped + r.Errors
}

// Runner drives the refresh. The profile source, clock, sleeper, and
// save hook are injected so tests can run without the network.
type Runner struct {
	Profiles scholar.ProfileSource
	Cfg      types.UpdateConfig

	Out   io.Writer
	Now   func() time.Time
	Sleep func(time.Duration)
	Save  func([]types.Faculty) error
}

// Run refreshes every eligible record in place and returns counts. The
// dataset is saved after each successful update to bound data loss if
// the run is interrupted.
func (r *Runner) Run(ctx context.Context, records []types.Faculty) (Result, error) {
	out := r.out()
	now := r.now()
	today := now.Format(types.DateLayout)

	fmt.Fprintf(out, "\nStarting update process...\nDate: %s\n\n", today)

	var res Result
	for i := range records {
		f := &records[i]

		if !f.HasScholarID() {
			fmt.Fprintf(out, "  [%d/%d] skipping %s (no scholar_id)\n", i+1, len(records), f.Name)
			res.Skipped++
			continue
		}
		if !f.NeedsRefresh(now, r.Cfg.Staleness) {
			fmt.Fprintf(out, "  [%d/%d] skipping %s (updated %s)\n", i+1, len(records), f.Name, f.AsOfDate)
			res.Skipped++
			continue
		}

		fmt.Fprintf(out, "  [%d/%d] updating %s... ", i+1, len(records), f.Name)

		p, err := r.Profiles.Fetch(ctx, strings.TrimSpace(f.ScholarID))
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			res.Errors++
		} else {
			oldCitations := orNA(f.Citations)
			oldHIndex := orNA(f.HIndex)

			f.Citations = strconv.Itoa(p.Citations)
			f.HIndex = strconv.Itoa(p.HIndex)
			f.AsOfDate = today

			if r.Save != nil {
				if saveErr := r.Save(records); saveErr != nil {
					return res, fmt.Errorf("saving dataset: %w", saveErr)
				}
			}

			fmt.Fprintln(out, "ok")
			fmt.Fprintf(out, "      Citations: %s -> %d\n", oldCitations, p.Citations)
			fmt.Fprintf(out, "      H-index: %s -> %d\n", oldHIndex, p.HIndex)
			res.Updated++
		}

		if i < len(records)-1 {
			r.sleep()
		}
	}

	res.Format(out)
	return res, nil
}

// Format writes the refresh summary to w.
func (r Result) Format(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 70))
	fmt.Fprintln(w, "Update Summary:")
	fmt.Fprintf(w, "  Successfully updated: %d\n", r.Updated)
	fmt.Fprintf(w, "  Skipped: %d\n", r.Skipped)
	fmt.Fprintf(w, "  Errors: %d\n", r.Errors)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 70))
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
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
