// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package update

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-tracker/internal/scholar"
	"github.com/pdiddy/scholar-tracker/pkg/types"
)

type stubProfiles struct {
	profiles map[string]*scholar.Profile
	calls    int
}

func (s *stubProfiles) Fetch(ctx context.Context, id string) (*scholar.Profile, error) {
	s.calls++
	p, ok := s.profiles[id]
	if !ok {
		return nil, fmt.Errorf("no profile for %s", id)
	}
	return p, nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newRunner(profiles *stubProfiles, cfg types.UpdateConfig) (*Runner, *strings.Builder) {
	var out strings.Builder
	r := &Runner{
		Profiles: profiles,
		Cfg:      cfg,
		Out:      &out,
		Now:      func() time.Time { return testNow },
		Sleep:    func(time.Duration) {},
	}
	return r, &out
}

func TestRunUpdatesMetrics(t *testing.T) {
	profiles := &stubProfiles{profiles: map[string]*scholar.Profile{
		"AbC123xyZ": {ID: "AbC123xyZ", Name: "John Smith", Citations: 2163, HIndex: 16},
	}}

	var saves int
	r, out := newRunner(profiles, types.UpdateConfig{})
	r.Save = func([]types.Faculty) error { saves++; return nil }

	records := []types.Faculty{
		{Name: "John Smith", ScholarID: "AbC123xyZ", Citations: "2000", HIndex: "15", AsOfDate: "2025-11-15"},
	}

	res, err := r.Run(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, "2163", records[0].Citations)
	assert.Equal(t, "16", records[0].HIndex)
	assert.Equal(t, "2026-03-10", records[0].AsOfDate)
	assert.Equal(t, 1, saves)
	assert.Contains(t, out.String(), "2000 -> 2163")
}

func TestRunSkipsRecordsWithoutID(t *testing.T) {
	profiles := &stubProfiles{}
	r, out := newRunner(profiles, types.UpdateConfig{})

	records := []types.Faculty{{Name: "Jane Doe"}}

	res, err := r.Run(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 0, profiles.calls)
	assert.Contains(t, out.String(), "no scholar_id")
}

func TestRunSkipsFreshRecords(t *testing.T) {
	profiles := &stubProfiles{}
	week := 7 * 24 * time.Hour
	r, _ := newRunner(profiles, types.UpdateConfig{Staleness: week})

	records := []types.Faculty{
		{Name: "John Smith", ScholarID: "AbC123xyZ", AsOfDate: "2026-03-10"}, // updated today
	}

	res, err := r.Run(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 0, profiles.calls)
}

func TestRunRefreshesEmptyAsOfDateRegardlessOfWindow(t *testing.T) {
	profiles := &stubProfiles{profiles: map[string]*scholar.Profile{
		"AbC123xyZ": {ID: "AbC123xyZ", Name: "John Smith", Citations: 10, HIndex: 2},
	}}
	r, _ := newRunner(profiles, types.UpdateConfig{Staleness: 365 * 24 * time.Hour})

	records := []types.Faculty{
		{Name: "John Smith", ScholarID: "AbC123xyZ"},
	}

	res, err := r.Run(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, profiles.calls)
}

func TestRunCountsErrorsAndContinues(t *testing.T) {
	profiles := &stubProfiles{profiles: map[string]*scholar.Profile{
		"GoodID789": {ID: "GoodID789", Name: "Jane Doe", Citations: 50, HIndex: 5},
	}}
	r, out := newRunner(profiles, types.UpdateConfig{})

	records := []types.Faculty{
		{Name: "John Smith", ScholarID: "BadID1234", Citations: "7", HIndex: "1", AsOfDate: "2025-01-01"},
		{Name: "Jane Doe", ScholarID: "GoodID789"},
	}

	res, err := r.Run(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Errors)
	assert.Equal(t, 1, res.Updated)

	// The failed record keeps its old values.
	assert.Equal(t, "7", records[0].Citations)
	assert.Equal(t, "2025-01-01", records[0].AsOfDate)

	assert.Contains(t, out.String(), "Errors: 1")
}

func TestRunSleepsBetweenFetches(t *testing.T) {
	profiles := &stubProfiles{profiles: map[string]*scholar.Profile{
		"GoodID789": {ID: "GoodID789", Name: "Jane Doe", Citations: 50, HIndex: 5},
	}}

	var slept []time.Duration
	r, _ := newRunner(profiles, types.UpdateConfig{RequestDelay: time.Second})
	r.Sleep = func(d time.Duration) { slept = append(slept, d) }

	records := []types.Faculty{
		{Name: "Jane Doe", ScholarID: "GoodID789"},
		{Name: "Also Jane", ScholarID: "GoodID789"},
	}

	_, err := r.Run(context.Background(), records)
	require.NoError(t, err)

	// One pause between the two fetches, none after the last.
	assert.Equal(t, []time.Duration{time.Second}, slept)
}

func TestResultTotal(t *testing.T) {
	res := Result{Updated: 2, Skipped: 3, Errors: 1}
	assert.Equal(t, 6, res.Total())
}
