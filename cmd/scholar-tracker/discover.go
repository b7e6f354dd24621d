// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-tracker/internal/dataset"
	"github.com/pdiddy/scholar-tracker/internal/discover"
	"github.com/pdiddy/scholar-tracker/internal/httputil"
	"github.com/pdiddy/scholar-tracker/internal/scholar"
	"github.com/pdiddy/scholar-tracker/internal/websearch"
	"github.com/pdiddy/scholar-tracker/pkg/types"
)

const (
	defaultDiscoverDelay = 2 * time.Second
	defaultMaxResults    = 5

	ambiguousReportName = "ambiguous_report.yaml"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find missing Google Scholar IDs for faculty in the CSV",
	Long: `Discover processes every faculty record without a scholar_id. It
searches the web for candidate Scholar profiles, verifies each
candidate by comparing the profile's display name against the faculty
name, and prompts for confirmation when a choice is needed. Accepted
IDs are written back to the CSV immediately.

Records with several plausible profiles are reported as ambiguous and
written to ambiguous_report.yaml next to the CSV for later review.`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().Duration("delay", 0, "delay between searched records (default 2s)")
	discoverCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 10s)")
	discoverCmd.Flags().Bool("non-interactive", false, "no prompts: auto-accept single matches, skip ambiguous ones")
	discoverCmd.Flags().Bool("manual-only", false, "skip web search and enter IDs manually")
	discoverCmd.Flags().String("keyword", "", "extra search term appended to every query (e.g. the institution name)")
	discoverCmd.Flags().Int("max-results", defaultMaxResults, "maximum verified candidates kept per faculty member")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg := discoverConfig(cmd)

	path := csvPath(cmd)
	records, err := dataset.Load(path)
	if err != nil {
		return err
	}

	missing := 0
	for _, f := range records {
		if !f.HasScholarID() {
			missing++
		}
	}
	if missing == 0 {
		fmt.Fprintf(os.Stdout, "All %d record(s) already have a scholar_id.\n", len(records))
		return nil
	}
	fmt.Fprintf(os.Stdout, "%d of %d record(s) missing a scholar_id\n", missing, len(records))

	runner := &discover.Runner{
		Backends: []websearch.Backend{websearch.NewDuckDuckGo(cfg.HTTPConfig)},
		Profiles: scholar.NewSource(cfg.HTTPConfig),
		Cfg:      cfg,
		In:       os.Stdin,
		Out:      os.Stdout,
		Save: func(recs []types.Faculty) error {
			return dataset.Save(path, recs)
		},
	}

	summary, err := runner.Run(context.Background(), records)
	if err != nil {
		return err
	}

	summary.Format(os.Stdout)

	reportPath := filepath.Join(filepath.Dir(path), ambiguousReportName)
	if err := discover.WriteReport(reportPath, summary.Ambiguous); err != nil {
		return err
	}
	if len(summary.Ambiguous) > 0 {
		fmt.Fprintf(os.Stdout, "\nAmbiguous results written to %s\n", reportPath)
	}
	return nil
}

func discoverConfig(cmd *cobra.Command) types.DiscoveryConfig {
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultDiscoverDelay
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = httputil.DefaultTimeout
	}
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	manualOnly, _ := cmd.Flags().GetBool("manual-only")
	keyword, _ := cmd.Flags().GetString("keyword")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.DiscoveryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: httputil.DefaultUserAgent,
		},
		RequestDelay: delay,
		Keyword:      keyword,
		MaxResults:   maxResults,
		Interactive:  !nonInteractive,
		ManualOnly:   manualOnly,
	}
}
