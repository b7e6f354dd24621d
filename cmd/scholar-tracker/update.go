// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-tracker/internal/dataset"
	"github.com/pdiddy/scholar-tracker/internal/httputil"
	"github.com/pdiddy/scholar-tracker/internal/scholar"
	"github.com/pdiddy/scholar-tracker/internal/update"
	"github.com/pdiddy/scholar-tracker/pkg/types"
)

const defaultUpdateDelay = 1 * time.Second

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh citation metrics for faculty with a scholar_id",
	Long: `Update fetches current citation counts and h-index values from each
faculty member's Google Scholar profile and writes them back to the
CSV along with today's date. Records without a scholar_id are skipped;
records refreshed within the staleness window are left alone.

Use --stats-only to print dataset statistics without fetching
anything.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().Duration("delay", 0, "delay between profile fetches (default 1s)")
	updateCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 10s)")
	updateCmd.Flags().Int("staleness", 0, "skip records refreshed within this many days (0 = refresh all)")
	updateCmd.Flags().Bool("stats-only", false, "print dataset statistics and exit")
	updateCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg := updateConfig(cmd)
	statsOnly, _ := cmd.Flags().GetBool("stats-only")
	yes, _ := cmd.Flags().GetBool("yes")

	path := csvPath(cmd)
	records, err := dataset.Load(path)
	if err != nil {
		return err
	}

	if statsOnly {
		dataset.Stats(records).Format(os.Stdout)
		return nil
	}

	now := time.Now()
	eligible := 0
	withID := 0
	for _, f := range records {
		if !f.HasScholarID() {
			continue
		}
		withID++
		if f.NeedsRefresh(now, cfg.Staleness) {
			eligible++
		}
	}

	if withID == 0 {
		fmt.Fprintln(os.Stdout, "No records have a scholar_id yet. Run discover first.")
		return nil
	}
	if eligible == 0 {
		fmt.Fprintf(os.Stdout, "All %d record(s) with a scholar_id are up to date.\n", withID)
		dataset.Stats(records).Format(os.Stdout)
		return nil
	}

	estimate := time.Duration(eligible) * cfg.RequestDelay
	fmt.Fprintf(os.Stdout, "%d record(s) to refresh (estimated %.1f minute(s))\n",
		eligible, estimate.Minutes())

	if !yes && !confirmContinue(os.Stdout) {
		fmt.Fprintln(os.Stdout, "Aborted.")
		return nil
	}

	runner := &update.Runner{
		Profiles: scholar.NewSource(cfg.HTTPConfig),
		Cfg:      cfg,
		Out:      os.Stdout,
		Save: func(recs []types.Faculty) error {
			return dataset.Save(path, recs)
		},
	}

	if _, err := runner.Run(context.Background(), records); err != nil {
		return err
	}

	dataset.Stats(records).Format(os.Stdout)
	return nil
}

// confirmContinue asks for a y/n answer on stdin. Anything other than
// an explicit yes counts as no.
func confirmContinue(out *os.File) bool {
	fmt.Fprint(out, "Continue? (y/n): ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func updateConfig(cmd *cobra.Command) types.UpdateConfig {
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultUpdateDelay
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = httputil.DefaultTimeout
	}
	stalenessDays, _ := cmd.Flags().GetInt("staleness")

	return types.UpdateConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: httputil.DefaultUserAgent,
		},
		RequestDelay: delay,
		Staleness:    time.Duration(stalenessDays) * 24 * time.Hour,
	}
}
