// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-tracker/internal/dataset"
	"github.com/pdiddy/scholar-tracker/internal/extract"
	"github.com/pdiddy/scholar-tracker/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract faculty names and metrics from a Word document",
	Long: `Extract reads a .docx file of faculty summaries, pulls out faculty
names and any "Google Scholar Citations: N ... H-index: M" metric
lines, and writes the results to the dataset CSV. This is a one-time
seeding step; use discover and update afterwards.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("docx", "", "path to the faculty summaries .docx file (required)")
	extractCmd.Flags().String("as-of", "", "date (YYYY-MM-DD) stamped on rows whose metrics were found")
	_ = extractCmd.MarkFlagRequired("docx")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractConfig(cmd)
	if err != nil {
		return err
	}

	paragraphs, err := extract.ReadParagraphs(cfg.DocxPath)
	if err != nil {
		return err
	}

	records := extract.ParseFaculty(paragraphs, cfg.AsOf)
	if len(records) == 0 {
		return fmt.Errorf("no faculty entries found in %s", cfg.DocxPath)
	}

	path := csvPath(cmd)
	if err := dataset.Save(path, records); err != nil {
		return err
	}

	withMetrics := 0
	for _, f := range records {
		if f.Citations != "" {
			withMetrics++
		}
	}
	fmt.Fprintf(os.Stdout, "Extracted %d faculty member(s) (%d with metrics) to %s\n",
		len(records), withMetrics, path)
	return nil
}

func extractConfig(cmd *cobra.Command) (types.ExtractConfig, error) {
	docxPath, _ := cmd.Flags().GetString("docx")
	asOf, _ := cmd.Flags().GetString("as-of")

	if asOf != "" {
		d, err := time.Parse(types.DateLayout, asOf)
		if err != nil {
			return types.ExtractConfig{}, fmt.Errorf("invalid --as-of date %q: use YYYY-MM-DD", asOf)
		}
		if d.After(time.Now()) {
			return types.ExtractConfig{}, fmt.Errorf("--as-of date %s is in the future", asOf)
		}
	}

	return types.ExtractConfig{DocxPath: docxPath, AsOf: asOf}, nil
}
