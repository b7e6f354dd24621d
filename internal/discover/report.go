// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// AmbiguousResult records a faculty member whose search returned
// multiple verified profiles that the run did not resolve.
type AmbiguousResult struct {
	Name       string               `yaml:"name"`
	Candidates []AmbiguousCandidate `yaml:"candidates"`
}

// AmbiguousCandidate is one of the unresolved profile options.
type AmbiguousCandidate struct {
	ProfileName string `yaml:"profile_name"`
	URL         string `yaml:"url"`
}

// Format writes the run summary, the list of names still missing an
// ID, and the ambiguous-results table.
func (s Summary) Format(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 70))
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Updated: %d\n", s.Updated)
	fmt.Fprintf(w, "  Skipped: %d\n", s.Skipped)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 70))

	if len(s.StillMissing) > 0 {
		fmt.Fprintf(w, "\nFaculty still missing Google Scholar IDs (%d):\n", len(s.StillMissing))
		for _, name := range s.StillMissing {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}

	if len(s.Ambiguous) > 0 {
		fmt.Fprintf(w, "\nAmbiguous Results (Multiple Matches Found):\n")
		fmt.Fprintf(w, "%-30s  %-30s  %s\n", "Faculty Name", "Scholar Profile Name", "URL")
		fmt.Fprintln(w, strings.Repeat("-", 110))
		for _, ar := range s.Ambiguous {
			for i, c := range ar.Candidates {
				name := ""
				if i == 0 {
					name = ar.Name
				}
				fmt.Fprintf(w, "%-30s  %-30s  %s\n", name, c.ProfileName, c.URL)
			}
		}
	}
}

// WriteReport writes the ambiguous results as YAML so they can be
// reviewed and resolved by hand later. Nothing is written when the run
// had no ambiguous results.
func WriteReport(path string, ambiguous []AmbiguousResult) error {
	if len(ambiguous) == 0 {
		return nil
	}
	data, err := yaml.Marshal(ambiguous)
	if err != nil {
		return fmt.Errorf("encoding ambiguous report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing ambiguous report: %w", err)
	}
	return nil
}
