// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads and saves the faculty CSV dataset.
//
// The file format is deliberately plain: a UTF-8 CSV with the header
// name,scholar_id,citations,h_index,as_of_date, rewritten in full on
// every save. Saving after each accepted change bounds data loss if a
// long run is interrupted.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/scholar-tracker/pkg/types"
)

// columns is the fixed CSV column order.
var columns = []string{"name", "scholar_id", "citations", "h_index", "as_of_date"}

// Load reads the faculty dataset from path. The header row must
// contain the expected columns; extra columns are ignored and column
// order is not significant.
func Load(path string) ([]types.Faculty, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("dataset %s is missing column %q", path, col)
		}
	}

	field := func(row []string, col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []types.Faculty
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		records = append(records, types.Faculty{
			Name:      field(row, "name"),
			ScholarID: field(row, "scholar_id"),
			Citations: field(row, "citations"),
			HIndex:    field(row, "h_index"),
			AsOfDate:  field(row, "as_of_date"),
		})
	}
	return records, nil
}

// Save writes the full dataset to path, header first, replacing any
// existing content.
func Save(path string, records []types.Faculty) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.Name, rec.ScholarID, rec.Citations, rec.HIndex, rec.AsOfDate}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing record %q: %w", rec.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// Statistics summarizes dataset coverage and citation counts.
type Statistics struct {
	Total          int
	WithScholarID  int
	WithCitations  int
	TotalCitations int
	MaxCitations   int
	MinCitations   int
	MeanCitations  float64
}

// Stats computes coverage and citation statistics. Citation values
// that do not parse as non-negative integers are ignored for the
// numeric aggregates but still count toward coverage.
func Stats(records []types.Faculty) Statistics {
	s := Statistics{Total: len(records)}

	var counts []int
	for _, rec := range records {
		if rec.HasScholarID() {
			s.WithScholarID++
		}
		c := strings.TrimSpace(rec.Citations)
		if c == "" {
			continue
		}
		s.WithCitations++
		n, err := strconv.Atoi(c)
		if err != nil || n < 0 {
			continue
		}
		counts = append(counts, n)
	}

	for i, n := range counts {
		s.TotalCitations += n
		if i == 0 || n > s.MaxCitations {
			s.MaxCitations = n
		}
		if i == 0 || n < s.MinCitations {
			s.MinCitations = n
		}
	}
	if len(counts) > 0 {
		s.MeanCitations = float64(s.TotalCitations) / float64(len(counts))
	}
	return s
}

// Format writes a human-readable statistics report to w.
func (s Statistics) Format(w io.Writer) {
	fmt.Fprintf(w, "\nDataset Statistics:\n")
	fmt.Fprintf(w, "  Total faculty: %d\n", s.Total)
	fmt.Fprintf(w, "  With Google Scholar ID: %d (%s)\n", s.WithScholarID, percent(s.WithScholarID, s.Total))
	fmt.Fprintf(w, "  With citation data: %d (%s)\n", s.WithCitations, percent(s.WithCitations, s.Total))

	if s.WithCitations == 0 {
		return
	}
	fmt.Fprintf(w, "\nCitation Statistics:\n")
	fmt.Fprintf(w, "  Total citations: %d\n", s.TotalCitations)
	fmt.Fprintf(w, "  Average citations: %.0f\n", s.MeanCitations)
	fmt.Fprintf(w, "  Max citations: %d\n", s.MaxCitations)
	fmt.Fprintf(w, "  Min citations: %d\n", s.MinCitations)
}

func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}
