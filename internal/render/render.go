// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns paper records into terminal output. View state is
// an explicit value threaded through the functions here; nothing in this
// package holds module-level mutable state.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/arxiv-reader/internal/arxiv"
	"github.com/pdiddy/arxiv-reader/internal/cite"
	"github.com/pdiddy/arxiv-reader/pkg/types"
)

// CategoryAll selects every loaded record.
const CategoryAll = "all"

// State is the listing view's session state: the loaded records and the
// currently selected category. It is a value; Filter returns a new State.
type State struct {
	SelectedCategory string
	Loaded           []types.PaperRecord
}

// NewState returns a State over records with no category filter applied.
func NewState(records []types.PaperRecord) State {
	return State{SelectedCategory: CategoryAll, Loaded: records}
}

// Filter returns a copy of s with the selected category changed. An empty
// category means CategoryAll. Filtering is idempotent: the loaded set is
// untouched, only the selection changes.
func (s State) Filter(category string) State {
	if category == "" {
		category = CategoryAll
	}
	s.SelectedCategory = category
	return s
}

// Visible returns the loaded records matching the selected category.
func (s State) Visible() []types.PaperRecord {
	if s.SelectedCategory == CategoryAll {
		return s.Loaded
	}
	var out []types.PaperRecord
	for _, r := range s.Loaded {
		for _, c := range r.Categories {
			if c == s.SelectedCategory {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// FormatTable writes records as a human-readable listing to w.
func FormatTable(records []types.PaperRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-14s  %-10s  %-16s  %s\n", "ID", "Date", "Categories", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range records {
		date := ""
		if !r.Published.IsZero() {
			date = r.Published.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%-14s  %-10s  %-16s  %s\n",
			truncate(r.ID, 14), date, truncate(strings.Join(r.Categories, ","), 16), truncate(r.Title, 64))
	}

	fmt.Fprintf(w, "\n%d papers\n", len(records))
}

// FormatDetail writes one record's full detail view to w, including both
// citation strings. A record without a document link gets the
// conventional PDF URL synthesized from its ID.
func FormatDetail(r types.PaperRecord, w io.Writer) {
	fmt.Fprintf(w, "%s\n", r.Title)
	fmt.Fprintf(w, "arXiv:%s\n\n", r.ID)

	if len(r.Authors) > 0 {
		names := make([]string, len(r.Authors))
		for i, a := range r.Authors {
			names[i] = a.Name
			if a.Affiliation != "" {
				names[i] += " (" + a.Affiliation + ")"
			}
		}
		fmt.Fprintf(w, "Authors:    %s\n", strings.Join(names, ", "))
	}
	if !r.Published.IsZero() {
		fmt.Fprintf(w, "Published:  %s\n", r.Published.Format("2006-01-02"))
	}
	if !r.Updated.IsZero() && !r.Updated.Equal(r.Published) {
		fmt.Fprintf(w, "Updated:    %s\n", r.Updated.Format("2006-01-02"))
	}
	if len(r.Categories) > 0 {
		labels := make([]string, len(r.Categories))
		for i, c := range r.Categories {
			labels[i] = fmt.Sprintf("%s (%s)", c, arxiv.Label(c))
		}
		fmt.Fprintf(w, "Categories: %s\n", strings.Join(labels, ", "))
	}

	pdf := r.PDFURL
	if pdf == "" {
		pdf = arxiv.PDFURLFor(r.ID)
	}
	fmt.Fprintf(w, "PDF:        %s\n", pdf)

	if r.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", r.Summary)
	}

	fmt.Fprintf(w, "\nBibTeX:\n%s\n", cite.BibTeX(r))
	fmt.Fprintf(w, "\nAPA:\n%s\n", cite.APA(r))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.PaperRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// FallbackNotice writes the substitute-data banner to w. Rendered output
// must make degraded mode visible, never silent.
func FallbackNotice(w io.Writer) {
	fmt.Fprintln(w, "note: live fetch unavailable, showing sample data")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
