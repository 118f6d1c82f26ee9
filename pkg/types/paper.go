// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the record and configuration types shared across
// the reader's packages.
package types

import "time"

// Author identifies a paper author. The arXiv feed carries no affiliation,
// so Affiliation is usually empty; the field exists for datasets that do.
type Author struct {
	// Name is the author's display name ("First Last").
	Name string `json:"name" yaml:"name"`

	// Affiliation is the author's institutional affiliation.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// PaperRecord is the uniform in-memory shape for one paper's metadata.
// Records are created fresh on every fetch and live for the session only.
type PaperRecord struct {
	// ID is the stable external identifier (e.g. "2401.12345"), derived
	// from the final path segment of the entry's identifier URL. It is
	// never empty and is the unique lookup key across views.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, whitespace-trimmed.
	Title string `json:"title" yaml:"title"`

	// Published and Updated are UTC instants. A zero value means the
	// source document carried no parseable timestamp.
	Published time.Time `json:"published" yaml:"published"`
	Updated   time.Time `json:"updated" yaml:"updated"`

	// Summary is the abstract, whitespace-trimmed.
	Summary string `json:"summary" yaml:"summary"`

	// Categories holds recognized subject tags only (cs.* namespace),
	// in document order.
	Categories []string `json:"categories" yaml:"categories"`

	// Authors in document order.
	Authors []Author `json:"authors" yaml:"authors"`

	// PDFURL is the downloadable-document link, or "" when the source
	// carried none. Views may synthesize a conventional URL from ID.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
}

// Year returns the publication year, or 0 when Published is unset.
func (r PaperRecord) Year() int {
	if r.Published.IsZero() {
		return 0
	}
	return r.Published.Year()
}
