// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fallback supplies deterministic substitute paper data for when
// the fetch pipeline reports total failure. The views must always have
// something to show, so nothing in this package can fail: an unreadable
// or unparseable dataset degrades to a built-in literal set.
package fallback

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-reader/pkg/types"
)

// samplePaper is the dataset's on-disk per-paper shape. Timestamps are
// strings so hand-edited datasets with date-only values still load.
type samplePaper struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Published  string   `json:"published"`
	Updated    string   `json:"updated"`
	Summary    string   `json:"summary"`
	Categories []string `json:"categories"`
	Authors    []string `json:"authors"`
	PDFURL     string   `json:"pdfUrl"`
}

// dataset is the on-disk file shape: a map of sample records keyed by ID
// plus one default record for unknown lookups.
type dataset struct {
	SamplePapers       map[string]samplePaper `json:"samplePapers"`
	DefaultSamplePaper *samplePaper           `json:"defaultSamplePaper"`
}

// Provider serves substitute PaperRecords.
type Provider struct {
	records map[string]types.PaperRecord
	order   []string // sorted IDs, for deterministic listing
	def     *types.PaperRecord
}

// Load reads the JSON dataset at path. When the read or parse fails, or
// the dataset holds no records, Load returns a provider over the built-in
// literal set. It never returns an error.
func Load(path string) *Provider {
	data, err := os.ReadFile(path)
	if err != nil {
		return literalProvider()
	}

	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return literalProvider()
	}
	if len(ds.SamplePapers) == 0 {
		return literalProvider()
	}

	p := &Provider{records: make(map[string]types.PaperRecord, len(ds.SamplePapers))}
	for id, sp := range ds.SamplePapers {
		if sp.ID == "" {
			sp.ID = id
		}
		p.records[sp.ID] = toRecord(sp)
		p.order = append(p.order, sp.ID)
	}
	sort.Strings(p.order)

	if ds.DefaultSamplePaper != nil {
		def := toRecord(*ds.DefaultSamplePaper)
		p.def = &def
	}
	return p
}

// Lookup returns the record for id. An unknown id yields the dataset's
// default record, or the first record when no default is configured.
// This path never reports "not found".
func (p *Provider) Lookup(id string) types.PaperRecord {
	if r, ok := p.records[id]; ok {
		return r
	}
	if p.def != nil {
		return *p.def
	}
	return p.records[p.order[0]]
}

// List returns all records sorted by ID.
func (p *Provider) List() []types.PaperRecord {
	out := make([]types.PaperRecord, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.records[id])
	}
	return out
}

// toRecord converts a dataset entry to the uniform record shape,
// normalizing timestamps to UTC instants.
func toRecord(sp samplePaper) types.PaperRecord {
	r := types.PaperRecord{
		ID:         sp.ID,
		Title:      strings.TrimSpace(sp.Title),
		Summary:    strings.TrimSpace(sp.Summary),
		Categories: sp.Categories,
		Published:  parseInstant(sp.Published),
		Updated:    parseInstant(sp.Updated),
		PDFURL:     sp.PDFURL,
	}
	for _, name := range sp.Authors {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		r.Authors = append(r.Authors, types.Author{Name: name})
	}
	return r
}

// parseInstant accepts RFC3339 or date-only timestamps.
func parseInstant(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

// literalProvider is the last line of defense: a fixed in-memory set used
// when the dataset file itself is unusable.
func literalProvider() *Provider {
	r := types.PaperRecord{
		ID:        "2401.12345",
		Title:     "Efficient Attention Mechanisms for Long-Context Language Models",
		Published: time.Date(2024, 1, 22, 9, 0, 0, 0, time.UTC),
		Updated:   time.Date(2024, 1, 22, 9, 0, 0, 0, time.UTC),
		Summary: "We study attention variants that scale to long input contexts " +
			"and characterize their quality/latency trade-offs on standard benchmarks.",
		Categories: []string{"cs.LG", "cs.CL"},
		Authors: []types.Author{
			{Name: "John Doe"},
			{Name: "Jane Smith"},
		},
		PDFURL: "https://arxiv.org/pdf/2401.12345",
	}
	return &Provider{
		records: map[string]types.PaperRecord{r.ID: r},
		order:   []string{r.ID},
	}
}
