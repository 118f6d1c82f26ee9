// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv parses arXiv API Atom documents into PaperRecords and
// builds API query URLs. All assumptions about the document shape live
// here so callers never touch raw XML.
package arxiv

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-reader/pkg/types"
)

// ErrMalformedDocument reports a body that does not decode as an Atom
// feed. It is distinct from a feed with zero entries, which is valid.
var ErrMalformedDocument = errors.New("malformed feed document")

// Atom feed XML structures. The XMLName pin rejects non-feed documents
// (proxy splash pages are often well-formed XML/HTML).
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Summary    string         `xml:"summary"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
	Links      []atomLink     `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
}

// Normalize converts one raw Atom document into PaperRecords, one per
// entry. Missing optional fields default to empty values; entries whose
// identifier yields no ID are dropped. A document that fails to decode
// returns ErrMalformedDocument. Zero entries is not an error.
func Normalize(doc []byte) ([]types.PaperRecord, error) {
	feed, err := decode(doc)
	if err != nil {
		return nil, err
	}

	records := make([]types.PaperRecord, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		id := extractID(entry.ID)
		if id == "" {
			continue
		}

		r := types.PaperRecord{
			ID:        id,
			Title:     strings.TrimSpace(entry.Title),
			Summary:   strings.TrimSpace(entry.Summary),
			Published: parseInstant(entry.Published),
			Updated:   parseInstant(entry.Updated),
			PDFURL:    pdfLink(entry.Links),
		}

		for _, c := range entry.Categories {
			if IsRecognized(c.Term) {
				r.Categories = append(r.Categories, c.Term)
			}
		}

		for _, a := range entry.Authors {
			name := strings.TrimSpace(a.Name)
			if name == "" {
				continue
			}
			// The Atom schema carries no affiliation.
			r.Authors = append(r.Authors, types.Author{Name: name})
		}

		records = append(records, r)
	}
	return records, nil
}

// Validate reports whether body is a usable API response. The same rule
// applies to listing and detail fetches: the body must be non-empty,
// decode as an Atom feed, and not be an API error document.
func Validate(body []byte) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("empty body")
	}
	feed, err := decode(body)
	if err != nil {
		return err
	}
	for _, entry := range feed.Entries {
		// The API signals failures as a feed whose entry ID points at
		// the errors namespace.
		if strings.Contains(entry.ID, "/api/errors") {
			return fmt.Errorf("API error document: %s", strings.TrimSpace(entry.Summary))
		}
	}
	return nil
}

func decode(doc []byte) (*atomFeed, error) {
	var feed atomFeed
	if err := xml.Unmarshal(doc, &feed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &feed, nil
}

// extractID pulls the paper ID from the entry's <id> URL: the final path
// segment (e.g. "http://arxiv.org/abs/2401.12345v1" → "2401.12345v1").
func extractID(idURL string) string {
	idURL = strings.TrimSpace(strings.TrimSuffix(idURL, "/"))
	idx := strings.LastIndex(idURL, "/")
	if idx < 0 || idx == len(idURL)-1 {
		return ""
	}
	return idURL[idx+1:]
}

// pdfLink selects the link marking the downloadable document, or "".
func pdfLink(links []atomLink) string {
	for _, l := range links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			return l.Href
		}
	}
	return ""
}

// PDFURLFor synthesizes the conventional PDF URL for an ID. Views use it
// as a last resort when the entry carried no document link.
func PDFURLFor(id string) string {
	return "https://arxiv.org/pdf/" + id
}

func parseInstant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
