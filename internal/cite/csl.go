package cite

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-reader/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID       string    `yaml:"id"`
	Type     string    `yaml:"type"`
	Title    string    `yaml:"title"`
	Author   []CSLName `yaml:"author,omitempty"`
	Abstract string    `yaml:"abstract,omitempty"`
	Issued   *CSLDate  `yaml:"issued,omitempty"`
	URL      string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes records as a CSL-YAML list to w.
func FormatCSL(records []types.PaperRecord, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a PaperRecord to a CSLItem.
func toCSLItem(r types.PaperRecord) CSLItem {
	item := CSLItem{
		ID:       r.ID,
		Type:     "article",
		Title:    r.Title,
		Abstract: r.Summary,
		URL:      r.PDFURL,
	}

	for _, a := range r.Authors {
		given, family := splitName(a.Name)
		if family == "" {
			continue
		}
		if given == "" {
			item.Author = append(item.Author, CSLName{Literal: family})
			continue
		}
		item.Author = append(item.Author, CSLName{Given: given, Family: family})
	}

	if !r.Published.IsZero() {
		item.Issued = &CSLDate{
			DateParts: [][]int{{r.Published.Year(), int(r.Published.Month()), r.Published.Day()}},
		}
	}

	return item
}
