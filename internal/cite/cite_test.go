// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-reader/pkg/types"
)

func samplePaper() types.PaperRecord {
	return types.PaperRecord{
		ID:        "2401.12345",
		Title:     "Efficient Attention Mechanisms",
		Published: time.Date(2024, 1, 22, 9, 0, 0, 0, time.UTC),
		Authors: []types.Author{
			{Name: "John Doe"},
			{Name: "Jane Smith"},
		},
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		full       string
		wantGiven  string
		wantFamily string
	}{
		{"John Doe", "John", "Doe"},
		{"John Ronald Reuel Tolkien", "John Ronald Reuel", "Tolkien"},
		{"Plato", "", "Plato"},
		{"  Jane Smith  ", "Jane", "Smith"},
		// Particles are not special-cased: the last token is the family name.
		{"Ludwig van Beethoven", "Ludwig van", "Beethoven"},
	}
	for _, tt := range tests {
		given, family := splitName(tt.full)
		if given != tt.wantGiven || family != tt.wantFamily {
			t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)",
				tt.full, given, family, tt.wantGiven, tt.wantFamily)
		}
	}
}

func TestBibTeX(t *testing.T) {
	got := BibTeX(samplePaper())

	if !strings.Contains(got, "author={Doe, John and Smith, Jane}") {
		t.Errorf("BibTeX author line wrong:\n%s", got)
	}
	if !strings.HasPrefix(got, "@article{2401.12345,") {
		t.Errorf("BibTeX key wrong:\n%s", got)
	}
	if !strings.Contains(got, "title={Efficient Attention Mechanisms}") {
		t.Errorf("BibTeX title wrong:\n%s", got)
	}
	if !strings.Contains(got, "journal={arXiv preprint arXiv:2401.12345}") {
		t.Errorf("BibTeX journal wrong:\n%s", got)
	}
	if !strings.Contains(got, "year={2024}") {
		t.Errorf("BibTeX year wrong:\n%s", got)
	}
	if !strings.HasSuffix(got, "}") {
		t.Errorf("BibTeX entry not closed:\n%s", got)
	}
}

func TestBibTeXSingleTokenName(t *testing.T) {
	r := samplePaper()
	r.Authors = []types.Author{{Name: "Plato"}}
	got := BibTeX(r)
	if !strings.Contains(got, "author={Plato}") {
		t.Errorf("single-token author wrong:\n%s", got)
	}
}

func TestBibTeXNoAuthors(t *testing.T) {
	r := samplePaper()
	r.Authors = nil
	got := BibTeX(r)
	if !strings.Contains(got, "author={}") {
		t.Errorf("empty author list wrong:\n%s", got)
	}
}

func TestAPA(t *testing.T) {
	got := APA(samplePaper())
	want := "Doe, J., & Smith, J. (2024). Efficient Attention Mechanisms. arXiv preprint arXiv:2401.12345."
	if got != want {
		t.Errorf("APA =\n%s\nwant\n%s", got, want)
	}
}

func TestAPAThreeAuthors(t *testing.T) {
	r := samplePaper()
	r.Authors = append(r.Authors, types.Author{Name: "Wei Chen"})
	got := APA(r)
	if !strings.HasPrefix(got, "Doe, J., Smith, J., & Chen, W. (2024).") {
		t.Errorf("APA three-author prefix wrong:\n%s", got)
	}
}

func TestAPAMultiTokenGivenName(t *testing.T) {
	r := samplePaper()
	r.Authors = []types.Author{{Name: "John Ronald Reuel Tolkien"}}
	got := APA(r)
	if !strings.HasPrefix(got, "Tolkien, J. R. R. (2024).") {
		t.Errorf("APA initials wrong:\n%s", got)
	}
}
