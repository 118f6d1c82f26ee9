// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fallback

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testDataset = `{
  "samplePapers": {
    "2401.11111": {
      "id": "2401.11111",
      "title": "Paper One",
      "published": "2024-01-10T12:00:00Z",
      "updated": "2024-01-10",
      "summary": "First sample.",
      "categories": ["cs.AI"],
      "authors": ["Alice Example"],
      "pdfUrl": "https://arxiv.org/pdf/2401.11111"
    },
    "2402.22222": {
      "id": "2402.22222",
      "title": "Paper Two",
      "published": "2024-02-05",
      "summary": "Second sample.",
      "categories": ["cs.LG"],
      "authors": ["Bob Example", "Carol Example"]
    }
  },
  "defaultSamplePaper": {
    "id": "2400.00000",
    "title": "Default Paper",
    "published": "2024-01-01T00:00:00Z",
    "summary": "Shown for unknown IDs.",
    "categories": ["cs.AI"],
    "authors": ["Default Author"]
  }
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample_papers.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}
	return path
}

func TestLoadDataset(t *testing.T) {
	p := Load(writeDataset(t, testDataset))

	records := p.List()
	if len(records) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(records))
	}
	// Deterministic order: sorted by ID.
	if records[0].ID != "2401.11111" || records[1].ID != "2402.22222" {
		t.Errorf("List() order = %q, %q", records[0].ID, records[1].ID)
	}

	r := records[0]
	if r.Title != "Paper One" {
		t.Errorf("Title = %q", r.Title)
	}
	if len(r.Authors) != 1 || r.Authors[0].Name != "Alice Example" {
		t.Errorf("Authors = %+v", r.Authors)
	}

	// Timestamps normalized to UTC instants, date-only values included.
	wantPub := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	if !r.Published.Equal(wantPub) {
		t.Errorf("Published = %v, want %v", r.Published, wantPub)
	}
	wantUpd := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !r.Updated.Equal(wantUpd) {
		t.Errorf("Updated = %v, want %v", r.Updated, wantUpd)
	}
}

func TestLookupKnownID(t *testing.T) {
	p := Load(writeDataset(t, testDataset))
	r := p.Lookup("2402.22222")
	if r.ID != "2402.22222" || r.Title != "Paper Two" {
		t.Errorf("Lookup = %+v", r)
	}
}

func TestLookupUnknownIDReturnsDefault(t *testing.T) {
	p := Load(writeDataset(t, testDataset))
	r := p.Lookup("9999.99999")
	if r.ID != "2400.00000" {
		t.Errorf("Lookup unknown = %q, want default record", r.ID)
	}
}

func TestLookupUnknownIDWithoutDefault(t *testing.T) {
	// No default record configured: the first record serves the path.
	p := Load(writeDataset(t, `{"samplePapers":{"2401.12345":{"id":"2401.12345","title":"Only"}}}`))
	r := p.Lookup("9999.99999")
	if r.ID != "2401.12345" {
		t.Errorf("Lookup unknown = %q, want first record 2401.12345", r.ID)
	}
}

func TestLoadMissingFileUsesLiterals(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	records := p.List()
	if len(records) == 0 {
		t.Fatal("literal set must hold at least one record")
	}
	if records[0].ID != "2401.12345" {
		t.Errorf("literal record ID = %q, want 2401.12345", records[0].ID)
	}
	// Lookup still never fails.
	if got := p.Lookup("anything"); got.ID != "2401.12345" {
		t.Errorf("Lookup on literals = %q", got.ID)
	}
}

func TestLoadCorruptFileUsesLiterals(t *testing.T) {
	p := Load(writeDataset(t, "{not json"))
	if len(p.List()) == 0 {
		t.Fatal("corrupt dataset must degrade to literals, not an empty provider")
	}
}

func TestLoadEmptyDatasetUsesLiterals(t *testing.T) {
	p := Load(writeDataset(t, `{"samplePapers":{}}`))
	if len(p.List()) == 0 {
		t.Fatal("entry-less dataset must degrade to literals")
	}
}
