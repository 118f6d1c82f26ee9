package arxiv

import (
	"sort"
	"testing"
)

func TestIsRecognized(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"cs.AI", true},
		{"cs.LG", true},
		{"cs.XX", true}, // namespace match, not label lookup
		{"math.CO", false},
		{"stat.ML", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRecognized(tt.term); got != tt.want {
			t.Errorf("IsRecognized(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label("cs.AI"); got != "Artificial Intelligence" {
		t.Errorf("Label(cs.AI) = %q", got)
	}
	// Unlabeled tags render as themselves.
	if got := Label("cs.ZZ"); got != "cs.ZZ" {
		t.Errorf("Label(cs.ZZ) = %q, want %q", got, "cs.ZZ")
	}
}

func TestCategoriesSorted(t *testing.T) {
	tags := Categories()
	if len(tags) == 0 {
		t.Fatal("Categories() returned nothing")
	}
	if !sort.StringsAreSorted(tags) {
		t.Errorf("Categories() not sorted: %v", tags)
	}
}
