// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite formats citation strings for paper records.
//
// Name splitting treats the last space-delimited token as the family
// name. Particles and suffixes ("van der Berg", "Smith Jr.") are not
// specially handled; this is a documented limitation of the format, not
// something to silently fix per-name.
package cite

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-reader/pkg/types"
)

// Format identifies a citation output format.
type Format string

const (
	FormatBibTeX  Format = "bibtex"
	FormatAPA     Format = "apa"
	FormatCSLYAML Format = "csl"
)

// splitName divides a full name on its last space: everything before is
// the given name, the last token is the family name. A single-token name
// has no given part.
func splitName(full string) (given, family string) {
	full = strings.TrimSpace(full)
	idx := strings.LastIndex(full, " ")
	if idx < 0 {
		return "", full
	}
	return full[:idx], full[idx+1:]
}

// BibTeX formats r as a BibTeX @article entry. Authors render as
// "Family, Given and Family, Given".
func BibTeX(r types.PaperRecord) string {
	var names []string
	for _, a := range r.Authors {
		given, family := splitName(a.Name)
		if family == "" {
			continue
		}
		if given == "" {
			names = append(names, family)
			continue
		}
		names = append(names, family+", "+given)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@article{%s,\n", r.ID)
	fmt.Fprintf(&b, "  title={%s},\n", r.Title)
	fmt.Fprintf(&b, "  author={%s},\n", strings.Join(names, " and "))
	fmt.Fprintf(&b, "  journal={arXiv preprint arXiv:%s},\n", r.ID)
	fmt.Fprintf(&b, "  year={%d}\n", r.Year())
	b.WriteString("}")
	return b.String()
}

// APA formats r as an APA-style reference line. Authors render as
// "Family, G., & Family, G.".
func APA(r types.PaperRecord) string {
	var names []string
	for _, a := range r.Authors {
		given, family := splitName(a.Name)
		if family == "" {
			continue
		}
		if given == "" {
			names = append(names, family)
			continue
		}
		names = append(names, fmt.Sprintf("%s, %s.", family, initials(given)))
	}

	authors := joinAPA(names)
	return fmt.Sprintf("%s (%d). %s. arXiv preprint arXiv:%s.",
		authors, r.Year(), r.Title, r.ID)
}

// initials abbreviates each given-name token: "John Ronald" → "J. R".
// The caller appends the final period.
func initials(given string) string {
	tokens := strings.Fields(given)
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = string([]rune(tok)[0])
	}
	return strings.Join(parts, ". ")
}

// joinAPA joins author strings with APA separators: the final author is
// preceded by ", & ".
func joinAPA(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", & " + names[len(names)-1]
	}
}
