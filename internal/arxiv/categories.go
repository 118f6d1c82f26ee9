// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"sort"
	"strings"
)

// Namespace is the subject-tag prefix the reader recognizes. Category
// terms outside it are discarded during normalization.
const Namespace = "cs."

// categoryLabels maps short subject tags to human-readable labels.
// Read-only, process-wide.
var categoryLabels = map[string]string{
	"cs.AI": "Artificial Intelligence",
	"cs.CL": "Computation and Language",
	"cs.CR": "Cryptography and Security",
	"cs.CV": "Computer Vision and Pattern Recognition",
	"cs.DB": "Databases",
	"cs.DC": "Distributed, Parallel, and Cluster Computing",
	"cs.DS": "Data Structures and Algorithms",
	"cs.IR": "Information Retrieval",
	"cs.LG": "Machine Learning",
	"cs.NI": "Networking and Internet Architecture",
	"cs.OS": "Operating Systems",
	"cs.PL": "Programming Languages",
	"cs.RO": "Robotics",
	"cs.SE": "Software Engineering",
}

// IsRecognized reports whether term is in the recognized subject-tag
// namespace.
func IsRecognized(term string) bool {
	return strings.HasPrefix(term, Namespace)
}

// Label returns the human-readable label for a subject tag, or the tag
// itself when no label is known.
func Label(term string) string {
	if l, ok := categoryLabels[term]; ok {
		return l
	}
	return term
}

// Categories returns the labeled subject tags in sorted order.
func Categories() []string {
	tags := make([]string, 0, len(categoryLabels))
	for tag := range categoryLabels {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
