// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"net/url"
)

// apiBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// ListQueryURL builds the API URL for the most recent papers in a
// category, newest first. A category of "all" (or "") selects the whole
// recognized namespace.
func ListQueryURL(category string, maxResults int) string {
	if maxResults <= 0 {
		maxResults = 20
	}

	q := "cat:" + category
	if category == "" || category == "all" {
		q = "cat:" + Namespace + "*"
	}

	v := url.Values{}
	v.Set("search_query", q)
	v.Set("sortBy", "submittedDate")
	v.Set("sortOrder", "descending")
	v.Set("max_results", fmt.Sprintf("%d", maxResults))
	return apiBase + "?" + v.Encode()
}

// DetailQueryURL builds the API URL for a single paper by ID.
func DetailQueryURL(id string) string {
	v := url.Values{}
	v.Set("id_list", id)
	return apiBase + "?" + v.Encode()
}
