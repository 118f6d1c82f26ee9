// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdiddy/arxiv-reader/internal/arxiv"
	"github.com/pdiddy/arxiv-reader/internal/fallback"
	"github.com/pdiddy/arxiv-reader/internal/pipeline"
	"github.com/pdiddy/arxiv-reader/pkg/types"
)

// newPipeline wires the fetch pipeline: shared HTTP client, the feed
// validator as the uniform structural check, and the diagnostic logger.
func newPipeline(cfg types.Config) *pipeline.Pipeline {
	// The pipeline enforces its own per-attempt timeout.
	client := &http.Client{}
	return pipeline.New(client, cfg.Fetch, arxiv.Validate, logger)
}

// fetchListing obtains the recent-papers listing for a category. On total
// pipeline failure it degrades to the fallback dataset; usedFallback tells
// the caller to render the substitute-data notice.
func fetchListing(ctx context.Context, cfg types.Config, category string, maxResults int) (records []types.PaperRecord, usedFallback bool, err error) {
	target := arxiv.ListQueryURL(category, maxResults)

	res, err := newPipeline(cfg).Run(ctx, target)
	if errors.Is(err, pipeline.ErrExhausted) {
		return fallback.Load(cfg.Fallback.DatasetPath).List(), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	records, err = arxiv.Normalize(res.Body)
	if err != nil {
		return nil, false, fmt.Errorf("normalizing response from %s: %w", res.Intermediary, err)
	}
	return records, false, nil
}

// fetchPaper obtains one paper by ID. The detail view must always have
// something to show, so total failure and an entry-less response both
// degrade to the fallback dataset's lookup path.
func fetchPaper(ctx context.Context, cfg types.Config, id string) (record types.PaperRecord, usedFallback bool, err error) {
	target := arxiv.DetailQueryURL(id)

	res, err := newPipeline(cfg).Run(ctx, target)
	if errors.Is(err, pipeline.ErrExhausted) {
		return fallback.Load(cfg.Fallback.DatasetPath).Lookup(id), true, nil
	}
	if err != nil {
		return types.PaperRecord{}, false, err
	}

	records, err := arxiv.Normalize(res.Body)
	if err != nil {
		return types.PaperRecord{}, false, fmt.Errorf("normalizing response from %s: %w", res.Intermediary, err)
	}
	if len(records) == 0 {
		return fallback.Load(cfg.Fallback.DatasetPath).Lookup(id), true, nil
	}
	return records[0], false, nil
}
