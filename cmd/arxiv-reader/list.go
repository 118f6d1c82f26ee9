// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-reader/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent papers in a category",
	Long: `List fetches the most recent papers in a subject category (newest
first) and renders them as a table. When every intermediary fails, the
listing degrades to the static sample dataset and a notice is printed to
stderr.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("category", render.CategoryAll, "subject category (e.g. cs.AI), or \"all\"")
	listCmd.Flags().Int("max-results", 0, "maximum number of papers (default from config)")
	listCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg := loadConfig()
	if maxResults <= 0 {
		maxResults = cfg.Fetch.MaxResults
	}

	records, usedFallback, err := fetchListing(context.Background(), cfg, category, maxResults)
	if err != nil {
		return err
	}
	if usedFallback {
		render.FallbackNotice(os.Stderr)
	}

	// The fetch is already category-scoped, but fallback data is not, so
	// the view applies its own filter either way.
	state := render.NewState(records).Filter(category)

	if asJSON {
		return render.FormatJSON(state.Visible(), os.Stdout)
	}
	render.FormatTable(state.Visible(), os.Stdout)
	return nil
}
