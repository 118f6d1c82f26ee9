// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-reader/internal/render"
	"github.com/pdiddy/arxiv-reader/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one paper's detail and citation strings",
	Long: `Show fetches a single paper by its arXiv ID and renders the full
record: authors, dates, categories, abstract, PDF link, and BibTeX/APA
citations. When the fetch fails entirely, the sample dataset's record for
the ID (or its default record) is shown instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().Bool("json", false, "output the record as JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	id := args[0]
	if id == "" {
		return fmt.Errorf("paper ID must not be empty")
	}

	record, usedFallback, err := fetchPaper(context.Background(), loadConfig(), id)
	if err != nil {
		return err
	}
	if usedFallback {
		render.FallbackNotice(os.Stderr)
	}

	if asJSON {
		return render.FormatJSON([]types.PaperRecord{record}, os.Stdout)
	}
	render.FormatDetail(record, os.Stdout)
	return nil
}
