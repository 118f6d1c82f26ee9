// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-reader/internal/cite"
	"github.com/pdiddy/arxiv-reader/internal/render"
	"github.com/pdiddy/arxiv-reader/pkg/types"
)

var citeCmd = &cobra.Command{
	Use:   "cite <id>",
	Short: "Generate a citation string for a paper",
	Long: `Cite fetches a paper by its arXiv ID and prints a citation in the
requested format: bibtex, apa, or csl (CSL-YAML, consumable by Pandoc).`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func init() {
	citeCmd.Flags().String("format", string(cite.FormatBibTeX), "citation format: bibtex, apa, or csl")

	rootCmd.AddCommand(citeCmd)
}

func runCite(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")

	record, usedFallback, err := fetchPaper(context.Background(), loadConfig(), args[0])
	if err != nil {
		return err
	}
	if usedFallback {
		render.FallbackNotice(os.Stderr)
	}

	switch cite.Format(formatFlag) {
	case cite.FormatBibTeX:
		fmt.Println(cite.BibTeX(record))
	case cite.FormatAPA:
		fmt.Println(cite.APA(record))
	case cite.FormatCSLYAML:
		return cite.FormatCSL([]types.PaperRecord{record}, os.Stdout)
	default:
		return fmt.Errorf("unknown citation format %q (want bibtex, apa, or csl)", formatFlag)
	}
	return nil
}
