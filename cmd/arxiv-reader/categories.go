package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-reader/internal/arxiv"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the recognized subject categories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, tag := range arxiv.Categories() {
			fmt.Fprintf(os.Stdout, "%-8s  %s\n", tag, arxiv.Label(tag))
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
