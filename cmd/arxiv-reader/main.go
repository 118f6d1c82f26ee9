// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-reader CLI: a terminal
// client for browsing recent arXiv paper metadata through passthrough
// intermediaries, with deterministic sample-data fallback.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-reader/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger receives pipeline diagnostics. Configured in PersistentPreRunE
// once the config is known.
var logger zerolog.Logger

// rootCmd is the base command for the arxiv-reader CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-reader",
	Short: "Browse recent arXiv papers from the terminal",
	Long: `arxiv-reader fetches recent paper metadata from the arXiv API, routing
requests through an ordered list of passthrough intermediaries and falling
back to a static sample dataset when every intermediary fails.

Use list to browse recent papers in a category, show for per-paper detail,
and cite to generate citation strings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A local .env may carry ARXIV_READER_* overrides; absence is fine.
		_ = godotenv.Load()
		logger = newLogger(loadConfig().Logging)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-reader.yaml or ~/.config/arxiv-reader/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-reader")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-reader"))
		}
	}

	viper.SetEnvPrefix("ARXIV_READER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overridden by
// config file and environment.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()

	if v := viper.GetDuration("fetch.timeout"); v > 0 {
		cfg.Fetch.Timeout = v
	}
	if v := viper.GetString("fetch.user_agent"); v != "" {
		cfg.Fetch.UserAgent = v
	}
	if v := viper.GetInt("fetch.max_results"); v > 0 {
		cfg.Fetch.MaxResults = v
	}
	if viper.IsSet("fetch.intermediaries") {
		var ims []types.Intermediary
		if err := viper.UnmarshalKey("fetch.intermediaries", &ims); err == nil && len(ims) > 0 {
			cfg.Fetch.Intermediaries = ims
		}
	}
	if v := viper.GetString("fallback.dataset_path"); v != "" {
		cfg.Fallback.DatasetPath = v
	}
	if v := viper.GetString("logging.level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := viper.GetString("logging.format"); v != "" {
		cfg.Logging.Format = v
	}

	return cfg
}

// newLogger builds the diagnostic logger. Console format writes
// human-readable lines to stderr; anything else emits JSON.
func newLogger(cfg types.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.WarnLevel
	}

	var out = zerolog.New(os.Stderr)
	if strings.ToLower(cfg.Format) != "json" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return out.With().Timestamp().Logger().Level(level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
