package types

import "time"

// HTTPConfig holds shared HTTP settings for packages that make network requests.
type HTTPConfig struct {
	// Timeout bounds a single request attempt. Exceeding it counts as
	// that attempt's failure, not a fatal error.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-reader/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Intermediary is one passthrough endpoint the fetch pipeline can route a
// request through. Template may contain {url} (substituted with the
// query-escaped target URL) or {raw} (substituted verbatim, used by the
// direct endpoint).
type Intermediary struct {
	// Name identifies the intermediary in diagnostics.
	Name string `json:"name" yaml:"name"`

	// Template is the endpoint URL template.
	Template string `json:"template" yaml:"template"`
}

// FetchConfig holds settings for the fetch pipeline.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of papers per listing (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Intermediaries is the ordered list of passthrough endpoints. The
	// pipeline tries them strictly in this order, one shot each.
	Intermediaries []Intermediary `json:"intermediaries" yaml:"intermediaries"`
}

// FallbackConfig holds settings for the static substitute dataset.
type FallbackConfig struct {
	// DatasetPath is the JSON sample dataset file (default
	// "data/sample_papers.json").
	DatasetPath string `json:"dataset_path" yaml:"dataset_path"`
}

// LoggingConfig holds settings for diagnostic logging.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// Format is the output format: "console" or "json".
	Format string `json:"format" yaml:"format"`
}

// Config groups all settings for the reader.
type Config struct {
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
	Fallback FallbackConfig `json:"fallback" yaml:"fallback"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
}

// DefaultIntermediaries is the build-time intermediary order: the API is
// contacted directly first, then through public passthrough proxies.
func DefaultIntermediaries() []Intermediary {
	return []Intermediary{
		{Name: "direct", Template: "{raw}"},
		{Name: "allorigins", Template: "https://api.allorigins.win/raw?url={url}"},
		{Name: "corsproxy", Template: "https://corsproxy.io/?{url}"},
	}
}

// DefaultConfig returns the configuration used when no file or flags
// override the defaults.
func DefaultConfig() Config {
	return Config{
		Fetch: FetchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   10 * time.Second,
				UserAgent: "arxiv-reader/0.1",
			},
			MaxResults:     20,
			Intermediaries: DefaultIntermediaries(),
		},
		Fallback: FallbackConfig{
			DatasetPath: "data/sample_papers.json",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
