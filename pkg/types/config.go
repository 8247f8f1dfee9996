// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines configuration and the error taxonomy shared by the
// query compiler, the response decoder, and the CLI.
package types

import "time"

// DefaultBaseURL is the public Crossref REST API.
const DefaultBaseURL = "https://api.crossref.org"

// HTTPConfig holds shared HTTP settings used by commands that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "crossref/0.1 (mailto:someone@example.org)").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CrossrefConfig holds settings for talking to the Crossref REST API.
type CrossrefConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is prepended to every compiled route (default https://api.crossref.org).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Mailto is sent as the mailto parameter so requests land in the polite pool.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty" mapstructure:"mailto"`
}

// HarvestConfig holds settings for cursor-driven harvesting into the local index.
type HarvestConfig struct {
	// DBDir is the directory holding the harvest database (contains crossref.db).
	DBDir string `json:"db_dir" yaml:"db_dir" mapstructure:"db_dir"`

	// Rows is the page size requested on every cursor call (default 100, max 1000).
	Rows int `json:"rows" yaml:"rows" mapstructure:"rows"`

	// MaxPages bounds the number of pages fetched in one run. Zero means no bound.
	MaxPages int `json:"max_pages" yaml:"max_pages" mapstructure:"max_pages"`
}

// Config groups all settings read from crossref.yaml.
type Config struct {
	Crossref CrossrefConfig `json:"crossref" yaml:"crossref" mapstructure:"crossref"`
	Harvest  HarvestConfig  `json:"harvest" yaml:"harvest" mapstructure:"harvest"`
}

// DefaultConfig returns the settings used when no config file overrides them.
func DefaultConfig() Config {
	return Config{
		Crossref: CrossrefConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "crossref/dev",
			},
			BaseURL: DefaultBaseURL,
		},
		Harvest: HarvestConfig{
			DBDir: "harvest",
			Rows:  100,
		},
	}
}
