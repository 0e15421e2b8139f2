// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration structures shared across the
// namelists pipeline stages.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "namelists/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CorpusConfig holds settings for the WordNet corpus layer.
type CorpusConfig struct {
	HTTPConfig `yaml:",inline"`

	// DataDir is the directory holding the local corpus index
	// (contains wordnet.db).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// SourceURL is the WordNet dict tarball location. Defaults to the
	// Princeton WordNet 3.1 database package.
	SourceURL string `json:"source_url" yaml:"source_url"`
}

// WordlistConfig holds settings for wordlist construction and output.
type WordlistConfig struct {
	// OutputDir is the directory the wordlist files are written to
	// (e.g. "public/names").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// MinLength and MaxLength bound accepted word lengths, inclusive.
	MinLength int `json:"min_length" yaml:"min_length"`
	MaxLength int `json:"max_length" yaml:"max_length"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Corpus   CorpusConfig   `json:"corpus" yaml:"corpus"`
	Wordlist WordlistConfig `json:"wordlist" yaml:"wordlist"`
}

// Defaults used when a field is zero; cmd and tests share these.
const (
	DefaultTimeout   = 60 * time.Second
	DefaultUserAgent = "namelists/0.1"
	DefaultDataDir   = "data/wordnet"
	DefaultOutputDir = "public/names"
	DefaultSourceURL = "https://wordnetcode.princeton.edu/wn3.1.dict.tar.gz"
	DefaultMinLength = 2
	DefaultMaxLength = 12
)

// WithDefaults returns a copy of cfg with zero-valued fields replaced by
// the package defaults.
func (c PipelineConfig) WithDefaults() PipelineConfig {
	if c.Corpus.Timeout == 0 {
		c.Corpus.Timeout = DefaultTimeout
	}
	if c.Corpus.UserAgent == "" {
		c.Corpus.UserAgent = DefaultUserAgent
	}
	if c.Corpus.DataDir == "" {
		c.Corpus.DataDir = DefaultDataDir
	}
	if c.Corpus.SourceURL == "" {
		c.Corpus.SourceURL = DefaultSourceURL
	}
	if c.Wordlist.OutputDir == "" {
		c.Wordlist.OutputDir = DefaultOutputDir
	}
	if c.Wordlist.MinLength == 0 {
		c.Wordlist.MinLength = DefaultMinLength
	}
	if c.Wordlist.MaxLength == 0 {
		c.Wordlist.MaxLength = DefaultMaxLength
	}
	return c
}
