// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/namelists/internal/corpus"
	"github.com/pdiddy/namelists/internal/wordlist"
	"github.com/pdiddy/namelists/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the wordlist files from the WordNet corpus",
	Long: `Build runs the full pipeline: ensure the corpus is installed
(downloading it on first use), collect lemmas per part of speech, normalize
and deduplicate them, and write one file per list.

Without a manifest it writes adjectives.txt (regular plus satellite
adjectives) and nouns.txt to the output directory.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("out", "", "output directory for wordlist files (default public/names)")
	buildCmd.Flags().String("data-dir", "", "directory for the local corpus index (default data/wordnet)")
	buildCmd.Flags().String("manifest", "", "YAML manifest describing the lists to build")
	buildCmd.Flags().Duration("timeout", 0, "HTTP request timeout for the corpus download (default 60s)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	manifest := wordlist.DefaultManifest()
	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		m, err := wordlist.ReadManifest(path)
		if err != nil {
			return err
		}
		manifest = m
	}

	c, err := corpus.Open(cfg.Corpus)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Ensure(ctx, os.Stderr); err != nil {
		return err
	}

	return wordlist.Build(ctx, c, manifest, cfg.Wordlist, os.Stdout)
}

// pipelineConfig merges command flags over config-file settings, falling
// back to package defaults for anything unset.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Corpus: types.CorpusConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("corpus.timeout"),
				UserAgent: viper.GetString("corpus.user_agent"),
			},
			DataDir:   viper.GetString("corpus.data_dir"),
			SourceURL: viper.GetString("corpus.source_url"),
		},
		Wordlist: types.WordlistConfig{
			OutputDir: viper.GetString("wordlist.output_dir"),
			MinLength: viper.GetInt("wordlist.min_length"),
			MaxLength: viper.GetInt("wordlist.max_length"),
		},
	}

	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.Corpus.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.Wordlist.OutputDir = v
	}
	if v, _ := cmd.Flags().GetDuration("timeout"); v != 0 {
		cfg.Corpus.Timeout = v
	}

	return cfg.WithDefaults()
}
