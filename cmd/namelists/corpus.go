// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/namelists/internal/corpus"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the local WordNet corpus (install, status)",
	Long: `Corpus manages the local WordNet index that build reads from.
Use subcommands to force a fresh install or to check what is installed.`,
}

// --- install subcommand ---

var corpusInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Download WordNet and rebuild the local index",
	Long: `Install downloads the WordNet dict package and rebuilds the local
SQLite index from scratch, replacing any previous contents. Build does this
automatically on first use; install exists to force a refresh.`,
	RunE: runCorpusInstall,
}

func runCorpusInstall(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	c, err := corpus.Open(cfg.Corpus)
	if err != nil {
		return err
	}
	defer c.Close()

	return c.Install(context.Background(), os.Stdout)
}

// --- status subcommand ---

var corpusStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the corpus is installed and what it holds",
	RunE:  runCorpusStatus,
}

func runCorpusStatus(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	c, err := corpus.Open(cfg.Corpus)
	if err != nil {
		return err
	}
	defer c.Close()

	st, err := c.Status(context.Background())
	if err != nil {
		return err
	}

	if !st.Installed {
		fmt.Printf("corpus: not installed (data dir %s)\n", cfg.Corpus.DataDir)
		return nil
	}

	fmt.Printf("corpus: installed (data dir %s)\n", cfg.Corpus.DataDir)
	if st.SourceURL != "" {
		fmt.Printf("source: %s\n", st.SourceURL)
	}
	if st.InstalledAt != "" {
		fmt.Printf("installed at: %s\n", st.InstalledAt)
	}
	for _, pos := range []corpus.PartOfSpeech{corpus.Noun, corpus.Adjective, corpus.AdjectiveSatellite} {
		fmt.Printf("%-20s %d lemmas\n", pos.String()+":", st.Counts[pos])
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{corpusInstallCmd, corpusStatusCmd} {
		cmd.Flags().String("data-dir", "", "directory for the local corpus index (default data/wordnet)")
		cmd.Flags().Duration("timeout", 0, "HTTP request timeout for the corpus download (default 60s)")
	}

	corpusCmd.AddCommand(corpusInstallCmd)
	corpusCmd.AddCommand(corpusStatusCmd)
	rootCmd.AddCommand(corpusCmd)
}
