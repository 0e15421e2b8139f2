// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the namelists CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the namelists CLI.
var rootCmd = &cobra.Command{
	Use:   "namelists",
	Short: "Build naming-dictionary wordlists from WordNet",
	Long: `namelists extracts adjective and noun wordlists from the Princeton
WordNet lexical database for use as a naming dictionary (e.g. generated
identifiers like "brave-zebra").

The first run downloads the WordNet dict package and indexes it locally;
later runs reuse the index. Run "namelists build" to produce the wordlist
files, or "namelists corpus" to manage the local corpus.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./namelists.yaml or ~/.config/namelists/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("namelists")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "namelists"))
		}
	}

	viper.SetEnvPrefix("NAMELISTS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
