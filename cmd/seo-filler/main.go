// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the seo-filler CLI, which generates
// French placeholder articles seeded with SEO keywords.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the seo-filler CLI.
var rootCmd = &cobra.Command{
	Use:   "seo-filler",
	Short: "Generate placeholder SEO articles from a French lexicon",
	Long: `seo-filler builds filler articles out of random French sentences and
sprinkles a list of keywords through them at a target density.

Sentences come from a lexicon of words tagged by grammatical class (the
Lexique 3 database by default). The first run parses the raw lexicon and
caches it; later runs load the cache.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: seo-filler.yaml in . or ~/.config/seo-filler/)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("lexicon-source", "", "raw lexicon table: .xlsx, .csv, .tsv or .txt (default assets/lexique380.xlsx)")
	rootCmd.PersistentFlags().String("lexicon-sheet", "", "worksheet to read from a spreadsheet source (default: first sheet)")
	rootCmd.PersistentFlags().String("lexicon-encoding", "", "character set of a csv/tsv/txt source: utf-8, latin1, latin9, windows-1252 or macintosh (default utf-8)")
	rootCmd.PersistentFlags().String("lexicon-cache", "", "lexicon cache: .json, .yaml or .db (default assets/lexique.json)")

	bindFlag("lexicon.source_path", rootCmd.PersistentFlags().Lookup("lexicon-source"))
	bindFlag("lexicon.sheet", rootCmd.PersistentFlags().Lookup("lexicon-sheet"))
	bindFlag("lexicon.encoding", rootCmd.PersistentFlags().Lookup("lexicon-encoding"))
	bindFlag("lexicon.cache_path", rootCmd.PersistentFlags().Lookup("lexicon-cache"))

	setDefaults(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("seo-filler")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "seo-filler"))
		}
	}

	viper.SetEnvPrefix("SEO_FILLER")
	viper.SetEnvKeyReplacer(envKeyReplacer)
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
