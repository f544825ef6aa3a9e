// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/seo-filler/internal/generate"
	"github.com/pdiddy/seo-filler/internal/lexicon"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Build and inspect the tagged word list",
	Long: `Lexicon manages the word list that sentences are drawn from. The raw
source is a table whose spelling and grammar columns are grouped by tag;
the result is cached so later runs skip the parse.`,
}

// --- build subcommand ---

var lexiconBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Load or build the lexicon cache",
	Long: `Build loads the cached lexicon, building it from the raw source when the
cache is missing or unreadable. With --force the raw source is always
reparsed and the cache rewritten.`,
	RunE: runLexiconBuild,
}

func runLexiconBuild(cmd *cobra.Command, args []string) error {
	store, err := lexiconStore()
	if err != nil {
		return err
	}

	load := store.Load
	if force, _ := cmd.Flags().GetBool("force"); force {
		load = store.Rebuild
	}
	lex, err := load(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%d tags, %d words", len(lex), lex.Size())
	if path := store.CachePath(); path != "" {
		fmt.Printf(" (cache: %s)", path)
	}
	fmt.Println()
	return nil
}

// --- inspect subcommand ---

var lexiconInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print word counts per grammar tag",
	Long: `Inspect lists every grammar tag with its word count and flags the tags
that sentence patterns need but the lexicon lacks. It exits with an error
when any required tag is missing.`,
	RunE: runLexiconInspect,
}

func runLexiconInspect(cmd *cobra.Command, args []string) error {
	store, err := lexiconStore()
	if err != nil {
		return err
	}
	lex, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}

	missing := lex.Missing(generate.RequiredTags(generate.Patterns))
	printTagCounts(os.Stdout, lex, missing)
	if len(missing) > 0 {
		return fmt.Errorf("lexicon lacks %d tag(s) required by sentence patterns: %s",
			len(missing), strings.Join(missing, ", "))
	}
	return nil
}

func printTagCounts(w io.Writer, lex lexicon.Lexicon, missing []string) {
	required := make(map[string]bool)
	for _, tag := range generate.RequiredTags(generate.Patterns) {
		required[tag] = true
	}

	fmt.Fprintf(w, "%-10s  %8s  %s\n", "Tag", "Words", "Used")
	fmt.Fprintln(w, strings.Repeat("-", 28))
	for _, tag := range lex.Tags() {
		used := ""
		if required[tag] {
			used = "yes"
		}
		fmt.Fprintf(w, "%-10s  %8d  %s\n", tag, len(lex.Words(tag)), used)
	}
	for _, tag := range missing {
		fmt.Fprintf(w, "%-10s  %8s  %s\n", tag, "-", "MISSING")
	}
	fmt.Fprintf(w, "\n%d tags, %d words\n", len(lex), lex.Size())
}

// --- shared helpers ---

func lexiconStore() (*lexicon.Store, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return lexicon.NewStore(cfg.Lexicon, slog.Default())
}

func init() {
	lexiconBuildCmd.Flags().Bool("force", false, "reparse the raw source even when a cache exists")

	lexiconCmd.AddCommand(lexiconBuildCmd)
	lexiconCmd.AddCommand(lexiconInspectCmd)

	rootCmd.AddCommand(lexiconCmd)
}
