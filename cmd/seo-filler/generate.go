// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/seo-filler/internal/generate"
	"github.com/pdiddy/seo-filler/internal/lexicon"
	"github.com/pdiddy/seo-filler/internal/render"
	"github.com/pdiddy/seo-filler/internal/sampler"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a placeholder article seeded with keywords",
	Long: `Generate writes a filler article: a title, a number of paragraphs each
headed by a random subtitle, and bodies of random sentences. Every keyword
appears once in a subtitle and is then repeated through the bodies until
the requested density is roughly reached.

The article is written to <output-dir>/<slugified-title>.html (or .md).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("title", "", `article title (default "A title")`)
	generateCmd.Flags().String("keywords", "", `comma-separated keywords, e.g. toto,tata,tutu (default "keyword")`)
	generateCmd.Flags().Float64("percent", 0, "target keyword density in percent of words (default 3)")
	generateCmd.Flags().Int("paragraphs", 0, "number of paragraphs (default 4)")
	generateCmd.Flags().Int("paragraph-length", 0, "sentences per paragraph (default 30)")
	generateCmd.Flags().String("format", "", "output format: html or markdown (default html)")
	generateCmd.Flags().String("output-dir", "", `directory for the generated file (default ".")`)
	generateCmd.Flags().Uint64("seed", 0, "seed for reproducible output (default: random)")
	generateCmd.Flags().Bool("stdout", false, "print the article instead of writing a file")

	bindFlag("generation.title", generateCmd.Flags().Lookup("title"))
	bindFlag("generation.keywords", generateCmd.Flags().Lookup("keywords"))
	bindFlag("generation.percent_of_keywords", generateCmd.Flags().Lookup("percent"))
	bindFlag("generation.number_of_paragraph", generateCmd.Flags().Lookup("paragraphs"))
	bindFlag("generation.paragraph_length", generateCmd.Flags().Lookup("paragraph-length"))
	bindFlag("output.format", generateCmd.Flags().Lookup("format"))
	bindFlag("output.dir", generateCmd.Flags().Lookup("output-dir"))

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	store, err := lexicon.NewStore(cfg.Lexicon, slog.Default())
	if err != nil {
		return err
	}
	lex, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}

	rng := sampler.Default()
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		rng = sampler.NewSeeded(seed)
	}

	article, err := generate.New(lex, rng, slog.Default()).Assemble(cfg.Generation)
	if err != nil {
		return err
	}

	now := time.Now()
	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		return render.Render(os.Stdout, cfg.Output.Format, article, cfg.Generation.Keywords, now)
	}

	path, err := render.Write(cfg.Output.Dir, cfg.Output.Format, article, cfg.Generation.Keywords, now)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
