// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/seo-filler/pkg/types"
)

// envKeyReplacer maps nested keys to environment names:
// generation.paragraph_length -> SEO_FILLER_GENERATION_PARAGRAPH_LENGTH.
var envKeyReplacer = strings.NewReplacer(".", "_")

// bindFlag ties a viper key to a flag so the flag wins when set.
func bindFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", f.Name, err))
	}
}

// setDefaults registers the defaults of every configuration section.
func setDefaults(v *viper.Viper) {
	gen := types.DefaultGenerationConfig()
	v.SetDefault("generation.title", gen.Title)
	v.SetDefault("generation.keywords", strings.Join(gen.Keywords, ","))
	v.SetDefault("generation.number_of_paragraph", gen.NumberOfParagraph)
	v.SetDefault("generation.paragraph_length", gen.ParagraphLength)
	v.SetDefault("generation.percent_of_keywords", gen.PercentOfKeywords)

	lex := types.DefaultLexiconConfig()
	v.SetDefault("lexicon.source_path", lex.SourcePath)
	v.SetDefault("lexicon.sheet", lex.Sheet)
	v.SetDefault("lexicon.encoding", lex.Encoding)
	v.SetDefault("lexicon.cache_path", lex.CachePath)
	v.SetDefault("lexicon.spelling_column", lex.SpellingColumn)
	v.SetDefault("lexicon.grammar_column", lex.GrammarColumn)

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.format", string(types.OutputHTML))
}

// loadConfig assembles a types.Config from flags, environment, config file
// and defaults, in that order of precedence.
func loadConfig(v *viper.Viper) (types.Config, error) {
	format, err := types.ParseOutputFormat(v.GetString("output.format"))
	if err != nil {
		return types.Config{}, err
	}

	paragraphs, err := intSetting(v, "generation.number_of_paragraph")
	if err != nil {
		return types.Config{}, err
	}
	length, err := intSetting(v, "generation.paragraph_length")
	if err != nil {
		return types.Config{}, err
	}
	percent, err := cast.ToFloat64E(v.Get("generation.percent_of_keywords"))
	if err != nil {
		return types.Config{}, fmt.Errorf("%w: generation.percent_of_keywords: %v", types.ErrInvalidConfig, err)
	}
	spelling, err := intSetting(v, "lexicon.spelling_column")
	if err != nil {
		return types.Config{}, err
	}
	grammar, err := intSetting(v, "lexicon.grammar_column")
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		Generation: types.GenerationConfig{
			Title:             v.GetString("generation.title"),
			Keywords:          parseKeywords(v.Get("generation.keywords")),
			NumberOfParagraph: paragraphs,
			ParagraphLength:   length,
			PercentOfKeywords: percent,
		},
		Lexicon: types.LexiconConfig{
			SourcePath:     v.GetString("lexicon.source_path"),
			Sheet:          v.GetString("lexicon.sheet"),
			Encoding:       v.GetString("lexicon.encoding"),
			CachePath:      v.GetString("lexicon.cache_path"),
			SpellingColumn: spelling,
			GrammarColumn:  grammar,
		},
		Output: types.OutputConfig{
			Dir:    v.GetString("output.dir"),
			Format: format,
		},
	}

	if err := cfg.Generation.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// intSetting reads key as an integer, rejecting values such as "abc"
// that viper's GetInt would silently turn into 0.
func intSetting(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", types.ErrInvalidConfig, key, err)
	}
	return n, nil
}

// parseKeywords accepts a comma-separated string (flags, environment) or a
// list (config file). Entries are trimmed and empty ones dropped.
func parseKeywords(raw any) []string {
	var parts []string
	switch v := raw.(type) {
	case string:
		parts = strings.Split(v, ",")
	case []string:
		parts = v
	case []any:
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
	}

	var keywords []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keywords = append(keywords, p)
		}
	}
	return keywords
}
