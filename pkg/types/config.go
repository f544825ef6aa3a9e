// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"math"
)

// GenerationConfig holds the inputs of one article generation.
type GenerationConfig struct {
	// Title is the article title. It is copied verbatim into the article.
	Title string `json:"title" yaml:"title"`

	// Keywords lists the terms to distribute through the article, in order.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// NumberOfParagraph is the number of paragraphs to produce (default 4).
	// Zero is honored and yields an article with no paragraphs.
	NumberOfParagraph int `json:"number_of_paragraph" yaml:"number_of_paragraph"`

	// ParagraphLength is the number of sentences per paragraph body (default 30).
	ParagraphLength int `json:"paragraph_length" yaml:"paragraph_length"`

	// PercentOfKeywords is the target keyword density, in percent of the
	// article's word count (default 3). Best effort only.
	PercentOfKeywords float64 `json:"percent_of_keywords" yaml:"percent_of_keywords"`
}

// DefaultGenerationConfig returns the configuration used when the caller
// supplies nothing.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Title:             "A title",
		Keywords:          []string{"keyword"},
		NumberOfParagraph: 4,
		ParagraphLength:   30,
		PercentOfKeywords: 3,
	}
}

// Validate rejects configurations that cannot produce an article.
func (c GenerationConfig) Validate() error {
	if c.NumberOfParagraph < 0 {
		return fmt.Errorf("%w: number of paragraphs must be >= 0, got %d", ErrInvalidConfig, c.NumberOfParagraph)
	}
	if c.ParagraphLength < 0 {
		return fmt.Errorf("%w: paragraph length must be >= 0, got %d", ErrInvalidConfig, c.ParagraphLength)
	}
	if math.IsNaN(c.PercentOfKeywords) || math.IsInf(c.PercentOfKeywords, 0) {
		return fmt.Errorf("%w: percent of keywords must be a finite number", ErrInvalidConfig)
	}
	if c.PercentOfKeywords < 0 {
		return fmt.Errorf("%w: percent of keywords must be >= 0, got %g", ErrInvalidConfig, c.PercentOfKeywords)
	}
	return nil
}

// LexiconConfig locates the raw lexicon source and its cache.
type LexiconConfig struct {
	// SourcePath is the raw tabular lexicon (xlsx, csv, tsv or txt).
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Sheet names the worksheet to read from a spreadsheet source.
	// Empty selects the first sheet.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`

	// Encoding is the character set of a csv/tsv/txt source: "utf-8"
	// (default), "latin1", "latin9", "windows-1252" or "macintosh".
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`

	// CachePath is the pre-parsed lexicon. Its extension selects the codec:
	// .json, .yaml/.yml or .db/.sqlite.
	CachePath string `json:"cache_path" yaml:"cache_path"`

	// SpellingColumn is the zero-based column holding the word (default 0).
	SpellingColumn int `json:"spelling_column" yaml:"spelling_column"`

	// GrammarColumn is the zero-based column holding the grammar tag (default 3).
	GrammarColumn int `json:"grammar_column" yaml:"grammar_column"`
}

// DefaultLexiconConfig returns the lexicon locations relative to the
// working directory.
func DefaultLexiconConfig() LexiconConfig {
	return LexiconConfig{
		SourcePath:     "assets/lexique380.xlsx",
		CachePath:      "assets/lexique.json",
		SpellingColumn: 0,
		GrammarColumn:  3,
	}
}

// OutputFormat selects how a generated article is rendered.
type OutputFormat string

const (
	OutputHTML     OutputFormat = "html"
	OutputMarkdown OutputFormat = "markdown"
)

// ParseOutputFormat maps a user-supplied name to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputHTML, "":
		return OutputHTML, nil
	case OutputMarkdown, "md":
		return OutputMarkdown, nil
	}
	return "", fmt.Errorf("%w: unknown output format %q (want html or markdown)", ErrInvalidConfig, s)
}

// OutputConfig holds settings for writing a rendered article.
type OutputConfig struct {
	// Dir is the directory receiving the rendered file.
	Dir string `json:"dir" yaml:"dir"`

	// Format selects the rendering: html or markdown.
	Format OutputFormat `json:"format" yaml:"format"`
}

// Config groups every configuration section of the tool.
type Config struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Lexicon    LexiconConfig    `json:"lexicon" yaml:"lexicon"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}
