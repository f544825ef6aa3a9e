// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate synthesizes placeholder articles from a Lexicon: one
// random word per tag of a sentence pattern, sentences grouped into
// paragraphs, paragraphs into an article, and keywords injected last.
package generate

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/seo-filler/internal/lexicon"
	"github.com/pdiddy/seo-filler/internal/sampler"
	"github.com/pdiddy/seo-filler/pkg/types"
)

// Generator produces sentences, paragraphs and articles from a lexicon.
// It is not safe for concurrent use when its Sampler is not.
type Generator struct {
	lex      lexicon.Lexicon
	rng      sampler.Sampler
	logger   *slog.Logger
	patterns []Pattern
}

// New creates a Generator over lex. A nil rng uses the process-wide random
// source; a nil logger uses slog.Default().
func New(lex lexicon.Lexicon, rng sampler.Sampler, logger *slog.Logger) *Generator {
	if rng == nil {
		rng = sampler.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		lex:      lex,
		rng:      rng,
		logger:   logger,
		patterns: Patterns,
	}
}

// Sentence draws one word per tag of p and joins them with single spaces.
// With capitalize set, only the first letter of the sentence is upper-cased.
func (g *Generator) Sentence(p Pattern, capitalize bool) (string, error) {
	words := make([]string, len(p))
	for i, tag := range p {
		candidates := g.lex.Words(tag)
		if len(candidates) == 0 {
			return "", fmt.Errorf("%w: %q in pattern %q", types.ErrUnknownTag, tag, p.String())
		}
		words[i] = candidates[g.rng.PickIndex(len(candidates))]
	}

	sentence := strings.Join(words, " ")
	if capitalize {
		sentence = capitalizeFirst(sentence)
	}
	return sentence, nil
}

// Basic produces a sentence from a pattern picked uniformly from the
// catalog.
func (g *Generator) Basic(capitalize bool) (string, error) {
	p := g.patterns[g.rng.PickIndex(len(g.patterns))]
	return g.Sentence(p, capitalize)
}

// Complex joins two independently drawn sentences with a comma; only the
// first is capitalized.
func (g *Generator) Complex() (string, error) {
	head, err := g.Basic(true)
	if err != nil {
		return "", err
	}
	tail, err := g.Basic(false)
	if err != nil {
		return "", err
	}
	return head + ", " + tail, nil
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
