// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keyword spreads caller-supplied keywords through a generated
// article to approach a target density. Placement is best effort: the
// target is an estimate and the result is not measured afterwards.
package keyword

import (
	"math"
	"strings"

	"github.com/pdiddy/seo-filler/internal/sampler"
	"github.com/pdiddy/seo-filler/pkg/types"
)

// minInjectLen is the text length below which InjectWord stops drawing a
// random offset and searches from the start.
const minInjectLen = 10

// Result reports what Inject did.
type Result struct {
	// WordCount is the article's word count before injection.
	WordCount int

	// Target is the body insertions requested per keyword after the
	// subtitle pass (wordCount * percent / 100 - 1). It may be negative.
	Target float64

	// Inserted counts every keyword occurrence added.
	Inserted int
}

// WordCount counts whitespace-delimited words in the title, subtitles and
// bodies of article.
func WordCount(article *types.Article) int {
	n := len(strings.Fields(article.Title))
	for _, p := range article.Paragraphs {
		n += len(strings.Fields(p.Subtitle))
		n += len(strings.Fields(p.Content))
	}
	return n
}

// Inject modifies article in place. Each keyword goes once into the
// subtitle of a random paragraph, then floor(target) more times into the
// bodies of random paragraphs, where target is the word-count share given
// by percent, minus one. The body repeats never exceed the article's word
// count, whatever the percent. An article without paragraphs, or an empty
// keyword list, is left untouched.
func Inject(article *types.Article, keywords []string, percent float64, rng sampler.Sampler) Result {
	res := Result{WordCount: WordCount(article)}
	res.Target = float64(res.WordCount)*percent/100 - 1

	n := len(article.Paragraphs)
	if n == 0 || len(keywords) == 0 {
		return res
	}

	for _, kw := range keywords {
		p := &article.Paragraphs[rng.PickIndex(n)]
		p.Subtitle = InjectWord(p.Subtitle, kw, rng)
		res.Inserted++
	}

	repeats := bodyRepeats(res.Target, res.WordCount)
	for _, kw := range keywords {
		for range repeats {
			p := &article.Paragraphs[rng.PickIndex(n)]
			p.Content = InjectWord(p.Content, kw, rng)
			res.Inserted++
		}
	}

	return res
}

// bodyRepeats is floor(target) bounded to [0, wordCount]. Bounding before
// the conversion keeps huge or non-finite targets out of int().
func bodyRepeats(target float64, wordCount int) int {
	if !(target >= 1) {
		return 0
	}
	return int(math.Floor(math.Min(target, float64(wordCount))))
}

// InjectWord inserts " "+word immediately before the first space found at
// or after a random byte offset in [0, len(text)-10). Texts of ten bytes
// or fewer are searched from offset 0. When no space follows the offset,
// the word is appended. Only ASCII spaces are split on, so multi-byte
// runes stay intact.
func InjectWord(text, word string, rng sampler.Sampler) string {
	start := 0
	if span := len(text) - minInjectLen; span > 0 {
		start = rng.PickIndex(span)
	}

	i := strings.IndexByte(text[start:], ' ')
	if i < 0 {
		return text + " " + word
	}
	return Splice(text, start+i, 0, " "+word)
}

// Splice returns text with removeCount bytes at index replaced by insert.
// index is clamped into [0, len(text)] and the removal stops at the end of
// text.
func Splice(text string, index, removeCount int, insert string) string {
	index = min(max(index, 0), len(text))
	end := min(index+max(removeCount, 0), len(text))
	return text[:index] + insert + text[end:]
}
