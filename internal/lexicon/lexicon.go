// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon loads the tagged word list that sentence generation draws
// from. The list comes from a raw tabular source (the Lexique 3 database
// or any table with a spelling and a grammar column) and is cached in a
// pre-parsed form so later runs skip the spreadsheet parse.
package lexicon

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Lexicon maps a grammar tag (e.g. "NOM", "VER", "ART:def") to its words
// in source order. Duplicates are kept. A Lexicon is read-only once built.
type Lexicon map[string][]string

// Words returns the words recorded for tag, or nil.
func (l Lexicon) Words(tag string) []string {
	return l[tag]
}

// Tags returns every tag present, sorted.
func (l Lexicon) Tags() []string {
	tags := make([]string, 0, len(l))
	for t := range l {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Size returns the total number of words across all tags.
func (l Lexicon) Size() int {
	n := 0
	for _, words := range l {
		n += len(words)
	}
	return n
}

// Missing returns the tags from want that have no words, in first-seen
// order and without repeats.
func (l Lexicon) Missing(want []string) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, tag := range want {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		if len(l[tag]) == 0 {
			missing = append(missing, tag)
		}
	}
	return missing
}

// Columns identifies the two columns of the raw table that matter.
type Columns struct {
	Spelling int
	Grammar  int
}

// DefaultColumns matches the Lexique 3 layout: ortho in column 0, cgram
// in column 3.
var DefaultColumns = Columns{Spelling: 0, Grammar: 3}

// Build groups the spellings of rows by grammar tag. Row 0 is a header and
// is dropped. Rows too short to hold both columns, with an empty spelling
// or tag, or with either cell not valid UTF-8, are skipped. Tags with no
// rows do not appear.
func Build(rows [][]string, cols Columns) Lexicon {
	lex := make(Lexicon)
	if len(rows) == 0 {
		return lex
	}
	for _, row := range rows[1:] {
		if cols.Spelling >= len(row) || cols.Grammar >= len(row) {
			continue
		}
		spelling, tag := row[cols.Spelling], row[cols.Grammar]
		if spelling == "" || tag == "" {
			continue
		}
		if !utf8.ValidString(spelling) || !utf8.ValidString(tag) {
			continue
		}
		lex[tag] = append(lex[tag], spelling)
	}
	return lex
}

// normalized returns lex without its empty tags, or an error when a tag or
// word is not valid UTF-8. Every cache codec saves the normalized form so
// that all of them load back the same lexicon.
func normalized(lex Lexicon) (Lexicon, error) {
	out := make(Lexicon, len(lex))
	for tag, words := range lex {
		if len(words) == 0 {
			continue
		}
		if !utf8.ValidString(tag) {
			return nil, fmt.Errorf("tag %q is not valid UTF-8", tag)
		}
		for _, w := range words {
			if !utf8.ValidString(w) {
				return nil, fmt.Errorf("word %q under %s is not valid UTF-8", w, tag)
			}
		}
		out[tag] = words
	}
	return out, nil
}
