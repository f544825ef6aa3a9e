// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import "strings"

// Pattern is the word-class skeleton of a sentence: one grammar tag per
// word, in order.
type Pattern []string

// String renders the pattern as space-separated tags.
func (p Pattern) String() string {
	return strings.Join(p, " ")
}

// Lexique 3 grammar tags used by the pattern catalog.
const (
	TagPersonalPronoun     = "PRO:per"
	TagPossessivePronoun   = "PRO:pos"
	TagVerb                = "VER"
	TagAuxiliary           = "AUX"
	TagNoun                = "NOM"
	TagAdjective           = "ADJ"
	TagIndefiniteAdjective = "ADJ:ind"
	TagAdverb              = "ADV"
	TagPreposition         = "PRE"
	TagDefiniteArticle     = "ART:def"
	TagIndefiniteArticle   = "ART:ind"
)

// Patterns is the sentence catalog. Every generated sentence follows one
// of these, chosen uniformly.
var Patterns = []Pattern{
	{TagPersonalPronoun, TagVerb, TagIndefiniteArticle, TagNoun, TagAdverb, TagAuxiliary, TagAdjective},
	{TagPersonalPronoun, TagVerb, TagDefiniteArticle, TagNoun, TagAdverb, TagAuxiliary, TagAdjective},
	{TagPreposition, TagDefiniteArticle, TagVerb, TagAdverb, TagIndefiniteAdjective, TagNoun},
	{TagPersonalPronoun, TagVerb, TagPossessivePronoun, TagNoun},
}

// RequiredTags returns every tag referenced by patterns, in first-seen
// order without repeats.
func RequiredTags(patterns []Pattern) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		for _, tag := range p {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
