// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"strings"

	"github.com/pdiddy/seo-filler/pkg/types"
)

// complexOdds is the denominator of the chance that a body sentence is
// complex: one draw in three.
const complexOdds = 3

// Paragraph builds a capitalized subtitle and a body of length sentences,
// each followed by ". ". The final trailing space is dropped, so a
// non-empty body ends with ".". A length of zero yields an empty body.
func (g *Generator) Paragraph(length int) (types.Paragraph, error) {
	subtitle, err := g.Basic(true)
	if err != nil {
		return types.Paragraph{}, err
	}

	var b strings.Builder
	for range length {
		var sentence string
		if g.rng.PickIndex(complexOdds) == 1 {
			sentence, err = g.Complex()
		} else {
			sentence, err = g.Basic(true)
		}
		if err != nil {
			return types.Paragraph{}, err
		}
		b.WriteString(sentence)
		b.WriteString(". ")
	}

	return types.Paragraph{
		Subtitle: subtitle,
		Content:  trimLastByte(b.String()),
	}, nil
}

// trimLastByte removes exactly one trailing byte. It is only ever applied
// to text ending in an ASCII space.
func trimLastByte(s string) string {
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}
