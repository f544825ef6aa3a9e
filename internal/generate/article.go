// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"

	"github.com/pdiddy/seo-filler/internal/keyword"
	"github.com/pdiddy/seo-filler/pkg/types"
)

// Assemble validates cfg, generates cfg.NumberOfParagraph paragraphs of
// cfg.ParagraphLength sentences and distributes cfg.Keywords through
// them. The returned article is owned by the caller.
func (g *Generator) Assemble(cfg types.GenerationConfig) (*types.Article, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	article := &types.Article{
		Title:      cfg.Title,
		Paragraphs: make([]types.Paragraph, 0, cfg.NumberOfParagraph),
	}
	for i := range cfg.NumberOfParagraph {
		p, err := g.Paragraph(cfg.ParagraphLength)
		if err != nil {
			return nil, fmt.Errorf("generating paragraph %d: %w", i+1, err)
		}
		article.Paragraphs = append(article.Paragraphs, p)
	}

	res := keyword.Inject(article, cfg.Keywords, cfg.PercentOfKeywords, g.rng)
	g.logger.Info("generate: article assembled",
		"title", cfg.Title,
		"paragraphs", len(article.Paragraphs),
		"words", res.WordCount,
		"keyword_target", res.Target,
		"keywords_inserted", res.Inserted,
	)

	return article, nil
}
