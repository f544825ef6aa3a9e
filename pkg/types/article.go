// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paragraph is one section of a generated article.
type Paragraph struct {
	// Subtitle is a single capitalized sentence heading the paragraph.
	Subtitle string `json:"subtitle" yaml:"subtitle"`

	// Content holds the body sentences, each terminated by ".", separated
	// by single spaces.
	Content string `json:"content" yaml:"content"`
}

// Article is a generated placeholder article.
type Article struct {
	// Title is taken from GenerationConfig.Title.
	Title string `json:"title" yaml:"title"`

	// Paragraphs lists the article sections in order.
	Paragraphs []Paragraph `json:"paragraphs" yaml:"paragraphs"`
}
