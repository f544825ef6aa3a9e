// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a generated article into an HTML page or a Markdown
// document and writes it under a filename derived from the title.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/seo-filler/pkg/types"
)

//go:embed templates/article.html.tmpl
var templateFS embed.FS

var articleTemplate = template.Must(
	template.New("article.html.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/article.html.tmpl"),
)

// page is the data handed to the HTML template.
type page struct {
	*types.Article
	Keywords []string
	Year     int
}

// HTML renders a as a standalone HTML page. keywords fill the keywords
// meta tag; year stamps the footer.
func HTML(w io.Writer, a *types.Article, keywords []string, year int) error {
	if err := articleTemplate.Execute(w, page{Article: a, Keywords: keywords, Year: year}); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

// Markdown renders a with the title as a level-1 heading and each
// subtitle as a level-2 heading.
func Markdown(w io.Writer, a *types.Article) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n", a.Title)
	for _, p := range a.Paragraphs {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", p.Subtitle, p.Content)
	}
	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("writing Markdown: %w", err)
	}
	return nil
}

// Render dispatches on format.
func Render(w io.Writer, format types.OutputFormat, a *types.Article, keywords []string, now time.Time) error {
	switch format {
	case types.OutputHTML:
		return HTML(w, a, keywords, now.Year())
	case types.OutputMarkdown:
		return Markdown(w, a)
	default:
		return fmt.Errorf("%w: unknown output format %q", types.ErrInvalidConfig, format)
	}
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonWord       = regexp.MustCompile(`[^\w\-]+`)
	dashRun       = regexp.MustCompile(`\-\-+`)
)

// Slugify lower-cases s, folds accented letters to their base letter,
// turns whitespace into dashes and drops every other non-word character.
// "L'élève à Paris" becomes "leleve-a-paris".
func Slugify(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		strings.ToLower(s),
	)
	if err != nil {
		folded = strings.ToLower(s)
	}
	slug := whitespaceRun.ReplaceAllString(folded, "-")
	slug = nonWord.ReplaceAllString(slug, "")
	slug = dashRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Filename derives the output file name: the slugified title, else the
// slugified keyword list, else "article".
func Filename(a *types.Article, keywords []string, format types.OutputFormat) string {
	base := Slugify(a.Title)
	if base == "" {
		base = Slugify(strings.Join(keywords, "-"))
	}
	if base == "" {
		base = "article"
	}
	ext := ".html"
	if format == types.OutputMarkdown {
		ext = ".md"
	}
	return base + ext
}

// Write renders a into dir and returns the written path. dir is created
// when missing; an existing file of the same name is replaced.
func Write(dir string, format types.OutputFormat, a *types.Article, keywords []string, now time.Time) (string, error) {
	var b bytes.Buffer
	if err := Render(&b, format, a, keywords, now); err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, Filename(a, keywords, format))
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return path, nil
}
