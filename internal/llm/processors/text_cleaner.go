// Package processors contains pre-prompt content preprocessing.
package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TextCleaner normalizes ingested resume text before it is embedded in a
// prompt. Some PDF/DOCX converters emit HTML fragments or heavy
// whitespace; both inflate token counts and confuse extraction.
type TextCleaner struct {
	removeTags []string
}

// NewTextCleaner creates a text cleaner instance.
func NewTextCleaner() *TextCleaner {
	return &TextCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"svg", "meta", "link", "title", "head",
		},
	}
}

var (
	htmlTagPattern     = regexp.MustCompile(`(?i)<\s*(html|body|div|p|br|span|table|ul|ol|li|h[1-6])\b`)
	multiBlankPattern  = regexp.MustCompile(`\n{3,}`)
	trailingWSPattern  = regexp.MustCompile(`[ \t]+\n`)
	repeatSpacePattern = regexp.MustCompile(`[ \t]{2,}`)
)

// Clean returns plain, whitespace-normalized text. Markup is stripped
// only when the input actually looks like HTML, so bullet characters and
// angle brackets in genuine prose survive untouched.
func (tc *TextCleaner) Clean(text string) string {
	if htmlTagPattern.MatchString(text) {
		if stripped, err := tc.stripMarkup(text); err == nil {
			text = stripped
		}
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = trailingWSPattern.ReplaceAllString(text, "\n")
	text = repeatSpacePattern.ReplaceAllString(text, " ")
	text = multiBlankPattern.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// stripMarkup parses the input as HTML and returns its text content with
// block boundaries preserved as newlines.
func (tc *TextCleaner) stripMarkup(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	for _, tag := range tc.removeTags {
		doc.Find(tag).Remove()
	}

	// Force line breaks at block-level boundaries before flattening.
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})
	doc.Find("p, div, li, tr, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return doc.Text(), nil
}
