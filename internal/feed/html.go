package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespace = regexp.MustCompile(`\s+`)

// noiseTags never contribute readable text to a job description
var noiseTags = []string{"script", "style", "noscript", "iframe", "svg", "object", "embed"}

// StripHTML returns the visible text of an HTML fragment with runs of
// whitespace collapsed to single spaces
func StripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapse(html)
	}

	for _, tag := range noiseTags {
		doc.Find(tag).Remove()
	}

	// keep block boundaries from gluing words together
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
