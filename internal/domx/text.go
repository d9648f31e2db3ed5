package domx

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagRe  = regexp.MustCompile(`<[^>]+>`)
	wsRe   = regexp.MustCompile(`\s+`)
	hidden = "script, style, select, option, textarea"
)

// Text returns the concatenated, cleaned text of a node: script/style/
// form-control descendants are dropped, HTML entities are unescaped,
// any literal tag text is blanked, and whitespace is collapsed.
func Text(s *goquery.Selection) string {
	cloned := s.Clone()
	cloned.Find(hidden).Remove()
	text := cloned.Text()
	text = html.UnescapeString(text)
	text = tagRe.ReplaceAllString(text, " ")
	return InnerTrim(text)
}

// InnerTrim collapses runs of whitespace to a single space and trims
// the ends.
func InnerTrim(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}
