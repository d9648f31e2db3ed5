// Package noise implements the structural noise classifier and the
// text-level heuristics (noise-text, code-like-line, low-alpha) that gate which
// DOM nodes and paragraph strings are allowed to reach the content
// scorer.
//
// The classifier is a pure predicate rather than a DOM-mutating
// cleaner: it only answers "is this noise", which lets the scorer and
// text extractor run as pure functions over an unmodified Document
// instead of requiring a destructive pre-pass first.
package noise

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var primaryTags = map[string]bool{
	"script": true, "style": true, "link": true, "meta": true,
	"noscript": true, "figcaption": true, "figure": true,
}

var primaryClassSubstrings = []string{
	"articlebottom", "article-bottom", "footer", "sidebar", "widget",
	"related-", "recommendation",
}

var secondaryTags = map[string]bool{
	"aside": true, "nav": true, "footer": true, "header": true, "media": true,
}

var secondaryClassTokens = map[string]bool{
	"advertisement": true, "ad": true, "sidebar": true, "navigation": true,
	"comments": true, "caption": true,
}

// nonContentAttr maps an attribute name to the set of values that
// disqualify a node (nil value set means "any presence of the
// attribute disqualifies").
var nonContentAttr = []struct {
	attr   string
	values []string // lower-cased; nil/empty means "presence alone matches"
}{
	{"class", []string{"sidebar", "navigation", "nav", "menu", "footer", "header", "advertisement", "ad", "comments", "widget"}},
	{"data-image-caption", nil},
	{"role", []string{"navigation", "complementary"}},
	{"data-role", []string{"sidebar"}},
}

func hasClassSubstring(s *goquery.Selection, substrings []string) bool {
	class, ok := s.Attr("class")
	if !ok {
		return false
	}
	class = strings.ToLower(class)
	for _, sub := range substrings {
		if strings.Contains(class, sub) {
			return true
		}
	}
	return false
}

func hasClassToken(s *goquery.Selection, tokens map[string]bool) bool {
	class, ok := s.Attr("class")
	if !ok {
		return false
	}
	for _, tok := range strings.Fields(strings.ToLower(class)) {
		if tokens[tok] {
			return true
		}
	}
	return false
}

// matchesPrimary reports whether s itself (not its ancestors) matches
// one of the primary noise selectors.
func matchesPrimary(s *goquery.Selection) bool {
	tag := goquery.NodeName(s)
	if primaryTags[tag] {
		return true
	}
	if _, ok := s.Attr("data-image-caption"); ok {
		return true
	}
	if _, ok := s.Attr("data-creative"); ok {
		return true
	}
	if hasClassSubstring(s, primaryClassSubstrings) {
		return true
	}
	if tag == "img" {
		style, ok := s.Attr("style")
		if ok {
			style = strings.ToLower(style)
			if strings.Contains(style, "display: none") || strings.Contains(style, "display:none") ||
				strings.Contains(style, "visibility: hidden") || strings.Contains(style, "visibility:hidden") {
				return true
			}
			hasAbsolute := strings.Contains(style, "position: absolute") || strings.Contains(style, "position:absolute")
			hasOffscreen := strings.Contains(style, "left: -9999px") || strings.Contains(style, "left:-9999px")
			if hasAbsolute && hasOffscreen {
				return true
			}
		}
	}
	return false
}

// matchesSecondary reports whether s itself matches one of the
// enumerator's additional negative selectors.
func matchesSecondary(s *goquery.Selection) bool {
	tag := goquery.NodeName(s)
	if secondaryTags[tag] {
		return true
	}
	if hasClassToken(s, secondaryClassTokens) {
		return true
	}
	for _, nc := range nonContentAttr {
		val, ok := s.Attr(nc.attr)
		if !ok {
			continue
		}
		if len(nc.values) == 0 {
			return true
		}
		val = strings.ToLower(val)
		for _, tok := range strings.Fields(val) {
			for _, want := range nc.values {
				if tok == want {
					return true
				}
			}
		}
		// role/data-role style attrs hold a single value, not a class list
		for _, want := range nc.values {
			if val == want {
				return true
			}
		}
	}
	return false
}

// IsNoise reports whether the node or any ancestor matches one of the
// primary selectors. The ancestor walk is mandatory so a legitimate
// <p> nested in a widget div is still suppressed.
func IsNoise(s *goquery.Selection) bool {
	cur := s
	for cur.Length() > 0 {
		if matchesPrimary(cur) {
			return true
		}
		cur = cur.Parent()
	}
	return false
}

// IsRejectedCandidate runs the text-node enumerator's full rejection
// test: primary noise selectors OR the secondary negative selectors OR
// nonContentAttr, walked up the ancestor chain.
func IsRejectedCandidate(s *goquery.Selection) bool {
	cur := s
	for cur.Length() > 0 {
		if matchesPrimary(cur) || matchesSecondary(cur) {
			return true
		}
		cur = cur.Parent()
	}
	return false
}
