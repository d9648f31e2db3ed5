// Package textnodes enumerates the DOM nodes eligible to be scored as
// article-body candidates: a pre-order walk restricted to prose-bearing
// tags, pruning whole noise subtrees as it goes.
package textnodes

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvidlabs/artex/internal/noise"
)

var divContentClassRe = regexp.MustCompile(`article|story|paragraph|content|post|entry`)

func isCandidateTag(s *goquery.Selection) bool {
	switch goquery.NodeName(s) {
	case "p", "pre", "td", "article":
		return true
	case "div":
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		return divContentClassRe.MatchString(strings.ToLower(class)) ||
			divContentClassRe.MatchString(strings.ToLower(id))
	}
	return false
}

// Enumerate walks root in pre-order and returns every candidate node,
// in document order. A node whose ancestor chain is rejected by the
// noise classifier has its entire subtree skipped rather than merely
// excluded itself.
func Enumerate(root *goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Each(func(_ int, node *goquery.Selection) {
			if noise.IsRejectedCandidate(node) {
				return
			}
			if isCandidateTag(node) {
				out = append(out, node)
			}
			walk(node.Children())
		})
	}
	walk(root)
	return out
}
