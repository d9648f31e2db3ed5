// Package articletext turns a selected body node into the cleaned
// article prose: paragraph collection, promotional-footer filtering,
// and whitespace/code-line post-processing.
package articletext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/internal/noise"
)

// Extract walks every descendant <p> of node in document order and
// joins the surviving paragraph texts with a single space.
func Extract(node *goquery.Selection) string {
	var paragraphs []string

	node.Find("p").Each(func(_ int, p *goquery.Selection) {
		if noise.IsNoise(p) {
			return
		}
		if isPromotionalFooter(p) {
			return
		}
		text := strings.TrimSpace(domx.Text(p))
		if text == "" || noise.IsNoiseText(text) {
			return
		}
		paragraphs = append(paragraphs, text)
	})

	joined := strings.Join(paragraphs, " ")
	return postProcess(joined)
}

// isPromotionalFooter matches a paragraph whose only anchors carry
// rel=nofollow — sponsor/ad callouts rather than article prose.
func isPromotionalFooter(p *goquery.Selection) bool {
	links := p.Find("a")
	if links.Length() == 0 {
		return false
	}
	allNofollow := true
	links.Each(func(_ int, a *goquery.Selection) {
		rel, _ := a.Attr("rel")
		if !strings.Contains(strings.ToLower(rel), "nofollow") {
			allNofollow = false
		}
	})
	return allNofollow
}

// postProcess replaces non-breaking spaces, then drops blank,
// code-like, and low-alpha lines.
func postProcess(text string) string {
	text = strings.ReplaceAll(text, " ", " ")

	lines := strings.Split(text, "\n")
	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if noise.IsCodeLikeLine(line) {
			continue
		}
		if noise.IsLowAlpha(line) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, " ")
}
