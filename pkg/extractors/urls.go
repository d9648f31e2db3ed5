package extractors

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/internal/noise"
	"github.com/corvidlabs/artex/internal/urls"
)

// CanonicalLink returns the document's canonical URL: the first
// <link rel="canonical"> href, else <meta property="og:url">,
// resolved against base.
func CanonicalLink(doc *domx.Document, base string) (string, bool) {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return urls.Resolve(strings.TrimSpace(href), base), true
	}
	if content, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok && strings.TrimSpace(content) != "" {
		return urls.Resolve(strings.TrimSpace(content), base), true
	}
	return "", false
}

// BaseURL returns the document's own declared <base href>, unresolved
// (there is nothing further to resolve it against).
func BaseURL(doc *domx.Document) (string, bool) {
	href, ok := doc.Find("base[href]").First().Attr("href")
	href = strings.TrimSpace(href)
	return href, ok && href != ""
}

// AllURLs returns every distinct, trimmed <a href> in the document, in
// first-seen order.
func AllURLs(doc *domx.Document) []string {
	seen := map[string]bool{}
	var out []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || seen[href] {
			return
		}
		seen[href] = true
		out = append(out, href)
	})
	return out
}

// References returns the deduplicated, resolved hrefs of every <a>
// under the article node, excluding noise subtrees.
func References(articleNode *goquery.Selection, base string) []string {
	if articleNode == nil || articleNode.Length() == 0 {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	articleNode.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if noise.IsNoise(s) {
			return
		}
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		resolved := urls.Resolve(href, base)
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		out = append(out, resolved)
	})
	return out
}
