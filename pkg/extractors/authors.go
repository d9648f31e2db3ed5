package extractors

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/pkg/constants"
)

var bylineSeparators = []string{"·", ",", "|", "/", " "}

// Authors walks every element's attributes looking for an author
// marker, splits whatever text it finds on byline separators, and
// returns a deduplicated, sorted author list.
func Authors(doc *domx.Document) []string {
	var found []string

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		if !hasAuthorMarker(s) {
			return
		}
		raw := authorSourceText(s)
		found = append(found, splitByline(raw)...)
	})

	return dedupeSorted(found)
}

func hasAuthorMarker(s *goquery.Selection) bool {
	for _, name := range constants.AuthorAttrNames {
		val, ok := domx.Attr(s, name)
		if !ok {
			continue
		}
		val = strings.ToLower(val)
		for _, want := range constants.AuthorAttrValues {
			if val == want || strings.Contains(val, want) {
				return true
			}
		}
	}
	return false
}

func authorSourceText(s *goquery.Selection) string {
	if goquery.NodeName(s) == "meta" {
		v, _ := s.Attr("content")
		return v
	}
	return domx.Text(s)
}

func splitByline(raw string) []string {
	raw = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(raw)

	tokens := []string{raw}
	for _, sep := range bylineSeparators {
		var next []string
		for _, t := range tokens {
			next = append(next, strings.Split(t, sep)...)
		}
		tokens = next
	}

	var authors []string
	for _, tok := range tokens {
		if a, ok := cleanAuthorToken(tok); ok {
			authors = append(authors, a)
		}
	}
	return authors
}

func cleanAuthorToken(tok string) (string, bool) {
	tok = strings.TrimSpace(tok)
	if strings.ContainsAny(tok, "<>") {
		return "", false
	}
	if strings.ContainsAny(tok, "0123456789") {
		return "", false
	}

	words := strings.Fields(tok)
	if len(words) < 2 || len(words) > 4 {
		return "", false
	}
	if len(words) > 2 {
		words = words[:2]
	}
	tok = strings.Join(words, " ")

	for _, stop := range constants.AuthorStopWords {
		tok = strings.TrimSpace(strings.TrimPrefix(tok, stop))
	}
	if tok == "" {
		return "", false
	}

	tok = stripTags(tok)
	tok = strings.Trim(tok, ". ,-/")
	if tok == "" {
		return "", false
	}

	if len(strings.Fields(tok)) < 2 {
		return "", false
	}
	return tok, true
}

func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func dedupeSorted(authors []string) []string {
	seen := map[string]string{}
	for _, a := range authors {
		key := strings.ToLower(a)
		if _, ok := seen[key]; !ok {
			seen[key] = a
		}
	}
	out := make([]string, 0, len(seen))
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}
