package extractors

import (
	"regexp"
	"strings"

	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/internal/lang"
	"github.com/corvidlabs/artex/internal/urls"
)

var langCodeRe = regexp.MustCompile(`^[a-zA-Z]{2}$`)

// MetaLanguage resolves the document's declared language: <html lang>
// first, then <meta http-equiv="Content-Language">, then
// <meta name="lang">. A value outside the closed enumeration is kept
// as Unknown(raw) and only returned if nothing better is found.
func MetaLanguage(doc *domx.Document) lang.Language {
	var fallback lang.Language
	haveFallback := false

	consider := func(raw string) (lang.Language, bool) {
		raw = strings.TrimSpace(raw)
		if len(raw) < 2 || !langCodeRe.MatchString(raw[:2]) {
			return lang.Language{}, false
		}
		l := lang.FromCode(raw[:2])
		return l, true
	}

	if v, ok := doc.Find("html").First().Attr("lang"); ok {
		if l, ok := consider(v); ok {
			if !l.IsUnknown() {
				return l
			}
			fallback, haveFallback = l, true
		}
	}

	for _, sel := range []string{
		`meta[http-equiv="Content-Language"]`,
		`meta[name="lang"]`,
	} {
		content, ok := doc.Find(sel).First().Attr("content")
		if !ok {
			continue
		}
		if l, ok := consider(content); ok {
			if !l.IsUnknown() {
				return l
			}
			if !haveFallback {
				fallback, haveFallback = l, true
			}
		}
	}

	if haveFallback {
		return fallback
	}
	return lang.Unknown
}

// MetaDescription returns the document's description, from
// <meta name="description"> or <meta property="og:description">.
func MetaDescription(doc *domx.Document) (string, bool) {
	for _, sel := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if v, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// MetaKeywords splits the comma-separated <meta name="keywords">
// content into trimmed, non-empty terms.
func MetaKeywords(doc *domx.Document) []string {
	v, ok := doc.Find(`meta[name="keywords"]`).First().Attr("content")
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	var out []string
	for _, k := range strings.Split(v, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// Favicon returns the first <link rel="icon"> href, resolved against
// base.
func Favicon(doc *domx.Document, base string) (string, bool) {
	for _, rel := range []string{"icon", "shortcut icon"} {
		href, ok := doc.Find(`link[rel="` + rel + `"]`).First().Attr("href")
		if ok && strings.TrimSpace(href) != "" {
			return urls.Resolve(strings.TrimSpace(href), base), true
		}
	}
	return "", false
}
