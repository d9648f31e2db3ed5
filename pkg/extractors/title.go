package extractors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/pkg/constants"
)

var wsRunRe = regexp.MustCompile(`\s+`)

// Title runs the title extractor's attempt order: meta keys, longest
// multi-word <h1>, the <title> tag, then tie-breaks between whichever
// of those came back non-empty.
func Title(doc *domx.Document) string {
	meta := titleFromMeta(doc)
	h1 := titleFromH1(doc)
	titleTag := postProcessTitle(domx.Text(doc.Find("title").First()))

	switch {
	case titleTag != "" && h1 != "" && h1 == titleTag:
		return h1
	case h1 != "" && meta != "" && alnumLower(h1) == alnumLower(meta):
		return h1
	case h1 != "" && meta != "" && titleTag != "" &&
		strings.Contains(alnumLower(titleTag), alnumLower(h1)) &&
		strings.Contains(alnumLower(titleTag), alnumLower(meta)) &&
		len(h1) > len(meta):
		return h1
	case meta != "" && titleTag != "" && strings.HasPrefix(alnumLower(titleTag), alnumLower(meta)) && meta != titleTag:
		return meta
	case titleTag != "":
		return splitOnDelimiter(titleTag, h1)
	case meta != "":
		return meta
	case h1 != "":
		return h1
	default:
		return ""
	}
}

// titleFromMeta walks the meta-key table in its declared order,
// checking property before name within each key; the first non-empty
// result wins. The property-before-name, key-order-as-written
// behavior is preserved exactly rather than re-ranked by how common a
// given key is in practice.
func titleFromMeta(doc *domx.Document) string {
	for _, key := range constants.TitleMetaKeys {
		if v := metaContent(doc, "property", key); v != "" {
			return postProcessTitle(v)
		}
		if v := metaContent(doc, "name", key); v != "" {
			return postProcessTitle(v)
		}
	}
	return ""
}

func metaContent(doc *domx.Document, attr, value string) string {
	sel := doc.Find("meta[" + attr + "='" + value + "']").First()
	v, _ := sel.Attr("content")
	return strings.TrimSpace(v)
}

func titleFromH1(doc *domx.Document) string {
	best := ""
	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		text := domx.InnerTrim(domx.Text(s))
		if len(strings.Fields(text)) <= 2 {
			return
		}
		if len(text) > len(best) {
			best = text
		}
	})
	return best
}

// splitOnDelimiter handles the final fallback: split the title tag on
// the first present delimiter, and prefer the piece containing h1.
func splitOnDelimiter(titleTag, h1 string) string {
	delims := []string{"|", "-", "_", "/", " » "}
	var delim string
	for _, d := range delims {
		if strings.Contains(titleTag, d) {
			delim = d
			break
		}
	}
	if delim == "" {
		return titleTag
	}

	pieces := strings.Split(titleTag, delim)
	if h1 != "" {
		for _, p := range pieces {
			p = strings.TrimSpace(p)
			if strings.Contains(alnumLower(p), alnumLower(h1)) {
				return p
			}
		}
	}

	longest := ""
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if len(p) > len(longest) {
			longest = p
		}
	}
	return longest
}

func postProcessTitle(s string) string {
	s = strings.ReplaceAll(s, "&#65533;", "")
	s = strings.ReplaceAll(s, "&raquo;", "»")
	return strings.TrimSpace(wsRunRe.ReplaceAllString(s, " "))
}

func alnumLower(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
