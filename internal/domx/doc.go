// Package domx is a thin, read-only view over a parsed HTML tree,
// built on top of goquery.Selection. Every element gets a stable
// pre-order index stamped on as a scratch attribute at parse time; the
// body-node scorer keys its score accumulator by that index (a flat
// node_index -> (sum, contributors) map), which is what makes
// tie-breaking by "smaller index" well defined and keeps scoring
// output reproducible across runs.
package domx

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	htmlpkg "golang.org/x/net/html"
)

// NodeIndexAttr is the scratch attribute holding a node's stable
// document-order index, stamped once per parse.
const NodeIndexAttr = "data-artex-node-index"

var xmlDeclRe = regexp.MustCompile(`<\?.*?\?>`)

// Document is a parsed HTML tree. The engine only ever reads from it.
type Document struct {
	root *goquery.Document
}

// Parse parses raw HTML bytes into a Document. Non-UTF-8 input is
// lossy-decoded by the underlying HTML tokenizer, matching net/html's
// own behavior; this function does no transcoding of its own.
func Parse(htmlContent string) (*Document, error) {
	if strings.HasPrefix(htmlContent, "<?") {
		htmlContent = xmlDeclRe.ReplaceAllString(htmlContent, "")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	d := &Document{root: doc}
	d.stampIndices()
	return d, nil
}

// stampIndices walks the tree in pre-order and stores a stable index on
// every element so later scoring passes can key off it instead of a
// pointer or a serialized-HTML string.
func (d *Document) stampIndices() {
	next := 0
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Each(func(_ int, s *goquery.Selection) {
			if s.Nodes[0].Type == htmlpkg.ElementNode {
				s.SetAttr(NodeIndexAttr, strconv.Itoa(next))
				next++
			}
			walk(s.Children())
		})
	}
	walk(d.root.Selection)
}

// Root returns the document root selection.
func (d *Document) Root() *goquery.Selection { return d.root.Selection }

// Body returns the <body> selection, or an empty selection if absent.
func (d *Document) Body() *goquery.Selection { return d.root.Find("body").First() }

// HasBody reports whether the document has a <body> element.
func (d *Document) HasBody() bool { return d.Body().Length() > 0 }

// Find runs a CSS selector from the document root.
func (d *Document) Find(selector string) *goquery.Selection { return d.root.Find(selector) }

// NodeIndex returns the stable pre-order index stamped on s, or -1 if
// s carries none (text nodes and the document root are never stamped).
func NodeIndex(s *goquery.Selection) int {
	if s == nil || s.Length() == 0 {
		return -1
	}
	v, ok := s.Attr(NodeIndexAttr)
	if !ok {
		return -1
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return i
}

// Attr returns an attribute by name, case-insensitively. goquery/
// net-html already lower-cases attribute names while parsing, so a
// direct lookup on the lower-cased key is sufficient; this helper
// exists so call sites never have to remember to lower-case themselves.
func Attr(s *goquery.Selection, name string) (string, bool) {
	return s.Attr(strings.ToLower(name))
}

// LdJSON returns every <script type="application/ld+json"> payload
// under node, parsed into generic JSON objects. Arrays are flattened
// into their member objects.
func LdJSON(node *goquery.Selection) []map[string]any {
	var out []map[string]any
	node.Find(`script[type='application/ld+json']`).Each(func(_ int, s *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return
		}
		switch v := data.(type) {
		case []any:
			for _, item := range v {
				if obj, ok := item.(map[string]any); ok {
					out = append(out, obj)
				}
			}
		case map[string]any:
			out = append(out, v)
		}
	})
	return out
}

// OuterHTML renders the first node in s, including its own tag.
func OuterHTML(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	var buf strings.Builder
	if err := htmlpkg.Render(&buf, s.Get(0)); err != nil {
		return ""
	}
	return buf.String()
}
