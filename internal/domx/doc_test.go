package domx

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestParseStampsStableIncreasingIndices(t *testing.T) {
	doc, err := Parse(`<html><body><p>one</p><p>two</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}

	var indices []int
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		indices = append(indices, NodeIndex(s))
	})
	if len(indices) != 2 {
		t.Fatalf("expected 2 stamped <p> nodes, got %d", len(indices))
	}
	if indices[0] < 0 || indices[1] < 0 || indices[0] >= indices[1] {
		t.Fatalf("expected increasing pre-order indices, got %v", indices)
	}
}

func TestBody(t *testing.T) {
	doc, err := Parse(`<html><body><p>hi</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if !doc.HasBody() {
		t.Fatal("expected HasBody true")
	}
	if doc.Body().Find("p").Length() != 1 {
		t.Fatal("expected one <p> in body")
	}
}

func TestNoBody(t *testing.T) {
	doc, err := Parse(`not html at all`)
	if err != nil {
		t.Fatal(err)
	}
	// net/html still wraps bare text in an implicit html/body.
	if !doc.HasBody() {
		t.Fatal("expected implicit body to be synthesized")
	}
}

func TestAttrCaseInsensitive(t *testing.T) {
	doc, err := Parse(`<html><body><div ITEMPROP="articleBody">x</div></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := Attr(doc.Find("div").First(), "itemprop")
	if !ok || v != "articleBody" {
		t.Fatalf("Attr case-insensitive lookup failed: got %q, %v", v, ok)
	}
}

func TestLdJSON(t *testing.T) {
	html := `<html><body><script type="application/ld+json">{"@type":"NewsArticle","datePublished":"2024-01-01"}</script></body></html>`
	doc, err := Parse(html)
	if err != nil {
		t.Fatal(err)
	}
	objs := LdJSON(doc.Root())
	if len(objs) != 1 {
		t.Fatalf("expected 1 ld+json object, got %d", len(objs))
	}
	if objs[0]["@type"] != "NewsArticle" {
		t.Fatalf("unexpected object: %v", objs[0])
	}
}

func TestOuterHTML(t *testing.T) {
	doc, err := Parse(`<html><body><p class="x">hi</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	out := OuterHTML(doc.Find("p").First())
	if !strings.Contains(out, `class="x"`) || !strings.Contains(out, "hi") {
		t.Fatalf("unexpected outer html: %q", out)
	}
}
