package extractors

import (
	"testing"

	"github.com/corvidlabs/artex/internal/domx"
)

func parseDoc(t *testing.T, html string) *domx.Document {
	t.Helper()
	doc, err := domx.Parse(html)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestTitlePrefersOgMetaOverBareTitleTag(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta property="og:title" content="Great Flood Hits Capital">
		<title>Great Flood Hits Capital | Daily News</title>
	</head><body><h1>Great Flood Hits Capital</h1></body></html>`)

	got := Title(doc)
	if got != "Great Flood Hits Capital" {
		t.Errorf("got %q", got)
	}
}

// TitleMetaKeys checks "dc.title" ahead of "og:title" by fixed literal
// order, not by presumed real-world frequency; kept as the teacher orders
// it rather than re-sorted.
func TestTitlePrefersDcTitleOverOgTitleByFixedOrder(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta name="dc.title" content="Council Session Minutes">
		<meta property="og:title" content="Evening Recap: Council Session">
	</head><body></body></html>`)

	got := Title(doc)
	if got != "Council Session Minutes" {
		t.Errorf("got %q", got)
	}
}

func TestTitleSplitsOnDelimiterWhenNoMetaOrH1Match(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Breaking Story Today | Daily News</title></head><body></body></html>`)
	got := Title(doc)
	if got != "Breaking Story Today" {
		t.Errorf("got %q", got)
	}
}

func TestTitleFallsBackToH1(t *testing.T) {
	doc := parseDoc(t, `<html><body><h1>A Long Enough Headline Here</h1></body></html>`)
	got := Title(doc)
	if got != "A Long Enough Headline Here" {
		t.Errorf("got %q", got)
	}
}

func TestTitleH1RequiresMoreThanTwoWords(t *testing.T) {
	doc := parseDoc(t, `<html><body><h1>Home Page</h1></body></html>`)
	got := Title(doc)
	if got != "" {
		t.Errorf("expected no title from a two-word h1, got %q", got)
	}
}

func TestTitleNoSourcesReturnsEmpty(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>no title anywhere</p></body></html>`)
	if got := Title(doc); got != "" {
		t.Errorf("expected empty title, got %q", got)
	}
}
