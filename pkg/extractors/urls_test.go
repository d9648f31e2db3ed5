package extractors

import (
	"reflect"
	"testing"
)

func TestCanonicalLinkPrefersLinkTagOverOgURL(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<link rel="canonical" href="/articles/1">
		<meta property="og:url" content="https://example.com/other">
	</head><body></body></html>`)

	got, ok := CanonicalLink(doc, "https://example.com")
	if !ok || got != "https://example.com/articles/1" {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestCanonicalLinkFallsBackToOgURL(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta property="og:url" content="https://example.com/articles/2">
	</head><body></body></html>`)

	got, ok := CanonicalLink(doc, "")
	if !ok || got != "https://example.com/articles/2" {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestBaseURLDeclaredInDocument(t *testing.T) {
	doc := parseDoc(t, `<html><head><base href="https://example.com/"></head><body></body></html>`)
	got, ok := BaseURL(doc)
	if !ok || got != "https://example.com/" {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestBaseURLAbsent(t *testing.T) {
	doc := parseDoc(t, `<html><body></body></html>`)
	if _, ok := BaseURL(doc); ok {
		t.Error("expected no base URL")
	}
}

func TestAllURLsDedupesInOrder(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<a href="/a">A</a>
		<a href="/b">B</a>
		<a href="/a">A again</a>
	</body></html>`)
	got := AllURLs(doc)
	want := []string{"/a", "/b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReferencesExcludesNoise(t *testing.T) {
	doc := parseDoc(t, `<html><body><div id="article">
		<p><a href="/story">story link</a></p>
		<div class="sidebar-widget"><a href="/menu">menu link</a></div>
	</div></body></html>`)
	articleNode := doc.Find("#article")
	got := References(articleNode, "https://example.com")
	want := []string{"https://example.com/story"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReferencesNilNode(t *testing.T) {
	if got := References(nil, ""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
