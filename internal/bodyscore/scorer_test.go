package bodyscore

import (
	"strings"
	"testing"

	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/internal/lang"
)

func mustParse(t *testing.T, html string) *domx.Document {
	t.Helper()
	doc, err := domx.Parse(html)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestScoreFastPathItemprop(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<div><p>some unrelated chatter</p></div>
		<div itemprop="articleBody"><p>The body text lives right here in this element.</p></div>
	</body></html>`)

	result, ok := Score(doc, lang.English)
	if !ok {
		t.Fatal("expected a result")
	}
	if result.Confidence != 0.95 {
		t.Errorf("expected fast-path confidence 0.95, got %v", result.Confidence)
	}
	if !strings.Contains(result.Node.Text(), "body text lives right here") {
		t.Errorf("unexpected node text: %q", result.Node.Text())
	}
}

func TestScoreFastPathUniqueBodyAttrSelector(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<div class="entry-content"><p>This is the article body paragraph with enough words in it.</p></div>
	</body></html>`)

	result, ok := Score(doc, lang.English)
	if !ok {
		t.Fatal("expected a result")
	}
	if result.Confidence != 1.0 {
		t.Errorf("expected fast-path confidence 1.0, got %v", result.Confidence)
	}
}

func TestScoreNoBody(t *testing.T) {
	doc := mustParse(t, `<html></html>`)
	// net/html always synthesizes an (empty) <body>, so this really
	// tests the empty-body path rather than a literally missing one.
	if _, ok := Score(doc, lang.English); ok {
		t.Error("expected no result for an empty body")
	}
}

func TestScoreFallsBackToContentScoring(t *testing.T) {
	longParagraph := strings.Repeat("This is a real sentence about the news story today. ", 10)
	doc := mustParse(t, `<html><body>
		<nav><a href="/a">A</a><a href="/b">B</a></nav>
		<div class="content-wrapper">
			<p>`+longParagraph+`</p>
			<p>`+longParagraph+`</p>
		</div>
	</body></html>`)

	result, ok := Score(doc, lang.English)
	if !ok {
		t.Fatal("expected scoring path to find a candidate")
	}
	if result.Confidence <= 0 {
		t.Errorf("expected positive confidence, got %v", result.Confidence)
	}
}
