package noise

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func selection(t *testing.T, html, sel string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc.Find(sel).First()
}

func TestIsNoiseScriptAndStyle(t *testing.T) {
	for _, tag := range []string{"script", "style", "noscript"} {
		s := selection(t, "<html><body><"+tag+">x</"+tag+"></body></html>", tag)
		if !IsNoise(s) {
			t.Errorf("expected %s to be noise", tag)
		}
	}
}

func TestIsNoiseClassSubstring(t *testing.T) {
	s := selection(t, `<html><body><div class="article-sidebar">x</div></body></html>`, "div")
	if !IsNoise(s) {
		t.Fatal("expected sidebar class to be flagged as noise")
	}
}

func TestIsNoiseAncestor(t *testing.T) {
	s := selection(t, `<html><body><footer class="article-bottom"><p>x</p></footer></body></html>`, "p")
	if !IsNoise(s) {
		t.Fatal("expected <p> under a noise ancestor to be flagged")
	}
}

func TestIsNoiseOrdinaryParagraph(t *testing.T) {
	s := selection(t, `<html><body><article><p>Some real article text here.</p></article></body></html>`, "p")
	if IsNoise(s) {
		t.Fatal("ordinary paragraph should not be flagged as noise")
	}
}

func TestIsRejectedCandidateSecondaryTags(t *testing.T) {
	s := selection(t, `<html><body><nav><p>x</p></nav></body></html>`, "p")
	if !IsRejectedCandidate(s) {
		t.Fatal("expected <p> under <nav> to be rejected")
	}
}

func TestIsRejectedCandidateNonContentAttr(t *testing.T) {
	s := selection(t, `<html><body><div role="navigation"><p>x</p></div></body></html>`, "p")
	if !IsRejectedCandidate(s) {
		t.Fatal("expected role=navigation ancestor to reject candidate")
	}
}
