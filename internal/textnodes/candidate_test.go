package textnodes

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestEnumeratePicksParagraphsAndContentDivs(t *testing.T) {
	html := `<html><body>
		<nav><p>nav paragraph, should be pruned</p></nav>
		<div class="article-content"><p>real paragraph one</p></div>
		<div class="sidebar-widget"><p>sidebar paragraph</p></div>
		<article><p>another real paragraph</p></article>
	</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	nodes := Enumerate(doc.Find("body"))

	var texts []string
	for _, n := range nodes {
		texts = append(texts, strings.TrimSpace(n.Text()))
	}

	for _, want := range []string{"real paragraph one", "another real paragraph"} {
		found := false
		for _, got := range texts {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected candidate %q among %v", want, texts)
		}
	}
	for _, unwanted := range []string{"nav paragraph, should be pruned", "sidebar paragraph"} {
		for _, got := range texts {
			if got == unwanted {
				t.Errorf("did not expect noise-pruned text %q among candidates", unwanted)
			}
		}
	}
}

func TestIsCandidateTagDivRequiresContentClass(t *testing.T) {
	html := `<html><body><div class="random">x</div><div id="story-body">y</div></body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	plain := doc.Find(`div.random`).First()
	story := doc.Find(`div#story-body`).First()
	if isCandidateTag(plain) {
		t.Error("div with unrelated class should not be a candidate")
	}
	if !isCandidateTag(story) {
		t.Error("div with id matching story should be a candidate")
	}
}
