package extractors

import "testing"

func TestPublishDatePrefersJSONLDOverMeta(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta name="pubdate" content="2020-01-01">
		<script type="application/ld+json">
		{"@type": "NewsArticle", "datePublished": "2023-06-15T10:00:00Z"}
		</script>
	</head><body></body></html>`)

	got, source, ok := PublishDate(doc, "")
	if !ok {
		t.Fatal("expected a publish date")
	}
	if source != DateSourceJSONLD {
		t.Errorf("expected json-ld source, got %v", source)
	}
	if got.Year() != 2023 {
		t.Errorf("got year %d", got.Year())
	}
}

func TestPublishDateFromURLPath(t *testing.T) {
	got, source, ok := PublishDate(parseDoc(t, `<html><body></body></html>`), "https://example.com/2022/03/14/some-story")
	if !ok {
		t.Fatal("expected a publish date from the URL path")
	}
	if source != DateSourceURLPath {
		t.Errorf("expected url-path source, got %v", source)
	}
	if got.Year() != 2022 {
		t.Errorf("got year %d", got.Year())
	}
}

func TestPublishDateFromTimeElement(t *testing.T) {
	doc := parseDoc(t, `<html><body><time datetime="2021-09-01T00:00:00Z">Sep 1</time></body></html>`)
	got, source, ok := PublishDate(doc, "")
	if !ok {
		t.Fatal("expected a publish date")
	}
	if source != DateSourceTimeElement {
		t.Errorf("expected time-element source, got %v", source)
	}
	if got.Year() != 2021 {
		t.Errorf("got year %d", got.Year())
	}
}

func TestPublishDateNoneFound(t *testing.T) {
	_, _, ok := PublishDate(parseDoc(t, `<html><body><p>no dates here</p></body></html>`), "")
	if ok {
		t.Error("expected no publish date")
	}
}
