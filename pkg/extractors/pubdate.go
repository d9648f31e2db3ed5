package extractors

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/pkg/constants"
)

var strictURLDateRe = regexp.MustCompile(`\d{4}[/-]\d{1,2}[/-]\d{1,2}`)

// DateSource names which strategy produced a PublishDate result.
type DateSource string

const (
	DateSourceMeta        DateSource = "meta"
	DateSourceJSONLD      DateSource = "json-ld"
	DateSourceURLPath     DateSource = "url-path"
	DateSourceTimeElement DateSource = "time-element"
)

type dateMatch struct {
	date   time.Time
	score  int
	source DateSource
}

// PublishDate runs every publish-date strategy the document offers —
// URL path, JSON-LD, <time> elements, meta tags — scores each hit, and
// returns the highest-scoring one along with the strategy that found
// it. It returns the zero time and false when nothing scored.
func PublishDate(doc *domx.Document, articleURL string) (time.Time, DateSource, bool) {
	var matches []dateMatch

	if m := strictURLDateRe.FindString(articleURL); m != "" {
		if t, ok := parseDateStr(m); ok {
			matches = append(matches, dateMatch{date: t, score: 10, source: DateSourceURLPath})
		}
	}

	for _, obj := range domx.LdJSON(doc.Root()) {
		matches = extractDateFromJSON(obj, matches)
	}

	doc.Find("time").Each(func(_ int, s *goquery.Selection) {
		datetime, ok := s.Attr("datetime")
		if !ok {
			return
		}
		t, ok := parseDateStr(datetime)
		if !ok {
			return
		}
		score := 5
		text := strings.ToLower(domx.Text(s))
		if strings.Contains(text, "published") || strings.Contains(text, "on:") {
			score = 8
		}
		matches = append(matches, dateMatch{date: t, score: score, source: DateSourceTimeElement})
	})

	for _, key := range constants.PublishDateMetaKeys {
		doc.Find(`meta[name='` + key + `'], meta[property='` + key + `']`).Each(func(_ int, s *goquery.Selection) {
			content, _ := s.Attr("content")
			t, ok := parseDateStr(content)
			if !ok {
				return
			}
			score := 7
			daysSince := int(time.Since(t).Hours() / 24)
			switch {
			case daysSince < 0:
				score -= 2
			case daysSince > 25*365:
				score -= 1
			}
			matches = append(matches, dateMatch{date: t, score: score, source: DateSourceMeta})
		})
	}

	if len(matches) == 0 {
		return time.Time{}, "", false
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	best := matches[0]
	return best.date, best.source, true
}

func extractDateFromJSON(data any, matches []dateMatch) []dateMatch {
	switch v := data.(type) {
	case map[string]any:
		if graph, ok := v["@graph"]; ok {
			if items, ok := graph.([]any); ok {
				for _, item := range items {
					if m, ok := item.(map[string]any); ok {
						matches = extractDateFromMap(m, matches, 10)
					}
				}
			}
			return matches
		}
		return extractDateFromMap(v, matches, 9)
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				matches = extractDateFromMap(m, matches, 9)
			}
		}
	}
	return matches
}

func extractDateFromMap(data map[string]any, matches []dateMatch, score int) []dateMatch {
	for _, key := range []string{"datePublished", "dateCreated"} {
		v, ok := data[key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if t, ok := parseDateStr(s); ok {
			matches = append(matches, dateMatch{date: t, score: score, source: DateSourceJSONLD})
		}
	}
	return matches
}

func parseDateStr(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
