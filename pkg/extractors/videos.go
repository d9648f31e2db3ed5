package extractors

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/internal/noise"
	"github.com/corvidlabs/artex/internal/urls"
	"github.com/corvidlabs/artex/pkg/constants"
)

// Video is one embedded video reference under the article node.
type Video struct {
	URL      string
	Provider string // "" when the host matches no known provider
}

// Videos returns every <iframe>, <video>, and <embed> under
// articleNode whose parent isn't <object>, plus any JSON-LD
// VideoObject contentUrl found in the whole document, noise-filtered
// and resolved against base.
func Videos(doc *domx.Document, articleNode *goquery.Selection, base string) []Video {
	var out []Video
	seen := map[string]bool{}
	add := func(raw string) {
		if raw == "" {
			return
		}
		resolved := urls.Resolve(raw, base)
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		out = append(out, Video{URL: resolved, Provider: videoProvider(resolved)})
	}

	if articleNode != nil && articleNode.Length() > 0 {
		articleNode.Find("video, iframe, embed").Each(func(_ int, s *goquery.Selection) {
			if noise.IsNoise(s) {
				return
			}
			if goquery.NodeName(s.Parent()) == "object" {
				return
			}
			src, _ := s.Attr("src")
			add(strings.TrimSpace(src))
		})
	}

	for _, obj := range domx.LdJSON(doc.Root()) {
		videos := videoObjectsFromJSON(obj)
		for _, v := range videos {
			if contentURL, ok := v["contentUrl"].(string); ok {
				add(strings.TrimSpace(contentURL))
			}
		}
	}

	return out
}

func videoObjectsFromJSON(data map[string]any) []map[string]any {
	if t, ok := data["@type"]; ok && t == "VideoObject" {
		return []map[string]any{data}
	}
	var out []map[string]any
	if graph, ok := data["@graph"].([]any); ok {
		for _, item := range graph {
			if obj, ok := item.(map[string]any); ok {
				if t, ok := obj["@type"]; ok && t == "VideoObject" {
					out = append(out, obj)
				}
			}
		}
	}
	return out
}

func videoProvider(videoURL string) string {
	u, err := url.Parse(videoURL)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	for _, provider := range constants.VideoProviders {
		if strings.Contains(host, provider) {
			return provider
		}
	}
	return ""
}
