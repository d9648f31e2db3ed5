package extractors

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/internal/noise"
	"github.com/corvidlabs/artex/internal/urls"
	"github.com/corvidlabs/artex/pkg/constants"
)

var imgSrcAttrs = []string{"src", "data-src", "data-original", "data-lazy-src"}

type imageCandidate struct {
	url   string
	score int
}

// MetaImgURL ranks the document's META_IMAGE_TAGS candidates and
// returns the highest-scoring one, resolved against base. This is
// also the top_img value when the caller asks not to fetch images.
func MetaImgURL(doc *domx.Document, base string) (string, bool) {
	var candidates []imageCandidate
	for _, tag := range constants.MetaImageTags {
		sel := tag.Tag + `[` + tag.Attr + `="` + tag.Value + `"]`
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			v, ok := s.Attr(tag.Content)
			v = strings.TrimSpace(v)
			if ok && v != "" {
				candidates = append(candidates, imageCandidate{url: v, score: tag.Score})
			}
		})
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	return urls.Resolve(candidates[0].url, base), true
}

// MetaThumbnailURL returns the first <meta name="thumbnail"|
// "thumbnailUrl"> content, resolved against base.
func MetaThumbnailURL(doc *domx.Document, base string) (string, bool) {
	for _, name := range []string{"thumbnail", "thumbnailUrl"} {
		v, ok := doc.Find(`meta[name="` + name + `"]`).First().Attr("content")
		v = strings.TrimSpace(v)
		if ok && v != "" {
			return urls.Resolve(v, base), true
		}
	}
	return "", false
}

// Images returns every non-noise <img src|data-src> under articleNode,
// resolved against base, in document order.
func Images(articleNode *goquery.Selection, base string) []string {
	if articleNode == nil || articleNode.Length() == 0 {
		return nil
	}
	var out []string
	articleNode.Find("img").Each(func(_ int, s *goquery.Selection) {
		if noise.IsNoise(s) {
			return
		}
		src := imageSrc(s)
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}
		out = append(out, urls.Resolve(src, base))
	})
	return out
}

func imageSrc(img *goquery.Selection) string {
	for _, attr := range imgSrcAttrs {
		if v, ok := img.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// TopImage picks a single representative image for the article: the
// meta image when the caller doesn't want live image fetching,
// otherwise the first non-noise image found under articleNode, else
// the meta image as a fallback.
func TopImage(doc *domx.Document, articleNode *goquery.Selection, base string, fetchImages bool) (string, bool) {
	metaImg, haveMeta := MetaImgURL(doc, base)
	if haveMeta && !fetchImages {
		return metaImg, true
	}
	if imgs := Images(articleNode, base); len(imgs) > 0 {
		return imgs[0], true
	}
	return metaImg, haveMeta
}
