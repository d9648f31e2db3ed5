// Package bodyscore selects the single DOM node most likely to hold an
// article's body prose, via a two-stage process: a fast structural-
// attribute path, and a fallback content-scoring path that propagates
// scores up to parent and grandparent before picking a winner.
package bodyscore

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/internal/lang"
	"github.com/corvidlabs/artex/internal/noise"
	"github.com/corvidlabs/artex/internal/textnodes"
	"github.com/corvidlabs/artex/pkg/constants"
)

// Result is the scorer's output: the selected node and a normalized
// confidence in [0, 1].
type Result struct {
	Node       *goquery.Selection
	Confidence float64
}

// Score finds the article body node under doc's <body>. It returns
// (nil, false) when the document has no <body> element, and also when
// no candidate survives the scoring path's filters; the scoring path
// itself never fails.
func Score(doc *domx.Document, language lang.Language) (*Result, bool) {
	body := doc.Body()
	if body.Length() == 0 {
		return nil, false
	}

	if r, ok := fastPath(body); ok {
		return r, true
	}

	return scoringPath(body, language)
}

// fastPath implements the two structural shortcuts: an
// itemprop="articleBody" node (confidence 0.95), or a single unique
// match among the body-attribute selector table under <body>
// (confidence 1.0).
func fastPath(body *goquery.Selection) (*Result, bool) {
	if n := body.Find(`[itemprop="articleBody"]`).First(); n.Length() > 0 {
		return &Result{Node: n, Confidence: 0.95}, true
	}

	var matches []*goquery.Selection
	seen := map[int]bool{}
	for _, sel := range constants.BodyAttrSelectors {
		body.Find("[" + sel.Attr + "]").Each(func(_ int, s *goquery.Selection) {
			v, _ := s.Attr(sel.Attr)
			if !strings.EqualFold(v, sel.Value) {
				return
			}
			idx := domx.NodeIndex(s)
			if idx >= 0 && !seen[idx] {
				seen[idx] = true
				matches = append(matches, s)
			}
		})
	}
	if len(matches) == 1 {
		return &Result{Node: matches[0], Confidence: 1.0}, true
	}
	return nil, false
}

type candidateScore struct {
	node  *goquery.Selection
	text  string
	stats *lang.WordsStats
	base  float64
}

// scoringPath runs the full content-scoring algorithm.
func scoringPath(body *goquery.Selection, language lang.Language) (*Result, bool) {
	all := textnodes.Enumerate(body)

	var survivors []candidateScore
	for _, node := range all {
		text := domx.Text(node)
		if len(text) < 50 {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if noise.IsNoiseText(text) {
			continue
		}
		if linkDensity(node, text) > 0.5 {
			continue
		}

		stats, ok := lang.StopwordCount(language, text)
		if !ok || stats.StopwordCount < 5 {
			continue
		}

		survivors = append(survivors, candidateScore{
			node:  node,
			text:  text,
			stats: stats,
			base:  float64(stats.StopwordCount) + semanticBonus(node),
		})
	}

	n := len(survivors)
	if n == 0 {
		return nil, false
	}

	type acc struct {
		sum  float64
		hits int
	}
	accumulator := map[int]*acc{}
	addScore := func(s *goquery.Selection, score float64) {
		idx := domx.NodeIndex(s)
		if idx < 0 {
			return
		}
		a, ok := accumulator[idx]
		if !ok {
			a = &acc{}
			accumulator[idx] = a
		}
		a.sum += score
		a.hits++
	}

	startingBoost := 1.0
	var runningNegative float64

	for i, c := range survivors {
		boost := 0.0
		if isBoostable(c.node) {
			boost = 50.0 / startingBoost
			startingBoost++
		}
		if n > 15 {
			fromEnd := n - i
			if fromEnd <= max(1, int(0.25*float64(n))) {
				booster := 0.25*float64(n) - float64(fromEnd)
				boost = -(booster * booster)
				if math.Abs(boost)+runningNegative > 40 {
					boost = 5
				} else {
					runningNegative += math.Abs(boost)
				}
			}
		}

		formattingBonus := formattingBonus(c.node)
		lengthBonus := math.Min(5, float64(c.stats.WordCount)/100.0)
		upscore := math.Floor(c.base + boost + formattingBonus + lengthBonus)

		addScore(c.node, upscore)
		if parent := c.node.Parent(); parent.Length() > 0 {
			addScore(parent, upscore)
			if grandparent := parent.Parent(); grandparent.Length() > 0 {
				addScore(grandparent, upscore*0.4)
			}
		}
	}

	bestIdx := -1
	var bestSum float64
	for idx, a := range accumulator {
		if bestIdx == -1 || a.sum > bestSum || (a.sum == bestSum && idx < bestIdx) {
			bestIdx = idx
			bestSum = a.sum
		}
	}
	if bestIdx == -1 {
		return nil, false
	}

	best := body.Find("[" + domx.NodeIndexAttr + "='" + strconv.Itoa(bestIdx) + "']").First()
	if best.Length() == 0 {
		return nil, false
	}

	confidence := clamp(bestSum/(10.0*float64(n)), 0, 1)
	return &Result{Node: best, Confidence: confidence}, true
}

func linkDensity(node *goquery.Selection, text string) float64 {
	if text == "" {
		return 1.0
	}
	var anchorChars int
	node.Find("a").Each(func(_ int, a *goquery.Selection) {
		anchorChars += len([]rune(domx.Text(a)))
	})
	return float64(anchorChars) / float64(len([]rune(text)))
}

// semanticBonus implements the base_score semantic-tag table: the
// first matching rule wins.
func semanticBonus(node *goquery.Selection) float64 {
	if v, ok := node.Attr("itemprop"); ok {
		switch v {
		case "articleBody":
			return float64(constants.ItempropArticleBodyBonus)
		case "articleText":
			return float64(constants.ItempropArticleTextBonus)
		}
	}
	if v, ok := node.Attr("itemtype"); ok {
		for _, t := range constants.ArticleItemtypes {
			if v == t {
				return float64(constants.ItemtypeArticleBonus)
			}
		}
		for _, t := range constants.BlogPostingItemtypes {
			if v == t {
				return float64(constants.ItemtypeBlogPostingBonus)
			}
		}
	}
	tag := goquery.NodeName(node)
	if role, ok := node.Attr("role"); ok && role == "article" {
		if tag == "article" {
			return float64(constants.RoleArticleTagBonus)
		}
		return float64(constants.RoleArticleOtherBonus)
	}
	switch tag {
	case "article":
		return float64(constants.TagArticleBonus)
	case "main":
		return float64(constants.TagMainBonus)
	case "section":
		return float64(constants.TagSectionBonus)
	case "div":
		return float64(constants.TagDivBonus)
	}
	return 0
}

func formattingBonus(node *goquery.Selection) float64 {
	bonus := 0.0
	if node.Find("strong").Length() > 0 {
		bonus += 2
	}
	if node.Find("em").Length() > 0 {
		bonus += 1.5
	}
	if node.Find("b").Length() > 0 {
		bonus += 1
	}
	if node.Find("i").Length() > 0 {
		bonus += 0.5
	}
	linkCount := node.Find("a").Length()
	if linkCount > 5 {
		bonus -= 0.5 * float64(linkCount-5)
	}
	return bonus
}

// isBoostable walks up to 3 <p> siblings in each direction; a sibling
// qualifies when its link density <= 0.5 and its first text child has
// more than 5 stopwords and at least 10 words.
func isBoostable(node *goquery.Selection) bool {
	check := func(sib *goquery.Selection) bool {
		if sib.Length() == 0 || goquery.NodeName(sib) != "p" {
			return false
		}
		text := domx.Text(sib)
		if linkDensity(sib, text) > 0.5 {
			return false
		}
		firstText := ""
		sib.Contents().EachWithBreak(func(_ int, c *goquery.Selection) bool {
			if goquery.NodeName(c) == "#text" {
				firstText = c.Text()
				return false
			}
			return true
		})
		stats, ok := lang.StopwordCount(lang.English, firstText)
		return ok && stats.StopwordCount > 5 && stats.WordCount >= 10
	}

	prev := node
	for i := 0; i < 3; i++ {
		prev = prev.Prev()
		if prev.Length() == 0 {
			break
		}
		if check(prev) {
			return true
		}
	}
	next := node
	for i := 0; i < 3; i++ {
		next = next.Next()
		if next.Length() == 0 {
			break
		}
		if check(next) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

