package lang

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-ego/gse"
)

// punctuationClass is the set of punctuation runes a word boundary may
// fall on, in addition to whitespace.
const punctuationClass = ",.\"'!?&-/:;()#$%*+<=>@[]^_`{|}~"

// WordsStats is the per-text summary produced by StopwordCount.
type WordsStats struct {
	WordCount     int
	StopwordCount int
	AvgWordLength float64
}

var cjkSegmenter *gse.Segmenter

func init() {
	cjkSegmenter = new(gse.Segmenter)
	_ = cjkSegmenter.LoadDict()
}

// splitWords splits on whitespace or any punctuationClass rune,
// discarding empties. CJK languages instead use gse segmentation.
func splitWords(l Language, text string) []string {
	if l.IsCJK() {
		cut := cjkSegmenter.Cut(text, true)
		words := make([]string, 0, len(cut))
		for _, w := range cut {
			w = strings.TrimSpace(w)
			if w != "" {
				words = append(words, w)
			}
		}
		return words
	}

	isSep := func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(punctuationClass, r)
	}
	fields := strings.FieldsFunc(text, isSep)
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// StopwordCount returns word/stopword counts and average word length
// for text in language l. It returns (nil, false) when l has no
// stopword table.
func StopwordCount(l Language, text string) (*WordsStats, bool) {
	table, ok := tableFor(l)
	if !ok {
		return nil, false
	}

	words := splitWords(l, text)
	if len(words) == 0 {
		return &WordsStats{}, true
	}

	stopCount := 0
	totalLen := 0
	for _, w := range words {
		lower := strings.ToLower(strings.TrimSpace(w))
		if table[lower] {
			stopCount++
		}
		totalLen += utf8.RuneCountInString(w)
	}

	return &WordsStats{
		WordCount:     len(words),
		StopwordCount: stopCount,
		AvgWordLength: float64(totalLen) / float64(len(words)),
	}, true
}
