package lang

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// scriptRegex flags a script range strongly associated with one of the
// closed enumeration's non-Latin members. Cyrillic is the only such
// member we carry (Chinese is caught by cjkRegex instead, since CJK
// ideographs need segmentation, not a script-presence check, to be
// useful downstream).
var scriptRegex = regexp.MustCompile(`[\x{0400}-\x{04FF}]`)

var cjkRegex = regexp.MustCompile(`[\x{4E00}-\x{9FFF}]`)

// stopwordHints are short, high-frequency function words whose
// presence (surrounded by spaces) is cheap evidence for a Latin-script
// language. This is evidence, not proof: a handful of matches tips the
// vote, it doesn't require majority presence.
var stopwordHints = map[Language][]string{
	English: {" the ", " and ", " of ", " to ", " in ", " is ", " that "},
	French:  {" le ", " la ", " et ", " les ", " des ", " un ", " une ", " que "},
	German:  {" der ", " die ", " das ", " und ", " ist ", " ein ", " eine "},
	Spanish: {" el ", " la ", " y ", " que ", " en ", " los ", " las ", " un ", " una "},
}

// Detect guesses a document's language from its running text using
// Unicode-range evidence for non-Latin scripts plus stopword-hint
// counts for the Latin-script members of the closed enumeration. It
// is meant as a fallback for documents with no usable <html lang> or
// meta-language tag, not a replacement for one: the result is the
// single best-evidenced candidate, or Unknown if nothing scored.
func Detect(text string) Language {
	if cjkRegex.MatchString(text) {
		return Chinese
	}
	if scriptRegex.MatchString(text) {
		return Russian
	}

	padded := " " + strings.ToLower(text) + " "
	best := Unknown
	bestCount := 0
	// Iterate in a fixed order so equal-evidence ties resolve the same
	// way on every run.
	for _, l := range []Language{English, French, German, Spanish} {
		count := 0
		for _, hint := range stopwordHints[l] {
			count += strings.Count(padded, hint)
		}
		if count > bestCount {
			bestCount = count
			best = l
		}
	}
	return best
}

// DisplayName renders the English name of l's language tag, or "" for
// Unknown.
func DisplayName(l Language) string {
	if l.IsUnknown() {
		return ""
	}
	tag, err := language.Parse(l.Code())
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}
