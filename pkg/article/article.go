// Package article holds the Article value produced by an extraction
// and the error taxonomy that extraction can raise.
package article

import (
	"time"

	"github.com/corvidlabs/artex/internal/lang"
	"github.com/corvidlabs/artex/pkg/extractors"
)

// DateSource records which strategy produced PublishingDate.
type DateSource string

const (
	DateSourceMeta        DateSource = "meta"
	DateSourceJSONLD      DateSource = "json-ld"
	DateSourceURLPath     DateSource = "url-path"
	DateSourceTimeElement DateSource = "time-element"
)

// PublishingDate pairs a resolved instant with the strategy that found
// it.
type PublishingDate struct {
	Instant time.Time
	Source  DateSource
}

// Article is the complete result of extracting one document. Every
// string field is trimmed and contains no embedded HTML; every URL
// field, when present, is absolute.
type Article struct {
	URL             string
	Title           string
	Authors         []string
	PublishingDate  *PublishingDate
	Text            string
	Language        lang.Language
	TopImage        string
	Thumbnail       string
	Favicon         string
	Images          []string
	Videos          []extractors.Video
	Canonical       string
	References      []string
	MetaKeywords    []string
	MetaDescription string
	AllURLs         []string

	// Confidence is the body-node scorer's confidence in Text's source
	// node, in [0, 1]. Callers that want to gate on extraction quality
	// can threshold on it directly.
	Confidence float64
}
