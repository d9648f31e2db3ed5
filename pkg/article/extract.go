package article

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvidlabs/artex/internal/articletext"
	"github.com/corvidlabs/artex/internal/bodyscore"
	"github.com/corvidlabs/artex/internal/domx"
	"github.com/corvidlabs/artex/internal/lang"
	"github.com/corvidlabs/artex/internal/urls"
	"github.com/corvidlabs/artex/pkg/config"
	"github.com/corvidlabs/artex/pkg/extractors"
)

// Extract builds an Article from raw HTML. baseURL, when non-empty,
// is used to resolve every relative URL field and as the fallback
// source for a path-derived publish date. A <base href> declared in
// the document replaces baseURL for both uses and for Article.URL.
func Extract(html, baseURL string, cfg *config.Config) (*Article, error) {
	if cfg == nil {
		cfg = config.NewDefault()
	}

	doc, err := domx.Parse(html)
	if err != nil {
		return nil, &Error{Kind: ReadDocument, Message: "failed to parse HTML", Cause: err}
	}

	if baseURL != "" {
		parsed, err := urls.Parse(baseURL)
		if err != nil {
			return nil, &Error{Kind: BaseUrlInvalid, Message: "base URL cannot serve as a resolution base", Cause: err}
		}
		if parsed.Opaque != "" {
			return nil, &Error{Kind: BaseUrlInvalid, Message: "base URL cannot serve as a resolution base: it has an opaque path"}
		}
	}
	if declared, ok := extractors.BaseURL(doc); ok {
		baseURL = declared
	}

	a := &Article{URL: baseURL}

	if cfg.UseMetaLanguage {
		a.Language = extractors.MetaLanguage(doc)
	}
	scoringLanguage := a.Language
	if scoringLanguage.IsUnknown() {
		scoringLanguage = lang.Detect(domx.Text(doc.Root()))
	}
	if scoringLanguage.IsUnknown() {
		// The body scorer still needs a stopword table to count
		// against; English is the engine's default when neither the
		// document's own declaration nor content sniffing yields one.
		scoringLanguage = lang.English
	}

	var bodyNode *goquery.Selection
	if result, ok := bodyscore.Score(doc, scoringLanguage); ok {
		a.Confidence = result.Confidence
		bodyNode = result.Node
		a.Text = truncate(articletext.Extract(bodyNode), cfg.MaxTextLen)
	}

	a.Title = truncate(extractors.Title(doc), cfg.MaxTitleLen)

	authors := extractors.Authors(doc)
	if cfg.MaxAuthors > 0 && len(authors) > cfg.MaxAuthors {
		authors = authors[:cfg.MaxAuthors]
	}
	a.Authors = authors

	t, source, ok := extractors.PublishDate(doc, "")
	if !ok && baseURL != "" {
		t, source, ok = extractors.PublishDate(doc, baseURL)
	}
	if ok {
		a.PublishingDate = &PublishingDate{Instant: t, Source: DateSource(source)}
	}

	if v, ok := extractors.CanonicalLink(doc, baseURL); ok {
		a.Canonical = v
	}
	if v, ok := extractors.Favicon(doc, baseURL); ok {
		a.Favicon = v
	}
	if v, ok := extractors.MetaThumbnailURL(doc, baseURL); ok {
		a.Thumbnail = v
	}
	if v, ok := extractors.TopImage(doc, bodyNode, baseURL, cfg.FetchImages); ok {
		a.TopImage = v
	}
	if v, ok := extractors.MetaDescription(doc); ok {
		a.MetaDescription = v
	}

	keywords := extractors.MetaKeywords(doc)
	if cfg.MaxKeywords > 0 && len(keywords) > cfg.MaxKeywords {
		keywords = keywords[:cfg.MaxKeywords]
	}
	a.MetaKeywords = keywords

	a.AllURLs = extractors.AllURLs(doc)
	a.Images = extractors.Images(bodyNode, baseURL)
	a.References = extractors.References(bodyNode, baseURL)
	a.Videos = extractors.Videos(doc, bodyNode, baseURL)

	if err := checkCompleteness(a, cfg); err != nil {
		return a, err
	}
	return a, nil
}

func checkCompleteness(a *Article, cfg *config.Config) error {
	var missing []string
	if cfg.Completeness.RequireTitle && a.Title == "" {
		missing = append(missing, "title")
	}
	if cfg.Completeness.RequireText && a.Text == "" {
		missing = append(missing, "text")
	}
	if cfg.Completeness.RequireDate && a.PublishingDate == nil {
		missing = append(missing, "publishing_date")
	}
	if len(missing) == 0 {
		return nil
	}
	return &Error{
		Kind:    IncompleteArticle,
		Message: "missing required fields: " + strings.Join(missing, ", "),
		Partial: a,
	}
}
