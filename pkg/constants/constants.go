// Package constants holds the static lookup tables the extractors are
// built around: meta-tag key lists, attribute/value tables for author
// and body-node detection, and score-boost weights for semantic tags.
package constants

// TitleMetaKeys are the meta tag names checked, in order, by the title
// extractor. The evaluation order is significant: for each key the
// extractor checks `property` before `name`, but keys themselves are
// walked in this literal order, which ranks "dc.title" ahead of
// "og:title" even though og:title is the far more common tag in the
// wild. That ordering is preserved exactly rather than re-sorted by
// presumed popularity, so behavior stays stable across inputs.
var TitleMetaKeys = []string{
	"dc.title", "og:title", "headline", "articletitle", "article-title",
	"parsely-title", "title", "twitter:title",
}

// PublishDateMetaKeys are meta tag names searched for a publish/update
// timestamp.
var PublishDateMetaKeys = []string{
	"published_date", "published_time", "cXenseParse:publishtime", "pubdate",
	"publish_date", "PublishDate", "dcterms.created", "rnews:datePublished",
	"article:published_time", "prism.publicationDate", "displaydate",
	"OriginalPublicationDate", "og:published_time", "datePublished",
	"article_date_original", "article.published", "published_time_telegram",
	"sailthru.date", "date", "Date", "original-publish-date", "DC.date.issued",
	"dc.date", "DC.Date", "parsely-pub-date", "publishtime", "og:regDate",
	"publication_date", "uploadDate", "publishdate", "publish-date",
	"publishedAtDate", "dcterms.date", "publishedDate", "pub_date",
	"updated_time", "og:updated_time", "datemodified", "last-modified",
	"Last-Modified", "DC.date.modified", "article:modified_time",
	"modified_time", "lastmod",
}

// AuthorAttrNames are the element attributes inspected for an author
// marker; matching is case-insensitive.
var AuthorAttrNames = []string{"name", "rel", "itemprop", "class", "id", "property"}

// AuthorAttrValues are the values an AuthorAttrNames attribute must
// equal or contain, lower-cased, for the element to be treated as an
// author byline.
var AuthorAttrValues = []string{
	"author", "byline", "dc.creator", "byl", "article:author",
	"article:author_name", "story-byline", "article-author",
	"parsely-author", "sailthru.author", "citation_author",
}

// AuthorStopWords are tokens stripped from a candidate author string
// after splitting (wire-service bylines, role labels).
var AuthorStopWords = []string{
	"By", "Reuters", "IANS", "AP", "AFP", "PTI", "ANI", "DPA",
	"Senior Reporter", "Reporter", "Writer", "Opinion Writer",
}

// BodyAttrSelector describes one entry of the fast-path ARTICLE_BODY_ATTR
// table: an attribute/value pair that, if uniquely matched under
// <body>, selects the article body node directly.
type BodyAttrSelector struct {
	Attr  string
	Value string // whole attribute value, compared case-insensitively
}

// BodyAttrSelectors is the fast-path selector table (confidence 1.0
// when exactly one element under <body> matches any entry).
var BodyAttrSelectors = []BodyAttrSelector{
	{Attr: "itemprop", Value: "articleBody"},
	{Attr: "data-testid", Value: "article-body"},
	{Attr: "name", Value: "articleBody"},
	{Attr: "class", Value: "content"},
	{Attr: "class", Value: "article-content"},
	{Attr: "class", Value: "post-content"},
	{Attr: "class", Value: "entry-content"},
	{Attr: "class", Value: "main-content"},
	{Attr: "id", Value: "content"},
	{Attr: "id", Value: "article-content"},
	{Attr: "id", Value: "main-content"},
	{Attr: "role", Value: "article"},
	{Attr: "data-role", Value: "content"},
}

// The base_score semantic bonus weights, applied in priority order
// (itemprop, then itemtype, then role, then bare tag) by the scorer's
// semanticBonus function — first match wins.
var (
	ItempropArticleBodyBonus = 100
	ItempropArticleTextBonus = 40
	ItemtypeArticleBonus     = 30 // schema.org/Article, /NewsArticle
	ItemtypeBlogPostingBonus = 20 // schema.org/BlogPosting
	RoleArticleTagBonus      = 25 // role=article, tag=article
	RoleArticleOtherBonus    = 15 // role=article, other tag
	TagArticleBonus          = 10
	TagMainBonus             = 8
	TagSectionBonus          = 5
	TagDivBonus              = 3
)

// ArticleItemtypes are schema.org/Itemtype values worth +30.
var ArticleItemtypes = []string{
	"https://schema.org/Article", "http://schema.org/Article",
	"https://schema.org/NewsArticle", "http://schema.org/NewsArticle",
}

// BlogPostingItemtypes are schema.org/Itemtype values worth +20.
var BlogPostingItemtypes = []string{
	"https://schema.org/BlogPosting", "http://schema.org/BlogPosting",
}

// MetaImageTag describes one META_IMAGE_TAGS entry: where to look for
// a top-image URL and how strongly to trust it.
type MetaImageTag struct {
	Tag, Attr, Value, Content string
	Score                     int
}

var MetaImageTags = []MetaImageTag{
	{Tag: "meta", Attr: "property", Value: "og:image", Content: "content", Score: 10},
	{Tag: "link", Attr: "rel", Value: "image_src", Content: "href", Score: 8},
	{Tag: "link", Attr: "rel", Value: "img_src", Content: "href", Score: 8},
	{Tag: "meta", Attr: "name", Value: "og:image", Content: "content", Score: 8},
	{Tag: "link", Attr: "rel", Value: "icon", Content: "href", Score: 5},
}

// VideoProviders are substrings matched against the host of a video's
// resolved URL to infer its hosting provider.
var VideoProviders = []string{"youtube", "youtu.be", "vimeo", "dailymotion", "kewego", "twitch"}

// CommonTrackingParams are query parameters stripped by
// urls.Resolve during URL cleanup (utm_*, click IDs, etc.).
var CommonTrackingParams = []string{
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
	"fbclid", "gclid", "mc_cid", "mc_eid", "ref", "ref_src",
}
