// Package config holds the tunables an Article extraction run is
// configured with: size caps, extraction toggles, and the
// completeness policy that decides when a result is incomplete.
package config

// Config controls a single extraction run. It carries no HTTP,
// threading, or crawl-related fields — those belong to the fetching
// and crawling collaborators this module does not implement.
type Config struct {
	MaxTitleLen    int
	MaxTextLen     int
	MaxAuthors     int
	MaxKeywords    int
	FetchImages    bool
	UseMetaLanguage bool

	// Completeness is the subset of fields Extract requires to be
	// present; if any of them is missing after extraction, Extract
	// returns an IncompleteArticle error carrying the partial result.
	Completeness CompletenessPolicy
}

// CompletenessPolicy names which Article fields are required.
type CompletenessPolicy struct {
	RequireTitle bool
	RequireText  bool
	RequireDate  bool
}

// NewDefault returns a Config with conservative defaults: generous
// size caps, image fetching/meta-language detection enabled, and no
// completeness requirement (callers that want IncompleteArticle
// errors opt in explicitly).
func NewDefault() *Config {
	return &Config{
		MaxTitleLen:     200,
		MaxTextLen:      100000,
		MaxAuthors:      10,
		MaxKeywords:     35,
		FetchImages:     true,
		UseMetaLanguage: true,
	}
}
