package config

import "testing"

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	if cfg.MaxTitleLen <= 0 || cfg.MaxTextLen <= 0 || cfg.MaxAuthors <= 0 || cfg.MaxKeywords <= 0 {
		t.Errorf("expected positive default caps, got %+v", cfg)
	}
	if !cfg.FetchImages || !cfg.UseMetaLanguage {
		t.Errorf("expected image fetching and meta-language detection enabled by default, got %+v", cfg)
	}
	if cfg.Completeness != (CompletenessPolicy{}) {
		t.Errorf("expected no completeness requirements by default, got %+v", cfg.Completeness)
	}
}
