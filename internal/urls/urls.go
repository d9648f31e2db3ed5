// Package urls resolves relative hrefs against a base URL and exposes
// the host-structure fields (domain, subdomain, TLD) extraction needs
// for de-duplication and validity checks.
package urls

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/corvidlabs/artex/pkg/constants"
)

// Resolved wraps a parsed, absolute URL with its eTLD+1 breakdown.
type Resolved struct {
	*url.URL
	Domain    string
	Subdomain string
	TLD       string
}

// Parse parses s and, if it has a host, fills in the domain/subdomain/
// TLD breakdown via the public suffix list. A host-less URL (e.g. a
// bare path) is returned with those fields empty.
func Parse(s string) (*Resolved, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", s, err)
	}
	if u.Host == "" {
		return &Resolved{URL: u}, nil
	}

	host := stripPort(u.Host)
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Unregistered/private host (localhost, bare IP): treat the
		// whole host as the domain rather than failing resolution.
		return &Resolved{URL: u, Domain: host}, nil
	}

	dot := strings.Index(etld1, ".")
	if dot < 0 {
		return &Resolved{URL: u, Domain: etld1}, nil
	}
	domain, tld := etld1[:dot], etld1[dot+1:]
	sub := strings.TrimSuffix(host, "."+etld1)
	if sub == host {
		sub = ""
	}

	return &Resolved{URL: u, Domain: domain, Subdomain: sub, TLD: tld}, nil
}

func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i >= 0 {
		allDigits := true
		for _, r := range host[i+1:] {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			return host[:i]
		}
	}
	return host
}

// IsAbsolute reports whether u has both a scheme and a host.
func IsAbsolute(u *url.URL) bool {
	return u != nil && u.Scheme != "" && u.Host != ""
}

// Resolve turns href into an absolute URL string against base. If
// base is empty or either URL fails to parse, href is not resolved
// (the caller decides whether that's still usable). In every case the
// result has its tracking query parameters stripped; fragments are
// kept as they are.
func Resolve(href, base string) string {
	href = strings.TrimSpace(href)
	if base == "" {
		return stripTrackingParams(href)
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return stripTrackingParams(href)
	}
	rel, err := url.Parse(href)
	if err != nil {
		return stripTrackingParams(href)
	}
	return stripTrackingParams(baseURL.ResolveReference(rel).String())
}

// stripTrackingParams removes query parameters in
// constants.CommonTrackingParams (utm_*, click IDs, etc.) from a URL
// string. Malformed input is returned unchanged.
func stripTrackingParams(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}
	q := u.Query()
	changed := false
	for _, p := range constants.CommonTrackingParams {
		if q.Has(p) {
			q.Del(p)
			changed = true
		}
	}
	if !changed {
		return raw
	}
	u.RawQuery = q.Encode()
	return u.String()
}
