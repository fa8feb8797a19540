// Package wikiurl extracts the API base URL and numeric page id from
// user-supplied Confluence page URLs.
package wikiurl

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrNoMatch indicates the URL matches neither supported page URL shape.
var ErrNoMatch = errors.New("no page id in url")

var pagePathPattern = regexp.MustCompile(`/pages/(\d+)`)

// ParsedURL is the result of parsing a page URL.
type ParsedURL struct {
	// BaseURL is "{scheme}://{host}/wiki", the API root for this site.
	BaseURL string

	// PageID is the numeric page id as a string.
	PageID string
}

// Parse extracts (BaseURL, PageID) from a Confluence page URL.
//
// Two shapes are recognized:
//
//	.../pages/viewpage.action?pageId=123456        (legacy)
//	.../spaces/KEY/pages/123456/Page+Title         (modern)
//
// Any other shape fails with ErrNoMatch; callers log and skip the URL.
func Parse(raw string) (ParsedURL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ParsedURL{}, fmt.Errorf("parse url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return ParsedURL{}, fmt.Errorf("parse url %q: %w", raw, ErrNoMatch)
	}

	base := fmt.Sprintf("%s://%s/wiki", u.Scheme, u.Host)

	if strings.Contains(u.Path, "viewpage.action") {
		if id := u.Query().Get("pageId"); isDigits(id) {
			return ParsedURL{BaseURL: base, PageID: id}, nil
		}
	}

	if m := pagePathPattern.FindStringSubmatch(u.Path); m != nil {
		return ParsedURL{BaseURL: base, PageID: m[1]}, nil
	}

	return ParsedURL{}, fmt.Errorf("parse url %q: %w", raw, ErrNoMatch)
}

// isDigits reports whether s is a non-empty string of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
