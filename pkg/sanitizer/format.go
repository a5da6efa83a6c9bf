package sanitizer

import (
	"net/url"
	"strings"
)

// Email trims, lowercases and validates an address against a
// conservative RFC-subset pattern. The result is either the canonical
// (lowercased) form of a syntactically valid address or the empty
// string; the function never reports an error.
func Email(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return ""
	}
	return s
}

// Phone passes through only digits, spaces, parentheses, '+' and '-',
// dropping every other character.
func Phone(s string) string {
	return nonPhoneRegex.ReplaceAllString(s, "")
}

// deniedSchemes are rejected case-insensitively even when a URL would
// otherwise parse. data: and javascript: URLs execute in the rendering
// context, the rest leak local resources.
var deniedSchemes = []string{"javascript", "data", "vbscript", "file", "about"}

// URL accepts http:/https: absolute URLs and same-origin-relative paths
// beginning with "/". Everything else, including javascript:, data:,
// vbscript:, file: and about: URLs in any casing, yields the empty
// string. Accepted URLs are returned unchanged apart from trimming.
func URL(s string) string {
	s = strings.TrimSpace(s)
	s = controlCharRegex.ReplaceAllString(s, "")
	if s == "" {
		return ""
	}

	// Root-relative path. "//host" is scheme-relative, not same-origin,
	// and is rejected along with "/\" which some parsers treat the same.
	if strings.HasPrefix(s, "/") {
		if strings.HasPrefix(s, "//") || strings.HasPrefix(s, `/\`) {
			return ""
		}
		return s
	}

	lower := strings.ToLower(s)
	for _, scheme := range deniedSchemes {
		if strings.HasPrefix(lower, scheme+":") {
			return ""
		}
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host == "" {
		return ""
	}
	return s
}
