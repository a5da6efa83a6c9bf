package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Conservative RFC-subset address pattern for web signup forms.
	// Deliberately stricter than RFC 5322: no quoted local parts, no
	// address literals, TLD of at least two letters.
	emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

	// Everything a phone field may not contain.
	nonPhoneRegex = regexp.MustCompile(`[^0-9 ()+\-]`)

	// ASCII controls, stripped before URL scheme checks so that
	// "java\tscript:" style smuggling cannot slip through.
	controlCharRegex = regexp.MustCompile(`[\x00-\x1f\x7f]`)
)
