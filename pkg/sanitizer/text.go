package sanitizer

import "strings"

// htmlEscaper escapes every character that carries meaning in an HTML
// context, including the ones html.EscapeString leaves alone (/, `, =)
// which matter inside unquoted attribute values.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	"`", "&#x60;",
	"=", "&#x3D;",
)

// Text converts an untrusted string into a value safe to place in the
// DOM as text: markup is stripped, then the HTML-significant character
// set is escaped. The result never contains an unescaped '<' or '>'.
// Strings free of markup and special characters pass through unchanged,
// so applying Text to already-clean input is a no-op.
func Text(s string) string {
	s = htmlTagRegex.ReplaceAllString(s, "")
	return htmlEscaper.Replace(s)
}

// StripTags removes all HTML tags without escaping the remainder.
// Prefer Text when the result is destined for rendering.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}
