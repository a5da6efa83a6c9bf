package sanitizer

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// allowedTags is the inline formatting set permitted in rich-text
// fields such as company descriptions. Attributes are never kept, so
// an <a> survives only as a styling hint; hrefs must be re-attached by
// the renderer from sanitized URL fields.
var allowedTags = map[string]bool{
	"b": true, "i": true, "em": true, "strong": true,
	"p": true, "br": true, "ul": true, "ol": true, "li": true,
	"a": true,
}

// rawContentTags have contents that must be dropped along with the tag
// itself rather than surfaced as text.
var rawContentTags = map[string]bool{
	"script": true, "style": true, "iframe": true,
	"object": true, "embed": true, "noscript": true,
}

// HTML sanitizes untrusted markup down to a small allow-listed inline
// tag set with no attributes. Text content is escaped, disallowed tags
// are dropped (their children kept, except for script-like containers
// whose contents are dropped too), and open tags are balanced at the
// end of input. If the tokenizer fails, the input degrades to fully
// stripped and escaped text; unsanitized markup is never returned.
func HTML(s string) (out string) {
	defer func() {
		// Tokenizer panics are not expected, but the fallback contract
		// must hold even then.
		if r := recover(); r != nil {
			out = Text(s)
		}
	}()

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	var open []string
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return Text(s)
			}
			// Balance whatever is still open.
			for i := len(open) - 1; i >= 0; i-- {
				b.WriteString("</" + open[i] + ">")
			}
			return b.String()

		case html.TextToken:
			if skip == 0 {
				b.WriteString(html.EscapeString(string(z.Text())))
			}

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			switch {
			case rawContentTags[tag]:
				skip++
			case skip == 0 && allowedTags[tag]:
				b.WriteString("<" + tag + ">")
				if tag != "br" {
					open = append(open, tag)
				}
			}

		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			if skip == 0 && allowedTags[tag] {
				b.WriteString("<" + tag + ">")
				if tag != "br" {
					b.WriteString("</" + tag + ">")
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			switch {
			case rawContentTags[tag]:
				if skip > 0 {
					skip--
				}
			case skip == 0 && allowedTags[tag]:
				// Close the innermost matching tag, closing anything
				// opened after it so the output stays well nested.
				for i := len(open) - 1; i >= 0; i-- {
					if open[i] != tag {
						continue
					}
					for j := len(open) - 1; j >= i; j-- {
						b.WriteString("</" + open[j] + ">")
					}
					open = open[:i]
					break
				}
			}
		}
	}
}
