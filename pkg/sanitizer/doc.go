// Package sanitizer converts untrusted strings and API payloads into
// values that are safe to render or to forward to the Proveo backend.
//
// The single-field sanitizers (Text, Email, Phone, URL, HTML) never
// return an error: input that cannot be made safe degrades to the empty
// string, leaving the "is this acceptable" decision to the caller. Only
// form-level validation (see the validator package) raises, because at
// that boundary the caller needs an actionable error to surface.
//
// APIResponse walks decoded JSON recursively and routes each string
// through the sanitizer matching its field name, so page renderers can
// trust every string in a response body:
//
//	safe := sanitizer.APIResponse(decoded).(map[string]any)
//
// The package is stateless and safe for concurrent use. The Apply and
// Compose helpers build reusable pipelines:
//
//	clean := sanitizer.Compose(strings.TrimSpace, sanitizer.Text)
package sanitizer
