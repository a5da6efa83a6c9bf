package sanitizer

import "strings"

// APIResponse recursively sanitizes JSON-shaped data (maps, slices and
// scalars, as produced by encoding/json) before it is handed to
// renderers. Strings are routed by the key they sit under: email-like
// keys go through Email, phone keys through Phone, url/link-like keys
// through URL, everything else through Text. Non-string scalars pass
// through unchanged.
//
// The walk terminates on any acyclic input; decoded JSON cannot contain
// reference cycles, so no cycle detection is attempted.
func APIResponse(data any) any {
	return sanitizeValue("", data)
}

func sanitizeValue(key string, v any) any {
	switch val := v.(type) {
	case string:
		return sanitizeStringByKey(key, val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = sanitizeValue(k, inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			// Elements of a list inherit the list's key, so a
			// "links" array routes each entry through URL.
			out[i] = sanitizeValue(key, inner)
		}
		return out
	default:
		return v
	}
}

func sanitizeStringByKey(key, s string) string {
	k := strings.ToLower(key)
	switch {
	case strings.Contains(k, "email"):
		return Email(s)
	case strings.Contains(k, "phone"):
		return Phone(s)
	case strings.Contains(k, "url") || strings.Contains(k, "link") || k == "website" || k == "href":
		return URL(s)
	default:
		return Text(s)
	}
}
