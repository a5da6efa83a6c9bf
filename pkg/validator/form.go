package validator

import (
	"strings"

	"github.com/proveo/clientkit/pkg/sanitizer"
)

// requiredFormFields must be non-empty after sanitization. A required
// field that the sanitizer would silently empty is a hard error here,
// not an empty submission.
var requiredFormFields = []string{"name", "address", "description"}

// ValidateForm applies field-specific rules to a submitted form and
// returns the sanitized fields. It is the one place in the library
// where malformed input raises instead of degrading: the returned
// error is a ValidationErrors naming every offending field, first
// offender first, so callers can surface it to the user.
//
// Rules: name, address and description are required non-empty; a
// required field absent from the map fails the same way an empty one
// does. Email must canonicalize to a valid address when present; every
// other field passes through permissively, sanitized by its field
// name.
func ValidateForm(fields map[string]string) (map[string]string, error) {
	sanitized := make(map[string]string, len(fields))
	for key, value := range fields {
		sanitized[key] = sanitizeFormField(key, value)
	}

	var errs ValidationErrors
	for _, field := range requiredFormFields {
		if strings.TrimSpace(sanitized[field]) == "" {
			errs.Add(ValidationError{Field: field, Message: "field is required"})
		}
	}

	if value, ok := fields["email"]; ok && strings.TrimSpace(value) != "" {
		if sanitized["email"] == "" {
			errs.Add(ValidationError{Field: "email", Message: "invalid email address"})
		}
	}

	if !errs.IsEmpty() {
		return nil, errs
	}
	return sanitized, nil
}

// freeTextField is the pipeline for fields with no format of their
// own: escape first, then drop whitespace left behind by tag stripping.
var freeTextField = sanitizer.Compose(sanitizer.Text, strings.TrimSpace)

func sanitizeFormField(key, value string) string {
	k := strings.ToLower(key)
	switch {
	case strings.Contains(k, "email"):
		return sanitizer.Email(value)
	case strings.Contains(k, "phone"):
		return sanitizer.Phone(value)
	case strings.Contains(k, "url") || strings.Contains(k, "link") || k == "website":
		return sanitizer.URL(value)
	case k == "description":
		// Descriptions allow limited inline formatting.
		return sanitizer.HTML(value)
	default:
		return freeTextField(value)
	}
}
