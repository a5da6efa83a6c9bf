package validator

import (
	"fmt"
	"strings"

	"github.com/proveo/clientkit/pkg/sanitizer"
)

// Required validates that a string is non-empty after trimming.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// ValidEmail validates that a value is acceptable to the email
// sanitizer, i.e. it survives canonicalization.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return sanitizer.Email(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid email address",
		},
	}
}

// ValidURL validates that a value is an accepted http(s) URL or a
// root-relative path.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return sanitizer.URL(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid URL",
		},
	}
}

// MaxLen validates that a string does not exceed max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len([]rune(value)) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", max),
		},
	}
}
