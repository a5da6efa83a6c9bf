package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proveo/clientkit/pkg/sanitizer"
)

func TestEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims and lowercases",
			input:    "  FOO@BAR.COM ",
			expected: "foo@bar.com",
		},
		{
			name:     "valid address unchanged",
			input:    "maria.lopez@proveo.mx",
			expected: "maria.lopez@proveo.mx",
		},
		{
			name:     "plus addressing accepted",
			input:    "user+tag@example.com",
			expected: "user+tag@example.com",
		},
		{
			name:     "not an email",
			input:    "not-an-email",
			expected: "",
		},
		{
			name:     "missing tld",
			input:    "user@localhost",
			expected: "",
		},
		{
			name:     "embedded markup rejected",
			input:    "<script>@evil.com",
			expected: "",
		},
		{
			name:     "double at rejected",
			input:    "a@b@c.com",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Email(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "international format kept",
			input:    "+52 (55) 1234-5678",
			expected: "+52 (55) 1234-5678",
		},
		{
			name:     "letters dropped",
			input:    "call 555-0199 now",
			expected: " 555-0199 ",
		},
		{
			name:     "markup dropped",
			input:    "<b>555</b>",
			expected: "555",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Phone(tt.input))
		})
	}
}

func TestURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "https absolute unchanged",
			input:    "https://example.com/x",
			expected: "https://example.com/x",
		},
		{
			name:     "http absolute unchanged",
			input:    "http://example.com",
			expected: "http://example.com",
		},
		{
			name:     "root relative path unchanged",
			input:    "/publish/publish.html",
			expected: "/publish/publish.html",
		},
		{
			name:     "javascript scheme rejected",
			input:    "javascript:alert(1)",
			expected: "",
		},
		{
			name:     "mixed case javascript rejected",
			input:    "JaVaScRiPt:alert(1)",
			expected: "",
		},
		{
			name:     "tab-smuggled scheme rejected",
			input:    "java\tscript:alert(1)",
			expected: "",
		},
		{
			name:     "data scheme rejected",
			input:    "data:text/html,<script>x</script>",
			expected: "",
		},
		{
			name:     "vbscript scheme rejected",
			input:    "vbscript:msgbox(1)",
			expected: "",
		},
		{
			name:     "file scheme rejected",
			input:    "file:///etc/passwd",
			expected: "",
		},
		{
			name:     "about scheme rejected",
			input:    "about:blank",
			expected: "",
		},
		{
			name:     "scheme-relative rejected",
			input:    "//evil.com/x",
			expected: "",
		},
		{
			name:     "other scheme rejected",
			input:    "ftp://example.com/file",
			expected: "",
		},
		{
			name:     "relative without slash rejected",
			input:    "publish.html",
			expected: "",
		},
		{
			name:     "whitespace trimmed",
			input:    "  https://example.com  ",
			expected: "https://example.com",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.URL(tt.input))
		})
	}
}
