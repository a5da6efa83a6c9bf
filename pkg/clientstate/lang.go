package clientstate

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no preference is stored or the stored
// value is invalid.
const DefaultLanguage = "es"

// supportedLanguages lists the deployment's languages, default first.
var supportedLanguages = []language.Tag{
	language.Spanish,
	language.English,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NormalizeLanguage maps an arbitrary language code onto the supported
// set. Region variants collapse to their base ("en-US" becomes "en");
// anything unparseable or unsupported falls back to the default.
func NormalizeLanguage(code string) string {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return DefaultLanguage
	}

	matched, _, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return DefaultLanguage
	}

	base, _ := matched.Base()
	return base.String()
}
