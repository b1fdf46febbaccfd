package nav

import (
	"net/url"
	"regexp"
	"strings"
)

// RedirectException documents a legitimate server-side redirect: links whose
// expected href contains Expected are allowed to land on a URL containing
// (or path-suffix-matching) Actual.
type RedirectException struct {
	Expected string `yaml:"expected"`
	Actual   string `yaml:"actual"`
}

// Matcher compares expected against actual URLs, tolerating locale-prefix
// insertion, query-string noise, and a fixed table of known redirects.
type Matcher struct {
	exceptions []RedirectException
}

func NewMatcher(exceptions []RedirectException) *Matcher {
	return &Matcher{exceptions: exceptions}
}

// Locale prefixes like /en-AE/ or /ar/ injected by the site's i18n layer.
var localePrefix = regexp.MustCompile(`^/[a-z]{2}(-[A-Z]{2})?/`)

// Matches reports whether actual is an acceptable landing URL for the
// authored href expected. The exception table takes precedence over the
// generic comparison; generic comparison is containment on trimmed paths so
// the site may append deeper sub-paths.
func (m *Matcher) Matches(expected, actual string) bool {
	for _, ex := range m.exceptions {
		if !strings.Contains(expected, ex.Expected) {
			continue
		}
		if strings.Contains(actual, ex.Actual) ||
			strings.HasSuffix(strings.TrimRight(actual, "/"), strings.TrimRight(ex.Actual, "/")) {
			return true
		}
	}

	expectedPath := pathOf(expected)
	actualPath := pathOf(actual)
	actualNoLocale := localePrefix.ReplaceAllString(actualPath, "/")

	// An empty expected path must not trivially match everything via
	// containment; it only succeeds against an equally empty actual.
	if expectedPath == "" {
		return actualPath == "" || actualNoLocale == ""
	}

	return strings.Contains(actualPath, expectedPath) ||
		strings.Contains(actualNoLocale, expectedPath)
}

// pathOf extracts the path component, discarding query and fragment and
// stripping any trailing slash.
func pathOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return strings.TrimRight(raw, "/")
	}
	return strings.TrimRight(u.Path, "/")
}
