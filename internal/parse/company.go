package parse

import (
	"regexp"
	"strings"
)

// UnknownCompany is returned when no issuer signal is present at all.
const UnknownCompany = "Unknown"

// maxCompanyLen bounds the first-line fallback so a dense letterhead line
// does not become an unwieldy sheet name downstream.
const maxCompanyLen = 50

// issuerRule maps a letterhead/footer pattern to a canonical company name.
type issuerRule struct {
	pattern *regexp.Regexp
	name    string
}

// issuerRules is evaluated in order; the first match wins, so more specific
// issuers must stay above generic ones.
var issuerRules = []issuerRule{
	{regexp.MustCompile(`(?i)consolidated\s+edison|con\s*ed`), "ConEdison"},
	{regexp.MustCompile(`(?i)national\s+grid`), "National Grid"},
	{regexp.MustCompile(`(?i)bank\s+of\s+america|bofa`), "Bank of America"},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// DetectCompany maps raw bill text to a company label. Known issuers are
// matched against the rule table; otherwise the first non-blank line of the
// text is used, whitespace-collapsed and truncated. Always returns a
// non-empty string.
func DetectCompany(text string) string {
	for _, rule := range issuerRules {
		if rule.pattern.MatchString(text) {
			return rule.name
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = whitespaceRun.ReplaceAllString(line, " ")
		if r := []rune(line); len(r) > maxCompanyLen {
			line = string(r[:maxCompanyLen])
		}
		return line
	}

	return UnknownCompany
}
