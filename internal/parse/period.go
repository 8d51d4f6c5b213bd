package parse

import (
	"regexp"
	"strconv"

	"github.com/nmorita/billreader/constants"
)

// Period is the start month and year a bill covers.
type Period struct {
	Month int // 1..12
	Year  int
}

// periodRule pairs a compiled pattern with an extractor that turns its
// submatches into a Period.
type periodRule struct {
	name    string
	pattern *regexp.Regexp
	extract func(m []string) (Period, bool)
}

const monthPat = constants.MonthPattern

// periodRules is the detection cascade, in priority order. Rules are tried
// one at a time against the whole text; the first rule that matches (and
// whose extractor succeeds) short-circuits the rest. Regexp search is
// leftmost-first, so the later bare-pattern rules naturally pick the first
// occurrence in document order.
var periodRules = []periodRule{
	{
		name: "labeled-name-range",
		pattern: regexp.MustCompile(
			`(?i)billing period:\s+(` + monthPat + `)\s+(\d{1,2}),\s+(\d{4})\s+to\s+(` + monthPat + `)\s+(\d{1,2}),\s+(\d{4})`),
		extract: monthYearAt(1, 3),
	},
	{
		name: "dash-range-shared-year",
		pattern: regexp.MustCompile(
			`(?i)\b(` + monthPat + `)\s+(\d{1,2})\s*[-–]\s*(` + monthPat + `)\s+(\d{1,2}),?\s+(\d{4})`),
		extract: monthYearAt(1, 5),
	},
	{
		name: "bare-name-range",
		pattern: regexp.MustCompile(
			`(?i)\b(` + monthPat + `)\s+(\d{1,2}),\s+(\d{4})\s+to\s+(` + monthPat + `)\s+(\d{1,2}),\s+(\d{4})`),
		extract: monthYearAt(1, 3),
	},
	{
		name: "labeled-numeric-range",
		pattern: regexp.MustCompile(
			`(?i)billing period[:\s]*(\d{1,2})[/-](\d{1,2})[/-](\d{4}).{0,40}?(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
		extract: numericMonthYearAt(1, 3),
	},
	{
		name: "labeled-month-year",
		pattern: regexp.MustCompile(
			`(?i)(?:statement\s+date|billing\s+period|statement\s+period)[:\s]+(` + monthPat + `)\s+(\d{4})`),
		extract: monthYearAt(1, 2),
	},
	{
		name:    "bare-month-year",
		pattern: regexp.MustCompile(`(?i)\b(` + monthPat + `)\s+(\d{4})\b`),
		extract: monthYearAt(1, 2),
	},
	{
		name:    "bare-numeric-month-year",
		pattern: regexp.MustCompile(`\b(0?[1-9]|1[0-2])[/-](\d{4})\b`),
		extract: numericMonthYearAt(1, 2),
	},
}

// monthYearAt builds an extractor reading a month name from group m and a
// year from group y.
func monthYearAt(m, y int) func([]string) (Period, bool) {
	return func(groups []string) (Period, bool) {
		num, ok := constants.MonthNumber(groups[m])
		if !ok {
			return Period{}, false
		}
		year, err := strconv.Atoi(groups[y])
		if err != nil {
			return Period{}, false
		}
		return Period{Month: num, Year: year}, true
	}
}

// numericMonthYearAt builds an extractor reading a numeric month from group
// m and a year from group y. The month digits are used as-is.
func numericMonthYearAt(m, y int) func([]string) (Period, bool) {
	return func(groups []string) (Period, bool) {
		num, err := strconv.Atoi(groups[m])
		if err != nil {
			return Period{}, false
		}
		year, err := strconv.Atoi(groups[y])
		if err != nil {
			return Period{}, false
		}
		return Period{Month: num, Year: year}, true
	}
}

// DetectPeriod maps raw bill text to the billing period's start month and
// year via the rule cascade. Returns false when no rule matches; the caller
// substitutes sentinels.
func DetectPeriod(text string) (Period, bool) {
	for _, rule := range periodRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if p, ok := rule.extract(m); ok {
			return p, true
		}
	}
	return Period{}, false
}
