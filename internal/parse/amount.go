package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountKeywords anchors phase 1 of amount detection: the first line
// matching any of these phrases defines the scan window.
var amountKeywords = regexp.MustCompile(`(?i)` +
	`total\s+amount\s+due|amount\s+due\s+now|amount\s+due|total\s+due|` +
	`current\s+charges|new\s+balance|statement\s+balance|payment\s+due|balance\s+due`)

var (
	// "$1,234.56": currency-marked, most reliable.
	currencyToken = regexp.MustCompile(`\$\s*(\d[\d,]*\.\d{2})`)
	// "1,234.56": bare decimal, accepted unless the surrounding context
	// looks like a phone number.
	decimalToken = regexp.MustCompile(`(\d[\d,]*\.\d{2})`)
	// digit-hyphen-digit nearby means phone number, not money.
	phoneContext = regexp.MustCompile(`\d-\d`)
	// cleanAmount keeps only digits, dot, and minus before parsing.
	nonAmountChars = regexp.MustCompile(`[^\d.\-]`)
)

var (
	amountCeiling = decimal.NewFromInt(100000)
	bareFloor     = decimal.RequireFromString("0.01")
)

// DetectAmount maps raw bill text to a single monetary amount. Phase 1
// scans for the first keyword line and pools candidates from the one-line
// window around it; phase 2 falls back to pooling candidates from the whole
// document. Either way the maximum candidate wins. Returns false when no
// candidate exists anywhere; the caller substitutes zero.
func DetectAmount(text string) (decimal.Decimal, bool) {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if !amountKeywords.MatchString(line) {
			continue
		}
		var candidates []decimal.Decimal
		for j := max(0, i-1); j < min(len(lines), i+2); j++ {
			candidates = append(candidates, lineCandidates(lines[j])...)
		}
		if len(candidates) > 0 {
			return maxDecimal(candidates), true
		}
		// Keyword window held no numbers; fall through to the global scan.
		break
	}

	var all []decimal.Decimal
	for _, line := range lines {
		all = append(all, lineCandidates(line)...)
	}
	if len(all) > 0 {
		return maxDecimal(all), true
	}
	return decimal.Decimal{}, false
}

// lineCandidates extracts every plausible monetary value from one line.
// A line may contribute multiple candidates; the caller pools them.
func lineCandidates(line string) []decimal.Decimal {
	var out []decimal.Decimal

	for _, m := range currencyToken.FindAllStringSubmatch(line, -1) {
		amt, ok := cleanAmount(m[1])
		if ok && amt.LessThan(amountCeiling) {
			out = append(out, amt)
		}
	}

	for _, idx := range decimalToken.FindAllStringSubmatchIndex(line, -1) {
		start, end := idx[0], idx[1]
		context := line[max(0, start-5):min(len(line), end+5)]
		if phoneContext.MatchString(context) {
			continue
		}
		amt, ok := cleanAmount(line[idx[2]:idx[3]])
		if ok && amt.GreaterThanOrEqual(bareFloor) && amt.LessThan(amountCeiling) {
			out = append(out, amt)
		}
	}

	return out
}

// cleanAmount strips everything that is not a digit, dot, or minus, and
// parses the remainder. Malformed tokens are skipped, never reported.
func cleanAmount(token string) (decimal.Decimal, bool) {
	cleaned := nonAmountChars.ReplaceAllString(token, "")
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	amt, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amt, true
}

func maxDecimal(vals []decimal.Decimal) decimal.Decimal {
	best := vals[0]
	for _, v := range vals[1:] {
		if v.GreaterThan(best) {
			best = v
		}
	}
	return best
}

