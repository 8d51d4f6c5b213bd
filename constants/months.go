package constants

import "strings"

// MonthPattern is the regexp alternation for every month spelling the
// billing-period rules recognize: full names, 3-letter abbreviations, and
// "sept". Rules embed it so the vocabulary stays in one place.
const MonthPattern = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|` +
	`aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

var monthNumbers = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var monthNames = [...]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}

// MonthNumber maps a month name or abbreviation to its number (1-12).
func MonthNumber(name string) (int, bool) {
	n, ok := monthNumbers[strings.ToLower(strings.TrimSpace(name))]
	return n, ok
}

// MonthName converts a month number (1-12) to the full English month name.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Unknown"
	}
	return monthNames[month]
}
