package entity

import "github.com/shopspring/decimal"

// BillRecord is the fully populated result of parsing one bill document.
// Undetected signals are substituted with sentinels at assembly time
// (company "Unknown", month 1, year 1970, amount zero), so a record is never
// partially filled. A record is constructed once and never mutated.
type BillRecord struct {
	Company string
	Month   int
	Year    int
	Amount  decimal.Decimal
}
