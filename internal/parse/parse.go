// Package parse is the heuristic text-to-fact extraction engine. It turns
// the flattened text of a bill PDF into a BillRecord via three independent
// resolvers (issuer, billing period, amount). Resolvers report absence
// explicitly; ParseBill is the single place where absence degrades to
// sentinel values, so extraction never fails.
package parse

import (
	"github.com/shopspring/decimal"

	"github.com/nmorita/billreader/internal/entity"
)

// Sentinel values substituted when a resolver reports no signal.
const (
	SentinelMonth = 1
	SentinelYear  = 1970
)

// ParseBill runs the three resolvers against the same text and assembles a
// fully populated record. No cross-validation is performed between fields.
func ParseBill(text string) entity.BillRecord {
	rec := entity.BillRecord{
		Company: DetectCompany(text),
		Month:   SentinelMonth,
		Year:    SentinelYear,
		Amount:  decimal.Zero,
	}

	if p, ok := DetectPeriod(text); ok {
		rec.Month = p.Month
		rec.Year = p.Year
	}
	if amt, ok := DetectAmount(text); ok {
		rec.Amount = amt
	}

	return rec
}
