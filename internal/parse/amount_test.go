package parse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDetectAmount_KeywordWindow(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "amount on the keyword line",
			text: "Account summary\nTotal Amount Due: $45.67\nDue by Sep 1",
			want: "45.67",
		},
		{
			name: "amount on the line before the keyword",
			text: "$88.20\nAmount due now\nthank you",
			want: "88.20",
		},
		{
			name: "amount on the line after the keyword",
			text: "New Balance\n$312.09",
			want: "312.09",
		},
		{
			name: "maximum of pooled window candidates",
			text: "Previous balance $12.00\nTotal Due $150.25\nLate fee $5.00",
			want: "150.25",
		},
		{
			name: "bare decimal token in window",
			text: "Current charges\n73.50",
			want: "73.50",
		},
		{
			name: "window amount beats larger amount outside the window",
			text: "Total Amount Due: $45.67\nsee details below\n$999.00",
			want: "45.67",
		},
		{
			name: "candidates above ceiling are dropped",
			text: "Balance forward $123,456.00\nStatement balance $500.00",
			want: "500.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectAmount(tt.text)
			assert.True(t, ok)
			assert.True(t, got.Equal(amt(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDetectAmount_GlobalFallback(t *testing.T) {
	// No keyword anywhere: the maximum candidate from the whole document.
	got, ok := DetectAmount("charges $10.00\nadjustments $3.50\nusage $250.00")
	assert.True(t, ok)
	assert.True(t, got.Equal(amt("250.00")), "got %s", got)

	// A keyword line whose window holds no numbers also falls back to the
	// global scan.
	got, ok = DetectAmount("Amount Due\nto be determined\n\n$77.10")
	assert.True(t, ok)
	assert.True(t, got.Equal(amt("77.10")), "got %s", got)
}

func TestDetectAmount_PhoneNumberSuppression(t *testing.T) {
	// Phone-style tokens must not parse as money.
	for _, text := range []string{
		"Call 555-123-4567",
		"Customer service: 800-555-1234",
		"Ref 55-123.45",
	} {
		_, ok := DetectAmount(text)
		assert.False(t, ok, "text %q", text)
	}

	// A currency-marked amount still counts even with a phone number on the
	// same line.
	got, ok := DetectAmount("Amount due $42.00 questions? 800-555-1234")
	assert.True(t, ok)
	assert.True(t, got.Equal(amt("42.00")), "got %s", got)
}

func TestDetectAmount_Absent(t *testing.T) {
	for _, text := range []string{
		"",
		"no numbers here",
		"account 123456 page 2 of 4",
		"tiny 0.00 below the floor",
	} {
		_, ok := DetectAmount(text)
		assert.False(t, ok, "text %q", text)
	}
}

func TestDetectAmount_ThousandsSeparators(t *testing.T) {
	got, ok := DetectAmount("Total amount due $1,234.56")
	assert.True(t, ok)
	assert.True(t, got.Equal(amt("1234.56")), "got %s", got)
}
