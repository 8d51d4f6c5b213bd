package core

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmorita/billreader/internal/entity"
	"github.com/nmorita/billreader/internal/extract"
)

// stubExtractor returns canned text instead of reading a real PDF.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (extract.TextResult, error) {
	if s.err != nil {
		return extract.TextResult{}, s.err
	}
	return extract.TextResult{Text: s.text, Pages: 1}, nil
}

// captureWriter records appended bills in memory.
type captureWriter struct {
	records []entity.BillRecord
	err     error
}

func (w *captureWriter) Append(rec entity.BillRecord) error {
	if w.err != nil {
		return w.err
	}
	w.records = append(w.records, rec)
	return nil
}

func TestProcessor_ProcessFile(t *testing.T) {
	extractor := &stubExtractor{
		text: "Consolidated Edison\nBilling period: Jul 14, 2025 to Aug 05, 2025\nTotal Amount Due $123.45",
	}
	writer := &captureWriter{}
	p := NewProcessor(nil, extractor, writer)

	rec, err := p.ProcessFile(context.Background(), "bill.pdf")
	require.NoError(t, err)

	assert.Equal(t, "ConEdison", rec.Company)
	assert.Equal(t, 7, rec.Month)
	assert.Equal(t, 2025, rec.Year)
	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("123.45")))

	require.Len(t, writer.records, 1)
	assert.Equal(t, rec, writer.records[0])
}

func TestProcessor_ExtractFailureSkipsLedger(t *testing.T) {
	boom := errors.New("unreadable file")
	writer := &captureWriter{}
	p := NewProcessor(nil, &stubExtractor{err: boom}, writer)

	_, err := p.ProcessFile(context.Background(), "bad.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, writer.records)
}

func TestProcessor_LedgerFailureStillReturnsRecord(t *testing.T) {
	boom := errors.New("workbook locked")
	p := NewProcessor(nil, &stubExtractor{text: "Acme Power\nAmount due $10.00"}, &captureWriter{err: boom})

	rec, err := p.ProcessFile(context.Background(), "bill.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Acme Power", rec.Company)
}
