package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nmorita/billreader/internal/common"
	"github.com/nmorita/billreader/internal/entity"
	"github.com/nmorita/billreader/internal/extract"
	"github.com/nmorita/billreader/internal/parse"
)

// RecordWriter appends a finished record to the ledger.
type RecordWriter interface {
	Append(rec entity.BillRecord) error
}

// Processor runs one document end to end: text extraction, field parsing,
// ledger append. It is synchronous and keeps no state across documents.
type Processor struct {
	logger    *slog.Logger
	extractor extract.TextExtractor
	writer    RecordWriter
}

func NewProcessor(logger *slog.Logger, extractor extract.TextExtractor, writer RecordWriter) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		writer:    writer,
	}
}

// ProcessFile parses the bill at path and appends the result to the ledger.
// Extraction heuristics never fail; only collaborator I/O (unreadable file,
// corrupt workbook) surfaces as an error. On a ledger failure the parsed
// record is still returned alongside the error.
func (p *Processor) ProcessFile(ctx context.Context, path string) (entity.BillRecord, error) {
	docID := uuid.New()
	start := time.Now()

	res, err := p.extractor.Extract(ctx, path)
	if err != nil {
		p.logger.Error("processor.extract.failed", "doc_id", docID, "path", path, "err", err)
		return entity.BillRecord{}, common.NewAppError("EXTRACT_ERROR", "extract text", err)
	}
	for _, w := range res.Warnings {
		p.logger.Warn("processor.extract.warning", "doc_id", docID, "path", path, "warning", w)
	}

	rec := parse.ParseBill(res.Text)
	p.logger.Debug("processor.parse.ok",
		"doc_id", docID,
		"company", rec.Company,
		"month", rec.Month,
		"year", rec.Year,
		"amount", rec.Amount.String(),
	)

	if err := p.writer.Append(rec); err != nil {
		p.logger.Error("processor.append.failed", "doc_id", docID, "path", path, "err", err)
		return rec, common.NewAppError("LEDGER_ERROR", "append to ledger", err)
	}

	p.logger.Info("processor.document.ok",
		"doc_id", docID,
		"path", path,
		"pages", res.Pages,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}
