package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/nmorita/billreader/internal/common"
	"github.com/nmorita/billreader/internal/core"
	"github.com/nmorita/billreader/internal/extract"
	"github.com/nmorita/billreader/internal/ingest"
	"github.com/nmorita/billreader/internal/ledger"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	cfg := common.LoadConfig()

	var (
		spreadsheet = flag.String("spreadsheet", cfg.Ledger.SpreadsheetPath, "path to the output spreadsheet")
	)
	flag.Usage = func() {
		printError("Usage: %s [flags] <pdf-or-directory> [more paths...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		printError("Error: at least one PDF file or directory is required\n")
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	extractor := extract.NewPDFExtractor(logger)
	store := ledger.NewStore(*spreadsheet, logger)
	processor := core.NewProcessor(logger, extractor, store)

	files, stats := ingest.ResolvePDFs(paths)
	for _, pe := range stats.Errors {
		logger.Error("ingest.path.failed", "path", pe.Path, "err", pe.Err)
		printError("Error resolving %s: %s\n", pe.Path, pe.Err)
	}
	logger.Info("ingest.resolved",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"failed", stats.Failed,
	)
	if len(files) == 0 {
		printError("Error: no PDF files found under the given paths\n")
		os.Exit(1)
	}

	processed := 0
	failures := 0
	for _, path := range files {
		fmt.Printf("Processing %s ...\n", path)
		rec, err := processor.ProcessFile(ctx, path)
		if err != nil {
			printError("  Failed: %v\n", err)
			failures++
			continue
		}
		fmt.Printf("  Parsed -> company=%q, month=%d, year=%d, amount=%s\n",
			rec.Company, rec.Month, rec.Year, rec.Amount.String())
		fmt.Printf("  Saved to %s.\n", store.Path())
		processed++
	}

	logger.Info("batch.complete",
		"files", len(files),
		"processed", processed,
		"failures", failures,
		"spreadsheet", store.Path(),
	)
	fmt.Printf("Done: %d processed, %d failed, ledger at %s\n", processed, failures, store.Path())

	if processed == 0 {
		os.Exit(1)
	}
}
