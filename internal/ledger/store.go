// Package ledger persists parsed bill records into a per-company tabular
// spreadsheet. Each company gets its own sheet, created on first use with a
// fixed header row; every append saves the whole workbook. The store holds
// no open file between appends and performs no locking: callers processing
// multiple documents must serialize access themselves.
package ledger

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nmorita/billreader/constants"
	"github.com/nmorita/billreader/internal/entity"
)

// sheetNameLimit is the spreadsheet format's hard cap on sheet name length.
const sheetNameLimit = 31

const sheetSuffix = "_bill"

// Characters a sheet name may not contain.
var unsafeSheetChars = regexp.MustCompile(`[:\\/?*\[\]]`)

// Store appends bill records to the workbook at a fixed path, creating the
// workbook and per-company sheets as needed.
type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the workbook location this store writes to.
func (s *Store) Path() string {
	return s.path
}

// Append writes one record as a row in the sheet for rec.Company and saves
// the workbook. Identical records produce identical additional rows; no
// deduplication is performed.
func (s *Store) Append(rec entity.BillRecord) error {
	f, created, err := s.openOrCreate()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("ledger.close.failed", "path", s.path, "err", cerr)
		}
	}()

	sheet := normalizeSheetName(rec.Company)
	if err := ensureSheet(f, sheet, created); err != nil {
		return fmt.Errorf("ensure sheet %q: %w", sheet, err)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	row := []interface{}{constants.MonthName(rec.Month), rec.Year, rec.Amount.InexactFloat64()}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook %q: %w", s.path, err)
	}

	s.logger.Info("ledger.append.ok",
		"sheet", sheet,
		"company", rec.Company,
		"month", rec.Month,
		"year", rec.Year,
		"amount", rec.Amount.String(),
	)
	return nil
}

// openOrCreate loads the workbook at the store path, or starts a fresh one
// when the file does not exist yet. The second return value reports whether
// the workbook is brand new.
func (s *Store) openOrCreate() (*excelize.File, bool, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return excelize.NewFile(), true, nil
		}
		return nil, false, fmt.Errorf("stat workbook %q: %w", s.path, err)
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("open workbook %q: %w", s.path, err)
	}
	return f, false, nil
}

// ensureSheet makes sure the named sheet exists with its header row. A
// brand-new workbook still carries the default empty sheet; that one is
// renamed and reused rather than left dangling next to the first company.
func ensureSheet(f *excelize.File, sheet string, created bool) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx != -1 {
		return nil
	}

	if list := f.GetSheetList(); created && len(list) == 1 {
		if err := f.SetSheetName(list[0], sheet); err != nil {
			return err
		}
	} else {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	header := []interface{}{"month", "year", "amount"}
	return f.SetSheetRow(sheet, "A1", &header)
}

// normalizeSheetName turns a raw company name into a sheet-safe identifier:
// unsafe characters become underscores, blank names become "Unknown", a
// "_bill" suffix is added, and the result is cut to the sheet name limit.
// Distinct companies that normalize to the same name share a sheet; that is
// an accepted collision, not a bug.
func normalizeSheetName(company string) string {
	safe := strings.TrimSpace(unsafeSheetChars.ReplaceAllString(company, "_"))
	if safe == "" {
		safe = "Unknown"
	}
	name := safe + sheetSuffix
	if r := []rune(name); len(r) > sheetNameLimit {
		name = string(r[:sheetNameLimit])
	}
	return name
}
