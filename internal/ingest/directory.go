package ingest

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nmorita/billreader/constants"
)

// PathError records a path that could not be resolved, without aborting the
// batch.
type PathError struct {
	Path string
	Err  string
}

// Stats aggregates one resolution pass over the argument list.
type Stats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
	Errors  []PathError
}

// ResolvePDFs expands files and directories into the ordered list of PDF
// documents to process. Directories are walked recursively; WalkDir visits
// entries in lexical order, so batch output is stable across runs. Hidden
// files and directories are skipped. Unresolvable paths are recorded in
// Stats and the walk continues.
func ResolvePDFs(paths []string) ([]string, Stats) {
	var files []string
	var stats Stats

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			stats.Scanned++
			stats.Failed++
			stats.Errors = append(stats.Errors, PathError{Path: p, Err: err.Error()})
			continue
		}

		if !info.IsDir() {
			stats.Scanned++
			if isPDF(p) {
				stats.Matched++
				files = append(files, p)
			}
			continue
		}

		walkErr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			stats.Scanned++
			if err != nil {
				stats.Failed++
				stats.Errors = append(stats.Errors, PathError{Path: path, Err: err.Error()})
				return nil // continue walking
			}
			if isHidden(path) && path != p {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if isPDF(path) {
				stats.Matched++
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			stats.Failed++
			stats.Errors = append(stats.Errors, PathError{Path: p, Err: walkErr.Error()})
		}
	}

	return files, stats
}

func isPDF(path string) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
