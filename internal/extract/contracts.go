package extract

import (
	"context"
	"time"
)

// TextExtractor turns a document on disk into a single flattened string of
// page text. Implementations must never fail per-page: an undecodable page
// contributes an empty string and a warning, not an error.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextResult, error)
}

type TextResult struct {
	Text     string
	Pages    int
	Duration time.Duration
	Warnings []string
}
