// Package parser turns a SAHAL notification transcript into structured
// transaction records. Each block is classified against an ordered rule
// table and independently scanned for a timestamp; blocks that match no
// rule are kept for audit instead of being dropped.
package parser

import (
	"time"

	"github.com/sahaltools/sahal-ledger/internal/models"
	"github.com/sahaltools/sahal-ledger/internal/normalize"
)

// Result holds everything extracted from one transcript.
type Result struct {
	Transactions []models.Transaction
	// Unmatched contains blocks that satisfied no classification rule,
	// in document order.
	Unmatched []string
	// DateRange is nil when no block carried a parseable timestamp.
	DateRange *models.DateRange
	// BlockCount is the number of non-empty blocks found.
	BlockCount int
}

// Parse runs the full extraction pipeline on a raw transcript: banner
// cleanup, block splitting, per-block date extraction and classification,
// and date-range computation. A malformed block never aborts the run.
func Parse(text string) *Result {
	cleaned := normalize.Clean(text)
	blocks := normalize.SplitBlocks(cleaned)

	result := &Result{BlockCount: len(blocks)}
	var dates []time.Time

	for i, block := range blocks {
		var blockDate *time.Time
		if d, ok := ExtractDate(block); ok {
			dates = append(dates, d)
			blockDate = &d
		}

		tx, ok := Classify(block)
		if !ok {
			result.Unmatched = append(result.Unmatched, block)
			continue
		}
		tx.Date = blockDate
		tx.BlockIndex = i + 1
		tx.RawBlock = block
		result.Transactions = append(result.Transactions, tx)
	}

	result.DateRange = buildDateRange(dates)
	return result
}

// buildDateRange derives the earliest/latest span from all recovered
// timestamps. Returns nil when no dates were found.
func buildDateRange(dates []time.Time) *models.DateRange {
	if len(dates) == 0 {
		return nil
	}
	earliest, latest := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}
	return &models.DateRange{
		Earliest:   earliest,
		Latest:     latest,
		SpanDays:   int(latest.Sub(earliest).Hours() / 24),
		DatesFound: len(dates),
	}
}
