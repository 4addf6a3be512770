package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sahaltools/sahal-ledger/internal/ledger"
)

// Report is the JSON export schema: the full analysis of one transcript.
// The date range lives inside the summary block only.
type Report struct {
	Summary  *ledger.Summary        `json:"summary"`
	Contacts []*ledger.ContactStats `json:"contacts"`
	// UnmatchedBlocks carries blocks no rule could classify so that
	// gaps in pattern coverage stay auditable.
	UnmatchedBlocks []string  `json:"unmatched_blocks,omitempty"`
	ExportDate      time.Time `json:"export_date"`
}

// NewReport assembles a report from the pipeline outputs, stamping the
// export time.
func NewReport(summary *ledger.Summary, contacts []*ledger.ContactStats, unmatched []string) *Report {
	return &Report{
		Summary:         summary,
		Contacts:        contacts,
		UnmatchedBlocks: unmatched,
		ExportDate:      time.Now().UTC(),
	}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(out io.Writer, report *Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// WriteJSONFile writes the report as indented JSON to a file.
func WriteJSONFile(path string, report *Report) error {
	return writeFile(path, func(f io.Writer) error {
		return WriteJSON(f, report)
	})
}
