// Package writer serializes analysis results to CSV, JSON, and plain
// text. Monetary fields are rounded to two places here and nowhere else.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahaltools/sahal-ledger/internal/ledger"
	"github.com/sahaltools/sahal-ledger/internal/models"
)

// contactsHeader is the fixed column set of the per-counterparty export.
var contactsHeader = []string{
	"Name", "Sent", "Received", "Net", "Sent Count", "Received Count",
	"Sent Airtime", "Sent Person", "Received Airtime", "Received Person",
}

// recordsHeader is the fixed column set of the per-transaction export.
var recordsHeader = []string{"type", "category", "name", "amount", "date", "raw_block"}

// CSVWriter writes ledger exports in CSV format.
type CSVWriter struct {
	// IncludeRaw controls whether the records export carries the
	// original block text.
	IncludeRaw bool
}

// WriteContacts writes the per-counterparty table in first-seen order.
func (w *CSVWriter) WriteContacts(out io.Writer, contacts []*ledger.ContactStats) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(contactsHeader); err != nil {
		return fmt.Errorf("writing contacts header: %w", err)
	}
	for _, c := range contacts {
		row := []string{
			c.Name,
			formatAmount(c.Sent),
			formatAmount(c.Received),
			formatAmount(c.Net()),
			strconv.Itoa(c.SentCount),
			strconv.Itoa(c.ReceivedCount),
			formatAmount(c.SentAirtime),
			formatAmount(c.SentPerson),
			formatAmount(c.ReceivedAirtime),
			formatAmount(c.ReceivedPerson),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing contact row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRecords writes one row per classified transaction.
func (w *CSVWriter) WriteRecords(out io.Writer, transactions []models.Transaction) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(recordsHeader); err != nil {
		return fmt.Errorf("writing records header: %w", err)
	}
	for _, tx := range transactions {
		date := ""
		if tx.Date != nil {
			date = tx.Date.Format(time.RFC3339)
		}
		raw := ""
		if w.IncludeRaw {
			raw = tx.RawBlock
		}
		row := []string{
			string(tx.Type),
			string(tx.Category),
			tx.Name,
			formatAmount(tx.Amount),
			date,
			raw,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteContactsFile writes the per-counterparty table to a file.
func (w *CSVWriter) WriteContactsFile(path string, contacts []*ledger.ContactStats) error {
	return writeFile(path, func(f io.Writer) error {
		return w.WriteContacts(f, contacts)
	})
}

// WriteRecordsFile writes the per-transaction table to a file.
func (w *CSVWriter) WriteRecordsFile(path string, transactions []models.Transaction) error {
	return writeFile(path, func(f io.Writer) error {
		return w.WriteRecords(f, transactions)
	})
}

// WriteUnmatched dumps unmatched blocks as plain text, separated by blank
// lines, for manual review.
func WriteUnmatched(out io.Writer, blocks []string) error {
	for _, block := range blocks {
		if _, err := fmt.Fprintf(out, "%s\n\n", block); err != nil {
			return fmt.Errorf("writing unmatched block: %w", err)
		}
	}
	return nil
}

// WriteUnmatchedFile dumps unmatched blocks to a file.
func WriteUnmatchedFile(path string, blocks []string) error {
	return writeFile(path, func(f io.Writer) error {
		return WriteUnmatched(f, blocks)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
