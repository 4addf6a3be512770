package writer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahaltools/sahal-ledger/internal/ledger"
	"github.com/sahaltools/sahal-ledger/internal/models"
)

func sampleLedger() *ledger.Ledger {
	return ledger.Aggregate([]models.Transaction{
		{Type: models.TypeSent, Category: models.CategoryPerson, Name: "Ali", Amount: decimal.RequireFromString("20.5")},
		{Type: models.TypeReceived, Category: models.CategoryPerson, Name: "Ali", Amount: decimal.RequireFromString("5.25")},
		{Type: models.TypeSent, Category: models.CategoryAirtime, Name: "252611234567", Amount: decimal.RequireFromString("3")},
	})
}

func TestWriteContacts(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.WriteContacts(&buf, sampleLedger().Contacts()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2 contacts)", len(rows))
	}

	wantHeader := "Name,Sent,Received,Net,Sent Count,Received Count,Sent Airtime,Sent Person,Received Airtime,Received Person"
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Errorf("header:\n got %s\nwant %s", got, wantHeader)
	}

	ali := rows[1]
	if ali[0] != "Ali" || ali[1] != "20.50" || ali[2] != "5.25" || ali[3] != "-15.25" {
		t.Errorf("Ali row: got %v", ali)
	}
	if ali[4] != "1" || ali[5] != "1" {
		t.Errorf("Ali counts: got %v", ali)
	}

	airtime := rows[2]
	if airtime[0] != "252611234567" || airtime[6] != "3.00" {
		t.Errorf("airtime row: got %v", airtime)
	}
}

func TestWriteRecords(t *testing.T) {
	date := time.Date(2023, time.October, 17, 13, 35, 59, 0, time.UTC)
	txs := []models.Transaction{
		{
			Type:     models.TypeSent,
			Category: models.CategoryPerson,
			Name:     "John Doe",
			Amount:   decimal.RequireFromString("50"),
			Date:     &date,
			RawBlock: "$50.00 ayaad u dirtay John Doe(",
		},
		{
			Type:     models.TypeReceived,
			Category: models.CategoryAirtime,
			Name:     "252611234567",
			Amount:   decimal.RequireFromString("5.5"),
		},
	}

	var buf bytes.Buffer
	w := &CSVWriter{IncludeRaw: true}
	if err := w.WriteRecords(&buf, txs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	first := rows[1]
	if first[0] != "sent" || first[1] != "person" || first[2] != "John Doe" || first[3] != "50.00" {
		t.Errorf("first row: got %v", first)
	}
	if first[4] != "2023-10-17T13:35:59Z" {
		t.Errorf("date column: got %q", first[4])
	}
	if first[5] != "$50.00 ayaad u dirtay John Doe(" {
		t.Errorf("raw column: got %q", first[5])
	}

	second := rows[2]
	if second[4] != "" {
		t.Errorf("missing date should render empty, got %q", second[4])
	}
}

func TestWriteRecordsWithoutRaw(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TypeSent, Category: models.CategoryPerson, Name: "Ali",
			Amount: decimal.RequireFromString("1"), RawBlock: "secret"},
	}
	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.WriteRecords(&buf, txs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "secret") {
		t.Error("raw block written despite IncludeRaw=false")
	}
}

func TestWriteUnmatched(t *testing.T) {
	var buf bytes.Buffer
	blocks := []string{"first weird block", "second weird block"}
	if err := WriteUnmatched(&buf, blocks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "first weird block\n\nsecond weird block\n\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
