package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction from the account
// holder's point of view.
type TransactionType string

const (
	TypeSent     TransactionType = "sent"
	TypeReceived TransactionType = "received"
)

// IsValid checks if the transaction type is one of the known directions.
func (t TransactionType) IsValid() bool {
	return t == TypeSent || t == TypeReceived
}

// Category classifies what kind of counterparty a transaction involves.
type Category string

const (
	CategoryPerson   Category = "person"
	CategoryAirtime  Category = "airtime"
	CategoryBusiness Category = "business"
)

// IsValid checks if the category is one of the known kinds.
func (c Category) IsValid() bool {
	return c == CategoryPerson || c == CategoryAirtime || c == CategoryBusiness
}

// Transaction represents a single notification block that matched a
// classification rule.
type Transaction struct {
	Type     TransactionType `json:"type"`
	Category Category        `json:"category"`
	// Name is the counterparty: a display name, or a digit-only phone
	// number for airtime transfers.
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	// Date is nil when neither timestamp format was found in the block.
	Date *time.Time `json:"date,omitempty"`
	// BlockIndex is the 1-based position of the source block in the
	// transcript.
	BlockIndex int `json:"block_index"`
	// RawBlock is the original block text, retained for audit and export.
	RawBlock string `json:"raw_block,omitempty"`
}

// DateRange describes the span of all timestamps recovered from a
// transcript. A nil *DateRange means no block carried a parseable date.
type DateRange struct {
	Earliest time.Time `json:"earliest_date"`
	Latest   time.Time `json:"latest_date"`
	// SpanDays is the whole-day difference between Latest and Earliest.
	SpanDays int `json:"date_span_days"`
	// DatesFound counts every block that yielded a timestamp, including
	// blocks that did not classify as transactions.
	DatesFound int `json:"total_dates_found"`
}
