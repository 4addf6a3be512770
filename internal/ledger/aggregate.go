// Package ledger folds transaction records into per-counterparty running
// statistics and derives whole-ledger summary metrics from them.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sahaltools/sahal-ledger/internal/models"
)

// ContactStats accumulates everything known about one counterparty.
// All sums are exact decimals; rounding happens only at export time.
type ContactStats struct {
	Name             string          `json:"name"`
	Sent             decimal.Decimal `json:"sent"`
	Received         decimal.Decimal `json:"received"`
	SentCount        int             `json:"sent_count"`
	ReceivedCount    int             `json:"received_count"`
	SentPerson       decimal.Decimal `json:"sent_person"`
	SentAirtime      decimal.Decimal `json:"sent_airtime"`
	SentBusiness     decimal.Decimal `json:"sent_business"`
	ReceivedPerson   decimal.Decimal `json:"received_person"`
	ReceivedAirtime  decimal.Decimal `json:"received_airtime"`
	ReceivedBusiness decimal.Decimal `json:"received_business"`
}

// Net is the received total minus the sent total. Negative means the
// account holder has sent this counterparty more than they got back.
func (c *ContactStats) Net() decimal.Decimal {
	return c.Received.Sub(c.Sent)
}

// TotalCount is the combined number of sent and received transactions.
func (c *ContactStats) TotalCount() int {
	return c.SentCount + c.ReceivedCount
}

// Ledger groups transactions by counterparty. Keys are compared with
// exact string equality, so "John Doe" and "john doe" are two contacts;
// callers wanting case-insensitive grouping must pre-normalize names.
type Ledger struct {
	contacts map[string]*ContactStats
	// order records first-seen insertion order so that ranking
	// tie-breaks are deterministic.
	order []string
}

// NewLedger returns an empty ledger. Each analysis run should use its
// own ledger; aggregates are never shared across runs.
func NewLedger() *Ledger {
	return &Ledger{contacts: make(map[string]*ContactStats)}
}

// Aggregate folds a record sequence into a fresh ledger. Sums are
// commutative: any permutation of records yields identical totals.
func Aggregate(transactions []models.Transaction) *Ledger {
	l := NewLedger()
	for _, tx := range transactions {
		l.Add(tx)
	}
	return l
}

// Add folds one transaction into the ledger, creating a zero-valued
// entry on first reference to the counterparty.
func (l *Ledger) Add(tx models.Transaction) {
	stats, ok := l.contacts[tx.Name]
	if !ok {
		stats = &ContactStats{Name: tx.Name}
		l.contacts[tx.Name] = stats
		l.order = append(l.order, tx.Name)
	}

	switch tx.Type {
	case models.TypeSent:
		stats.Sent = stats.Sent.Add(tx.Amount)
		stats.SentCount++
		switch tx.Category {
		case models.CategoryAirtime:
			stats.SentAirtime = stats.SentAirtime.Add(tx.Amount)
		case models.CategoryBusiness:
			stats.SentBusiness = stats.SentBusiness.Add(tx.Amount)
		default:
			stats.SentPerson = stats.SentPerson.Add(tx.Amount)
		}
	case models.TypeReceived:
		stats.Received = stats.Received.Add(tx.Amount)
		stats.ReceivedCount++
		switch tx.Category {
		case models.CategoryAirtime:
			stats.ReceivedAirtime = stats.ReceivedAirtime.Add(tx.Amount)
		case models.CategoryBusiness:
			stats.ReceivedBusiness = stats.ReceivedBusiness.Add(tx.Amount)
		default:
			stats.ReceivedPerson = stats.ReceivedPerson.Add(tx.Amount)
		}
	}
}

// Get returns the stats for a counterparty, or nil if unseen.
func (l *Ledger) Get(name string) *ContactStats {
	return l.contacts[name]
}

// Contacts returns all counterparty stats in first-seen order.
func (l *Ledger) Contacts() []*ContactStats {
	out := make([]*ContactStats, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.contacts[name])
	}
	return out
}

// Len is the number of distinct counterparties.
func (l *Ledger) Len() int {
	return len(l.order)
}
