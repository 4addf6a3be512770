package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sahaltools/sahal-ledger/internal/models"
)

// DefaultTopN is how many entries each ranked view holds unless the
// caller asks for more.
const DefaultTopN = 5

// ContactAmount is one row of a ranked view.
type ContactAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ContactActivity is one row of the most-active ranking.
type ContactActivity struct {
	Name         string          `json:"name"`
	Transactions int             `json:"transactions"`
	Net          decimal.Decimal `json:"net"`
}

// Summary holds whole-ledger metrics derived from the aggregate table.
type Summary struct {
	TotalSent         decimal.Decimal `json:"total_sent"`
	TotalReceived     decimal.Decimal `json:"total_received"`
	TotalNet          decimal.Decimal `json:"total_net"`
	TotalTransactions int             `json:"total_transactions"`
	UniqueContacts    int             `json:"unique_contacts"`
	// AvgTransaction is (sent+received)/count, zero when there are no
	// transactions.
	AvgTransaction decimal.Decimal `json:"avg_transaction_amount"`

	TopSenders   []ContactAmount `json:"top_senders"`
	TopReceivers []ContactAmount `json:"top_receivers"`
	// OweMoney ranks contacts with negative net, most negative first:
	// the people the account holder owes.
	OweMoney []ContactAmount `json:"owe_money"`
	// OwedMoney ranks contacts with positive net, most positive first.
	OwedMoney  []ContactAmount   `json:"owed_money"`
	MostActive []ContactActivity `json:"most_active"`

	DateRange *models.DateRange `json:"date_range,omitempty"`
}

// BuildSummary computes summary metrics and ranked views from a ledger.
// topN bounds each ranked view; values below 1 fall back to DefaultTopN.
// Ranking ties preserve first-seen contact order.
func BuildSummary(l *Ledger, dateRange *models.DateRange, topN int) *Summary {
	if topN < 1 {
		topN = DefaultTopN
	}
	contacts := l.Contacts()

	s := &Summary{
		UniqueContacts: l.Len(),
		DateRange:      dateRange,
	}

	for _, c := range contacts {
		s.TotalSent = s.TotalSent.Add(c.Sent)
		s.TotalReceived = s.TotalReceived.Add(c.Received)
		s.TotalTransactions += c.TotalCount()
	}
	s.TotalNet = s.TotalReceived.Sub(s.TotalSent)
	if s.TotalTransactions > 0 {
		s.AvgTransaction = s.TotalSent.Add(s.TotalReceived).
			Div(decimal.NewFromInt(int64(s.TotalTransactions)))
	}

	s.TopSenders = rankByAmount(contacts, topN,
		func(c *ContactStats) decimal.Decimal { return c.Sent },
		func(a decimal.Decimal) bool { return a.IsPositive() })
	s.TopReceivers = rankByAmount(contacts, topN,
		func(c *ContactStats) decimal.Decimal { return c.Received },
		func(a decimal.Decimal) bool { return a.IsPositive() })
	s.OweMoney = rankByAmount(contacts, topN,
		func(c *ContactStats) decimal.Decimal { return c.Net().Neg() },
		func(a decimal.Decimal) bool { return a.IsPositive() })
	s.OwedMoney = rankByAmount(contacts, topN,
		func(c *ContactStats) decimal.Decimal { return c.Net() },
		func(a decimal.Decimal) bool { return a.IsPositive() })
	s.MostActive = rankByActivity(contacts, topN)

	return s
}

// rankByAmount sorts contacts by a derived amount, descending, keeping
// first-seen order for equal amounts, and returns at most topN rows that
// pass the include filter.
func rankByAmount(contacts []*ContactStats, topN int,
	amount func(*ContactStats) decimal.Decimal,
	include func(decimal.Decimal) bool,
) []ContactAmount {
	ranked := make([]*ContactStats, len(contacts))
	copy(ranked, contacts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return amount(ranked[i]).GreaterThan(amount(ranked[j]))
	})

	var out []ContactAmount
	for _, c := range ranked {
		a := amount(c)
		if !include(a) {
			continue
		}
		out = append(out, ContactAmount{Name: c.Name, Amount: a})
		if len(out) == topN {
			break
		}
	}
	return out
}

// rankByActivity sorts contacts by total transaction count, descending,
// keeping first-seen order for ties.
func rankByActivity(contacts []*ContactStats, topN int) []ContactActivity {
	ranked := make([]*ContactStats, len(contacts))
	copy(ranked, contacts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCount() > ranked[j].TotalCount()
	})

	var out []ContactActivity
	for _, c := range ranked {
		if c.TotalCount() == 0 {
			continue
		}
		out = append(out, ContactActivity{
			Name:         c.Name,
			Transactions: c.TotalCount(),
			Net:          c.Net(),
		})
		if len(out) == topN {
			break
		}
	}
	return out
}
