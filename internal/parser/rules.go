package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sahaltools/sahal-ledger/internal/models"
)

// Rule binds a notification phrase pattern to the transaction it
// describes. Every pattern captures the amount as group 1 and the
// counterparty as group 2.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Type     models.TransactionType
	Category models.Category
}

// rules is the classification table. Order is priority: the first rule
// whose match survives validation wins and later rules are not tried.
var rules = []Rule{
	{
		Name:     "sent-person",
		Pattern:  regexp.MustCompile(`\$ ?([\d.]+) ayaad u dirtay (.+?)\(`),
		Type:     models.TypeSent,
		Category: models.CategoryPerson,
	},
	{
		Name:     "sent-airtime",
		Pattern:  regexp.MustCompile(`Waxaad \$([\d.]+) ugu shubtay (\d{9,})`),
		Type:     models.TypeSent,
		Category: models.CategoryAirtime,
	},
	{
		Name:     "received-person",
		Pattern:  regexp.MustCompile(`Waxaad \$([\d.]+) ka heshay (.+?)\(`),
		Type:     models.TypeReceived,
		Category: models.CategoryPerson,
	},
	{
		Name:     "received-airtime",
		Pattern:  regexp.MustCompile(`You have received airtime of \$([\d.]+) from (\d{9,})`),
		Type:     models.TypeReceived,
		Category: models.CategoryAirtime,
	},
	{
		// Business payments repeat the "ayaad u dirtay" phrasing with a
		// reference number and sometimes the till's phone number.
		Name:     "sent-business",
		Pattern:  regexp.MustCompile(`\$ ?([\d.]+) ayaad u dirtay (.+?)(?: \d{9,})?,? (?:REF|Ref)[:.]? ?\d+`),
		Type:     models.TypeSent,
		Category: models.CategoryBusiness,
	},
}

// phonePattern validates airtime counterparties: digits only, at least
// nine of them.
var phonePattern = regexp.MustCompile(`^\d{9,}$`)

// Classify matches a block against the rule table and returns the
// resulting transaction, or false if no rule produced a valid match.
// A rule whose amount fails to parse as a positive decimal, or whose
// airtime counterparty is not a valid phone number, is treated as a
// non-match and the next rule is tried.
func Classify(block string) (models.Transaction, bool) {
	for _, rule := range rules {
		m := rule.Pattern.FindStringSubmatch(block)
		if m == nil {
			continue
		}

		amount, err := decimal.NewFromString(m[1])
		if err != nil || !amount.IsPositive() {
			continue
		}

		name := strings.TrimSpace(m[2])
		if rule.Category == models.CategoryAirtime {
			if !phonePattern.MatchString(name) {
				continue
			}
		} else {
			name = strings.TrimRight(name, " \t,.:;")
		}

		return models.Transaction{
			Type:     rule.Type,
			Category: rule.Category,
			Name:     name,
			Amount:   amount,
		}, true
	}
	return models.Transaction{}, false
}

// RuleNames returns the names of the classification rules in priority
// order.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}
