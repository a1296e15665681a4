package tracker

import (
	"maps"
	"slices"
	"time"
)

// WalletLine is one wallet in a summary, with its balance valued in the
// reference currency for display.
type WalletLine struct {
	Name      string
	Balance   Money
	Reference Money
}

// CurrencyTotal is a per-currency sum.
type CurrencyTotal struct {
	Currency string
	Total    Money
}

// Summary is a read-only snapshot of the ledger for reporting: wallets with
// balances and reference valuations, per-currency totals, and active
// income/expense totals. Building it mutates nothing.
type Summary struct {
	Date             time.Time
	Reference        string
	Wallets          []WalletLine
	Totals           []CurrencyTotal // wallet balances summed per currency
	TotalInReference Money
	Incomes          []CurrencyTotal // active income amounts per currency
	Expenses         []CurrencyTotal // active expense amounts per currency
	ActiveIncomes    int
	ActiveExpenses   int
	Trashed          int
}

// BuildSummary computes a summary of the current state, valuing balances
// with the ledger's rate table.
func (l *Ledger) BuildSummary() *Summary {
	s := &Summary{
		Date:      time.Now(),
		Reference: l.rates.Reference(),
		Trashed:   len(l.trash),
	}

	for w := range l.Wallets() {
		ref := ValueInReference(w, l.rates)
		s.Wallets = append(s.Wallets, WalletLine{Name: w.Name, Balance: w.Balance, Reference: ref})
		s.TotalInReference = s.TotalInReference.Add(ref)
	}
	s.Totals = sortedTotals(l.TotalBalanceByCurrency())

	incomes := make(map[string]Money)
	for rec := range l.Records(Income) {
		incomes[rec.Currency] = incomes[rec.Currency].Add(rec.Money())
		s.ActiveIncomes++
	}
	s.Incomes = sortedTotals(incomes)

	expenses := make(map[string]Money)
	for rec := range l.Records(Expense) {
		expenses[rec.Currency] = expenses[rec.Currency].Add(rec.Money())
		s.ActiveExpenses++
	}
	s.Expenses = sortedTotals(expenses)

	return s
}

func sortedTotals(byCurrency map[string]Money) []CurrencyTotal {
	codes := slices.Collect(maps.Keys(byCurrency))
	slices.Sort(codes)
	totals := make([]CurrencyTotal, 0, len(codes))
	for _, code := range codes {
		totals = append(totals, CurrencyTotal{Currency: code, Total: byCurrency[code]})
	}
	return totals
}
