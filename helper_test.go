package tracker

import (
	"testing"

	"github.com/shopspring/decimal"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// d is a helper for test to create a decimal from const
func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// newTestLedger creates a ledger with one USD wallet "W" holding 100 and a
// "food" category, the base scenario most lifecycle tests start from.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	if _, err := l.AddWallet("W", "USD", d(100)); err != nil {
		t.Fatalf("AddWallet(W) = %v", err)
	}
	l.AddCategory("food")
	return l
}

// balance returns the wallet balance, failing the test if the wallet is gone.
func balance(t *testing.T, l *Ledger, name string) Money {
	t.Helper()
	w, ok := l.Wallet(name)
	if !ok {
		t.Fatalf("wallet %q not found", name)
	}
	return w.Balance
}

// activeIDs collects the ids of active records of a kind.
func activeIDs(l *Ledger, kind RecordKind) []int {
	var ids []int
	for rec := range l.Records(kind) {
		ids = append(ids, rec.ID)
	}
	return ids
}
