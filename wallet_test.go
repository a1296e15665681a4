package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLedger_AddWallet(t *testing.T) {
	testCases := []struct {
		name     string
		wallet   string
		currency string
		wantErr  error
	}{
		{name: "valid", wallet: "cash", currency: "USD"},
		{name: "blank name", wallet: "  ", currency: "USD", wantErr: ErrInvalidInput},
		{name: "blank currency", wallet: "cash", currency: "", wantErr: ErrInvalidInput},
		{name: "duplicate name", wallet: "W", currency: "EUR", wantErr: ErrDuplicateWallet},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t)

			w, err := l.AddWallet(tc.wallet, tc.currency, d(10))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("AddWallet() error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				return
			}
			if !w.Balance.Equal(USD(10)) {
				t.Errorf("initial balance = %s, want %s", w.Balance, USD(10))
			}
			if _, ok := l.Wallet(tc.wallet); !ok {
				t.Errorf("wallet %q not stored", tc.wallet)
			}
		})
	}
}

func TestLedger_TotalBalanceByCurrency(t *testing.T) {
	l := NewLedger()
	for _, w := range []struct {
		name, cur string
		balance   float64
	}{
		{"cash", "USD", 100},
		{"bank", "USD", 250.5},
		{"travel", "EUR", 80},
	} {
		if _, err := l.AddWallet(w.name, w.cur, d(w.balance)); err != nil {
			t.Fatalf("AddWallet(%s) = %v", w.name, err)
		}
	}

	totals := l.TotalBalanceByCurrency()
	if len(totals) != 2 {
		t.Fatalf("currencies = %d, want 2", len(totals))
	}
	// No cross-currency conversion: USD and EUR stay under separate keys.
	if !totals["USD"].Equal(USD(350.5)) {
		t.Errorf("USD total = %s, want %s", totals["USD"], USD(350.5))
	}
	if !totals["EUR"].Equal(EUR(80)) {
		t.Errorf("EUR total = %s, want %s", totals["EUR"], EUR(80))
	}
}

func TestValueInReference(t *testing.T) {
	rates := NewRateTable("USD")
	rates.Replace(map[string]decimal.Decimal{"EUR": d(1.1)}, time.Now())

	w := Wallet{Name: "travel", Currency: "EUR", Balance: EUR(100)}
	if got := ValueInReference(w, rates); !got.Equal(USD(110)) {
		t.Errorf("ValueInReference = %s, want %s", got, USD(110))
	}

	// Unknown currencies default to rate 1.
	w = Wallet{Name: "mystery", Currency: "XXX", Balance: M(42, "XXX")}
	if got := ValueInReference(w, rates); !got.Equal(USD(42)) {
		t.Errorf("ValueInReference with unknown code = %s, want %s", got, USD(42))
	}
}
