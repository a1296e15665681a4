package tracker

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// Wallet is a named store of funds in a single currency. The balance is the
// single source of truth for funds available and is mutated only through the
// ledger's posting and reversal operations.
type Wallet struct {
	Name     string
	Currency string
	Balance  Money
}

// AddWallet creates a new wallet with the given starting balance.
// It fails with ErrInvalidInput on a blank name or currency, and with
// ErrDuplicateWallet if the name is already taken.
func (l *Ledger) AddWallet(name, currency string, initial decimal.Decimal) (Wallet, error) {
	name = strings.TrimSpace(name)
	currency = strings.TrimSpace(currency)
	if name == "" {
		return Wallet{}, fmt.Errorf("wallet name is blank: %w", ErrInvalidInput)
	}
	if currency == "" {
		return Wallet{}, fmt.Errorf("wallet currency is blank: %w", ErrInvalidInput)
	}
	if _, ok := l.index[name]; ok {
		return Wallet{}, fmt.Errorf("wallet %q: %w", name, ErrDuplicateWallet)
	}

	w := &Wallet{Name: name, Currency: currency, Balance: M(initial, currency)}
	l.wallets = append(l.wallets, w)
	l.index[name] = w
	return *w, nil
}

// DeleteWallet removes a wallet by name. Every active record referencing the
// wallet is moved to Trash first, so trash bookkeeping stays consistent and
// no active record is left pointing at a missing wallet.
func (l *Ledger) DeleteWallet(name string) error {
	if _, ok := l.index[name]; !ok {
		return fmt.Errorf("wallet %q: %w", name, ErrWalletNotFound)
	}

	// Cascade active records into Trash before the wallet itself goes away.
	for _, kind := range []RecordKind{Income, Expense} {
		list := l.list(kind)
		// Collect ids first: trashing mutates the list being scanned.
		var ids []int
		for _, rec := range *list {
			if rec.Wallet == name {
				ids = append(ids, rec.ID)
			}
		}
		for _, id := range ids {
			if err := l.TrashRecord(kind, id); err != nil {
				return fmt.Errorf("cascading %s #%d of wallet %q: %w", kind, id, name, err)
			}
		}
	}

	delete(l.index, name)
	for i, w := range l.wallets {
		if w.Name == name {
			l.wallets = append(l.wallets[:i], l.wallets[i+1:]...)
			break
		}
	}
	return nil
}

// Wallet returns a copy of the named wallet.
func (l *Ledger) Wallet(name string) (Wallet, bool) {
	w, ok := l.index[name]
	if !ok {
		return Wallet{}, false
	}
	return *w, true
}

// Wallets iterates over wallet copies in creation order.
func (l *Ledger) Wallets() iter.Seq[Wallet] {
	return func(yield func(Wallet) bool) {
		for _, w := range l.wallets {
			if !yield(*w) {
				return
			}
		}
	}
}

// TotalBalanceByCurrency sums wallet balances per currency code. There is no
// cross-currency conversion: a USD wallet and a EUR wallet end up under
// separate keys.
func (l *Ledger) TotalBalanceByCurrency() map[string]Money {
	totals := make(map[string]Money)
	for _, w := range l.wallets {
		totals[w.Currency] = totals[w.Currency].Add(w.Balance)
	}
	return totals
}

// ValueInReference values a wallet balance in the table's reference currency
// using the latest known rate. It is a pure display helper: balances are
// always stored in the wallet's own currency.
func ValueInReference(w Wallet, rates *RateTable) Money {
	return w.Balance.Convert(rates.Rate(w.Currency), rates.Reference())
}
