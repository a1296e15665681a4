package tracker

import (
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultReference is the reference currency used when none is configured.
const DefaultReference = "USD"

// Ledger owns the whole tracker state: wallets, the income and expense
// journals, the category registry, the trash and the currency table. It is
// an explicit state object passed to every operation; there is no ambient
// package-level state.
//
// All mutations are synchronous and complete before the next one begins;
// the only concurrent access in scope is read-side valuation against the
// rate table, which does its own locking.
type Ledger struct {
	wallets    []*Wallet
	index      map[string]*Wallet // wallets by name
	incomes    []Record
	expenses   []Record
	categories []string
	trash      []TrashEntry
	rates      *RateTable
}

// NewLedger creates an empty ledger with a default rate table.
func NewLedger() *Ledger {
	return &Ledger{
		wallets:    make([]*Wallet, 0),
		index:      make(map[string]*Wallet),
		incomes:    make([]Record, 0),
		expenses:   make([]Record, 0),
		categories: make([]string, 0),
		trash:      make([]TrashEntry, 0),
		rates:      NewRateTable(DefaultReference),
	}
}

// Rates returns the ledger's currency table.
func (l *Ledger) Rates() *RateTable { return l.rates }

// list returns the active record list of a kind. The pointer allows posting
// and trashing to mutate the backing slice.
func (l *Ledger) list(kind RecordKind) *[]Record {
	if kind == Expense {
		return &l.expenses
	}
	return &l.incomes
}

// Records iterates over the active records of a kind in posting order.
func (l *Ledger) Records(kind RecordKind) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, rec := range *l.list(kind) {
			if !yield(rec) {
				return
			}
		}
	}
}

// Record returns a copy of the active record of the given kind and id.
func (l *Ledger) Record(kind RecordKind, id int) (Record, bool) {
	for _, rec := range *l.list(kind) {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// nextFreeID allocates the smallest positive integer not used by any active
// record of the kind. Gaps left by trashed or purged records are reused
// before the sequence grows; this is a deliberate policy, not an accident of
// a counter.
func (l *Ledger) nextFreeID(kind RecordKind) int {
	used := make(map[int]bool)
	for _, rec := range *l.list(kind) {
		used[rec.ID] = true
	}
	for id := 1; ; id++ {
		if !used[id] {
			return id
		}
	}
}

// idInUse reports whether an active record of the kind holds the id.
func (l *Ledger) idInUse(kind RecordKind, id int) bool {
	_, ok := l.Record(kind, id)
	return ok
}

// PostRecord validates and appends a new income or expense record, applying
// its signed amount to the owning wallet's balance. The record's currency is
// copied from the wallet at creation time and never changes.
//
// All checks run before any mutation: a returned error leaves balances and
// journals untouched.
func (l *Ledger) PostRecord(kind RecordKind, walletName, category string, amount decimal.Decimal) (Record, error) {
	if !amount.IsPositive() {
		return Record{}, fmt.Errorf("amount %s must be positive: %w", amount, ErrInvalidAmount)
	}
	w, ok := l.index[walletName]
	if !ok {
		return Record{}, fmt.Errorf("wallet %q: %w", walletName, ErrWalletNotFound)
	}
	if !l.HasCategory(category) {
		return Record{}, fmt.Errorf("category %q: %w", category, ErrCategoryNotFound)
	}
	if kind == Expense && w.Balance.LessThan(M(amount, w.Currency)) {
		// Checked in the wallet's own currency, no conversion.
		return Record{}, fmt.Errorf("expense %s exceeds balance %s of wallet %q: %w",
			M(amount, w.Currency), w.Balance, walletName, ErrInsufficientFunds)
	}

	rec := Record{
		ID:       l.nextFreeID(kind),
		Currency: w.Currency,
		Amount:   amount,
		Wallet:   walletName,
		Category: category,
		Date:     time.Now(),
	}
	*l.list(kind) = append(*l.list(kind), rec)
	w.Balance = w.Balance.Add(rec.delta(kind))
	return rec, nil
}

// TrashRecord moves an active record into Trash, reversing its balance
// effect on the owning wallet. A missing wallet is tolerated silently (the
// whole-wallet cascade may already have removed it); the trash move proceeds
// and only the balance reversal is skipped.
func (l *Ledger) TrashRecord(kind RecordKind, id int) error {
	list := l.list(kind)
	at := -1
	for i, rec := range *list {
		if rec.ID == id {
			at = i
			break
		}
	}
	if at < 0 {
		return fmt.Errorf("%s #%d: %w", kind, id, ErrRecordNotFound)
	}

	rec := (*list)[at]
	if w, ok := l.index[rec.Wallet]; ok {
		w.Balance = w.Balance.Sub(rec.delta(kind))
	}
	*list = append((*list)[:at], (*list)[at+1:]...)
	l.trash = append(l.trash, TrashEntry{Record: rec, Kind: kind, DeletedAt: time.Now()})
	return nil
}
