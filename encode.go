package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persisted state is a single structured JSON document. Decoding goes
// through these typed documents and explicit validation: malformed data is
// rejected, never silently coerced.

type walletDoc struct {
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

type recordDoc struct {
	ID       int             `json:"id"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
	Wallet   string          `json:"wallet"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
}

type trashDoc struct {
	recordDoc
	DeletedAt  time.Time `json:"deletedAt"`
	RecordType string    `json:"recordType"`
}

type stateDoc struct {
	Wallets         []walletDoc                `json:"wallets"`
	Incomes         []recordDoc                `json:"incomes"`
	Expenses        []recordDoc                `json:"expenses"`
	Categories      []string                   `json:"categories"`
	DeletedRecords  []trashDoc                 `json:"deletedRecords"`
	Currencies      map[string]decimal.Decimal `json:"currencies,omitempty"`
	LastRatesUpdate string                     `json:"lastRatesUpdate,omitempty"`
}

func (d recordDoc) record() Record {
	return Record{
		ID:       d.ID,
		Currency: d.Currency,
		Amount:   d.Amount,
		Wallet:   d.Wallet,
		Category: d.Category,
		Date:     d.Date,
	}
}

func (d recordDoc) validate() error {
	if d.ID <= 0 {
		return fmt.Errorf("record id %d is not positive", d.ID)
	}
	if !d.Amount.IsPositive() {
		return fmt.Errorf("record #%d amount %s is not positive", d.ID, d.Amount)
	}
	if d.Wallet == "" {
		return fmt.Errorf("record #%d has no wallet", d.ID)
	}
	if d.Currency == "" {
		return fmt.Errorf("record #%d has no currency", d.ID)
	}
	return nil
}

func docOf(r Record) recordDoc {
	return recordDoc{
		ID:       r.ID,
		Currency: r.Currency,
		Amount:   r.Amount,
		Wallet:   r.Wallet,
		Category: r.Category,
		Date:     r.Date,
	}
}

// DecodeState decodes and validates a full state document into a Ledger.
// Any structural violation (non-positive amounts, duplicate ids within a
// kind, unknown record types, duplicate wallet names) is reported as
// ErrCorruptState.
func DecodeState(r io.Reader) (*Ledger, error) {
	var doc stateDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	l := NewLedger()

	for _, wd := range doc.Wallets {
		if wd.Name == "" || wd.Currency == "" {
			return nil, fmt.Errorf("%w: wallet with blank name or currency", ErrCorruptState)
		}
		if _, ok := l.index[wd.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate wallet %q", ErrCorruptState, wd.Name)
		}
		w := &Wallet{Name: wd.Name, Currency: wd.Currency, Balance: M(wd.Balance, wd.Currency)}
		l.wallets = append(l.wallets, w)
		l.index[wd.Name] = w
	}

	lists := []struct {
		kind RecordKind
		docs []recordDoc
	}{
		{Income, doc.Incomes},
		{Expense, doc.Expenses},
	}
	for _, list := range lists {
		seen := make(map[int]bool)
		for _, rd := range list.docs {
			if err := rd.validate(); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, list.kind.listName(), err)
			}
			if seen[rd.ID] {
				return nil, fmt.Errorf("%w: duplicate %s id %d", ErrCorruptState, list.kind, rd.ID)
			}
			seen[rd.ID] = true
			// A record may reference a deleted wallet (restored after its
			// wallet's cascade); the reference is soft, not validated here.
			*l.list(list.kind) = append(*l.list(list.kind), rd.record())
		}
	}

	for _, c := range doc.Categories {
		if c == "" {
			return nil, fmt.Errorf("%w: blank category", ErrCorruptState)
		}
		l.AddCategory(c)
	}

	for _, td := range doc.DeletedRecords {
		kind, err := parseListName(td.RecordType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
		}
		if err := td.validate(); err != nil {
			return nil, fmt.Errorf("%w: deletedRecords: %v", ErrCorruptState, err)
		}
		l.trash = append(l.trash, TrashEntry{Record: td.record(), Kind: kind, DeletedAt: td.DeletedAt})
	}

	if len(doc.Currencies) > 0 {
		at := time.Time{}
		if doc.LastRatesUpdate != "" {
			t, err := time.Parse(time.RFC3339, doc.LastRatesUpdate)
			if err != nil {
				return nil, fmt.Errorf("%w: lastRatesUpdate: %v", ErrCorruptState, err)
			}
			at = t
		}
		l.rates.Replace(doc.Currencies, at)
	}

	return l, nil
}

// EncodeState writes the full ledger state as an indented JSON document.
func EncodeState(w io.Writer, l *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	doc := stateDoc{
		Wallets:        make([]walletDoc, 0, len(l.wallets)),
		Incomes:        make([]recordDoc, 0, len(l.incomes)),
		Expenses:       make([]recordDoc, 0, len(l.expenses)),
		Categories:     l.categories,
		DeletedRecords: make([]trashDoc, 0, len(l.trash)),
	}
	for _, wl := range l.wallets {
		doc.Wallets = append(doc.Wallets, walletDoc{Name: wl.Name, Currency: wl.Currency, Balance: wl.Balance.Amount()})
	}
	for _, rec := range l.incomes {
		doc.Incomes = append(doc.Incomes, docOf(rec))
	}
	for _, rec := range l.expenses {
		doc.Expenses = append(doc.Expenses, docOf(rec))
	}
	for _, e := range l.trash {
		doc.DeletedRecords = append(doc.DeletedRecords, trashDoc{
			recordDoc:  docOf(e.Record),
			DeletedAt:  e.DeletedAt,
			RecordType: e.Kind.listName(),
		})
	}
	// The built-in default table is not worth persisting; only a snapshot
	// from a real refresh is.
	if rates, at := l.rates.Snapshot(); !at.IsZero() {
		doc.Currencies = rates
		doc.LastRatesUpdate = at.Format(time.RFC3339)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
