package tracker

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// RateTable holds the latest known conversion rate per currency code,
// expressed relative to a fixed reference currency (the reference itself
// maps to 1). Unknown codes look up as 1.
//
// The table is refreshed out-of-band and replaced wholesale, never merged
// incrementally: an in-flight valuation read sees either the old table or
// the new one, never a partially updated mix.
type RateTable struct {
	mu        sync.RWMutex
	reference string
	rates     map[string]decimal.Decimal
	updated   time.Time

	group singleflight.Group
}

// NewRateTable creates a table holding only the built-in default rate
// {reference: 1}.
func NewRateTable(reference string) *RateTable {
	return &RateTable{
		reference: reference,
		rates:     map[string]decimal.Decimal{reference: decimal.NewFromInt(1)},
	}
}

// Reference returns the reference currency code.
func (t *RateTable) Reference() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.reference
}

// SetReference changes the reference currency and resets the table to the
// built-in default, since existing rates are relative to the old reference.
func (t *RateTable) SetReference(reference string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if reference == t.reference {
		return
	}
	t.reference = reference
	t.rates = map[string]decimal.Decimal{reference: decimal.NewFromInt(1)}
	t.updated = time.Time{}
}

// Rate returns the rate-to-reference for a currency code, defaulting to 1
// for unknown codes.
func (t *RateTable) Rate(code string) decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if r, ok := t.rates[code]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// Replace swaps the whole table for a new mapping, stamped with the refresh
// time. The reference currency always maps to 1 afterwards, whatever the
// provider said.
func (t *RateTable) Replace(rates map[string]decimal.Decimal, at time.Time) {
	next := make(map[string]decimal.Decimal, len(rates)+1)
	for code, r := range rates {
		next[code] = r
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	next[t.reference] = decimal.NewFromInt(1)
	t.rates = next
	t.updated = at
}

// Snapshot returns a copy of the current mapping and its refresh time, for
// persistence alongside the ledger state.
func (t *RateTable) Snapshot() (map[string]decimal.Decimal, time.Time) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rates := make(map[string]decimal.Decimal, len(t.rates))
	for code, r := range t.rates {
		rates[code] = r
	}
	return rates, t.updated
}

// LastUpdate returns the time of the last successful refresh, zero if the
// table still holds the built-in default.
func (t *RateTable) LastUpdate() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.updated
}

// Refresh fetches a fresh mapping and swaps it in. Concurrent refresh
// triggers collapse into a single in-flight fetch. On failure the previous
// table stays in effect and the error is reported as a recoverable
// condition, never a crash.
func (t *RateTable) Refresh(fetch func(reference string) (map[string]decimal.Decimal, error)) error {
	_, err, _ := t.group.Do("refresh", func() (any, error) {
		rates, err := fetch(t.Reference())
		if err != nil {
			return nil, err
		}
		t.Replace(rates, time.Now())
		return nil, nil
	})
	return err
}
