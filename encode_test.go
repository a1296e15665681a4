package tracker

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// cmpOpts compare domain values by semantic equality rather than internal
// representation (decimals keep exponents, times keep monotonic clocks).
var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
}

func TestStateRoundTrip(t *testing.T) {
	l := NewLedger()
	if _, err := l.AddWallet("cash", "USD", d(100)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddWallet("travel", "EUR", d(50)); err != nil {
		t.Fatal(err)
	}
	l.AddCategory("food")
	l.AddCategory("rent")
	if _, err := l.PostRecord(Income, "cash", "food", d(20)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PostRecord(Expense, "travel", "rent", d(12.5)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PostRecord(Expense, "cash", "food", d(30)); err != nil {
		t.Fatal(err)
	}
	if err := l.TrashRecord(Expense, 2); err != nil {
		t.Fatal(err)
	}
	l.Rates().Replace(map[string]decimal.Decimal{"EUR": d(1.08)}, time.Now())

	var buf bytes.Buffer
	if err := EncodeState(&buf, l); err != nil {
		t.Fatalf("EncodeState = %v", err)
	}
	got, err := DecodeState(&buf)
	if err != nil {
		t.Fatalf("DecodeState = %v", err)
	}

	if diff := cmp.Diff(slices.Collect(l.Wallets()), slices.Collect(got.Wallets()), cmpOpts...); diff != "" {
		t.Errorf("wallets mismatch (-want +got):\n%s", diff)
	}
	for _, kind := range []RecordKind{Income, Expense} {
		if diff := cmp.Diff(slices.Collect(l.Records(kind)), slices.Collect(got.Records(kind)), cmpOpts...); diff != "" {
			t.Errorf("%s records mismatch (-want +got):\n%s", kind, diff)
		}
	}
	if diff := cmp.Diff(slices.Collect(l.Categories()), slices.Collect(got.Categories())); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(slices.Collect(l.Trash()), slices.Collect(got.Trash()), cmpOpts...); diff != "" {
		t.Errorf("trash mismatch (-want +got):\n%s", diff)
	}
	if got.Rates().Rate("EUR").Cmp(d(1.08)) != 0 {
		t.Errorf("EUR rate after round trip = %s, want 1.08", got.Rates().Rate("EUR"))
	}
}

func TestDecodeState_rejects(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "not json",
			doc:  `{"wallets": [`,
		},
		{
			name: "blank wallet name",
			doc:  `{"wallets": [{"name": "", "currency": "USD", "balance": 1}]}`,
		},
		{
			name: "duplicate wallet",
			doc: `{"wallets": [
				{"name": "W", "currency": "USD", "balance": 1},
				{"name": "W", "currency": "EUR", "balance": 2}]}`,
		},
		{
			name: "non-positive amount",
			doc: `{"wallets": [{"name": "W", "currency": "USD", "balance": 1}],
				"incomes": [{"id": 1, "currency": "USD", "amount": 0, "wallet": "W", "category": "c", "date": "2025-01-01T00:00:00Z"}]}`,
		},
		{
			name: "duplicate income ids",
			doc: `{"wallets": [{"name": "W", "currency": "USD", "balance": 1}],
				"incomes": [
					{"id": 1, "currency": "USD", "amount": 2, "wallet": "W", "category": "c", "date": "2025-01-01T00:00:00Z"},
					{"id": 1, "currency": "USD", "amount": 3, "wallet": "W", "category": "c", "date": "2025-01-02T00:00:00Z"}]}`,
		},
		{
			name: "unknown record type in trash",
			doc: `{"deletedRecords": [{"id": 1, "currency": "USD", "amount": 2, "wallet": "W",
				"category": "c", "date": "2025-01-01T00:00:00Z",
				"deletedAt": "2025-01-02T00:00:00Z", "recordType": "refunds"}]}`,
		},
		{
			name: "blank category",
			doc:  `{"categories": ["food", ""]}`,
		},
		{
			name: "bad rates timestamp",
			doc:  `{"currencies": {"EUR": 1.08}, "lastRatesUpdate": "yesterday"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeState(strings.NewReader(tc.doc))
			if !errors.Is(err, ErrCorruptState) {
				t.Fatalf("DecodeState() error = %v, want %v", err, ErrCorruptState)
			}
		})
	}
}

func TestDecodeState_emptyDocument(t *testing.T) {
	l, err := DecodeState(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("DecodeState({}) = %v", err)
	}
	if got := slices.Collect(l.Wallets()); len(got) != 0 {
		t.Errorf("wallets = %v, want none", got)
	}
	if got := l.Rates().Rate("EUR"); !got.Equal(d(1)) {
		t.Errorf("rate without currencies field = %s, want default 1", got)
	}
}
