package renderer

import (
	"strings"
	"testing"
	"time"

	tracker "github.com/Qvart2/FinanceTracker"
)

func TestSummaryMarkdown(t *testing.T) {
	s := &tracker.Summary{
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Reference: "USD",
		Wallets: []tracker.WalletLine{
			{Name: "cash", Balance: tracker.M(90, "USD"), Reference: tracker.M(90, "USD")},
			{Name: "travel", Balance: tracker.M(40, "EUR"), Reference: tracker.M(44, "USD")},
		},
		Totals: []tracker.CurrencyTotal{
			{Currency: "EUR", Total: tracker.M(40, "EUR")},
			{Currency: "USD", Total: tracker.M(90, "USD")},
		},
		TotalInReference: tracker.M(134, "USD"),
		ActiveIncomes:    1,
		ActiveExpenses:   2,
		Trashed:          1,
	}

	doc := SummaryMarkdown(s)

	for _, want := range []string{
		"Finance Summary on 2026-03-14",
		"cash",
		"travel",
		"Value in USD",
		"Incomes (1 active)",
		"Expenses (2 active)",
		"1 record(s) in trash.",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("summary misses %q:\n%s", want, doc)
		}
	}
}

func TestRecordsMarkdown(t *testing.T) {
	records := []tracker.Record{
		{ID: 1, Currency: "USD", Wallet: "cash", Category: "food", Date: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}

	doc := RecordsMarkdown(tracker.Expense, records)
	for _, want := range []string{"expenses", "cash", "food", "2026-03-01"} {
		if !strings.Contains(doc, want) {
			t.Errorf("records table misses %q:\n%s", want, doc)
		}
	}
}

func TestTrashMarkdown(t *testing.T) {
	entries := []tracker.TrashEntry{
		{
			Record:    tracker.Record{ID: 2, Currency: "EUR", Wallet: "travel", Category: "fun"},
			Kind:      tracker.Income,
			DeletedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		},
	}

	doc := TrashMarkdown(entries)
	for _, want := range []string{"Trash", "income", "travel", "2026-03-02"} {
		if !strings.Contains(doc, want) {
			t.Errorf("trash table misses %q:\n%s", want, doc)
		}
	}
}
