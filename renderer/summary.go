// Package renderer turns ledger snapshots into markdown documents suitable
// for terminal display or plain-text export.
package renderer

import (
	"bytes"
	"fmt"

	tracker "github.com/Qvart2/FinanceTracker"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a full summary report: wallets with their
// reference valuation, totals per currency, and active record totals.
func SummaryMarkdown(s *tracker.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Finance Summary on %s", s.Date.Format("2006-01-02")))

	doc.H2("Wallets")
	walletRows := make([][]string, 0, len(s.Wallets))
	for _, w := range s.Wallets {
		walletRows = append(walletRows, []string{w.Name, w.Balance.String(), w.Reference.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Wallet", "Balance", "Value in " + s.Reference},
		Rows:   walletRows,
	})
	doc.PlainText(fmt.Sprintf("Total value: %s", s.TotalInReference))

	doc.H2("Totals by Currency")
	doc.Table(totalsTable(s.Totals))

	doc.H2(fmt.Sprintf("Incomes (%d active)", s.ActiveIncomes))
	doc.Table(totalsTable(s.Incomes))

	doc.H2(fmt.Sprintf("Expenses (%d active)", s.ActiveExpenses))
	doc.Table(totalsTable(s.Expenses))

	if s.Trashed > 0 {
		doc.PlainText(fmt.Sprintf("%d record(s) in trash.", s.Trashed))
	}

	return doc.String()
}

func totalsTable(totals []tracker.CurrencyTotal) md.TableSet {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Currency, t.Total.String()})
	}
	return md.TableSet{
		Header: []string{"Currency", "Total"},
		Rows:   rows,
	}
}
