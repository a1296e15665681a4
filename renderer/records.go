package renderer

import (
	"bytes"
	"fmt"

	tracker "github.com/Qvart2/FinanceTracker"
	md "github.com/nao1215/markdown"
)

// RecordsMarkdown renders the active records of one kind as a table.
func RecordsMarkdown(kind tracker.RecordKind, records []tracker.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%ss", kind))

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.Date.Format("2006-01-02"),
			rec.Wallet,
			rec.Category,
			rec.Money().String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Date", "Wallet", "Category", "Amount"},
		Rows:   rows,
	})

	return doc.String()
}

// TrashMarkdown renders the trash content, including the original kind that
// a restore would put each record back into.
func TrashMarkdown(entries []tracker.TrashEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trash")

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.ID),
			string(e.Kind),
			e.DeletedAt.Format("2006-01-02"),
			e.Wallet,
			e.Category,
			e.Money().String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Kind", "Deleted", "Wallet", "Category", "Amount"},
		Rows:   rows,
	})

	return doc.String()
}
