package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/Qvart2/FinanceTracker"
	"github.com/Qvart2/FinanceTracker/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// --- Income / Expense Commands ---

// postCmd posts a record of a fixed kind; it backs both the income and the
// expense command.
type postCmd struct {
	kind     tracker.RecordKind
	wallet   string
	category string
	amount   string
}

func newIncomeCmd() *postCmd  { return &postCmd{kind: tracker.Income} }
func newExpenseCmd() *postCmd { return &postCmd{kind: tracker.Expense} }

func (c *postCmd) Name() string { return string(c.kind) }
func (c *postCmd) Synopsis() string {
	return fmt.Sprintf("record an %s against a wallet and category", c.kind)
}
func (c *postCmd) Usage() string {
	return fmt.Sprintf(`fin %s -w <wallet> -c <category> -a <amount>

  Posts a new %s record. The amount is applied to the wallet balance in the
  wallet's own currency; an expense larger than the balance is rejected.
`, c.kind, c.kind)
}

func (c *postCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.wallet, "w", "", "Wallet name")
	f.StringVar(&c.category, "c", "", "Category name")
	f.StringVar(&c.amount, "a", "", "Amount (positive)")
}

func (c *postCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.wallet == "" || c.category == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	rec, err := ledger.PostRecord(c.kind, c.wallet, c.category, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Posted %s %s\n", c.kind, rec)
	return subcommands.ExitSuccess
}

// --- Records Command ---

type recordsCmd struct {
	kind string
}

func (*recordsCmd) Name() string     { return "records" }
func (*recordsCmd) Synopsis() string { return "list active records of one kind" }
func (*recordsCmd) Usage() string {
	return `fin records [-k <kind>]

  Lists active records of the given kind (income or expense).
`
}

func (c *recordsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "expense", "Record kind (income, expense)")
}

func (c *recordsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := tracker.ParseRecordKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	var records []tracker.Record
	for rec := range ledger.Records(kind) {
		records = append(records, rec)
	}
	printMarkdown(renderer.RecordsMarkdown(kind, records))
	return subcommands.ExitSuccess
}
