package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Qvart2/FinanceTracker/renderer"
	"github.com/google/subcommands"
)

// --- Summary Command ---

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a full summary of wallets, records and totals" }
func (*summaryCmd) Usage() string {
	return `fin summary

  Displays wallets with their reference valuation, the totals per currency,
  and the active income and expense totals.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	printMarkdown(renderer.SummaryMarkdown(ledger.BuildSummary()))
	return subcommands.ExitSuccess
}

// --- Export Command ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the summary report to a file" }
func (*exportCmd) Usage() string {
	return `fin export -o <file>

  Writes the plain-text summary report (wallets, incomes, expenses, totals)
  to the given file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "report.md", "Output file for the report")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	doc := renderer.SummaryMarkdown(ledger.BuildSummary())

	if err := os.WriteFile(c.output, []byte(doc), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report written to %s\n", c.output)
	return subcommands.ExitSuccess
}
