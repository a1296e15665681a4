package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/Qvart2/FinanceTracker"
	"github.com/google/subcommands"
)

// --- Update Rates Command ---

type updateRatesCmd struct{}

func (*updateRatesCmd) Name() string     { return "update-rates" }
func (*updateRatesCmd) Synopsis() string { return "refresh the currency table from the rate provider" }
func (*updateRatesCmd) Usage() string {
	return `fin update-rates

  Fetches the latest conversion rates relative to the reference currency and
  replaces the currency table wholesale. On failure the previous table stays
  in effect; rates never change wallet balances, only their displayed value.
`
}

func (*updateRatesCmd) SetFlags(*flag.FlagSet) {}

func (c *updateRatesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	if err := ledger.Rates().Refresh(tracker.FetchRates); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: rates unchanged: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	rates, at := ledger.Rates().Snapshot()
	fmt.Printf("Updated %d rates relative to %s on %s\n", len(rates), ledger.Rates().Reference(), at.Format("2006-01-02 15:04"))
	return subcommands.ExitSuccess
}

// --- Rates Command ---

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show the currency table in use" }
func (*ratesCmd) Usage() string {
	return `fin rates

  Shows the rates used for wallet valuation, relative to the reference
  currency. Only currencies held in wallets are listed.
`
}

func (*ratesCmd) SetFlags(*flag.FlagSet) {}

func (c *ratesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	rates := ledger.Rates()

	fmt.Printf("Reference currency: %s\n", rates.Reference())
	if at := rates.LastUpdate(); !at.IsZero() {
		fmt.Printf("Last update: %s\n", at.Format("2006-01-02 15:04"))
	}
	for _, t := range ledger.BuildSummary().Totals {
		fmt.Printf("%s: %s\n", t.Currency, rates.Rate(t.Currency))
	}
	return subcommands.ExitSuccess
}
