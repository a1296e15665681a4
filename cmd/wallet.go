package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/Qvart2/FinanceTracker"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// --- Add Wallet Command ---

type addWalletCmd struct {
	name     string
	currency string
	balance  string
}

func (*addWalletCmd) Name() string     { return "add-wallet" }
func (*addWalletCmd) Synopsis() string { return "create a new wallet with a starting balance" }
func (*addWalletCmd) Usage() string {
	return `fin add-wallet -n <name> -c <currency> [-b <balance>]

  Creates a named wallet denominated in the given currency. The balance is
  mutated only by posting and reversing records afterwards.
`
}

func (c *addWalletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Wallet name (unique)")
	f.StringVar(&c.currency, "c", "", "Currency code (e.g. USD)")
	f.StringVar(&c.balance, "b", "0", "Starting balance")
}

func (c *addWalletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.currency == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	initial, err := decimal.NewFromString(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	w, err := ledger.AddWallet(c.name, c.currency, initial)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Created wallet %q with balance %s\n", w.Name, w.Balance)
	return subcommands.ExitSuccess
}

// --- Delete Wallet Command ---

type deleteWalletCmd struct {
	name string
}

func (*deleteWalletCmd) Name() string { return "delete-wallet" }
func (*deleteWalletCmd) Synopsis() string {
	return "delete a wallet, moving its records to trash"
}
func (*deleteWalletCmd) Usage() string {
	return `fin delete-wallet -n <name>

  Deletes a wallet. Every active record referencing it is moved to trash
  first, so the records stay restorable.
`
}

func (c *deleteWalletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Wallet name")
}

func (c *deleteWalletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	if err := ledger.DeleteWallet(c.name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted wallet %q\n", c.name)
	return subcommands.ExitSuccess
}

// --- Wallets Command ---

type walletsCmd struct{}

func (*walletsCmd) Name() string     { return "wallets" }
func (*walletsCmd) Synopsis() string { return "list wallets with balances and totals per currency" }
func (*walletsCmd) Usage() string {
	return `fin wallets

  Lists all wallets with their balance, their value in the reference
  currency, and the total balance per currency.
`
}

func (*walletsCmd) SetFlags(*flag.FlagSet) {}

func (c *walletsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	rates := ledger.Rates()

	for w := range ledger.Wallets() {
		fmt.Printf("%s (%s): %s (%s)\n", w.Name, w.Currency, w.Balance, tracker.ValueInReference(w, rates))
	}
	totals := ledger.BuildSummary().Totals
	if len(totals) > 0 {
		fmt.Println("Totals:")
		for _, t := range totals {
			fmt.Printf("  %s: %s\n", t.Currency, t.Total)
		}
	}
	return subcommands.ExitSuccess
}
