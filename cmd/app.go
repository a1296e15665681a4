// Package cmd implements the CLI application to manage the finance tracker.
package cmd

import (
	"flag"
	"fmt"
	"os"

	tracker "github.com/Qvart2/FinanceTracker"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addWalletCmd{}, "wallets")
	c.Register(&deleteWalletCmd{}, "wallets")
	c.Register(&walletsCmd{}, "wallets")

	c.Register(newIncomeCmd(), "records")
	c.Register(newExpenseCmd(), "records")
	c.Register(&recordsCmd{}, "records")

	c.Register(&trashCmd{}, "trash")
	c.Register(&restoreCmd{}, "trash")
	c.Register(&purgeCmd{}, "trash")
	c.Register(&trashListCmd{}, "trash")

	c.Register(&addCategoryCmd{}, "categories")
	c.Register(&removeCategoryCmd{}, "categories")
	c.Register(&categoriesCmd{}, "categories")

	c.Register(&updateRatesCmd{}, "rates")
	c.Register(&ratesCmd{}, "rates")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const (
	dataFileEnv  = "FINTRACK_DATA_FILE"
	referenceEnv = "FINTRACK_REFERENCE"
)

var dataFileFlag = flag.String("data-file", "", "Path to the state file holding the whole tracker state (JSON).\n If missing it will read the environment variable \""+dataFileEnv+"\". Defaults to data.json")
var referenceFlag = flag.String("reference", "", "Reference currency for valuations.\n If missing it will read the environment variable \""+referenceEnv+"\". Defaults to "+tracker.DefaultReference)

func dataFile() string {
	if *dataFileFlag == "" {
		*dataFileFlag = os.Getenv(dataFileEnv)
	}
	if *dataFileFlag == "" {
		*dataFileFlag = "data.json"
	}
	return *dataFileFlag
}

// loadLedger loads the tracker state from the app state file, applying the
// configured reference currency.
func loadLedger() *tracker.Ledger {
	l := tracker.Load(dataFile())
	ref := *referenceFlag
	if ref == "" {
		ref = os.Getenv(referenceEnv)
	}
	if ref != "" {
		l.Rates().SetReference(ref)
	}
	return l
}

// saveLedger persists the full state into the app state file. Each mutating
// command calls it exactly once, after its in-memory mutation succeeded.
func saveLedger(l *tracker.Ledger) subcommands.ExitStatus {
	if err := tracker.Save(dataFile(), l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving state file %q: %v\n", dataFile(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown prints a rendered markdown report to stdout.
func printMarkdown(doc string) {
	fmt.Println(doc)
}
