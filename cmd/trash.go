package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/Qvart2/FinanceTracker"
	"github.com/Qvart2/FinanceTracker/renderer"
	"github.com/google/subcommands"
)

// kindIDFlags are the flags shared by every command addressing one record.
// Trash operations are keyed by (kind, id) because ids are only unique
// within their kind.
type kindIDFlags struct {
	kind string
	id   int
}

func (c *kindIDFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Record kind (income, expense)")
	f.IntVar(&c.id, "i", 0, "Record id")
}

func (c *kindIDFlags) parse(f *flag.FlagSet) (tracker.RecordKind, subcommands.ExitStatus) {
	if c.kind == "" || c.id <= 0 {
		f.Usage()
		return "", subcommands.ExitUsageError
	}
	kind, err := tracker.ParseRecordKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return "", subcommands.ExitUsageError
	}
	return kind, subcommands.ExitSuccess
}

// --- Trash Command ---

type trashCmd struct{ kindIDFlags }

func (*trashCmd) Name() string     { return "trash" }
func (*trashCmd) Synopsis() string { return "soft-delete a record, reversing its balance effect" }
func (*trashCmd) Usage() string {
	return `fin trash -k <kind> -i <id>

  Moves an active record into the trash. The wallet balance is restored to
  what it was before the record was posted; the record stays restorable
  until purged.
`
}

func (c *trashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, status := c.parse(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger := loadLedger()
	if err := ledger.TrashRecord(kind, c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Trashed %s #%d\n", kind, c.id)
	return subcommands.ExitSuccess
}

// --- Restore Command ---

type restoreCmd struct{ kindIDFlags }

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "restore a trashed record into its original list" }
func (*restoreCmd) Usage() string {
	return `fin restore -k <kind> -i <id>

  Moves a record out of the trash, back into its original income or expense
  list, and re-applies its balance effect if the wallet still exists.
`
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, status := c.parse(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger := loadLedger()
	rec, err := ledger.RestoreRecord(kind, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Restored %s %s\n", kind, rec)
	return subcommands.ExitSuccess
}

// --- Purge Command ---

type purgeCmd struct{ kindIDFlags }

func (*purgeCmd) Name() string     { return "purge" }
func (*purgeCmd) Synopsis() string { return "permanently delete a trashed record" }
func (*purgeCmd) Usage() string {
	return `fin purge -k <kind> -i <id>

  Removes a record from the trash for good. Its balance effect was already
  neutralized when it was trashed, so no wallet changes.
`
}

func (c *purgeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, status := c.parse(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger := loadLedger()
	if err := ledger.PurgeRecord(kind, c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Purged %s #%d\n", kind, c.id)
	return subcommands.ExitSuccess
}

// --- Trash List Command ---

type trashListCmd struct{}

func (*trashListCmd) Name() string     { return "trash-list" }
func (*trashListCmd) Synopsis() string { return "list the trash content" }
func (*trashListCmd) Usage() string {
	return `fin trash-list

  Lists all soft-deleted records with the kind they would restore into.
`
}

func (*trashListCmd) SetFlags(*flag.FlagSet) {}

func (c *trashListCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	var entries []tracker.TrashEntry
	for e := range ledger.Trash() {
		entries = append(entries, e)
	}
	printMarkdown(renderer.TrashMarkdown(entries))
	return subcommands.ExitSuccess
}
