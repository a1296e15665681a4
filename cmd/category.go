package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// --- Add Category Command ---

type addCategoryCmd struct {
	name string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "register a category name" }
func (*addCategoryCmd) Usage() string {
	return `fin add-category -n <name>

  Adds a category to the registry. Adding a blank or existing name is a
  no-op.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Category name")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	ledger.AddCategory(c.name)
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Category %q registered\n", c.name)
	return subcommands.ExitSuccess
}

// --- Remove Category Command ---

type removeCategoryCmd struct {
	name string
}

func (*removeCategoryCmd) Name() string     { return "remove-category" }
func (*removeCategoryCmd) Synopsis() string { return "remove a category name" }
func (*removeCategoryCmd) Usage() string {
	return `fin remove-category -n <name>

  Removes a category from the registry. Existing records keep the removed
  name; they are not rewritten.
`
}

func (c *removeCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Category name")
}

func (c *removeCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	ledger.RemoveCategory(c.name)
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Category %q removed\n", c.name)
	return subcommands.ExitSuccess
}

// --- Categories Command ---

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories in display order" }
func (*categoriesCmd) Usage() string {
	return `fin categories

  Lists all registered categories in insertion order.
`
}

func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	for name := range ledger.Categories() {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}
