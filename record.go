package tracker

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind is a typed string identifying the two sides of the journal.
type RecordKind string

const (
	Income  RecordKind = "income"
	Expense RecordKind = "expense"
)

// ParseRecordKind parses a string into a RecordKind.
func ParseRecordKind(s string) (RecordKind, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown record kind: %q", s)
	}
}

// listName returns the name of the journal list this kind of record lives
// in. It is also the value persisted in a trash entry's recordType field.
func (k RecordKind) listName() string {
	switch k {
	case Income:
		return "incomes"
	case Expense:
		return "expenses"
	default:
		return "unknown"
	}
}

// parseListName is the inverse of listName, used when decoding trash entries.
func parseListName(s string) (RecordKind, error) {
	switch s {
	case "incomes":
		return Income, nil
	case "expenses":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown record type: %q", s)
	}
}

// Record is a single income or expense entry in the journal.
//
// Its id is unique within its kind, not globally: an income and an expense
// may share the same numeric id. Amount, currency, wallet and category are
// immutable after creation; the only mutations a record undergoes are the
// lifecycle moves to Trash and back.
type Record struct {
	ID       int             // positive, unique within the kind's active list
	Currency string          // copied from the owning wallet at creation time
	Amount   decimal.Decimal // strictly positive, in the record's currency
	Wallet   string          // wallet name reference
	Category string          // category name reference, possibly dangling
	Date     time.Time       // creation time
}

// Money returns the record amount as money in the record's currency.
func (r Record) Money() Money {
	return M(r.Amount, r.Currency)
}

// delta returns the signed balance effect of the record on its wallet.
func (r Record) delta(kind RecordKind) Money {
	if kind == Expense {
		return r.Money().Neg()
	}
	return r.Money()
}

func (r Record) String() string {
	return fmt.Sprintf("#%d %s %s (%s) on %s", r.ID, r.Money(), r.Category, r.Wallet, r.Date.Format("2006-01-02"))
}

// TrashEntry is a soft-deleted record. It remembers the record's original
// kind so a restore puts it back into the right list, and the deletion time
// for display.
type TrashEntry struct {
	Record
	Kind      RecordKind
	DeletedAt time.Time
}
