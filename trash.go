package tracker

import (
	"fmt"
	"iter"
)

// Trash iterates over soft-deleted entries in deletion order.
func (l *Ledger) Trash() iter.Seq[TrashEntry] {
	return func(yield func(TrashEntry) bool) {
		for _, e := range l.trash {
			if !yield(e) {
				return
			}
		}
	}
}

// trashIndex locates a trash entry. Lookups are keyed by (kind, id): ids are
// only unique within their original kind, and an income and an expense with
// the same id may sit in Trash at the same time.
func (l *Ledger) trashIndex(kind RecordKind, id int) int {
	for i, e := range l.trash {
		if e.Kind == kind && e.ID == id {
			return i
		}
	}
	return -1
}

// RestoreRecord moves a trashed record back into its original kind list and
// re-applies its balance delta to the owning wallet, if that wallet still
// exists. Across a trash/restore round trip every wallet balance is left
// exactly where it started.
//
// If the vacated id was reused by a later posting, the restored record is
// re-keyed to the next free id so per-kind id uniqueness holds.
func (l *Ledger) RestoreRecord(kind RecordKind, id int) (Record, error) {
	at := l.trashIndex(kind, id)
	if at < 0 {
		return Record{}, fmt.Errorf("trashed %s #%d: %w", kind, id, ErrRecordNotFound)
	}

	e := l.trash[at]
	rec := e.Record
	if l.idInUse(kind, rec.ID) {
		rec.ID = l.nextFreeID(kind)
	}
	if w, ok := l.index[rec.Wallet]; ok {
		w.Balance = w.Balance.Add(rec.delta(kind))
	}
	*l.list(kind) = append(*l.list(kind), rec)
	l.trash = append(l.trash[:at], l.trash[at+1:]...)
	return rec, nil
}

// PurgeRecord removes a trash entry permanently. The balance effect was
// already neutralized when the record entered Trash, so purging touches no
// wallet. Purged is a terminal state.
func (l *Ledger) PurgeRecord(kind RecordKind, id int) error {
	at := l.trashIndex(kind, id)
	if at < 0 {
		return fmt.Errorf("trashed %s #%d: %w", kind, id, ErrRecordNotFound)
	}
	l.trash = append(l.trash[:at], l.trash[at+1:]...)
	return nil
}
