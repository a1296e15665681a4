package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the state file path to hold the previous
// generation of the document.
const BackupSuffix = ".bak"

// Load reads the state document from path. A missing file yields the empty
// default state (all five collections present and empty). A present but
// unreadable or unparsable file is logged and likewise yields the default,
// never a process failure: the last successful save stays recoverable in
// the backup generation.
func Load(path string) *Ledger {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger()
	}
	if err != nil {
		log.Printf("cannot open state file %q, starting empty: %v", path, err)
		return NewLedger()
	}
	defer f.Close()

	l, err := DecodeState(f)
	if err != nil {
		log.Printf("cannot decode state file %q, starting empty: %v", path, err)
		return NewLedger()
	}
	return l
}

// Save writes the full ledger state to path, keeping the previous file
// content in a sibling BackupSuffix file. The backup copy is best-effort: a
// failure to back up is logged and never blocks the primary save.
//
// Every mutating operation of the CLI calls Save exactly once, after its
// in-memory mutation completed. A failed save is reported upward; the
// in-memory state remains authoritative for the rest of the session.
func Save(path string, l *Ledger) error {
	backup(path)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for state file %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening state file %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeState(f, l); err != nil {
		return fmt.Errorf("error writing state file %q: %w", path, err)
	}
	return nil
}

// backup copies the current state file to its backup sibling, if it exists.
func backup(path string) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		log.Printf("backup read err (ignored): %v", err)
		return
	}
	if err := os.WriteFile(path+BackupSuffix, content, 0644); err != nil {
		log.Printf("backup write err (ignored): %v", err)
	}
}
