package tracker

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoad_missingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	l := Load(path)

	// The documented empty default: all five collections present and empty.
	if got := slices.Collect(l.Wallets()); len(got) != 0 {
		t.Errorf("wallets = %v, want none", got)
	}
	for _, kind := range []RecordKind{Income, Expense} {
		if got := activeIDs(l, kind); len(got) != 0 {
			t.Errorf("%s records = %v, want none", kind, got)
		}
	}
	if got := slices.Collect(l.Categories()); len(got) != 0 {
		t.Errorf("categories = %v, want none", got)
	}
	for e := range l.Trash() {
		t.Errorf("trash not empty: %+v", e)
	}
}

func TestLoad_corruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{ not json"), 0644); err != nil {
		t.Fatal(err)
	}

	// Corruption falls back to the empty default instead of failing.
	l := Load(path)
	if got := slices.Collect(l.Wallets()); len(got) != 0 {
		t.Errorf("wallets from corrupt file = %v, want none", got)
	}
}

func TestSaveLoad_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	l := newTestLedger(t)
	if _, err := l.PostRecord(Expense, "W", "food", d(30)); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, l); err != nil {
		t.Fatalf("Save = %v", err)
	}

	got := Load(path)
	if !balance(t, got, "W").Equal(USD(70)) {
		t.Errorf("balance after reload = %s, want %s", balance(t, got, "W"), USD(70))
	}
	if ids := activeIDs(got, Expense); len(ids) != 1 || ids[0] != 1 {
		t.Errorf("expenses after reload = %v, want [1]", ids)
	}
}

func TestSave_keepsBackupGeneration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	l := newTestLedger(t)
	if err := Save(path, l); err != nil {
		t.Fatalf("first Save = %v", err)
	}
	firstGen, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := l.PostRecord(Expense, "W", "food", d(30)); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, l); err != nil {
		t.Fatalf("second Save = %v", err)
	}

	// The backup holds exactly the previous generation.
	backup, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if string(backup) != string(firstGen) {
		t.Error("backup content differs from the previous generation")
	}

	// And the backup is loadable on its own.
	prev := Load(path + BackupSuffix)
	if !balance(t, prev, "W").Equal(USD(100)) {
		t.Errorf("balance from backup = %s, want %s", balance(t, prev, "W"), USD(100))
	}
}

func TestSave_firstGenerationHasNoBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	if err := Save(path, NewLedger()); err != nil {
		t.Fatalf("Save = %v", err)
	}
	if _, err := os.Stat(path + BackupSuffix); err == nil {
		t.Error("backup exists after the very first save")
	}
}

func TestSave_documentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := Save(path, NewLedger()); err != nil {
		t.Fatalf("Save = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// The five collections are always present, even when empty.
	for _, field := range []string{`"wallets"`, `"incomes"`, `"expenses"`, `"categories"`, `"deletedRecords"`} {
		if !strings.Contains(string(content), field) {
			t.Errorf("state document misses field %s:\n%s", field, content)
		}
	}
}
