package storage

import (
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "tables.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveLoadTable(t *testing.T) {
	db := openTemp(t)

	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if err := db.SaveTable("eo", 1, data); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	got, err := db.LoadTable("eo", 1)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("LoadTable = %v, want %v", got, data)
	}
}

func TestLoadTable_MissingReturnsNil(t *testing.T) {
	db := openTemp(t)

	got, err := db.LoadTable("dr", 1)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if got != nil {
		t.Errorf("missing table should return nil, got %v", got)
	}
}

func TestSaveTable_ReplacesExisting(t *testing.T) {
	db := openTemp(t)

	if err := db.SaveTable("eo", 1, []byte{1}); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}
	if err := db.SaveTable("eo", 1, []byte{2}); err != nil {
		t.Fatalf("SaveTable replace: %v", err)
	}

	got, _ := db.LoadTable("eo", 1)
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("LoadTable = %v, want [2]", got)
	}
}

func TestSaveTable_VersionsAreIndependent(t *testing.T) {
	db := openTemp(t)

	db.SaveTable("eo", 1, []byte{1})
	db.SaveTable("eo", 2, []byte{2})

	v1, _ := db.LoadTable("eo", 1)
	v2, _ := db.LoadTable("eo", 2)
	if len(v1) != 1 || v1[0] != 1 || len(v2) != 1 || v2[0] != 2 {
		t.Errorf("versions should not collide: v1=%v v2=%v", v1, v2)
	}
}

func TestClear(t *testing.T) {
	db := openTemp(t)

	db.SaveTable("eo", 1, []byte{1})
	if err := db.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	got, _ := db.LoadTable("eo", 1)
	if got != nil {
		t.Error("Clear should remove every table")
	}
}
