package history

import (
	"database/sql"
	"os"
	"testing"
)

func TestMemoryHistory(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	if err := m.Append("1 + 2", "1 + 2 equal 3"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := m.Append("memx+", "set memoryx equal 3"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Recent returns newest first
	entries, err := m.Recent(0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Line != "memx+" || entries[1].Line != "1 + 2" {
		t.Errorf("unexpected order: %q then %q", entries[0].Line, entries[1].Line)
	}
	if entries[0].Ts == "" {
		t.Error("expected non-empty timestamp")
	}

	// Recent with limit
	entries, err = m.Recent(1)
	if err != nil {
		t.Fatalf("Recent with limit failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry with limit, got %d", len(entries))
	}
	if entries[0].Display != "set memoryx equal 3" {
		t.Errorf("unexpected entry: %q", entries[0].Display)
	}
}

func TestSQLiteHistory(t *testing.T) {
	f, err := os.CreateTemp("", "memcalc-test-*.db")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}

	if err := s.Append("1 + 2", "1 + 2 equal 3"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append("3 * 4", "3 * 4 equal 12"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	entries, err := s.Recent(0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Line != "3 * 4" {
		t.Errorf("expected newest first, got %q", entries[0].Line)
	}
	if entries[0].Ts == "" {
		t.Error("expected non-empty timestamp")
	}

	version, err := s.GetMetadata("schema_version")
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("expected schema version %s, got %s", SchemaVersion, version)
	}

	// Close and reopen to verify persistence
	s.Close()

	s2, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	entries, err = s2.Recent(1)
	if err != nil {
		t.Fatalf("Recent after reopen: %v", err)
	}
	if len(entries) != 1 || entries[0].Display != "3 * 4 equal 12" {
		t.Errorf("unexpected entries after reopen: %v", entries)
	}
}

func TestSQLiteUnsupportedSchemaVersion(t *testing.T) {
	f, err := os.CreateTemp("", "memcalc-schema-test-*.db")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	db, err := sql.Open(driverName, path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL);
		INSERT INTO metadata (key, value) VALUES ('schema_version', '99');
	`)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	db.Close()

	if _, err := NewSQLite(path); err == nil {
		t.Fatal("expected error for unsupported schema version")
	}
}
