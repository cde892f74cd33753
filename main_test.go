package main

import (
	"path/filepath"
	"testing"

	"github.com/df07/go-probe-relocator/pkg/store"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	s, err := openStore("file", filepath.Join(dir, "relocation.bin"))
	if err != nil {
		t.Fatalf("openStore(file): %v", err)
	}
	if _, ok := s.(*store.FileStore); !ok {
		t.Errorf("openStore(file) returned %T, want *store.FileStore", s)
	}

	s, err = openStore("sqlite", filepath.Join(dir, "relocation.db"))
	if err != nil {
		t.Fatalf("openStore(sqlite): %v", err)
	}
	sq, ok := s.(*store.SQLiteStore)
	if !ok {
		t.Fatalf("openStore(sqlite) returned %T, want *store.SQLiteStore", s)
	}
	sq.Close()

	if _, err := openStore("redis", "x"); err == nil {
		t.Error("expected error for unknown store type")
	}
}
