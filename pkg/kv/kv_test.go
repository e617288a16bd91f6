package kv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shashiranjanraj/vastra/pkg/kv"
)

type record struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

func TestMemoryRoundTrip(t *testing.T) {
	store := kv.NewMemory()

	if err := store.Put("k", record{Name: "tee", Qty: 2}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	var got record
	if !store.Get("k", &got) {
		t.Fatal("expected hit")
	}
	if got.Name != "tee" || got.Qty != 2 {
		t.Errorf("unexpected value: %+v", got)
	}
}

func TestMemoryMiss(t *testing.T) {
	store := kv.NewMemory()

	var got record
	if store.Get("absent", &got) {
		t.Error("expected miss for absent key")
	}
}

func TestMemoryShapeMismatchFailsClosed(t *testing.T) {
	store := kv.NewMemory()

	if err := store.Put("k", "just a string"); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	var got record
	if store.Get("k", &got) {
		t.Error("expected undecodable value to report a miss")
	}
}

func TestMemoryDelIdempotent(t *testing.T) {
	store := kv.NewMemory()

	if err := store.Put("k", record{Name: "tee"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Del("k"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if err := store.Del("k"); err != nil {
		t.Errorf("second del should be a no-op, got: %v", err)
	}

	var got record
	if store.Get("k", &got) {
		t.Error("expected miss after delete")
	}
}

func TestFileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store := kv.NewFile(dir)
	if err := store.Put("vastra:cart", []record{{Name: "tee", Qty: 3}}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	// A fresh store over the same directory models a process restart.
	reopened := kv.NewFile(dir)
	var got []record
	if !reopened.Get("vastra:cart", &got) {
		t.Fatal("expected hit after reopen")
	}
	if len(got) != 1 || got[0].Qty != 3 {
		t.Errorf("unexpected value: %+v", got)
	}
}

func TestFileCorruptValueFailsClosed(t *testing.T) {
	dir := t.TempDir()

	store := kv.NewFile(dir)
	if err := store.Put("vastra:cart", []record{{Name: "tee"}}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	// Clobber the file on disk.
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) == 0 {
		t.Fatalf("expected a stored file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupting file: %v", err)
	}

	var got []record
	if store.Get("vastra:cart", &got) {
		t.Error("expected corrupt value to report a miss")
	}
}

func TestFileDelIdempotent(t *testing.T) {
	store := kv.NewFile(t.TempDir())

	if err := store.Del("never-stored"); err != nil {
		t.Errorf("deleting an absent key should be a no-op, got: %v", err)
	}
}
