package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewStore_EmptyDir(t *testing.T) {
	if _, err := NewStore("  "); err == nil {
		t.Fatalf("expected error for empty root dir")
	}
}

func TestSave_KeepsExtension_And_UniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	p1, err := store.Save("evidence", "report.pdf", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Ext(p1) != ".pdf" {
		t.Fatalf("extension lost: %s", p1)
	}
	if filepath.Base(filepath.Dir(p1)) != "evidence" {
		t.Fatalf("wrong bucket dir: %s", p1)
	}
	b, err := os.ReadFile(p1)
	if err != nil || string(b) != "hello" {
		t.Fatalf("stored content = %q err=%v", b, err)
	}

	// Same original name lands under a different stored name.
	p2, err := store.Save("evidence", "report.pdf", strings.NewReader("world"))
	if err != nil {
		t.Fatalf("save again: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("colliding stored paths: %s", p1)
	}

	// Path traversal in the bucket name stays inside the root.
	p3, err := store.Save("../evil", "x.bin", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	rel, err := filepath.Rel(store.Root, p3)
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Fatalf("escaped root: %s (rel %s, err %v)", p3, rel, err)
	}

	// An absurdly long extension is dropped rather than trusted.
	p4, err := store.Save("evidence", "f."+strings.Repeat("x", 32), strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Ext(p4) != "" {
		t.Fatalf("oversized extension kept: %s", p4)
	}
}

func TestSizeOf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.bin")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	n, err := SizeOf(path)
	if err != nil || n != 10 {
		t.Fatalf("SizeOf = %d err=%v", n, err)
	}
	if _, err := SizeOf(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
