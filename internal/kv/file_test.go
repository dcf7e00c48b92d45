package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDir_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	d, err := OpenDir(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("OpenDir() failed: %v", err)
	}

	if _, ok, err := d.Get(ctx, "bills"); err != nil || ok {
		t.Fatalf("Get on empty dir = ok:%v err:%v, want absent", ok, err)
	}

	if err := d.Set(ctx, "bills", `[]`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, ok, err := d.Get(ctx, "bills")
	if err != nil || !ok || got != `[]` {
		t.Fatalf("Get() = %q ok:%v err:%v", got, ok, err)
	}

	if err := d.Delete(ctx, "bills"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := d.Get(ctx, "bills"); ok {
		t.Error("Get() after Delete() still present")
	}
	if err := d.Delete(ctx, "bills"); err != nil {
		t.Errorf("Delete() of absent key failed: %v", err)
	}
}

func TestDir_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "data")

	d1, err := OpenDir(root)
	if err != nil {
		t.Fatalf("first OpenDir() failed: %v", err)
	}
	if err := d1.Set(ctx, "items", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	d2, err := OpenDir(root)
	if err != nil {
		t.Fatalf("second OpenDir() failed: %v", err)
	}
	got, ok, err := d2.Get(ctx, "items")
	if err != nil || !ok || got != `[{"id":"a"}]` {
		t.Fatalf("Get() after reopen = %q ok:%v err:%v", got, ok, err)
	}
}

func TestDir_DocumentsAreFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")
	d, err := OpenDir(root)
	if err != nil {
		t.Fatalf("OpenDir() failed: %v", err)
	}
	if err := d.Set(context.Background(), "settings", `{}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "settings.json")); err != nil {
		t.Errorf("expected settings.json on disk: %v", err)
	}
}

func TestOpenDir_CreatesDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := OpenDir(root); err != nil {
		t.Fatalf("OpenDir() failed: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		t.Errorf("data dir was not created: %v", err)
	}
}
