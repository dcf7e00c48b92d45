package kv

import (
	"context"
	"testing"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, err := m.Get(ctx, "flash_sale"); err != nil || ok {
		t.Fatalf("Get on empty store = ok:%v err:%v, want absent", ok, err)
	}

	if err := m.Set(ctx, "flash_sale", `{"active":true}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, ok, err := m.Get(ctx, "flash_sale")
	if err != nil || !ok || got != `{"active":true}` {
		t.Fatalf("Get() = %q ok:%v err:%v", got, ok, err)
	}

	if err := m.Delete(ctx, "flash_sale"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "flash_sale"); ok {
		t.Error("Get() after Delete() still present")
	}
}
