package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCorruptDocument_DegradesToEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	mustAddItem(t, s, "Aloo", 20)
	require.NoError(t, s.kv.Set(ctx, keyItems, `{not json`))

	// Corrupt storage means empty state, never a crash or an error.
	require.Empty(t, s.ListItems(ctx))

	// Writes start fresh over the corrupt document.
	mustAddItem(t, s, "Pyaz", 40)
	items := s.ListItems(ctx)
	require.Len(t, items, 1)
	require.Equal(t, "Pyaz", items[0].Name)
}

func TestNewIDs_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := newID()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestToday_UsesInjectedClock(t *testing.T) {
	s, clk := newTestStore(t)

	require.Equal(t, "2025-01-01", s.Today())
	clk.Advance(24 * time.Hour)
	require.Equal(t, "2025-01-02", s.Today())
}
