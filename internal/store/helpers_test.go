package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/apnidukan/dukan/internal/kv"
	"github.com/apnidukan/dukan/internal/model"
	"github.com/apnidukan/dukan/internal/testutil"
)

// testEpoch is a fixed instant all store tests start from.
var testEpoch = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

// newTestStore builds a store over the in-memory backend with a manual
// clock, so tests simulate days passing instead of sleeping.
func newTestStore(t *testing.T) (*Store, *testutil.ManualClock) {
	t.Helper()
	clk := testutil.NewManualClock(testEpoch)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(kv.NewMemory(), WithClock(clk), WithLogger(logger)), clk
}

// mustAddItem adds a per-weight item and fails the test on error.
func mustAddItem(t *testing.T, s *Store, name string, price int64) model.Item {
	t.Helper()
	item, err := s.AddItem(context.Background(), name, decimal.NewFromInt(price), model.PerWeight, "")
	require.NoError(t, err)
	return item
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
