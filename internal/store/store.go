package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apnidukan/dukan/internal/kv"
)

// Top-level document keys. Each holds one JSON value; there are no joins at
// the storage layer — cross-record references are denormalized snapshots.
const (
	keyItems        = "items"
	keyBills        = "bills"
	keyBillCounters = "bill_counters"
	keySettings     = "settings"
	keyAccounts     = "daily_accounts"
	keyFlashSale    = "flash_sale"
)

// ErrNotFound is returned when an operation targets a record that does not
// exist (or was already purged).
var ErrNotFound = errors.New("record not found")

// Clock supplies wall-clock time to every date-keyed rule (bill retention,
// daily-account keys, flash-sale expiry). Tests inject a manual clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// Store exposes CRUD and lifecycle operations over the shop's documents.
//
// All mutations are serialized by a single mutex: every operation is a
// read-modify-write of whole documents, and two interleaved writers would
// lose updates (last-writer-wins at the kv layer).
//
// The store is deliberately trusting: it accepts any well-typed value and
// performs no field validation. Validation belongs to the calling layer.
type Store struct {
	mu     sync.Mutex
	kv     kv.Store
	clock  Clock
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock. Used by tests to simulate time passage.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger for degraded-read and cleanup diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a Store over the given backend.
func New(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:     backend,
		clock:  SystemClock(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the underlying backend.
func (s *Store) Close() error { return s.kv.Close() }

// Now returns the store's current wall-clock time.
func (s *Store) Now() time.Time { return s.clock.Now() }

// Today returns the current calendar date in the daily-account key format,
// per the store's clock.
func (s *Store) Today() string {
	return s.clock.Now().Format("2006-01-02")
}

// newID returns a time-sortable UUIDv7 string.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// getDoc reads and decodes one document. Absence, backend read failure, and
// decode failure all degrade to the zero value: corrupt local storage means
// "empty state", never a crash. Failures are logged so they are not invisible.
func getDoc[T any](ctx context.Context, s *Store, key string) T {
	var zero T
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("read failed, treating as empty", "key", key, "err", err)
		return zero
	}
	if !ok || raw == "" {
		return zero
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("corrupt document, treating as empty", "key", key, "err", err)
		return zero
	}
	return v
}

// setDoc encodes and writes one document. Write failures propagate.
func setDoc[T any](ctx context.Context, s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
