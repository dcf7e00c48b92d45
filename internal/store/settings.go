package store

import (
	"context"

	"github.com/apnidukan/dukan/internal/model"
)

// Settings returns the singleton configuration record with every absent
// field defaulted, tolerating documents written by older schema versions.
func (s *Store) Settings(ctx context.Context) model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return getDoc[model.Settings](ctx, s, keySettings).WithDefaults()
}

// SaveSettings fully overwrites the configuration record.
func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return setDoc(ctx, s, keySettings, settings.WithDefaults())
}
