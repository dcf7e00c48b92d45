package kv

import (
	"context"
	"sync"
)

// Memory is a map-backed store for tests and throwaway sessions.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]string)}
}

// Get returns the document stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.docs[key]
	return v, ok, nil
}

// Set writes the document under key, replacing any existing value.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = value
	return nil
}

// Delete removes the document under key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error { return nil }
