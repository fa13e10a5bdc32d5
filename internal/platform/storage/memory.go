package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/gatewise/visitflow/pkg/sentinel"
)

// MemorySnapshots is the non-persistent backend for tests and throwaway runs.
type MemorySnapshots struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailSaves makes every Save return ErrUnavailable; tests use it to
	// exercise rollback behavior in the repositories.
	FailSaves bool
}

func NewMemorySnapshots() *MemorySnapshots {
	return &MemorySnapshots{blobs: make(map[string][]byte)}
}

func (m *MemorySnapshots) Load(_ context.Context, namespace string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[namespace]
	if !ok {
		return nil, fmt.Errorf("no snapshot for %s: %w", namespace, sentinel.ErrNotFound)
	}
	return append([]byte(nil), blob...), nil
}

func (m *MemorySnapshots) Save(_ context.Context, namespace string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return fmt.Errorf("save snapshot %s: %w", namespace, sentinel.ErrUnavailable)
	}
	m.blobs[namespace] = append([]byte(nil), blob...)
	return nil
}

func (m *MemorySnapshots) Delete(_ context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, namespace)
	return nil
}
