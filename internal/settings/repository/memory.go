package repository

import (
	"context"
	"sync"
)

// Memory keeps settings in process memory. Values are lost on restart.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory settings store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

var _ Repository = (*Memory)(nil)

func (m *Memory) Get(_ context.Context, namespace, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[memoryKey(namespace, key)]
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, namespace, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[memoryKey(namespace, key)] = value
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func memoryKey(namespace, key string) string {
	return namespace + "\x00" + key
}
