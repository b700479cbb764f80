package session

import "sync"

// Memory is a process-local KV, used by tests and the gateway's ephemeral mode
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory returns an empty in-memory KV
func NewMemory() *Memory { return &Memory{m: map[string]string{}} }

// Get implements KV
func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.m[key], nil
}

// Set implements KV
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	m.m[key] = value
	m.mu.Unlock()
	return nil
}

// Delete implements KV
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.m, key)
	m.mu.Unlock()
	return nil
}

// Name implements KV
func (m *Memory) Name() string { return BackendMemory }
