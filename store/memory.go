package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Memory keeps the documents in memory. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemory() *Memory { return &Memory{docs: make(map[string][]byte)} }

func (m *Memory) Load(key string, v any) error {
	m.mu.RLock()
	raw, ok := m.docs[key]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("load error: invalid document %q: %w", key, err)
	}
	return nil
}

func (m *Memory) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("persist error: cannot encode %q: %w", key, err)
	}
	m.mu.Lock()
	m.docs[key] = raw
	m.mu.Unlock()
	return nil
}

// Len returns the number of documents stored.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func (m *Memory) Close() error { return nil }
