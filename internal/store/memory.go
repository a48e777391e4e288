// internal/store/memory.go
//
// In-memory CustomGames.
//   - Reads load an immutable map snapshot through an atomic pointer and never
//     block.
//   - Writes are serialized by a mutex; each Put copies the current snapshot,
//     adds one code and publishes the copy.

package store

import (
	"context"
	"sync"
	"sync/atomic"
)

type memory struct {
	mu    sync.Mutex // serializes writers
	games atomic.Pointer[map[string]string]
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() CustomGames {
	return newMemory(nil)
}

func newMemory(seed map[string]string) *memory {
	m := &memory{}
	snapshot := make(map[string]string, len(seed))
	for k, v := range seed {
		snapshot[k] = v
	}
	m.games.Store(&snapshot)
	return m
}

func (m *memory) Get(_ context.Context, code string) (string, error) {
	if key, ok := (*m.games.Load())[code]; ok {
		return key, nil
	}
	return "", ErrNotFound
}

func (m *memory) Put(_ context.Context, code, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.put(code, key)
	return err
}

// put publishes a new snapshot with code added. Callers hold mu.
func (m *memory) put(code, key string) (map[string]string, error) {
	cur := *m.games.Load()
	if _, ok := cur[code]; ok {
		return nil, ErrExists
	}
	next := make(map[string]string, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[code] = key
	m.games.Store(&next)
	return next, nil
}

// len is the number of stored codes.
func (m *memory) len() int { return len(*m.games.Load()) }
