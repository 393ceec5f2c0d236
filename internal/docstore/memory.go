package docstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps collections in process memory. It backs tests and
// store-enabled local runs without PostgreSQL.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) List(ctx context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	out := make([]Document, len(docs))
	copy(out, docs)
	return out, nil
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, data []byte) (string, error) {
	d := Document{
		ID:   uuid.NewString(),
		Data: append([]byte(nil), data...),
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], d)
	s.mu.Unlock()

	return d.ID, nil
}

func (s *MemoryStore) Project(ctx context.Context, collection, field string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		var m map[string]any
		if err := json.Unmarshal(d.Data, &m); err != nil {
			return nil, err
		}
		v, _ := m[field].(string)
		out = append(out, v)
	}
	return out, nil
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.collections))
	for name := range s.collections {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
