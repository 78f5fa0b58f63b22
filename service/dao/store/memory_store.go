package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/fluxblock/service/dao"
)

var _ dao.Service[string, struct{}] = (*MemoryStore[string, struct{}])(nil)

// Filter matches a record against a List parameter value
type Filter[T any] func(record *T, value interface{}) bool

// MemoryStore is an in-memory dao.Service keeping records in insertion order.
// The key is obtained from the supplied keySelector function.
type MemoryStore[K comparable, T any] struct {
	mu          sync.RWMutex
	records     map[K]*T
	keys        []K
	keySelector func(*T) K
	filters     map[string]Filter[T]
}

// Option configures a MemoryStore
type Option[K comparable, T any] func(s *MemoryStore[K, T])

// WithFilter registers a named List filter
func WithFilter[K comparable, T any](name string, filter Filter[T]) Option[K, T] {
	return func(s *MemoryStore[K, T]) {
		s.filters[name] = filter
	}
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore[K comparable, T any](keySelector func(*T) K, options ...Option[K, T]) *MemoryStore[K, T] {
	ret := &MemoryStore[K, T]{
		records:     make(map[K]*T),
		keySelector: keySelector,
		filters:     map[string]Filter[T]{},
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Save stores a record; overwriting keeps the original position.
func (s *MemoryStore[K, T]) Save(_ context.Context, v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	var zero K
	if key == zero {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.records[key] = v
	return nil
}

// Load returns a record by key.
func (s *MemoryStore[K, T]) Load(_ context.Context, key K) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", dao.ErrNotFound, key)
	}
	return v, nil
}

// Delete removes a record.
func (s *MemoryStore[K, T]) Delete(_ context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return fmt.Errorf("%w: %v", dao.ErrNotFound, key)
	}
	delete(s.records, key)
	for i, candidate := range s.keys {
		if candidate == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return nil
}

// List returns records matching every parameter, in insertion order.
func (s *MemoryStore[K, T]) List(_ context.Context, parameters ...*dao.Parameter) ([]*T, error) {
	filters := make([]Filter[T], len(parameters))
	for i, param := range parameters {
		filter, ok := s.filters[param.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %v", dao.ErrUnsupportedParameter, param.Name)
		}
		filters[i] = filter
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.keys))
outer:
	for _, key := range s.keys {
		record := s.records[key]
		for i, filter := range filters {
			if !filter(record, parameters[i].Value) {
				continue outer
			}
		}
		out = append(out, record)
	}
	return out, nil
}

// Len returns the number of records
func (s *MemoryStore[K, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}
