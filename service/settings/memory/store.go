package memory

import (
	"context"

	"github.com/viant/fluxblock/service/settings"
)

// Store keeps settings in memory
type Store struct {
	*settings.Values
}

func (s *Store) SetBool(_ context.Context, key string, value bool) error {
	s.Put(key, value)
	return nil
}

func (s *Store) SetString(_ context.Context, key string, value string) error {
	s.Put(key, value)
	return nil
}

func (s *Store) SetNumber(_ context.Context, key string, value float64) error {
	s.Put(key, value)
	return nil
}

// New creates a memory store seeded with values
func New(seed map[string]interface{}) *Store {
	return &Store{Values: settings.NewValues(seed)}
}

var _ settings.Store = (*Store)(nil)
