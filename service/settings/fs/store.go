package fs

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/fluxblock/service/settings"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

// Store keeps settings in a YAML document on any afs supported storage.
// Every setter rewrites the document.
type Store struct {
	*settings.Values
	fs  afs.Service
	URL string
}

func (s *Store) SetBool(ctx context.Context, key string, value bool) error {
	s.Put(key, value)
	return s.persist(ctx)
}

func (s *Store) SetString(ctx context.Context, key string, value string) error {
	s.Put(key, value)
	return s.persist(ctx)
}

func (s *Store) SetNumber(ctx context.Context, key string, value float64) error {
	s.Put(key, value)
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	values := toolbox.DeleteEmptyKeys(s.Snapshot())
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err = s.fs.Upload(ctx, s.URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write settings %v: %w", s.URL, err)
	}
	return nil
}

// New loads a settings document; a missing document yields an empty store
func New(ctx context.Context, fs afs.Service, URL string) (*Store, error) {
	seed := map[string]interface{}{}
	exists, err := fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check settings %v: %w", URL, err)
	}
	if exists {
		data, err := fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings %v: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("failed to decode settings %v: %w", URL, err)
		}
	}
	return &Store{Values: settings.NewValues(seed), fs: fs, URL: URL}, nil
}

var _ settings.Store = (*Store)(nil)
