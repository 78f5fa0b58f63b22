package meta

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/option"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service loads YAML documents from any afs supported storage, expanding
// ${env.KEY} expressions before decoding.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// URL resolves a relative location against the base URL
func (s *Service) URL(location string) string {
	if s.baseURL == "" || !url.IsRelative(location) {
		return location
	}
	return url.Join(s.baseURL, location)
}

// Download returns raw document content with env expressions expanded
func (s *Service) Download(ctx context.Context, location string) ([]byte, error) {
	URL := s.URL(location)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	return []byte(expandEnvExpr(string(data))), nil
}

// Load decodes a YAML (or JSON) document into v
func (s *Service) Load(ctx context.Context, location string, v interface{}) error {
	data, err := s.Download(ctx, location)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %v: %w", s.URL(location), err)
	}
	return nil
}

// Exists returns true when the location exists
func (s *Service) Exists(ctx context.Context, location string) (bool, error) {
	return s.fs.Exists(ctx, s.URL(location), s.options...)
}

// List returns URLs of YAML documents under location, recursively
func (s *Service) List(ctx context.Context, location string) ([]string, error) {
	URL := s.URL(location)
	options := append([]storage.Option{option.NewRecursive(true)}, s.options...)
	objects, err := s.fs.List(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %v: %w", URL, err)
	}
	var ret []string
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		name := object.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			ret = append(ret, object.URL())
		}
	}
	return ret, nil
}

// New creates a meta service
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{fs: fs, baseURL: baseURL, options: options}
}
