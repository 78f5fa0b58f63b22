package pack

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/viant/afs"
	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/service/meta"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPack is returned when a pack document violates the pack schema
var ErrInvalidPack = errors.New("invalid block pack")

// ValidationError lists schema violations of a pack document
type ValidationError struct {
	URL    string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		messages[i] = issue.String()
	}
	return fmt.Sprintf("%v %v: %v", ErrInvalidPack, e.URL, strings.Join(messages, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPack
}

// Loaded is a decoded pack with its block definitions
type Loaded struct {
	Pack   *graph.Pack
	Blocks []*graph.Definition
}

// Service loads block pack documents
type Service struct {
	meta   *meta.Service
	logger logr.Logger
}

// Check validates a pack document without decoding it
func (s *Service) Check(ctx context.Context, URL string) (*Validation, error) {
	data, err := s.meta.Download(ctx, URL)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// Load reads, validates and decodes a pack document
func (s *Service) Load(ctx context.Context, URL string) (*Loaded, error) {
	data, err := s.meta.Download(ctx, URL)
	if err != nil {
		return nil, err
	}
	validation, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("failed to validate %v: %w", URL, err)
	}
	if !validation.Valid {
		return nil, &ValidationError{URL: s.meta.URL(URL), Issues: validation.Issues}
	}
	doc := &document{}
	if err = yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", URL, err)
	}
	ret := &Loaded{Pack: doc.pack(s.meta.URL(URL))}
	if _, err = ret.Pack.SemVer(); err != nil {
		return nil, err
	}
	for _, block := range doc.Blocks {
		def, err := block.definition()
		if err != nil {
			return nil, fmt.Errorf("failed to load %v: %w", URL, err)
		}
		ret.Blocks = append(ret.Blocks, def)
	}
	s.logger.V(1).Info("loaded block pack", "pack", ret.Pack.Name, "version", ret.Pack.Version, "blocks", len(ret.Blocks))
	return ret, nil
}

// LoadAll loads every YAML pack document under location
func (s *Service) LoadAll(ctx context.Context, location string) ([]*Loaded, error) {
	URLs, err := s.meta.List(ctx, location)
	if err != nil {
		return nil, err
	}
	var ret []*Loaded
	for _, URL := range URLs {
		loaded, err := s.Load(ctx, URL)
		if err != nil {
			return nil, err
		}
		ret = append(ret, loaded)
	}
	return ret, nil
}

// New creates a pack loader
func New(options ...Option) *Service {
	ret := &Service{logger: logr.Discard()}
	for _, opt := range options {
		opt(ret)
	}
	if ret.meta == nil {
		ret.meta = meta.New(afs.New(), "")
	}
	return ret
}
