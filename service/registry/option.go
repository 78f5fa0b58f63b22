package registry

import (
	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/model/graph"
)

// Option represents a registry option
type Option func(s *Service)

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithEditorMode enables category tree maintenance
func WithEditorMode(editorMode bool) Option {
	return func(s *Service) {
		s.editorMode = editorMode
	}
}

// WithPlatform sets the current platform
func WithPlatform(platform graph.Platform) Option {
	return func(s *Service) {
		s.platform = platform
	}
}
