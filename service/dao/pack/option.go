package pack

import (
	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/service/meta"
)

// Option represents a pack loader option
type Option func(s *Service)

// WithMetaService sets the document loader
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.meta = service
	}
}

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
