package connection

import (
	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/service/flex"
)

// Option represents a connection service option
type Option func(s *Service)

// WithFlex sets the flex propagation service
func WithFlex(service *flex.Service) Option {
	return func(s *Service) {
		s.flex = service
	}
}

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
