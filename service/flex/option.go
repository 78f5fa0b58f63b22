package flex

import (
	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/service/paramtype"
)

// Option represents a propagation service option
type Option func(s *Service)

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithCatalog sets the parameter type catalog used to reset member values
func WithCatalog(catalog *paramtype.Catalog) Option {
	return func(s *Service) {
		s.catalog = catalog
	}
}

// WithTypeChangeListener sets a function called for every port whose type changed,
// after the port's own PortTypeChange hook
func WithTypeChangeListener(listener func(port *graph.Port)) Option {
	return func(s *Service) {
		s.onChange = listener
	}
}
