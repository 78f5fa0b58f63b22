package fluxblock

import (
	"github.com/go-logr/logr"
	"github.com/viant/afs/storage"
	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/service/event"
	"github.com/viant/fluxblock/service/paramtype"
	"github.com/viant/fluxblock/service/registry"
	"github.com/viant/fluxblock/service/settings"
	"github.com/viant/fluxblock/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents a service option
type Option func(s *Service)

// WithRegistry sets the block registry
func WithRegistry(registry *registry.Service) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithSettings sets the settings store
func WithSettings(store settings.Store) Option {
	return func(s *Service) {
		s.settings = store
	}
}

// WithCatalog sets the parameter kind catalog
func WithCatalog(catalog *paramtype.Catalog) Option {
	return func(s *Service) {
		s.catalog = catalog
	}
}

// WithEvents publishes graph changes of every editor to publisher
func WithEvents(publisher *event.Publisher) Option {
	return func(s *Service) {
		s.events = publisher
	}
}

// WithPlatform sets the current platform, overriding the settings store
func WithPlatform(platform graph.Platform) Option {
	return func(s *Service) {
		s.platform = &platform
	}
}

// WithEditorMode sets the editor mode, overriding the settings store
func WithEditorMode(editorMode bool) Option {
	return func(s *Service) {
		s.editorMode = &editorMode
	}
}

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetaBaseURL sets the base URL of relative pack locations
func WithMetaBaseURL(URL string) Option {
	return func(s *Service) {
		s.metaBaseURL = URL
	}
}

// WithMetaFsOptions with pack file system options
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.metaFsOptions = options
	}
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter; a non empty
// outputFile redirects traces to that file. Only the first initialisation takes effect.
func WithTracing(outputFile string) Option {
	return func(s *Service) {
		if err := tracing.Init(tracing.ServiceName, tracing.ServiceVersion, outputFile); err != nil {
			s.initErrors = append(s.initErrors, err)
		}
	}
}

// WithTracingExporter configures OpenTelemetry tracing with a custom exporter
func WithTracingExporter(exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(tracing.ServiceName, tracing.ServiceVersion, exporter); err != nil {
			s.initErrors = append(s.initErrors, err)
		}
	}
}
