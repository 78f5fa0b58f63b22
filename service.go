package fluxblock

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/service/connection"
	"github.com/viant/fluxblock/service/dao/pack"
	"github.com/viant/fluxblock/service/event"
	"github.com/viant/fluxblock/service/flex"
	"github.com/viant/fluxblock/service/meta"
	"github.com/viant/fluxblock/service/paramtype"
	"github.com/viant/fluxblock/service/registry"
	"github.com/viant/fluxblock/service/settings"
	"github.com/viant/fluxblock/service/settings/fs"
	"github.com/viant/fluxblock/service/settings/memory"
	"github.com/viant/fluxblock/tracing"
)

// Service wires the block registry, pack loader and settings store, and opens editors
type Service struct {
	registry      *registry.Service
	settings      settings.Store
	catalog       *paramtype.Catalog
	packs         *pack.Service
	events        *event.Publisher
	metaBaseURL   string
	metaFsOptions []storage.Option
	platform      *graph.Platform
	editorMode    *bool
	logger        logr.Logger
	initErrors    []error
}

// Registry returns the block registry
func (s *Service) Registry() *registry.Service {
	return s.registry
}

// Settings returns the settings store
func (s *Service) Settings() settings.Store {
	return s.settings
}

// Catalog returns the parameter kind catalog
func (s *Service) Catalog() *paramtype.Catalog {
	return s.catalog
}

// Packs returns the pack loader
func (s *Service) Packs() *pack.Service {
	return s.packs
}

// Events returns the graph change publisher shared by editors, or nil when events are disabled
func (s *Service) Events() *event.Publisher {
	return s.events
}

// LoadPack loads a pack document and registers the pack with its blocks
func (s *Service) LoadPack(ctx context.Context, URL string) (loaded *pack.Loaded, err error) {
	ctx, span := tracing.StartSpan(ctx, "pack.load", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"url": URL})
	if loaded, err = s.packs.Load(ctx, URL); err != nil {
		return nil, err
	}
	registered := s.register(loaded)
	span.WithAttributes(map[string]string{"pack": loaded.Pack.Name}).WithCount("blocks", registered)
	return loaded, nil
}

// LoadPacks loads and registers pack documents in order, stopping on the first error
func (s *Service) LoadPacks(ctx context.Context, URLs ...string) ([]*pack.Loaded, error) {
	var ret []*pack.Loaded
	for _, URL := range URLs {
		loaded, err := s.LoadPack(ctx, URL)
		if err != nil {
			return ret, err
		}
		ret = append(ret, loaded)
	}
	return ret, nil
}

// LoadPackDir loads and registers every pack document under location
func (s *Service) LoadPackDir(ctx context.Context, location string) (ret []*pack.Loaded, err error) {
	ctx, span := tracing.StartSpan(ctx, "pack.loadDir", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"location": location})
	if ret, err = s.packs.LoadAll(ctx, location); err != nil {
		return nil, err
	}
	for _, loaded := range ret {
		s.register(loaded)
	}
	span.WithCount("packs", len(ret))
	return ret, nil
}

func (s *Service) register(loaded *pack.Loaded) int {
	if err := s.registry.RegisterBlockPack(loaded.Pack); err != nil {
		s.logger.Error(err, "failed to register block pack", "pack", loaded.Pack.Name)
	}
	registered := 0
	for _, def := range loaded.Blocks {
		if s.registry.RegisterBlock(def, loaded.Pack, false) {
			registered++
		}
	}
	s.registry.UpdateBlocksList()
	return registered
}

// SetPlatform changes the current platform and stores it in settings
func (s *Service) SetPlatform(ctx context.Context, platform graph.Platform) error {
	if !platform.Known() {
		return fmt.Errorf("unknown platform %q", platform)
	}
	s.registry.SetCurrentPlatform(platform)
	return s.settings.SetString(ctx, settings.KeyPlatform, string(platform))
}

// SetEditorMode toggles editor mode and stores it in settings. Enabling it groups pending blocks.
func (s *Service) SetEditorMode(ctx context.Context, editorMode bool) error {
	s.registry.SetEditorMode(editorMode)
	s.registry.UpdateBlocksList()
	return s.settings.SetBool(ctx, settings.KeyEditorMode, editorMode)
}

// NewEditor opens an editing session over an empty graph
func (s *Service) NewEditor() *Editor {
	logger := s.logger.WithName("editor")
	ret := &Editor{service: s, graph: graph.New(), events: s.events, logger: logger}
	flexService := flex.New(
		flex.WithLogger(logger),
		flex.WithCatalog(s.catalog),
		flex.WithTypeChangeListener(ret.typeChanged))
	ret.connections = connection.New(ret.graph, connection.WithFlex(flexService), connection.WithLogger(logger))
	return ret
}

func (s *Service) init(options []Option) {
	for _, opt := range options {
		opt(s)
	}
	if s.settings == nil {
		s.settings = memory.New(nil)
	}
	if s.catalog == nil {
		s.catalog = paramtype.New()
	}
	editorMode := s.settings.Bool(settings.KeyEditorMode, false)
	if s.editorMode != nil {
		editorMode = *s.editorMode
	}
	platform := graph.Platform(s.settings.String(settings.KeyPlatform, string(graph.PlatformAll)))
	if s.platform != nil {
		platform = *s.platform
	}
	if !platform.Known() {
		s.logger.Info("ignoring unknown platform", "level", "warning", "platform", platform)
		platform = graph.PlatformAll
	}
	if s.registry == nil {
		s.registry = registry.New(
			registry.WithLogger(s.logger.WithName("registry")),
			registry.WithEditorMode(editorMode),
			registry.WithPlatform(platform))
	} else {
		s.registry.SetEditorMode(editorMode)
		s.registry.SetCurrentPlatform(platform)
	}
	metaService := meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	s.packs = pack.New(pack.WithMetaService(metaService), pack.WithLogger(s.logger.WithName("pack")))
	for _, err := range s.initErrors {
		s.logger.Error(err, "failed to initialise service")
	}
}

// New creates a service
func New(options ...Option) *Service {
	ret := &Service{logger: stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("fluxblock")}
	ret.init(options)
	return ret
}

// NewFromConfig creates a service from cfg, opening the settings document and
// loading the configured packs. Explicit options take precedence over cfg.
func NewFromConfig(ctx context.Context, cfg *Config, options ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	var fromConfig []Option
	if cfg.SettingsURL != "" {
		store, err := fs.New(ctx, afs.New(), cfg.SettingsURL)
		if err != nil {
			return nil, err
		}
		fromConfig = append(fromConfig, WithSettings(store))
	}
	if cfg.EditorMode != nil {
		fromConfig = append(fromConfig, WithEditorMode(*cfg.EditorMode))
	}
	if cfg.Platform != "" {
		fromConfig = append(fromConfig, WithPlatform(graph.Platform(cfg.Platform)))
	}
	if cfg.PackBaseURL != "" {
		fromConfig = append(fromConfig, WithMetaBaseURL(cfg.PackBaseURL))
	}
	if cfg.Tracing.Enabled {
		fromConfig = append(fromConfig, WithTracing(cfg.Tracing.Output))
	}
	ret := New(append(fromConfig, options...)...)
	if len(ret.initErrors) > 0 {
		return nil, errors.Join(ret.initErrors...)
	}
	if _, err := ret.LoadPacks(ctx, cfg.Packs...); err != nil {
		return nil, err
	}
	return ret, nil
}
