package registry

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/service/dao"
	"github.com/viant/fluxblock/service/dao/store"
)

// ErrDuplicateRegistration is reported when a guid is registered twice; the first record is kept
var ErrDuplicateRegistration = errors.New("block guid already registered")

const platformParameter = "platform"

// Service is a block registration catalog with a lazily built category tree.
// Unregistering a pack never unregisters its blocks; callers remove them explicitly.
type Service struct {
	mux        sync.RWMutex
	blocks     dao.Service[string, graph.Definition]
	packs      []*graph.Pack
	categories []*Category
	categoryOf map[string]*Category
	editorMode bool
	platform   graph.Platform
	logger     logr.Logger
}

// RegisterBlock stores a record stamped with its pack. A duplicate guid is logged
// and ignored. In editor mode the record is placed in the category tree when updateList is set.
func (s *Service) RegisterBlock(def *graph.Definition, pack *graph.Pack, updateList bool) bool {
	if def == nil {
		return false
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	ctx := context.Background()
	if existing, _ := s.blocks.Load(ctx, def.GUID); existing != nil {
		s.logger.Info("ignoring block registration", "level", "warning", "reason", ErrDuplicateRegistration.Error(), "guid", def.GUID, "name", def.Name)
		return false
	}
	def.Pack = pack
	if err := s.blocks.Save(ctx, def); err != nil {
		s.logger.Error(err, "failed to register block", "name", def.Name)
		return false
	}
	if s.editorMode && updateList {
		s.updateBlocksList()
	}
	return true
}

// UnregisterBlock removes a record, detaching it from its category node first
func (s *Service) UnregisterBlock(guid string, updateList bool) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	ctx := context.Background()
	def, _ := s.blocks.Load(ctx, guid)
	if def == nil {
		return false
	}
	if category, ok := s.categoryOf[guid]; ok {
		category.removeBlock(def)
		delete(s.categoryOf, guid)
	}
	def.Grouped = false
	_ = s.blocks.Delete(ctx, guid)
	if s.editorMode && updateList {
		s.updateBlocksList()
	}
	return true
}

// GetRegisteredBlock returns a record by guid, or nil
func (s *Service) GetRegisteredBlock(guid string) *graph.Definition {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret, _ := s.blocks.Load(context.Background(), guid)
	return ret
}

// Blocks returns records in registration order
func (s *Service) Blocks() []*graph.Definition {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret, _ := s.blocks.List(context.Background())
	return ret
}

// BlocksForPlatform returns records supporting the current platform
func (s *Service) BlocksForPlatform() []*graph.Definition {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret, _ := s.blocks.List(context.Background(), dao.NewParameter(platformParameter, s.platform))
	return ret
}

// RegisterBlockPack appends a pack. A pack with an already registered name replaces
// the registered one only when its version is higher.
func (s *Service) RegisterBlockPack(pack *graph.Pack) error {
	if pack == nil {
		return dao.ErrNilEntity
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	for i, candidate := range s.packs {
		if candidate.Name != pack.Name {
			continue
		}
		newer, err := pack.NewerThan(candidate)
		if err != nil {
			return err
		}
		if !newer {
			s.logger.Info("ignoring pack registration", "level", "warning", "pack", pack.Name, "version", pack.Version, "registered", candidate.Version)
			return nil
		}
		s.packs[i] = pack
		s.logger.Info("upgraded block pack", "pack", pack.Name, "version", pack.Version)
		return nil
	}
	if _, err := pack.SemVer(); err != nil {
		return err
	}
	s.packs = append(s.packs, pack)
	s.logger.Info("registered block pack", "pack", pack.Name, "version", pack.Version)
	return nil
}

// UnregisterBlockPack removes a pack by name. Blocks of the pack stay registered.
func (s *Service) UnregisterBlockPack(name string) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	for i, candidate := range s.packs {
		if candidate.Name == name {
			s.packs = append(s.packs[:i], s.packs[i+1:]...)
			s.logger.Info("unregistered block pack", "pack", name)
			return true
		}
	}
	return false
}

// GetBlockPackRegistered returns a pack by name, or nil
func (s *Service) GetBlockPackRegistered(name string) *graph.Pack {
	s.mux.RLock()
	defer s.mux.RUnlock()
	for _, candidate := range s.packs {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// Packs returns registered packs in registration order
func (s *Service) Packs() []*graph.Pack {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return append([]*graph.Pack(nil), s.packs...)
}

// SetEditorMode enables category tree maintenance
func (s *Service) SetEditorMode(editorMode bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.editorMode = editorMode
}

// EditorMode returns true when category tree maintenance is enabled
func (s *Service) EditorMode() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.editorMode
}

// SetCurrentPlatform sets the platform used by BlocksForPlatform
func (s *Service) SetCurrentPlatform(platform graph.Platform) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.platform = platform
}

// CurrentPlatform returns the platform used by BlocksForPlatform
func (s *Service) CurrentPlatform() graph.Platform {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.platform
}

// FindBlocksListCategory returns the node for a slash-delimited path, creating missing nodes.
// Names are matched exactly; "" is the implicit root.
func (s *Service) FindBlocksListCategory(path string) *Category {
	s.mux.Lock()
	defer s.mux.Unlock()
	return findOrCreate(path, &s.categories)
}

// UpdateBlocksList places every ungrouped record into the category tree; it is a no-op outside editor mode
func (s *Service) UpdateBlocksList() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.updateBlocksList()
}

func (s *Service) updateBlocksList() {
	if !s.editorMode {
		return
	}
	defs, _ := s.blocks.List(context.Background())
	for _, def := range defs {
		if def.Grouped {
			continue
		}
		category := findOrCreate(def.Category, &s.categories)
		s.categoryOf[def.GUID] = category
		if !category.hasBlock(def) {
			category.Blocks = append(category.Blocks, def)
		}
		def.Grouped = true
	}
}

// CategoryOf returns the node a record was placed in, or nil
func (s *Service) CategoryOf(guid string) *Category {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.categoryOf[guid]
}

// Categories returns the top-level nodes, the implicit root first
func (s *Service) Categories() []*Category {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return append([]*Category(nil), s.categories...)
}

// FilterCategories marks nodes whose subtree holds a block with a name containing keyword, case-insensitively.
// An empty keyword shows every node.
func (s *Service) FilterCategories(keyword string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	keyword = strings.ToLower(keyword)
	for _, node := range s.categories {
		node.filter(keyword)
	}
}

// New creates a registry
func New(options ...Option) *Service {
	root := newCategory("")
	root.Open = true
	ret := &Service{
		categories: []*Category{root},
		categoryOf: map[string]*Category{},
		platform:   graph.PlatformAll,
		logger:     logr.Discard(),
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.blocks = store.NewMemoryStore[string, graph.Definition](
		func(def *graph.Definition) string { return def.GUID },
		store.WithFilter[string, graph.Definition](platformParameter, func(def *graph.Definition, value interface{}) bool {
			platform, _ := value.(graph.Platform)
			return def.SupportsPlatform(platform)
		}))
	return ret
}
