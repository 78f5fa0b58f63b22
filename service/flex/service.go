package flex

import (
	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/model/types"
	"github.com/viant/fluxblock/service/paramtype"
)

// Service resolves flex groups: ports declared as any in a named group adopt the
// type of a concrete peer connected to any group they are transitively linked to,
// and revert to their declared type once no concrete peer remains.
type Service struct {
	catalog    *paramtype.Catalog
	logger     logr.Logger
	onChange   func(port *graph.Port)
	inProgress map[group]bool
	deferred   []group
}

type group struct {
	block *graph.Block
	key   string
}

type source struct {
	descriptor *types.Descriptor
	connector  *graph.Connector
}

// Propagate re-derives every flex group reachable from the supplied ports.
// Ports that are not flexible are ignored.
func (s *Service) Propagate(ports ...*graph.Port) {
	visited := map[group]bool{}
	for _, port := range ports {
		if port == nil || port.Block() == nil || !port.IsFlexible() {
			continue
		}
		seed := group{block: port.Block(), key: port.Flex}
		if visited[seed] {
			continue
		}
		component := s.component(seed, visited, nil)
		s.resolve(component)
	}
}

// Prospective returns the type port would have once the excluded connectors
// are gone. It does not modify the graph.
func (s *Service) Prospective(port *graph.Port, excluded ...*graph.Connector) types.Descriptor {
	if port == nil {
		return types.Any()
	}
	if port.Block() == nil || !port.IsFlexible() {
		return port.Type
	}
	skip := make(map[*graph.Connector]bool, len(excluded))
	for _, connector := range excluded {
		skip[connector] = true
	}
	seed := group{block: port.Block(), key: port.Flex}
	component := s.component(seed, map[group]bool{}, skip)
	ret := port.Declared.Clone()
	if winner := s.derive(component, skip); winner != nil {
		winner.descriptor.PropagateInto(&ret)
	}
	return ret
}

// component collects flex groups linked through connections between flexible ports
func (s *Service) component(seed group, visited map[group]bool, skip map[*graph.Connector]bool) []group {
	visited[seed] = true
	queue := []group{seed}
	var ret []group
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		ret = append(ret, current)
		for _, member := range current.block.FlexMembers(current.key) {
			for _, connection := range member.Connections() {
				peer := connection.Port
				if skip[connection.Connector] || !peer.IsFlexible() || peer.Block() == nil {
					continue
				}
				next := group{block: peer.Block(), key: peer.Flex}
				if visited[next] {
					continue
				}
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return ret
}

// derive returns the declared type of the concrete peer connected through the
// most recently established connector, or nil when the component has none.
func (s *Service) derive(component []group, skip map[*graph.Connector]bool) *source {
	var winner *source
	for _, current := range component {
		for _, member := range current.block.FlexMembers(current.key) {
			for _, connection := range member.Connections() {
				peer := connection.Port
				if skip[connection.Connector] || peer.IsExecute() || peer.Declared.IsAnyFlavored() {
					continue
				}
				if winner == nil || connection.Connector.Seq > winner.connector.Seq {
					winner = &source{descriptor: &peer.Declared, connector: connection.Connector}
				}
			}
		}
	}
	return winner
}

// resolve updates a component. A request for a group that is already being
// resolved is deferred and re-run once after the outermost resolution returns.
func (s *Service) resolve(component []group) {
	for _, current := range component {
		if s.inProgress[current] {
			s.logger.V(1).Info("deferring flex group resolution", "block", current.block.GUID, "group", current.key)
			s.deferred = append(s.deferred, component...)
			return
		}
	}
	s.resolveOnce(component)
	if len(s.inProgress) > 0 || len(s.deferred) == 0 {
		return
	}
	deferred := s.deferred
	s.deferred = nil
	visited := map[group]bool{}
	for _, seed := range deferred {
		if !visited[seed] {
			s.resolveOnce(s.component(seed, visited, nil))
		}
	}
	if len(s.deferred) > 0 {
		s.logger.Info("dropping nested flex group resolution", "level", "warning", "groups", len(s.deferred))
		s.deferred = nil
	}
}

func (s *Service) resolveOnce(component []group) {
	for _, current := range component {
		s.inProgress[current] = true
	}
	defer func() {
		for _, current := range component {
			delete(s.inProgress, current)
		}
	}()

	winner := s.derive(component, nil)
	resolved := string(types.KindAny)
	if winner != nil {
		resolved = string(winner.descriptor.Kind)
	}
	var changed []*graph.Port
	for _, current := range component {
		for _, member := range current.block.FlexMembers(current.key) {
			if s.apply(member, winner) {
				changed = append(changed, member)
			}
		}
		if flexable := current.block.Flexable(current.key); flexable != nil {
			if flexable.SetResultToData != "" {
				current.block.Data[flexable.SetResultToData] = resolved
			}
			if flexable.SetResultToOptions != "" {
				current.block.Options[flexable.SetResultToOptions] = resolved
			}
		}
		s.logger.V(1).Info("flex group resolved", "block", current.block.GUID, "group", current.key, "type", resolved)
	}
	for _, port := range changed {
		port.NotifyTypeChange()
		if s.onChange != nil {
			s.onChange(port)
		}
	}
}

// apply sets a member type from the winning source, or restores the declared type.
// The member value is reset to the catalog default of its new type when the type changes.
func (s *Service) apply(member *graph.Port, winner *source) bool {
	target := member.Declared.Clone()
	if winner != nil {
		winner.descriptor.PropagateInto(&target)
	}
	if member.Type.Equal(&target) {
		return false
	}
	member.Type = target
	member.Value = s.catalog.Default(target)
	return true
}

// New creates a propagation service
func New(options ...Option) *Service {
	ret := &Service{
		logger:     logr.Discard(),
		inProgress: map[group]bool{},
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.catalog == nil {
		ret.catalog = paramtype.New()
	}
	return ret
}
