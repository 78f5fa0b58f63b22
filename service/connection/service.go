package connection

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/service/flex"
)

// Service validates and applies connections between ports of a graph
type Service struct {
	graph  *graph.Graph
	flex   *flex.Service
	logger logr.Logger
}

// Graph returns the managed graph
func (s *Service) Graph() *graph.Graph {
	return s.graph
}

// Connect links an output port to an input port. Connecting an already
// connected pair returns the existing connector. A plain data input holds one
// connection; connecting another one replaces it, and types are checked as they
// would be once the replaced connection is gone.
func (s *Service) Connect(from, to *graph.Port) (*graph.Connector, error) {
	if from == nil || to == nil || from.Block() == nil || to.Block() == nil {
		return nil, ErrDetachedPort
	}
	for _, port := range []*graph.Port{from, to} {
		if !s.graph.Contains(port.Block()) {
			return nil, fmt.Errorf("%w: %v", graph.ErrBlockNotFound, port.Block().GUID)
		}
	}
	if from.Direction != graph.Output || to.Direction != graph.Input {
		return nil, &Error{Kind: ErrDirectionMismatch, From: from, To: to}
	}
	if existing := from.ConnectorTo(to); existing != nil {
		return existing, nil
	}
	fromType, toType := from.Type, to.Type
	if !to.AcceptsMultiple() {
		if replaced := to.Connectors(); len(replaced) > 0 {
			fromType = s.flex.Prospective(from, replaced...)
			toType = s.flex.Prospective(to, replaced...)
		}
	}
	if !fromType.Compatible(&toType) {
		return nil, &Error{Kind: ErrTypeMismatch, From: from, To: to}
	}
	if !to.AcceptsMultiple() {
		for _, previous := range to.Connectors() {
			s.logger.V(1).Info("replacing input connection", "port", to.GUID, "connector", previous.GUID)
			s.Disconnect(previous)
		}
	}
	connector := s.graph.Attach(from, to)
	s.logger.V(1).Info("connected", "connector", connector.GUID, "from", from.GUID, "to", to.GUID)
	s.flex.Propagate(from, to)
	return connector, nil
}

// Disconnect removes a connector; disconnecting a detached connector is a no-op
func (s *Service) Disconnect(connector *graph.Connector) {
	if !s.graph.Detach(connector) {
		return
	}
	s.logger.V(1).Info("disconnected", "connector", connector.GUID)
	s.flex.Propagate(connector.From, connector.To)
}

// UnConnectPort removes every connection of port
func (s *Service) UnConnectPort(port *graph.Port) {
	for _, connector := range port.Connectors() {
		s.Disconnect(connector)
	}
}

// RemovePort disconnects and removes a port from its block
func (s *Service) RemovePort(port *graph.Port) error {
	block := port.Block()
	if block == nil {
		return fmt.Errorf("%w: %v", graph.ErrPortNotFound, port.Name)
	}
	s.UnConnectPort(port)
	return block.RemovePort(port)
}

// RemoveBlock disconnects every port of a block and removes it from the graph
func (s *Service) RemoveBlock(block *graph.Block) error {
	if s.graph.Block(block.GUID) == nil {
		return fmt.Errorf("%w: %v", graph.ErrBlockNotFound, block.GUID)
	}
	for _, port := range block.AllPorts() {
		s.UnConnectPort(port)
	}
	return s.graph.RemoveBlock(block.GUID)
}

// New creates a connection service over g
func New(g *graph.Graph, options ...Option) *Service {
	ret := &Service{graph: g, logger: logr.Discard()}
	for _, opt := range options {
		opt(ret)
	}
	if ret.flex == nil {
		ret.flex = flex.New(flex.WithLogger(ret.logger))
	}
	return ret
}
