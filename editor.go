package fluxblock

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/service/connection"
	"github.com/viant/fluxblock/service/dao"
	"github.com/viant/fluxblock/service/event"
	"github.com/viant/fluxblock/tracing"
)

// Editor is one editing session over a graph. It is not safe for concurrent use.
type Editor struct {
	service     *Service
	graph       *graph.Graph
	connections *connection.Service
	events      *event.Publisher
	logger      logr.Logger
}

// Graph returns the edited graph
func (e *Editor) Graph() *graph.Graph {
	return e.graph
}

// AddBlock instantiates a registered block. A block that does not run on the
// current platform is still added, with an UnsupportedPlatform issue.
func (e *Editor) AddBlock(ctx context.Context, guid string) (block *graph.Block, err error) {
	ctx, span := tracing.StartSpan(ctx, "editor.addBlock", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"definition": guid})
	def := e.service.registry.GetRegisteredBlock(guid)
	if def == nil {
		return nil, fmt.Errorf("block definition %v: %w", guid, dao.ErrNotFound)
	}
	return e.add(ctx, graph.NewBlock(def))
}

// CloneBlock adds a copy of block with its options and dynamic ports
func (e *Editor) CloneBlock(ctx context.Context, block *graph.Block) (clone *graph.Block, err error) {
	ctx, span := tracing.StartSpan(ctx, "editor.cloneBlock", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	if e.graph.Block(block.GUID) == nil {
		return nil, fmt.Errorf("%w: %v", graph.ErrBlockNotFound, block.GUID)
	}
	return e.add(ctx, block.Clone())
}

func (e *Editor) add(ctx context.Context, block *graph.Block) (*graph.Block, error) {
	platform := e.service.registry.CurrentPlatform()
	if !block.CheckPlatform(platform) {
		e.logger.Info("block does not run on current platform", "level", "warning", "guid", block.GUID, "name", block.Name, "platform", platform)
	}
	if err := e.graph.AddBlock(block); err != nil {
		return nil, err
	}
	e.events.Publish(ctx, event.New(event.BlockAdded).WithBlock(block.GUID))
	return block, nil
}

// DeleteBlock disconnects and removes a block
func (e *Editor) DeleteBlock(ctx context.Context, block *graph.Block) (err error) {
	ctx, span := tracing.StartSpan(ctx, "editor.deleteBlock", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	var connectors []*graph.Connector
	for _, port := range block.AllPorts() {
		connectors = append(connectors, port.Connectors()...)
	}
	if err = e.connections.RemoveBlock(block); err != nil {
		return err
	}
	e.disconnected(ctx, connectors)
	e.events.Publish(ctx, event.New(event.BlockRemoved).WithBlock(block.GUID))
	return nil
}

// AddPort adds a dynamic port to block
func (e *Editor) AddPort(ctx context.Context, block *graph.Block, def *graph.PortDefinition, value interface{}) (*graph.Port, error) {
	port, err := block.AddPort(def, true, value)
	if err != nil {
		return nil, err
	}
	e.events.Publish(ctx, event.New(event.PortAdded).WithBlock(block.GUID).WithPort(port.GUID))
	return port, nil
}

// UserAddPort adds the ports the block's UserAddPort hook offers for direction and kind
func (e *Editor) UserAddPort(ctx context.Context, block *graph.Block, direction graph.Direction, kind graph.AddKind) ([]*graph.Port, error) {
	ports, err := block.UserAddPort(direction, kind)
	for _, port := range ports {
		e.events.Publish(ctx, event.New(event.PortAdded).WithBlock(block.GUID).WithPort(port.GUID))
	}
	return ports, err
}

// DeletePort disconnects and removes a port
func (e *Editor) DeletePort(ctx context.Context, port *graph.Port) (err error) {
	ctx, span := tracing.StartSpan(ctx, "editor.deletePort", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	block := port.Block()
	if block == nil {
		return fmt.Errorf("%w: %v", graph.ErrPortNotFound, port.Name)
	}
	connectors := port.Connectors()
	e.connections.UnConnectPort(port)
	e.disconnected(ctx, connectors)
	if err = e.connections.RemovePort(port); err != nil {
		return err
	}
	e.events.Publish(ctx, event.New(event.PortRemoved).WithBlock(block.GUID).WithPort(port.GUID))
	return nil
}

// Connect links an output port to an input port
func (e *Editor) Connect(ctx context.Context, from, to *graph.Port) (connector *graph.Connector, err error) {
	ctx, span := tracing.StartSpan(ctx, "editor.connect", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	var previous []*graph.Connector
	if from != nil && to != nil {
		span.WithAttributes(map[string]string{"from": from.GUID, "to": to.GUID})
		previous = to.Connectors()
	}
	if connector, err = e.connections.Connect(from, to); err != nil {
		return nil, err
	}
	e.disconnected(ctx, previous)
	e.events.Publish(ctx, event.New(event.Connected).WithConnector(connector.GUID).WithBlock(blockID(to)).WithPort(to.GUID))
	return connector, nil
}

// Disconnect removes a connector
func (e *Editor) Disconnect(ctx context.Context, connector *graph.Connector) {
	ctx, span := tracing.StartSpan(ctx, "editor.disconnect", tracing.KindInternal)
	defer tracing.EndSpan(span, nil)
	span.WithAttributes(map[string]string{"connector": connector.GUID})
	wasAttached := connector.Attached()
	e.connections.Disconnect(connector)
	if wasAttached {
		e.disconnected(ctx, []*graph.Connector{connector})
	}
}

// UnConnectPort removes every connection of port
func (e *Editor) UnConnectPort(ctx context.Context, port *graph.Port) {
	ctx, span := tracing.StartSpan(ctx, "editor.unConnectPort", tracing.KindInternal)
	defer tracing.EndSpan(span, nil)
	connectors := port.Connectors()
	span.WithCount("connections", len(connectors))
	e.connections.UnConnectPort(port)
	e.disconnected(ctx, connectors)
}

// disconnected publishes Disconnected for every connector that is no longer attached
func (e *Editor) disconnected(ctx context.Context, connectors []*graph.Connector) {
	for _, connector := range connectors {
		if connector.Attached() {
			continue
		}
		e.events.Publish(ctx, event.New(event.Disconnected).WithConnector(connector.GUID).WithBlock(blockID(connector.To)).WithPort(connector.To.GUID))
	}
}

// blockID returns the owner of port, the port may have been removed already
func blockID(port *graph.Port) string {
	if block := port.Block(); block != nil {
		return block.GUID
	}
	return ""
}

func (e *Editor) typeChanged(port *graph.Port) {
	changed := event.New(event.PortTypeChanged).WithBlock(blockID(port)).WithPort(port.GUID)
	changed.PortType = port.Type.String()
	e.events.Publish(context.Background(), changed)
}
