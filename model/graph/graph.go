package graph

import (
	"fmt"
	"sort"

	"github.com/viant/fluxblock/internal/idgen"
)

// Graph owns blocks and the connectors between their ports
type Graph struct {
	blocks     []*Block
	byGUID     map[string]*Block
	connectors map[string]*Connector
	seq        uint64
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		byGUID:     map[string]*Block{},
		connectors: map[string]*Connector{},
	}
}

// AddBlock adds a block instance
func (g *Graph) AddBlock(block *Block) error {
	if _, ok := g.byGUID[block.GUID]; ok {
		return fmt.Errorf("%w: %v", ErrBlockExists, block.GUID)
	}
	g.blocks = append(g.blocks, block)
	g.byGUID[block.GUID] = block
	return nil
}

// Block returns a block by GUID
func (g *Graph) Block(guid string) *Block {
	return g.byGUID[guid]
}

// Contains returns true when block is a live member of the graph
func (g *Graph) Contains(block *Block) bool {
	return block != nil && g.byGUID[block.GUID] == block
}

// Blocks returns blocks in insertion order
func (g *Graph) Blocks() []*Block {
	return append([]*Block(nil), g.blocks...)
}

// RemoveBlock removes and destroys a block that has no connections left
func (g *Graph) RemoveBlock(guid string) error {
	block, ok := g.byGUID[guid]
	if !ok {
		return fmt.Errorf("%w: %v", ErrBlockNotFound, guid)
	}
	for _, port := range block.AllPorts() {
		if port.IsConnected() {
			return fmt.Errorf("%w: %v", ErrBlockConnected, guid)
		}
	}
	for i, candidate := range g.blocks {
		if candidate == block {
			g.blocks = append(g.blocks[:i], g.blocks[i+1:]...)
			break
		}
	}
	delete(g.byGUID, guid)
	block.Destroy()
	return nil
}

// Attach creates a connector from an output port to an input port, links it into
// both endpoints, updates both blocks' counts and notifies their PortConnect hooks.
// Validation is the caller's responsibility.
func (g *Graph) Attach(from, to *Port) *Connector {
	g.seq++
	connector := &Connector{GUID: idgen.New(), From: from, To: to, Seq: g.seq, attached: true}
	g.connectors[connector.GUID] = connector
	from.attach(connector)
	to.attach(connector)
	from.block.incrementConnected()
	to.block.incrementConnected()
	from.block.Definition.Hooks.portConnect(from.block, from, to)
	to.block.Definition.Hooks.portConnect(to.block, to, from)
	return connector
}

// Detach unlinks a connector from both endpoints and notifies the PortUnConnect hooks.
// It returns false when the connector is not attached.
func (g *Graph) Detach(connector *Connector) bool {
	if connector == nil || !connector.attached {
		return false
	}
	connector.attached = false
	delete(g.connectors, connector.GUID)
	fromOk := connector.From.detach(connector)
	toOk := connector.To.detach(connector)
	assert(fromOk && toOk, "connector not mirrored on both endpoints", "connector", connector.GUID)
	connector.SetActive(false)
	if fromOk {
		connector.From.block.decrementConnected()
	}
	if toOk {
		connector.To.block.decrementConnected()
	}
	connector.From.block.Definition.Hooks.portUnConnect(connector.From.block, connector.From)
	connector.To.block.Definition.Hooks.portUnConnect(connector.To.block, connector.To)
	return true
}

// Connector returns an attached connector by GUID
func (g *Graph) Connector(guid string) *Connector {
	return g.connectors[guid]
}

// Connectors returns attached connectors ordered by establishment
func (g *Graph) Connectors() []*Connector {
	ret := make([]*Connector, 0, len(g.connectors))
	for _, connector := range g.connectors {
		ret = append(ret, connector)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Seq < ret[j].Seq })
	return ret
}

// Verify checks that every connector joins blocks of the graph, is mirrored on
// both endpoints, and that block counts match the attached connector endpoints.
func (g *Graph) Verify() error {
	counts := map[*Block]int{}
	for _, connector := range g.connectors {
		if connector.From.Direction != Output || connector.To.Direction != Input {
			return fmt.Errorf("%w: connector %v direction", ErrInvariantViolation, connector.GUID)
		}
		if !g.Contains(connector.From.block) || !g.Contains(connector.To.block) {
			return fmt.Errorf("%w: connector %v references a block outside the graph", ErrInvariantViolation, connector.GUID)
		}
		if connector.From.ConnectorTo(connector.To) != connector || connector.To.ConnectorTo(connector.From) != connector {
			return fmt.Errorf("%w: connector %v is not mirrored", ErrInvariantViolation, connector.GUID)
		}
		counts[connector.From.block]++
		counts[connector.To.block]++
	}
	for _, block := range g.blocks {
		for _, port := range block.AllPorts() {
			for _, connector := range port.connectors {
				if g.connectors[connector.GUID] != connector {
					return fmt.Errorf("%w: port %v holds a detached connector %v", ErrInvariantViolation, port.GUID, connector.GUID)
				}
			}
		}
		if block.connectedPortCount != counts[block] {
			return fmt.Errorf("%w: block %v connected count %v, expected %v", ErrInvariantViolation, block.GUID, block.connectedPortCount, counts[block])
		}
	}
	return nil
}
