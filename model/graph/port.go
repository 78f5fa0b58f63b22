package graph

import (
	"github.com/viant/fluxblock/model/types"
)

// Direction is a port direction
type Direction string

const (
	Input  Direction = "input"
	Output Direction = "output"
)

// Opposite returns the direction a peer port must have
func (d Direction) Opposite() Direction {
	if d == Input {
		return Output
	}
	return Input
}

// Connection is a connected peer together with the connector linking it
type Connection struct {
	Port      *Port
	Connector *Connector
}

// Port is a typed, directional endpoint on a block
type Port struct {
	GUID        string
	Name        string
	Description string
	Direction   Direction
	// Type is the current type, it differs from Declared while a flex group is resolved
	Type types.Descriptor
	// Declared is the type the port was created with
	Declared types.Descriptor
	Flex     string
	Multi    bool
	// Dynamic is true for ports added at runtime
	Dynamic    bool
	Value      interface{}
	Definition *PortDefinition

	block      *Block
	connectors []*Connector
}

// Block returns the owning block
func (p *Port) Block() *Block {
	return p.block
}

// IsExecute returns true for control-flow ports
func (p *Port) IsExecute() bool {
	return p.Declared.IsExecute()
}

// IsFlexible returns true when the port takes part in flexible typing
func (p *Port) IsFlexible() bool {
	return p.Flex != "" && !p.IsExecute() && p.Declared.IsAnyFlavored()
}

// AcceptsMultiple returns true when the port may hold more than one connection.
// Outputs, execute ports and multi inputs accept many; plain data inputs accept one.
func (p *Port) AcceptsMultiple() bool {
	return p.Direction == Output || p.IsExecute() || p.Multi
}

// Connectors returns a snapshot of the attached connectors in connection order
func (p *Port) Connectors() []*Connector {
	ret := make([]*Connector, len(p.connectors))
	copy(ret, p.connectors)
	return ret
}

// Connections returns every connected peer
func (p *Port) Connections() []Connection {
	ret := make([]Connection, 0, len(p.connectors))
	for _, connector := range p.connectors {
		ret = append(ret, Connection{Port: connector.Other(p), Connector: connector})
	}
	return ret
}

// ConnectedFrom returns the upstream peers of an input port
func (p *Port) ConnectedFrom() []Connection {
	if p.Direction != Input {
		return nil
	}
	return p.Connections()
}

// ConnectedTo returns the downstream peers of an output port
func (p *Port) ConnectedTo() []Connection {
	if p.Direction != Output {
		return nil
	}
	return p.Connections()
}

// IsConnected returns true when the port has at least one connection
func (p *Port) IsConnected() bool {
	return len(p.connectors) > 0
}

// ConnectorTo returns the connector linking p with peer, or nil
func (p *Port) ConnectorTo(peer *Port) *Connector {
	for _, connector := range p.connectors {
		if connector.Other(p) == peer {
			return connector
		}
	}
	return nil
}

// ResetType restores the declared type
func (p *Port) ResetType() bool {
	changed := !p.Type.Equal(&p.Declared)
	p.Type = p.Declared.Clone()
	return changed
}

func (p *Port) attach(connector *Connector) {
	p.connectors = append(p.connectors, connector)
}

func (p *Port) detach(connector *Connector) bool {
	for i, candidate := range p.connectors {
		if candidate == connector {
			p.connectors = append(p.connectors[:i], p.connectors[i+1:]...)
			return true
		}
	}
	return false
}

func newPort(block *Block, def *PortDefinition, guid string, dynamic bool) *Port {
	ret := &Port{
		GUID:        guid,
		Name:        def.Name,
		Description: def.Description,
		Direction:   def.Direction,
		Type:        def.Type.Clone(),
		Declared:    def.Type.Clone(),
		Flex:        def.Flex,
		Multi:       def.Multi,
		Dynamic:     dynamic,
		Value:       def.Value,
		Definition:  def,
		block:       block,
	}
	if ret.Type.Kind == "" {
		ret.Type = types.Any()
		ret.Declared = types.Any()
	}
	return ret
}
