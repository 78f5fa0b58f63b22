package event

import "time"

// Type identifies a graph change
type Type string

const (
	BlockAdded      Type = "blockAdded"
	BlockRemoved    Type = "blockRemoved"
	PortAdded       Type = "portAdded"
	PortRemoved     Type = "portRemoved"
	Connected       Type = "connected"
	Disconnected    Type = "disconnected"
	PortTypeChanged Type = "portTypeChanged"
)

// Event describes one change of an edited graph
type Event struct {
	Type        Type   `json:"type"`
	BlockID     string `json:"blockId,omitempty"`
	PortID      string `json:"portId,omitempty"`
	ConnectorID string `json:"connectorId,omitempty"`
	// PortType is the type expression of a changed port
	PortType  string    `json:"portType,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// New creates an event of the supplied type
func New(eventType Type) *Event {
	return &Event{Type: eventType, CreatedAt: time.Now()}
}

// WithBlock sets the block id
func (e *Event) WithBlock(guid string) *Event {
	e.BlockID = guid
	return e
}

// WithPort sets the port id
func (e *Event) WithPort(guid string) *Event {
	e.PortID = guid
	return e
}

// WithConnector sets the connector id
func (e *Event) WithConnector(guid string) *Event {
	e.ConnectorID = guid
	return e
}
