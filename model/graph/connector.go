package graph

import "sync/atomic"

// Connector is an edge from one output port to one input port.
// A connector is owned by the Graph that attached it; ports hold references only.
type Connector struct {
	GUID string
	From *Port
	To   *Port
	// Seq orders connectors by the time they were established
	Seq uint64

	attached bool
	active   atomic.Bool
}

// Other returns the endpoint opposite to port, or nil when port is not an endpoint
func (c *Connector) Other(port *Port) *Port {
	switch port {
	case c.From:
		return c.To
	case c.To:
		return c.From
	}
	return nil
}

// Attached returns true while the connector is linked into both endpoints
func (c *Connector) Attached() bool {
	return c.attached
}

// Active returns the transient highlight flag
func (c *Connector) Active() bool {
	return c.active.Load()
}

// SetActive sets the transient highlight flag
func (c *Connector) SetActive(active bool) {
	c.active.Store(active)
}
