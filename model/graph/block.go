package graph

import (
	"fmt"

	"github.com/viant/fluxblock/internal/idgen"
)

// Block is an instance of a registration record
type Block struct {
	GUID        string
	Name        string
	Description string
	Logo        string
	Mark        string
	MarkOpen    bool
	Breakpoint  bool
	Data        map[string]interface{}
	Options     map[string]interface{}
	// Flexables maps a flex group key to where its resolved type is written
	Flexables  map[string]*Flexable
	Definition *Definition
	Issues     []*Issue

	inputs             []*Port
	outputs            []*Port
	connectedPortCount int
	flash              *flash
}

// NewBlock instantiates a block from its registration record
func NewBlock(def *Definition) *Block {
	ret := &Block{
		GUID:        idgen.New(),
		Name:        def.Name,
		Description: def.Description,
		Logo:        def.Logo,
		Data:        map[string]interface{}{},
		Options:     copyMap(def.Options),
		Flexables:   map[string]*Flexable{},
		Definition:  def,
	}
	for key, flexable := range def.Flexables {
		cloned := *flexable
		ret.Flexables[key] = &cloned
	}
	for _, portDef := range def.Ports {
		_, _ = ret.AddPort(portDef, false, portDef.Value)
	}
	ret.Definition.Hooks.create(ret)
	return ret
}

// InputPorts returns input ports in declaration order
func (b *Block) InputPorts() []*Port {
	return append([]*Port(nil), b.inputs...)
}

// OutputPorts returns output ports in declaration order
func (b *Block) OutputPorts() []*Port {
	return append([]*Port(nil), b.outputs...)
}

// AllPorts returns inputs followed by outputs
func (b *Block) AllPorts() []*Port {
	ret := make([]*Port, 0, len(b.inputs)+len(b.outputs))
	ret = append(ret, b.inputs...)
	return append(ret, b.outputs...)
}

// Port returns a port by GUID
func (b *Block) Port(guid string) *Port {
	for _, port := range b.AllPorts() {
		if port.GUID == guid {
			return port
		}
	}
	return nil
}

// InputPort returns an input port by name
func (b *Block) InputPort(name string) *Port {
	return lookupPort(b.inputs, name)
}

// OutputPort returns an output port by name
func (b *Block) OutputPort(name string) *Port {
	return lookupPort(b.outputs, name)
}

func lookupPort(ports []*Port, name string) *Port {
	for _, port := range ports {
		if port.Name == name {
			return port
		}
	}
	return nil
}

// AddPort adds a port created from def. Port names are unique per direction.
func (b *Block) AddPort(def *PortDefinition, dynamic bool, value interface{}) (*Port, error) {
	if def.Direction != Input && def.Direction != Output {
		return nil, fmt.Errorf("invalid port %v direction: %q", def.Name, def.Direction)
	}
	ports := &b.inputs
	if def.Direction == Output {
		ports = &b.outputs
	}
	if lookupPort(*ports, def.Name) != nil {
		return nil, fmt.Errorf("%w: %v %v on block %v", ErrPortExists, def.Direction, def.Name, b.Name)
	}
	guid := def.GUID
	if guid == "" || b.Port(guid) != nil {
		guid = idgen.New()
	}
	port := newPort(b, def, guid, dynamic)
	if value != nil {
		port.Value = value
	}
	*ports = append(*ports, port)
	return port, nil
}

// RemovePort removes a disconnected port
func (b *Block) RemovePort(port *Port) error {
	if port.block != b {
		return fmt.Errorf("%w: %v on block %v", ErrPortNotFound, port.Name, b.Name)
	}
	if port.IsConnected() {
		return fmt.Errorf("%w: %v on block %v", ErrPortConnected, port.Name, b.Name)
	}
	ports := &b.inputs
	if port.Direction == Output {
		ports = &b.outputs
	}
	for i, candidate := range *ports {
		if candidate == port {
			*ports = append((*ports)[:i], (*ports)[i+1:]...)
			port.block = nil
			return nil
		}
	}
	return fmt.Errorf("%w: %v on block %v", ErrPortNotFound, port.Name, b.Name)
}

// FlexMembers returns the ports of flex group key
func (b *Block) FlexMembers(key string) []*Port {
	if key == "" {
		return nil
	}
	var ret []*Port
	for _, port := range b.AllPorts() {
		if port.Flex == key && port.IsFlexible() {
			ret = append(ret, port)
		}
	}
	return ret
}

// Flexable returns the flex group configuration, or nil when the block does not declare the group
func (b *Block) Flexable(key string) *Flexable {
	return b.Flexables[key]
}

// ConnectedPortCount returns the number of connector endpoints on the block ports
func (b *Block) ConnectedPortCount() int {
	return b.connectedPortCount
}

// IsAnyPortConnected returns true when at least one port is connected
func (b *Block) IsAnyPortConnected() bool {
	return b.connectedPortCount > 0
}

func (b *Block) incrementConnected() {
	b.connectedPortCount++
}

func (b *Block) decrementConnected() {
	if !assert(b.connectedPortCount > 0, "connected port count underflow", "block", b.GUID) {
		b.connectedPortCount = 0
		return
	}
	b.connectedPortCount--
}

// AddIssue records a non-fatal warning
func (b *Block) AddIssue(err error, message string) {
	b.Issues = append(b.Issues, &Issue{Err: err, Message: message})
}

// CheckPlatform records an UnsupportedPlatform issue when the block cannot run on platform
func (b *Block) CheckPlatform(platform Platform) bool {
	if b.Definition.SupportsPlatform(platform) {
		return true
	}
	b.AddIssue(ErrUnsupportedPlatform, fmt.Sprintf("%v does not run on %v", b.Name, platform))
	return false
}

// Clone creates a new instance from the same record. Dynamic ports are re-added
// with their values; connections are not copied.
func (b *Block) Clone() *Block {
	b.Definition.Hooks.save(b)
	ret := NewBlock(b.Definition)
	ret.Options = copyMap(b.Options)
	ret.Mark = b.Mark
	ret.MarkOpen = b.MarkOpen
	ret.Breakpoint = b.Breakpoint
	for _, port := range b.AllPorts() {
		if !port.Dynamic {
			continue
		}
		def := *port.Definition
		def.GUID = port.GUID
		_, _ = ret.AddPort(&def, true, copyValue(port.Value))
	}
	return ret
}

// UserAddPort asks the UserAddPort hook for port templates and adds them as dynamic ports
func (b *Block) UserAddPort(direction Direction, kind AddKind) ([]*Port, error) {
	hook := b.Definition.Hooks.UserAddPort
	if hook == nil {
		return nil, nil
	}
	var ret []*Port
	for _, def := range hook.OnUserAddPort(b, direction, kind) {
		if def.Direction == "" {
			def.Direction = direction
		}
		port, err := b.AddPort(def, true, def.Value)
		if err != nil {
			return ret, err
		}
		ret = append(ret, port)
	}
	return ret, nil
}

func copyMap(source map[string]interface{}) map[string]interface{} {
	ret := make(map[string]interface{}, len(source))
	for k, v := range source {
		ret[k] = copyValue(v)
	}
	return ret
}

func copyValue(value interface{}) interface{} {
	switch actual := value.(type) {
	case map[string]interface{}:
		return copyMap(actual)
	case []interface{}:
		ret := make([]interface{}, len(actual))
		for i, item := range actual {
			ret[i] = copyValue(item)
		}
		return ret
	}
	return value
}
