package graph

// AddKind selects what a user asks to add to a block
type AddKind string

const (
	AddExecute AddKind = "execute"
	AddParam   AddKind = "param"
)

type (
	// CreateHook is invoked once a block has been instantiated from its definition
	CreateHook interface {
		OnCreate(block *Block)
	}

	// PortConnectHook is invoked on each endpoint's block after a connection is made
	PortConnectHook interface {
		OnPortConnect(block *Block, port, peer *Port)
	}

	// PortUnConnectHook is invoked on each endpoint's block after a connection is removed
	PortUnConnectHook interface {
		OnPortUnConnect(block *Block, port *Port)
	}

	// SaveHook is invoked before a block is cloned so it can flush custom state into Data/Options
	SaveHook interface {
		OnSave(block *Block)
	}

	// PortTypeChangeHook is invoked after flexible typing changed a port type
	PortTypeChangeHook interface {
		OnPortTypeChange(block *Block, port *Port)
	}

	// UserAddPortHook returns the port templates to add when a user requests a new port
	UserAddPortHook interface {
		OnUserAddPort(block *Block, direction Direction, kind AddKind) []*PortDefinition
	}
)

type (
	CreateFunc         func(block *Block)
	PortConnectFunc    func(block *Block, port, peer *Port)
	PortUnConnectFunc  func(block *Block, port *Port)
	SaveFunc           func(block *Block)
	PortTypeChangeFunc func(block *Block, port *Port)
	UserAddPortFunc    func(block *Block, direction Direction, kind AddKind) []*PortDefinition
)

func (f CreateFunc) OnCreate(block *Block) { f(block) }

func (f PortConnectFunc) OnPortConnect(block *Block, port, peer *Port) { f(block, port, peer) }

func (f PortUnConnectFunc) OnPortUnConnect(block *Block, port *Port) { f(block, port) }

func (f SaveFunc) OnSave(block *Block) { f(block) }

func (f PortTypeChangeFunc) OnPortTypeChange(block *Block, port *Port) { f(block, port) }

func (f UserAddPortFunc) OnUserAddPort(block *Block, direction Direction, kind AddKind) []*PortDefinition {
	return f(block, direction, kind)
}

// Hooks holds optional callbacks, a nil member means the hook is absent.
type Hooks struct {
	Create         CreateHook
	PortConnect    PortConnectHook
	PortUnConnect  PortUnConnectHook
	Save           SaveHook
	PortTypeChange PortTypeChangeHook
	UserAddPort    UserAddPortHook
}

func (h *Hooks) create(block *Block) {
	if h.Create != nil {
		h.Create.OnCreate(block)
	}
}

func (h *Hooks) portConnect(block *Block, port, peer *Port) {
	if h.PortConnect != nil {
		h.PortConnect.OnPortConnect(block, port, peer)
	}
}

func (h *Hooks) portUnConnect(block *Block, port *Port) {
	if h.PortUnConnect != nil {
		h.PortUnConnect.OnPortUnConnect(block, port)
	}
}

func (h *Hooks) save(block *Block) {
	if h.Save != nil {
		h.Save.OnSave(block)
	}
}

// NotifyTypeChange invokes the PortTypeChange hook of the owning block
func (p *Port) NotifyTypeChange() {
	if p.block == nil {
		return
	}
	if hook := p.block.Definition.Hooks.PortTypeChange; hook != nil {
		hook.OnPortTypeChange(p.block, p)
	}
}
