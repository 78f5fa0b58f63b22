package graph

import (
	"github.com/viant/fluxblock/model/types"
)

// Platform identifies a runtime a block can run on
type Platform string

const (
	PlatformAll      Platform = "all"
	PlatformWeb      Platform = "web"
	PlatformElectron Platform = "electron"
	PlatformNode     Platform = "nodejs"
)

// Platforms returns every known platform
func Platforms() []Platform {
	return []Platform{PlatformAll, PlatformWeb, PlatformElectron, PlatformNode}
}

// Known returns true for a platform listed by Platforms
func (p Platform) Known() bool {
	for _, candidate := range Platforms() {
		if p == candidate {
			return true
		}
	}
	return false
}

type (
	// BaseInfo describes a block for listing and browsing
	BaseInfo struct {
		Name        string `json:"name" yaml:"name"`
		Description string `json:"description,omitempty" yaml:"description,omitempty"`
		// Category is a slash-delimited category path, e.g. "Math/Trig"
		Category string `json:"category,omitempty" yaml:"category,omitempty"`
		Logo     string `json:"logo,omitempty" yaml:"logo,omitempty"`
		Author   string `json:"author,omitempty" yaml:"author,omitempty"`
		Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	}

	Style struct {
		TitleColor           string `json:"titleColor,omitempty" yaml:"titleColor,omitempty"`
		TitleBackgroundColor string `json:"titleBackgroundColor,omitempty" yaml:"titleBackgroundColor,omitempty"`
		Layer                string `json:"layer,omitempty" yaml:"layer,omitempty"`
		MinWidth             string `json:"minWidth,omitempty" yaml:"minWidth,omitempty"`
		MinHeight            string `json:"minHeight,omitempty" yaml:"minHeight,omitempty"`
		SmallTitle           bool   `json:"smallTitle,omitempty" yaml:"smallTitle,omitempty"`
		NoTitle              bool   `json:"noTitle,omitempty" yaml:"noTitle,omitempty"`
		HideLogo             bool   `json:"hideLogo,omitempty" yaml:"hideLogo,omitempty"`
		NoTooltip            bool   `json:"noTooltip,omitempty" yaml:"noTooltip,omitempty"`
		NoComment            bool   `json:"noComment,omitempty" yaml:"noComment,omitempty"`
	}

	Menu struct {
		Hidden bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
		Items  []string `json:"items,omitempty" yaml:"items,omitempty"`
	}

	// PortsChange controls whether a user may add ports at runtime
	PortsChange struct {
		UserCanAddInputPort       bool `json:"userCanAddInputPort,omitempty" yaml:"userCanAddInputPort,omitempty"`
		UserCanAddOutputPort      bool `json:"userCanAddOutputPort,omitempty" yaml:"userCanAddOutputPort,omitempty"`
		UserCanAddInputParameter  bool `json:"userCanAddInputParameter,omitempty" yaml:"userCanAddInputParameter,omitempty"`
		UserCanAddOutputParameter bool `json:"userCanAddOutputParameter,omitempty" yaml:"userCanAddOutputParameter,omitempty"`
	}

	// PortDefinition is a port template
	PortDefinition struct {
		GUID        string           `json:"guid,omitempty" yaml:"guid,omitempty"`
		Name        string           `json:"name" yaml:"name"`
		Description string           `json:"description,omitempty" yaml:"description,omitempty"`
		Direction   Direction        `json:"direction" yaml:"direction"`
		Type        types.Descriptor `json:"type" yaml:"type"`
		// Flex is the flex group key, empty when the port does not take part in flexible typing
		Flex string `json:"flex,omitempty" yaml:"flex,omitempty"`
		// Multi allows a data input port to accept more than one incoming connection
		Multi bool        `json:"multi,omitempty" yaml:"multi,omitempty"`
		Value interface{} `json:"value,omitempty" yaml:"value,omitempty"`
	}

	// Flexable configures where the resolved type of a flex group is written
	Flexable struct {
		SetResultToData    string `json:"setResultToData,omitempty" yaml:"setResultToData,omitempty"`
		SetResultToOptions string `json:"setResultToOptions,omitempty" yaml:"setResultToOptions,omitempty"`
	}

	// Definition is a block registration record, the template blocks are instantiated from.
	Definition struct {
		BaseInfo `yaml:",inline"`

		GUID        string                 `json:"guid" yaml:"guid"`
		Platforms   []Platform             `json:"platforms,omitempty" yaml:"platforms,omitempty"`
		Ports       []*PortDefinition      `json:"ports,omitempty" yaml:"ports,omitempty"`
		Flexables   map[string]*Flexable   `json:"flexables,omitempty" yaml:"flexables,omitempty"`
		Options     map[string]interface{} `json:"options,omitempty" yaml:"options,omitempty"`
		Style       Style                  `json:"style,omitempty" yaml:"style,omitempty"`
		Menu        Menu                   `json:"menu,omitempty" yaml:"menu,omitempty"`
		PortsChange PortsChange            `json:"portsChange,omitempty" yaml:"portsChange,omitempty"`
		Hooks       Hooks                  `json:"-" yaml:"-"`

		// Pack is stamped by the registry
		Pack *Pack `json:"-" yaml:"-"`
		// Grouped is managed by the registry, true once the record is placed in the category tree
		Grouped bool `json:"-" yaml:"-"`
	}
)

// SupportsPlatform returns true when the definition runs on the supplied platform.
// No declared platforms means all platforms.
func (d *Definition) SupportsPlatform(platform Platform) bool {
	if len(d.Platforms) == 0 || platform == "" || platform == PlatformAll {
		return true
	}
	for _, candidate := range d.Platforms {
		if candidate == PlatformAll || candidate == platform {
			return true
		}
	}
	return false
}

// Port returns a port template by direction and name
func (d *Definition) Port(direction Direction, name string) *PortDefinition {
	for _, port := range d.Ports {
		if port.Direction == direction && port.Name == name {
			return port
		}
	}
	return nil
}

// WithPort adds a port template
func (d *Definition) WithPort(port *PortDefinition) *Definition {
	d.Ports = append(d.Ports, port)
	return d
}

// WithFlexable declares a flex group
func (d *Definition) WithFlexable(key string, flexable *Flexable) *Definition {
	if d.Flexables == nil {
		d.Flexables = make(map[string]*Flexable)
	}
	if flexable == nil {
		flexable = &Flexable{}
	}
	d.Flexables[key] = flexable
	return d
}

// NewDefinition creates a registration record
func NewDefinition(guid, name, category string) *Definition {
	return &Definition{
		GUID:     guid,
		BaseInfo: BaseInfo{Name: name, Category: category},
	}
}

// NewPortDefinition creates a port template
func NewPortDefinition(name string, direction Direction, aType types.Descriptor) *PortDefinition {
	return &PortDefinition{Name: name, Direction: direction, Type: aType}
}

// WithFlex assigns the port template to a flex group
func (p *PortDefinition) WithFlex(key string) *PortDefinition {
	p.Flex = key
	return p
}

// WithMulti allows many incoming connections
func (p *PortDefinition) WithMulti() *PortDefinition {
	p.Multi = true
	return p
}
