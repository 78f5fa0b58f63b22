package pack

import (
	"fmt"

	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/service/dao/pack/typeexpr"
)

type (
	document struct {
		Name        string           `yaml:"name"`
		Version     string           `yaml:"version"`
		Author      string           `yaml:"author"`
		Description string           `yaml:"description"`
		Blocks      []*blockDocument `yaml:"blocks"`
	}

	blockDocument struct {
		graph.BaseInfo `yaml:",inline"`

		GUID        string                     `yaml:"guid"`
		Platforms   []graph.Platform           `yaml:"platforms"`
		Ports       []*portDocument            `yaml:"ports"`
		Flexables   map[string]*graph.Flexable `yaml:"flexables"`
		Options     map[string]interface{}     `yaml:"options"`
		Style       graph.Style                `yaml:"style"`
		Menu        graph.Menu                 `yaml:"menu"`
		PortsChange graph.PortsChange          `yaml:"portsChange"`
	}

	portDocument struct {
		GUID        string          `yaml:"guid"`
		Name        string          `yaml:"name"`
		Description string          `yaml:"description"`
		Direction   graph.Direction `yaml:"direction"`
		Type        string          `yaml:"type"`
		Flex        string          `yaml:"flex"`
		Multi       bool            `yaml:"multi"`
		Value       interface{}     `yaml:"value"`
	}
)

func (d *document) pack(URL string) *graph.Pack {
	return &graph.Pack{Name: d.Name, Version: d.Version, Author: d.Author, Description: d.Description, URL: URL}
}

func (b *blockDocument) definition() (*graph.Definition, error) {
	ret := &graph.Definition{
		GUID:        b.GUID,
		BaseInfo:    b.BaseInfo,
		Platforms:   b.Platforms,
		Flexables:   b.Flexables,
		Options:     b.Options,
		Style:       b.Style,
		Menu:        b.Menu,
		PortsChange: b.PortsChange,
	}
	for _, port := range b.Ports {
		aType, err := typeexpr.Parse(port.Type)
		if err != nil {
			return nil, fmt.Errorf("invalid block %v port %v type: %w", b.Name, port.Name, err)
		}
		if port.Flex != "" {
			if _, ok := ret.Flexables[port.Flex]; !ok {
				ret.WithFlexable(port.Flex, nil)
			}
		}
		ret.WithPort(&graph.PortDefinition{
			GUID:        port.GUID,
			Name:        port.Name,
			Description: port.Description,
			Direction:   port.Direction,
			Type:        aType,
			Flex:        port.Flex,
			Multi:       port.Multi,
			Value:       port.Value,
		})
	}
	return ret, nil
}
