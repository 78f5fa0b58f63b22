package registry

import (
	"strings"

	"github.com/viant/fluxblock/model/graph"
)

// Category is a node of the block browse tree
type Category struct {
	Name       string              `json:"category" yaml:"category"`
	Children   []*Category         `json:"childCategories,omitempty" yaml:"childCategories,omitempty"`
	Blocks     []*graph.Definition `json:"-" yaml:"-"`
	Open       bool                `json:"open" yaml:"open"`
	Show       bool                `json:"show" yaml:"show"`
	FilterShow bool                `json:"filterShow" yaml:"filterShow"`
}

func newCategory(name string) *Category {
	return &Category{Name: name, Show: true, FilterShow: true}
}

// Child returns a direct child by exact name
func (c *Category) Child(name string) *Category {
	return lookupCategory(c.Children, name)
}

// Walk visits the node and its descendants depth first
func (c *Category) Walk(visitor func(node *Category, depth int)) {
	c.walk(visitor, 0)
}

func (c *Category) walk(visitor func(node *Category, depth int), depth int) {
	visitor(c, depth)
	for _, child := range c.Children {
		child.walk(visitor, depth+1)
	}
}

func (c *Category) hasBlock(def *graph.Definition) bool {
	for _, candidate := range c.Blocks {
		if candidate == def {
			return true
		}
	}
	return false
}

func (c *Category) removeBlock(def *graph.Definition) {
	for i, candidate := range c.Blocks {
		if candidate == def {
			c.Blocks = append(c.Blocks[:i], c.Blocks[i+1:]...)
			return
		}
	}
}

// filter sets FilterShow on the subtree and returns true when any block under the node matches
func (c *Category) filter(keyword string) bool {
	matched := keyword == ""
	for _, def := range c.Blocks {
		if strings.Contains(strings.ToLower(def.Name), keyword) {
			matched = true
		}
	}
	for _, child := range c.Children {
		if child.filter(keyword) {
			matched = true
		}
	}
	c.FilterShow = matched
	return matched
}

func lookupCategory(nodes []*Category, name string) *Category {
	for _, node := range nodes {
		if node.Name == name {
			return node
		}
	}
	return nil
}

// findOrCreate resolves path within nodes: the segment before the first "/" names
// the node at this level, the remainder is resolved among its children.
func findOrCreate(path string, nodes *[]*Category) *Category {
	name := path
	index := strings.Index(path, "/")
	if index > 0 {
		name = path[:index]
	}
	node := lookupCategory(*nodes, name)
	if node == nil {
		node = newCategory(name)
		*nodes = append(*nodes, node)
	}
	if index > 0 {
		return findOrCreate(path[index+1:], &node.Children)
	}
	return node
}
