package paramtype

import (
	"math/big"
	"reflect"
	"sync"

	"github.com/viant/fluxblock/model/types"
	"github.com/viant/x"
)

// Entry binds a parameter kind to its Go type and canonical default
type Entry struct {
	Kind types.Kind
	Type *x.Type
	// Default returns a fresh default value; nil means the zero value of Type
	Default func() interface{}
}

func (e *Entry) defaultValue() interface{} {
	if e.Default != nil {
		return e.Default()
	}
	return reflect.Zero(e.Type.Type).Interface()
}

// Catalog holds known parameter kinds. Go types are kept in an x.Registry
// keyed by kind name; the registry listener records registration order.
type Catalog struct {
	mux      sync.RWMutex
	types    *x.Registry
	defaults map[types.Kind]func() interface{}
	kinds    []types.Kind
	known    map[types.Kind]bool
}

// Register adds or replaces a kind
func (c *Catalog) Register(kind types.Kind, rType reflect.Type, defaultValue func() interface{}) {
	c.mux.Lock()
	defer c.mux.Unlock()
	aType := x.NewType(rType, x.WithName(string(kind)), x.WithForceFlag())
	aType.PkgPath = "" // kinds are looked up by bare name
	c.defaults[kind] = defaultValue
	c.types.Register(aType)
}

func (c *Catalog) onRegister(aType *x.Type) {
	kind := types.Kind(aType.Name)
	if !c.known[kind] {
		c.known[kind] = true
		c.kinds = append(c.kinds, kind)
	}
}

// Lookup returns a kind entry or nil
func (c *Catalog) Lookup(kind types.Kind) *Entry {
	c.mux.RLock()
	defer c.mux.RUnlock()
	aType := c.types.Lookup(string(kind))
	if aType == nil {
		return nil
	}
	return &Entry{Kind: kind, Type: aType, Default: c.defaults[kind]}
}

// Kinds returns registered kinds in registration order
func (c *Catalog) Kinds() []types.Kind {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return append([]types.Kind(nil), c.kinds...)
}

// Default returns the canonical default value for a descriptor. Arrays and
// dictionaries default to empty typed collections; any, execute and unknown
// kinds default to nil.
func (c *Catalog) Default(descriptor types.Descriptor) interface{} {
	entry := c.Lookup(descriptor.Kind)
	if entry == nil {
		return nil
	}
	switch descriptor.ContainerOf() {
	case types.Array:
		return reflect.MakeSlice(reflect.SliceOf(entry.Type.Type), 0, 0).Interface()
	case types.Dictionary:
		keyType := reflect.TypeOf("")
		if descriptor.Key != nil {
			if key := c.Lookup(descriptor.Key.Kind); key != nil && key.Type.Type.Comparable() {
				keyType = key.Type.Type
			}
		}
		return reflect.MakeMap(reflect.MapOf(keyType, entry.Type.Type)).Interface()
	}
	return entry.defaultValue()
}

// New creates a catalog with the built-in kinds
func New() *Catalog {
	ret := &Catalog{defaults: map[types.Kind]func() interface{}{}, known: map[types.Kind]bool{}}
	ret.types = x.NewRegistry(x.WithListener(ret.onRegister))
	ret.Register(types.KindNumber, reflect.TypeOf(float64(0)), nil)
	ret.Register(types.KindBigInt, reflect.TypeOf(&big.Int{}), func() interface{} { return big.NewInt(0) })
	ret.Register(types.KindString, reflect.TypeOf(""), nil)
	ret.Register(types.KindBoolean, reflect.TypeOf(false), nil)
	ret.Register(types.KindObject, reflect.TypeOf(map[string]interface{}{}), func() interface{} { return map[string]interface{}{} })
	return ret
}
