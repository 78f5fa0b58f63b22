package types

// Kind is a concrete parameter type tag such as "number" or "string".
type Kind string

const (
	// KindAny is the polymorphic marker, a port of this kind accepts any peer.
	KindAny Kind = "any"
	// KindExecute marks a control-flow port
	KindExecute Kind = "execute"
	KindNumber  Kind = "number"
	KindBigInt  Kind = "bigint"
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
)

// Container is a container modifier applied to a kind
type Container string

const (
	Scalar     Container = "scalar"
	Array      Container = "array"
	Dictionary Container = "dictionary"
)

// Descriptor represents a port parameter type: a kind, a container modifier
// and, for dictionaries, a key type.
type Descriptor struct {
	Kind      Kind        `json:"kind" yaml:"kind"`
	Container Container   `json:"container,omitempty" yaml:"container,omitempty"`
	Key       *Descriptor `json:"key,omitempty" yaml:"key,omitempty"`
}

// Any returns a scalar any descriptor
func Any() Descriptor {
	return Descriptor{Kind: KindAny, Container: Scalar}
}

// Execute returns a control-flow descriptor
func Execute() Descriptor {
	return Descriptor{Kind: KindExecute, Container: Scalar}
}

// New returns a scalar descriptor of the supplied kind
func New(kind Kind) Descriptor {
	return Descriptor{Kind: kind, Container: Scalar}
}

// ArrayOf returns an array descriptor
func ArrayOf(kind Kind) Descriptor {
	return Descriptor{Kind: kind, Container: Array}
}

// DictionaryOf returns a dictionary descriptor with the supplied key kind
func DictionaryOf(key Kind, kind Kind) Descriptor {
	keyType := New(key)
	return Descriptor{Kind: kind, Container: Dictionary, Key: &keyType}
}

// ContainerOf returns the container, an empty container is treated as scalar
func (d *Descriptor) ContainerOf() Container {
	if d.Container == "" {
		return Scalar
	}
	return d.Container
}

// IsDictionary returns true for dictionary descriptors
func (d *Descriptor) IsDictionary() bool {
	return d.ContainerOf() == Dictionary
}

// IsAny returns true when the kind itself is any
func (d *Descriptor) IsAny() bool {
	return d.Kind == KindAny || d.Kind == ""
}

// IsExecute returns true for control-flow descriptors
func (d *Descriptor) IsExecute() bool {
	return d.Kind == KindExecute
}

// IsAnyFlavored returns true when the kind is any, or the descriptor is a
// dictionary whose key type is any-flavored.
func (d *Descriptor) IsAnyFlavored() bool {
	if d.IsAny() {
		return true
	}
	if d.IsDictionary() {
		return d.Key == nil || d.Key.IsAnyFlavored()
	}
	return false
}

// Equal compares kind, container and (for dictionaries) key type
func (d *Descriptor) Equal(other *Descriptor) bool {
	if other == nil {
		return false
	}
	if d.Kind != other.Kind || d.ContainerOf() != other.ContainerOf() {
		return false
	}
	if !d.IsDictionary() {
		return true
	}
	switch {
	case d.Key == nil && other.Key == nil:
		return true
	case d.Key == nil || other.Key == nil:
		return false
	}
	return d.Key.Equal(other.Key)
}

// Compatible returns true when a connection between the two descriptors is
// allowed: either side is any-flavored, or both match exactly. Control-flow
// descriptors only match control-flow descriptors.
func (d *Descriptor) Compatible(other *Descriptor) bool {
	if other == nil {
		return false
	}
	if d.IsExecute() != other.IsExecute() {
		return false
	}
	if d.IsAnyFlavored() || other.IsAnyFlavored() {
		return true
	}
	return d.Equal(other)
}

// Clone returns a deep copy
func (d Descriptor) Clone() Descriptor {
	ret := d
	if d.Key != nil {
		key := d.Key.Clone()
		ret.Key = &key
	}
	return ret
}

// PropagateInto writes the resolved kind of d into target. The target keeps
// its container; its key type is replaced only when both sides are
// dictionaries. It returns true if the target changed.
func (d *Descriptor) PropagateInto(target *Descriptor) bool {
	before := target.Clone()
	target.Kind = d.Kind
	if target.IsDictionary() && d.IsDictionary() && d.Key != nil {
		key := d.Key.Clone()
		target.Key = &key
	}
	return !before.Equal(target)
}

// String returns a type expression: kind, []kind or map[key]kind
func (d Descriptor) String() string {
	kind := string(d.Kind)
	if kind == "" {
		kind = string(KindAny)
	}
	switch d.ContainerOf() {
	case Array:
		return "[]" + kind
	case Dictionary:
		key := string(KindAny)
		if d.Key != nil {
			key = d.Key.String()
		}
		return "map[" + key + "]" + kind
	}
	return kind
}
