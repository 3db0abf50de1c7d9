package i18ntree

import (
	"fmt"
	"sort"
)

// Value is the tagged union the tree walker operates on. It models the
// dynamic structural shapes a host value can take: a scalar, an ordered
// sequence, a string-keyed mapping, or an opaque object that can produce
// its own canonical form on demand.
type Value interface {
	isValue()
}

// Null represents an explicit absence of value, distinct from a Go nil
// interface so that walked output can round-trip through ToGo unambiguously.
type Null struct{}

func (Null) isValue() {}

// Bool is a boolean scalar.
type Bool bool

func (Bool) isValue() {}

// Number is a numeric scalar. All JSON-like numeric inputs collapse to
// float64, matching how the source domain treats numbers.
type Number float64

func (Number) isValue() {}

// String is a string scalar, and also the shape every resolved translation
// node takes once substituted into the output tree.
type String string

func (String) isValue() {}

// Seq is an ordered sequence of values.
type Seq []Value

func (Seq) isValue() {}

// Map is a string-keyed mapping that preserves insertion order, mirroring
// the host runtime's object literal semantics.
type Map struct {
	order []string
	data  map[string]Value
}

func (*Map) isValue() {}

// NewMap constructs an empty ordered map.
func NewMap() *Map {
	return &Map{data: make(map[string]Value)}
}

// Set inserts or overwrites key with value, appending key to the
// iteration order the first time it is seen.
func (m *Map) Set(key string, value Value) *Map {
	if _, ok := m.data[key]; !ok {
		m.order = append(m.order, key)
	}
	m.data[key] = value
	return m
}

// Get returns the value stored under key, if any.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.data[key]
	return v, ok
}

// Len reports the number of keys in the map.
func (m *Map) Len() int {
	return len(m.order)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return m.order
}

// Clone returns a shallow copy: same key order, same Value references.
func (m *Map) Clone() *Map {
	c := &Map{
		order: append([]string(nil), m.order...),
		data:  make(map[string]Value, len(m.data)),
	}
	for k, v := range m.data {
		c.data[k] = v
	}
	return c
}

// Opaque wraps a host value that is not one of the structural shapes above.
// If Raw implements Canonicalizable, the walker consults it before treating
// the value as an unstructured leaf.
type Opaque struct {
	Raw any
}

func (Opaque) isValue() {}

// Canonicalizable is the explicit replacement for duck-typed serialization
// hooks: an opaque value may expose its own canonical tree form.
type Canonicalizable interface {
	Canonicalize() (Value, error)
}

// FromGo converts an ordinary Go value (as produced by encoding/json,
// map[string]any literals, slices, and scalars) into a Value tree.
// Map keys are sorted for determinism, since a Go map carries no
// iteration order of its own.
func FromGo(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case float32:
		return Number(float64(t)), nil
	case float64:
		return Number(t), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			cv, err := FromGo(t[k])
			if err != nil {
				return nil, err
			}
			m.Set(k, cv)
		}
		return m, nil
	case []any:
		seq := make(Seq, 0, len(t))
		for _, elem := range t {
			cv, err := FromGo(elem)
			if err != nil {
				return nil, err
			}
			seq = append(seq, cv)
		}
		return seq, nil
	default:
		return Opaque{Raw: v}, nil
	}
}

// ToGo converts a Value tree back into ordinary Go values suitable for
// json.Marshal or further host-side processing.
func ToGo(v Value) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case Null:
		return nil, nil
	case Bool:
		return bool(t), nil
	case Number:
		return float64(t), nil
	case String:
		return string(t), nil
	case Seq:
		out := make([]any, len(t))
		for i, elem := range t {
			gv, err := ToGo(elem)
			if err != nil {
				return nil, err
			}
			out[i] = gv
		}
		return out, nil
	case *Map:
		out := make(map[string]any, t.Len())
		for _, k := range t.order {
			gv, err := ToGo(t.data[k])
			if err != nil {
				return nil, err
			}
			out[k] = gv
		}
		return out, nil
	case Opaque:
		if s, ok := t.Raw.(fmt.Stringer); ok {
			return s.String(), nil
		}
		return t.Raw, nil
	default:
		return nil, fmt.Errorf("i18ntree: unrecognized Value type %T", v)
	}
}
