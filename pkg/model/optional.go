package model

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Optional tracks whether a descriptor key was declared, independent of the
// declared value. An explicit JSON null counts as declared and carries the
// zero value of T.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// IsSet reports whether the key was declared.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was declared.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Value returns the declared value or the zero value of T.
func (o Optional[T]) Value() T {
	return o.value
}

// IsZero lets json omitzero and yaml omitempty drop undeclared keys.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	var zero T
	o.value = zero
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&o.value); err != nil {
		return err
	}
	// numbers held in an interface keep integer precision
	if v, ok := any(&o.value).(*any); ok {
		*v = normalizeNumber(*v)
	}
	return nil
}

func (o Optional[T]) MarshalYAML() (any, error) {
	return o.value, nil
}

// UnmarshalYAML is only reached for non-null nodes; yaml.v3 zeroes the target
// on null without calling it. Documents that need null presence go through
// the document package, which routes YAML through JSON.
func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	o.set = true
	var zero T
	o.value = zero
	return node.Decode(&o.value)
}
