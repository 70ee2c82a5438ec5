package vec

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = (*Vec[int])(nil)
	_ json.Unmarshaler = (*Vec[int])(nil)
	_ yaml.Marshaler   = (*Vec[int])(nil)
	_ yaml.Unmarshaler = (*Vec[int])(nil)
)

// MarshalJSON encodes the live elements as a JSON array. An empty vector
// encodes as [], never null.
func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	v.panicIfReleased()
	if v.len == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.buf.view(v.len))
}

// UnmarshalJSON replaces the vector's contents with the elements of a JSON
// array. null empties the vector. Capacity is reused where it suffices.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	v.panicIfReleased()
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	v.Clear()
	for _, e := range elems {
		v.Push(e)
	}
	return nil
}

// MarshalYAML encodes the live elements as a YAML sequence.
func (v *Vec[T]) MarshalYAML() (any, error) {
	v.panicIfReleased()
	if v.len == 0 {
		return []T{}, nil
	}
	return v.buf.view(v.len), nil
}

// UnmarshalYAML replaces the vector's contents with the elements of a YAML
// sequence.
func (v *Vec[T]) UnmarshalYAML(node *yaml.Node) error {
	v.panicIfReleased()
	var elems []T
	if err := node.Decode(&elems); err != nil {
		return err
	}
	v.Clear()
	for _, e := range elems {
		v.Push(e)
	}
	return nil
}
