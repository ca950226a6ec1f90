// Package marshaller converts typed values to and from the byte payloads
// stored in the revision log. Encoder errors are returned as is; callers
// attach the key they were working on.
package marshaller

import (
	"gopkg.in/yaml.v3"
)

// TypedMarshaller is a generic interface for typed marshalling operations.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

var _ TypedMarshaller[struct{}] = TypedYamlMarshaller[struct{}]{}

// TypedYamlMarshaller is a generic YAML marshaller for typed objects.
type TypedYamlMarshaller[T any] struct{}

// NewTypedYamlMarshaller creates a new TypedYamlMarshaller for the specified type.
func NewTypedYamlMarshaller[T any]() TypedYamlMarshaller[T] {
	return TypedYamlMarshaller[T]{}
}

// Marshal serializes the typed data to YAML format.
func (m TypedYamlMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := yaml.Marshal(data)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return marshalled, nil
}

// Unmarshal deserializes YAML data into a typed object.
// An empty payload yields the zero value of T.
func (m TypedYamlMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	err := yaml.Unmarshal(data, &out)
	if err != nil {
		var zero T
		return zero, err //nolint:wrapcheck
	}

	return out, nil
}
