// Package codec centralizes the encodings a Bitset can be written in.
//
// The binary codec is the canonical wire format: the minimal little-endian
// word encoding produced by Bitset.Bytes. The JSON codecs write the members
// as an ascending array and exist for debugging and interchange with tools
// that cannot read the binary form.
package codec

import (
	"encoding"
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned when a value cannot be handled by a codec.
var ErrUnsupportedType = errors.New("codec: unsupported type")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "binary":
		return Binary{}, true
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names lists the stable names accepted by ByName.
func Names() []string {
	return []string{"binary", "json", "go-json"}
}

// Binary encodes values implementing encoding.BinaryMarshaler and decodes
// into values implementing encoding.BinaryUnmarshaler.
type Binary struct{}

// Marshal encodes v with its MarshalBinary method.
func (Binary) Marshal(v any) ([]byte, error) {
	m, ok := v.(encoding.BinaryMarshaler)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a BinaryMarshaler", ErrUnsupportedType, v)
	}
	return m.MarshalBinary()
}

// Unmarshal decodes data into v with its UnmarshalBinary method.
func (Binary) Unmarshal(data []byte, v any) error {
	u, ok := v.(encoding.BinaryUnmarshaler)
	if !ok {
		return fmt.Errorf("%w: %T is not a BinaryUnmarshaler", ErrUnsupportedType, v)
	}
	return u.UnmarshalBinary(data)
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }

// Default is the default codec used by the library.
var Default Codec = Binary{}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
