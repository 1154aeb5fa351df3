package wrap

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"

	"martianoff/wrap/wraperr"
)

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wrap: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em

	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("wrap: failed to create CBOR dec mode: %v", err))
	}
	cborDecMode = dm
}

// ToJSON returns the JSON text of the current value.
func (b *Box[T]) ToJSON() (string, error) {
	data, err := b.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Clone returns an independent copy of the current value made by encoding it
// to JSON and decoding the result into a fresh T. Only data JSON can carry
// survives the trip.
func (b *Box[T]) Clone() (T, error) {
	var out T
	data, err := b.MarshalJSON()
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, wraperr.NewSerializationError("json", "cannot decode clone", err)
	}
	return out, nil
}

// MarshalJSON encodes the box as its current value.
func (b *Box[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(b.value)
	if err != nil {
		return nil, wraperr.NewSerializationError("json", "cannot encode value", err)
	}
	return data, nil
}

// UnmarshalJSON decodes data into a new value and sets it, notifying
// listeners. On failure the box is left unchanged.
func (b *Box[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return wraperr.NewSerializationError("json", "cannot decode value", err)
	}
	b.Set(v)
	return nil
}

// ToCBOR returns the canonical CBOR encoding of the current value.
func (b *Box[T]) ToCBOR() ([]byte, error) {
	return b.MarshalCBOR()
}

// MarshalCBOR encodes the box as its current value.
func (b *Box[T]) MarshalCBOR() ([]byte, error) {
	data, err := cborEncMode.Marshal(b.value)
	if err != nil {
		return nil, wraperr.NewSerializationError("cbor", "cannot encode value", err)
	}
	return data, nil
}

// UnmarshalCBOR decodes data into a new value and sets it, notifying
// listeners. Maps decode as map[string]any when T leaves the type open.
func (b *Box[T]) UnmarshalCBOR(data []byte) error {
	var v T
	if err := cborDecMode.Unmarshal(data, &v); err != nil {
		return wraperr.NewSerializationError("cbor", "cannot decode value", err)
	}
	b.Set(v)
	return nil
}

var (
	_ json.Marshaler   = (*Box[any])(nil)
	_ json.Unmarshaler = (*Box[any])(nil)
	_ cbor.Marshaler   = (*Box[any])(nil)
	_ cbor.Unmarshaler = (*Box[any])(nil)
)
