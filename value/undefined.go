package value

type undefined struct{}

// Undefined stands for an absent value. It is distinct from nil, which is
// tagged null.
var Undefined any = undefined{}

// MarshalJSON encodes Undefined as null.
func (undefined) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (undefined) String() string {
	return "undefined"
}

// IsNil reports whether v is tagged null or undefined.
func IsNil(v any) bool {
	switch TypeOf(v) {
	case TagNull, TagUndefined:
		return true
	}
	return false
}

// MarshalCBOR encodes Undefined as the CBOR undefined simple value.
func (undefined) MarshalCBOR() ([]byte, error) {
	return []byte{0xf7}, nil
}
