// Package hashcode computes the structural hash code of a value: a signed
// 32-bit fingerprint built by recursive descent over arrays and objects.
//
// The hash is a debugging and deduplication aid. It is not collision
// resistant and must not be used where uniqueness or security matters.
//
// Cyclic structures are not supported: hashing a value that contains itself
// does not terminate.
package hashcode

import (
	"strconv"
	"unicode/utf16"

	"martianoff/wrap/value"
)

// Of returns the hash code of v.
//
// Null and undefined hash to 0. An array hashes to the sum, over each index i
// and element e, of String(i + Of(e)) where + joins the decimal texts. An
// object does the same over its keys in value.ShapeOf order. Every other
// value hashes as String of its string form. Sums wrap at 32 bits.
func Of(v any) int32 {
	switch value.TypeOf(v) {
	case value.TagNull, value.TagUndefined:
		return 0
	case value.TagArray, value.TagObject:
		shape, ok := value.ShapeOf(v)
		if !ok {
			break
		}
		var hash int32
		for i := 0; i < shape.Len(); i++ {
			e := shape.At(v, i)
			hash += String(e.Name + strconv.FormatInt(int64(Of(e.Value)), 10))
		}
		return hash
	}

	s, err := value.ToString(v)
	if err != nil {
		return 0
	}
	return String(s)
}

// String folds s into a hash code: hash = hash*31 + c over its UTF-16 code
// units, truncated to 32 bits after every step.
func String(s string) int32 {
	var hash uint32
	for _, c := range utf16.Encode([]rune(s)) {
		hash = hash<<5 - hash + uint32(c)
	}
	return int32(hash)
}
