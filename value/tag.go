// Package value classifies arbitrary Go values the way a dynamic runtime
// would see them. It provides the type tag of a value, its string form, the
// enumeration order of collections and strict identity comparison.
//
// The Go to tag mapping follows the usual Go/JavaScript correspondence:
//
//	| Go kind                          | Tag        |
//	| -------------------------------- | ---------- |
//	| nil, nil pointer/func/chan       | null       |
//	| value.Undefined                  | undefined  |
//	| string                           | string     |
//	| int?, uint?, float?, json.Number | number     |
//	| bool                             | boolean    |
//	| slices and arrays                | array      |
//	| maps and structs                 | object     |
//	| func                             | function   |
//	| regexp.Regexp                    | regexp     |
//	| time.Time                        | date       |
//	| error                            | error      |
//	| chan                             | channel    |
//	| complex?                         | complex    |
//	| unsafe.Pointer                   | pointer    |
//
// Pointers are transparent: *T has the tag of T.
package value

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"
	"time"
)

// Tag is the lowercase name of a value's structural kind.
type Tag string

const (
	TagString    Tag = "string"
	TagNumber    Tag = "number"
	TagBoolean   Tag = "boolean"
	TagArray     Tag = "array"
	TagObject    Tag = "object"
	TagFunction  Tag = "function"
	TagRegExp    Tag = "regexp"
	TagDate      Tag = "date"
	TagError     Tag = "error"
	TagNull      Tag = "null"
	TagUndefined Tag = "undefined"

	TagChannel Tag = "channel"
	TagComplex Tag = "complex"
	TagPointer Tag = "pointer"
)

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf(regexp.Regexp{})
	numberType = reflect.TypeOf(json.Number(""))
	undefType  = reflect.TypeOf(undefined{})
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

// TypeOf returns the tag of v.
func TypeOf(v any) Tag {
	if v == nil {
		return TagNull
	}
	if _, ok := v.(undefined); ok {
		return TagUndefined
	}
	return tagOf(reflect.ValueOf(v))
}

// Is reports whether candidate, lower-cased, names the tag of v.
func Is(v any, candidate string) bool {
	return TypeOf(v) == Tag(strings.ToLower(candidate))
}

func tagOf(rv reflect.Value) Tag {
	if !rv.IsValid() {
		return TagNull
	}
	if tag, ok := specialTag(rv.Type()); ok {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return TagNull
		}
		return tag
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return TagNull
		}
		return tagOf(rv.Elem())
	case reflect.String:
		return TagString
	case reflect.Bool:
		return TagBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TagNumber
	case reflect.Complex64, reflect.Complex128:
		return TagComplex
	case reflect.Slice, reflect.Array:
		return TagArray
	case reflect.Map, reflect.Struct:
		return TagObject
	case reflect.Func:
		if rv.IsNil() {
			return TagNull
		}
		return TagFunction
	case reflect.Chan:
		if rv.IsNil() {
			return TagNull
		}
		return TagChannel
	case reflect.UnsafePointer:
		return TagPointer
	}
	return TagObject
}

// specialTag recognises the types whose tag does not follow from their kind.
func specialTag(t reflect.Type) (Tag, bool) {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	switch base {
	case timeType:
		return TagDate, true
	case regexpType:
		return TagRegExp, true
	case numberType:
		return TagNumber, true
	case undefType:
		return TagUndefined, true
	}
	if t.Kind() != reflect.Interface && t.Implements(errorType) {
		return TagError, true
	}
	return "", false
}
