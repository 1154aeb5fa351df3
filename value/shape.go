package value

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Entry is one enumerated element of a collection. For arrays Key is the int
// index; for objects it is the map key or field name. Name is the key as text.
type Entry struct {
	Key   any
	Name  string
	Value any
}

// Shape is the enumeration order of an array or object captured at one point
// in time. Elements are read from the collection lazily by At, so a shape
// taken before an in-place mutation still reports the old length and keys.
type Shape struct {
	tag    Tag
	length int
	keys   []key
}

type key struct {
	name      string
	mapKey    reflect.Value
	index     []int
	omitEmpty bool
}

// ShapeOf captures the shape of v. It reports false unless v is tagged array
// or object.
//
// Arrays enumerate by index. Maps enumerate in ascending order of their key
// text, so the order is stable across calls but is not insertion order.
// Structs enumerate their exported fields in declaration order, named by the
// json tag when one is present; fields tagged "-" are skipped and untagged
// embedded structs are flattened. Fields JSON would leave out of the
// document, omitempty fields holding an empty value and fields behind a nil
// embedded pointer, are skipped as well.
func ShapeOf(v any) (Shape, bool) {
	tag := TypeOf(v)
	if tag != TagArray && tag != TagObject {
		return Shape{}, false
	}

	rv := indirect(reflect.ValueOf(v))
	s := Shape{tag: tag}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		s.length = rv.Len()
	case reflect.Map:
		s.keys = mapKeys(rv)
		s.length = len(s.keys)
	case reflect.Struct:
		s.keys = presentKeys(rv, structKeys(rv.Type(), nil, map[reflect.Type]bool{}))
		s.length = len(s.keys)
	default:
		return Shape{}, false
	}
	return s, true
}

// Tag returns the tag of the collection the shape was taken from.
func (s Shape) Tag() Tag {
	return s.tag
}

// Len returns the number of entries captured.
func (s Shape) Len() int {
	return s.length
}

// At reads the i-th entry from v, which must be the collection the shape was
// taken from. Elements that no longer exist read as Undefined.
func (s Shape) At(v any, i int) Entry {
	rv := indirect(reflect.ValueOf(v))
	if s.tag == TagArray {
		e := Entry{Key: i, Name: strconv.Itoa(i), Value: Undefined}
		if i < rv.Len() {
			e.Value = interfaceOf(rv.Index(i))
		}
		return e
	}

	k := s.keys[i]
	e := Entry{Key: k.name, Name: k.name, Value: Undefined}
	if k.index != nil {
		if f, err := rv.FieldByIndexErr(k.index); err == nil {
			e.Value = interfaceOf(f)
		}
		return e
	}
	e.Key = k.mapKey.Interface()
	if mv := rv.MapIndex(k.mapKey); mv.IsValid() {
		e.Value = interfaceOf(mv)
	}
	return e
}

func mapKeys(rv reflect.Value) []key {
	mk := rv.MapKeys()
	keys := make([]key, len(mk))
	for i, k := range mk {
		keys[i] = key{name: text(k), mapKey: k}
	}
	slices.SortStableFunc(keys, func(a, b key) int {
		return strings.Compare(a.name, b.name)
	})
	return keys
}

func structKeys(t reflect.Type, prefix []int, seen map[reflect.Type]bool) []key {
	seen[t] = true
	defer delete(seen, t)

	var keys []key
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		index := append(slices.Clone(prefix), i)

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if !seen[ft] {
					keys = append(keys, structKeys(ft, index, seen)...)
				}
				continue
			}
		}
		if name == "" {
			name = f.Name
		}
		keys = append(keys, key{name: name, index: index, omitEmpty: hasOption(opts, "omitempty")})
	}
	return keys
}

// presentKeys drops the struct keys that do not appear in the JSON encoding
// of rv.
func presentKeys(rv reflect.Value, keys []key) []key {
	return slices.DeleteFunc(keys, func(k key) bool {
		f, err := rv.FieldByIndexErr(k.index)
		if err != nil {
			return true
		}
		return k.omitEmpty && isEmpty(f)
	})
}

func hasOption(opts, name string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == name {
			return true
		}
	}
	return false
}

// isEmpty matches what encoding/json treats as empty for omitempty.
func isEmpty(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return rv.IsZero()
	}
	return false
}

func interfaceOf(rv reflect.Value) any {
	if rv.Kind() == reflect.Interface && rv.IsNil() {
		return nil
	}
	return rv.Interface()
}
