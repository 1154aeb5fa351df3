package value

import "reflect"

// Same reports whether a and b are strictly equal: the same primitive value
// or the same reference. It never compares contents.
//
// Values of different dynamic types are never the same. Slices are the same
// when they share their first element and length; maps and funcs when they
// share their pointer.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Slice:
		return ra.Len() == rb.Len() && ra.Pointer() == rb.Pointer()
	case reflect.Map, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	}

	if ra.Comparable() && rb.Comparable() {
		return a == b
	}
	return false
}
