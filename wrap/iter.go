package wrap

import (
	"iter"

	"martianoff/wrap/value"
)

// Iterator walks the array or object held by a box once, front to back.
// Arrays yield their elements in index order and objects their entries in
// value.ShapeOf order. The length and keys are read when the iterator is
// created; mutating the collection in place while iterating is undefined
// behaviour.
type Iterator struct {
	src   any
	shape value.Shape
	pos   int
}

// Iter returns a fresh iterator over the current value. It reports false
// when the value last set is neither an array nor an object.
func (b *Box[T]) Iter() (*Iterator, bool) {
	if !b.iterable {
		return nil, false
	}
	shape, ok := value.ShapeOf(b.value)
	if !ok {
		return nil, false
	}
	return &Iterator{src: b.value, shape: shape}, true
}

// Iterable reports whether Iter would succeed.
func (b *Box[T]) Iterable() bool {
	return b.iterable
}

// Next returns the next entry. Once it reports false the iterator is
// exhausted for good.
func (it *Iterator) Next() (value.Entry, bool) {
	if it.pos >= it.shape.Len() {
		return value.Entry{}, false
	}
	e := it.shape.At(it.src, it.pos)
	it.pos++
	return e, true
}

// Values yields the remaining element values.
func (it *Iterator) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Pairs yields the remaining entries as key, value pairs. Array keys are
// their int index.
func (it *Iterator) Pairs() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}
