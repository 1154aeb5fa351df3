// Package wrap boxes a single value and layers small utilities on top of it:
// type predicates, change observation, JSON and CBOR encoding, cloning, a
// structural hash code and, for arrays and objects, a lazy iterator.
//
// A Box is meant for a single owner. It does no locking; callers sharing one
// across goroutines must synchronise access themselves.
package wrap

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"martianoff/wrap/hashcode"
	"martianoff/wrap/value"
)

// Listener receives the new value every time a box's value is replaced.
type Listener[T any] func(T)

// Box holds one value of type T.
type Box[T any] struct {
	value    T
	iterable bool

	listeners []Listener[T]

	log       logrus.FieldLogger
	debugging bool
}

// New boxes v. Listeners are not notified of the initial value.
func New[T any](v T, opts ...Option) *Box[T] {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	b := &Box[T]{log: o.log, debugging: o.debug}
	b.store(v)
	return b
}

// Get returns the current value.
func (b *Box[T]) Get() T {
	b.trace("get")
	return b.value
}

// Set replaces the value and then calls every listener, in the order they
// were registered, with the new value.
func (b *Box[T]) Set(v T) {
	b.store(v)
	b.trace("set")
	for _, fn := range b.listeners {
		fn(v)
	}
}

// Release sets the value to the zero value of T.
func (b *Box[T]) Release() {
	var zero T
	b.Set(zero)
}

// Observe registers fn to be called on every Set. Registering the same
// function twice makes it run twice per change.
func (b *Box[T]) Observe(fn Listener[T]) {
	if b.listeners == nil {
		b.listeners = make([]Listener[T], 0, 1)
	}
	b.listeners = append(b.listeners, fn)
}

// Type returns the type tag of the current value.
func (b *Box[T]) Type() value.Tag {
	return value.TypeOf(b.value)
}

// Is reports whether tag names the type of the current value, ignoring case.
func (b *Box[T]) Is(tag string) bool {
	return value.Is(b.value, tag)
}

// Equals reports whether other is strictly the current value: the same
// primitive or the same reference. Contents are never compared.
func (b *Box[T]) Equals(other T) bool {
	return value.Same(b.value, other)
}

// Assert returns the result of pred applied to the current value.
func (b *Box[T]) Assert(pred func(T) bool) bool {
	return pred(b.value)
}

// HashCode returns the structural hash code of the current value.
func (b *Box[T]) HashCode() int32 {
	return hashcode.Of(b.value)
}

// ToNumber returns the numeric form of the box, which is its hash code.
func (b *Box[T]) ToNumber() int32 {
	return b.HashCode()
}

// ToString returns the string form of the current value. Null and undefined
// values have none and yield a *wraperr.TypeError.
func (b *Box[T]) ToString() (string, error) {
	return value.ToString(b.value)
}

// String implements fmt.Stringer. Values without a string form print as
// their Go representation.
func (b *Box[T]) String() string {
	s, err := b.ToString()
	if err != nil {
		return fmt.Sprint(b.value)
	}
	return s
}

// Log writes msg together with the current value to the box's logger.
func (b *Box[T]) Log(msg string) {
	b.logger().WithField("value", b.value).Info(msg)
}

// Debug turns the diagnostic trace of Get and Set on or off.
func (b *Box[T]) Debug(on bool) {
	b.debugging = on
}

func (b *Box[T]) store(v T) {
	b.value = v
	switch value.TypeOf(v) {
	case value.TagArray, value.TagObject:
		b.iterable = true
	default:
		b.iterable = false
	}
}

func (b *Box[T]) trace(op string) {
	if !b.debugging {
		return
	}
	b.logger().WithFields(logrus.Fields{
		"op":   op,
		"type": b.Type(),
		"hash": b.HashCode(),
	}).Debug("wrap: value accessed")
}

func (b *Box[T]) logger() logrus.FieldLogger {
	if b.log == nil {
		return logrus.StandardLogger()
	}
	return b.log
}

var _ fmt.Stringer = (*Box[any])(nil)
