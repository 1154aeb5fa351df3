package value

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

type celsius float64

func TestTypeOf(t *testing.T) {
	var nilPtr *point
	var nilFunc func()
	var nilChan chan int
	var nilErr error
	n := 42

	cases := []struct {
		name string
		v    any
		want Tag
	}{
		{"string", "foo", TagString},
		{"raw message", json.RawMessage(`{}`), TagArray},
		{"int", 1, TagNumber},
		{"uint8", uint8(1), TagNumber},
		{"float", 1.5, TagNumber},
		{"named float", celsius(21.5), TagNumber},
		{"json number", json.Number("12"), TagNumber},
		{"bool", true, TagBoolean},
		{"slice", []int{1, 2}, TagArray},
		{"empty slice", []any{}, TagArray},
		{"array", [2]string{"a", "b"}, TagArray},
		{"map", map[string]int{"a": 1}, TagObject},
		{"struct", point{1, 2}, TagObject},
		{"struct pointer", &point{1, 2}, TagObject},
		{"int pointer", &n, TagNumber},
		{"func", func() {}, TagFunction},
		{"regexp", regexp.MustCompile("foo"), TagRegExp},
		{"date", time.Now(), TagDate},
		{"date pointer", &time.Time{}, TagDate},
		{"error", errors.New("boom"), TagError},
		{"nil", nil, TagNull},
		{"nil pointer", nilPtr, TagNull},
		{"nil func", nilFunc, TagNull},
		{"nil chan", nilChan, TagNull},
		{"nil error", nilErr, TagNull},
		{"undefined", Undefined, TagUndefined},
		{"channel", make(chan int), TagChannel},
		{"complex", complex(1, 2), TagComplex},
		{"unsafe pointer", unsafe.Pointer(&n), TagPointer},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, TypeOf(c.v))
		})
	}
}

func TestTypeOfStable(t *testing.T) {
	values := []any{"foo", 10, []int{1}, map[string]any{}, nil, Undefined, time.Now()}
	for _, v := range values {
		assert.Equal(t, TypeOf(v), TypeOf(v))
	}
}

func TestIs(t *testing.T) {
	assert.True(t, Is("foo", "STRING"))
	assert.True(t, Is("foo", "String"))
	assert.True(t, Is([]int{}, "array"))
	assert.True(t, Is(nil, "Null"))
	assert.False(t, Is("foo", "number"))
	assert.False(t, Is(1, "int"))
}

func TestIsNil(t *testing.T) {
	var p *point
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(Undefined))
	assert.True(t, IsNil(p))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int(nil)))
}
