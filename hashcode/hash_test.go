package hashcode_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"martianoff/wrap/hashcode"
	"martianoff/wrap/value"
)

func TestString(t *testing.T) {
	cases := []struct {
		in   string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"foo", 101574},
		{"true", 3569038},
		{"hello", 99162322},
		{"hello world", 1794106052},
		{"polygenelubricants", -2147483648},
		{"\U0001F600", 1772899},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, hashcode.String(c.in), "String(%q)", c.in)
	}
}

func TestStringCollision(t *testing.T) {
	assert.Equal(t, hashcode.String("Aa"), hashcode.String("BB"))
}

func TestOfEmpty(t *testing.T) {
	assert.Equal(t, int32(0), hashcode.Of(nil))
	assert.Equal(t, int32(0), hashcode.Of(value.Undefined))
	assert.Equal(t, int32(0), hashcode.Of([]any{}))
	assert.Equal(t, int32(0), hashcode.Of(map[string]any{}))
	assert.Equal(t, int32(0), hashcode.Of(struct{}{}))
}

func TestOfLeaf(t *testing.T) {
	assert.Equal(t, int32(101574), hashcode.Of("foo"))
	assert.Equal(t, int32(1567), hashcode.Of(10))
	assert.Equal(t, int32(1567), hashcode.Of(10.0))
	assert.Equal(t, int32(1567), hashcode.Of(json.Number("10.0")))
	assert.Equal(t, int32(3569038), hashcode.Of(true))
}

func TestOfArray(t *testing.T) {
	assert.Equal(t, int32(146319), hashcode.Of([]int{1, 2, 3}))
	assert.Equal(t, int32(146319), hashcode.Of([]any{1.0, 2.0, 3.0}))
	assert.Equal(t, int32(146319), hashcode.Of([3]int{1, 2, 3}))
	assert.Equal(t, int32(96577), hashcode.Of([]int{1, 2}))
	assert.Equal(t, int32(96578), hashcode.Of([]int{1, 3}))
}

func TestOfArrayCollision(t *testing.T) {
	// Permutations can collide: the digit sums of "049"+"150"+"251" and
	// "051"+"150"+"249" fold to the same total.
	assert.Equal(t, hashcode.Of([]int{1, 2, 3}), hashcode.Of([]int{3, 2, 1}))
}

func TestOfObject(t *testing.T) {
	v1 := map[string]any{"a": 1, "b": 2}
	v2 := map[string]any{"b": 2, "a": 1}
	v3 := map[string]any{"a": 1, "b": 3}

	assert.Equal(t, int32(190755), hashcode.Of(v1))
	assert.Equal(t, hashcode.Of(v1), hashcode.Of(v2))
	assert.Equal(t, int32(190756), hashcode.Of(v3))
	assert.NotEqual(t, hashcode.Of(v1), hashcode.Of(v3))
}

func TestOfStructMatchesMap(t *testing.T) {
	type pair struct {
		A int `json:"a"`
		B int `json:"b"`
	}
	assert.Equal(t, int32(190755), hashcode.Of(pair{A: 1, B: 2}))
	assert.Equal(t, int32(190755), hashcode.Of(&pair{A: 1, B: 2}))
}

func TestOfStructOmitEmpty(t *testing.T) {
	type opt struct {
		A int `json:"a,omitempty"`
		B int `json:"b"`
	}
	assert.Equal(t, int32(0), hashcode.Of(struct {
		A int `json:"a,omitempty"`
	}{}))
	assert.Equal(t, hashcode.Of(map[string]any{"b": 2}), hashcode.Of(opt{B: 2}))
	assert.Equal(t, int32(190755), hashcode.Of(opt{A: 1, B: 2}))
}

func TestOfNested(t *testing.T) {
	doc := map[string]any{
		"name": "wrap",
		"tags": []any{"a", "b"},
		"meta": map[string]any{"n": 1, "ok": true, "none": nil},
	}
	same := map[string]any{
		"meta": map[string]any{"none": nil, "ok": true, "n": 1},
		"tags": []any{"a", "b"},
		"name": "wrap",
	}

	assert.Equal(t, hashcode.Of(doc), hashcode.Of(same))
	assert.Equal(t, hashcode.Of(doc), hashcode.Of(doc))

	tags := hashcode.String("0"+"97") + hashcode.String("1"+"98")
	assert.Equal(t, tags, hashcode.Of([]any{"a", "b"}))
}

func TestOfNegativeElement(t *testing.T) {
	want := hashcode.String("0-2147483648")
	assert.Equal(t, want, hashcode.Of([]string{"polygenelubricants"}))
}

func TestOfNullElement(t *testing.T) {
	assert.Equal(t, hashcode.String("00"), hashcode.Of([]any{nil}))
	assert.Equal(t, hashcode.String("k0"), hashcode.Of(map[string]any{"k": nil}))
}
