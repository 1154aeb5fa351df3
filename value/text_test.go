package value

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martianoff/wrap/wraperr"
)

func TestToString(t *testing.T) {
	date := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		v    any
		want string
	}{
		{"string", "foo", "foo"},
		{"int", 10, "10"},
		{"negative int", -3, "-3"},
		{"uint", uint(7), "7"},
		{"float", 1.5, "1.5"},
		{"integral float", float64(10), "10"},
		{"float32", float32(0.1), "0.1"},
		{"named float", celsius(21.5), "21.5"},
		{"json number", json.Number("1.0"), "1"},
		{"json number exponent", json.Number("2.5E3"), "2500"},
		{"bool", true, "true"},
		{"slice", []int{1, 2, 3}, "1,2,3"},
		{"slice with holes", []any{1, nil, "a", Undefined}, "1,,a,"},
		{"nested slice", []any{1, []int{2, 3}}, "1,2,3"},
		{"map", map[string]int{"a": 1}, "[object Object]"},
		{"struct", point{1, 2}, "[object Object]"},
		{"regexp", regexp.MustCompile("fo+"), "/fo+/"},
		{"error", errors.New("boom"), "boom"},
		{"date", date, "Sat Oct 17 2026 10:00:00 GMT+0000 (UTC)"},
		{"stringer", time.Second, "1s"},
		{"complex", complex(1, 2), "(1+2i)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToString(c.v)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestToStringFunction(t *testing.T) {
	got, err := ToString(TestToStringFunction)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "function "), got)
	assert.Contains(t, got, "TestToStringFunction")
}

func TestToStringNil(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		_, err := ToString(nil)
		var typeErr *wraperr.TypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "null", typeErr.Tag)
	})

	t.Run("undefined", func(t *testing.T) {
		_, err := ToString(Undefined)
		var typeErr *wraperr.TypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "undefined", typeErr.Tag)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var p *point
		_, err := ToString(p)
		assert.Error(t, err)
	})
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-42, "-42"},
		{0.1, "0.1"},
		{123.456, "123.456"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e21, "1e+21"},
		{1.25e22, "1.25e+22"},
		{123456789012345680000, "123456789012345680000"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatNumber(c.f, 64), "FormatNumber(%v)", c.f)
	}
}
