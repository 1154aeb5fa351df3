package value

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"martianoff/wrap/wraperr"
)

// DateLayout is the layout dates are rendered with.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// ToString converts v to its string form. Null and undefined have none and
// yield a *wraperr.TypeError.
func ToString(v any) (string, error) {
	if IsNil(v) {
		tag := TypeOf(v)
		return "", wraperr.NewTypeError(string(tag), fmt.Sprintf("cannot convert %s to string", tag))
	}
	return text(reflect.ValueOf(v)), nil
}

func text(rv reflect.Value) string {
	switch tagOf(rv) {
	case TagNull, TagUndefined:
		return ""
	case TagDate:
		return indirect(rv).Interface().(time.Time).Format(DateLayout)
	case TagRegExp:
		return "/" + regexpOf(rv).String() + "/"
	case TagNumber:
		if n := indirect(rv); n.Type() == numberType {
			if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
				return FormatNumber(f, 64)
			}
			return n.String()
		}
	}

	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case error:
			return x.Error()
		case fmt.Stringer:
			return x.String()
		}
	}

	rv = indirect(rv)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cast.ToString(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cast.ToString(rv.Uint())
	case reflect.Float32:
		return FormatNumber(rv.Float(), 32)
	case reflect.Float64:
		return FormatNumber(rv.Float(), 64)
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = text(rv.Index(i))
		}
		return strings.Join(parts, ",")
	case reflect.Map, reflect.Struct:
		return "[object Object]"
	case reflect.Func:
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			return "function " + fn.Name()
		}
		return "function"
	}

	if rv.CanInterface() {
		if s, err := cast.ToStringE(rv.Interface()); err == nil {
			return s
		}
		return fmt.Sprint(rv.Interface())
	}
	return rv.String()
}

// FormatNumber renders f the way a JavaScript Number prints: the shortest
// digits that round-trip, in fixed notation for magnitudes in [1e-6, 1e21)
// and exponent notation outside it.
func FormatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + exp
}

func regexpOf(rv reflect.Value) *regexp.Regexp {
	if re, ok := rv.Interface().(*regexp.Regexp); ok {
		return re
	}
	rv = indirect(rv)
	if rv.CanAddr() {
		return rv.Addr().Interface().(*regexp.Regexp)
	}
	re := rv.Interface().(regexp.Regexp)
	return &re
}

// indirect follows pointers and interfaces down to the first concrete value.
func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}
