package readable

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// isTruthy mirrors loose boolean coercion: nil, false, zero numbers, NaN,
// empty strings and nil references are falsy, everything else is truthy.
func isTruthy(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	default:
		return true
	}
}

// strictEqual compares comparable values with ==. Slices, maps and funcs have
// no == in Go, they are compared by identity instead: same backing array and
// length, same map, same code pointer. Any other uncomparable value makes ==
// panic, as it would without the wrapper.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	default:
		return a == b
	}
}

// stringOf is the description used when none is given.
func stringOf(v any) string {
	if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
		return funcName(v)
	}
	return fmt.Sprint(v)
}

var closureSegment = regexp.MustCompile(`^(func|gowrap|deferwrap)?[0-9]+$`)

// funcName names fn the way a reader would: the bare identifier of a
// declared function or method, or the type signature of an anonymous one.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return fmt.Sprint(fn)
	}
	if v.IsNil() {
		return "<nil>"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return v.Type().String()
	}

	name := stripTypeArgs(f.Name())
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")

	segments := strings.Split(name, ".")
	last := segments[len(segments)-1]
	if last == "" || closureSegment.MatchString(last) {
		return v.Type().String()
	}
	return last
}

// stripTypeArgs drops the bracketed type arguments of generic instantiations.
func stripTypeArgs(name string) string {
	if !strings.Contains(name, "[") {
		return name
	}

	var b strings.Builder
	depth := 0
	for _, c := range name {
		switch {
		case c == '[':
			depth++
		case c == ']' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(c)
		}
	}
	return b.String()
}
