package readable

import (
	"fmt"
	"reflect"
)

// S reads the struct field or string-keyed map entry named key.
// The description becomes "<description>'s <key>".
//
// A struct without such a field, an unexported field, a value that is neither
// a struct nor a map, or a field that is not a U all panic. A missing map
// entry yields the zero U, as indexing the map would.
func S[U, T any](r Readable[T], key string) Readable[U] {
	return SAs[U](r, key)
}

// SAs is S with label used in the description in place of key.
func SAs[U, T any](r Readable[T], key string, label ...any) Readable[U] {
	l := Template(label...)
	if l == "" {
		l = key
	}

	var out U
	if v := lookup(r.value, key).Interface(); v != nil {
		out = v.(U)
	}
	return Readable[U]{value: out, description: possessive(r.description, l)}
}

// Get reads a part of the value through a typed accessor.
//
//	Get(person, "name", func(p Person) string { return p.Name })
func Get[T, U any](r Readable[T], label string, get func(T) U) Readable[U] {
	out := get(r.value)
	return Readable[U]{value: out, description: possessive(r.description, label)}
}

func possessive(owner, part string) string {
	return owner + "'s " + part
}

func lookup(value any, key string) reflect.Value {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		f := v.FieldByName(key)
		if !f.IsValid() {
			panic(fmt.Sprintf("readable: %s has no field %q", v.Type(), key))
		}
		return f
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() != reflect.String {
			panic(fmt.Sprintf("readable: cannot look up %q in %s", key, v.Type()))
		}
		e := v.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !e.IsValid() {
			return reflect.Zero(v.Type().Elem())
		}
		return e
	default:
		panic(fmt.Sprintf("readable: cannot look up %q in %v", key, v.Kind()))
	}
}
