package readable

import "fmt"

// Map applies fn to the value. The description names fn:
// "<description> mapped by <fn name>".
func Map[T, U any](r Readable[T], fn func(T) U) Readable[U] {
	return MapAs(r, fn)
}

// MapAs applies fn to the value and describes the step with a template.
// {it} in the template is replaced by the receiver's description; without it
// the template is appended after a space. An empty template behaves like Map.
func MapAs[T, U any](r Readable[T], fn func(T) U, description ...any) Readable[U] {
	out := fn(r.value)
	return Readable[U]{value: out, description: describeStep(r.description, fn, description)}
}

// FlatMap applies fn, which returns a Readable, and keeps its value.
// The description is "<description> mapped by <returned description>".
func FlatMap[T, U any](r Readable[T], fn func(T) Readable[U]) Readable[U] {
	return FlatMapAs(r, fn)
}

// FlatMapAs is FlatMap with a template, where {this} stands for the
// description of the Readable returned by fn.
func FlatMapAs[T, U any](r Readable[T], fn func(T) Readable[U], description ...any) Readable[U] {
	out := fn(r.value)
	return Readable[U]{value: out.value, description: combine(r.description, out.description, description)}
}

// Apply calls the function wrapped by fn with the value.
// The description is "<description> mapped by <fn description>".
func Apply[T, U any](r Readable[T], fn Readable[func(T) U]) Readable[U] {
	return ApplyAs(r, fn)
}

// ApplyAs is Apply with a template, where {this} stands for fn's description.
func ApplyAs[T, U any](r Readable[T], fn Readable[func(T) U], description ...any) Readable[U] {
	out := fn.value(r.value)
	return Readable[U]{value: out, description: combine(r.description, fn.description, description)}
}

// TryMap applies fn, which may fail. On failure no Readable is produced and
// the returned error wraps fn's error with the description of the step.
func TryMap[T, U any](r Readable[T], fn func(T) (U, error)) (Readable[U], error) {
	return TryMapAs(r, fn)
}

// TryMapAs is TryMap with a template, resolved the same way as in MapAs.
func TryMapAs[T, U any](r Readable[T], fn func(T) (U, error), description ...any) (Readable[U], error) {
	d := describeStep(r.description, fn, description)

	out, err := fn(r.value)
	if err != nil {
		return Readable[U]{}, fmt.Errorf("%s: %w", d, err)
	}
	return Readable[U]{value: out, description: d}, nil
}

func describeStep(it string, fn any, description []any) string {
	d := Template(description...)
	if d == "" {
		return mappedBy(it, funcName(fn))
	}
	return substitute(d, it)
}

func combine(it, this string, description []any) string {
	d := Template(description...)
	if d == "" {
		return mappedBy(it, this)
	}
	return substituteBoth(d, it, this)
}
