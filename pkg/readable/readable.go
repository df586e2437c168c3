package readable

// Readable is an immutable pair of a value and the description of how the
// value was produced. The zero Readable has a zero value and an empty
// description; use R to build one.
type Readable[T any] struct {
	value       T
	description string
}

// Operand is satisfied by every Readable, whatever its value type.
// It lets And and Or combine Readables of different types.
type Operand interface {
	Print() string
	truthy() bool
}

// R wraps value. The description fragments are joined in order, see Template.
// When they join to an empty string the string form of value is used instead.
func R[T any](value T, description ...any) Readable[T] {
	d := Template(description...)
	if d == "" {
		d = stringOf(value)
	}
	return Readable[T]{value: value, description: d}
}

// Eval returns the wrapped value.
func (r Readable[T]) Eval() T {
	return r.value
}

// Print returns the description.
func (r Readable[T]) Print() string {
	return r.description
}

// Append keeps the value and adds text to the description after a space.
func (r Readable[T]) Append(text ...any) Readable[T] {
	return Readable[T]{value: r.value, description: r.description + " " + Template(text...)}
}

func (r Readable[T]) truthy() bool {
	return isTruthy(r.value)
}
