package readable

// IsTrue reports whether the value is truthy.
func (r Readable[T]) IsTrue() Readable[bool] {
	holds := r.truthy()
	return Readable[bool]{value: holds, description: verdict(r.description, holds, "true")}
}

// IsFalse reports whether the value is falsy.
func (r Readable[T]) IsFalse() Readable[bool] {
	holds := !r.truthy()
	return Readable[bool]{value: holds, description: verdict(r.description, holds, "false")}
}

// IsEqualTo compares both values strictly: == for comparable values,
// identity for slices, maps and funcs. It never compares deeply.
func (r Readable[T]) IsEqualTo(other Readable[T]) Readable[bool] {
	holds := strictEqual(any(r.value), any(other.value))
	return Readable[bool]{
		value:       holds,
		description: verdict(r.description, holds, "equal to "+other.description),
	}
}

// IsEqualToValue is IsEqualTo against a raw value described by description,
// or by its string form when description is empty.
func (r Readable[T]) IsEqualToValue(value T, description ...any) Readable[bool] {
	return r.IsEqualTo(R(value, description...))
}

func (r Readable[T]) And(other Operand) Readable[bool] {
	return Readable[bool]{
		value:       r.truthy() && other.truthy(),
		description: r.description + " and " + other.Print(),
	}
}

func (r Readable[T]) Or(other Operand) Readable[bool] {
	return Readable[bool]{
		value:       r.truthy() || other.truthy(),
		description: r.description + " or " + other.Print(),
	}
}
