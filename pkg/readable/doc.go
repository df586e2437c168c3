// Package readable pairs a value with a human-readable account of how it
// was derived. Every operation returns a new Readable whose description is
// composed from the descriptions of its inputs, so a chain of steps yields
// both a final value and an English-like sentence describing the chain.
//
// Key operations:
// - R: wrap a value with a description (or its string form)
// - IsTrue/IsFalse/IsEqualTo/And/Or: boolean predicates over Readables
// - Map/FlatMap/Apply (and their -As template variants): transform the value
// - TryMap: transform with a function that may fail
// - S/SAs/Get: access a field or map entry of the wrapped value
// - Append: annotate the description without touching the value
// - Eval/Print: read the value or the description
//
// Templates passed to the -As variants may reference the receiver's
// description with {it}; FlatMapAs and ApplyAs may also reference the second
// operand's description with {this}. A template without {it} is appended to
// the receiver's description after a single space.
//
//	r := readable.MapAs(readable.R(true, "my value"), not, "when not {it},")
//	r.Print() // "when not my value,"
//	r.Eval()  // false
package readable
