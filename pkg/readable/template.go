package readable

import (
	"fmt"
	"strings"
)

// Placeholder tokens understood by description templates.
const (
	// It stands for the description of the receiver.
	It = "{it}"
	// This stands for the description of the second operand of FlatMapAs
	// and ApplyAs.
	This = "{this}"
)

// Template joins description fragments in source order, without separators.
// Strings are used verbatim, any other fragment is rendered with fmt.Sprint.
//
//	Template("sum of ", []int{1, 2}, " items") // "sum of [1 2] items"
func Template(fragments ...any) string {
	if len(fragments) == 1 {
		if s, ok := fragments[0].(string); ok {
			return s
		}
	}

	var b strings.Builder
	for _, f := range fragments {
		switch v := f.(type) {
		case string:
			b.WriteString(v)
		default:
			b.WriteString(fmt.Sprint(v))
		}
	}
	return b.String()
}

// substitute places it into template where {it} appears, or prefixes the
// template with it when the token is absent.
func substitute(template, it string) string {
	if strings.Contains(template, It) {
		return strings.ReplaceAll(template, It, it)
	}
	return it + " " + template
}

// substituteBoth resolves {this} first and {it} second. A template holding
// only {this} still gets it as a prefix.
func substituteBoth(template, it, this string) string {
	if strings.Contains(template, This) {
		template = strings.ReplaceAll(template, This, this)
	}
	return substitute(template, it)
}

func mappedBy(it, by string) string {
	return it + " mapped by " + by
}

func verdict(subject string, holds bool, predicate string) string {
	if holds {
		return subject + " is " + predicate
	}
	return subject + " is not " + predicate
}
