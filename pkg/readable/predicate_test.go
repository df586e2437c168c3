package readable_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/readable/pkg/readable"
)

func TestIsTrue(t *testing.T) {
	t.Parallel()

	truthy := readable.R("truthy string", "my input").IsTrue()
	assert.Equal(t, "my input is true", truthy.Print())
	assert.True(t, truthy.Eval())

	falsy := readable.R[any](nil, "my input").IsTrue()
	assert.Equal(t, "my input is not true", falsy.Print())
	assert.False(t, falsy.Eval())

	assert.False(t, readable.R("").IsTrue().Eval())
}

func TestIsFalse(t *testing.T) {
	t.Parallel()

	falsy := readable.R("", "my falsy input").IsFalse()
	assert.Equal(t, "my falsy input is false", falsy.Print())
	assert.True(t, falsy.Eval())

	truthy := readable.R(true, "my truthy input").IsFalse()
	assert.Equal(t, "my truthy input is not false", truthy.Print())
	assert.False(t, truthy.Eval())
}

func TestIsTrue_IsFalse_Complementary(t *testing.T) {
	t.Parallel()

	values := []any{nil, 0, 1, "", "x", 0.0, 2.5, false, true, []int{}, []int(nil), struct{}{}}
	for _, v := range values {
		r := readable.R(v)
		if r.IsTrue().Eval() == r.IsFalse().Eval() {
			t.Fatalf("IsTrue and IsFalse agree for %#v", v)
		}
	}
}

func TestIsEqualTo(t *testing.T) {
	t.Parallel()

	equal := readable.R(true).IsEqualTo(readable.R(true, "something else"))
	assert.Equal(t, "true is equal to something else", equal.Print())
	assert.True(t, equal.Eval())

	notEqual := readable.R(true).IsEqualTo(readable.R(false, "something else"))
	assert.Equal(t, "true is not equal to something else", notEqual.Print())
	assert.False(t, notEqual.Eval())
}

func TestIsEqualTo_Reflexive(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	for _, v := range []any{0, "x", 1.5, true, nil, id} {
		r := readable.R(v)
		require.True(t, r.IsEqualTo(r).Eval(), "value %#v", v)
	}

	assert.True(t, readable.R(id).IsEqualTo(readable.R(id, "the same id")).Eval())
	assert.False(t, readable.R(id).IsEqualTo(readable.R(uuid.New())).Eval())
}

func TestIsEqualTo_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]int{{1, 1}, {1, 2}, {0, -1}}
	for _, p := range pairs {
		a, b := readable.R(p[0]), readable.R(p[1])
		if a.IsEqualTo(b).Eval() != b.IsEqualTo(a).Eval() {
			t.Fatalf("IsEqualTo not symmetric for %v", p)
		}
	}
}

func TestIsEqualTo_ReferenceSemantics(t *testing.T) {
	t.Parallel()

	items := []string{"a"}
	same := readable.R(items, "items").IsEqualTo(readable.R(items, "the same items"))
	assert.True(t, same.Eval())

	copied := readable.R(items, "items").IsEqualTo(readable.R([]string{"a"}, "a copy"))
	assert.Equal(t, "items is not equal to a copy", copied.Print())
	assert.False(t, copied.Eval())
}

func TestIsEqualToValue(t *testing.T) {
	t.Parallel()

	equal := readable.R(true).IsEqualToValue(true, "something else")
	assert.Equal(t, "true is equal to something else", equal.Print())
	assert.True(t, equal.Eval())

	notEqual := readable.R(true).IsEqualToValue(false, "something else")
	assert.Equal(t, "true is not equal to something else", notEqual.Print())
	assert.False(t, notEqual.Eval())

	assert.Equal(t, "3 is equal to 3", readable.R(3).IsEqualToValue(3).Print())
}

func TestAndOr_TruthTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		left, right bool
		and, or     bool
	}{
		{true, true, true, true},
		{true, false, false, true},
		{false, true, false, true},
		{false, false, false, false},
	}

	for _, tc := range cases {
		l, r := readable.R(tc.left), readable.R(tc.right)
		and := l.And(r)
		or := l.Or(r)

		if and.Eval() != tc.and {
			t.Fatalf("%v and %v: expected %v, got %v", tc.left, tc.right, tc.and, and.Eval())
		}
		if or.Eval() != tc.or {
			t.Fatalf("%v or %v: expected %v, got %v", tc.left, tc.right, tc.or, or.Eval())
		}
	}
}

func TestAndOr_Descriptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "true and false", readable.R(true).And(readable.R(false)).Print())
	assert.Equal(t, "false or false", readable.R(false).Or(readable.R(false)).Print())
}

func TestAndOr_MixedTypes(t *testing.T) {
	t.Parallel()

	r := readable.R("name", "the name").And(readable.R(0, "the count"))
	assert.Equal(t, "the name and the count", r.Print())
	assert.False(t, r.Eval())

	r = readable.R("", "the name").Or(readable.R([]int{}, "the list"))
	assert.Equal(t, "the name or the list", r.Print())
	assert.True(t, r.Eval())
}
