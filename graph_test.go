package calc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithmo/calc"
)

func TestDot(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{"num", "1", []string{
			"strict graph {",
			`  0 [ label = "1" ]`,
			"}",
		}},
		{"add", "1 + 2", []string{
			"strict graph {",
			`  0 [ label = "+" ]`,
			"  0 -- 1",
			"  0 -- 2",
			`  1 [ label = "1" ]`,
			`  2 [ label = "2" ]`,
			"}",
		}},
		// Preorder: the negated group and everything under it number
		// before the right operand of the multiplication.
		{"nested", "-(2 + 3) * 4", []string{
			"strict graph {",
			`  0 [ label = "*" ]`,
			"  0 -- 1",
			"  0 -- 5",
			`  1 [ label = "-" ]`,
			"  1 -- 2",
			`  2 [ label = "+" ]`,
			"  2 -- 3",
			"  2 -- 4",
			`  3 [ label = "2" ]`,
			`  4 [ label = "3" ]`,
			`  5 [ label = "4" ]`,
			"}",
		}},
		{"real", "1.5 / 2", []string{
			"strict graph {",
			`  0 [ label = "/" ]`,
			"  0 -- 1",
			"  0 -- 2",
			`  1 [ label = "1.5" ]`,
			`  2 [ label = "2" ]`,
			"}",
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := calc.ParseString(c.src)
			require.NoError(t, err)
			assert.Equal(t, strings.Join(c.want, "\n")+"\n", e.Dot())
		})
	}
}

func TestDotDeterministic(t *testing.T) {
	e, err := calc.ParseString("1 + (2 - 3) * 4 / 5 * 6")
	require.NoError(t, err)
	assert.Equal(t, e.Dot(), e.Dot())
}

func TestWriteDot(t *testing.T) {
	e, err := calc.ParseString("6 * 7")
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, e.WriteDot(&b))
	assert.Equal(t, e.Dot(), b.String())
}

func TestTree(t *testing.T) {
	e, err := calc.ParseString("-1 * (2 + 3)")
	require.NoError(t, err)
	want := &calc.Node{
		Kind: "*",
		Left: &calc.Node{
			Kind: "-",
			Left: &calc.Node{Kind: "num", Value: 1},
		},
		Right: &calc.Node{
			Kind:  "+",
			Left:  &calc.Node{Kind: "num", Value: 2},
			Right: &calc.Node{Kind: "num", Value: 3},
		},
	}
	assert.Equal(t, want, e.Tree())
	// The snapshot is a copy; mutating it does not disturb the expression.
	e.Tree().Kind = "?"
	r, err := e.Eval()
	require.NoError(t, err)
	assert.Equal(t, -5.0, r)
}
