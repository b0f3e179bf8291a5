package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithmo/calc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "1", 1},
		{"real", "2.5", 2.5},
		{"exponent", "1.5e2", 150},
		{"add", "1 + 2", 3},
		{"sub", "1 - 2", -1},
		{"mul", "2 * 3", 6},
		{"div", "10 / 4", 2.5},
		{"div-inexact", "1 / 3", 1.0 / 3.0},
		{"left-assoc", "8 - 4 - 2", 2},
		{"left-assoc-div", "8 / 4 / 2", 1},
		{"precedence", "2 + 3 * 4", 14},
		{"group", "(2 + 3) * 4", 20},
		{"neg", "-2 * 3", -6},
		{"neg-group", "-(2 + 3)", -5},
		{"neg-neg", "--4", 4},
		{"mixed", "1 + (2 - 3) * 4 / 8 * 6", -2},
		{"overflow", "1e308 * 10", math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := calc.ParseString(c.src)
			require.NoError(t, err)
			r, err := e.Eval()
			require.NoError(t, err)
			assert.Equal(t, c.want, r)
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	cases := []struct {
		name string
		src  string
		pos  int
	}{
		{"literal", "1 / 0", 3},
		{"computed", "1 / (2 - 2)", 3},
		{"nested", "4 + 6 / (1 - 1)", 7},
		{"negated-zero", "1 / -0", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calc.EvalString(c.src)
			require.Error(t, err)
			derr, ok := err.(*calc.DivisionError)
			require.True(t, ok, "want DivisionError, got %T: %v", err, err)
			assert.Equal(t, c.pos, derr.Pos())
		})
	}
}

func TestEvalStringPropagatesParseErrors(t *testing.T) {
	for _, src := range []string{"", "1 +", "(1 + 2", "1 2", "1 + a"} {
		_, err := calc.EvalString(src)
		require.Error(t, err, "source %q", src)
		_, ok := err.(calc.InputError)
		assert.True(t, ok, "source %q: error %T does not implement InputError", src, err)
	}
}

// Evaluating an expression twice gives the same result: the tree is not
// mutated by evaluation.
func TestEvalRepeatable(t *testing.T) {
	e, err := calc.ParseString("-(2 + 3) * 4 / 5")
	require.NoError(t, err)
	a, err := e.Eval()
	require.NoError(t, err)
	b, err := e.Eval()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
