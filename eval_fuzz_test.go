//go:build go1.18
// +build go1.18

package calc_test

import (
	"testing"

	"github.com/arithmo/calc"
)

func FuzzEvalString(f *testing.F) {
	f.Add("1 + 2 * 3")
	f.Add("1 / 0")
	f.Add("-(8 - 4 - 2)")
	f.Fuzz(func(t *testing.T, s string) {
		if _, err := calc.EvalString(s); err != nil {
			if _, ok := err.(calc.InputError); !ok {
				t.Errorf("non-input error %T from %q: %v", err, s, err)
			}
		}
	})
}
