package nfoldio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/augfold/nfold/vecint"
)

// Format writes the success output: the objective value, a newline, then x
// in reading order, space-separated.
func Format(w io.Writer, x vecint.Vector, objective int64) error {
	if _, err := fmt.Fprintln(w, objective); err != nil {
		return err
	}

	var b strings.Builder
	for i, v := range x {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())

	return err
}

// FormatInfeasible writes the fixed infeasibility message.
func FormatInfeasible(w io.Writer) error {
	_, err := fmt.Fprintln(w, "No solution exists")

	return err
}
