package nfoldio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/augfold/nfold/instance"
)

// tokenizer pulls whitespace-separated tokens from r, crossing line breaks
// freely so the input's exact line layout never matters.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

func (t *tokenizer) nextInt() (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)
	}
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, t.sc.Text())
	}

	return v, nil
}

func (t *tokenizer) nextDim() (int, error) {
	v, err := t.nextInt()
	if err != nil {
		return 0, err
	}
	if v < -1<<31 || v > 1<<31-1 {
		return 0, fmt.Errorf("%w: dimension %d out of range", ErrMalformedInput, v)
	}

	return int(v), nil
}

func (t *tokenizer) fillVector(n int, dst []int64) error {
	for i := 0; i < n; i++ {
		v, err := t.nextInt()
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

// Parse reads one n-fold instance from r in the following format:
//
//	n r s t
//	l_0 ... l_{n*t-1}
//	u_0 ... u_{n*t-1}
//	b_0 ... b_{r+n*s-1}
//	c_0 ... c_{n*t-1}
//	A_0 (r x t, row-major) ... A_{n-1}
//	B_0 (s x t, row-major) ... B_{n-1}
//
// Parse never panics on malformed input: every failure is reported as an
// error wrapping ErrMalformedInput. It does not call x.Validate(); callers
// decide whether to validate before using the result.
func Parse(r io.Reader) (*instance.NFold, error) {
	t := newTokenizer(r)

	n, err := t.nextDim()
	if err != nil {
		return nil, err
	}
	rows, err := t.nextDim()
	if err != nil {
		return nil, err
	}
	s, err := t.nextDim()
	if err != nil {
		return nil, err
	}
	cols, err := t.nextDim()
	if err != nil {
		return nil, err
	}
	if n <= 0 || s <= 0 || cols <= 0 || rows < 0 {
		return nil, fmt.Errorf("%w: n, s, t must be positive and r non-negative", ErrMalformedInput)
	}

	x := instance.New(n, rows, s, cols)

	if err := t.fillVector(n*cols, x.L); err != nil {
		return nil, err
	}
	if err := t.fillVector(n*cols, x.U); err != nil {
		return nil, err
	}
	if err := t.fillVector(rows+n*s, x.Bvec); err != nil {
		return nil, err
	}
	if err := t.fillVector(n*cols, x.C); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				v, err := t.nextInt()
				if err != nil {
					return nil, err
				}
				x.As[i].Set(row, col, v)
			}
		}
	}
	for i := 0; i < n; i++ {
		for row := 0; row < s; row++ {
			for col := 0; col < cols; col++ {
				v, err := t.nextInt()
				if err != nil {
					return nil, err
				}
				x.Bs[i].Set(row, col, v)
			}
		}
	}

	return x, nil
}
