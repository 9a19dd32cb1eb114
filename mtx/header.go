package mtx

import (
	"fmt"
	"strconv"
	"strings"
)

// parseHeader decodes the size header: the first nDim tokens are
// dimensions, and for coordinate layout a trailing token declares the
// stored entry count.
// A missing token or a zero dimension is ErrHeaderTruncated; a
// non-integer token is ErrBadDimension wrapping the token text.
func parseHeader(line string, nDim int, wantNNZ bool) (dims []int, nnz int, err error) {
	toks := strings.Fields(line)
	want := nDim
	if wantNNZ {
		want++
	}
	if len(toks) < want {
		return nil, 0, fmt.Errorf("%d token(s), want %d: %w", len(toks), want, ErrHeaderTruncated)
	}

	dims = make([]int, nDim)
	for i := 0; i < nDim; i++ {
		d, convErr := strconv.Atoi(toks[i])
		if convErr != nil || d < 0 {
			return nil, 0, fmt.Errorf("dimension %q: %w", toks[i], ErrBadDimension)
		}
		if d == 0 {
			return nil, 0, fmt.Errorf("dimension %d is zero: %w", i+1, ErrHeaderTruncated)
		}
		dims[i] = d
	}

	if wantNNZ {
		nnz, err = strconv.Atoi(toks[nDim])
		if err != nil || nnz < 0 {
			return nil, 0, fmt.Errorf("entry count %q: %w", toks[nDim], ErrBadDimension)
		}
	}

	return dims, nnz, nil
}

// product folds the dimensions into the dense element count.
func product(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}

	return n
}
