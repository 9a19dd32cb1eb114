package mtx

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDenseBody reads exactly count value lines from ls.
// Each line holds one scalar; values are appended in file order, which
// callers interpret as column-major against the declared dimensions.
// Exhausted input is ErrUnexpectedEOF, an unparsable token ErrBadValue.
func parseDenseBody[T Scalar](ls *lineScanner, count int) ([]T, error) {
	values := make([]T, 0, count)
	for len(values) < count {
		line, err := ls.nextRecord()
		if err != nil {
			return nil, fmt.Errorf("entry %d of %d: %w", len(values)+1, count, err)
		}
		v, err := parseScalar[T](line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ls.line, err)
		}
		values = append(values, v)
	}

	return values, nil
}

// parseSparseBody reads exactly nnz entry lines from ls.
// The first nDim tokens of each line are 1-based coordinates, stored
// decremented to 0-based; the final token is the value. Short lines are
// ErrLineTruncated, exhausted input ErrUnexpectedEOF. Lines beyond nnz
// are left unread.
func parseSparseBody[T Scalar](ls *lineScanner, nDim, nnz int) ([][]int, []T, error) {
	coords := make([][]int, 0, nnz)
	values := make([]T, 0, nnz)
	for len(values) < nnz {
		line, err := ls.nextRecord()
		if err != nil {
			return nil, nil, fmt.Errorf("entry %d of %d: %w", len(values)+1, nnz, err)
		}

		toks := strings.Fields(line)
		if len(toks) < nDim+1 {
			return nil, nil, fmt.Errorf("line %d: %d token(s), want %d: %w",
				ls.line, len(toks), nDim+1, ErrLineTruncated)
		}

		index := make([]int, nDim)
		for i := 0; i < nDim; i++ {
			c, err := parseCoordinate(toks[i])
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", ls.line, err)
			}
			index[i] = c
		}

		v, err := parseScalar[T](toks[len(toks)-1])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", ls.line, err)
		}

		coords = append(coords, index)
		values = append(values, v)
	}

	return coords, values, nil
}

// parseCoordinate converts one 1-based coordinate token to its 0-based
// index. A non-integer token, a negative value, or a zero (which would
// underflow the conversion) is ErrBadCoordinate.
func parseCoordinate(tok string) (int, error) {
	c, err := strconv.Atoi(tok)
	if err != nil || c < 1 {
		return 0, fmt.Errorf("%q: %w", tok, ErrBadCoordinate)
	}

	return c - 1, nil
}
