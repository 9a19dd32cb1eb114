package mtx

import (
	"errors"
	"testing"
)

// TestParseHeader covers dimension parsing, the optional nnz token,
// and every header-level failure mode.
func TestParseHeader(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		nDim    int
		wantNNZ bool
		dims    []int
		nnz     int
		err     error
	}{
		{"Dense2D", "2 3", 2, false, []int{2, 3}, 0, nil},
		{"Sparse2D", "10 11 2", 2, true, []int{10, 11}, 2, nil},
		{"Sparse3D", "2 3 4 5", 3, true, []int{2, 3, 4}, 5, nil},
		{"ZeroNNZ", "10 10 0", 2, true, []int{10, 10}, 0, nil},
		{"TabSeparated", "4\t7\t3", 2, true, []int{4, 7}, 3, nil},
		{"MissingNNZ", "10 10", 2, true, nil, 0, ErrHeaderTruncated},
		{"MissingDim", "10", 2, false, nil, 0, ErrHeaderTruncated},
		{"ZeroDim", "0 10 2", 2, true, nil, 0, ErrHeaderTruncated},
		{"GarbageDim", "ten 10", 2, false, nil, 0, ErrBadDimension},
		{"NegativeDim", "-3 10", 2, false, nil, 0, ErrBadDimension},
		{"GarbageNNZ", "10 10 x", 2, true, nil, 0, ErrBadDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dims, nnz, err := parseHeader(tc.line, tc.nDim, tc.wantNNZ)
			if !errors.Is(err, tc.err) {
				t.Fatalf("parseHeader(%q) error = %v; want %v", tc.line, err, tc.err)
			}
			if err != nil {
				return
			}
			if len(dims) != len(tc.dims) {
				t.Fatalf("parseHeader(%q) dims = %v; want %v", tc.line, dims, tc.dims)
			}
			for i := range dims {
				if dims[i] != tc.dims[i] {
					t.Errorf("parseHeader(%q) dims = %v; want %v", tc.line, dims, tc.dims)
				}
			}
			if nnz != tc.nnz {
				t.Errorf("parseHeader(%q) nnz = %d; want %d", tc.line, nnz, tc.nnz)
			}
		})
	}
}

// TestProduct checks the dense element count fold.
func TestProduct(t *testing.T) {
	cases := []struct {
		dims []int
		want int
	}{
		{[]int{2, 3}, 6},
		{[]int{5}, 5},
		{[]int{2, 3, 4}, 24},
	}
	for _, tc := range cases {
		if got := product(tc.dims); got != tc.want {
			t.Errorf("product(%v) = %d; want %d", tc.dims, got, tc.want)
		}
	}
}
