// Package mtx: dense materialization of parsed coordinate data.
// Column-major storage with shape-checked access, so a Sparse result
// can be consumed the same way as an Array-layout file.
package mtx

import "fmt"

// Densify materializes the coordinate list into column-major dense
// storage of product(Dims) values.
// For Symmetric data with two index dimensions, each stored
// off-diagonal entry is mirrored across the diagonal. Entries outside
// the declared dimensions (the parser does not bounds-check them) are
// ErrOutOfRange here.
func (s *Sparse[T]) Densify() (*Dense[T], error) {
	strides := columnStrides(s.Dims)
	values := make([]T, product(s.Dims))
	for n, index := range s.Coords {
		off := 0
		for k, c := range index {
			if c < 0 || c >= s.Dims[k] {
				return nil, fmt.Errorf("entry %d: index %v: %w", n+1, index, ErrOutOfRange)
			}
			off += c * strides[k]
		}
		values[off] = s.Values[n]

		// Mirror the stored triangle for 2-D symmetric data. The
		// transposed position needs its own bounds check: for a
		// non-square shape its flat offset can land inside the buffer
		// while the position itself does not exist.
		if s.Sym == Symmetric && len(index) == 2 && index[0] != index[1] {
			if index[1] >= s.Dims[0] || index[0] >= s.Dims[1] {
				return nil, fmt.Errorf("entry %d: mirror of index %v: %w", n+1, index, ErrOutOfRange)
			}
			values[index[1]*strides[0]+index[0]*strides[1]] = s.Values[n]
		}
	}

	return &Dense[T]{Dims: append([]int(nil), s.Dims...), Values: values, Sym: s.Sym}, nil
}

// At returns the value at the given 0-based index vector.
// The index must carry exactly len(Dims) components, each within its
// dimension; violations are ErrOutOfRange.
func (d *Dense[T]) At(index ...int) (T, error) {
	var zero T
	if len(index) != len(d.Dims) {
		return zero, fmt.Errorf("index rank %d, want %d: %w", len(index), len(d.Dims), ErrOutOfRange)
	}
	strides := columnStrides(d.Dims)
	off := 0
	for k, c := range index {
		if c < 0 || c >= d.Dims[k] {
			return zero, fmt.Errorf("index %v: %w", index, ErrOutOfRange)
		}
		off += c * strides[k]
	}

	return d.Values[off], nil
}

// columnStrides returns the column-major stride per dimension:
// stride[0] = 1, stride[k] = stride[k-1] * dims[k-1].
func columnStrides(dims []int) []int {
	strides := make([]int, len(dims))
	acc := 1
	for k, d := range dims {
		strides[k] = acc
		acc *= d
	}

	return strides
}
