package mtx_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mtxio/mtx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sparseFixture parses a small symmetric coordinate matrix used across
// the densification tests.
func sparseFixture(t *testing.T) *mtx.Sparse[int] {
	t.Helper()
	const src = "%%MatrixMarket matrix coordinate integer symmetric\n" +
		"3 3 3\n1 1 1\n3 1 2\n3 3 4\n"
	data, err := mtx.FromReader[int](strings.NewReader(src))
	require.NoError(t, err)

	return data.(*mtx.Sparse[int])
}

// TestSparse_Densify verifies column-major placement and the mirroring
// of the stored triangle for symmetric data.
func TestSparse_Densify(t *testing.T) {
	d, err := sparseFixture(t).Densify()
	require.NoError(t, err)

	assert.Equal(t, []int{3, 3}, d.Dims)
	// Column-major: offset = row + col*3. Entry (2,0)=2 mirrors to (0,2).
	assert.Equal(t, []int{
		1, 0, 2,
		0, 0, 0,
		2, 0, 4,
	}, d.Values)
	assert.Equal(t, mtx.Symmetric, d.Sym)
}

// TestSparse_Densify_General verifies that general data is not
// mirrored.
func TestSparse_Densify_General(t *testing.T) {
	const src = "%%MatrixMarket matrix coordinate integer general\n" +
		"2 2 1\n2 1 5\n"
	data, err := mtx.FromReader[int](strings.NewReader(src))
	require.NoError(t, err)

	d, err := data.(*mtx.Sparse[int]).Densify()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 0, 0}, d.Values, "no mirror for general symmetry")
}

// TestSparse_Densify_OutOfRange verifies that entries beyond the
// declared dimensions (accepted by the parser) are rejected here.
func TestSparse_Densify_OutOfRange(t *testing.T) {
	const src = "%%MatrixMarket matrix coordinate integer general\n" +
		"2 2 1\n3 1 5\n"
	data, err := mtx.FromReader[int](strings.NewReader(src))
	require.NoError(t, err, "the parser does not bounds-check coordinates")

	_, err = data.(*mtx.Sparse[int]).Densify()
	assert.ErrorIs(t, err, mtx.ErrOutOfRange)
}

// TestSparse_Densify_NonSquareMirror verifies that a symmetric entry
// whose transposed position falls outside a non-square shape is
// rejected instead of landing on an unrelated cell.
func TestSparse_Densify_NonSquareMirror(t *testing.T) {
	const src = "%%MatrixMarket matrix coordinate integer symmetric\n" +
		"2 3 1\n1 3 9\n"
	data, err := mtx.FromReader[int](strings.NewReader(src))
	require.NoError(t, err)

	// Entry (0,2) is in range, but its mirror (2,0) is not in a 2x3
	// matrix; the flat offset of the mirror would alias cell (0,1).
	_, err = data.(*mtx.Sparse[int]).Densify()
	assert.ErrorIs(t, err, mtx.ErrOutOfRange)
}

// TestDense_At covers shape-checked reads on densified data.
func TestDense_At(t *testing.T) {
	d, err := sparseFixture(t).Densify()
	require.NoError(t, err)

	v, err := d.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "mirrored entry")

	v, err = d.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "stored entry")

	_, err = d.At(3, 0)
	assert.ErrorIs(t, err, mtx.ErrOutOfRange)
	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, mtx.ErrOutOfRange)
	_, err = d.At(1)
	assert.ErrorIs(t, err, mtx.ErrOutOfRange, "index rank must match dims")
}
