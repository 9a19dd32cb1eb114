// Package mtx: domain types shared by the parsing stages.
// This file intentionally contains ONLY domain-facing types (scalar
// constraint, layout and symmetry enums, parsed matrix values). Errors
// and options live in dedicated files (errors.go, options.go) per the
// global conventions.
package mtx

import "fmt"

// Scalar enumerates the numeric types a Matrix Market body may be
// decoded into. The parser imposes no numeric semantics of its own;
// each token is converted with the type's native base-10 parser.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// SymKind is the symmetry tag carried by the banner.
//
//   - General   — every entry is stored explicitly.
//   - Symmetric — only one triangle is stored; the mirrored entries are
//     implied (and materialized by Sparse.Densify).
//
// Hermitian and skew-symmetric tags are rejected with
// ErrUnsupportedSymmetry.
type SymKind uint8

const (
	// General marks a matrix with all entries stored explicitly.
	General SymKind = iota

	// Symmetric marks a matrix storing a single triangle.
	Symmetric
)

// String implements fmt.Stringer using the banner's own vocabulary.
func (s SymKind) String() string {
	if s == Symmetric {
		return "symmetric"
	}

	return "general"
}

// parseSymKind maps a banner symmetry token onto SymKind.
// Any unrecognized token is ErrUnsupportedSymmetry, wrapped with the
// raw token for diagnostics.
func parseSymKind(tok string) (SymKind, error) {
	switch tok {
	case "general":
		return General, nil
	case "symmetric":
		return Symmetric, nil
	default:
		return General, fmt.Errorf("%q: %w", tok, ErrUnsupportedSymmetry)
	}
}

// Layout is the storage layout declared by the banner's third token.
type Layout uint8

const (
	// Coordinate layout: body lines are "c_1 ... c_NDim value" entries,
	// count declared in the size header.
	Coordinate Layout = iota

	// Array layout: body is product(dims) scalar lines in column-major
	// order.
	Array
)

// String implements fmt.Stringer using the banner's own vocabulary.
func (l Layout) String() string {
	if l == Coordinate {
		return "coordinate"
	}

	return "array"
}

// MtxData is the result of a parse: either *Dense[T] or *Sparse[T].
// Callers branch with a type switch, exactly as they would over the
// two banner layouts.
type MtxData[T Scalar] interface {
	// Shape returns the declared dimensions, one entry per index
	// dimension (NDim of them).
	Shape() []int

	// Symmetry returns the banner's symmetry tag (General for
	// sizes-first files, which carry no banner).
	Symmetry() SymKind

	// mtxData seals the interface to the two in-package variants.
	mtxData()
}

// Dense is a parsed array-layout matrix: product(Dims) values in
// column-major order, in the order they appeared in the file.
type Dense[T Scalar] struct {
	// Dims holds the declared dimensions; len(Dims) == NDim.
	Dims []int

	// Values holds product(Dims) scalars, column-major.
	Values []T

	// Sym is the banner's symmetry tag.
	Sym SymKind
}

// Sparse is a parsed coordinate-layout matrix. Coordinates are 0-based;
// the file's 1-based indices are converted during parsing.
type Sparse[T Scalar] struct {
	// Dims holds the declared dimensions; len(Dims) == NDim.
	Dims []int

	// Coords holds one 0-based index vector per stored entry.
	// len(Coords) == len(Values) == the header's declared nnz.
	Coords [][]int

	// Values holds the stored entries, aligned with Coords.
	Values []T

	// Sym is the banner's symmetry tag.
	Sym SymKind
}

// Shape returns the declared dimensions.
func (d *Dense[T]) Shape() []int { return d.Dims }

// Symmetry returns the banner's symmetry tag.
func (d *Dense[T]) Symmetry() SymKind { return d.Sym }

func (d *Dense[T]) mtxData() {}

// Shape returns the declared dimensions.
func (s *Sparse[T]) Shape() []int { return s.Dims }

// Symmetry returns the banner's symmetry tag.
func (s *Sparse[T]) Symmetry() SymKind { return s.Sym }

// NNZ returns the number of stored entries.
func (s *Sparse[T]) NNZ() int { return len(s.Values) }

func (s *Sparse[T]) mtxData() {}
