// Package mtx: public parse entry points.
// Thin facade over the staged pipeline: banner → comments → size
// header → body. Every stage failure aborts the parse; no partial
// matrix is ever returned.
package mtx

import (
	"fmt"
	"io"
	"os"
)

// FromReader parses a banner-led Matrix Market stream into a Dense or
// Sparse value, selected by the banner's layout token.
// The parse is fully synchronous: it runs to the first error or to
// completion within the call, and the reader is left positioned after
// the last body line read.
func FromReader[T Scalar](r io.Reader, opts ...Option) (MtxData[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	ls := newLineScanner(r)
	layout, sym, err := readBanner(ls, o, scalarIsFloat[T]())
	if err != nil {
		return nil, err
	}

	line, err := ls.nextRecord()
	if err != nil {
		return nil, fmt.Errorf("size header: %w", err)
	}
	dims, nnz, err := parseHeader(line, o.nDim, layout == Coordinate)
	if err != nil {
		return nil, fmt.Errorf("size header (line %d): %w", ls.line, err)
	}

	if layout == Coordinate {
		coords, values, err := parseSparseBody[T](ls, o.nDim, nnz)
		if err != nil {
			return nil, err
		}

		return &Sparse[T]{Dims: dims, Coords: coords, Values: values, Sym: sym}, nil
	}

	values, err := parseDenseBody[T](ls, product(dims))
	if err != nil {
		return nil, err
	}

	return &Dense[T]{Dims: dims, Values: values, Sym: sym}, nil
}

// FromFile opens path, parses it with FromReader, and releases the
// file handle on every exit path.
func FromFile[T Scalar](path string, opts ...Option) (MtxData[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return FromReader[T](f, opts...)
}

// DenseFromReader parses the bannerless "sizes-first" dense variant:
// the first substantive line is the size header, followed by
// product(dims) value lines. Comment lines anywhere (including a
// banner, which reads as a comment) are skipped; symmetry is General.
func DenseFromReader[T Scalar](r io.Reader, opts ...Option) (*Dense[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	ls := newLineScanner(r)
	line, err := ls.nextRecord()
	if err != nil {
		return nil, fmt.Errorf("size header: %w", err)
	}
	dims, _, err := parseHeader(line, o.nDim, false)
	if err != nil {
		return nil, fmt.Errorf("size header (line %d): %w", ls.line, err)
	}

	values, err := parseDenseBody[T](ls, product(dims))
	if err != nil {
		return nil, err
	}

	return &Dense[T]{Dims: dims, Values: values, Sym: General}, nil
}

// DenseFromFile opens path and parses it with DenseFromReader.
func DenseFromFile[T Scalar](path string, opts ...Option) (*Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return DenseFromReader[T](f, opts...)
}

// SparseFromReader parses the bannerless "sizes-first" sparse variant:
// the first substantive line is "dim_1 ... dim_n nnz", followed by nnz
// entry lines. Symmetry is General.
func SparseFromReader[T Scalar](r io.Reader, opts ...Option) (*Sparse[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	ls := newLineScanner(r)
	line, err := ls.nextRecord()
	if err != nil {
		return nil, fmt.Errorf("size header: %w", err)
	}
	dims, nnz, err := parseHeader(line, o.nDim, true)
	if err != nil {
		return nil, fmt.Errorf("size header (line %d): %w", ls.line, err)
	}

	coords, values, err := parseSparseBody[T](ls, o.nDim, nnz)
	if err != nil {
		return nil, err
	}

	return &Sparse[T]{Dims: dims, Coords: coords, Values: values, Sym: General}, nil
}

// SparseFromFile opens path and parses it with SparseFromReader.
func SparseFromFile[T Scalar](path string, opts ...Option) (*Sparse[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return SparseFromReader[T](f, opts...)
}

// readBanner advances ls to the banner line and classifies it.
// Blank lines and plain comment lines before the banner are skipped;
// a substantive line appearing first means the stream carries no
// banner, which is ErrBannerTruncated. Exhausted input is
// ErrUnexpectedEOF.
func readBanner(ls *lineScanner, o Options, scalarFloat bool) (Layout, SymKind, error) {
	for {
		text, ok, err := ls.next()
		if err != nil {
			return Array, General, err
		}
		if !ok {
			return Array, General, fmt.Errorf("banner: %w", ErrUnexpectedEOF)
		}
		if text == "" {
			continue
		}
		if isBanner(text) {
			layout, sym, err := parseBanner(text, o.fieldCheck, scalarFloat)
			if err != nil {
				return layout, sym, fmt.Errorf("banner (line %d): %w", ls.line, err)
			}

			return layout, sym, nil
		}
		if text[0] == commentMarker {
			continue
		}

		return Array, General, fmt.Errorf("line %d: missing banner: %w", ls.line, ErrBannerTruncated)
	}
}
