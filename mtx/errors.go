// Package mtx: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// parser. All stages MUST return these sentinels and tests MUST check
// them via errors.Is. Context (line number, offending token) is added by
// wrapping with fmt.Errorf("...: %w", ErrX) at the reporting site.
package mtx

import "errors"

var (
	// ErrIO wraps a read failure from the underlying source.
	ErrIO = errors.New("mtx: read failure")

	// ErrUnexpectedEOF is returned when the input ends before a required
	// line was available: an empty or comment-only file, or a body with
	// fewer lines than the header declared.
	ErrUnexpectedEOF = errors.New("mtx: unexpected end of input")

	// ErrBannerTruncated is returned when the banner line is missing or
	// carries fewer than its five whitespace tokens.
	ErrBannerTruncated = errors.New("mtx: truncated banner")

	// ErrHeaderTruncated is returned when the size header lacks the
	// non-zero count required by coordinate layout, or declares a zero
	// dimension (dimensions must be strictly positive).
	ErrHeaderTruncated = errors.New("mtx: truncated size header")

	// ErrLineTruncated is returned when a coordinate-body line carries
	// fewer than NDim+1 tokens.
	ErrLineTruncated = errors.New("mtx: truncated entry line")

	// ErrUnsupportedSymmetry is returned for any symmetry tag other than
	// "general" or "symmetric" (hermitian and skew-symmetric are
	// unsupported by design).
	ErrUnsupportedSymmetry = errors.New("mtx: unsupported symmetry kind")

	// ErrUnsupportedField is returned under WithFieldCheck when the
	// banner's field tag cannot feed the caller's scalar type
	// ("complex" and "pattern" always, "real" into an integer scalar).
	ErrUnsupportedField = errors.New("mtx: unsupported field kind")

	// ErrUnsupportedLayout is reserved for layout tags a future format
	// revision may add; no current parser path triggers it.
	ErrUnsupportedLayout = errors.New("mtx: unsupported layout")

	// ErrBadDimension is returned when a size-header token is not an
	// unsigned integer.
	ErrBadDimension = errors.New("mtx: malformed dimension token")

	// ErrBadCoordinate is returned when a coordinate token is not an
	// integer, is negative, or is zero (coordinates are 1-based in the
	// file; zero would underflow the 0-based conversion).
	ErrBadCoordinate = errors.New("mtx: malformed coordinate token")

	// ErrBadValue is returned when a value token fails the scalar
	// type's parser.
	ErrBadValue = errors.New("mtx: malformed value token")

	// ErrOutOfRange is returned by Dense.At and Sparse.Densify when an
	// index falls outside the declared dimensions.
	ErrOutOfRange = errors.New("mtx: index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// (e.g. WithNDim with n < 1).
	ErrOptionViolation = errors.New("mtx: invalid option supplied")
)
