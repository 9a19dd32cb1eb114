package mtx

import (
	"fmt"
	"strconv"
)

// parseScalar converts one body token with the scalar type's native
// base-10 parser. Failures are ErrBadValue wrapping the raw token.
func parseScalar[T Scalar](tok string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *float64:
		*p, err = strconv.ParseFloat(tok, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(tok, 32)
		*p = float32(f)
	case *int:
		var i int64
		i, err = strconv.ParseInt(tok, 10, 0)
		*p = int(i)
	case *int8:
		var i int64
		i, err = strconv.ParseInt(tok, 10, 8)
		*p = int8(i)
	case *int16:
		var i int64
		i, err = strconv.ParseInt(tok, 10, 16)
		*p = int16(i)
	case *int32:
		var i int64
		i, err = strconv.ParseInt(tok, 10, 32)
		*p = int32(i)
	case *int64:
		*p, err = strconv.ParseInt(tok, 10, 64)
	case *uint:
		var u uint64
		u, err = strconv.ParseUint(tok, 10, 0)
		*p = uint(u)
	case *uint8:
		var u uint64
		u, err = strconv.ParseUint(tok, 10, 8)
		*p = uint8(u)
	case *uint16:
		var u uint64
		u, err = strconv.ParseUint(tok, 10, 16)
		*p = uint16(u)
	case *uint32:
		var u uint64
		u, err = strconv.ParseUint(tok, 10, 32)
		*p = uint32(u)
	case *uint64:
		*p, err = strconv.ParseUint(tok, 10, 64)
	}
	if err != nil {
		return v, fmt.Errorf("%q: %w", tok, ErrBadValue)
	}

	return v, nil
}

// scalarIsFloat reports whether T is a floating-point type; used by the
// opt-in banner field check.
func scalarIsFloat[T Scalar]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}
