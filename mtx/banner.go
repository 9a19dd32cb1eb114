package mtx

import (
	"fmt"
	"strings"
)

// bannerPrefix is the mandatory first token of a banner-led file.
const bannerPrefix = "%%MatrixMarket"

// banner token positions. Tokens 0-1 (prefix, object) carry no
// information the parser acts on; layout, field and symmetry follow.
const (
	bannerTokLayout   = 2
	bannerTokField    = 3
	bannerTokSymmetry = 4
	bannerTokCount    = 5
)

// banner field tags recognized by the opt-in field check.
const (
	fieldReal    = "real"
	fieldDouble  = "double"
	fieldInteger = "integer"
	fieldComplex = "complex"
	fieldPattern = "pattern"
)

// isBanner reports whether line opens with the Matrix Market banner
// prefix, case-insensitively.
func isBanner(line string) bool {
	return len(line) >= len(bannerPrefix) &&
		strings.EqualFold(line[:len(bannerPrefix)], bannerPrefix)
}

// parseBanner classifies the banner line.
// The layout token selects Coordinate ("coordinate") or Array (any
// other value, matching the reference behavior); the field token is
// ignored unless checkField is set; the symmetry token must parse via
// parseSymKind. Fewer than five tokens is ErrBannerTruncated.
func parseBanner(line string, checkField, scalarFloat bool) (Layout, SymKind, error) {
	toks := strings.Fields(line)
	if len(toks) < bannerTokCount {
		return Array, General, fmt.Errorf("%d token(s): %w", len(toks), ErrBannerTruncated)
	}

	layout := Array
	if strings.ToLower(toks[bannerTokLayout]) == "coordinate" {
		layout = Coordinate
	}

	if checkField {
		if err := checkFieldTag(strings.ToLower(toks[bannerTokField]), scalarFloat); err != nil {
			return layout, General, err
		}
	}

	sym, err := parseSymKind(strings.ToLower(toks[bannerTokSymmetry]))
	if err != nil {
		return layout, General, err
	}

	return layout, sym, nil
}

// checkFieldTag enforces compatibility between the banner's declared
// field and the caller's scalar type. Integer files may feed float
// scalars (every integer token parses as a float); the reverse does
// not hold.
func checkFieldTag(field string, scalarFloat bool) error {
	switch field {
	case fieldComplex, fieldPattern:
		return fmt.Errorf("%q: %w", field, ErrUnsupportedField)
	case fieldReal, fieldDouble:
		if !scalarFloat {
			return fmt.Errorf("%q into integer scalar: %w", field, ErrUnsupportedField)
		}
	case fieldInteger:
		// compatible with every supported scalar
	}

	return nil
}
