// Package mtx: functional configuration for the parser.
// Defaults are documented constants (single source of truth); setters
// record violations instead of panicking, and gatherOptions surfaces
// them as ErrOptionViolation before any input is read.
package mtx

import "fmt"

// Defaults for parser configuration.
const (
	// DefaultNDim is the number of index dimensions per entry.
	// Matrix Market files are two-dimensional unless a caller opts
	// into a higher-rank variant.
	DefaultNDim = 2

	// DefaultFieldCheck leaves the banner's field tag unvalidated: the
	// caller's scalar type, not the file's declaration, decides how
	// tokens are parsed.
	DefaultFieldCheck = false
)

// Option configures parsing via functional arguments. An invalid
// Option (e.g. WithNDim(0)) is recorded internally and surfaced as
// ErrOptionViolation when the parse entry point runs.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option
// and resolve them via gatherOptions.
type Options struct {
	nDim       int  // index dimensions per entry; >= 1
	fieldCheck bool // validate banner field tag against the scalar type

	// first violation recorded during option application
	err error
}

// WithNDim sets the number of index dimensions per entry (default 2).
// Values below 1 are nonsensical and surface as ErrOptionViolation.
func WithNDim(n int) Option {
	return func(o *Options) {
		if n < 1 {
			if o.err == nil {
				o.err = fmt.Errorf("WithNDim(%d): %w", n, ErrOptionViolation)
			}

			return
		}
		o.nDim = n
	}
}

// WithFieldCheck rejects files whose banner field tag cannot feed the
// caller's scalar type: "complex" and "pattern" are always rejected,
// and "real"/"double" is rejected when the scalar is an integer type.
// Off by default; the reference behavior ignores the field tag.
func WithFieldCheck() Option {
	return func(o *Options) { o.fieldCheck = true }
}

// gatherOptions applies user setters on top of the documented defaults
// (last-writer-wins) and reports the first recorded violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := Options{
		nDim:       DefaultNDim,
		fieldCheck: DefaultFieldCheck,
	}
	for _, set := range opts {
		set(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
