// Package mtx: buffered line source shared by all parsing stages.
// Each parse owns one lineScanner; stages pull lines on demand and the
// scanner tracks the 1-based line number for error context.
package mtx

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// commentMarker opens a comment line; the banner itself begins with
// two of them.
const commentMarker = '%'

// lineScanner wraps a bufio.Scanner with trimming and line accounting.
type lineScanner struct {
	sc   *bufio.Scanner
	line int // number of the last line handed out, 1-based
}

// newLineScanner builds a lineScanner over r with bufio's default
// buffering.
func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r)}
}

// next returns the next raw line, trimmed of surrounding whitespace.
// ok is false once the input is exhausted; a read failure is reported
// as ErrIO wrapping the underlying error.
func (ls *lineScanner) next() (text string, ok bool, err error) {
	if !ls.sc.Scan() {
		if scanErr := ls.sc.Err(); scanErr != nil {
			return "", false, fmt.Errorf("%w: %w", ErrIO, scanErr)
		}

		return "", false, nil
	}
	ls.line++

	return strings.TrimSpace(ls.sc.Text()), true, nil
}

// nextRecord returns the next substantive line: comment lines (leading
// '%') and blank lines are discarded. Exhausting the input before a
// substantive line appears is ErrUnexpectedEOF.
func (ls *lineScanner) nextRecord() (string, error) {
	for {
		text, ok, err := ls.next()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrUnexpectedEOF
		}
		if text == "" || text[0] == commentMarker {
			continue
		}

		return text, nil
	}
}
