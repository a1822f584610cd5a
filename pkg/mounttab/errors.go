package mounttab

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldCount indicates a line has the wrong number of
	// whitespace-separated fields for its record kind.
	ErrFieldCount = errors.New("wrong number of fields")
	// ErrInvalidNumber indicates a numeric field failed integer parsing.
	ErrInvalidNumber = errors.New("invalid numeric field")
	// ErrEncoding indicates a malformed octal escape sequence in a field.
	ErrEncoding = errors.New("malformed escape sequence")
)

// ParseError reports a malformed mount-table line along with its position
// in the input. It wraps one of the Err* sentinels, reachable through
// errors.Is.
type ParseError struct {
	// Line is the offending line, as read.
	Line string
	// LineNum is the 1-based position of the line in the input.
	LineNum int
	// Err is the underlying failure.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.LineNum, e.Err, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
