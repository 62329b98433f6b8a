package parser

import (
	"errors"
	"fmt"

	"volumetrico/internal/domain"
)

// SyntaxError indicates the report body is not well-formed JSON.
type SyntaxError struct {
	Err    error
	Offset int64
	Line   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at line %d (offset %d): %v", e.Line, e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is reports SyntaxError as domain.ErrInvalidJSON so callers can match the sentinel.
func (e *SyntaxError) Is(target error) bool {
	return target == domain.ErrInvalidJSON
}

// NewSyntaxError creates a SyntaxError positioned at offset within body.
// An offset past the end of body is clamped.
func NewSyntaxError(body []byte, offset int64, err error) *SyntaxError {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(body)) {
		offset = int64(len(body))
	}
	return &SyntaxError{Err: err, Offset: offset, Line: LineAt(body, offset)}
}

// LineAt returns the 1-based line number holding byte offset in body.
func LineAt(body []byte, offset int64) int {
	line := 1
	for i := int64(0); i < offset && i < int64(len(body)); i++ {
		if body[i] == '\n' {
			line++
		}
	}
	return line
}

// IsSyntaxError reports whether err carries a SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
