package http

import (
	"io"
	"strings"
)

// Validate checks that input holds one well-formed HTTP/1.x response: status
// line, headers and a body framed by its Content-Length or chunked encoding.
// Returns nil if valid, or the *ParseError describing the first problem.
func Validate(input string) error {
	return ValidateReader(strings.NewReader(input))
}

// ValidateReader reads one response from r and validates it.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	_, _, err := ReadResponse(r, nil)
	return err
}
