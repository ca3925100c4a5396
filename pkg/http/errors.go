package http

import "fmt"

// Kind classifies a ParseError.
type Kind int

const (
	KindMalformedStatus   Kind = iota + 1 // bad status line or unrecognized status code
	KindMalformedHeader                   // bad header name, value, or header line
	KindOrphanHeaderValue                 // header value with no preceding name
	KindIllformedMessage                  // message completed without a status code
	KindLostConnection                    // transport read failure
	KindUnexpectedEOF                     // stream closed before message completion
	KindMalformedBody                     // bad Content-Length or chunk framing
	KindHeaderTooLarge
	KindBodyTooLarge
)

var kindNames = map[Kind]string{
	KindMalformedStatus:   "malformed_status",
	KindMalformedHeader:   "malformed_header",
	KindOrphanHeaderValue: "orphan_header_value",
	KindIllformedMessage:  "illformed_message",
	KindLostConnection:    "lost_connection",
	KindUnexpectedEOF:     "unexpected_eof",
	KindMalformedBody:     "malformed_body",
	KindHeaderTooLarge:    "header_too_large",
	KindBodyTooLarge:      "body_too_large",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors for errors.Is. A *ParseError matches a sentinel of the same Kind.
var (
	ErrMalformedStatus   = &ParseError{Kind: KindMalformedStatus, Message: "illformed response"}
	ErrMalformedHeader   = &ParseError{Kind: KindMalformedHeader, Message: "illformed header"}
	ErrOrphanHeaderValue = &ParseError{Kind: KindOrphanHeaderValue, Message: "header value without header name"}
	ErrIllformedMessage  = &ParseError{Kind: KindIllformedMessage, Message: "illformed header"}
	ErrLostConnection    = &ParseError{Kind: KindLostConnection, Message: "lost connection while reading"}
	ErrUnexpectedEOF     = &ParseError{Kind: KindUnexpectedEOF, Message: "unexpected end of stream"}
	ErrMalformedBody     = &ParseError{Kind: KindMalformedBody, Message: "illformed body"}
	ErrHeaderTooLarge    = &ParseError{Kind: KindHeaderTooLarge, Message: "header section too large"}
	ErrBodyTooLarge      = &ParseError{Kind: KindBodyTooLarge, Message: "body too large"}
)

// ParseError represents an error that occurred while decoding a response.
// Only the first error of a parse is ever reported.
type ParseError struct {
	Kind     Kind
	Message  string // human-readable error message
	Position int64  // stream byte offset where the error was detected (0 if unknown)
	Err      error  // underlying cause, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.Position > 0 {
		msg = fmt.Sprintf("parse error at position %d: %s", e.Position, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("http: %s: %v", msg, e.Err)
	}
	return fmt.Sprintf("http: %s", msg)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *ParseError of the same Kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func newParseError(kind Kind, msg string) *ParseError {
	return &ParseError{Kind: kind, Message: msg}
}

func newParseErrorAtPos(kind Kind, msg string, pos int64) *ParseError {
	return &ParseError{Kind: kind, Message: msg, Position: pos}
}
