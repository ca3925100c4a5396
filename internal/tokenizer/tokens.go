// Package tokenizer provides incremental HTTP/1.x response tokenization.
//
// The Lexer consumes bytes in arbitrarily sized chunks and reports grammar
// events to a Handler. Status lines are split with Shape's tokenizer framework.
package tokenizer

// Token type constants for the HTTP/1.x status line.
const (
	TokenVersion    = "Version"    // HTTP/1.0, HTTP/1.1
	TokenStatusCode = "StatusCode" // 200, 404, etc.
	TokenReason     = "Reason"     // OK, Not Found, etc.
	TokenSP         = "SP"         // Space separator in status-line
	TokenCRLF       = "CRLF"       // Line ending \r\n or \n
)

// Event names a grammar event reported to a Handler. They are used in
// logging and test recorders; the Handler interface has one method per event.
type Event string

const (
	EventMessageBegin    Event = "message-begin"
	EventStatus          Event = "status"
	EventHeaderField     Event = "header-field"
	EventHeaderValue     Event = "header-value"
	EventHeadersComplete Event = "headers-complete"
	EventBody            Event = "body"
	EventTrailersBegin   Event = "trailers-begin"
	EventMessageComplete Event = "message-complete"
)
