package http

import (
	"unicode/utf8"

	"golang.org/x/net/http/httpguts"
)

// inFlightParse is the working state of one response parse. It is created
// fresh by each decode and dropped once the parse completes or fails.
type inFlightParse struct {
	pendingName string
	hasPending  bool
	headers     Headers
	trailers    Headers
	inTrailer   bool
	body        []byte

	status    int
	hasStatus bool
	version   string
	reason    string

	err         error
	complete    bool
	maxBodySize int64
}

func newInFlightParse(maxBodySize int64) *inFlightParse {
	return &inFlightParse{
		headers:     make(Headers, 0, 10),
		maxBodySize: maxBodySize,
	}
}

// addHeaderName validates a header-field token and holds it until its value
// arrives. A name still pending from an earlier field is overwritten.
func (p *inFlightParse) addHeaderName(raw []byte) error {
	if !httpguts.ValidHeaderFieldName(string(raw)) {
		return newParseError(KindMalformedHeader, "illformed header")
	}
	p.pendingName = internHeaderName(raw)
	p.hasPending = true
	return nil
}

// addHeaderValue pairs a header-value token with the pending name. The value
// must be valid UTF-8 and a valid field-value. Duplicate names keep the last
// value. Once the trailer section has begun, fields go to the trailers.
func (p *inFlightParse) addHeaderValue(raw []byte) error {
	if !p.hasPending {
		return newParseError(KindOrphanHeaderValue, "header value without header name")
	}
	if !utf8.Valid(raw) {
		return newParseError(KindMalformedHeader, "illformed header")
	}
	value := string(raw)
	if !httpguts.ValidHeaderFieldValue(value) {
		return newParseError(KindMalformedHeader, "illformed header")
	}

	if p.inTrailer {
		p.trailers.Set(p.pendingName, value)
	} else {
		p.headers.Set(p.pendingName, value)
	}
	p.pendingName = ""
	p.hasPending = false
	return nil
}
