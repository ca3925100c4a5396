package tokenizer

import (
	"bytes"
	"fmt"
	"strconv"
)

// DefaultMaxHeaderBytes bounds the status line plus header section when the
// caller does not pick a limit. Trailers get the same allowance.
const DefaultMaxHeaderBytes = 64 << 10

const maxChunkLineBytes = 1024

// Handler receives grammar events from a Lexer.
//
// Fields of a chunked trailer section are reported through OnHeaderField and
// OnHeaderValue after OnTrailersBegin.
//
// Byte slices passed to a handler are only valid for the duration of the call.
// A non-nil error stops the Lexer and is returned unchanged from Execute.
type Handler interface {
	OnMessageBegin() error
	OnStatus(code int, version, reason string) error
	OnHeaderField(name []byte) error
	OnHeaderValue(value []byte) error
	OnHeadersComplete() error
	OnBody(data []byte) error
	OnTrailersBegin() error
	OnMessageComplete() error
}

// ErrorCode classifies lexical errors detected by the Lexer itself.
type ErrorCode int

const (
	ErrStatusLine ErrorCode = iota + 1
	ErrHeaderLine
	ErrContentLength
	ErrChunk
	ErrHeaderTooLarge
	ErrMessageDone
)

// Error is a framing error found while scanning the byte stream.
type Error struct {
	Code   ErrorCode
	Msg    string
	Offset int64 // stream offset where the offending token started
}

func (e *Error) Error() string {
	return fmt.Sprintf("tokenizer: %s (offset %d)", e.Msg, e.Offset)
}

type state int

const (
	stateStart state = iota
	stateStatusLine
	stateHeaderName
	stateHeaderValue
	stateBodyIdentity
	stateChunkSize
	stateChunkData
	stateChunkDataEnd
	stateChunkDataLF
	stateDone
	stateError
)

type fieldKind int

const (
	fieldOther fieldKind = iota
	fieldContentLength
	fieldTransferEncoding
)

var (
	contentLengthName    = []byte("Content-Length")
	transferEncodingName = []byte("Transfer-Encoding")
	chunkedCoding        = []byte("chunked")
)

// Lexer is an incremental HTTP/1.x response tokenizer. It keeps its cursor
// state between Execute calls, so a message may be split at any byte.
//
// Header names and values are buffered until complete; body bytes are
// reported as they arrive. Body framing follows the status code,
// Transfer-Encoding and Content-Length. A response with neither header has
// an empty body.
//
// A Lexer handles one message and is not safe for concurrent use.
type Lexer struct {
	state          state
	maxHeaderBytes int
	headerBytes    int
	line           []byte
	offset         int64
	err            error

	statusCode    int
	field         fieldKind
	contentLength int64
	chunked       bool
	inTrailer     bool
	remaining     int64
}

// NewLexer creates a Lexer for one response. maxHeaderBytes <= 0 selects
// DefaultMaxHeaderBytes.
func NewLexer(maxHeaderBytes int) *Lexer {
	if maxHeaderBytes <= 0 {
		maxHeaderBytes = DefaultMaxHeaderBytes
	}
	return &Lexer{
		maxHeaderBytes: maxHeaderBytes,
		line:           make([]byte, 0, 128),
		contentLength:  -1,
	}
}

// Done reports whether the message-complete event has been emitted.
func (l *Lexer) Done() bool {
	return l.state == stateDone
}

// Offset returns the number of stream bytes consumed so far.
func (l *Lexer) Offset() int64 {
	return l.offset
}

// Execute feeds data to the lexer, emitting events to h. It returns the number
// of bytes consumed. Bytes after the end of the message are not consumed.
// The first error, from the lexer or from h, is sticky.
func (l *Lexer) Execute(h Handler, data []byte) (int, error) {
	switch l.state {
	case stateError:
		return 0, l.err
	case stateDone:
		if len(data) > 0 {
			return 0, l.errorf(ErrMessageDone, "data after message completion")
		}
		return 0, nil
	}

	i := 0
	for i < len(data) && l.state != stateDone {
		n, err := l.step(h, data[i:])
		i += n
		l.offset += int64(n)
		if err != nil {
			l.state = stateError
			l.err = err
			return i, err
		}
	}
	return i, nil
}

func (l *Lexer) step(h Handler, data []byte) (int, error) {
	switch l.state {
	case stateStart:
		l.state = stateStatusLine
		return 0, h.OnMessageBegin()

	case stateStatusLine:
		n, complete, err := l.readLine(data, true)
		if err != nil || !complete {
			return n, err
		}
		return n, l.finishStatusLine(h)

	case stateHeaderName:
		return l.stepHeaderName(h, data)

	case stateHeaderValue:
		n, complete, err := l.readLine(data, true)
		if err != nil || !complete {
			return n, err
		}
		return n, l.finishHeaderValue(h)

	case stateBodyIdentity:
		n := l.takeBody(data)
		if err := h.OnBody(data[:n]); err != nil {
			return n, err
		}
		if l.remaining == 0 {
			return n, l.complete(h)
		}
		return n, nil

	case stateChunkSize:
		n, complete, err := l.readLine(data, false)
		if err != nil || !complete {
			return n, err
		}
		size, perr := parseChunkSizeLine(trimCR(l.line))
		l.line = l.line[:0]
		if perr != nil {
			return n, l.errorf(ErrChunk, "invalid chunk size: %v", perr)
		}
		if size == 0 {
			l.inTrailer = true
			l.headerBytes = 0
			l.state = stateHeaderName
			return n, h.OnTrailersBegin()
		}
		l.remaining = size
		l.state = stateChunkData
		return n, nil

	case stateChunkData:
		n := l.takeBody(data)
		if err := h.OnBody(data[:n]); err != nil {
			return n, err
		}
		if l.remaining == 0 {
			l.state = stateChunkDataEnd
		}
		return n, nil

	case stateChunkDataEnd:
		switch data[0] {
		case '\r':
			l.state = stateChunkDataLF
		case '\n':
			l.state = stateChunkSize
		default:
			return 0, l.errorf(ErrChunk, "expected CRLF after chunk data, got %q", data[0])
		}
		return 1, nil

	case stateChunkDataLF:
		if data[0] != '\n' {
			return 0, l.errorf(ErrChunk, "expected LF after chunk data, got %q", data[0])
		}
		l.state = stateChunkSize
		return 1, nil
	}

	return 0, fmt.Errorf("tokenizer: unknown state %d", l.state)
}

// readLine appends bytes up to and including the next LF to the line buffer
// (without the LF). complete reports whether the LF was found.
func (l *Lexer) readLine(data []byte, header bool) (n int, complete bool, err error) {
	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		n = len(data)
		l.line = append(l.line, data...)
	} else {
		n = idx + 1
		l.line = append(l.line, data[:idx]...)
		complete = true
	}

	if header {
		l.headerBytes += n
		if l.headerBytes > l.maxHeaderBytes {
			return n, false, l.errorf(ErrHeaderTooLarge, "header section exceeds %d bytes", l.maxHeaderBytes)
		}
	} else if len(l.line) > maxChunkLineBytes {
		return n, false, l.errorf(ErrChunk, "chunk size line exceeds %d bytes", maxChunkLineBytes)
	}
	return n, complete, nil
}

func (l *Lexer) finishStatusLine(h Handler) error {
	line := trimCR(l.line)
	if len(line) == 0 {
		// Stray CRLF before the status line.
		l.line = l.line[:0]
		return nil
	}

	version, code, reason, ok := SplitStatusLine(string(line))
	l.line = l.line[:0]
	if !ok {
		return l.errorf(ErrStatusLine, "malformed status line")
	}

	l.statusCode = code
	l.state = stateHeaderName
	return h.OnStatus(code, version, reason)
}

func (l *Lexer) stepHeaderName(h Handler, data []byte) (int, error) {
	if len(l.line) == 0 && (data[0] == ' ' || data[0] == '\t') {
		return 0, l.errorf(ErrHeaderLine, "obsolete line folding")
	}

	idx := bytes.IndexAny(data, ":\n")
	n := len(data)
	if idx >= 0 {
		n = idx + 1
		l.line = append(l.line, data[:idx]...)
	} else {
		l.line = append(l.line, data...)
	}

	l.headerBytes += n
	if l.headerBytes > l.maxHeaderBytes {
		return n, l.errorf(ErrHeaderTooLarge, "header section exceeds %d bytes", l.maxHeaderBytes)
	}
	if idx < 0 {
		return n, nil
	}

	if data[idx] == '\n' {
		if len(trimCR(l.line)) != 0 {
			return n, l.errorf(ErrHeaderLine, "header line without colon")
		}
		l.line = l.line[:0]
		return n, l.endOfHeaderSection(h)
	}

	l.field = classifyField(l.line)
	err := h.OnHeaderField(l.line)
	l.line = l.line[:0]
	l.state = stateHeaderValue
	return n, err
}

func (l *Lexer) finishHeaderValue(h Handler) error {
	value := trimOWS(trimCR(l.line))
	defer func() { l.line = l.line[:0] }()

	l.state = stateHeaderName
	if err := h.OnHeaderValue(value); err != nil {
		return err
	}
	if l.inTrailer {
		return nil
	}

	switch l.field {
	case fieldContentLength:
		cl, err := strconv.ParseInt(string(value), 10, 64)
		if err != nil || cl < 0 {
			return l.errorf(ErrContentLength, "invalid Content-Length %q", value)
		}
		if l.contentLength >= 0 && cl != l.contentLength {
			return l.errorf(ErrContentLength, "conflicting Content-Length %d and %d", l.contentLength, cl)
		}
		l.contentLength = cl
	case fieldTransferEncoding:
		l.chunked = lastCodingIsChunked(value)
	}
	return nil
}

func (l *Lexer) endOfHeaderSection(h Handler) error {
	if l.inTrailer {
		return l.complete(h)
	}
	if err := h.OnHeadersComplete(); err != nil {
		return err
	}

	switch {
	case l.statusCode/100 == 1 || l.statusCode == 204 || l.statusCode == 304:
		return l.complete(h)
	case l.chunked:
		l.state = stateChunkSize
	case l.contentLength > 0:
		l.remaining = l.contentLength
		l.state = stateBodyIdentity
	default:
		return l.complete(h)
	}
	return nil
}

func (l *Lexer) complete(h Handler) error {
	l.state = stateDone
	return h.OnMessageComplete()
}

func (l *Lexer) takeBody(data []byte) int {
	n := int64(len(data))
	if n > l.remaining {
		n = l.remaining
	}
	l.remaining -= n
	return int(n)
}

func (l *Lexer) errorf(code ErrorCode, format string, args ...interface{}) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Offset: l.offset}
}

func classifyField(name []byte) fieldKind {
	switch {
	case bytes.EqualFold(name, contentLengthName):
		return fieldContentLength
	case bytes.EqualFold(name, transferEncodingName):
		return fieldTransferEncoding
	}
	return fieldOther
}

// lastCodingIsChunked reports whether chunked is the final transfer coding.
func lastCodingIsChunked(value []byte) bool {
	if comma := bytes.LastIndexByte(value, ','); comma >= 0 {
		value = value[comma+1:]
	}
	return bytes.EqualFold(trimOWS(value), chunkedCoding)
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

// trimOWS trims optional whitespace (SP and HTAB) from both ends of b.
func trimOWS(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}
