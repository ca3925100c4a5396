package http

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/shapestone/shape-httpresp/internal/tokenizer"
	"go.uber.org/zap"
)

// Decoder reads HTTP responses from an input stream in HTTP/1.x wire format.
// It reuses one fixed-size receive buffer for every read.
// A single Decoder is not safe for concurrent use; create one per connection.
type Decoder struct {
	r      io.Reader
	cfg    Config
	buf    []byte
	logger *zap.Logger
}

// NewDecoder returns a new decoder that reads from r. A nil cfg selects the
// defaults.
func NewDecoder(r io.Reader, cfg *Config) *Decoder {
	c := cfg.withDefaults()
	return &Decoder{
		r:      r,
		cfg:    c,
		buf:    make([]byte, c.BufferSize),
		logger: c.Logger.Named("decoder"),
	}
}

// ReadResponse reads one response from r. It returns the response together
// with the connection reuse decision, or the first error encountered.
//
// Any error leaves the stream framing unknown: the connection must not be
// reused. A read of zero bytes or io.EOF before the message is complete is
// reported as ErrUnexpectedEOF; other read failures as ErrLostConnection.
func ReadResponse(r io.Reader, cfg *Config) (*Response, ConnectionState, error) {
	return NewDecoder(r, cfg).DecodeResponse()
}

// DecodeResponse reads the next HTTP response from the stream.
// Bytes received after the end of the response are discarded.
func (dec *Decoder) DecodeResponse() (*Response, ConnectionState, error) {
	log := dec.logger
	if log.Core().Enabled(zap.DebugLevel) {
		log = log.With(zap.String("parse_id", uuid.NewString()))
	}
	log.Debug("starting to read response")

	resp, state, err := dec.decode(log)
	if err != nil {
		log.Debug("failed to read response", zap.Error(err))
		dec.cfg.Metrics.observeError(err)
		return nil, Close, err
	}

	log.Debug("read response",
		zap.Int("status", resp.StatusCode),
		zap.Int("body_bytes", len(resp.Body)),
		zap.Int("headers", len(resp.Headers)),
		zap.Int("trailers", len(resp.Trailers)),
		zap.Stringer("connection", state),
	)
	dec.cfg.Metrics.observeResponse(resp, state)
	return resp, state, nil
}

func (dec *Decoder) decode(log *zap.Logger) (*Response, ConnectionState, error) {
	p := newInFlightParse(dec.cfg.MaxBodySize)
	h := &responseHandler{p: p}
	lex := tokenizer.NewLexer(dec.cfg.MaxHeaderBytes)

	for {
		n, rerr := dec.r.Read(dec.buf)
		if n > 0 {
			consumed, err := lex.Execute(h, dec.buf[:n])
			if err != nil {
				return nil, Close, toParseError(err, lex.Offset())
			}
			if p.err != nil {
				return nil, Close, toParseError(p.err, lex.Offset())
			}
			if p.complete {
				if extra := n - consumed; extra > 0 {
					// Includes any body sent without Content-Length or chunking.
					log.Debug("discarding bytes after end of response", zap.Int("discarded_bytes", extra))
				}
				resp, err := p.toResponse()
				if err != nil {
					return nil, Close, err
				}
				return resp, resp.ConnectionState(), nil
			}
		}

		switch {
		case rerr == nil && n > 0:
			continue
		case rerr == nil || errors.Is(rerr, io.EOF):
			// TODO: accept close-delimited bodies once HTTP/1.0 peers need it.
			return nil, Close, newParseErrorAtPos(KindUnexpectedEOF, "unexpected end of stream", lex.Offset())
		default:
			return nil, Close, &ParseError{
				Kind:     KindLostConnection,
				Message:  "lost connection while reading",
				Position: lex.Offset(),
				Err:      rerr,
			}
		}
	}
}

// toParseError maps lexer and handler errors to a *ParseError positioned in
// the stream.
func toParseError(err error, offset int64) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		if pe.Position == 0 {
			pe.Position = offset
		}
		return pe
	}

	var te *tokenizer.Error
	if !errors.As(err, &te) {
		return &ParseError{Kind: KindIllformedMessage, Message: "illformed message", Position: offset, Err: err}
	}

	kind := KindIllformedMessage
	switch te.Code {
	case tokenizer.ErrStatusLine:
		kind = KindMalformedStatus
	case tokenizer.ErrHeaderLine:
		kind = KindMalformedHeader
	case tokenizer.ErrContentLength, tokenizer.ErrChunk:
		kind = KindMalformedBody
	case tokenizer.ErrHeaderTooLarge:
		kind = KindHeaderTooLarge
	}
	return newParseErrorAtPos(kind, te.Msg, te.Offset)
}
