// Package http decodes HTTP/1.x responses incrementally from a byte stream.
//
// A response is read from any io.Reader (typically a transport connection)
// in fixed-size chunks; message boundaries may fall anywhere in the stream.
// The result is a fully materialized Response plus a ConnectionState telling
// the caller whether the connection may be reused.
//
// # Thread Safety
//
// ReadResponse is safe for concurrent use on distinct readers: each call owns
// its parse state. A Decoder is not safe for concurrent use.
//
// # APIs
//
//   - ReadResponse / NewDecoder - incremental decoding from an io.Reader
//   - Unmarshal / UnmarshalResponse / Validate - the same decoder over an in-memory message
//   - Marshal / NewEncoder - HTTP/1.1 wire-format encoding of a Response
//   - Parse / ResponseToNode / NodeToResponse / Render - AST export via shape-core
package http

import (
	"strconv"
	"strings"
)

// Response represents a decoded HTTP/1.x response message.
type Response struct {
	Version    string  // "HTTP/1.1"
	StatusCode int     // 200, 404, etc.
	Reason     string  // "OK", "Not Found"
	Headers    Headers // one entry per case-insensitive name
	Body       []byte  // raw body, zero-length if none

	// Trailers holds the trailer section of a chunked body, nil if there was
	// none. Trailer fields never replace header fields.
	Trailers Headers
}

// Header represents a single HTTP header key-value pair.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered list of HTTP headers.
// Header names are case-insensitive (RFC 9110) but the original case is kept.
type Headers []Header

// Get returns the first header value for the given key (case-insensitive).
// Returns empty string if not found.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Lookup is like Get but also reports whether the header is present.
func (h Headers) Lookup(key string) (string, bool) {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value, true
		}
	}
	return "", false
}

// Values returns all header values for the given key (case-insensitive).
func (h Headers) Values(key string) []string {
	var vals []string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// Set replaces the first header with the given key (case-insensitive) or appends if not found.
func (h *Headers) Set(key, value string) {
	for i, hdr := range *h {
		if strings.EqualFold(hdr.Key, key) {
			(*h)[i].Value = value
			// Remove any subsequent headers with same key
			j := i + 1
			for j < len(*h) {
				if strings.EqualFold((*h)[j].Key, key) {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Add appends a header without replacing existing ones.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Del removes all headers with the given key (case-insensitive).
func (h *Headers) Del(key string) {
	j := 0
	for _, hdr := range *h {
		if !strings.EqualFold(hdr.Key, key) {
			(*h)[j] = hdr
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a deep copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// ContentLength returns the Content-Length header value, or -1 if absent or invalid.
func (h Headers) ContentLength() int64 {
	v := h.Get("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// IsChunked returns true if Transfer-Encoding contains "chunked".
func (h Headers) IsChunked() bool {
	v := h.Get("Transfer-Encoding")
	return strings.Contains(strings.ToLower(v), "chunked")
}

// ConnectionState tells whether the transport may carry another request.
type ConnectionState int

const (
	Close ConnectionState = iota
	KeepAlive
)

func (s ConnectionState) String() string {
	switch s {
	case KeepAlive:
		return "keep-alive"
	case Close:
		return "close"
	default:
		return "ConnectionState(" + strconv.Itoa(int(s)) + ")"
	}
}

// ConnectionState derives the reuse decision from the Connection header.
// Only the exact token "keep-alive" allows reuse; any other value, or no
// Connection header at all, means the connection must be closed.
func (r *Response) ConnectionState() ConnectionState {
	if v, ok := r.Headers.Lookup("Connection"); ok && v == "keep-alive" {
		return KeepAlive
	}
	return Close
}
