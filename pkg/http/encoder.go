package http

import (
	"io"
	"strconv"
)

// Encoder writes HTTP responses to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the HTTP wire-format encoding of resp to the stream.
func (enc *Encoder) Encode(resp *Response) error {
	data, err := Marshal(resp)
	if err != nil {
		return err
	}
	_, err = enc.w.Write(data)
	return err
}

// appendResponse serializes a Response to HTTP/1.1 wire format.
// It appends "VERSION STATUS REASON\r\n" followed by headers and body.
func appendResponse(buf []byte, resp *Response) []byte {
	version := resp.Version
	if version == "" {
		version = "HTTP/1.1"
	}

	buf = appendStatusLine(buf, version, resp.StatusCode, resp.Reason)
	buf = appendHeaders(buf, resp.Headers)

	// Auto-set Content-Length if body present and header absent
	if len(resp.Body) > 0 && resp.Headers.Get("Content-Length") == "" && !resp.Headers.IsChunked() {
		buf = append(buf, "Content-Length: "...)
		buf = strconv.AppendInt(buf, int64(len(resp.Body)), 10)
		buf = appendCRLF(buf)
	}

	buf = appendCRLF(buf) // empty line before body
	if resp.Headers.IsChunked() {
		return appendChunkedBody(buf, resp.Body, resp.Trailers)
	}
	if len(resp.Body) > 0 {
		buf = append(buf, resp.Body...)
	}

	return buf
}

// appendChunkedBody writes body as a single chunk followed by the last-chunk
// and the trailer section.
func appendChunkedBody(buf, body []byte, trailers Headers) []byte {
	if len(body) > 0 {
		buf = strconv.AppendInt(buf, int64(len(body)), 16)
		buf = appendCRLF(buf)
		buf = append(buf, body...)
		buf = appendCRLF(buf)
	}
	buf = append(buf, '0')
	buf = appendCRLF(buf)
	buf = appendHeaders(buf, trailers)
	return appendCRLF(buf)
}

// appendStatusLine appends "VERSION STATUS REASON\r\n" to buf.
func appendStatusLine(buf []byte, version string, statusCode int, reason string) []byte {
	buf = append(buf, version...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(statusCode), 10)
	buf = append(buf, ' ')
	buf = append(buf, reason...)
	return appendCRLF(buf)
}

// appendHeaders appends all headers in "Key: Value\r\n" format.
func appendHeaders(buf []byte, headers Headers) []byte {
	for _, h := range headers {
		buf = append(buf, h.Key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.Value...)
		buf = appendCRLF(buf)
	}
	return buf
}

func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}
