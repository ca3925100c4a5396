package http

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the HTTP/1.1 wire-format encoding of resp.
//
// If the body is non-empty and neither Content-Length nor chunked
// Transfer-Encoding is present, Content-Length is set automatically so the
// output decodes back to the same body.
func Marshal(resp *Response) ([]byte, error) {
	if resp == nil {
		return nil, fmt.Errorf("http: Marshal(nil)")
	}
	if !validStatusCode(resp.StatusCode) {
		return nil, fmt.Errorf("http: Marshal: invalid status code %d", resp.StatusCode)
	}

	bp := bufPool.Get().(*[]byte)
	buf := appendResponse((*bp)[:0], resp)

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}
