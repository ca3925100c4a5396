package http

import (
	"bytes"
	"testing"
)

func BenchmarkMarshal_SimpleResponse(b *testing.B) {
	resp := &Response{
		Version:    "HTTP/1.1",
		StatusCode: 200,
		Reason:     "OK",
		Headers: Headers{
			{Key: "Content-Type", Value: "application/json"},
			{Key: "Server", Value: "shape-httpresp/1.0"},
		},
		Body: []byte(`{"status":"ok","count":42}`),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Marshal(resp)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal_ChunkedResponse(b *testing.B) {
	resp := &Response{
		Version:    "HTTP/1.1",
		StatusCode: 200,
		Reason:     "OK",
		Headers:    Headers{{Key: "Transfer-Encoding", Value: "chunked"}},
		Body:       bytes.Repeat([]byte("chunk"), 200),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Marshal(resp)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncoder_Response(b *testing.B) {
	resp := &Response{StatusCode: 204, Reason: "No Content"}
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := enc.Encode(resp); err != nil {
			b.Fatal(err)
		}
	}
}
