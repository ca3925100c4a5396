package http

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func decodeString(t *testing.T, input string) *Response {
	t.Helper()
	resp, _, err := ReadResponse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ReadResponse() error = %v", err)
	}
	return resp
}

func TestRender_Response(t *testing.T) {
	input := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nHello"
	node := ResponseToNode(decodeString(t, input))

	data, err := Render(node)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if string(data) != input {
		t.Errorf("Render() =\n%q\nwant:\n%q", string(data), input)
	}
}

func TestRender_ResponseWithBody(t *testing.T) {
	input := "HTTP/1.1 404 Not Found\r\nContent-Type: text/html\r\nContent-Length: 18\r\n\r\n<h1>Not Found</h1>"
	node := ResponseToNode(decodeString(t, input))

	data, err := Render(node)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if string(data) != input {
		t.Errorf("Render() =\n%q\nwant:\n%q", string(data), input)
	}
}

func TestResponseToNode_Shape(t *testing.T) {
	resp := decodeString(t, "HTTP/1.1 200 OK\r\nConnection: keep-alive\r\nContent-Length: 2\r\n\r\nok")

	m, ok := NodeToInterface(ResponseToNode(resp)).(map[string]interface{})
	if !ok {
		t.Fatalf("NodeToInterface() returned %T, want map", NodeToInterface(ResponseToNode(resp)))
	}
	if m["type"] != "response" {
		t.Errorf("type = %v, want response", m["type"])
	}
	if m["statusCode"] != int64(200) {
		t.Errorf("statusCode = %v (%T), want 200", m["statusCode"], m["statusCode"])
	}
	if m["connection"] != "keep-alive" {
		t.Errorf("connection = %v, want keep-alive", m["connection"])
	}
	if m["body"] != "ok" {
		t.Errorf("body = %v, want ok", m["body"])
	}
	headers, ok := m["headers"].([]interface{})
	if !ok || len(headers) != 2 {
		t.Fatalf("headers = %v, want 2 entries", m["headers"])
	}
	first, _ := headers[0].(map[string]interface{})
	if first["key"] != "Connection" || first["value"] != "keep-alive" {
		t.Errorf("headers[0] = %v", first)
	}
}

func TestNodeToResponse_RoundTrip(t *testing.T) {
	resp := decodeString(t, "HTTP/1.0 503 Service Unavailable\r\nRetry-After: 120\r\n\r\n")

	got, err := NodeToResponse(ResponseToNode(resp))
	if err != nil {
		t.Fatalf("NodeToResponse() error = %v", err)
	}
	if got.Version != "HTTP/1.0" || got.StatusCode != 503 || got.Reason != "Service Unavailable" {
		t.Errorf("status line = %q %d %q", got.Version, got.StatusCode, got.Reason)
	}
	if got.Headers.Get("Retry-After") != "120" {
		t.Errorf("Retry-After = %q", got.Headers.Get("Retry-After"))
	}
}

func TestNodeToResponse_Trailers(t *testing.T) {
	resp := decodeString(t, "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n2\r\nok\r\n0\r\nX-Checksum: abc\r\n\r\n")

	got, err := NodeToResponse(ResponseToNode(resp))
	if err != nil {
		t.Fatalf("NodeToResponse() error = %v", err)
	}
	if got.Trailers.Get("X-Checksum") != "abc" {
		t.Errorf("trailer X-Checksum = %q, want abc", got.Trailers.Get("X-Checksum"))
	}
	if got.Headers.Get("X-Checksum") != "" {
		t.Errorf("header X-Checksum = %q, want empty", got.Headers.Get("X-Checksum"))
	}
}

func TestNodeToResponse_Errors(t *testing.T) {
	tests := []struct {
		name string
		node ast.SchemaNode
	}{
		{name: "literal", node: ast.NewLiteralNode("x", ast.Position{})},
		{name: "wrong type", node: ast.NewObjectNode(map[string]ast.SchemaNode{
			"type": ast.NewLiteralNode("request", ast.Position{}),
		}, ast.Position{})},
		{name: "headers not array", node: ast.NewObjectNode(map[string]ast.SchemaNode{
			"type":    ast.NewLiteralNode("response", ast.Position{}),
			"headers": ast.NewLiteralNode("Host: x", ast.Position{}),
		}, ast.Position{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NodeToResponse(tt.node); err == nil {
				t.Error("NodeToResponse() expected error")
			}
			if _, err := Render(tt.node); err == nil {
				t.Error("Render() expected error")
			}
		})
	}
}
