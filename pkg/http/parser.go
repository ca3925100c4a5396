package http

import (
	"io"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse decodes one HTTP/1.x response from a string into an AST.
//
// The returned ast.ObjectNode has the shape documented on ResponseToNode:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "OK", "connection": "close",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
func Parse(input string) (ast.SchemaNode, error) {
	return ParseReader(strings.NewReader(input))
}

// ParseReader decodes one response from r into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	resp, _, err := ReadResponse(r, nil)
	if err != nil {
		return nil, err
	}
	return ResponseToNode(resp), nil
}
