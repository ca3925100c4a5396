package http

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// ResponseToNode converts a Response to an AST ObjectNode:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "OK", "connection": "keep-alive",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
//
// A "trailers" array in the same form as "headers" is added when the response
// carried a trailer section.
func ResponseToNode(resp *Response) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("response", zeroPos),
		"version":    ast.NewLiteralNode(resp.Version, zeroPos),
		"statusCode": ast.NewLiteralNode(int64(resp.StatusCode), zeroPos),
		"reason":     ast.NewLiteralNode(resp.Reason, zeroPos),
		"connection": ast.NewLiteralNode(resp.ConnectionState().String(), zeroPos),
		"headers":    headersToNode(resp.Headers),
		"body":       ast.NewLiteralNode(string(resp.Body), zeroPos),
	}
	if len(resp.Trailers) > 0 {
		props["trailers"] = headersToNode(resp.Trailers)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// NodeToResponse converts an AST ObjectNode (from ResponseToNode) back to a Response.
// The "connection" property is derived data and is ignored.
func NodeToResponse(node ast.SchemaNode) (*Response, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if t := literalString(props["type"]); t != "response" {
		return nil, fmt.Errorf("expected message type \"response\", got %q", t)
	}

	resp := &Response{
		Version: literalString(props["version"]),
		Reason:  literalString(props["reason"]),
		Body:    []byte(literalString(props["body"])),
	}
	if v, ok := props["statusCode"]; ok {
		resp.StatusCode = nodeToStatusCode(v)
	}
	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		resp.Headers = hdrs
	}
	if v, ok := props["trailers"]; ok {
		trailers, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		resp.Trailers = trailers
	}
	return resp, nil
}

// Render converts an AST node (from ResponseToNode) back to HTTP wire format bytes.
func Render(node ast.SchemaNode) ([]byte, error) {
	resp, err := NodeToResponse(node)
	if err != nil {
		return nil, fmt.Errorf("http: Render: %w", err)
	}
	return Marshal(resp)
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}

func headersToNode(headers Headers) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Key, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

func nodeToHeaders(node ast.SchemaNode) (Headers, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make(Headers, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		headers = append(headers, Header{
			Key:   literalString(props["key"]),
			Value: literalString(props["value"]),
		})
	}
	return headers, nil
}

// literalString returns the string value of a literal node, or "".
func literalString(node ast.SchemaNode) string {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}

// nodeToStatusCode extracts the status code from a literal node.
func nodeToStatusCode(node ast.SchemaNode) int {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return 0
	}
	switch code := lit.Value().(type) {
	case int64:
		return int(code)
	case float64:
		return int(code)
	case string:
		n, _ := strconv.Atoi(code)
		return n
	}
	return 0
}
