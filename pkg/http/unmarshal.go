package http

import (
	"bytes"
	"fmt"
)

// Unmarshal decodes a complete HTTP/1.x response held in data and stores it
// in resp. Data that ends before the response is complete is an error, and
// bytes after the response are ignored.
func Unmarshal(data []byte, resp *Response) error {
	if resp == nil {
		return fmt.Errorf("http: Unmarshal(nil)")
	}
	decoded, err := UnmarshalResponse(data)
	if err != nil {
		return err
	}
	*resp = *decoded
	return nil
}

// UnmarshalResponse decodes a complete HTTP/1.x response held in data.
func UnmarshalResponse(data []byte) (*Response, error) {
	resp, _, err := ReadResponse(bytes.NewReader(data), nil)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
