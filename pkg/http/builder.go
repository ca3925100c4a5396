package http

// toResponse moves the accumulated status, headers and body into a Response.
// A message without a status code is not a response.
func (p *inFlightParse) toResponse() (*Response, error) {
	if !p.hasStatus {
		return nil, newParseError(KindIllformedMessage, "illformed header")
	}

	resp := &Response{
		Version:    p.version,
		StatusCode: p.status,
		Reason:     p.reason,
		Headers:    p.headers,
		Body:       p.body,
		Trailers:   p.trailers,
	}
	if resp.Headers == nil {
		resp.Headers = Headers{}
	}
	if resp.Body == nil {
		resp.Body = []byte{}
	}

	p.headers = nil
	p.trailers = nil
	p.body = nil
	return resp, nil
}
