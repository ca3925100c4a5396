package http

import (
	"github.com/shapestone/shape-httpresp/internal/tokenizer"
)

// responseHandler turns tokenizer events into updates of an inFlightParse.
// The first error is latched; once set, later events are ignored and the
// latched error is returned again.
type responseHandler struct {
	p *inFlightParse
}

var _ tokenizer.Handler = (*responseHandler)(nil)

func (h *responseHandler) latch(err error) error {
	if err != nil && h.p.err == nil {
		h.p.err = err
	}
	return err
}

func (h *responseHandler) OnMessageBegin() error {
	return h.p.err
}

func (h *responseHandler) OnStatus(code int, version, reason string) error {
	if h.p.err != nil {
		return h.p.err
	}
	if !validStatusCode(code) {
		return h.latch(newParseError(KindMalformedStatus, "illformed response"))
	}
	h.p.status = code
	h.p.hasStatus = true
	h.p.version = version
	h.p.reason = reason
	return nil
}

func (h *responseHandler) OnHeaderField(name []byte) error {
	if h.p.err != nil {
		return h.p.err
	}
	return h.latch(h.p.addHeaderName(name))
}

func (h *responseHandler) OnHeaderValue(value []byte) error {
	if h.p.err != nil {
		return h.p.err
	}
	return h.latch(h.p.addHeaderValue(value))
}

func (h *responseHandler) OnHeadersComplete() error {
	return h.p.err
}

func (h *responseHandler) OnBody(data []byte) error {
	if h.p.err != nil {
		return h.p.err
	}
	if h.p.maxBodySize > 0 && int64(len(h.p.body)+len(data)) > h.p.maxBodySize {
		return h.latch(newParseError(KindBodyTooLarge, "body too large"))
	}
	h.p.body = append(h.p.body, data...)
	return nil
}

func (h *responseHandler) OnTrailersBegin() error {
	if h.p.err != nil {
		return h.p.err
	}
	h.p.inTrailer = true
	return nil
}

func (h *responseHandler) OnMessageComplete() error {
	if h.p.err != nil {
		return h.p.err
	}
	h.p.complete = true
	return nil
}

// validStatusCode accepts three-digit codes from 100 to 999.
func validStatusCode(code int) bool {
	return code >= 100 && code <= 999
}
