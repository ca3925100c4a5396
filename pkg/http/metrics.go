package http

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts decoded responses and decode failures. A nil *Metrics
// records nothing.
type Metrics struct {
	responsesTotal *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	bodyBytes      prometheus.Histogram
}

// NewMetrics creates the decoder collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	buckets := prometheus.ExponentialBuckets(64, 4, 10)
	m := &Metrics{
		responsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{Name: "http_response_decoded_total", Help: "Number of HTTP responses decoded, by status class and connection state"}, []string{"class", "connection"}),
		errorsTotal:    prometheus.NewCounterVec(prometheus.CounterOpts{Name: "http_response_decode_errors_total", Help: "Number of failed HTTP response decodes, by error kind"}, []string{"kind"}),
		bodyBytes:      prometheus.NewHistogram(prometheus.HistogramOpts{Name: "http_response_body_bytes", Help: "Size of decoded HTTP response bodies", Buckets: buckets}),
	}

	if reg != nil {
		reg.MustRegister(m.responsesTotal, m.errorsTotal, m.bodyBytes)
	}
	return m
}

func (m *Metrics) observeResponse(resp *Response, state ConnectionState) {
	if m == nil {
		return
	}
	m.responsesTotal.WithLabelValues(statusClass(resp.StatusCode), state.String()).Inc()
	m.bodyBytes.Observe(float64(len(resp.Body)))
}

func (m *Metrics) observeError(err error) {
	if m == nil {
		return
	}
	kind := "unknown"
	var pe *ParseError
	if errors.As(err, &pe) {
		kind = pe.Kind.String()
	}
	m.errorsTotal.WithLabelValues(kind).Inc()
}

func statusClass(code int) string {
	switch code / 100 {
	case 1:
		return "1xx"
	case 2:
		return "2xx"
	case 3:
		return "3xx"
	case 4:
		return "4xx"
	case 5:
		return "5xx"
	}
	return "other"
}
