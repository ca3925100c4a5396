package http

// String interning for common response header names.
//
// The Go compiler optimizes map lookups with string([]byte) keys
// to avoid allocating the temporary string (the mapaccess optimization).
// This means internHeaderName(someBytes) is zero-alloc for known names.

var headerNames = map[string]string{
	"Accept-Ranges":               "Accept-Ranges",
	"Access-Control-Allow-Origin": "Access-Control-Allow-Origin",
	"Age":                         "Age",
	"Allow":                       "Allow",
	"Cache-Control":               "Cache-Control",
	"Connection":                  "Connection",
	"Content-Disposition":         "Content-Disposition",
	"Content-Encoding":            "Content-Encoding",
	"Content-Language":            "Content-Language",
	"Content-Length":              "Content-Length",
	"Content-Location":            "Content-Location",
	"Content-Range":               "Content-Range",
	"Content-Type":                "Content-Type",
	"Date":                        "Date",
	"ETag":                        "ETag",
	"Expires":                     "Expires",
	"Keep-Alive":                  "Keep-Alive",
	"Last-Modified":               "Last-Modified",
	"Location":                    "Location",
	"Pragma":                      "Pragma",
	"Proxy-Authenticate":          "Proxy-Authenticate",
	"Retry-After":                 "Retry-After",
	"Server":                      "Server",
	"Set-Cookie":                  "Set-Cookie",
	"Strict-Transport-Security":   "Strict-Transport-Security",
	"Trailer":                     "Trailer",
	"Transfer-Encoding":           "Transfer-Encoding",
	"Upgrade":                     "Upgrade",
	"Vary":                        "Vary",
	"Via":                         "Via",
	"WWW-Authenticate":            "WWW-Authenticate",
	"X-Content-Type-Options":      "X-Content-Type-Options",
	"X-Request-ID":                "X-Request-ID",
	"connection":                  "connection",
	"content-length":              "content-length",
	"content-type":                "content-type",
	"date":                        "date",
	"server":                      "server",
}

// internHeaderName returns an interned string for known header names, avoiding allocation.
func internHeaderName(b []byte) string {
	if s, ok := headerNames[string(b)]; ok {
		return s
	}
	return string(b)
}
