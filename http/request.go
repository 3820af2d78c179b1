package http

import (
	"github.com/indigo-web/tinyhttp/http/headers"
	"github.com/indigo-web/tinyhttp/http/method"
	"github.com/indigo-web/tinyhttp/http/proto"
	"github.com/indigo-web/tinyhttp/http/status"
)

type Headers = *headers.Headers

// Request represents HTTP request. It is produced only by the parser and is never
// partially populated: whatever the parser couldn't recognize is left Unknown or empty.
type Request struct {
	// Method is an enum representing the request method. Any token except GET and POST
	// results in method.Unknown.
	Method method.Method
	// Path is the request-target as it was received, query included.
	Path string
	// Protocol is the enum of a protocol version from the request line.
	Protocol proto.Protocol
	// Headers holds header pairs as they were received. Keys are case-sensitive.
	Headers Headers
	// Body is everything after the first empty line.
	Body string
}

// NewRequest returns an empty request, with all the enums set to Unknown.
func NewRequest() *Request {
	return &Request{
		Method:   method.Unknown,
		Protocol: proto.Unknown,
		Headers:  headers.New(),
	}
}

// Respond returns a fresh response with default values: 200 OK and text/html
// content-type.
func (r *Request) Respond() *Response {
	return NewResponse(status.OK, nil, "")
}

// Reset brings the request to the state of a freshly constructed one, keeping
// already allocated space for headers.
func (r *Request) Reset() {
	r.Method = method.Unknown
	r.Path = ""
	r.Protocol = proto.Unknown
	r.Headers.Clear()
	r.Body = ""
}
