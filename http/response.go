package http

import (
	"io"
	"strconv"

	"github.com/indigo-web/tinyhttp/http/headers"
	"github.com/indigo-web/tinyhttp/http/mime"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const (
	DefaultVersion     = "HTTP/1.1"
	DefaultContentType = mime.HTML

	crlf          = "\r\n"
	contentLength = "Content-Length: "
)

// Response is a value object, built once per request, serialized and thrown away.
type Response struct {
	Version string
	Code    status.Code
	// Status is derived from Code via status.Text. Codes outside the status table
	// result in an empty Status.
	Status status.Status
	// Headers are rendered as-is. Content-Length must not be set here, as it's always
	// computed from the Body; setting it anyway results in a duplicate.
	Headers Headers
	Body    string
}

// NewResponse returns a new instance of the Response. Passing nil headers results in
// Content-Type: text/html being set. Non-nil headers are used exactly as they are, so
// the default content-type is lost unless included explicitly.
func NewResponse(code status.Code, hdrs Headers, body string) *Response {
	response := &Response{
		Version: DefaultVersion,
		Code:    status.OK,
		Status:  status.Text(status.OK),
		Body:    body,
	}

	if code != status.OK {
		response.Code = code
		response.Status = status.Text(code)
	}

	if hdrs == nil {
		hdrs = headers.New().Set("Content-Type", DefaultContentType)
	}

	response.Headers = hdrs

	return response
}

// Respond returns a default response. May be used as a dummy handler
func Respond(*Request) *Response {
	return NewResponse(status.OK, nil, "")
}

// String is a predicate to request.Respond().SetBody(...)
func String(request *Request, body string) *Response {
	return request.Respond().SetBody(body)
}

// Code is a predicate to request.Respond().SetCode(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().SetCode(code)
}

// Error is a predicate to request.Respond().Error(...)
func Error(request *Request, err error) *Response {
	return request.Respond().Error(err)
}

// SetCode sets a Response code and a corresponding status.
func (r *Response) SetCode(code status.Code) *Response {
	r.Code = code
	r.Status = status.Text(code)
	return r
}

// Header sets the header value, replacing the previous one if any.
func (r *Response) Header(key, value string) *Response {
	if r.Headers == nil {
		r.Headers = headers.New()
	}

	r.Headers.Set(key, value)
	return r
}

// ContentType sets a custom Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header("Content-Type", value)
}

// SetBody sets the response's body to the passed string
func (r *Response) SetBody(body string) *Response {
	r.Body = body
	return r
}

// TryJSON receives a model and sets its JSON representation as the body, along with
// the application/json content-type.
func (r *Response) TryJSON(model any) (*Response, error) {
	stream := json.ConfigDefault.BorrowStream(nil)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteVal(model)
	if stream.Error != nil {
		return r, stream.Error
	}

	r.Body = string(stream.Buffer())

	return r.ContentType(mime.JSON), nil
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error returns a response with an error set. If passed err is nil, nothing will happen.
// If an instance of status.HTTPError is passed, its code is used and the body stays
// untouched. Otherwise, it results in 500 Internal Server Error with the error text
// as the body.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	if http, ok := err.(status.HTTPError); ok {
		return r.SetCode(http.Code)
	}

	return r.
		SetCode(status.InternalServerError).
		ContentType(mime.Plain).
		SetBody(err.Error())
}

// AppendTo renders the response in its wire format into the buffer:
//
//	<version> <code> <status>\r\n<key>:<value>\r\n...Content-Length: <n>\r\n\r\n<body>
func (r *Response) AppendTo(buff []byte) []byte {
	buff = append(buff, r.Version...)
	buff = append(buff, ' ')
	buff = append(buff, r.Code...)
	buff = append(buff, ' ')
	buff = append(buff, r.Status...)
	buff = append(buff, crlf...)

	if r.Headers != nil {
		for _, pair := range r.Headers.Expose() {
			buff = append(buff, pair.Key...)
			buff = append(buff, ':')
			buff = append(buff, pair.Value...)
			buff = append(buff, crlf...)
		}
	}

	buff = append(buff, contentLength...)
	buff = strconv.AppendInt(buff, int64(len(r.Body)), 10)
	buff = append(buff, crlf+crlf...)

	return append(buff, r.Body...)
}

// Bytes returns the response in its wire format.
func (r *Response) Bytes() []byte {
	return r.AppendTo(make([]byte, 0, r.size()))
}

// String returns the response in its wire format.
func (r *Response) String() string {
	return uf.B2S(r.Bytes())
}

// Send writes the response in its wire format. The write error, if any, is returned as
// is, without any retries.
func (r *Response) Send(w io.Writer) error {
	_, err := w.Write(r.Bytes())
	return err
}

func (r *Response) size() int {
	size := len(r.Version) + len(r.Code) + len(r.Status) + len(" \r\n ") +
		len(contentLength) + 20 + len(crlf+crlf) + len(r.Body)

	if r.Headers != nil {
		for _, pair := range r.Headers.Expose() {
			size += len(pair.Key) + len(":") + len(pair.Value) + len(crlf)
		}
	}

	return size
}
