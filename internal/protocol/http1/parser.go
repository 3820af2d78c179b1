package http1

import (
	"bytes"
	"strings"

	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/method"
	"github.com/indigo-web/tinyhttp/http/proto"
	"github.com/indigo-web/utils/uf"
)

// Parse interprets data as a single complete HTTP request. The data may be a fixed-size
// read buffer: everything starting from the first zero byte is considered padding and
// ignored. Parsing never fails, malformed or absent parts are left Unknown or empty.
//
// Strings of the returned request reference the data, so it must not be modified while
// the request is in use.
func Parse(data []byte) *http.Request {
	request := http.NewRequest()
	ParseInto(request, data)

	return request
}

// ParseInto does the same as Parse, but fills the passed request instead of allocating
// a new one. The request is expected to be fresh or Reset.
func ParseInto(request *http.Request, data []byte) {
	requestLine, rest, _ := strings.Cut(uf.B2S(trimPadding(data)), "\n")
	parseRequestLine(request, trimCR(requestLine))

	for len(rest) > 0 {
		var line string
		line, rest, _ = strings.Cut(rest, "\n")
		line = trimCR(line)
		if len(line) == 0 {
			// the first empty line ends the head; bare LF endings are tolerated
			request.Body = rest
			return
		}

		parseHeader(request, line)
	}
}

func parseRequestLine(request *http.Request, line string) {
	tokens := strings.Fields(line)

	switch {
	case len(tokens) > 2:
		request.Protocol = proto.Parse(tokens[2])
		fallthrough
	case len(tokens) > 1:
		request.Path = tokens[1]
		fallthrough
	case len(tokens) > 0:
		request.Method = method.Parse(tokens[0])
	}
}

func parseHeader(request *http.Request, line string) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return
	}

	key = strings.TrimSpace(key)
	if len(key) == 0 {
		return
	}

	request.Headers.Set(key, strings.TrimSpace(value))
}

func trimPadding(data []byte) []byte {
	if zero := bytes.IndexByte(data, 0); zero != -1 {
		return data[:zero]
	}

	return data
}

func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}
