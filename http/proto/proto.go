package proto

type Protocol uint8

const (
	Unknown Protocol = iota
	HTTP11
	HTTP2
)

const (
	protoTokenLength   = len("HTTP/x.x")
	majorVersionOffset = len("HTTP/x") - 1
	minorVersionOffset = len("HTTP/x.x") - 1
	httpScheme         = "HTTP/"
)

var majorMinorVersionLUT = [10][10]Protocol{
	1: {1: HTTP11},
	2: {0: HTTP2},
}

// String returns the protocol token as it appears on the wire. Unknown protocol is
// rendered as an empty string.
func (p Protocol) String() string {
	switch p {
	case HTTP11:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2.0"
	default:
		return ""
	}
}

// Parse recognizes a version token of the request line. Anything that isn't exactly
// HTTP/1.1 or HTTP/2.0 results in Unknown.
func Parse(token string) Protocol {
	if len(token) != protoTokenLength || token[:majorVersionOffset] != httpScheme ||
		token[majorVersionOffset+1] != '.' {
		return Unknown
	}

	major, minor := token[majorVersionOffset]-'0', token[minorVersionOffset]-'0'
	if major > 9 || minor > 9 {
		return Unknown
	}

	return majorMinorVersionLUT[major][minor]
}
