package status

type (
	// Code is kept in its textual form, exactly as it's rendered into the status line.
	Code   string
	Status string
)

const (
	OK                  Code = "200" // RFC 9110, 15.3.1
	BadRequest          Code = "400" // RFC 9110, 15.5.1
	NotFound            Code = "404" // RFC 9110, 15.5.5
	InternalServerError Code = "500" // RFC 9110, 15.6.1
)

// KnownCodes lists every code the status table has a text for.
var KnownCodes = []Code{OK, BadRequest, NotFound, InternalServerError}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return ""
	}
}

// Known tells whether the status table has a text for the code.
func Known(code Code) bool {
	return len(Text(code)) > 0
}
