package method

//go:generate stringer -type=Method
type Method uint8

const (
	// Unknown is used for every method token that isn't recognized, including
	// an empty or missing one. It isn't an error: such requests are still routed.
	Unknown Method = iota
	GET
	POST
)

// List contains all the methods routes can be registered for, sorted by their integer
// value. Unknown method is not included.
var List = []Method{GET, POST}

// Parse returns the method corresponding to the token. The comparison is case-sensitive,
// as method tokens are.
func Parse(str string) Method {
	switch str {
	case "GET":
		return GET
	case "POST":
		return POST
	}

	return Unknown
}
