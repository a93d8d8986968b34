package method

// Method is a bitmask rather than a plain enum, so the request state can carry
// the recognized verb in the same word as other flags.
type Method uint8

const (
	Unknown Method = 0
	GET     Method = 1 << (iota - 1)
	HEAD
	OPTIONS
	POST
	PUT
)

// List contains every recognized method.
var List = []Method{GET, HEAD, OPTIONS, POST, PUT}

// Parse matches the token case-sensitively against the known verbs.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 7:
		if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Unknown
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case HEAD:
		return "HEAD"
	case OPTIONS:
		return "OPTIONS"
	case POST:
		return "POST"
	case PUT:
		return "PUT"
	default:
		return "UNKNOWN"
	}
}
