package status

type Code uint16

const (
	OK       Code = 200 // RFC 9110, 15.3.1
	NotFound Code = 404 // RFC 9110, 15.5.5
)

// KnownCodes lists every code the server is able to respond with
var KnownCodes = []Code{OK, NotFound}

// Text returns the reason phrase for the code. Unknown codes have an empty one
func Text(code Code) string {
	switch code {
	case OK:
		return "OK"
	case NotFound:
		return "Not Found"
	default:
		return ""
	}
}

// Line returns the status line without the protocol, e.g. "200 OK"
func Line(code Code) string {
	switch code {
	case OK:
		return "200 OK"
	case NotFound:
		return "404 Not Found"
	default:
		return ""
	}
}
