package proto

type Proto uint8

const (
	Unknown Proto = 0
	HTTP10  Proto = 1 << iota
	HTTP11

	HTTP1 = HTTP10 | HTTP11
)

const http11 = "HTTP/1.1"

// String returns protocol as a string WITHOUT a trailing space. Anything but
// HTTP/1.1 is rendered as HTTP/1.0, as that's what the server falls back to
func (p Proto) String() string {
	if p == HTTP11 {
		return http11
	}

	return "HTTP/1.0"
}

// Parse returns HTTP11 only for the exact "HTTP/1.1" token. Any other value,
// including an empty one, means HTTP/1.0
func Parse(token string) Proto {
	if token == http11 {
		return HTTP11
	}

	return HTTP10
}
