package uridecode

import (
	"bytes"

	"github.com/indigo-web/october/errors"
	"github.com/indigo-web/october/internal/hexconv"
	"github.com/indigo-web/utils/buffer"
)

// Decode translates a fixed set of escaped characters into their true form, in
// place. Every replacement stages the tail of the path in the scratch buffer and
// copies it back two bytes to the left. Scanning resumes right after the decoded
// character, so its output is never decoded twice: %2520 results in %20.
// Unknown escape sequences are left as is.
func Decode(path []byte, scratch *buffer.Buffer) ([]byte, error) {
	for i := 0; i < len(path); i++ {
		pct := bytes.IndexByte(path[i:], '%')
		if pct == -1 {
			break
		}

		i += pct
		char, ok := unescape(path[i:])
		if !ok {
			continue
		}

		scratch.Clear()
		if !scratch.Append(path[i+3:]) {
			return nil, errors.Program(errors.ErrURITooLong)
		}

		path[i] = char
		n := copy(path[i+1:], scratch.Finish())
		path = path[:i+1+n]
	}

	scratch.Clear()

	return path, nil
}

// decodable is the set of characters which are decoded. Any other escaped
// character is left encoded
var decodable = [256]bool{
	' ': true,
	'"': true,
	'<': true,
	'>': true,
	'#': true,
	'%': true,
}

func unescape(seq []byte) (char byte, ok bool) {
	if len(seq) < 3 {
		return 0, false
	}

	char, ok = hexconv.Decode(seq[1], seq[2])

	return char, ok && decodable[char]
}
