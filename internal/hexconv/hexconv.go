package hexconv

const invalid = 0xff

// Halfbyte maps a hex digit of either case onto its value. Any other character
// maps onto 0xff
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = invalid
	}

	for i, char := range "0123456789" {
		table[char] = byte(i)
	}

	for i, char := range "abcdef" {
		table[char] = byte(10 + i)
		table[char-'a'+'A'] = byte(10 + i)
	}

	return table
}()

// Decode returns the byte encoded by the pair of hex digits
func Decode(hi, lo byte) (char byte, ok bool) {
	h, l := Halfbyte[hi], Halfbyte[lo]
	if h == invalid || l == invalid {
		return 0, false
	}

	return h<<4 | l, true
}
