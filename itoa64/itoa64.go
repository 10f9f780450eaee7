package itoa64

// Alphabet lists the 64 characters of the encoding in value order: the
// byte at position i encodes the 6-bit value i.
const Alphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// reverse maps an ASCII byte to its alphabet position, or -1 when the
// byte is not part of the alphabet.
var reverse [256]int8

func init() {
	for i := range reverse {
		reverse[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		reverse[Alphabet[i]] = int8(i)
	}
}

// Index returns the position of c in Alphabet, or -1 if c is not an
// alphabet character. It is a single table lookup.
func Index(c byte) int {
	return int(reverse[c])
}

// EncodedLen returns the length in characters of the encoding of n input
// bytes: four characters per full group of three bytes, three characters
// for a trailing pair and two for a trailing single byte.
func EncodedLen(n int) int {
	return (4*n + 2) / 3
}

// EncodeToString returns the itoa64 encoding of src.
//
// Bytes are consumed in groups of three, least significant first: each
// group forms a 24-bit value whose low six bits select the first output
// character, the next six bits the second, and so on. A final group of
// two bytes yields three characters and a final single byte yields two,
// with the unused high bits of the last character left zero.
func EncodeToString(src []byte) string {
	dst := make([]byte, 0, EncodedLen(len(src)))

	i := 0
	for ; len(src)-i >= 3; i += 3 {
		v := uint32(src[i]) | uint32(src[i+1])<<8 | uint32(src[i+2])<<16
		dst = append(dst,
			Alphabet[v&0x3f],
			Alphabet[v>>6&0x3f],
			Alphabet[v>>12&0x3f],
			Alphabet[v>>18&0x3f],
		)
	}

	switch len(src) - i {
	case 2:
		v := uint32(src[i]) | uint32(src[i+1])<<8
		dst = append(dst,
			Alphabet[v&0x3f],
			Alphabet[v>>6&0x3f],
			Alphabet[v>>12&0x3f],
		)
	case 1:
		v := uint32(src[i])
		dst = append(dst,
			Alphabet[v&0x3f],
			Alphabet[v>>6&0x3f],
		)
	}

	return string(dst)
}
