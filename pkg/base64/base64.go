package base64

import (
	"strings"
)

// Alphabet is the standard base64 alphabet, indexed by 6-bit value, followed
// by the padding character.
//
// https://www.rfc-editor.org/rfc/rfc4648#section-4
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

// Padding is appended to the encoded output until its length is a multiple of 4.
const Padding = '='

// invalid marks reverse table entries that are not alphabet symbols.
const invalid = 0xFF

// reverse maps a character code back to its 6-bit value. It is built once at
// package initialization and only read afterwards.
var reverse = func() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = invalid
	}
	for i := 0; i < 64; i++ {
		table[Alphabet[i]] = byte(i)
	}
	return table
}()

// EncodedLen returns the length of the base64 encoding of n bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the number of bytes the given base64 string decodes to,
// ignoring any trailing padding.
func DecodedLen(input string) int {
	return trimmedLen(input) * 6 / 8
}

func trimmedLen(input string) int {
	n := len(input)
	for n > 0 && input[n-1] == Padding {
		n--
	}
	return n
}

// Encode returns the padded base64 encoding of the given input.
func Encode(input []byte) string {
	var b strings.Builder
	b.Grow(EncodedLen(len(input)))

	var (
		bits    uint32
		numBits int
		i       int
	)

	for i < len(input) || numBits > 0 {
		if numBits < 6 {
			for numBits <= 24 && i < len(input) {
				bits |= uint32(input[i]) << (24 - numBits)
				numBits += 8
				i++
			}
		}
		b.WriteByte(Alphabet[bits>>26])
		bits <<= 6
		numBits -= 6
	}

	for b.Len()%4 != 0 {
		b.WriteByte(Padding)
	}

	return b.String()
}

// Decode returns the bytes represented by the given padded base64 string.
//
// The input is checked with Validate first, and an *ErrInvalidInput is
// returned if it is not well-formed. An empty input decodes to an empty
// slice.
func Decode(input string) ([]byte, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	return DecodeTrusted(input), nil
}

// DecodeTrusted decodes the given base64 string without validating it.
//
// The caller is trusted to supply a well-formed, padded string. Any other
// input produces unspecified bytes, but never panics.
func DecodeTrusted(input string) []byte {
	n := trimmedLen(input)
	output := make([]byte, n*6/8)

	var j int
	for i := 0; i < n; i += 4 {
		group := uint32(lookup(input, i))<<18 |
			uint32(lookup(input, i+1))<<12 |
			uint32(lookup(input, i+2))<<6 |
			uint32(lookup(input, i+3))

		if j < len(output) {
			output[j] = byte(group >> 16)
			j++
		}
		if j < len(output) {
			output[j] = byte(group >> 8)
			j++
		}
		if j < len(output) {
			output[j] = byte(group)
			j++
		}
	}

	return output
}

// lookup returns the 6-bit value of input[i], or 0 past the end of input.
func lookup(input string, i int) byte {
	if i >= len(input) {
		return 0
	}
	return reverse[input[i]]
}

// Validate reports whether the given string is well-formed padded base64.
func Validate(input string) error {
	if len(input)%4 != 0 {
		return NewInvalidInputError(ErrLength, len(input))
	}

	n := trimmedLen(input)
	if len(input)-n > 2 {
		return NewInvalidInputError(ErrPadding, n)
	}

	for i := 0; i < n; i++ {
		c := input[i]
		if reverse[c] != invalid {
			continue
		}
		if c == Padding {
			return NewInvalidInputError(ErrPadding, i)
		}
		return NewInvalidInputError(ErrCharacter, i)
	}

	return nil
}
