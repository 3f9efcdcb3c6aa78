// Package base64 provides standard base64 encoding and decoding as defined
// in RFC 4648 Section 4.
//
// Encoding always pads the output with '=' so its length is a multiple of 4.
// Decoding comes in two forms:
//   - Decode validates the input and returns an *ErrInvalidInput for
//     malformed strings
//   - DecodeTrusted skips validation for callers that already know the
//     input is well-formed
//
// All data is held in memory; there is no streaming, URL-safe alphabet, or
// line wrapping support.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
