// Package b64 implements standard base64 encoding and decoding.
//
// The codec lives in the base64 sub-package; the b64 command wraps it for
// use from a shell.
//
// Related RFCs:
//  - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648 The Base16, Base32, and Base64 Data Encodings
package b64
