package chunk

import "errors"

var (
	ErrTypeLength        = errors.New("chunk: type tag must be exactly 4 bytes")
	ErrTypeNotAlphabetic = errors.New("chunk: type tag contains a non-alphabetic byte")
	ErrTruncated         = errors.New("chunk: buffer truncated")
	ErrChecksumMismatch  = errors.New("chunk: checksum mismatch")
	ErrPayloadNotUTF8    = errors.New("chunk: payload is not valid UTF-8")
	ErrPayloadTooLarge   = errors.New("chunk: payload exceeds the 32-bit length field")
)
