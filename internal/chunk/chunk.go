// Package chunk implements a length-prefixed, type-tagged, checksum-verified
// binary record, laid out like a PNG chunk:
//
//	offset 0        4 bytes  payload length, big-endian uint32
//	offset 4        4 bytes  type tag, raw bytes
//	offset 8        length   payload
//	offset 8+length 4 bytes  CRC-32 over type tag + payload, big-endian
//
// The CRC uses the ISO-HDLC polynomial, the same parameterization zlib and
// PNG use, which in Go is hash/crc32's IEEE table.
package chunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"strconv"
	"unicode/utf8"
)

// Overhead is the number of bytes a record occupies beyond its payload:
// the length, type, and checksum fields.
const Overhead = 12

// Chunk is a single record. It is immutable after construction; length and
// checksum are derived from the type and payload, never set independently.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// New builds a chunk from a type tag and payload, deriving the length and
// checksum fields. The payload is copied, so the caller keeps ownership of
// its slice. Payloads longer than the 32-bit length field can represent are
// rejected with ErrPayloadTooLarge.
func New(typ ChunkType, data []byte) (*Chunk, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, ErrPayloadTooLarge
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Chunk{
		length: uint32(len(owned)),
		typ:    typ,
		data:   owned,
		crc:    Checksum(typ, owned),
	}, nil
}

// Checksum computes the CRC-32 (ISO-HDLC) of the type tag bytes followed by
// the payload, the value stored in a record's trailing field.
func Checksum(typ ChunkType, data []byte) uint32 {
	tb := typ.Bytes()
	crc := crc32.Update(0, crc32.IEEETable, tb[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

// Length returns the payload byte count.
func (c *Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk's type tag.
func (c *Chunk) Type() ChunkType {
	return c.typ
}

// Data returns the payload. The slice is owned by the chunk and must not be
// modified.
func (c *Chunk) Data() []byte {
	return c.data
}

// CRC returns the checksum over type tag and payload.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// DataAsString interprets the payload as UTF-8 text, failing with
// ErrPayloadNotUTF8 if it is not.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrPayloadNotUTF8
	}
	return string(c.data), nil
}

// Bytes serializes the chunk into the wire layout described in the package
// comment. The result is Overhead+Length() bytes long.
func (c *Chunk) Bytes() []byte {
	buf := make([]byte, 0, Overhead+len(c.data))
	buf = binary.BigEndian.AppendUint32(buf, c.length)
	tb := c.typ.Bytes()
	buf = append(buf, tb[:]...)
	buf = append(buf, c.data...)
	buf = binary.BigEndian.AppendUint32(buf, c.crc)
	return buf
}

// FromBytes parses a chunk from the front of buf and validates it. Bytes
// beyond the record are ignored; callers sequencing several records from one
// buffer advance by Overhead+Length() themselves.
//
// Decoding fails with ErrTruncated when buf is shorter than the declared
// layout requires, and with ErrChecksumMismatch when the embedded CRC
// disagrees with the one recomputed from the type and payload. The type tag
// is taken as-is: a tag that fails IsValid still decodes, and checking it is
// the caller's decision.
func FromBytes(buf []byte) (*Chunk, error) {
	if len(buf) < Overhead {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(buf), Overhead)
	}
	length := binary.BigEndian.Uint32(buf[0:4])
	if uint64(len(buf)) < uint64(length)+Overhead {
		return nil, fmt.Errorf("%w: %d bytes, record declares %d", ErrTruncated, len(buf), uint64(length)+Overhead)
	}

	var tb [4]byte
	copy(tb[:], buf[4:8])
	typ := TypeFromBytes(tb)
	payloadEnd := uint64(length) + 8
	data := buf[8:payloadEnd]
	declared := binary.BigEndian.Uint32(buf[payloadEnd : payloadEnd+4])

	c, err := New(typ, data)
	if err != nil {
		return nil, err
	}
	if c.length != length || c.crc != declared {
		return nil, fmt.Errorf("%w: declared %#08x, computed %#08x", ErrChecksumMismatch, declared, c.crc)
	}
	return c, nil
}

// String renders the chunk for debugging as length, type, payload, and CRC
// concatenated without separators. It is not a serialization; use Bytes for
// that. Payloads that are not valid UTF-8 render with replacement runes.
func (c *Chunk) String() string {
	return strconv.FormatUint(uint64(c.length), 10) +
		c.typ.String() +
		string(c.data) +
		strconv.FormatUint(uint64(c.crc), 10)
}
