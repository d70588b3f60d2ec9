package chunk

import "fmt"

// flagBit is the property bit tested on each type byte: bit 5 counted from
// the most significant bit, which for ASCII letters is the lowercase bit.
const flagBit = 0x20

// ChunkType is the 4-byte identifier classifying a chunk. The bytes are
// conventionally ASCII letters, and the case of each letter doubles as a
// property flag for decoders and editors.
type ChunkType struct {
	b [4]byte
}

// TypeFromBytes constructs a ChunkType from raw bytes without validation.
// This is the decode-side constructor: a tag that is present on the wire but
// invalid under IsValid must still survive parsing so the caller can inspect
// it.
func TypeFromBytes(b [4]byte) ChunkType {
	return ChunkType{b: b}
}

// TypeFromString constructs a ChunkType from a 4-character ASCII string.
// Every byte must be an ASCII letter; anything else is rejected with
// ErrTypeLength or ErrTypeNotAlphabetic.
func TypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w, got %d", ErrTypeLength, len(s))
	}
	var t ChunkType
	for i := 0; i < 4; i++ {
		c := s[i]
		if !isAlpha(c) {
			return ChunkType{}, fmt.Errorf("%w: %q", ErrTypeNotAlphabetic, c)
		}
		t.b[i] = c
	}
	return t, nil
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Bytes returns the tag's 4 bytes exactly as given at construction.
func (t ChunkType) Bytes() [4]byte {
	return t.b
}

// String renders the tag as its 4 ASCII characters. Tags built through
// TypeFromBytes may contain non-printable bytes; those are rendered as-is.
func (t ChunkType) String() string {
	return string(t.b[:])
}

func (t ChunkType) flag(i int) bool {
	return t.b[i]&flagBit != 0
}

// IsCritical reports whether a decoder is required to understand this chunk.
// An uppercase first byte marks a critical chunk, lowercase an ancillary one
// that decoders may skip.
func (t ChunkType) IsCritical() bool {
	return !t.flag(0)
}

// IsPublic reports whether the tag belongs to the public registry (uppercase
// second byte) rather than being application-private.
func (t ChunkType) IsPublic() bool {
	return !t.flag(1)
}

// IsReservedBitValid reports whether the reserved third byte is uppercase,
// as the current format version requires.
func (t ChunkType) IsReservedBitValid() bool {
	return !t.flag(2)
}

// IsSafeToCopy reports whether editors that do not recognize the chunk may
// copy it into a modified file (lowercase fourth byte).
func (t ChunkType) IsSafeToCopy() bool {
	return t.flag(3)
}

// IsValid reports whether the tag is well-formed under the current format
// version. Only the reserved bit participates; the other flags describe
// behavior, not validity.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid()
}
