// Package png models a PNG file as its 8-byte signature followed by an
// ordered list of chunks. It sequences slices of a file buffer into the
// chunk codec and back; it does not interpret image data.
package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pngstash/pngstash/internal/chunk"
)

var (
	ErrBadSignature  = errors.New("png: missing PNG signature")
	ErrChunkNotFound = errors.New("png: no chunk with the requested type")
)

// signature opens every PNG file.
var signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// PNG is a parsed file: the signature plus its chunks in file order.
type PNG struct {
	chunks []*chunk.Chunk
}

// FromChunks builds a PNG from an already-ordered chunk list. The slice is
// copied; the chunks themselves are shared (they are immutable).
func FromChunks(chunks []*chunk.Chunk) *PNG {
	p := &PNG{chunks: make([]*chunk.Chunk, len(chunks))}
	copy(p.chunks, chunks)
	return p
}

// FromBytes parses a whole PNG file: the signature, then chunks back to back
// until the buffer is exhausted. Each chunk is validated by the codec;
// errors are annotated with the failing chunk's file offset.
func FromBytes(buf []byte) (*PNG, error) {
	if len(buf) < len(signature) || !bytes.Equal(buf[:len(signature)], signature[:]) {
		return nil, ErrBadSignature
	}

	p := &PNG{}
	offset := len(signature)
	rest := buf[offset:]
	for len(rest) > 0 {
		if len(rest) < chunk.Overhead {
			return nil, fmt.Errorf("png: chunk at offset %d: %w", offset, chunk.ErrTruncated)
		}
		size := uint64(binary.BigEndian.Uint32(rest)) + chunk.Overhead
		if uint64(len(rest)) < size {
			return nil, fmt.Errorf("png: chunk at offset %d: %w", offset, chunk.ErrTruncated)
		}
		c, err := chunk.FromBytes(rest[:size])
		if err != nil {
			return nil, fmt.Errorf("png: chunk at offset %d: %w", offset, err)
		}
		p.chunks = append(p.chunks, c)
		rest = rest[size:]
		offset += int(size)
	}
	return p, nil
}

// Header returns the PNG signature.
func (p *PNG) Header() [8]byte {
	return signature
}

// Chunks returns the chunks in file order. The slice must not be modified.
func (p *PNG) Chunks() []*chunk.Chunk {
	return p.chunks
}

// ChunkByType returns the first chunk whose type tag renders as typ, or nil.
func (p *PNG) ChunkByType(typ string) *chunk.Chunk {
	for _, c := range p.chunks {
		if c.Type().String() == typ {
			return c
		}
	}
	return nil
}

// AppendChunk adds a chunk at the end of the file.
func (p *PNG) AppendChunk(c *chunk.Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveFirstChunk removes and returns the first chunk whose type tag
// renders as typ, failing with ErrChunkNotFound when there is none.
func (p *PNG) RemoveFirstChunk(typ string) (*chunk.Chunk, error) {
	for i, c := range p.chunks {
		if c.Type().String() == typ {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrChunkNotFound, typ)
}

// Bytes serializes the file: signature, then every chunk in order.
func (p *PNG) Bytes() []byte {
	size := len(signature)
	for _, c := range p.chunks {
		size += chunk.Overhead + int(c.Length())
	}
	buf := make([]byte, 0, size)
	buf = append(buf, signature[:]...)
	for _, c := range p.chunks {
		buf = append(buf, c.Bytes()...)
	}
	return buf
}
