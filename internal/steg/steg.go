// Package steg hides, extracts, and removes text messages carried in custom
// PNG chunks. Messages live in the payload of a chunk whose type the caller
// chooses; ancillary, private, safe-to-copy tags (e.g. "ruSt") survive most
// image tooling untouched.
package steg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pierrec/lz4/v4"

	"github.com/pngstash/pngstash/internal/chunk"
	"github.com/pngstash/pngstash/internal/png"
)

var ErrNoMessage = errors.New("steg: no message chunk with the requested type")

// lz4FrameMagic opens every LZ4 frame; its presence at the front of a
// payload marks the message as compressed.
const lz4FrameMagic = 0x184D2204

// Embed appends a chunk of the given type carrying message to the PNG image
// in img and returns the rewritten file. With compress set, the message is
// wrapped in an LZ4 frame first; Extract undoes this transparently because
// the frame is self-describing.
func Embed(img []byte, typ, message string, compress bool) ([]byte, error) {
	p, err := png.FromBytes(img)
	if err != nil {
		return nil, err
	}
	t, err := chunk.TypeFromString(typ)
	if err != nil {
		return nil, err
	}

	payload := []byte(message)
	if compress {
		payload, err = compressMessage(payload)
		if err != nil {
			return nil, err
		}
	}
	c, err := chunk.New(t, payload)
	if err != nil {
		return nil, err
	}
	p.AppendChunk(c)
	return p.Bytes(), nil
}

// Extract returns the message carried by the first chunk of the given type,
// decompressing it when it was embedded with compression. It fails with
// ErrNoMessage when the file has no such chunk.
func Extract(img []byte, typ string) (string, error) {
	p, err := png.FromBytes(img)
	if err != nil {
		return "", err
	}
	c := p.ChunkByType(typ)
	if c == nil {
		return "", fmt.Errorf("%w: %q", ErrNoMessage, typ)
	}

	data := c.Data()
	if !isLZ4Frame(data) {
		return c.DataAsString()
	}
	data, err = decompressMessage(data)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", chunk.ErrPayloadNotUTF8
	}
	return string(data), nil
}

// Remove strips the first chunk of the given type from the file and returns
// the rewritten bytes together with the removed chunk.
func Remove(img []byte, typ string) ([]byte, *chunk.Chunk, error) {
	p, err := png.FromBytes(img)
	if err != nil {
		return nil, nil, err
	}
	c, err := p.RemoveFirstChunk(typ)
	if err != nil {
		return nil, nil, fmt.Errorf("steg: %w", err)
	}
	return p.Bytes(), c, nil
}

// ChunkInfo summarizes one chunk for listings.
type ChunkInfo struct {
	Type       string
	Length     uint32
	CRC        uint32
	Critical   bool
	Public     bool
	SafeToCopy bool
	Valid      bool
}

// Scan parses the file and summarizes every chunk in file order.
func Scan(img []byte) ([]ChunkInfo, error) {
	p, err := png.FromBytes(img)
	if err != nil {
		return nil, err
	}
	infos := make([]ChunkInfo, 0, len(p.Chunks()))
	for _, c := range p.Chunks() {
		t := c.Type()
		infos = append(infos, ChunkInfo{
			Type:       t.String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Critical:   t.IsCritical(),
			Public:     t.IsPublic(),
			SafeToCopy: t.IsSafeToCopy(),
			Valid:      t.IsValid(),
		})
	}
	return infos, nil
}

func isLZ4Frame(b []byte) bool {
	return len(b) >= 4 && binary.LittleEndian.Uint32(b) == lz4FrameMagic
}

func compressMessage(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(src); err != nil {
		return nil, fmt.Errorf("steg: lz4 compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("steg: lz4 compress: %w", err)
	}
	return buf.Bytes(), nil
}

func decompressMessage(src []byte) ([]byte, error) {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
	if err != nil {
		return nil, fmt.Errorf("steg: lz4 decompress: %w", err)
	}
	return out, nil
}
