// Package recordingtest builds binary recordings for tests.
package recordingtest

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"math"

	"github.com/verte-zerg/unicoord/internal/model"
)

// Entry is one coordinate entry of a recording.
type Entry struct {
	Coord model.Vec2
	// Double writes the entry as vec.fromCoords with float64 components
	// instead of a float32 constant vector.
	Double bool
}

// Builder writes the binary recording layout.
type Builder struct {
	buf bytes.Buffer
}

// Encode returns the base64 text of a recording with the given size and points.
// Size is written as a double entry, points as constant vectors.
func Encode(name string, size model.Vec2, points ...model.Vec2) string {
	entries := make([]Entry, 0, len(points)+1)
	entries = append(entries, Entry{Coord: size, Double: true})
	for _, p := range points {
		entries = append(entries, Entry{Coord: p})
	}
	return EncodeEntries(name, entries)
}

// EncodeEntries returns the base64 text of a recording made of entries.
func EncodeEntries(name string, entries []Entry) string {
	var b Builder
	b.Header(name, int32(len(entries)))
	for _, e := range entries {
		if e.Double {
			b.FromCoords(float64(e.Coord.X), float64(e.Coord.Y))
		} else {
			b.Constant(e.Coord.X, e.Coord.Y)
		}
	}
	return b.Base64()
}

// Header writes the script name, the two unused header integers and the entry count.
func (b *Builder) Header(name string, numLines int32) {
	b.String(name)
	b.Int32(1)
	b.Int32(0)
	b.Int32(numLines)
}

// FromCoords writes a vec.fromCoords entry.
func (b *Builder) FromCoords(x, y float64) {
	b.String("generic.click")
	b.String("vec.fromCoords")
	b.String("constant")
	b.Byte(3)
	b.Float64(x)
	b.String("constant")
	b.Byte(3)
	b.Float64(y)
}

// Constant writes a constant vector entry.
func (b *Builder) Constant(x, y float32) {
	b.String("generic.click")
	b.String("constant")
	b.Byte(5)
	b.Float32(x)
	b.Float32(y)
}

// String writes a 7-bit length prefixed string.
func (b *Builder) String(s string) {
	n := uint32(len(s))
	for n >= 0x80 {
		b.buf.WriteByte(byte(n) | 0x80)
		n >>= 7
	}
	b.buf.WriteByte(byte(n))
	b.buf.WriteString(s)
}

// Byte writes a single byte.
func (b *Builder) Byte(v byte) {
	b.buf.WriteByte(v)
}

// Int32 writes a little-endian int32.
func (b *Builder) Int32(v int32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	b.buf.Write(tmp[:])
}

// Float32 writes a little-endian float32.
func (b *Builder) Float32(v float32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	b.buf.Write(tmp[:])
}

// Float64 writes a little-endian float64.
func (b *Builder) Float64(v float64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	b.buf.Write(tmp[:])
}

// Bytes returns the raw buffer.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// Base64 returns the buffer in standard base64.
func (b *Builder) Base64() string {
	return base64.StdEncoding.EncodeToString(b.buf.Bytes())
}
