package recording

import (
	"encoding/binary"
	"io"
	"math"
)

// maxStringLen caps length prefixes read from untrusted input.
const maxStringLen = 1 << 20

type binaryReader struct {
	buf []byte
	off int
}

func newBinaryReader(buf []byte) *binaryReader {
	return &binaryReader{buf: buf}
}

func (r *binaryReader) readBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, r.fail("negative length %d", n)
	}
	if len(r.buf)-r.off < n {
		return nil, r.wrap(io.ErrUnexpectedEOF)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *binaryReader) readByte() (byte, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *binaryReader) readInt32() (int32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (r *binaryReader) readFloat32() (float32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func (r *binaryReader) readFloat64() (float64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// read7BitInt reads the variable-length length prefix used by .NET
// BinaryWriter: seven bits per byte, low group first, high bit continues.
func (r *binaryReader) read7BitInt() (int, error) {
	var result uint32
	for shift := uint(0); shift < 35; shift += 7 {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			if result > math.MaxInt32 {
				return 0, r.fail("string length %d overflows", result)
			}
			return int(result), nil
		}
	}
	return 0, r.fail("bad 7-bit encoded length")
}

func (r *binaryReader) readString() (string, error) {
	start := r.off
	n, err := r.read7BitInt()
	if err != nil {
		return "", err
	}
	if n > maxStringLen {
		return "", &FormatError{Offset: start, Reason: "string too long"}
	}
	b, err := r.readBytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *binaryReader) fail(format string, args ...any) error {
	return newFormatError(r.off, format, args...)
}

func (r *binaryReader) wrap(err error) error {
	return &FormatError{Offset: r.off, Reason: "truncated input", Err: err}
}
