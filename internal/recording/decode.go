// Package recording decodes base64 click recordings.
package recording

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/verte-zerg/unicoord/internal/model"
)

// Entry tags and the type bytes that follow them.
const (
	TagFromCoords = "vec.fromCoords"
	TagConstant   = "constant"

	TypeDouble byte = 3
	TypeVector byte = 5
)

// Decode parses one base64 encoded recording. The first coordinate entry is
// the reference size; the remaining entries are the tracked points.
func Decode(line string) (model.Recording, error) {
	buf, err := base64.StdEncoding.DecodeString(strings.TrimSpace(line))
	if err != nil {
		return model.Recording{}, fmt.Errorf("%w: %v", ErrBase64, err)
	}
	return DecodeBytes(buf)
}

// DecodeBytes parses a raw recording buffer.
func DecodeBytes(buf []byte) (model.Recording, error) {
	r := newBinaryReader(buf)

	name, err := r.readString()
	if err != nil {
		return model.Recording{}, err
	}
	// Two header integers carry metadata the solve does not use.
	for i := 0; i < 2; i++ {
		if _, err := r.readInt32(); err != nil {
			return model.Recording{}, err
		}
	}
	numLines, err := r.readInt32()
	if err != nil {
		return model.Recording{}, err
	}
	if numLines < 1 {
		return model.Recording{}, r.fail("expected at least one coordinate entry, got %d", numLines)
	}

	size, err := readCoord(r)
	if err != nil {
		return model.Recording{}, err
	}
	points := make([]model.Vec2, 0, min(int(numLines)-1, len(buf)))
	for i := int32(1); i < numLines; i++ {
		p, err := readCoord(r)
		if err != nil {
			return model.Recording{}, err
		}
		points = append(points, p)
	}

	return model.Recording{
		Name:   name,
		Size:   size,
		Points: points,
	}, nil
}

func readCoord(r *binaryReader) (model.Vec2, error) {
	// label, always "generic.click" in exported recordings
	if _, err := r.readString(); err != nil {
		return model.Vec2{}, err
	}
	tagOffset := r.off
	tag, err := r.readString()
	if err != nil {
		return model.Vec2{}, err
	}
	switch tag {
	case TagFromCoords:
		x, err := readDoubleConstant(r)
		if err != nil {
			return model.Vec2{}, err
		}
		y, err := readDoubleConstant(r)
		if err != nil {
			return model.Vec2{}, err
		}
		return model.Vec2{X: float32(x), Y: float32(y)}, nil
	case TagConstant:
		if err := expectType(r, TypeVector); err != nil {
			return model.Vec2{}, err
		}
		x, err := r.readFloat32()
		if err != nil {
			return model.Vec2{}, err
		}
		y, err := r.readFloat32()
		if err != nil {
			return model.Vec2{}, err
		}
		return model.Vec2{X: x, Y: y}, nil
	default:
		return model.Vec2{}, newFormatError(tagOffset, "expected %s or %s but found %q", TagFromCoords, TagConstant, tag)
	}
}

func readDoubleConstant(r *binaryReader) (float64, error) {
	// marker, always "constant"
	if _, err := r.readString(); err != nil {
		return 0, err
	}
	if err := expectType(r, TypeDouble); err != nil {
		return 0, err
	}
	return r.readFloat64()
}

func expectType(r *binaryReader, want byte) error {
	offset := r.off
	got, err := r.readByte()
	if err != nil {
		return err
	}
	if got != want {
		return newFormatError(offset, "expected type byte %d, got %d", want, got)
	}
	return nil
}
