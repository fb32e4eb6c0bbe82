package recording

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/verte-zerg/unicoord/internal/model"
	"github.com/verte-zerg/unicoord/internal/recording/recordingtest"
)

func TestDecodeRoundTrip(t *testing.T) {
	size := model.Vec2{X: 1920, Y: 1080}
	points := []model.Vec2{{X: 12.5, Y: 40.25}, {X: 960.125, Y: 0.1}}
	line := recordingtest.Encode("towers", size, points...)

	rec, err := Decode(line)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Name != "towers" {
		t.Fatalf("expected name towers, got %q", rec.Name)
	}
	if rec.Size != size {
		t.Fatalf("expected size %+v, got %+v", size, rec.Size)
	}
	if len(rec.Points) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(rec.Points))
	}
	for i, p := range points {
		if rec.Points[i] != p {
			t.Fatalf("point %d: expected %+v, got %+v", i, p, rec.Points[i])
		}
	}
}

func TestDecodeNarrowsDoubles(t *testing.T) {
	sx, sy := 0.1, 1e-3
	px, py := 123.456789, -7.25
	var b recordingtest.Builder
	b.Header("", 2)
	b.FromCoords(sx, sy)
	b.FromCoords(px, py)

	rec, err := DecodeBytes(b.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Size != (model.Vec2{X: float32(sx), Y: float32(sy)}) {
		t.Fatalf("unexpected size %+v", rec.Size)
	}
	if rec.Points[0] != (model.Vec2{X: float32(px), Y: float32(py)}) {
		t.Fatalf("unexpected point %+v", rec.Points[0])
	}
}

func TestDecodeSizeOnly(t *testing.T) {
	rec, err := Decode(recordingtest.Encode("empty", model.Vec2{X: 3, Y: 4}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rec.Points) != 0 {
		t.Fatalf("expected no points, got %d", len(rec.Points))
	}
}

func TestDecodeLongName(t *testing.T) {
	name := strings.Repeat("n", 300)
	rec, err := Decode(recordingtest.Encode(name, model.Vec2{X: 1, Y: 1}, model.Vec2{X: 2, Y: 2}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Name != name {
		t.Fatalf("expected %d byte name, got %d", len(name), len(rec.Name))
	}
}

func TestDecodeInvalidBase64(t *testing.T) {
	_, err := Decode("not base64!!")
	if !errors.Is(err, ErrBase64) {
		t.Fatalf("expected ErrBase64, got %v", err)
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	var b recordingtest.Builder
	b.Header("x", 1)
	b.String("generic.click")
	b.String("vec.polar")

	_, err := DecodeBytes(b.Bytes())
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if !strings.Contains(err.Error(), `"vec.polar"`) {
		t.Fatalf("expected error to name the tag, got %q", err.Error())
	}
}

func TestDecodeWrongTypeByte(t *testing.T) {
	var b recordingtest.Builder
	b.Header("x", 1)
	b.String("generic.click")
	b.String("constant")
	b.Byte(3)
	b.Float32(1)
	b.Float32(2)

	_, err := DecodeBytes(b.Bytes())
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if !strings.Contains(fe.Reason, "expected type byte 5, got 3") {
		t.Fatalf("unexpected reason %q", fe.Reason)
	}
}

func TestDecodeTruncated(t *testing.T) {
	var b recordingtest.Builder
	b.Header("x", 2)
	b.Constant(1, 2)
	b.String("generic.click")
	b.String("constant")
	b.Byte(5)
	b.Float32(1)

	_, err := DecodeBytes(b.Bytes())
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected truncation error, got %v", err)
	}
}

func TestDecodeRejectsNoEntries(t *testing.T) {
	var b recordingtest.Builder
	b.Header("x", 0)

	_, err := DecodeBytes(b.Bytes())
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestDecodeEmptyBuffer(t *testing.T) {
	if _, err := DecodeBytes(nil); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected truncation error, got %v", err)
	}
}
