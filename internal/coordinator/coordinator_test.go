package coordinator

import (
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/unicoord/internal/model"
	"github.com/verte-zerg/unicoord/internal/recording"
	"github.com/verte-zerg/unicoord/internal/recording/recordingtest"
	"github.com/verte-zerg/unicoord/internal/solver"
)

func v(x, y float32) model.Vec2 {
	return model.Vec2{X: x, Y: y}
}

func exactInput() string {
	return strings.Join([]string{
		recordingtest.Encode("a", v(1, 1), v(0.75, 3), v(3, 0)),
		recordingtest.Encode("b", v(2, 1), v(1.0, 4), v(6, 0)),
		recordingtest.Encode("c", v(1, 2), v(1.25, 5), v(3, 0)),
	}, "\n")
}

func TestParseSuccess(t *testing.T) {
	res := Parse(exactInput())
	if !res.OK() {
		t.Fatalf("parse failed: %v", res.Err())
	}
	out, ok := res.Output()
	if !ok || out == nil {
		t.Fatalf("expected output")
	}
	if len(out.Coords) != 2 {
		t.Fatalf("expected 2 coords, got %d", len(out.Coords))
	}
	if res.Warning() != "" {
		t.Fatalf("expected no warning, got %q", res.Warning())
	}
	script := out.AsScript()
	if !strings.HasPrefix(script, "click(vec(width.d()*  0.250+height.d()*  0.500,") {
		t.Fatalf("unexpected script:\n%s", script)
	}
}

func TestParseToleratesBlankLinesAndCRLF(t *testing.T) {
	input := "\r\n\n" + strings.ReplaceAll(exactInput(), "\n", "\r\n\r\n  ") + "\n\n"
	res := Parse(input)
	if !res.OK() {
		t.Fatalf("parse failed: %v", res.Err())
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\r\n"} {
		res := Parse(input)
		if !errors.Is(res.Err(), ErrEmptyInput) {
			t.Fatalf("input %q: expected ErrEmptyInput, got %v", input, res.Err())
		}
		if _, ok := res.Output(); ok {
			t.Fatalf("input %q: expected no output", input)
		}
	}
}

func TestParseTooFewRecordings(t *testing.T) {
	lines := strings.Split(exactInput(), "\n")
	for _, input := range []string{lines[0], lines[0] + "\n\n" + lines[1], "garbage\nmore garbage"} {
		res := Parse(input)
		if !errors.Is(res.Err(), ErrTooFewRecordings) {
			t.Fatalf("expected ErrTooFewRecordings, got %v", res.Err())
		}
	}
	if ErrTooFewRecordings.Error() != "requires 3 or more entries" {
		t.Fatalf("unexpected message %q", ErrTooFewRecordings.Error())
	}
}

func TestParseDecodeFailureIsGeneric(t *testing.T) {
	lines := strings.Split(exactInput(), "\n")
	lines[1] = "@@not-base64@@"
	res := Parse(strings.Join(lines, "\n"))

	var de *DecodeError
	if !errors.As(res.Err(), &de) {
		t.Fatalf("expected DecodeError, got %v", res.Err())
	}
	if de.Line != 2 {
		t.Fatalf("expected line 2, got %d", de.Line)
	}
	if res.Err().Error() != "failed to parse input as list of base64 recordings" {
		t.Fatalf("unexpected message %q", res.Err().Error())
	}
	if !errors.Is(res.Err(), recording.ErrBase64) {
		t.Fatalf("expected cause to be ErrBase64")
	}
	if !strings.Contains(de.Detail(), "recording 2") {
		t.Fatalf("unexpected detail %q", de.Detail())
	}
}

func TestParseUnknownTag(t *testing.T) {
	var b recordingtest.Builder
	b.Header("bad", 1)
	b.String("generic.click")
	b.String("vec.random")
	lines := strings.Split(exactInput(), "\n")
	lines[2] = b.Base64()

	res := Parse(strings.Join(lines, "\n"))
	var fe *recording.FormatError
	if !errors.As(res.Err(), &fe) {
		t.Fatalf("expected FormatError cause, got %v", res.Err())
	}
}

func TestParsePointCountMismatch(t *testing.T) {
	input := strings.Join([]string{
		recordingtest.Encode("a", v(1, 1), v(1, 1), v(2, 2)),
		recordingtest.Encode("b", v(2, 1), v(1, 1)),
		recordingtest.Encode("c", v(1, 2), v(1, 1), v(2, 2)),
	}, "\n")
	res := Parse(input)
	if !errors.Is(res.Err(), solver.ErrPointCountMismatch) {
		t.Fatalf("expected ErrPointCountMismatch, got %v", res.Err())
	}
}

func TestParseWarningWithOutput(t *testing.T) {
	input := strings.Join([]string{
		recordingtest.Encode("a", v(1, 0), v(10, 0)),
		recordingtest.Encode("b", v(0, 1), v(0, 0)),
		recordingtest.Encode("c", v(1, 0), v(30, 0)),
		recordingtest.Encode("d", v(0, 1), v(0, 0)),
	}, "\n")
	res := Parse(input)
	if !res.OK() {
		t.Fatalf("parse failed: %v", res.Err())
	}
	if res.Warning() != "Point 1's X margin of error ± 14.14px\n" {
		t.Fatalf("unexpected warning %q", res.Warning())
	}
	if _, ok := res.Output(); !ok {
		t.Fatalf("expected output alongside warning")
	}
}

func TestParseDegenerateDoesNotFail(t *testing.T) {
	line := recordingtest.Encode("same", v(1920, 1080), v(100, 200))
	res := Parse(strings.Join([]string{line, line, line}, "\n"))
	if !res.OK() {
		t.Fatalf("expected success for degenerate input, got %v", res.Err())
	}
	out, _ := res.Output()
	if !strings.Contains(out.AsScript(), "NaN") && !strings.Contains(out.AsScript(), "Inf") {
		t.Fatalf("expected non-finite coefficients:\n%s", out.AsScript())
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines(" a \r\n\r\n\tb\n\n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected lines %q", got)
	}
}
