// Package coordinator turns pasted recordings into universal coordinates.
package coordinator

import (
	"strings"

	"github.com/verte-zerg/unicoord/internal/model"
	"github.com/verte-zerg/unicoord/internal/recording"
	"github.com/verte-zerg/unicoord/internal/script"
	"github.com/verte-zerg/unicoord/internal/solver"
)

// MinRecordings is the fewest recordings a solve accepts.
const MinRecordings = 3

// Result is either solved coordinates with an optional warning, or an error.
type Result struct {
	output  *script.UniversalCoordinates
	warning string
	err     error
}

func success(out *script.UniversalCoordinates, warning string) Result {
	return Result{output: out, warning: warning}
}

func failure(err error) Result {
	return Result{err: err}
}

// OK reports whether the parse succeeded.
func (r Result) OK() bool {
	return r.err == nil
}

// Output returns the solved coordinates when the parse succeeded.
func (r Result) Output() (*script.UniversalCoordinates, bool) {
	return r.output, r.err == nil
}

// Warning returns the combined warning text, empty when there is none.
func (r Result) Warning() string {
	return r.warning
}

// Err returns the failure, nil on success.
func (r Result) Err() error {
	return r.err
}

// Parse decodes newline separated base64 recordings and solves their points.
func Parse(input string) Result {
	recs, err := DecodeLines(input)
	if err != nil {
		return failure(err)
	}
	coords, err := solver.Solve(recs)
	if err != nil {
		return failure(err)
	}
	return success(script.New(coords), solver.Warnings(coords))
}

// DecodeLines validates the line count and decodes each non-empty line.
func DecodeLines(input string) ([]model.Recording, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}
	lines := SplitLines(input)
	if len(lines) < MinRecordings {
		return nil, ErrTooFewRecordings
	}
	recs := make([]model.Recording, 0, len(lines))
	for i, line := range lines {
		rec, err := recording.Decode(line)
		if err != nil {
			return nil, &DecodeError{Line: i + 1, Err: err}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// SplitLines returns the non-blank lines of input, trimmed.
func SplitLines(input string) []string {
	raw := strings.Split(input, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
