// Package solver fits recorded points to width/height weights.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/unicoord/internal/model"
)

// WarnThreshold is the residual error, in pixels, above which a point is reported.
const WarnThreshold = 8.0

var (
	// ErrNoRecordings indicates there is nothing to solve.
	ErrNoRecordings = errors.New("no recordings")
	// ErrPointCountMismatch indicates recordings disagree on point count.
	ErrPointCountMismatch = errors.New("not all recordings have the same number of points")
)

// Align returns the point count shared by all recordings.
func Align(recs []model.Recording) (int, error) {
	if len(recs) == 0 {
		return 0, ErrNoRecordings
	}
	n := len(recs[0].Points)
	for _, r := range recs[1:] {
		if len(r.Points) != n {
			return 0, ErrPointCountMismatch
		}
	}
	return n, nil
}

// Solve fits each point index across all recordings to
// point = size.X*W + size.Y*H and reports the residual error per axis.
// A singular system (all sizes proportional) yields NaN/Inf coefficients.
func Solve(recs []model.Recording) ([]model.UniversalCoord, error) {
	n, err := Align(recs)
	if err != nil {
		return nil, err
	}
	coords := make([]model.UniversalCoord, 0, n)
	for i := 0; i < n; i++ {
		coords = append(coords, solvePoint(recs, i))
	}
	return coords, nil
}

func solvePoint(recs []model.Recording, i int) model.UniversalCoord {
	var a1, a2, b, c model.Vec2
	var ratio float32
	for _, r := range recs {
		size := r.Size
		point := r.Points[i]

		ratio += size.X * size.Y
		c = c.Add(size.Mul(size))

		a1 = a1.Add(point.Scale(size.X))
		a2 = a2.Add(point.Scale(size.Y))
		b = b.Add(point.Mul(point))
	}

	// Round each product before subtracting so identical sizes give exactly zero.
	determinant := float32(c.X*c.Y) - float32(ratio*ratio)
	w := a1.Scale(c.Y).Sub(a2.Scale(ratio)).Div(determinant)
	h := a2.Scale(c.X).Sub(a1.Scale(ratio)).Div(determinant)
	// Normalized by the 1-based point index, not the sample count.
	errSq := b.Sub(a1.Mul(w)).Sub(a2.Mul(h)).Div(float32(i + 1))

	return model.UniversalCoord{W: w, H: h, Error: errSq.Sqrt()}
}

// Warnings lists every point whose residual error exceeds WarnThreshold.
// It returns an empty string when all points are within the threshold.
func Warnings(coords []model.UniversalCoord) string {
	var b strings.Builder
	for i, c := range coords {
		if c.Error.X > WarnThreshold {
			b.WriteString(warningLine(i, "X", c.Error.X))
		}
		if c.Error.Y > WarnThreshold {
			b.WriteString(warningLine(i, "Y", c.Error.Y))
		}
	}
	return b.String()
}

func warningLine(index int, axis string, err float32) string {
	return fmt.Sprintf("Point %d's %s margin of error ± %.2fpx\n", index+1, axis, err)
}
