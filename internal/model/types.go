// Package model defines shared data structures.
package model

import "math"

// Vec2 is a pair of single-precision coordinates.
type Vec2 struct {
	X float32
	Y float32
}

// Add returns the componentwise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the componentwise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the componentwise product.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Sqrt returns the componentwise square root. Negative components yield NaN.
func (v Vec2) Sqrt() Vec2 {
	return Vec2{
		X: float32(math.Sqrt(float64(v.X))),
		Y: float32(math.Sqrt(float64(v.Y))),
	}
}

// Recording is one decoded click recording.
type Recording struct {
	// Name is the script name stored in the recording header.
	Name   string
	Size   Vec2
	Points []Vec2
}

// UniversalCoord holds the solved width/height weights for one point.
type UniversalCoord struct {
	W     Vec2
	H     Vec2
	Error Vec2
}

// ScriptConfig defines how generated scripts are rendered.
type ScriptConfig struct {
	Macro    bool
	Indent   string
	IndexVar string
}
