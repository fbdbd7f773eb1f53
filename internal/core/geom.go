// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
// Used by the screen buffer for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units (pixels).
// Y grows downward, matching screen orientation.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// NewBox creates a box with the given position and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// MidY returns the vertical midpoint.
func (b Box) MidY() float64 {
	return b.Y + b.Height/2
}

// OverlapsX reports whether the two boxes share any horizontal span.
// Touching edges do not count.
func (b Box) OverlapsX(other Box) bool {
	return b.X < other.Right() && other.X < b.Right()
}

// Intersects returns true if this box overlaps with another.
// Standard AABB test; touching edges do not count.
func (b Box) Intersects(other Box) bool {
	if !b.OverlapsX(other) {
		return false
	}
	return b.Y < other.Bottom() && other.Y < b.Bottom()
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CenterDist returns the distance between the centers of two boxes.
func CenterDist(a, b Box) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return Dist(ax, ay, bx, by)
}

// ClampF restricts a float64 value to be within [min, max].
// If max < min, min wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
