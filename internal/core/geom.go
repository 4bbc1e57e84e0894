// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Circle is the base shape of every blob in the world.
// World coordinates are floats; a zero radius marks an inert entity.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Alive reports whether the circle still takes part in collisions and rendering.
func (c Circle) Alive() bool {
	return c.Radius > 0
}

// Top returns the topmost y extent of the circle.
func (c Circle) Top() float64 {
	return c.Y - c.Radius
}

// Distance returns the Euclidean distance between two circle centers.
func Distance(a, b Circle) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Overlap returns radius_sum - centerDistance. Positive means the circles overlap.
func Overlap(a, b Circle) float64 {
	return a.Radius + b.Radius - Distance(a, b)
}

// CirclesOverlap reports whether two live circles intersect.
func CirclesOverlap(a, b Circle) bool {
	if a.Radius <= 0 || b.Radius <= 0 {
		return false
	}
	return Overlap(a, b) > 0
}

// CircleInRect reports whether the circle intersects the rectangle
// [x, x+w] x [y, y+h]. The closest point of the rectangle to the circle
// center must be strictly within the radius. Degenerate rectangles never
// intersect.
func CircleInRect(c Circle, x, y, w, h float64) bool {
	if w <= 0 || h <= 0 || c.Radius <= 0 {
		return false
	}
	nearX := ClampF(c.X, x, x+w)
	nearY := ClampF(c.Y, y, y+h)
	dx := c.X - nearX
	dy := c.Y - nearY
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the result is max.
func ClampF(val, min, max float64) float64 {
	return math.Min(math.Max(val, min), max)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Rect is an axis-aligned cell rectangle on a Screen.
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
