// Package core provides fundamental types shared by the game logic and the
// terminal platform. It contains no external dependencies (especially no
// Bubble Tea) to keep the physics pure and testable.
//
// All positions and sizes are in pixels; velocities are in pixels per
// millisecond (ppm), with positive x pointing right and positive y pointing
// down.
package core

import "math"

// Vec is a 2D vector, used for velocities and positions.
type Vec struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale multiplies the vector by a scalar. Scaling also scales the
// magnitude by the same factor, which is how the ball speed-up is applied.
func (v Vec) Scale(factor float64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// Len returns the magnitude of the vector.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared magnitude. Scoring uses this instead of Len to
// avoid the square root.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rotate returns the vector rotated by the given angle in degrees.
// Positive angles rotate from +x toward +y (clockwise on screen).
func (v Vec) Rotate(degrees float64) Vec {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Rect is an axis-aligned box. X and Y are the top-left corner.
// Width and height are never negative.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ContainsRect returns true if other lies entirely inside this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
