// Package core provides fundamental types and utilities shared by the game
// and its hosts. It has no external dependencies (especially no Bubble Tea) so
// that game logic stays pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Circle is a hitbox in world units.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// Top returns the highest y covered by the circle.
func (c Circle) Top() float64 {
	return c.Y - c.R
}

// Bottom returns the lowest y covered by the circle.
func (c Circle) Bottom() float64 {
	return c.Y + c.R
}

// Scale maps world coordinates onto a screen of a different size.
type Scale struct {
	SX, SY float64
}

// NewScale returns the scale from a worldW x worldH space onto a screenW x screenH grid.
func NewScale(worldW, worldH float64, screenW, screenH int) Scale {
	if worldW <= 0 || worldH <= 0 {
		return Scale{}
	}
	return Scale{SX: float64(screenW) / worldW, SY: float64(screenH) / worldH}
}

// X converts a world x coordinate to a screen column.
func (s Scale) X(x float64) int {
	return int(math.Floor(x * s.SX))
}

// Y converts a world y coordinate to a screen row.
func (s Scale) Y(y float64) int {
	return int(math.Floor(y * s.SY))
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
