// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box of screen cells.
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

// Point is a point of a projected 2D outline.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the z component of the cross product p x q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// SignedArea returns twice the signed area of the closed polygon pts.
// Counter-clockwise outlines are positive, clockwise ones negative.
func SignedArea(pts []Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	area := 0.0
	for i := 0; i < len(pts)-1; i++ {
		area += pts[i].Cross(pts[i+1])
	}
	area += pts[len(pts)-1].Cross(pts[0])
	return area
}

// PointInPolygon reports whether p lies inside the closed polygon pts
// using even-odd crossings of the ray going from p towards -X.
// The result does not depend on which vertex the cycle starts at.
func PointInPolygon(p Point, pts []Point) bool {
	if len(pts) < 3 {
		return false
	}
	winding := 0
	take := func(a, b Point) {
		a, b = a.Sub(p), b.Sub(p)
		if (a.Y <= 0) == (b.Y <= 0) {
			return
		}
		// x where segment a-b crosses the horizontal through p
		x := b.X + (a.X-b.X)*b.Y/(b.Y-a.Y)
		if x < 1e-6 {
			winding++
		}
	}
	for i := 1; i < len(pts); i++ {
		take(pts[i-1], pts[i])
	}
	take(pts[len(pts)-1], pts[0])
	return winding&1 == 1
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
