package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a world-space position.
type Point = r2.Vec

// Pt is shorthand for building a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Within reports whether a and b are at most radius apart.
func Within(a, b Point, radius float64) bool {
	return r2.Norm2(r2.Sub(a, b)) <= radius*radius
}

// SegmentDistance returns the distance from p to the segment a-b.
func SegmentDistance(p, a, b Point) float64 {
	v := r2.Sub(b, a)
	w := r2.Sub(p, a)
	c1 := r2.Dot(v, w)
	if c1 <= 0 {
		return r2.Norm(w)
	}
	c2 := r2.Dot(v, v)
	if c2 <= c1 {
		return Distance(p, b)
	}
	proj := r2.Add(a, r2.Scale(c1/c2, v))
	return Distance(p, proj)
}

// PolylineDistance returns the distance from p to the closest segment of
// the polyline. A single-point polyline is measured to its only point.
func PolylineDistance(p Point, pts []Point) float64 {
	switch len(pts) {
	case 0:
		return math.Inf(1)
	case 1:
		return Distance(p, pts[0])
	}
	best := math.Inf(1)
	for i := 0; i+1 < len(pts); i++ {
		if d := SegmentDistance(p, pts[i], pts[i+1]); d < best {
			best = d
		}
	}
	return best
}

// SnapToGrid rounds p to the nearest multiple of grid on both axes.
// A non-positive grid is treated as 1.
func SnapToGrid(p Point, grid float64) Point {
	if grid <= 0 {
		grid = 1
	}
	return Point{
		X: math.Round(p.X/grid) * grid,
		Y: math.Round(p.Y/grid) * grid,
	}
}

// FormatPoint renders p as "x,y" with trailing zeros dropped.
func FormatPoint(p Point) string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Min  Point
	Size Point
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Min.X+r.Size.X &&
		p.Y >= r.Min.Y && p.Y <= r.Min.Y+r.Size.Y
}
