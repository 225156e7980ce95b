// Package geometry places points on a circle around a center.
//
// Angles are in degrees. 0° points along the positive x axis and, on a
// y-down surface, angles grow clockwise. Callers that want 12 o'clock as the
// origin subtract 90°.
package geometry

import "math"

// Point is an immutable pair of coordinates.
type Point struct {
	X, Y float64
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// RotatedPoint returns the offset from a center of the point lying at the
// given angle and radius.
func RotatedPoint(angle, radius float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: radius * math.Cos(rad),
		Y: radius * math.Sin(rad),
	}
}
