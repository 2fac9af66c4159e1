// Package geometry holds the 2D primitives shared by the vectorizer,
// the shape generators, and the DXF analyzer.
package geometry

import "math"

// Point is a 2D point in millimeters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Segment is a straight line between two points. No curvature.
type Segment struct {
	Start Point
	End   Point
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// Scale returns the segment scaled by factor around the origin.
func (s Segment) Scale(factor float64) Segment {
	return Segment{
		Start: Point{X: s.Start.X * factor, Y: s.Start.Y * factor},
		End:   Point{X: s.End.X * factor, Y: s.End.Y * factor},
	}
}

// Translate returns the segment shifted by (dx, dy).
func (s Segment) Translate(dx, dy float64) Segment {
	return Segment{
		Start: Point{X: s.Start.X + dx, Y: s.Start.Y + dy},
		End:   Point{X: s.End.X + dx, Y: s.End.Y + dy},
	}
}

// BoundingBox is an axis-aligned rectangle around a set of points.
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Area returns width times height.
func (b BoundingBox) Area() float64 { return b.Width() * b.Height() }

// BoundsOf computes the bounding box of the given points.
// Returns the zero box for an empty slice.
func BoundsOf(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Centroid returns the average of the given points, or the zero point
// for an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}
}
