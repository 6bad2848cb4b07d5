// pkg/physics/collision.go
package physics

import "math"

// Rect represents a rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// Contains reports whether point lies inside the rectangle. The max edges are exclusive.
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// Min returns the lower-left corner.
func (r Rect) Min() Vector2D {
	return Vector2D{X: r.Center.X - r.Width/2, Y: r.Center.Y - r.Height/2}
}

// Max returns the upper-right corner.
func (r Rect) Max() Vector2D {
	return Vector2D{X: r.Center.X + r.Width/2, Y: r.Center.Y + r.Height/2}
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	lo, hi := r.Min(), r.Max()
	olo, ohi := other.Min(), other.Max()
	return rectFromCorners(
		Vector2D{X: math.Min(lo.X, olo.X), Y: math.Min(lo.Y, olo.Y)},
		Vector2D{X: math.Max(hi.X, ohi.X), Y: math.Max(hi.Y, ohi.Y)},
	)
}

// BoundsOf returns the axis-aligned bounding box of points. An empty slice yields the zero Rect.
func BoundsOf(points []Vector2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return rectFromCorners(lo, hi)
}

func rectFromCorners(lo, hi Vector2D) Rect {
	return Rect{
		Center: lo.Add(hi).Scale(0.5),
		Width:  hi.X - lo.X,
		Height: hi.Y - lo.Y,
	}
}
