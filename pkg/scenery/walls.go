package scenery

import (
	"fmt"

	"github.com/opd-ai/go-airboat/pkg/physics"
)

// DefaultSegments is the number of vertices each boundary is resampled to.
const DefaultSegments = 200

// DefaultWorldSize is the world-space edge length of the unit document square.
const DefaultWorldSize = 100.0

// Boundary is a closed loop of world points. The last point joins back to the first.
type Boundary struct {
	Points []physics.Vector2D
}

// Bounds returns the boundary's bounding box.
func (b Boundary) Bounds() physics.Rect {
	return physics.BoundsOf(b.Points)
}

// ChainBuilder accepts closed static chains.
type ChainBuilder interface {
	AddStaticChain(points []physics.Vector2D) error
}

// BuildWalls resamples every document path at segments equal arc-length steps and maps
// the points into a worldSize square centered on the origin, flipping Y so that
// document-up is world +Y. A non-positive segments uses DefaultSegments.
func BuildWalls(doc Document, worldSize float64, segments int) ([]Boundary, error) {
	if segments <= 0 {
		segments = DefaultSegments
	}
	if segments < 3 {
		return nil, fmt.Errorf("%w: %d segments cannot enclose an area", ErrMalformedGeometry, segments)
	}

	paths := doc.Paths()
	walls := make([]Boundary, 0, len(paths))
	for i, path := range paths {
		length := path.Length()
		if !(length > 0) {
			return nil, fmt.Errorf("%w: path %d has length %g", ErrMalformedGeometry, i, length)
		}
		points := make([]physics.Vector2D, segments)
		for j := range points {
			pt := path.PointAt(float64(j) * length / float64(segments))
			points[j] = physics.Vector2D{
				X: (pt.X - 0.5) * worldSize,
				Y: (0.5 - pt.Y) * worldSize,
			}
		}
		walls = append(walls, Boundary{Points: points})
	}
	return walls, nil
}

// AddWalls registers every boundary as a static chain.
func AddWalls(world ChainBuilder, walls []Boundary) error {
	for i, wall := range walls {
		if err := world.AddStaticChain(wall.Points); err != nil {
			return fmt.Errorf("wall %d: %w", i, err)
		}
	}
	return nil
}

// BoundsOfWalls returns the bounding box covering every boundary.
func BoundsOfWalls(walls []Boundary) physics.Rect {
	var bounds physics.Rect
	for i, wall := range walls {
		if i == 0 {
			bounds = wall.Bounds()
			continue
		}
		bounds = bounds.Union(wall.Bounds())
	}
	return bounds
}
