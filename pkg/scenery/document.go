// Package scenery builds the static world from map assets: collision boundaries
// from the vector paths of a map document and decoration placements from its
// markers and a height map.
//
// Document coordinates are normalized to the unit square with Y pointing down.
package scenery

import (
	"errors"

	"github.com/opd-ai/go-airboat/pkg/physics"
)

var (
	// ErrMalformedGeometry is returned for missing or non-numeric coordinates and
	// unparseable path data.
	ErrMalformedGeometry = errors.New("malformed geometry")
	// ErrMissingAsset is returned when a marker names a decoration type that the
	// catalog does not provide.
	ErrMissingAsset = errors.New("missing asset mapping")
	// ErrEmptyHeightMap is returned when decorations need heights but the source has no cells.
	ErrEmptyHeightMap = errors.New("height map has no cells")
)

// DefaultMarkerType is used for markers that do not name a type.
const DefaultMarkerType = "tree"

// Document is a parsed map document.
type Document interface {
	Paths() []Path
	Markers() []Marker
}

// Path is a curve in document coordinates that can be queried by arc length.
type Path interface {
	Length() float64
	// PointAt returns the point at arc length d from the start. d is clamped to [0, Length()].
	PointAt(d float64) physics.Vector2D
}

// Marker is a decoration anchor in document coordinates.
type Marker struct {
	Type string
	CX   float64
	CY   float64
}
