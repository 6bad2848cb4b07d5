package scenery

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-airboat/pkg/validation"
)

// Placement defaults.
const (
	DefaultHeightMapOffset = 0.15
	DefaultSurfaceMargin   = 0.05
	DefaultDecorationScale = 0.6
)

// Decoration describes how instances of one type are placed.
type Decoration struct {
	Scale float64
}

// Catalog maps decoration types to their placement parameters.
type Catalog map[string]Decoration

// NewCatalog creates a catalog giving every type the same scale.
func NewCatalog(scale float64, types ...string) Catalog {
	c := make(Catalog, len(types))
	for _, t := range types {
		c[t] = Decoration{Scale: scale}
	}
	return c
}

// Has reports whether the catalog provides typ.
func (c Catalog) Has(typ string) bool {
	_, ok := c[typ]
	return ok
}

// Placement is one decoration instance in the 3-D scene.
type Placement struct {
	Type      string
	Position  mgl64.Vec3
	RotationY float64
	Scale     float64
}

// Placements groups instances by decoration type, in first-seen order.
type Placements struct {
	order  []string
	byType map[string][]Placement
}

func newPlacements() *Placements {
	return &Placements{byType: make(map[string][]Placement)}
}

func (p *Placements) add(pl Placement) {
	if _, ok := p.byType[pl.Type]; !ok {
		p.order = append(p.order, pl.Type)
	}
	p.byType[pl.Type] = append(p.byType[pl.Type], pl)
}

// Types returns the decoration types present, in first-seen order.
func (p *Placements) Types() []string {
	return p.order
}

// Count returns the number of instances of typ.
func (p *Placements) Count(typ string) int {
	return len(p.byType[typ])
}

// Of returns the instances of typ.
func (p *Placements) Of(typ string) []Placement {
	return p.byType[typ]
}

// Len returns the total number of instances.
func (p *Placements) Len() int {
	n := 0
	for _, list := range p.byType {
		n += len(list)
	}
	return n
}

// PlacementOptions controls how markers become placements.
type PlacementOptions struct {
	WorldSize       float64
	HeightMapOffset float64
	SurfaceMargin   float64
	// Rand draws rotations. Nil uses a fixed-seed source.
	Rand *rand.Rand
}

// DefaultPlacementOptions returns the standard world size and height offsets.
func DefaultPlacementOptions() PlacementOptions {
	return PlacementOptions{
		WorldSize:       DefaultWorldSize,
		HeightMapOffset: DefaultHeightMapOffset,
		SurfaceMargin:   DefaultSurfaceMargin,
	}
}

// PlaceInstances turns every marker into a placement. Every marker type must be in
// the catalog; otherwise nothing is placed and ErrMissingAsset lists the missing types.
func PlaceInstances(doc Document, heights HeightSource, catalog Catalog, opts PlacementOptions) (*Placements, error) {
	markers := doc.Markers()

	types := make([]string, len(markers))
	for i, m := range markers {
		types[i] = m.Type
	}
	if missing := validation.MissingKeys(types, catalog.Has); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, strings.Join(missing, ", "))
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}

	placements := newPlacements()
	for i, m := range markers {
		if err := validateMarker(m); err != nil {
			return nil, fmt.Errorf("marker %d: %w", i, err)
		}
		sample, err := SampleHeight(heights, m.CX, m.CY)
		if err != nil {
			return nil, fmt.Errorf("marker %d: %w", i, err)
		}
		placements.add(Placement{
			Type: m.Type,
			Position: mgl64.Vec3{
				(m.CX - 0.5) * opts.WorldSize,
				sample - opts.HeightMapOffset - opts.SurfaceMargin,
				(m.CY - 0.5) * opts.WorldSize,
			},
			RotationY: rng.Float64() * 2 * math.Pi,
			Scale:     catalog[m.Type].Scale,
		})
	}
	return placements, nil
}

func validateMarker(m Marker) error {
	if err := validation.ValidateNormalized("cx", m.CX); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedGeometry, err)
	}
	if err := validation.ValidateNormalized("cy", m.CY); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedGeometry, err)
	}
	return nil
}
