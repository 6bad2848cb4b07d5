package scenery

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/opd-ai/go-airboat/pkg/physics"
	"github.com/opd-ai/go-airboat/pkg/validation"
)

// SVGDocument is a Document read from SVG markup. Every <path> becomes a Path and
// every <circle> a Marker whose type comes from its data-object attribute.
type SVGDocument struct {
	paths   []Path
	markers []Marker
}

func (d *SVGDocument) Paths() []Path     { return d.paths }
func (d *SVGDocument) Markers() []Marker { return d.markers }

// ParseSVG reads an SVG document. Paths with missing or unparseable data and circles
// with missing or non-numeric centers fail with ErrMalformedGeometry.
func ParseSVG(r io.Reader) (*SVGDocument, error) {
	doc := &SVGDocument{}
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var paths, circles int
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read svg: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "path":
			path, err := newSVGPath(attr(start, "d"))
			if err != nil {
				return nil, fmt.Errorf("path %d: %w", paths, err)
			}
			doc.paths = append(doc.paths, path)
			paths++
		case "circle":
			marker, err := parseMarker(start)
			if err != nil {
				return nil, fmt.Errorf("circle %d: %w", circles, err)
			}
			doc.markers = append(doc.markers, marker)
			circles++
		}
	}
	return doc, nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func parseMarker(el xml.StartElement) (Marker, error) {
	cx, err := validation.ParseNumber("cx", attr(el, "cx"))
	if err != nil {
		return Marker{}, fmt.Errorf("%w: %w", ErrMalformedGeometry, err)
	}
	cy, err := validation.ParseNumber("cy", attr(el, "cy"))
	if err != nil {
		return Marker{}, fmt.Errorf("%w: %w", ErrMalformedGeometry, err)
	}
	typ := attr(el, "data-object")
	if typ == "" {
		typ = DefaultMarkerType
	}
	return Marker{Type: typ, CX: cx, CY: cy}, nil
}

// svgPath is a flattened path. Each subpath is a separate line string; arc length
// runs through them in order, jumping across move-to gaps.
type svgPath struct {
	subpaths []geom.LineString
	lengths  []float64
	total    float64
}

func newSVGPath(data string) (*svgPath, error) {
	polylines, err := parsePathData(data)
	if err != nil {
		return nil, err
	}

	p := &svgPath{}
	for _, pts := range polylines {
		if len(pts) < 2 {
			continue
		}
		flat := make([]float64, 0, 2*len(pts))
		for _, pt := range pts {
			flat = append(flat, pt.X, pt.Y)
		}
		ls, err := geom.NewLineString(geom.NewSequence(flat, geom.DimXY))
		if err != nil {
			continue
		}
		length := ls.Length()
		if length == 0 || math.IsNaN(length) {
			continue
		}
		p.subpaths = append(p.subpaths, ls)
		p.lengths = append(p.lengths, length)
		p.total += length
	}
	if p.total == 0 {
		return nil, fmt.Errorf("%w: path %q has zero length", ErrMalformedGeometry, data)
	}
	return p, nil
}

func (p *svgPath) Length() float64 {
	return p.total
}

func (p *svgPath) PointAt(d float64) physics.Vector2D {
	d = math.Max(0, math.Min(p.total, d))
	last := len(p.subpaths) - 1
	for i, ls := range p.subpaths {
		if d > p.lengths[i] && i < last {
			d -= p.lengths[i]
			continue
		}
		xy, ok := ls.InterpolatePoint(math.Min(1, d/p.lengths[i])).XY()
		if !ok {
			break
		}
		return physics.Vector2D{X: xy.X, Y: xy.Y}
	}
	return physics.Vector2D{}
}
