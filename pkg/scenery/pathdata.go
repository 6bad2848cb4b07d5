package scenery

import (
	"fmt"
	"math"
	"strconv"

	"github.com/opd-ai/go-airboat/pkg/physics"
)

// curveSteps is the number of line segments each curve or arc is flattened into.
const curveSteps = 16

// parsePathData flattens SVG path data into polylines, one per subpath.
// All commands are supported, absolute and relative.
func parsePathData(data string) ([][]physics.Vector2D, error) {
	sc := &pathScanner{s: data}
	b := &polylineBuilder{}

	var cmd byte
	started := false
	for {
		sc.skipSeparators()
		if sc.done() {
			break
		}
		if c, ok := sc.command(); ok {
			cmd = c
		} else if cmd == 0 {
			return nil, sc.errorf("expected command")
		}
		if !started && cmd != 'M' && cmd != 'm' {
			return nil, sc.errorf("path data must begin with a moveto")
		}
		started = true

		if err := b.apply(sc, cmd); err != nil {
			return nil, err
		}
		// implicit repeats of a moveto are linetos
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		case 'Z', 'z':
			cmd = 0
		}
	}
	if len(b.polylines) == 0 && len(b.current) == 0 {
		return nil, fmt.Errorf("%w: empty path data", ErrMalformedGeometry)
	}
	return b.finish(), nil
}

type polylineBuilder struct {
	polylines [][]physics.Vector2D
	current   []physics.Vector2D

	pen, start physics.Vector2D
	// ctrl is the last control point of a curve, for smooth continuations.
	ctrl     physics.Vector2D
	lastKind byte
}

func (b *polylineBuilder) apply(sc *pathScanner, cmd byte) error {
	rel := cmd >= 'a'
	origin := physics.Vector2D{}
	if rel {
		origin = b.pen
	}
	point := func() (physics.Vector2D, error) {
		x, err := sc.number()
		if err != nil {
			return physics.Vector2D{}, err
		}
		y, err := sc.number()
		if err != nil {
			return physics.Vector2D{}, err
		}
		return origin.Add(physics.Vector2D{X: x, Y: y}), nil
	}

	kind := cmd &^ 0x20 // upper case
	switch kind {
	case 'M':
		p, err := point()
		if err != nil {
			return err
		}
		b.flush()
		b.start = p
		b.lineTo(p)
	case 'L':
		p, err := point()
		if err != nil {
			return err
		}
		b.lineTo(p)
	case 'H':
		x, err := sc.number()
		if err != nil {
			return err
		}
		b.lineTo(physics.Vector2D{X: origin.X + x, Y: b.pen.Y})
	case 'V':
		y, err := sc.number()
		if err != nil {
			return err
		}
		b.lineTo(physics.Vector2D{X: b.pen.X, Y: origin.Y + y})
	case 'C', 'S':
		var c1 physics.Vector2D
		if kind == 'S' {
			c1 = b.reflectedControl('C')
		} else {
			p, err := point()
			if err != nil {
				return err
			}
			c1 = p
		}
		c2, err := point()
		if err != nil {
			return err
		}
		end, err := point()
		if err != nil {
			return err
		}
		b.cubicTo(c1, c2, end)
		b.ctrl, b.lastKind = c2, 'C'
		return nil
	case 'Q', 'T':
		var c physics.Vector2D
		if kind == 'T' {
			c = b.reflectedControl('Q')
		} else {
			p, err := point()
			if err != nil {
				return err
			}
			c = p
		}
		end, err := point()
		if err != nil {
			return err
		}
		b.quadTo(c, end)
		b.ctrl, b.lastKind = c, 'Q'
		return nil
	case 'A':
		rx, err := sc.number()
		if err != nil {
			return err
		}
		ry, err := sc.number()
		if err != nil {
			return err
		}
		rotation, err := sc.number()
		if err != nil {
			return err
		}
		large, err := sc.flag()
		if err != nil {
			return err
		}
		sweep, err := sc.flag()
		if err != nil {
			return err
		}
		end, err := point()
		if err != nil {
			return err
		}
		b.arcTo(rx, ry, rotation, large, sweep, end)
	case 'Z':
		if b.pen != b.start {
			b.lineTo(b.start)
		}
		b.pen = b.start
	default:
		return sc.errorf("unknown command %q", cmd)
	}
	b.lastKind = kind
	return nil
}

func (b *polylineBuilder) reflectedControl(kind byte) physics.Vector2D {
	if b.lastKind != kind {
		return b.pen
	}
	return b.pen.Scale(2).Sub(b.ctrl)
}

func (b *polylineBuilder) lineTo(p physics.Vector2D) {
	b.current = append(b.current, p)
	b.pen = p
}

func (b *polylineBuilder) cubicTo(c1, c2, end physics.Vector2D) {
	p0 := b.pen
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		p := p0.Scale(u * u * u).
			Add(c1.Scale(3 * u * u * t)).
			Add(c2.Scale(3 * u * t * t)).
			Add(end.Scale(t * t * t))
		b.lineTo(p)
	}
	b.pen = end
}

func (b *polylineBuilder) quadTo(c, end physics.Vector2D) {
	p0 := b.pen
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		b.lineTo(p0.Scale(u * u).Add(c.Scale(2 * u * t)).Add(end.Scale(t * t)))
	}
	b.pen = end
}

// arcTo flattens an elliptical arc using the endpoint-to-center conversion.
func (b *polylineBuilder) arcTo(rx, ry, rotationDeg float64, large, sweep bool, end physics.Vector2D) {
	p0 := b.pen
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || p0 == end {
		b.lineTo(end)
		return
	}

	phi := rotationDeg * math.Pi / 180
	cos, sin := math.Cos(phi), math.Sin(phi)
	half := p0.Sub(end).Scale(0.5)
	x1 := cos*half.X + sin*half.Y
	y1 := -sin*half.X + cos*half.Y

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx
	mid := p0.Add(end).Scale(0.5)
	center := physics.Vector2D{X: cos*cxp - sin*cyp + mid.X, Y: sin*cxp + cos*cyp + mid.Y}

	u := physics.Vector2D{X: (x1 - cxp) / rx, Y: (y1 - cyp) / ry}
	v := physics.Vector2D{X: (-x1 - cxp) / rx, Y: (-y1 - cyp) / ry}
	theta := u.Angle()
	delta := math.Atan2(u.X*v.Y-u.Y*v.X, u.Dot(v))
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	for i := 1; i < curveSteps; i++ {
		t := theta + delta*float64(i)/curveSteps
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		b.lineTo(physics.Vector2D{X: cos*ex - sin*ey + center.X, Y: sin*ex + cos*ey + center.Y})
	}
	b.lineTo(end)
}

func (b *polylineBuilder) flush() {
	if len(b.current) > 0 {
		b.polylines = append(b.polylines, b.current)
	}
	b.current = nil
}

func (b *polylineBuilder) finish() [][]physics.Vector2D {
	b.flush()
	return b.polylines
}

type pathScanner struct {
	s   string
	pos int
}

func (sc *pathScanner) done() bool {
	return sc.pos >= len(sc.s)
}

func (sc *pathScanner) skipSeparators() {
	for !sc.done() {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *pathScanner) command() (byte, bool) {
	c := sc.s[sc.pos]
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		sc.pos++
		return c, true
	}
	return 0, false
}

// number reads one number in SVG syntax, where "0.5-1" and ".5.5" are two numbers each.
func (sc *pathScanner) number() (float64, error) {
	sc.skipSeparators()
	start := sc.pos
	if !sc.done() && (sc.s[sc.pos] == '+' || sc.s[sc.pos] == '-') {
		sc.pos++
	}
	digits := sc.digits()
	if !sc.done() && sc.s[sc.pos] == '.' {
		sc.pos++
		digits += sc.digits()
	}
	if digits == 0 {
		sc.pos = start
		return 0, sc.errorf("expected number")
	}
	if !sc.done() && (sc.s[sc.pos] == 'e' || sc.s[sc.pos] == 'E') {
		mark := sc.pos
		sc.pos++
		if !sc.done() && (sc.s[sc.pos] == '+' || sc.s[sc.pos] == '-') {
			sc.pos++
		}
		if sc.digits() == 0 {
			sc.pos = mark
		}
	}
	v, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, sc.errorf("bad number %q", sc.s[start:sc.pos])
	}
	return v, nil
}

func (sc *pathScanner) digits() int {
	n := 0
	for !sc.done() && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		sc.pos++
		n++
	}
	return n
}

// flag reads an arc flag, which may be written without a following separator.
func (sc *pathScanner) flag() (bool, error) {
	sc.skipSeparators()
	if sc.done() {
		return false, sc.errorf("expected flag")
	}
	switch sc.s[sc.pos] {
	case '0':
		sc.pos++
		return false, nil
	case '1':
		sc.pos++
		return true, nil
	}
	return false, sc.errorf("expected flag")
}

func (sc *pathScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrMalformedGeometry, fmt.Sprintf(format, args...), sc.pos)
}
