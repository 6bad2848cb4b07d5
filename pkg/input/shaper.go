// Package input turns discrete key and touch events into smooth, bounded control axes
// and a view-direction angle.
package input

import "math"

// DefaultAxisRate is how far an axis moves per second while a key is held.
const DefaultAxisRate = 2.5

// Axis limits.
const (
	ThrottleMin = -0.5
	ThrottleMax = 1.0
	YawMin      = -1.0
	YawMax      = 1.0
)

// AxisValues are the shaped control values consumed by the vehicle.
type AxisValues struct {
	Yaw      float64
	Throttle float64
}

// Shaper is the control-axis state machine. It is not safe for concurrent use.
type Shaper struct {
	rate float64
	keys KeyState
	axes AxisValues

	// Overrides suspend keyboard shaping for an axis. While set, the axis value is
	// whatever the last writer stored, unclamped.
	ThrottleOverride    bool
	YawOverride         bool
	CameraOverride      bool
	CameraOverrideAngle float64
}

// NewShaper creates a shaper moving axes at rate units per second.
// A non-positive rate falls back to DefaultAxisRate.
func NewShaper(rate float64) *Shaper {
	if rate <= 0 {
		rate = DefaultAxisRate
	}
	return &Shaper{rate: rate}
}

// OnKeyEvent records a key press or release. Unbound codes are ignored.
func (s *Shaper) OnKeyEvent(code Code, pressed bool) {
	s.keys.set(KeyFor(code), pressed)
}

// OnBlur releases every held key. Axis values are left as they are.
func (s *Shaper) OnBlur() {
	s.keys = KeyState{}
}

// Keys returns a copy of the held-key flags.
func (s *Shaper) Keys() KeyState {
	return s.keys
}

// Axes returns the current axis values without stepping.
func (s *Shaper) Axes() AxisValues {
	return s.axes
}

// SetThrottle writes the throttle axis directly.
func (s *Shaper) SetThrottle(v float64) {
	s.axes.Throttle = v
}

// SetYaw writes the yaw axis directly.
func (s *Shaper) SetYaw(v float64) {
	s.axes.Yaw = v
}

// Step advances both axes by dt seconds and returns the result.
func (s *Shaper) Step(dt float64) AxisValues {
	if !s.ThrottleOverride {
		v := stepAxis(s.keys.ThrottleDown, s.keys.ThrottleUp, s.axes.Throttle, dt*s.rate)
		s.axes.Throttle = roundHundredths(clamp(v, ThrottleMin, ThrottleMax))
	}
	if !s.YawOverride {
		v := stepAxis(s.keys.YawLeft, s.keys.YawRight, s.axes.Yaw, dt*s.rate)
		s.axes.Yaw = roundHundredths(clamp(v, YawMin, YawMax))
	}
	return s.axes
}

// ViewDirection returns the camera yaw offset in radians. Opposing look keys cancel,
// so the result is one of eight directions, or 0 with no look key held.
func (s *Shaper) ViewDirection() float64 {
	if s.CameraOverride {
		return s.CameraOverrideAngle
	}
	x := boolToFloat(s.keys.LookRight) - boolToFloat(s.keys.LookLeft)
	y := boolToFloat(s.keys.LookBack) - boolToFloat(s.keys.LookFront)
	if x == 0 && y == 0 {
		return 0
	}
	return math.Atan2(x, y)
}

func stepAxis(down, up bool, value, speed float64) float64 {
	if up != down {
		if up {
			return value + speed
		}
		return value - speed
	}
	if value == 0 {
		return 0
	}
	if math.Abs(value) <= speed {
		return 0
	}
	if value > 0 {
		return value - speed
	}
	return value + speed
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundHundredths rounds half toward positive infinity.
func roundHundredths(v float64) float64 {
	r := math.Floor(v*100+0.5) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
