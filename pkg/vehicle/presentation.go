package vehicle

import (
	"math"

	"github.com/opd-ai/go-airboat/pkg/input"
)

// Presentation is the per-frame state of the airboat's animated parts.
type Presentation struct {
	RudderAngle   float64
	PropellerSpin float64
	EngineVolume  float64
	// Hull sway in radians: roll about the forward axis, pitch about the lateral axis.
	HullRoll  float64
	HullPitch float64
}

// Presentation derives rudder, volume and sway from the axes and the last submitted
// force. The propeller angle only advances in CalculateForces.
func (a *Airboat) Presentation(axes input.AxisValues) Presentation {
	s := a.settings

	return Presentation{
		RudderAngle:   axes.Yaw * math.Pi / 4,
		PropellerSpin: a.propellerSpin,
		EngineVolume:  math.Abs(axes.Throttle),
		HullRoll:      -clamp(a.localForce.Y*s.SwayMultiplierX, s.SwayMaxX),
		HullPitch:     clamp(a.localForce.X*s.SwayMultiplierZ, s.SwayMaxZ),
	}
}

func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
