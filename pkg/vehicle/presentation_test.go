package vehicle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opd-ai/go-airboat/pkg/input"
	"github.com/opd-ai/go-airboat/pkg/physics"
)

func TestAirboat_ControlSurfaces(t *testing.T) {
	boat, _, _ := newTestAirboat()
	axes := input.AxisValues{Throttle: 0.4, Yaw: 1}

	p := boat.Presentation(axes)
	assert.Zero(t, p.PropellerSpin)
	assert.InDelta(t, math.Pi/4, p.RudderAngle, 1e-12)
	assert.InDelta(t, 0.4, p.EngineVolume, 1e-12)

	boat.CalculateForces(axes)
	assert.InDelta(t, 0.4, boat.Presentation(axes).PropellerSpin, 1e-12)
	boat.CalculateForces(axes)
	assert.InDelta(t, 0.8, boat.Presentation(axes).PropellerSpin, 1e-12)
}

func TestAirboat_PresentationIsReadOnly(t *testing.T) {
	boat, _, _ := newTestAirboat()
	axes := input.AxisValues{Throttle: 1}
	boat.CalculateForces(axes)

	first := boat.Presentation(axes)
	second := boat.Presentation(axes)
	assert.Equal(t, first, second)
}

func TestAirboat_ReverseVolume(t *testing.T) {
	boat, _, _ := newTestAirboat()

	assert.Equal(t, 0.5, boat.Presentation(input.AxisValues{Throttle: -0.5}).EngineVolume)
}

func TestAirboat_HullSway(t *testing.T) {
	t.Run("thrust_pitches_hull", func(t *testing.T) {
		boat, _, _ := newTestAirboat()
		axes := input.AxisValues{Throttle: 1}
		boat.CalculateForces(axes)

		p := boat.Presentation(axes)
		assert.InDelta(t, 2.5*0.015, p.HullPitch, 1e-12)
		assert.InDelta(t, 0, p.HullRoll, 1e-12)
	})

	t.Run("lateral_drag_is_clamped", func(t *testing.T) {
		boat, _, body := newTestAirboat()
		body.SetVelocity(physics.Vector2D{Y: 10})
		boat.CalculateForces(input.AxisValues{})

		p := boat.Presentation(input.AxisValues{})
		assert.InDelta(t, 0.05, p.HullRoll, 1e-12)
	})

	t.Run("reset_clears_sway", func(t *testing.T) {
		boat, _, _ := newTestAirboat()
		boat.CalculateForces(input.AxisValues{Throttle: 1})
		boat.Reset()

		p := boat.Presentation(input.AxisValues{})
		assert.Zero(t, p.HullPitch)
	})
}
