package vehicle

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/opd-ai/go-airboat/pkg/input"
	"github.com/opd-ai/go-airboat/pkg/physics"
)

func newTestAirboat() (*Airboat, *physics.World, *physics.RigidBody) {
	world := physics.NewWorld()
	body := world.NewRigidBody(physics.DefaultHullShape())
	return New(body, DefaultSettings()), world, body
}

func assertVec3(t *testing.T, expected, actual mgl64.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-9, "component %d of %v", i, actual)
	}
}

func TestAirboat_Speed(t *testing.T) {
	boat, _, body := newTestAirboat()
	body.SetVelocity(physics.Vector2D{X: 10, Y: 10})

	assert.InDelta(t, 10*math.Sqrt2, boat.Speed(), 1e-9)
}

func TestAirboat_ThrustAndSteering(t *testing.T) {
	boat, world, body := newTestAirboat()

	boat.CalculateForces(input.AxisValues{Yaw: -1, Throttle: 1})
	world.Step(0.1)

	assert.InDelta(t, 0.25, body.Velocity().X, 1e-9)
	assert.InDelta(t, 0, body.Velocity().Y, 1e-9)
	assert.InDelta(t, 0.09, body.AngularVelocity(), 1e-9)
}

func TestAirboat_FrontalDragAndFriction(t *testing.T) {
	boat, world, body := newTestAirboat()
	body.SetAngularVelocity(1)
	body.SetVelocity(physics.Vector2D{X: 1})

	boat.CalculateForces(input.AxisValues{})
	world.Step(0.1)

	assert.InDelta(t, 1-0.1*0.2, body.Velocity().X, 1e-9)
	assert.InDelta(t, 1-0.1*0.6, body.AngularVelocity(), 1e-9)
}

func TestAirboat_SidewaysDrag(t *testing.T) {
	boat, world, body := newTestAirboat()
	body.SetAngle(math.Pi / 2)
	body.SetVelocity(physics.Vector2D{X: 1})

	boat.CalculateForces(input.AxisValues{})
	world.Step(0.1)

	assert.InDelta(t, 1-0.1*2, body.Velocity().X, 1e-9)
	assert.InDelta(t, 0, body.Velocity().Y, 1e-9)
}

func TestAirboat_ZeroInputAtRest(t *testing.T) {
	boat, world, body := newTestAirboat()

	boat.CalculateForces(input.AxisValues{})
	world.Step(0.1)

	assert.Equal(t, physics.Vector2D{}, body.Velocity())
	assert.Equal(t, 0.0, body.AngularVelocity())
}

func TestAirboat_Reset(t *testing.T) {
	boat, _, body := newTestAirboat()
	body.SetPosition(physics.Vector2D{X: 3, Y: -4})
	body.SetAngle(2)
	body.SetVelocity(physics.Vector2D{X: 1, Y: 1})
	body.SetAngularVelocity(5)

	boat.Reset()

	assert.Equal(t, physics.Vector2D{}, body.Position())
	assert.Equal(t, 0.0, body.Angle())
	assert.Equal(t, physics.Vector2D{}, body.Velocity())
	assert.Equal(t, 0.0, body.AngularVelocity())
}

func TestAirboat_Pose(t *testing.T) {
	boat, _, body := newTestAirboat()
	body.SetAngle(math.Pi / 2)
	body.SetPosition(physics.Vector2D{X: -10, Y: 20})
	body.SetVelocity(physics.Vector2D{X: 10})

	pose := boat.Pose()

	assertVec3(t, mgl64.Vec3{-10, DefaultSettings().HullHeight, -20}, pose.Position)
	assert.InDelta(t, math.Pi/2, pose.RotationY, 1e-12)
	assert.InDelta(t, 10, pose.WakeSpeed, 1e-9)
	assert.InDelta(t, -math.Pi/2, pose.WakeAngle, 1e-9)
	assert.Equal(t, 0.5, pose.WakeLength)
}
