// Package vehicle turns control axes into forces on the airboat's rigid body and
// derives the chase camera and presentation state from the body.
package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-airboat/pkg/input"
	"github.com/opd-ai/go-airboat/pkg/physics"
)

// Airboat applies the airboat force model to a rigid body.
type Airboat struct {
	body     physics.Body
	settings Settings

	// localForce is the last body-frame force submitted, used for hull sway.
	localForce    physics.Vector2D
	propellerSpin float64
}

// New creates an airboat driving body.
func New(body physics.Body, settings Settings) *Airboat {
	return &Airboat{body: body, settings: settings}
}

// Body returns the rigid body the airboat drives.
func (a *Airboat) Body() physics.Body {
	return a.body
}

// Settings returns the constants the airboat was built with.
func (a *Airboat) Settings() Settings {
	return a.settings
}

// Speed returns the magnitude of the body's linear velocity.
func (a *Airboat) Speed() float64 {
	return a.body.Velocity().Length()
}

// CalculateForces submits thrust, steering torque and drag for the next physics step.
func (a *Airboat) CalculateForces(axes input.AxisValues) {
	s := a.settings

	thrust := physics.Vector2D{X: axes.Throttle * s.Thrust}
	a.body.ApplyForce(a.body.VectorToWorld(thrust))

	steer := math.Sin(-axes.Yaw * math.Pi / 2)
	torque := steer*(axes.Throttle*s.ThrustTurningTorque+a.Speed()*s.VelocityTurningTorque) -
		s.TurningFriction*a.body.AngularVelocity()
	a.body.ApplyTorque(torque)

	against := a.body.VectorToLocal(a.body.Velocity()).Neg()
	drag := physics.Vector2D{
		X: against.X * s.FrontalDrag,
		Y: against.Y * s.SidewaysDrag,
	}
	a.body.ApplyForce(a.body.VectorToWorld(drag))

	a.localForce = thrust.Add(drag)
	a.propellerSpin += axes.Throttle
}

// Reset puts the body back at the origin, at rest and facing +X.
func (a *Airboat) Reset() {
	a.body.SetPosition(physics.Vector2D{})
	a.body.SetAngle(0)
	a.body.SetVelocity(physics.Vector2D{})
	a.body.SetAngularVelocity(0)
	a.localForce = physics.Vector2D{}
}

// Pose is the body state mapped into the 3-D scene, where the physics plane's
// Y axis runs along -Z.
type Pose struct {
	Position  mgl64.Vec3
	RotationY float64

	// Wake data: body-frame speed and direction of travel.
	WakeSpeed  float64
	WakeAngle  float64
	WakeLength float64
}

// Pose returns the body's current scene pose.
func (a *Airboat) Pose() Pose {
	local := a.body.VectorToLocal(a.body.Velocity())
	return Pose{
		Position:   a.scenePosition(),
		RotationY:  a.body.Angle(),
		WakeSpeed:  local.Length(),
		WakeAngle:  local.Angle(),
		WakeLength: a.settings.WakeLength,
	}
}

func (a *Airboat) scenePosition() mgl64.Vec3 {
	p := a.body.Position()
	return mgl64.Vec3{p.X, a.settings.HullHeight, -p.Y}
}
