// pkg/physics/body.go
package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp/v2"
)

// ErrDegenerateChain is returned when a static chain has too few points to enclose an area.
var ErrDegenerateChain = errors.New("static chain needs at least three points")

// Body is a rigid body handle owned by a World. Vehicle code only submits
// forces and torques; the engine integrates them on the next Step.
type Body interface {
	ApplyForce(force Vector2D)
	ApplyTorque(torque float64)

	Position() Vector2D
	SetPosition(p Vector2D)
	Angle() float64
	SetAngle(angle float64)
	Velocity() Vector2D
	SetVelocity(v Vector2D)
	AngularVelocity() float64
	SetAngularVelocity(w float64)

	// VectorToLocal expresses a world-frame direction in the body frame.
	VectorToLocal(v Vector2D) Vector2D
	// VectorToWorld expresses a body-frame direction in the world frame.
	VectorToWorld(v Vector2D) Vector2D
}

// HullShape describes the mass properties and collision box of a dynamic body.
type HullShape struct {
	Mass   float64
	Moment float64
	Width  float64
	Height float64
}

// DefaultHullShape returns the airboat hull: unit mass and moment, 0.4 x 0.22 box.
func DefaultHullShape() HullShape {
	return HullShape{Mass: 1, Moment: 1, Width: 0.4, Height: 0.22}
}

// World wraps a zero-gravity physics space.
type World struct {
	space    *cp.Space
	segments int
}

// NewWorld creates an empty world with no gravity and no damping.
func NewWorld() *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	space.SetDamping(1)
	return &World{space: space}
}

// NewRigidBody creates a dynamic body with a box shape and adds it to the world.
func (w *World) NewRigidBody(hull HullShape) *RigidBody {
	body := w.space.AddBody(cp.NewBody(hull.Mass, hull.Moment))
	shape := w.space.AddShape(cp.NewBox(body, hull.Width, hull.Height, 0))
	shape.SetFriction(0)
	return &RigidBody{body: body}
}

// AddStaticChain registers a closed loop of segments on the world's static body.
// The last point is joined back to the first.
func (w *World) AddStaticChain(points []Vector2D) error {
	if len(points) < 3 {
		return fmt.Errorf("%w: got %d", ErrDegenerateChain, len(points))
	}
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		shape := w.space.AddShape(cp.NewSegment(w.space.StaticBody, a.ToCP(), b.ToCP(), 0))
		shape.SetFriction(0)
		w.segments++
	}
	return nil
}

// StaticSegments reports how many static segments have been registered.
func (w *World) StaticSegments() int {
	return w.segments
}

// Step advances the simulation by dt seconds. Accumulated forces are cleared afterwards.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// RigidBody is a Body backed by a physics engine body.
type RigidBody struct {
	body *cp.Body
}

// ApplyForce applies a world-frame force at the center of mass.
func (r *RigidBody) ApplyForce(force Vector2D) {
	r.body.ApplyForceAtWorldPoint(force.ToCP(), r.body.Position())
}

// ApplyTorque adds to the torque accumulated for the next step.
func (r *RigidBody) ApplyTorque(torque float64) {
	r.body.SetTorque(r.body.Torque() + torque)
}

func (r *RigidBody) Position() Vector2D {
	return FromCP(r.body.Position())
}

func (r *RigidBody) SetPosition(p Vector2D) {
	r.body.SetPosition(p.ToCP())
}

func (r *RigidBody) Angle() float64 {
	return r.body.Angle()
}

func (r *RigidBody) SetAngle(angle float64) {
	r.body.SetAngle(angle)
}

func (r *RigidBody) Velocity() Vector2D {
	return FromCP(r.body.Velocity())
}

func (r *RigidBody) SetVelocity(v Vector2D) {
	r.body.SetVelocityVector(v.ToCP())
}

func (r *RigidBody) AngularVelocity() float64 {
	return r.body.AngularVelocity()
}

func (r *RigidBody) SetAngularVelocity(w float64) {
	r.body.SetAngularVelocity(w)
}

func (r *RigidBody) VectorToLocal(v Vector2D) Vector2D {
	return FromCP(v.ToCP().Unrotate(r.body.Rotation()))
}

func (r *RigidBody) VectorToWorld(v Vector2D) Vector2D {
	return FromCP(v.ToCP().Rotate(r.body.Rotation()))
}
