// pkg/engine/systems.go
package engine

import "github.com/EngoEngine/ecs"

// System priorities. The ecs world runs higher priorities first, which fixes the
// per-tick order: axes, forces, integration, then camera read-back.
const (
	PriorityInput   = 40
	PriorityForces  = 30
	PriorityPhysics = 20
	PriorityCamera  = 10
)

// The systems read the frame delta from the session at float64 precision and
// ignore the float32 value the ecs world passes along.

type inputSystem struct{ session *Session }

func (*inputSystem) Remove(ecs.BasicEntity) {}
func (*inputSystem) Priority() int          { return PriorityInput }

func (sys *inputSystem) Update(float32) {
	sys.session.shaper.Step(sys.session.frameDelta)
}

type forceSystem struct{ session *Session }

func (*forceSystem) Remove(ecs.BasicEntity) {}
func (*forceSystem) Priority() int          { return PriorityForces }

func (sys *forceSystem) Update(float32) {
	sys.session.boat.CalculateForces(sys.session.shaper.Axes())
}

type physicsSystem struct{ session *Session }

func (*physicsSystem) Remove(ecs.BasicEntity) {}
func (*physicsSystem) Priority() int          { return PriorityPhysics }

func (sys *physicsSystem) Update(float32) {
	sys.session.physics.Step(sys.session.frameDelta)
}

type cameraSystem struct{ session *Session }

func (*cameraSystem) Remove(ecs.BasicEntity) {}
func (*cameraSystem) Priority() int          { return PriorityCamera }

func (sys *cameraSystem) Update(float32) {
	sys.session.frame = sys.session.snapshot()
}
