package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// CameraPose is the chase camera placement for one frame.
type CameraPose struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	// Offset is Position relative to Target.
	Offset   mgl64.Vec3
	Distance float64
}

// View returns the camera's view matrix.
func (c CameraPose) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, worldUp)
}

// UpdateCamera places the chase camera behind the hull, pulled back as speed grows
// and swung around by viewAngle.
func (a *Airboat) UpdateCamera(viewAngle float64) CameraPose {
	base := a.settings.BaseCameraDistance
	distance := math.Max(base, base*a.Speed()*a.settings.CameraDistanceVelocityScale)

	offset := mgl64.Vec3{-distance, distance * 0.6, 0}
	offset = mgl64.QuatRotate(viewAngle, worldUp).Rotate(offset)
	offset = mgl64.QuatRotate(a.body.Angle(), worldUp).Rotate(offset)

	target := a.scenePosition()
	return CameraPose{
		Position: target.Add(offset),
		Target:   target,
		Offset:   offset,
		Distance: distance,
	}
}
