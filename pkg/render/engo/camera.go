// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-airboat/pkg/physics"
)

// DefaultPixelsPerUnit scales world units to screen pixels at zoom 1.
const DefaultPixelsPerUnit = 8.0

// CameraSystem keeps the top-down view centered on the airboat
type CameraSystem struct {
	// Target to follow
	target    physics.Vector2D
	targetSet bool

	// Camera properties
	zoom          float32
	minZoom       float32
	maxZoom       float32
	pixelsPerUnit float64

	// Smooth following
	followSpeed float32
	smoothing   bool

	// Current camera state
	currentPos     physics.Vector2D
	viewportWidth  float64
	viewportHeight float64
}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		zoom:          1.0,
		minZoom:       0.25,
		maxZoom:       4.0,
		pixelsPerUnit: DefaultPixelsPerUnit,
		followSpeed:   4.0,
		smoothing:     true,
	}
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Priority runs the camera after the simulation system.
func (cs *CameraSystem) Priority() int {
	return -10
}

// Update updates the camera position and zoom
func (cs *CameraSystem) Update(dt float32) {
	if scrollY := engo.Input.Mouse.ScrollY; scrollY != 0 {
		cs.SetZoom(cs.zoom * (1 + scrollY*0.1))
	}
	if cs.targetSet {
		cs.Follow(float64(dt))
	}
	cs.applyCameraTransform()
}

// Follow moves the camera toward the target by dt seconds of travel.
func (cs *CameraSystem) Follow(dt float64) {
	if !cs.smoothing {
		cs.currentPos = cs.target
		return
	}
	t := float64(cs.followSpeed) * dt
	if t > 1 {
		t = 1
	}
	cs.currentPos = cs.currentPos.Add(cs.target.Sub(cs.currentPos).Scale(t))
}

// applyCameraTransform centers the engo camera on the current position
func (cs *CameraSystem) applyCameraTransform() {
	center := cs.WorldToPixels(cs.currentPos)
	engo.Mailbox.Dispatch(common.CameraMessage{Axis: common.XAxis, Value: float32(center.X)})
	engo.Mailbox.Dispatch(common.CameraMessage{Axis: common.YAxis, Value: float32(center.Y)})
	engo.Mailbox.Dispatch(common.CameraMessage{Axis: common.ZAxis, Value: 1 / cs.zoom})
}

// SetTarget sets the target position for the camera to follow
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	first := !cs.targetSet
	cs.target = target
	cs.targetSet = true
	if first || !cs.smoothing {
		cs.currentPos = target
	}
}

// ClearTarget clears the camera target
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetZoom sets the camera zoom level
func (cs *CameraSystem) SetZoom(zoom float32) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float32 {
	return cs.zoom
}

func (cs *CameraSystem) clampZoom(zoom float32) float32 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// EnableSmoothing enables or disables camera smoothing
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// GetCurrentPosition returns the current camera position
func (cs *CameraSystem) GetCurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// SetViewport sets the screen size used by the coordinate conversions.
func (cs *CameraSystem) SetViewport(width, height float64) {
	cs.viewportWidth = width
	cs.viewportHeight = height
}

// WorldToPixels maps world units onto the engo render plane, where Y grows downward.
func (cs *CameraSystem) WorldToPixels(worldPos physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{X: worldPos.X * cs.pixelsPerUnit, Y: -worldPos.Y * cs.pixelsPerUnit}
}

// WorldToScreen converts world coordinates to screen pixels. World +Y is screen up.
func (cs *CameraSystem) WorldToScreen(worldPos physics.Vector2D) physics.Vector2D {
	scale := cs.pixelsPerUnit * float64(cs.zoom)
	rel := worldPos.Sub(cs.currentPos)
	return physics.Vector2D{
		X: rel.X*scale + cs.viewportWidth/2,
		Y: -rel.Y*scale + cs.viewportHeight/2,
	}
}

// ScreenToWorld converts screen pixels to world coordinates
func (cs *CameraSystem) ScreenToWorld(screenPos physics.Vector2D) physics.Vector2D {
	scale := cs.pixelsPerUnit * float64(cs.zoom)
	return physics.Vector2D{
		X: (screenPos.X-cs.viewportWidth/2)/scale + cs.currentPos.X,
		Y: -(screenPos.Y-cs.viewportHeight/2)/scale + cs.currentPos.Y,
	}
}
