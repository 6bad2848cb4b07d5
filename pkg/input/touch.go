package input

import "math"

// GestureDeadZone is the pointer travel, in pixels, below which a camera drag is ignored.
const GestureDeadZone = 25.0

// SetThrottleFromRatio overrides the throttle from a vertical slider position,
// where 0 is the top of the track and 1 the bottom.
func (s *Shaper) SetThrottleFromRatio(ratio float64) {
	s.ThrottleOverride = true
	s.axes.Throttle = (1-ratio)*(ThrottleMax-ThrottleMin) + ThrottleMin
}

// SetYawFromRatio overrides the yaw from a horizontal slider position in [0, 1].
func (s *Shaper) SetYawFromRatio(ratio float64) {
	s.YawOverride = true
	s.axes.Yaw = ratio*(YawMax-YawMin) + YawMin
}

// SetCameraAngle overrides the view direction.
func (s *Shaper) SetCameraAngle(angle float64) {
	s.CameraOverride = true
	s.CameraOverrideAngle = angle
}

// ReleaseThrottle hands the throttle back to the keyboard. The value decays from where it was left.
func (s *Shaper) ReleaseThrottle() {
	s.ThrottleOverride = false
}

// ReleaseYaw hands the yaw back to the keyboard.
func (s *Shaper) ReleaseYaw() {
	s.YawOverride = false
}

// ReleaseCamera returns the view direction to key control.
func (s *Shaper) ReleaseCamera() {
	s.CameraOverride = false
	s.CameraOverrideAngle = 0
}

// SnapGestureAngle converts a drag from its start point into a view angle snapped
// to 45 degree steps. ok is false while the drag is inside the dead zone.
func SnapGestureAngle(dx, dy float64) (angle float64, ok bool) {
	if math.Hypot(dx, dy) < GestureDeadZone {
		return 0, false
	}
	step := math.Pi / 4
	return math.Round(math.Atan2(dx, dy)/step) * step, true
}
