package vehicle

// Settings holds the airboat force-model and presentation constants.
type Settings struct {
	Thrust                float64 `mapstructure:"thrust" yaml:"thrust"`
	ThrustTurningTorque   float64 `mapstructure:"thrustTurningTorque" yaml:"thrustTurningTorque"`
	VelocityTurningTorque float64 `mapstructure:"velocityTurningTorque" yaml:"velocityTurningTorque"`
	TurningFriction       float64 `mapstructure:"turningFriction" yaml:"turningFriction"`
	FrontalDrag           float64 `mapstructure:"frontalDrag" yaml:"frontalDrag"`
	SidewaysDrag          float64 `mapstructure:"sidewaysDrag" yaml:"sidewaysDrag"`

	BaseCameraDistance          float64 `mapstructure:"baseCameraDistance" yaml:"baseCameraDistance"`
	CameraDistanceVelocityScale float64 `mapstructure:"cameraDistanceVelocityScale" yaml:"cameraDistanceVelocityScale"`

	// HullHeight is the hull's resting height above the water plane.
	HullHeight      float64 `mapstructure:"hullHeight" yaml:"hullHeight"`
	SwayMultiplierX float64 `mapstructure:"swayMultiplierX" yaml:"swayMultiplierX"`
	SwayMaxX        float64 `mapstructure:"swayMaxX" yaml:"swayMaxX"`
	SwayMultiplierZ float64 `mapstructure:"swayMultiplierZ" yaml:"swayMultiplierZ"`
	SwayMaxZ        float64 `mapstructure:"swayMaxZ" yaml:"swayMaxZ"`
	WakeLength      float64 `mapstructure:"wakeLength" yaml:"wakeLength"`
}

// DefaultSettings returns the tuned airboat constants.
func DefaultSettings() Settings {
	return Settings{
		Thrust:                      2.5,
		ThrustTurningTorque:         0.9,
		VelocityTurningTorque:       0.05,
		TurningFriction:             0.6,
		FrontalDrag:                 0.2,
		SidewaysDrag:                2,
		BaseCameraDistance:          1,
		CameraDistanceVelocityScale: 0.2,
		HullHeight:                  0.04,
		SwayMultiplierX:             0.015,
		SwayMaxX:                    0.05,
		SwayMultiplierZ:             0.015,
		SwayMaxZ:                    0.04,
		WakeLength:                  0.5,
	}
}
