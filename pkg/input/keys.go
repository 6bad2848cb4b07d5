package input

// Code identifies a physical key, named after the DOM KeyboardEvent.code values.
type Code string

const (
	KeyW       Code = "KeyW"
	KeyA       Code = "KeyA"
	KeyS       Code = "KeyS"
	KeyD       Code = "KeyD"
	KeyR       Code = "KeyR"
	ArrowUp    Code = "ArrowUp"
	ArrowDown  Code = "ArrowDown"
	ArrowLeft  Code = "ArrowLeft"
	ArrowRight Code = "ArrowRight"
	Escape     Code = "Escape"
)

// Key is a logical control bound to a Code.
type Key int

const (
	KeyNone Key = iota
	ThrottleUp
	ThrottleDown
	YawLeft
	YawRight
	LookRight
	LookLeft
	LookBack
	LookFront
)

var keyNames = [...]string{
	KeyNone:      "none",
	ThrottleUp:   "throttleUp",
	ThrottleDown: "throttleDown",
	YawLeft:      "yawLeft",
	YawRight:     "yawRight",
	LookRight:    "lookRight",
	LookLeft:     "lookLeft",
	LookBack:     "lookBack",
	LookFront:    "lookFront",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// KeyFor maps a key code to its logical control. Unbound codes map to KeyNone.
func KeyFor(code Code) Key {
	switch code {
	case KeyW:
		return ThrottleUp
	case KeyS:
		return ThrottleDown
	case KeyA:
		return YawLeft
	case KeyD:
		return YawRight
	case ArrowRight:
		return LookRight
	case ArrowLeft:
		return LookLeft
	case ArrowDown:
		return LookBack
	case ArrowUp:
		return LookFront
	default:
		return KeyNone
	}
}

// KeyState holds which logical controls are currently held.
type KeyState struct {
	ThrottleUp   bool
	ThrottleDown bool
	YawLeft      bool
	YawRight     bool
	LookRight    bool
	LookLeft     bool
	LookBack     bool
	LookFront    bool
}

func (s *KeyState) set(key Key, down bool) {
	switch key {
	case ThrottleUp:
		s.ThrottleUp = down
	case ThrottleDown:
		s.ThrottleDown = down
	case YawLeft:
		s.YawLeft = down
	case YawRight:
		s.YawRight = down
	case LookRight:
		s.LookRight = down
	case LookLeft:
		s.LookLeft = down
	case LookBack:
		s.LookBack = down
	case LookFront:
		s.LookFront = down
	}
}
