// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-airboat/pkg/engine"
	"github.com/opd-ai/go-airboat/pkg/input"
)

// Binding ties an engo button to the key code the session understands.
type Binding struct {
	Button string
	Code   input.Code
	Key    engo.Key
}

// Bindings lists every key the simulator reacts to.
var Bindings = []Binding{
	{"throttleUp", input.KeyW, engo.KeyW},
	{"throttleDown", input.KeyS, engo.KeyS},
	{"yawLeft", input.KeyA, engo.KeyA},
	{"yawRight", input.KeyD, engo.KeyD},
	{"lookFront", input.ArrowUp, engo.KeyArrowUp},
	{"lookBack", input.ArrowDown, engo.KeyArrowDown},
	{"lookLeft", input.ArrowLeft, engo.KeyArrowLeft},
	{"lookRight", input.ArrowRight, engo.KeyArrowRight},
	{"reset", input.KeyR, engo.KeyR},
	{"pause", input.Escape, engo.KeyEscape},
}

// SetupInputBindings registers the key bindings with engo
func SetupInputBindings() {
	for _, b := range Bindings {
		engo.Input.RegisterButton(b.Button, b.Key)
	}
}

// KeyEvent is one key transition read from engo.
type KeyEvent struct {
	Code    input.Code
	Pressed bool
}

// ButtonState reports edge transitions of a named button.
type ButtonState interface {
	JustPressed(name string) bool
	JustReleased(name string) bool
}

// PollKeys returns the transitions of every bound button since the last frame.
func PollKeys(buttons ButtonState) []KeyEvent {
	var events []KeyEvent
	for _, b := range Bindings {
		if buttons.JustPressed(b.Button) {
			events = append(events, KeyEvent{Code: b.Code, Pressed: true})
		}
		if buttons.JustReleased(b.Button) {
			events = append(events, KeyEvent{Code: b.Code, Pressed: false})
		}
	}
	return events
}

type engoButtons struct{}

func (engoButtons) JustPressed(name string) bool  { return engo.Input.Button(name).JustPressed() }
func (engoButtons) JustReleased(name string) bool { return engo.Input.Button(name).JustReleased() }

// PointerController maps mouse drags onto the shaper's overrides. A left drag
// turns the camera; a right drag works the throttle and rudder like a joystick
// whose vertical travel is throttle and horizontal travel is yaw.
type PointerController struct {
	shaper *input.Shaper

	button         engo.MouseButton
	active         bool
	startX, startY float64
}

// NewPointerController creates a controller driving shaper.
func NewPointerController(shaper *input.Shaper) *PointerController {
	return &PointerController{shaper: shaper}
}

// Press starts a drag at (x, y).
func (pc *PointerController) Press(button engo.MouseButton, x, y, width, height float64) {
	pc.button = button
	pc.active = true
	pc.startX, pc.startY = x, y
	pc.Move(x, y, width, height)
}

// Move updates the drag with the pointer at (x, y) in a width by height window.
func (pc *PointerController) Move(x, y, width, height float64) {
	if !pc.active {
		return
	}
	switch pc.button {
	case engo.MouseButtonLeft:
		if angle, ok := input.SnapGestureAngle(x-pc.startX, y-pc.startY); ok {
			pc.shaper.SetCameraAngle(angle)
		}
	case engo.MouseButtonRight:
		if width <= 0 || height <= 0 {
			return
		}
		pc.shaper.SetThrottleFromRatio(unit(y / height))
		pc.shaper.SetYawFromRatio(unit(x / width))
	}
}

// Release ends the drag and hands the axes back to the keyboard.
func (pc *PointerController) Release() {
	if !pc.active {
		return
	}
	pc.active = false
	switch pc.button {
	case engo.MouseButtonLeft:
		pc.shaper.ReleaseCamera()
	case engo.MouseButtonRight:
		pc.shaper.ReleaseThrottle()
		pc.shaper.ReleaseYaw()
	}
}

// Active reports whether a drag is in progress.
func (pc *PointerController) Active() bool {
	return pc.active
}

func unit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// InputSystem forwards keyboard and mouse input to a session
type InputSystem struct {
	session *engine.Session
	pointer *PointerController
	buttons ButtonState
}

// NewInputSystem creates a new input system
func NewInputSystem(session *engine.Session) *InputSystem {
	return &InputSystem{
		session: session,
		pointer: NewPointerController(session.Shaper()),
		buttons: engoButtons{},
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Priority runs input before the simulation system.
func (is *InputSystem) Priority() int {
	return 100
}

// Update processes input for the current frame
func (is *InputSystem) Update(dt float32) {
	for _, ev := range PollKeys(is.buttons) {
		is.session.HandleKey(ev.Code, ev.Pressed)
	}
	is.handleMouse()
}

func (is *InputSystem) handleMouse() {
	m := engo.Input.Mouse
	x, y := float64(m.X), float64(m.Y)
	w, h := float64(engo.WindowWidth()), float64(engo.WindowHeight())

	switch m.Action {
	case engo.Press:
		is.pointer.Press(m.Button, x, y, w, h)
	case engo.Move:
		is.pointer.Move(x, y, w, h)
	case engo.Release:
		is.pointer.Release()
	}
}
