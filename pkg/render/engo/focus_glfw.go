//go:build (darwin || linux || windows) && !ios && !android && !js && !sdl && !headless && !vulkan

// pkg/render/engo/focus_glfw.go
package engo

import (
	"github.com/EngoEngine/engo"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// watchFocus reports window focus changes from the desktop window.
func watchFocus(onChange func(focused bool)) bool {
	if engo.Window == nil {
		return false
	}
	previous := engo.Window.SetFocusCallback(nil)
	engo.Window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if previous != nil {
			previous(w, focused)
		}
		onChange(focused)
	})
	return true
}
