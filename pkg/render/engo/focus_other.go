//go:build !((darwin || linux || windows) && !ios && !android && !js && !sdl && !headless && !vulkan)

// pkg/render/engo/focus_other.go
package engo

// watchFocus has no window to watch outside the desktop build.
func watchFocus(func(focused bool)) bool {
	return false
}
