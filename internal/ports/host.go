package ports

import "time"

// Host is the display surface the controller drives.
// Calls are fire-and-forget: the host reports the resulting fullscreen state later
// through the controller's OnFullscreenChange. Implementations may deliver that
// notification synchronously.
type Host interface {
	// RequestFullscreen asks the host to take over the whole display.
	RequestFullscreen()

	// ExitFullscreen asks the host to leave fullscreen.
	ExitFullscreen()

	// SetSettingsVisible shows or hides the settings surface.
	SetSettingsVisible(visible bool)
}

// FrameScheduler runs a callback on the host's next display refresh.
// This is a driven port (implemented by the rendering adapter).
type FrameScheduler interface {
	// RequestFrame schedules fn once, with the frame timestamp.
	RequestFrame(fn func(now time.Time))
}
