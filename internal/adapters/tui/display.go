package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/prank-cli/internal/adapters/notification"
	"github.com/xvierd/prank-cli/internal/ports"
)

// Display is the terminal side of the session: it implements ports.Host and
// ports.FrameScheduler for the controller and holds the latest toast.
//
// Requests are recorded, not executed. The Model drains them after every
// controller call and turns them into bubbletea commands, so the controller
// can call the display from inside Update.
type Display struct {
	mu              sync.Mutex
	fullscreen      bool
	settingsVisible bool
	requests        []tea.Cmd
	frames          []func(time.Time)
	toast           *notification.Toast
	toastPending    bool
}

// Ensure Display implements the host ports.
var (
	_ ports.Host           = (*Display)(nil)
	_ ports.FrameScheduler = (*Display)(nil)
)

// NewDisplay creates a display that starts inline with the settings shown.
func NewDisplay() *Display {
	return &Display{settingsVisible: true}
}

// RequestFullscreen switches to the alternate screen.
func (d *Display) RequestFullscreen() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fullscreen {
		return
	}
	d.fullscreen = true
	d.requests = append(d.requests, tea.EnterAltScreen)
}

// ExitFullscreen returns to the normal screen.
func (d *Display) ExitFullscreen() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.fullscreen {
		return
	}
	d.fullscreen = false
	d.requests = append(d.requests, tea.ExitAltScreen)
}

// SetSettingsVisible shows or hides the sidebar.
func (d *Display) SetSettingsVisible(visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.settingsVisible = visible
}

// RequestFrame queues fn for the next frame tick.
func (d *Display) RequestFrame(fn func(now time.Time)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = append(d.frames, fn)
}

// ShowToast replaces the current toast. It is the notifier's sink.
func (d *Display) ShowToast(t notification.Toast) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.toast = &t
	d.toastPending = true
}

// Fullscreen reports whether the alternate screen is active.
func (d *Display) Fullscreen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fullscreen
}

// SettingsVisible reports whether the sidebar is shown.
func (d *Display) SettingsVisible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settingsVisible
}

// Toast returns the toast still visible at now.
func (d *Display) Toast(now time.Time) (notification.Toast, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.toast == nil || !now.Before(d.toast.Until) {
		return notification.Toast{}, false
	}
	return *d.toast, true
}

// expireToast drops the toast once now has reached its deadline.
func (d *Display) expireToast(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.toast != nil && !now.Before(d.toast.Until) {
		d.toast = nil
		d.toastPending = false
	}
}

func (d *Display) takeRequests() []tea.Cmd {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.requests
	d.requests = nil
	return out
}

func (d *Display) takeFrames() []func(time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.frames
	d.frames = nil
	return out
}

func (d *Display) hasFrames() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.frames) > 0
}

// takeToastDeadline reports the expiry of a toast shown since the last call.
func (d *Display) takeToastDeadline() (time.Time, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.toastPending || d.toast == nil {
		return time.Time{}, false
	}
	d.toastPending = false
	return d.toast.Until, true
}
