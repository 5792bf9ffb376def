package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/xvierd/prank-cli/internal/clock"
	"github.com/xvierd/prank-cli/internal/domain"
	"github.com/xvierd/prank-cli/internal/ports"
)

// DefaultLoopCycle is the length of one loop-mode cycle (1% every 1.25s).
const DefaultLoopCycle = 125 * time.Second

// ControllerDeps groups the collaborators of a SessionController.
// Host, Notifier and Translator may be nil; the controller then runs without
// fullscreen, toasts or translations.
type ControllerDeps struct {
	Host       ports.Host
	Clock      *clock.Clock
	Notifier   ports.Notifier
	Translator ports.Translator
	Platform   ports.PlatformDetector
	Logger     zerolog.Logger
}

// ControllerOption configures a SessionController.
type ControllerOption func(*SessionController)

// WithLoopCycle sets the loop-mode cycle length.
func WithLoopCycle(d time.Duration) ControllerOption {
	return func(c *SessionController) {
		if d > 0 {
			c.loopCycle = d
		}
	}
}

// WithInitialSettings adjusts the settings after platform detection has seeded them.
func WithInitialSettings(fn func(*domain.Settings)) ControllerOption {
	return func(c *SessionController) {
		fn(&c.settings)
	}
}

// WithNow overrides the wall clock used to stamp run starts.
func WithNow(now func() time.Time) ControllerOption {
	return func(c *SessionController) {
		c.now = now
	}
}

// SessionController owns the session state machine: Idle -> Running ->
// (Completed | interrupted) -> Idle.
//
// All transitions happen under mu. Host and notifier calls are collected while
// locked and made after unlocking, so collaborators may call back into the
// controller synchronously.
type SessionController struct {
	mu         sync.Mutex
	host       ports.Host
	clock      *clock.Clock
	notifier   ports.Notifier
	translator ports.Translator
	logger     zerolog.Logger
	now        func() time.Time
	loopCycle  time.Duration
	platformID string

	state    domain.SessionState
	settings domain.Settings
	handle   *clock.Handle

	// origin is the clock elapsed value the curve is measured from.
	origin        time.Duration
	restartOrigin bool

	listeners []func(domain.SessionState)
}

// NewSessionController creates a controller and seeds the display variant from
// the detected platform.
func NewSessionController(deps ControllerDeps, opts ...ControllerOption) *SessionController {
	c := &SessionController{
		host:       deps.Host,
		clock:      deps.Clock,
		notifier:   deps.Notifier,
		translator: deps.Translator,
		logger:     deps.Logger,
		now:        time.Now,
		loopCycle:  DefaultLoopCycle,
		state:      domain.NewSessionState(),
		settings:   domain.DefaultSettings(),
	}
	if c.host == nil {
		c.host = noopHost{}
	}
	if c.clock == nil {
		c.clock = clock.New(nil)
	}

	if deps.Platform != nil {
		c.platformID = deps.Platform.Detect()
	}
	c.settings.Variant = domain.DetectVariant(c.platformID)
	if c.translator != nil {
		c.settings.Locale = c.translator.CurrentLocale()
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.settings.Variant.Index() < 0 {
		c.settings.Variant = domain.DetectVariant(c.platformID)
	}

	c.logger.Debug().
		Str("platform", c.platformID).
		Str("variant", string(c.settings.Variant)).
		Msg("controller initialized")
	return c
}

// Subscribe registers fn to receive every published state change.
func (c *SessionController) Subscribe(fn func(domain.SessionState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Start begins a run with the current settings.
func (c *SessionController) Start() error {
	c.mu.Lock()

	if c.state.IsRunning() {
		c.mu.Unlock()
		return domain.ErrAlreadyRunning
	}

	mode := c.settings.Mode
	total := c.loopCycle
	if mode == domain.ModeTimed {
		total = c.settings.TotalDuration()
	}
	if mode == domain.ModeTimed && total <= 0 {
		msg := c.translate("toast.zero_duration")
		c.mu.Unlock()
		c.logger.Info().Msg("start refused: timed mode without duration")
		c.notify(ports.NotifyError, msg)
		return domain.ErrZeroDuration
	}

	runID := domain.NewRunID()
	c.state.Begin(runID, mode, total, c.now())
	c.origin = 0
	c.restartOrigin = false

	// h is assigned under mu; onTick reads it only after taking mu.
	var h *clock.Handle
	h = c.clock.Start(func(elapsed time.Duration) {
		c.onTick(&h, elapsed)
	})
	c.handle = h

	published := []domain.SessionState{c.state}
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	c.logger.Info().
		Str("run_id", runID).
		Str("mode", string(mode)).
		Dur("total", total).
		Msg("run started")

	c.host.RequestFullscreen()
	c.host.SetSettingsVisible(false)
	publish(listeners, published)
	return nil
}

// onTick evaluates the curve for one frame of the run identified by *hp.
func (c *SessionController) onTick(hp **clock.Handle, elapsed time.Duration) {
	c.mu.Lock()
	h := *hp

	// A frame queued before an interrupt must not touch the state.
	if h == nil || h != c.handle || h.Cancelled() || !c.state.IsRunning() {
		c.mu.Unlock()
		return
	}

	if c.restartOrigin {
		c.origin = elapsed
		c.restartOrigin = false
	}

	progress := c.state.Advance(domain.Curve(elapsed-c.origin, c.state.Total))
	published := []domain.SessionState{c.state}
	var effects []func()

	if progress >= 100 {
		switch c.state.Mode {
		case domain.ModeLoop:
			c.state.Progress = 0
			c.origin = elapsed
			published = append(published, c.state)
			c.logger.Debug().Str("run_id", c.state.RunID).Msg("loop cycle restarted")
		case domain.ModeTimed:
			c.state.Complete()
			published = append(published, c.state)
			c.logger.Info().Str("run_id", c.state.RunID).Dur("elapsed", elapsed).Msg("run completed")
			effects = c.stopLocked(true)
			published = append(published, c.state)
		}
	}

	listeners := c.snapshotListeners()
	c.mu.Unlock()

	runEffects(effects)
	publish(listeners, published)
}

// OnFullscreenChange reacts to the host's fullscreen notifications. Leaving
// fullscreen while running interrupts the run.
func (c *SessionController) OnFullscreenChange(isFullscreen bool) {
	c.mu.Lock()
	if isFullscreen || !c.state.IsRunning() {
		c.mu.Unlock()
		return
	}

	runID := c.state.RunID
	effects := c.stopLocked(false)
	published := []domain.SessionState{c.state}
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	c.logger.Info().Str("run_id", runID).Msg("run interrupted: fullscreen exited")
	runEffects(effects)
	publish(listeners, published)
}

// Stop ends a running session at the user's request and leaves fullscreen.
func (c *SessionController) Stop() error {
	c.mu.Lock()
	if !c.state.IsRunning() {
		c.mu.Unlock()
		return domain.ErrNotRunning
	}

	runID := c.state.RunID
	effects := c.stopLocked(true)
	published := []domain.SessionState{c.state}
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	c.logger.Info().Str("run_id", runID).Msg("run stopped")
	runEffects(effects)
	publish(listeners, published)
	return nil
}

// stopLocked cancels the clock before any other mutation, then returns to Idle.
// It returns the host calls to make once mu is released.
func (c *SessionController) stopLocked(exitFullscreen bool) []func() {
	c.clock.Cancel(c.handle)
	c.handle = nil
	c.state.Idle()

	host := c.host
	var effects []func()
	if exitFullscreen {
		effects = append(effects, host.ExitFullscreen)
	}
	effects = append(effects, func() { host.SetSettingsVisible(true) })
	return effects
}

// Reset zeroes the timed duration and the progress. A running session keeps
// running and its curve restarts from the next frame.
func (c *SessionController) Reset() {
	c.mu.Lock()
	c.settings.Reset()
	c.state.Progress = 0
	if c.state.IsRunning() {
		c.restartOrigin = true
	}
	published := []domain.SessionState{c.state}
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	publish(listeners, published)
}

// SetMode changes the mode used by the next run.
func (c *SessionController) SetMode(m domain.Mode) error {
	if m != domain.ModeLoop && m != domain.ModeTimed {
		return fmt.Errorf("%w %q", domain.ErrInvalidMode, m)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Mode = m
	return nil
}

// SetVariant changes the displayed variant.
func (c *SessionController) SetVariant(v domain.DisplayVariant) error {
	if v.Index() < 0 {
		return fmt.Errorf("%w %q", domain.ErrInvalidVariant, v)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Variant = v
	return nil
}

// SetHour stores the hour field; see domain.Settings.SetHour.
func (c *SessionController) SetHour(input string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.SetHour(input)
}

// SetMinute stores the minute field; see domain.Settings.SetMinute.
func (c *SessionController) SetMinute(input string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.SetMinute(input)
}

// SetLocale switches the translator's locale and records it in the settings.
func (c *SessionController) SetLocale(id string) error {
	if c.translator == nil {
		return fmt.Errorf("%w %q: no translations loaded", domain.ErrUnsupportedLocale, id)
	}
	if err := c.translator.SetLocale(id); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Locale = c.translator.CurrentLocale()
	return nil
}

// Snapshot returns a copy of the session state.
func (c *SessionController) Snapshot() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Progress returns the published progress percentage.
func (c *SessionController) Progress() float64 {
	return c.Snapshot().Progress
}

// Status returns the current status.
func (c *SessionController) Status() domain.SessionStatus {
	return c.Snapshot().Status
}

// Settings returns a copy of the current settings.
func (c *SessionController) Settings() domain.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// Variant returns the active display variant.
func (c *SessionController) Variant() domain.DisplayVariant {
	return c.Settings().Variant
}

// PlatformID returns the platform detected at initialization.
func (c *SessionController) PlatformID() string {
	return c.platformID
}

// LoopCycle returns the loop-mode cycle length.
func (c *SessionController) LoopCycle() time.Duration {
	return c.loopCycle
}

func (c *SessionController) translate(key string, args ...any) string {
	if c.translator == nil {
		return key
	}
	return c.translator.Translate(key, args...)
}

func (c *SessionController) notify(kind ports.NotificationKind, msg string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(kind, msg)
}

func (c *SessionController) snapshotListeners() []func(domain.SessionState) {
	if len(c.listeners) == 0 {
		return nil
	}
	out := make([]func(domain.SessionState), len(c.listeners))
	copy(out, c.listeners)
	return out
}

func publish(listeners []func(domain.SessionState), states []domain.SessionState) {
	for _, s := range states {
		for _, fn := range listeners {
			fn(s)
		}
	}
}

func runEffects(effects []func()) {
	for _, fn := range effects {
		fn()
	}
}

// noopHost is used when no display host is available; the session then runs
// without fullscreen.
type noopHost struct{}

func (noopHost) RequestFullscreen()      {}
func (noopHost) ExitFullscreen()         {}
func (noopHost) SetSettingsVisible(bool) {}
