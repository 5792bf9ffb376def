// Package notification delivers toasts to the screen and, optionally, to the desktop.
package notification

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
	"github.com/xvierd/prank-cli/internal/config"
	"github.com/xvierd/prank-cli/internal/ports"
)

// Toast is one in-screen notification.
type Toast struct {
	Kind    ports.NotificationKind
	Message string
	Until   time.Time
}

// Notifier implements ports.Notifier.
type Notifier struct {
	mu      sync.Mutex
	cfg     *config.NotificationConfig
	sink    func(Toast)
	now     func() time.Time
	desktop func(kind ports.NotificationKind, title, message string) error
	logger  zerolog.Logger
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig, logger zerolog.Logger) *Notifier {
	return &Notifier{
		cfg:     cfg,
		now:     time.Now,
		desktop: desktopNotify,
		logger:  logger,
	}
}

// SetSink routes toasts to the screen. A nil sink drops them.
func (n *Notifier) SetSink(sink func(Toast)) {
	n.mu.Lock()
	n.sink = sink
	n.mu.Unlock()
}

// Notify shows message as a toast and mirrors it to the desktop if enabled.
func (n *Notifier) Notify(kind ports.NotificationKind, message string) {
	n.mu.Lock()
	sink := n.sink
	n.mu.Unlock()

	if sink != nil {
		sink(Toast{Kind: kind, Message: message, Until: n.now().Add(n.toastDuration())})
	}

	if !n.DesktopEnabled() {
		return
	}
	if err := n.desktop(kind, "prank", message); err != nil {
		// Desktop notifications are best effort.
		n.logger.Warn().Err(err).Str("kind", string(kind)).Msg("desktop notification failed")
	}
}

// DesktopEnabled returns true if desktop notifications are enabled.
func (n *Notifier) DesktopEnabled() bool {
	return n.cfg != nil && n.cfg.Desktop
}

func (n *Notifier) toastDuration() time.Duration {
	if n.cfg == nil || n.cfg.ToastDuration <= 0 {
		return 2 * time.Second
	}
	return time.Duration(n.cfg.ToastDuration)
}

func desktopNotify(kind ports.NotificationKind, title, message string) error {
	if kind == ports.NotifyError {
		return beeep.Alert(title, message, "")
	}
	return beeep.Notify(title, message, "")
}
