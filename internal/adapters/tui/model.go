// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/prank-cli/internal/adapters/i18n"
	"github.com/xvierd/prank-cli/internal/clock"
	"github.com/xvierd/prank-cli/internal/config"
	"github.com/xvierd/prank-cli/internal/domain"
	"github.com/xvierd/prank-cli/internal/ports"
)

// Controller is the session surface the screen drives.
type Controller interface {
	Start() error
	Stop() error
	Reset()
	OnFullscreenChange(isFullscreen bool)
	SetMode(m domain.Mode) error
	SetVariant(v domain.DisplayVariant) error
	SetHour(input string) bool
	SetMinute(input string) bool
	SetLocale(id string) error
	Snapshot() domain.SessionState
	Settings() domain.Settings
}

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// frameMsg is the display refresh that drives queued clock frames.
type frameMsg time.Time

// toastExpiredMsg asks for a redraw once a toast has timed out.
type toastExpiredMsg struct{}

// Options configures a Model.
type Options struct {
	Theme         *config.ThemeConfig
	FrameInterval time.Duration
	Notifier      ports.Notifier
	// OnLocaleChange is called after the user switches language.
	OnLocaleChange func(locale string)
}

const (
	fieldHours = iota
	fieldMinutes
)

const sidebarWidth = 36

// Model represents the TUI state.
type Model struct {
	ctrl          Controller
	display       *Display
	translator    ports.Translator
	notifier      ports.Notifier
	theme         config.ThemeConfig
	frameInterval time.Duration
	now           func() time.Time

	spinner spinner.Model
	bar     progress.Model

	editing      bool
	editField    int
	hoursInput   textinput.Model
	minutesInput textinput.Model

	width   int
	height  int
	ticking bool

	onLocaleChange func(string)
}

// NewModel creates a new TUI model on top of ctrl. display must be the host
// and frame scheduler ctrl was built with.
func NewModel(ctrl Controller, display *Display, translator ports.Translator, opts Options) Model {
	theme := resolveTheme(opts.Theme)

	interval := opts.FrameInterval
	if interval <= 0 {
		interval = clock.FallbackInterval
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Points))
	sp.Style = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.UpdateForeground)).
		Background(lipgloss.Color(theme.UpdateBackground))

	bar := progress.New(
		progress.WithSolidFill(theme.AltUpdateBar),
		progress.WithoutPercentage(),
	)
	bar.Full = '━'
	bar.Empty = '━'
	bar.EmptyColor = theme.AltUpdateTrack

	return Model{
		ctrl:           ctrl,
		display:        display,
		translator:     translator,
		notifier:       opts.Notifier,
		theme:          theme,
		frameInterval:  interval,
		now:            time.Now,
		spinner:        sp,
		bar:            bar,
		hoursInput:     newDurationInput(2),
		minutesInput:   newDurationInput(2),
		onLocaleChange: opts.OnLocaleChange,
	}
}

func newDurationInput(limit int) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = limit + 1
	ti.Width = limit + 1
	ti.Prompt = ""
	return ti
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			_ = m.ctrl.Stop()
			cmd := m.sync()
			return m, tea.Batch(cmd, tea.Quit)
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		if m.ctrl.Snapshot().IsRunning() {
			return m.updateRunning(msg)
		}
		return m.updateIdle(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		m.ticking = false
		for _, fn := range m.display.takeFrames() {
			fn(time.Time(msg))
		}
		cmd := m.sync()
		return m, cmd

	case toastExpiredMsg:
		m.display.expireToast(m.now())
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateRunning handles keys while a session owns the screen.
func (m Model) updateRunning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.leaveFullscreen()
	case "enter", " ":
		_ = m.ctrl.Stop()
	}
	cmd := m.sync()
	return m, cmd
}

// updateIdle handles the settings keys.
func (m Model) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.display.Fullscreen() {
			return m.leaveFullscreen()
		}
	case "enter", " ":
		// A refused start already produced its toast.
		_ = m.ctrl.Start()
	case "1", "2", "3":
		if v, err := domain.ParseVariant(msg.String()); err == nil {
			_ = m.ctrl.SetVariant(v)
		}
	case "m":
		next := domain.ModeTimed
		if m.ctrl.Settings().Mode == domain.ModeTimed {
			next = domain.ModeLoop
		}
		_ = m.ctrl.SetMode(next)
	case "e":
		return m.beginEditing()
	case "r":
		m.ctrl.Reset()
	case "l":
		m.cycleLocale()
	case "f":
		if m.display.Fullscreen() {
			return m.leaveFullscreen()
		}
		m.display.RequestFullscreen()
	case "tab":
		m.display.SetSettingsVisible(!m.display.SettingsVisible())
	}
	cmd := m.sync()
	return m, cmd
}

// leaveFullscreen is the user leaving the alternate screen on their own.
// The controller hears about it like any host fullscreen change.
func (m Model) leaveFullscreen() (tea.Model, tea.Cmd) {
	m.display.ExitFullscreen()
	m.ctrl.OnFullscreenChange(false)
	cmd := m.sync()
	return m, cmd
}

func (m Model) beginEditing() (tea.Model, tea.Cmd) {
	s := m.ctrl.Settings()
	m.editing = true
	m.editField = fieldHours
	m.hoursInput.SetValue(fmt.Sprint(s.Hours))
	m.minutesInput.SetValue(fmt.Sprint(s.Minutes))
	m.hoursInput.CursorEnd()
	m.minutesInput.CursorEnd()
	m.minutesInput.Blur()
	cmd := m.hoursInput.Focus()
	return m, cmd
}

// updateEditing handles input while the duration fields are focused.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endEditing()
		return m, nil
	case "enter":
		// Invalid text leaves the stored value untouched.
		m.ctrl.SetHour(m.hoursInput.Value())
		m.ctrl.SetMinute(m.minutesInput.Value())
		m.endEditing()
		return m, nil
	case "up", "down", "tab", "shift+tab":
		if m.editField == fieldHours {
			m.editField = fieldMinutes
			m.hoursInput.Blur()
			cmd := m.minutesInput.Focus()
			return m, cmd
		}
		m.editField = fieldHours
		m.minutesInput.Blur()
		cmd := m.hoursInput.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	if m.editField == fieldHours {
		m.hoursInput, cmd = m.hoursInput.Update(msg)
	} else {
		m.minutesInput, cmd = m.minutesInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) endEditing() {
	m.editing = false
	m.hoursInput.Blur()
	m.minutesInput.Blur()
}

func (m *Model) cycleLocale() {
	if m.translator == nil {
		return
	}
	locales := m.translator.Locales()
	if len(locales) == 0 {
		return
	}
	current := m.translator.CurrentLocale()
	next := locales[0]
	for i, l := range locales {
		if l == current {
			next = locales[(i+1)%len(locales)]
			break
		}
	}
	if err := m.ctrl.SetLocale(next); err != nil {
		return
	}
	if m.notifier != nil {
		m.notifier.Notify(ports.NotifyInfo, m.translator.Translate("toast.locale", i18n.LocaleName(next)))
	}
	if m.onLocaleChange != nil {
		m.onLocaleChange(next)
	}
}

// sync turns what the controller asked of the display into commands:
// alt screen switches, the next frame tick and toast expiry.
func (m *Model) sync() tea.Cmd {
	cmds := m.display.takeRequests()
	if !m.ticking && m.display.hasFrames() {
		m.ticking = true
		cmds = append(cmds, frameCmd(m.frameInterval))
	}
	if until, ok := m.display.takeToastDeadline(); ok {
		wait := until.Sub(m.now())
		if wait < 0 {
			wait = 0
		}
		cmds = append(cmds, tea.Tick(wait, func(time.Time) tea.Msg {
			return toastExpiredMsg{}
		}))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// frameCmd creates a command that sends the next frame.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := m.ctrl.Snapshot()
	settings := m.ctrl.Settings()
	toast := m.viewToast()

	if state.IsRunning() || m.display.Fullscreen() {
		height := m.height
		if toast != "" {
			height--
		}
		screen := m.viewScreen(state, settings.Variant, m.width, height)
		if toast != "" {
			return lipgloss.JoinVertical(lipgloss.Left, screen, toast)
		}
		return screen
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	help := m.tr("help.idle")
	if m.editing {
		help = m.tr("help.edit")
	}

	bodyHeight := m.height - 1
	if toast != "" {
		bodyHeight--
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if m.display.SettingsVisible() {
		sidebar := m.viewSidebar(settings, bodyHeight)
		previewWidth := m.width - lipgloss.Width(sidebar)
		if previewWidth < 1 {
			body = sidebar
		} else {
			body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewScreen(state, settings.Variant, previewWidth, bodyHeight), sidebar)
		}
	} else {
		help = m.tr("help.hidden")
		body = m.viewScreen(state, settings.Variant, m.width, bodyHeight)
	}

	sections := []string{body}
	if toast != "" {
		sections = append(sections, toast)
	}
	sections = append(sections, helpStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewToast() string {
	t, ok := m.display.Toast(m.now())
	if !ok {
		return ""
	}
	color := m.theme.ColorActive
	if t.Kind == ports.NotifyError {
		color = m.theme.ColorError
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render("● " + t.Message)
}

func (m Model) tr(key string, args ...any) string {
	if m.translator == nil {
		return key
	}
	return m.translator.Translate(key, args...)
}
