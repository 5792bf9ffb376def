package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/prank-cli/internal/adapters/i18n"
	"github.com/xvierd/prank-cli/internal/domain"
)

// Fixed details shown on the crash screen.
const (
	failureFace     = ":("
	failureStopCode = "0x0000005"
	failureItem     = "win32kbase.sys"
)

// viewScreen renders the fake screen for variant at the given size.
func (m Model) viewScreen(state domain.SessionState, variant domain.DisplayVariant, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	percent := state.DisplayPercent()
	switch variant {
	case domain.VariantUpdate:
		return m.viewUpdate(percent, width, height)
	case domain.VariantAltUpdate:
		return m.viewAltUpdate(percent, width, height)
	default:
		return m.viewFailure(percent, width, height)
	}
}

// viewFailure is the crash screen: a big sad face, the error text and the
// percentage of "collected" error info.
func (m Model) viewFailure(percent, width, height int) string {
	bg := lipgloss.Color(m.theme.FailureBackground)
	fg := lipgloss.Color(m.theme.FailureForeground)

	padX, padY := width/10, height/8
	if width < 60 {
		padX = 1
	}

	lines := []string{
		renderBig(failureFace, width),
		"",
		m.tr("failure.line1"),
		m.tr("failure.line2"),
		"",
		m.tr("failure.progress", percent),
		"",
		m.tr("failure.info"),
		"",
		m.tr("failure.support"),
		m.tr("failure.stopcode", failureStopCode),
		m.tr("failure.failed", failureItem),
	}

	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Width(width).
		Height(height).
		MaxHeight(height).
		Padding(padY, padX).
		Render(strings.Join(lines, "\n"))
}

// viewUpdate is the blue "working on updates" screen with a spinner.
func (m Model) viewUpdate(percent, width, height int) string {
	bg := lipgloss.Color(m.theme.UpdateBackground)
	fg := lipgloss.Color(m.theme.UpdateForeground)
	text := lipgloss.NewStyle().Background(bg).Foreground(fg)

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.spinner.View(),
		"",
		text.Render(m.tr("update.working")),
		text.Render(m.tr("update.progress", percent)),
		text.Render(m.tr("update.warning")),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(bg))
}

// viewAltUpdate is the black screen with an emblem and a thin progress bar.
func (m Model) viewAltUpdate(percent, width, height int) string {
	bg := lipgloss.Color(m.theme.AltUpdateBackground)
	fg := lipgloss.Color(m.theme.AltUpdateForeground)
	logoStyle := lipgloss.NewStyle().Background(bg).Foreground(fg)

	bar := m.bar
	bar.Width = width / 6
	if bar.Width < 10 {
		bar.Width = 10
	}
	if bar.Width > width {
		bar.Width = width
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		logoStyle.Render(strings.Join(logoArt, "\n")),
		"",
		"",
		bar.ViewAs(float64(percent)/100),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(bg))
}

// viewSidebar renders the settings panel.
func (m Model) viewSidebar(settings domain.Settings, height int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorActive))
	headerStyle := lipgloss.NewStyle().Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorActive)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	option := func(selected bool, label string) string {
		if selected {
			return activeStyle.Render("▸ " + label)
		}
		return dimStyle.Render("  " + label)
	}

	var sections []string
	sections = append(sections, titleStyle.Render(m.tr("sidebar.title")), "")

	sections = append(sections, headerStyle.Render(m.tr("sidebar.variant")))
	for i, v := range domain.Variants {
		sections = append(sections, option(v == settings.Variant, fmt.Sprintf("%d %s", i+1, v.Label())))
	}

	sections = append(sections, "", headerStyle.Render(m.tr("sidebar.mode")))
	for _, mode := range domain.ValidModes {
		sections = append(sections, option(mode == settings.Mode, m.tr(mode.LabelKey())))
	}

	sections = append(sections, "", headerStyle.Render(m.tr("sidebar.duration")))
	if m.editing {
		sections = append(sections,
			fmt.Sprintf("%s %s", m.hoursInput.View(), m.tr("sidebar.hours")),
			fmt.Sprintf("%s %s", m.minutesInput.View(), m.tr("sidebar.minutes")),
		)
	} else {
		sections = append(sections, fmt.Sprintf("%d %s %d %s",
			settings.Hours, m.tr("sidebar.hours"), settings.Minutes, m.tr("sidebar.minutes")))
	}

	sections = append(sections, "", headerStyle.Render(m.tr("sidebar.language")))
	sections = append(sections, i18n.LocaleName(settings.Locale))

	sections = append(sections, "",
		activeStyle.Render("[enter] "+m.tr("sidebar.start")),
		dimStyle.Render("[r] "+m.tr("sidebar.reset")+"  [f] "+m.tr("sidebar.fullscreen")),
	)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorPanel)).
		Padding(0, 1).
		Width(sidebarWidth - 2)
	if height > 2 {
		panel = panel.Height(height - 2).MaxHeight(height)
	}
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
