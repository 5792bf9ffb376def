package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/prank-cli/internal/config"
)

// Choice is one value offered by a settings prompt.
type Choice struct {
	Value string
	Hint  string
}

// ChoiceResult is the outcome of RunChoice.
type ChoiceResult struct {
	Index   int
	Aborted bool
}

// promptStyles are the styles shared by the settings prompts.
type promptStyles struct {
	title  lipgloss.Style
	active lipgloss.Style
	dim    lipgloss.Style
	err    lipgloss.Style
}

func newPromptStyles(theme *config.ThemeConfig) promptStyles {
	t := resolveTheme(theme)
	return promptStyles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorActive)),
		active: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorActive)),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorHelp)),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorError)),
	}
}

// choiceModel lists numbered values; the saved one is marked.
type choiceModel struct {
	title   string
	choices []Choice
	saved   int
	cursor  int
	aborted bool
	styles  promptStyles
}

func newChoiceModel(title string, choices []Choice, saved int, theme *config.ThemeConfig) choiceModel {
	if saved < 0 || saved >= len(choices) {
		saved = 0
	}
	return choiceModel{
		title:   title,
		choices: choices,
		saved:   saved,
		cursor:  saved,
		styles:  newPromptStyles(theme),
	}
}

func (m choiceModel) Init() tea.Cmd { return nil }

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.choices) == 0 {
		return m, nil
	}

	switch k := keyMsg.String(); k {
	case "up", "k":
		m.cursor = (m.cursor + len(m.choices) - 1) % len(m.choices)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(m.choices)
	case "enter":
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	default:
		// Number keys pick directly.
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(m.choices) {
			m.cursor = n - 1
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m choiceModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + m.styles.title.Render(m.title) + "\n\n")

	for i, c := range m.choices {
		row := fmt.Sprintf("%d  %-16s %s", i+1, c.Value, c.Hint)
		if i == m.saved {
			row += "  (saved)"
		}
		if i == m.cursor {
			b.WriteString("  " + m.styles.active.Render("▸ "+row) + "\n")
		} else {
			b.WriteString("  " + m.styles.dim.Render("  "+row) + "\n")
		}
	}

	help := fmt.Sprintf("1-%d pick · ↑/↓ move · enter choose · esc cancel", len(m.choices))
	b.WriteString("\n  " + m.styles.dim.Render(help) + "\n")
	return b.String()
}

// RunChoice asks the user to pick one of choices, starting on the saved one.
func RunChoice(title string, choices []Choice, saved int, theme *config.ThemeConfig) ChoiceResult {
	result, err := tea.NewProgram(newChoiceModel(title, choices, saved, theme)).Run()
	if err != nil {
		return ChoiceResult{Aborted: true}
	}
	final := result.(choiceModel)
	if final.aborted {
		return ChoiceResult{Aborted: true}
	}
	return ChoiceResult{Index: final.cursor}
}

// NumberResult is the outcome of RunNumberPrompt.
type NumberResult struct {
	Value   int
	Aborted bool
}

// numberPromptModel reads a whole number in [0, limit]. Enter is refused until
// the input is valid; an empty field reads as 0.
type numberPromptModel struct {
	title   string
	limit   int
	input   textinput.Model
	value   int
	problem string
	aborted bool
	styles  promptStyles
}

func newNumberPromptModel(title string, value, limit int, theme *config.ThemeConfig) numberPromptModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = len(strconv.Itoa(limit))
	ti.Width = ti.CharLimit + 1
	ti.SetValue(strconv.Itoa(value))
	ti.CursorEnd()
	ti.Focus()

	return numberPromptModel{
		title:  title,
		limit:  limit,
		input:  ti,
		value:  value,
		styles: newPromptStyles(theme),
	}
}

func (m numberPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m numberPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			n, err := m.parse()
			if err != nil {
				m.problem = err.Error()
				return m, nil
			}
			m.value = n
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.problem = ""
	return m, cmd
}

func (m numberPromptModel) parse() (int, error) {
	in := strings.TrimSpace(m.input.Value())
	if in == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(in)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("enter a whole number from 0 to %d", m.limit)
	}
	if n > m.limit {
		return 0, fmt.Errorf("%d is more than %d", n, m.limit)
	}
	return n, nil
}

func (m numberPromptModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + m.styles.title.Render(m.title) + " ")
	b.WriteString(m.input.View())
	b.WriteString(m.styles.dim.Render(fmt.Sprintf(" (0-%d)", m.limit)) + "\n")
	if m.problem != "" {
		b.WriteString("  " + m.styles.err.Render(m.problem) + "\n")
	}
	b.WriteString("\n  " + m.styles.dim.Render("enter confirm · esc cancel") + "\n")
	return b.String()
}

// RunNumberPrompt asks for a whole number in [0, limit], prefilled with value.
func RunNumberPrompt(title string, value, limit int, theme *config.ThemeConfig) NumberResult {
	result, err := tea.NewProgram(newNumberPromptModel(title, value, limit, theme)).Run()
	if err != nil {
		return NumberResult{Aborted: true}
	}
	final := result.(numberPromptModel)
	if final.aborted {
		return NumberResult{Aborted: true}
	}
	return NumberResult{Value: final.value}
}
