package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendChoice(m choiceModel, msg tea.Msg) (choiceModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(choiceModel), cmd
}

func sendNumber(m numberPromptModel, msg tea.Msg) (numberPromptModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(numberPromptModel), cmd
}

var styleChoices = []Choice{
	{Value: "auto", Hint: "Match the detected platform"},
	{Value: "bsod", Hint: "Crash screen"},
	{Value: "windows-update", Hint: "Update screen"},
}

func TestChoiceModel_StartsOnSavedValue(t *testing.T) {
	m := newChoiceModel("Screen style", styleChoices, 2, nil)

	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	view := m.View()
	if !strings.Contains(view, "3  windows-update") || !strings.Contains(view, "(saved)") {
		t.Errorf("view should number rows and mark the saved one:\n%s", view)
	}
	if !strings.Contains(view, "1-3 pick") {
		t.Errorf("view should name the number keys:\n%s", view)
	}
}

func TestChoiceModel_OutOfRangeSavedFallsBackToFirst(t *testing.T) {
	m := newChoiceModel("Screen style", styleChoices, 7, nil)
	if m.cursor != 0 || m.saved != 0 {
		t.Errorf("cursor/saved = %d/%d, want 0/0", m.cursor, m.saved)
	}
}

func TestChoiceModel_ArrowsWrap(t *testing.T) {
	m := newChoiceModel("Screen style", styleChoices, 0, nil)

	m, _ = sendChoice(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 2 {
		t.Errorf("up from first: cursor = %d, want 2", m.cursor)
	}
	m, _ = sendChoice(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Errorf("down from last: cursor = %d, want 0", m.cursor)
	}
}

func TestChoiceModel_NumberKeyPicks(t *testing.T) {
	m := newChoiceModel("Screen style", styleChoices, 0, nil)

	m, cmd := sendChoice(m, key("2"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	if cmd == nil {
		t.Error("a number key should finish the prompt")
	}

	m, cmd = sendChoice(m, key("9"))
	if m.cursor != 1 || cmd != nil {
		t.Error("a number past the list should be ignored")
	}
}

func TestChoiceModel_EscAborts(t *testing.T) {
	m := newChoiceModel("Screen style", styleChoices, 0, nil)

	m, cmd := sendChoice(m, key("esc"))
	if !m.aborted || cmd == nil {
		t.Error("esc should abort and quit")
	}
}

func TestNumberPromptModel_AcceptsValueInRange(t *testing.T) {
	m := newNumberPromptModel("Hours", 1, 24, nil)

	m, _ = sendNumber(m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = sendNumber(m, key("7"))
	m, cmd := sendNumber(m, key("enter"))

	if m.value != 7 {
		t.Errorf("value = %d, want 7", m.value)
	}
	if cmd == nil {
		t.Error("a valid number should finish the prompt")
	}
}

func TestNumberPromptModel_RefusesOutOfRange(t *testing.T) {
	m := newNumberPromptModel("Hours", 3, 24, nil)

	m, _ = sendNumber(m, key("0"))
	m, cmd := sendNumber(m, key("enter"))

	if cmd != nil {
		t.Error("30 hours should not be accepted")
	}
	if m.value != 3 {
		t.Errorf("value = %d, want the prefilled 3", m.value)
	}
	if !strings.Contains(m.View(), "30 is more than 24") {
		t.Errorf("view should explain the problem:\n%s", m.View())
	}

	m, _ = sendNumber(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.problem != "" {
		t.Error("editing should clear the problem")
	}
}

func TestNumberPromptModel_EmptyReadsAsZero(t *testing.T) {
	m := newNumberPromptModel("Minutes", 5, 59, nil)

	m, _ = sendNumber(m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, cmd := sendNumber(m, key("enter"))

	if m.value != 0 || cmd == nil {
		t.Errorf("value = %d, want 0 and done", m.value)
	}
}

func TestNumberPromptModel_EscAborts(t *testing.T) {
	m := newNumberPromptModel("Minutes", 5, 59, nil)

	m, cmd := sendNumber(m, key("esc"))
	if !m.aborted || cmd == nil {
		t.Error("esc should abort and quit")
	}
}
