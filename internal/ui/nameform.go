package ui

import (
	"strings"

	"github.com/atomicstack/tmux-popup-convert/internal/converter"
	"github.com/atomicstack/tmux-popup-convert/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const nameCharLimit = 48

// NameForm collects the user's name before the keypad unlocks.
type NameForm struct {
	input  textinput.Model
	err    string
	locked bool
}

// NewNameForm returns a focused form, optionally pre-filled.
func NewNameForm(initial string) *NameForm {
	ti := textinput.New()
	ti.Placeholder = "tu nombre"
	ti.CharLimit = nameCharLimit
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		ti.Cursor.Style = styles.Cursor.Copy()
	}
	if styles.Placeholder != nil {
		ti.PlaceholderStyle = styles.Placeholder.Copy()
	}
	ti.Focus()
	if initial != "" {
		ti.SetValue(initial)
	}
	return &NameForm{input: ti}
}

func (f *NameForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *NameForm) InputView() string { return f.input.View() }
func (f *NameForm) Error() string     { return f.err }
func (f *NameForm) Locked() bool      { return f.locked }

func (f *NameForm) Focus() {
	if !f.locked {
		f.input.Focus()
	}
}

func (f *NameForm) Blur() { f.input.Blur() }

// Lock freezes the form once the name is accepted.
func (f *NameForm) Lock() {
	f.locked = true
	f.err = ""
	f.input.Blur()
}

// Update feeds a message to the text input. submitted reports an Enter press.
func (f *NameForm) Update(msg tea.Msg) (tea.Cmd, bool) {
	if f.locked {
		return nil, false
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false
		}
		if key.Type == tea.KeyEnter {
			return nil, true
		}
		f.err = ""
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd, false
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.focus != FocusName || m.session.Confirmed() {
		return false, nil
	}
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return false, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "tab", "shift+tab":
		return false, nil
	}
	cmd, submitted := m.form.Update(msg)
	if submitted {
		return true, m.confirmName()
	}
	return true, cmd
}

func (m *Model) confirmName() tea.Cmd {
	if err := m.session.ConfirmName(m.form.Value()); err != nil {
		m.form.err = converter.Notice(err)
		m.errMsg = ""
		events.Convert.Rejected("name", err)
		return nil
	}
	m.form.Lock()
	m.errMsg = ""
	m.setInfo(converter.NoticeConfirmed)
	events.Convert.NameConfirmed(m.session.Name())
	m.setFocus(FocusKeypad)
	events.UI.Focus(m.focus.String())
	return nil
}
