package ui

import (
	"github.com/atomicstack/tmux-popup-convert/internal/converter"
	"github.com/atomicstack/tmux-popup-convert/internal/logging/events"
	uistate "github.com/atomicstack/tmux-popup-convert/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// shortcuts maps direct keys to keypad buttons.
var shortcuts = map[string]string{
	".":         ".",
	",":         ".",
	"c":         "reset",
	"backspace": "reset",
	"delete":    "reset",
	"l":         converter.Length.String(),
	"w":         converter.Weight.String(),
	"p":         converter.Weight.String(),
	"t":         converter.Temperature.String(),
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "tab", "shift+tab":
		m.toggleFocus()
		return nil
	}
	if m.focus == FocusName {
		return nil
	}
	s := key.String()
	switch s {
	case "q":
		return tea.Quit
	case "?":
		m.showFooter = !m.showFooter
		return nil
	case "y":
		return m.copyResult()
	case "up", "k":
		m.moveCursor(m.keypad.MoveUp)
		return nil
	case "down", "j":
		m.moveCursor(m.keypad.MoveDown)
		return nil
	case "left", "h":
		m.moveCursor(m.keypad.MoveLeft)
		return nil
	case "right":
		m.moveCursor(m.keypad.MoveRight)
		return nil
	case "enter", " ", "space":
		if current, ok := m.keypad.Current(); ok {
			return m.press(current)
		}
		return nil
	}
	if id, ok := shortcuts[s]; ok {
		return m.pressID(id)
	}
	if runes := []rune(s); len(runes) == 1 {
		if d, ok := converter.ParseDigit(runes[0]); ok {
			return m.pressID(d.String())
		}
	}
	return nil
}

func (m *Model) toggleFocus() {
	if m.session.Confirmed() {
		return
	}
	if m.focus == FocusName {
		m.setFocus(FocusKeypad)
	} else {
		m.setFocus(FocusName)
	}
	events.UI.Focus(m.focus.String())
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.UI.KeypadCursor(m.keypad.Row, m.keypad.Col)
	}
}

func (m *Model) pressID(id string) tea.Cmd {
	key, _, _, ok := m.keypad.Find(id)
	if !ok {
		return nil
	}
	m.keypad.MoveTo(id)
	return m.press(key)
}

// press applies a keypad button to the session and refreshes the screen.
func (m *Model) press(key uistate.Key) tea.Cmd {
	events.UI.KeypadPress(key.ID)
	m.errMsg = ""
	var err error
	switch key.Kind {
	case uistate.KeyDigit:
		if err = m.session.AppendDigit(key.Digit); err == nil {
			m.showBuffer()
			events.Convert.Digit(key.ID, m.session.Buffer())
		}
	case uistate.KeyDecimal:
		if err = m.session.AppendDecimalPoint(); err == nil {
			m.showBuffer()
			events.Convert.Digit(key.ID, m.session.Buffer())
		}
	case uistate.KeyReset:
		m.session.Reset()
		m.showBuffer()
		events.Convert.Reset()
	case uistate.KeyConvert:
		var out converter.ConversionOutcome
		out, err = m.session.Convert(key.Category)
		switch {
		case err == nil:
			category := out.Category
			m.display = out.Text
			m.accent = &category
			events.Convert.Result(out)
		case m.session.Buffer() == "":
			// a rejected parse wipes the input
			m.showBuffer()
		}
	}
	if err != nil {
		m.errMsg = converter.Notice(err)
		events.Convert.Rejected(key.ID, err)
	}
	return nil
}

func (m *Model) showBuffer() {
	m.display = m.session.Buffer()
	m.accent = nil
}
