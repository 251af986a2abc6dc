package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tmux-popup-convert/internal/clipboard"
	"github.com/atomicstack/tmux-popup-convert/internal/logging/events"
	"github.com/atomicstack/tmux-popup-convert/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

var errNothingToCopy = errors.New("nothing to copy")

// ActionResult reports the outcome of an asynchronous action.
type ActionResult struct {
	Info string
	Err  error
}

// copyText picks what "y" copies: the rounded result after a conversion,
// otherwise the raw buffer.
func (m *Model) copyText() string {
	if m.session.ShowingResult() {
		if out, ok := m.session.Outcome(); ok {
			return out.Formatted
		}
	}
	return m.session.Buffer()
}

func (m *Model) copyResult() tea.Cmd {
	text := m.copyText()
	if text == "" {
		m.errMsg = errNothingToCopy.Error()
		return nil
	}
	if m.copier == nil {
		m.errMsg = clipboard.ErrDisabled.Error()
		return nil
	}
	if m.copying {
		return nil
	}
	m.copying = true
	copier := m.copier
	return m.bus.Execute(command.Request{
		ID:    "copy",
		Label: text,
		Run: func() tea.Msg {
			target, err := copier.Copy(text)
			if err != nil {
				return ActionResult{Err: err}
			}
			return ActionResult{Info: fmt.Sprintf("Copied %s to %s", text, target)}
		},
	})
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(ActionResult)
	if !ok {
		return nil
	}
	m.copying = false
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}
