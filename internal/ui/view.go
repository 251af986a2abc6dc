package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-convert/internal/converter"
	"github.com/atomicstack/tmux-popup-convert/internal/format/table"
	"github.com/atomicstack/tmux-popup-convert/internal/logging/events"
	uistate "github.com/atomicstack/tmux-popup-convert/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	appTitle         = "App de Conversión"
	displayCardWidth = 34
	keyCellWidth     = 5
	infoDuration     = 5 * time.Second
	directionArrow   = "→"
)

const (
	nameFooter   = "enter confirm  tab keypad  ctrl+u clear  esc quit"
	keypadFooter = "0-9 . type  l/w/t convert  c reset  y copy  ←↑↓→ move  enter press  q quit"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 24)
	lines = append(lines, m.headerLine(), styledLine{})
	lines = append(lines, m.nameLines()...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.displayLines()...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.keypadLines()...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.referenceLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		footer := nameFooter
		if m.focus == FocusKeypad {
			footer = keypadFooter
		}
		lines = append(lines, styledLine{}, styledLine{text: footer, style: styles.Footer})
	}
	// Reserve the last row for the status line.
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: m.errMsg, style: styles.Error}
	}
	lines = append(lines, applyWidth([]styledLine{statusLine}, m.width)...)
	return renderLines(lines)
}

func (m *Model) headerLine() styledLine {
	if m.session.Confirmed() {
		return styledLine{text: converter.Welcome(m.session.Name()), style: styles.Welcome}
	}
	return styledLine{text: appTitle, style: styles.Header}
}

func (m *Model) nameLines() []styledLine {
	if m.session.Confirmed() {
		return []styledLine{{text: "Nombre: " + m.session.Name(), style: styles.NameLocked}}
	}
	label := "Nombre"
	if styles.Label != nil {
		label = styles.Label.Render(label)
	}
	lines := []styledLine{{text: label + " " + m.form.InputView(), raw: true}}
	if err := m.form.Error(); err != "" {
		lines = append(lines, styledLine{text: err, style: styles.Error})
	}
	return lines
}

func (m *Model) accentStyle() *lipgloss.Style {
	if m.accent == nil {
		return nil
	}
	return categoryStyle(*m.accent)
}

func categoryStyle(c converter.Category) *lipgloss.Style {
	switch c {
	case converter.Length:
		return styles.Length
	case converter.Weight:
		return styles.Weight
	case converter.Temperature:
		return styles.Temperature
	}
	return nil
}

// displayLines renders the calculator screen as a bordered card.
func (m *Model) displayLines() []styledLine {
	inner := displayCardWidth
	if m.width > 0 && m.width-2 < inner {
		inner = m.width - 2
	}
	if inner < 1 {
		inner = 1
	}
	textStyle := lipgloss.NewStyle()
	if styles.Display != nil {
		textStyle = *styles.Display
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(inner).
		Align(lipgloss.Right)
	if styles.DisplayBorder != nil {
		box = box.BorderForeground(styles.DisplayBorder.GetForeground())
	}
	if accent := m.accentStyle(); accent != nil {
		textStyle = textStyle.Foreground(accent.GetForeground())
		box = box.BorderForeground(accent.GetForeground())
	}
	text := truncateText(m.display, inner)
	if text == "" {
		text = " "
	}
	card := box.Render(textStyle.Render(text))
	rows := strings.Split(card, "\n")
	lines := make([]styledLine, len(rows))
	for i, row := range rows {
		lines[i] = styledLine{text: row, raw: true}
	}
	return lines
}

func (m *Model) keypadLines() []styledLine {
	lines := make([]styledLine, 0, len(m.keypad.Rows))
	for r, row := range m.keypad.Rows {
		cells := make([]string, len(row))
		for c, key := range row {
			cells[c] = m.keyStyle(key, r, c).Render(centerLabel(key.Label, keyCellWidth))
		}
		lines = append(lines, styledLine{text: strings.Join(cells, " "), raw: true})
	}
	return lines
}

func (m *Model) keyStyle(key uistate.Key, row, col int) *lipgloss.Style {
	switch {
	case m.focus == FocusKeypad && m.keypad.Selected(row, col):
		return styles.SelectedKey
	case !m.session.Confirmed():
		return styles.DisabledKey
	case key.Kind == uistate.KeyConvert:
		return styles.ConvertKey
	}
	return styles.Key
}

func centerLabel(label string, width int) string {
	pad := width - lipgloss.Width(label)
	if pad <= 0 {
		return label
	}
	left := pad / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
}

// referenceLines lists, per category, what the next press would convert.
func (m *Model) referenceLines() []styledLine {
	rows := make([][]string, 0, len(converter.Categories))
	for _, c := range converter.Categories {
		from, to := m.session.NextDirection(c).Units()
		key := ""
		if k, _, _, ok := m.keypad.Find(c.String()); ok {
			key = k.Label
		}
		rows = append(rows, []string{key, c.Label(), from + " " + directionArrow + " " + to})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})
	lines := make([]styledLine, len(formatted))
	for i, text := range formatted {
		style := styles.Reference
		if m.accent != nil && *m.accent == converter.Categories[i] {
			style = categoryStyle(converter.Categories[i])
		}
		lines[i] = styledLine{text: text, style: style}
	}
	return lines
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
