package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header        *lipgloss.Style
	Welcome       *lipgloss.Style
	Label         *lipgloss.Style
	NameLocked    *lipgloss.Style
	Display       *lipgloss.Style
	DisplayBorder *lipgloss.Style
	Key           *lipgloss.Style
	SelectedKey   *lipgloss.Style
	DisabledKey   *lipgloss.Style
	ConvertKey    *lipgloss.Style
	Length        *lipgloss.Style
	Weight        *lipgloss.Style
	Temperature   *lipgloss.Style
	Reference     *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Footer        *lipgloss.Style
	Placeholder   *lipgloss.Style
	Cursor        *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Welcome: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	NameLocked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Italic(true),
	),
	Display: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	DisplayBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Key: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	SelectedKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	DisabledKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("235")),
	),
	ConvertKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	Length: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	),
	Weight: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
	),
	Temperature: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
	),
	Reference: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
