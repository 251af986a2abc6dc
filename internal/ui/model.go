package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/tmux-popup-convert/internal/clipboard"
	"github.com/atomicstack/tmux-popup-convert/internal/converter"
	"github.com/atomicstack/tmux-popup-convert/internal/theme"
	"github.com/atomicstack/tmux-popup-convert/internal/ui/command"
	uistate "github.com/atomicstack/tmux-popup-convert/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus names the widget that receives key presses.
type Focus int

const (
	FocusName Focus = iota
	FocusKeypad
)

func (f Focus) String() string {
	if f == FocusKeypad {
		return "keypad"
	}
	return "name"
}

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Copier publishes a result outside the popup.
type Copier interface {
	Copy(text string) (clipboard.Target, error)
}

// Options configures a new Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// Name pre-fills the name form. It still has to be confirmed.
	Name   string
	Copier Copier
}

// Model implements the Bubble Tea model for the converter popup.
type Model struct {
	session *converter.Session
	form    *NameForm
	keypad  *uistate.Keypad
	focus   Focus

	// display mirrors the calculator screen: the buffer while typing, the
	// formatted outcome after a conversion and empty after a failed parse.
	display string
	accent  *converter.Category

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	copying     bool

	handlers map[reflect.Type]msgHandler

	copier Copier
	bus    *command.Bus
}

// NewModel initialises the UI with an unconfirmed session.
func NewModel(opts Options) *Model {
	m := &Model{
		session:    converter.NewSession(),
		form:       NewNameForm(opts.Name),
		keypad:     uistate.NewKeypad(),
		focus:      FocusName,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		copier:     opts.Copier,
		bus:        command.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Session exposes the calculator state driven by the UI.
func (m *Model) Session() *converter.Session {
	return m.session
}

// Focus reports which widget currently receives keys.
func (m *Model) Focus() Focus {
	return m.focus
}

// Display returns the text currently shown on the calculator screen.
func (m *Model) Display() string {
	return m.display
}

func (m *Model) setFocus(f Focus) {
	if m.focus == f {
		return
	}
	m.focus = f
	if f == FocusName && !m.session.Confirmed() {
		m.form.Focus()
	} else {
		m.form.Blur()
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(ActionResult{}):      m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.clearInfo()
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
