package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-convert/internal/clipboard"
	"github.com/atomicstack/tmux-popup-convert/internal/converter"
	"github.com/atomicstack/tmux-popup-convert/internal/script"
	"github.com/atomicstack/tmux-popup-convert/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Name       string
	CopyTarget clipboard.Target
	Script     string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Name:       cfg.Name,
		Copier:     clipboard.New(cfg.CopyTarget, cfg.SocketPath),
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// RunScript replays a key script against a fresh session. A script of "-"
// is read from stdin. A configured name is confirmed before the script runs.
func RunScript(cfg Config, stdin io.Reader, out io.Writer) error {
	var (
		steps []script.Step
		err   error
	)
	if cfg.Script == "-" {
		steps, err = script.Parse(stdin)
	} else {
		steps, err = script.ParseString(cfg.Script)
	}
	if err != nil {
		return fmt.Errorf("parse script: %w", err)
	}
	session := converter.NewSession()
	if name := strings.TrimSpace(cfg.Name); name != "" {
		if err := session.ConfirmName(name); err != nil {
			return err
		}
	}
	return script.Run(session, steps, out)
}

// RunStdin runs a script piped on stdin.
func RunStdin(cfg Config) error {
	cfg.Script = "-"
	return RunScript(cfg, os.Stdin, os.Stdout)
}
