// Package clipboard copies conversion results out of the popup, into a tmux
// paste buffer when running under tmux and the system clipboard otherwise.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/atomicstack/tmux-popup-convert/internal/tmux"
)

// Target selects where copied text goes.
type Target string

const (
	TargetAuto   Target = "auto"
	TargetTmux   Target = "tmux"
	TargetSystem Target = "clipboard"
	TargetNone   Target = "none"
)

// ErrDisabled is returned by Copy when the target is TargetNone.
var ErrDisabled = errors.New("copying is disabled")

var (
	setBufferFn     = tmux.SetBuffer
	writeAllFn      = clipboard.WriteAll
	insideTmuxFn    = tmux.InsideTmux
	resolveSocketFn = tmux.ResolveSocketPath
)

// ParseTarget validates a configured target name. Empty selects TargetAuto.
func ParseTarget(value string) (Target, error) {
	switch t := Target(strings.ToLower(strings.TrimSpace(value))); t {
	case "":
		return TargetAuto, nil
	case TargetAuto, TargetTmux, TargetSystem, TargetNone:
		return t, nil
	default:
		return "", fmt.Errorf("unknown copy target %q (want auto, tmux, clipboard or none)", value)
	}
}

// Writer copies text to the configured target.
type Writer struct {
	target     Target
	socketPath string
}

// New returns a Writer. socketPath may be empty to use tmux's default lookup.
func New(target Target, socketPath string) *Writer {
	if target == "" {
		target = TargetAuto
	}
	return &Writer{target: target, socketPath: socketPath}
}

// Resolve reports the concrete target used for the next copy.
func (w *Writer) Resolve() Target {
	if w.target != TargetAuto {
		return w.target
	}
	if w.socketPath != "" || insideTmuxFn() {
		return TargetTmux
	}
	return TargetSystem
}

// Copy writes text and returns the target that received it.
func (w *Writer) Copy(text string) (Target, error) {
	target := w.Resolve()
	switch target {
	case TargetNone:
		return target, ErrDisabled
	case TargetTmux:
		socket, err := resolveSocketFn(w.socketPath)
		if err != nil {
			return target, fmt.Errorf("resolve socket path: %w", err)
		}
		return target, setBufferFn(socket, tmux.BufferName, text)
	default:
		if err := writeAllFn(text); err != nil {
			return target, fmt.Errorf("system clipboard: %w", err)
		}
		return target, nil
	}
}
