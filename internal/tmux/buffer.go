package tmux

import (
	"fmt"
	"strings"
)

// BufferName is the paste buffer results are copied into.
const BufferName = "popup-convert"

// SetBuffer stores text in the named tmux paste buffer.
func SetBuffer(socketPath, name, text string) error {
	args := append(baseArgs(socketPath), "set-buffer")
	if name = strings.TrimSpace(name); name != "" {
		args = append(args, "-b", name)
	}
	args = append(args, "--", text)
	out, err := runTmuxFn(args...)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("tmux set-buffer failed: %w: %s", err, msg)
		}
		return fmt.Errorf("tmux set-buffer failed: %w", err)
	}
	return nil
}
