package tmux

import (
	"os/exec"
	"strings"
)

var runTmuxFn = runTmux

func runTmux(args ...string) ([]byte, error) {
	return exec.Command("tmux", args...).CombinedOutput() //nolint:gosec
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}
