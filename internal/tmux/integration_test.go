package tmux

import (
	"testing"

	"github.com/atomicstack/tmux-popup-convert/internal/testutil"
)

func TestSetBufferIntegration(t *testing.T) {
	socket := testutil.StartTmuxServer(t)
	if err := SetBuffer(socket, BufferName, "68.8976"); err != nil {
		t.Fatalf("SetBuffer failed: %v", err)
	}
	if got := testutil.ShowBuffer(t, socket, BufferName); got != "68.8976" {
		t.Fatalf("expected buffer 68.8976, got %q", got)
	}
	if err := SetBuffer(socket, BufferName, "-12.5"); err != nil {
		t.Fatalf("SetBuffer with leading dash failed: %v", err)
	}
	if got := testutil.ShowBuffer(t, socket, BufferName); got != "-12.5" {
		t.Fatalf("expected buffer -12.5, got %q", got)
	}
}
