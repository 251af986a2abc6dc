package tmux

import "testing"

func TestResolveSocketPathPrefersFlag(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/work,123,0")
	got, err := ResolveSocketPath("/custom.sock")
	if err != nil || got != "/custom.sock" {
		t.Fatalf("expected flag socket, got %q (%v)", got, err)
	}
	got, err = ResolveSocketPath("")
	if err != nil || got != "/tmp/tmux-1000/work" {
		t.Fatalf("expected socket from TMUX, got %q (%v)", got, err)
	}
}

func TestResolveSocketPathDefault(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TMUX_TMPDIR", "/var/run/tmuxdir")
	got, err := ResolveSocketPath("")
	if err != nil {
		t.Skipf("skipping: current user unavailable: %v", err)
	}
	if want := "/var/run/tmuxdir/tmux-"; len(got) <= len(want) || got[:len(want)] != want {
		t.Fatalf("expected socket under TMUX_TMPDIR, got %q", got)
	}
}

func TestInsideTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	if InsideTmux() {
		t.Fatalf("expected false with empty TMUX")
	}
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	if !InsideTmux() {
		t.Fatalf("expected true with TMUX set")
	}
}
