package events

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-popup-convert/internal/converter"
	"github.com/atomicstack/tmux-popup-convert/internal/logging"
)

func useTempLog(t *testing.T, trace bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "convert.log")
	logging.Configure(path)
	logging.SetTraceEnabled(trace)
	t.Cleanup(func() {
		logging.Configure("")
		logging.SetTraceEnabled(false)
	})
	return path
}

func sampleOutcome() converter.ConversionOutcome {
	return converter.ConversionOutcome{
		Category:  converter.Length,
		Direction: converter.MetersToFeet,
		Input:     21,
		Result:    68.89764,
		Formatted: "68.8976",
		Text:      "21.0 metros = 68.8976 pies",
		Buffer:    "68.89764",
	}
}

func TestResultSkippedWhenTraceDisabled(t *testing.T) {
	path := useTempLog(t, false)
	Convert.Result(sampleOutcome())
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, got err=%v", err)
	}
}

func TestResultWritesEntry(t *testing.T) {
	path := useTempLog(t, true)
	Convert.Result(sampleOutcome())
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"convert.result"`) || !strings.Contains(line, "21.0 metros = 68.8976 pies") {
		t.Fatalf("unexpected trace line %q", line)
	}
}
