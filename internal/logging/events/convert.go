package events

import (
	"github.com/atomicstack/tmux-popup-convert/internal/converter"
	"github.com/atomicstack/tmux-popup-convert/internal/logging"
)

type ConvertTracer struct{}

var Convert = ConvertTracer{}

func (ConvertTracer) NameConfirmed(name string) {
	logging.Trace("name.confirm", map[string]interface{}{"name": name})
}

func (ConvertTracer) Digit(key, buffer string) {
	logging.Trace("input.digit", map[string]interface{}{"key": key, "buffer": buffer})
}

func (ConvertTracer) Reset() {
	logging.Trace("input.reset", nil)
}

func (ConvertTracer) Result(out converter.ConversionOutcome) {
	if !logging.TraceEnabled() {
		return
	}
	logging.Trace("convert.result", map[string]interface{}{
		"category":  out.Category.String(),
		"direction": out.Direction.String(),
		"input":     out.Input,
		"result":    out.Result,
		"text":      out.Text,
	})
}

// Rejected records an action refused by the session.
func (ConvertTracer) Rejected(action string, err error) {
	if err == nil {
		return
	}
	logging.Trace("input.rejected", map[string]interface{}{"action": action, "error": err.Error()})
}
