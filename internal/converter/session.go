// Package converter holds the calculator's input and conversion state machine.
//
// A Session gates every numeric action behind name confirmation, accumulates
// typed keys in a textual buffer and toggles each category between its two
// directions. The last applied direction is a single field shared by all
// categories: it doubles as the "result on display" marker that makes the next
// key start a fresh number.
package converter

import (
	"fmt"
	"strings"
)

// Digit is a single keypad digit, 0 through 9.
type Digit uint8

// ParseDigit converts a key rune into a Digit.
func ParseDigit(r rune) (Digit, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return Digit(r - '0'), true
}

func (d Digit) String() string {
	return string(rune('0' + d))
}

// ConversionOutcome describes a successful conversion.
type ConversionOutcome struct {
	Category  Category
	Direction Direction
	Input     float64
	Result    float64
	// Formatted is the result rounded for display.
	Formatted string
	// Text is the full display line, e.g. "21.0 metros = 68.8976 pies".
	Text string
	// Buffer is the full-precision result left in the input buffer.
	Buffer string
}

// Session is the calculator state for one run of the application.
type Session struct {
	name      string
	confirmed bool
	buffer    string
	last      Direction
	outcome   *ConversionOutcome
}

// NewSession returns an unconfirmed session with an empty buffer.
func NewSession() *Session {
	return &Session{}
}

// Confirmed reports whether a name has been accepted.
func (s *Session) Confirmed() bool { return s.confirmed }

// Name returns the confirmed name, or "" before confirmation.
func (s *Session) Name() string { return s.name }

// Buffer returns the current textual input.
func (s *Session) Buffer() string { return s.buffer }

// LastDirection returns the direction applied by the most recent conversion,
// or DirectionNone once new input has started.
func (s *Session) LastDirection() Direction { return s.last }

// Outcome returns the most recent conversion, if any.
func (s *Session) Outcome() (ConversionOutcome, bool) {
	if s.outcome == nil {
		return ConversionOutcome{}, false
	}
	return *s.outcome, true
}

// ShowingResult reports whether the display currently holds a conversion result.
func (s *Session) ShowingResult() bool { return s.last != DirectionNone }

// NextDirection reports what Convert(c) would apply without mutating state.
func (s *Session) NextDirection(c Category) Direction {
	return c.Next(s.last)
}

// ConfirmName trims name and, when non-empty, unlocks the calculator.
func (s *Session) ConfirmName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	s.name = trimmed
	s.confirmed = true
	return nil
}

// AppendDigit adds d to the buffer. After a result is displayed the digit
// starts a new number instead.
func (s *Session) AppendDigit(d Digit) error {
	if !s.confirmed {
		return ErrNotConfirmed
	}
	if d > 9 {
		return fmt.Errorf("%w: %d", ErrInvalidDigit, d)
	}
	s.appendText(d.String())
	return nil
}

// AppendDecimalPoint adds a decimal point unless one is already present. An
// empty buffer is seeded with "0" first. The point then follows the same
// new-number rule as a digit, so after a result it replaces the buffer with
// a lone ".", which does not parse.
func (s *Session) AppendDecimalPoint() error {
	if !s.confirmed {
		return ErrNotConfirmed
	}
	if strings.Contains(s.buffer, ".") {
		return nil
	}
	if s.buffer == "" {
		s.buffer = "0"
	}
	s.appendText(".")
	return nil
}

func (s *Session) appendText(text string) {
	if s.last != DirectionNone {
		s.buffer = text
		s.last = DirectionNone
		return
	}
	s.buffer += text
}

// Reset clears the buffer and the direction toggle. Name confirmation is kept.
func (s *Session) Reset() {
	s.buffer = ""
	s.last = DirectionNone
	s.outcome = nil
}

// Convert applies the next direction of c to the buffer.
//
// A buffer that does not parse is cleared and reported as a *ParseError; the
// direction toggle is left untouched in that case.
func (s *Session) Convert(c Category) (ConversionOutcome, error) {
	if !s.confirmed {
		return ConversionOutcome{}, ErrNotConfirmed
	}
	if !c.valid() {
		return ConversionOutcome{}, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	if s.buffer == "" {
		return ConversionOutcome{}, ErrEmptyInput
	}
	value, err := ParseNumber(s.buffer)
	if err != nil {
		s.buffer = ""
		return ConversionOutcome{}, err
	}
	dir := c.Next(s.last)
	result := dir.Apply(value)
	from, to := dir.Units()
	formatted := FormatRounded(result)
	outcome := ConversionOutcome{
		Category:  c,
		Direction: dir,
		Input:     value,
		Result:    result,
		Formatted: formatted,
		Text:      fmt.Sprintf("%s %s = %s %s", FormatPlain(value), from, formatted, to),
		Buffer:    FormatPlain(result),
	}
	s.buffer = outcome.Buffer
	s.last = dir
	s.outcome = &outcome
	return outcome, nil
}
