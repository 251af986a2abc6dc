package converter

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func confirmedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	if err := s.ConfirmName("Ana"); err != nil {
		t.Fatalf("unexpected confirm error: %v", err)
	}
	return s
}

func typeDigits(t *testing.T, s *Session, digits string) {
	t.Helper()
	for _, r := range digits {
		if r == '.' {
			if err := s.AppendDecimalPoint(); err != nil {
				t.Fatalf("unexpected decimal error: %v", err)
			}
			continue
		}
		d, ok := ParseDigit(r)
		if !ok {
			t.Fatalf("invalid digit %q in test input", r)
		}
		if err := s.AppendDigit(d); err != nil {
			t.Fatalf("unexpected digit error: %v", err)
		}
	}
}

func TestConfirmNameRejectsBlank(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		s := NewSession()
		if err := s.ConfirmName(name); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName for %q, got %v", name, err)
		}
		if s.Confirmed() {
			t.Fatalf("expected session to stay unconfirmed for %q", name)
		}
	}
}

func TestConfirmNameTrims(t *testing.T) {
	s := NewSession()
	if err := s.ConfirmName("  Ana  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Confirmed() || s.Name() != "Ana" {
		t.Fatalf("expected confirmed name Ana, got %q (confirmed=%v)", s.Name(), s.Confirmed())
	}
}

func TestOperationsRequireConfirmation(t *testing.T) {
	s := NewSession()
	if err := s.AppendDigit(1); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed from AppendDigit, got %v", err)
	}
	if err := s.AppendDecimalPoint(); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed from AppendDecimalPoint, got %v", err)
	}
	for _, c := range Categories {
		if _, err := s.Convert(c); !errors.Is(err, ErrNotConfirmed) {
			t.Fatalf("expected ErrNotConfirmed from Convert(%s), got %v", c, err)
		}
	}
	if s.Buffer() != "" {
		t.Fatalf("expected buffer untouched, got %q", s.Buffer())
	}
}

func TestAppendDigitRejectsOutOfRange(t *testing.T) {
	s := confirmedSession(t)
	if err := s.AppendDigit(10); !errors.Is(err, ErrInvalidDigit) {
		t.Fatalf("expected ErrInvalidDigit, got %v", err)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	s := confirmedSession(t)
	if _, err := s.Convert(Length); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestDecimalPointAppendedOnce(t *testing.T) {
	s := confirmedSession(t)
	typeDigits(t, s, "3")
	if err := s.AppendDecimalPoint(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AppendDecimalPoint(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Buffer() != "3." {
		t.Fatalf("expected buffer 3., got %q", s.Buffer())
	}
	typeDigits(t, s, "5")
	if strings.Count(s.Buffer(), ".") != 1 {
		t.Fatalf("expected one decimal point, got %q", s.Buffer())
	}
}

func TestDecimalPointSeedsZero(t *testing.T) {
	s := confirmedSession(t)
	if err := s.AppendDecimalPoint(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Buffer() != "0." {
		t.Fatalf("expected buffer 0., got %q", s.Buffer())
	}
}

func TestLengthScenario(t *testing.T) {
	s := confirmedSession(t)
	typeDigits(t, s, "21")
	if s.Buffer() != "21" {
		t.Fatalf("expected buffer 21, got %q", s.Buffer())
	}
	out, err := s.Convert(Length)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Direction != MetersToFeet {
		t.Fatalf("expected meters to feet, got %s", out.Direction)
	}
	if out.Text != "21.0 metros = 68.8976 pies" {
		t.Fatalf("unexpected text %q", out.Text)
	}
	if s.Buffer() != "68.89764" {
		t.Fatalf("expected full precision buffer 68.89764, got %q", s.Buffer())
	}
	if s.LastDirection() != MetersToFeet {
		t.Fatalf("expected last direction meters to feet, got %s", s.LastDirection())
	}

	back, err := s.Convert(Length)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Direction != FeetToMeters {
		t.Fatalf("expected feet to meters, got %s", back.Direction)
	}
	if back.Text != "68.89764 pies = 21 metros" {
		t.Fatalf("unexpected text %q", back.Text)
	}
	if s.Buffer() != "21.000000672" {
		t.Fatalf("expected full precision buffer 21.000000672, got %q", s.Buffer())
	}
}

func TestTemperatureScenario(t *testing.T) {
	s := confirmedSession(t)
	typeDigits(t, s, "100")
	out, err := s.Convert(Temperature)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "100.0 °C = 212 °F" {
		t.Fatalf("unexpected text %q", out.Text)
	}
	if s.Buffer() != "212.0" {
		t.Fatalf("expected buffer 212.0, got %q", s.Buffer())
	}
	back, err := s.Convert(Temperature)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Text != "212.0 °F = 100 °C" {
		t.Fatalf("unexpected text %q", back.Text)
	}
}

func TestRoundTripEveryCategory(t *testing.T) {
	for _, c := range Categories {
		s := confirmedSession(t)
		typeDigits(t, s, "42.5")
		first, err := s.Convert(c)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		second, err := s.Convert(c)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		if first.Direction != c.Forward() || second.Direction != c.Backward() {
			t.Fatalf("%s: expected %s then %s, got %s then %s", c, c.Forward(), c.Backward(), first.Direction, second.Direction)
		}
		if math.Abs(second.Result-42.5) > 1e-3 {
			t.Fatalf("%s: expected round trip near 42.5, got %v", c, second.Result)
		}
		third, err := s.Convert(c)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		if third.Direction != c.Forward() {
			t.Fatalf("%s: expected toggle back to %s, got %s", c, c.Forward(), third.Direction)
		}
	}
}

func TestDigitAfterResultStartsNewNumber(t *testing.T) {
	s := confirmedSession(t)
	typeDigits(t, s, "5")
	if _, err := s.Convert(Weight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	typeDigits(t, s, "7")
	if s.Buffer() != "7" {
		t.Fatalf("expected fresh buffer 7, got %q", s.Buffer())
	}
	if s.LastDirection() != DirectionNone {
		t.Fatalf("expected direction cleared, got %s", s.LastDirection())
	}
	out, err := s.Convert(Weight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Direction != KilogramsToPounds {
		t.Fatalf("expected default direction after new input, got %s", out.Direction)
	}
}

func TestDecimalAfterResultIsNoOpWhenResultHasPoint(t *testing.T) {
	s := confirmedSession(t)
	typeDigits(t, s, "2")
	if _, err := s.Convert(Length); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := s.Buffer()
	if err := s.AppendDecimalPoint(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Buffer() != before || !s.ShowingResult() {
		t.Fatalf("expected decimal point ignored on %q, got %q", before, s.Buffer())
	}
}

func TestDecimalAfterResultWithoutPointReplacesBuffer(t *testing.T) {
	s := confirmedSession(t)
	s.buffer = "Infinity"
	if _, err := s.Convert(Length); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Buffer() != "Infinity" {
		t.Fatalf("expected Infinity buffer, got %q", s.Buffer())
	}
	if err := s.AppendDecimalPoint(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Buffer() != "." || s.ShowingResult() {
		t.Fatalf("expected lone . buffer, got %q (showing=%v)", s.Buffer(), s.ShowingResult())
	}
	_, err := s.Convert(Length)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Input != "." {
		t.Fatalf("expected *ParseError for \".\", got %v", err)
	}
	if s.Buffer() != "" {
		t.Fatalf("expected buffer cleared, got %q", s.Buffer())
	}
}

func TestDecimalAfterParseErrorKeepsToggle(t *testing.T) {
	s := confirmedSession(t)
	typeDigits(t, s, "5")
	if _, err := s.Convert(Length); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.buffer = "abc"
	if _, err := s.Convert(Length); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if s.Buffer() != "" || s.LastDirection() != MetersToFeet {
		t.Fatalf("expected empty buffer with toggle kept, got %q / %s", s.Buffer(), s.LastDirection())
	}
	if err := s.AppendDecimalPoint(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Buffer() != "." {
		t.Fatalf("expected seeded zero to be replaced by a lone ., got %q", s.Buffer())
	}
	if s.LastDirection() != DirectionNone {
		t.Fatalf("expected toggle cleared by new input, got %s", s.LastDirection())
	}
	if _, err := s.Convert(Length); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber for lone ., got %v", err)
	}
	if s.Buffer() != "" {
		t.Fatalf("expected buffer cleared, got %q", s.Buffer())
	}
}

func TestSharedDirectionAcrossCategories(t *testing.T) {
	s := confirmedSession(t)
	typeDigits(t, s, "10")
	if _, err := s.Convert(Length); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := s.Convert(Temperature)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Direction != CelsiusToFahrenheit {
		t.Fatalf("expected default temperature direction, got %s", out.Direction)
	}
	out, err = s.Convert(Length)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Direction != MetersToFeet {
		t.Fatalf("expected length to restart at meters to feet, got %s", out.Direction)
	}
}

func TestResetKeepsConfirmation(t *testing.T) {
	s := confirmedSession(t)
	typeDigits(t, s, "9")
	if _, err := s.Convert(Length); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Reset()
	if s.Buffer() != "" || s.LastDirection() != DirectionNone {
		t.Fatalf("expected cleared state, got %q / %s", s.Buffer(), s.LastDirection())
	}
	if _, ok := s.Outcome(); ok {
		t.Fatalf("expected outcome cleared")
	}
	if !s.Confirmed() {
		t.Fatalf("expected confirmation kept")
	}
}

func TestConvertParseErrorClearsBuffer(t *testing.T) {
	s := confirmedSession(t)
	s.buffer = "abc"
	_, err := s.Convert(Length)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected error to match ErrInvalidNumber")
	}
	if parseErr.Input != "abc" {
		t.Fatalf("expected input abc, got %q", parseErr.Input)
	}
	if s.Buffer() != "" {
		t.Fatalf("expected buffer cleared, got %q", s.Buffer())
	}
}

func TestNextDirectionPreview(t *testing.T) {
	s := confirmedSession(t)
	if got := s.NextDirection(Weight); got != KilogramsToPounds {
		t.Fatalf("expected kg to lb, got %s", got)
	}
	typeDigits(t, s, "1")
	if _, err := s.Convert(Weight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.NextDirection(Weight); got != PoundsToKilograms {
		t.Fatalf("expected lb to kg, got %s", got)
	}
	if got := s.NextDirection(Length); got != MetersToFeet {
		t.Fatalf("expected m to ft, got %s", got)
	}
}
