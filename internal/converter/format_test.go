package converter

import (
	"errors"
	"math"
	"testing"
)

func TestFormatPlain(t *testing.T) {
	cases := map[float64]string{
		21:          "21.0",
		0:           "0.0",
		-3.5:        "-3.5",
		68.89764:    "68.89764",
		1e7:         "1.0E7",
		12345678.9:  "1.23456789E7",
		0.001:       "0.001",
		0.0001:      "1.0E-4",
		-0.00025:    "-2.5E-4",
		9999999.5:   "9999999.5",
		math.Inf(1): "Infinity",
	}
	for in, want := range cases {
		if got := FormatPlain(in); got != want {
			t.Fatalf("FormatPlain(%v): expected %q, got %q", in, want, got)
		}
	}
	if got := FormatPlain(math.NaN()); got != "NaN" {
		t.Fatalf("expected NaN, got %q", got)
	}
}

func TestFormatRounded(t *testing.T) {
	cases := map[float64]string{
		68.89764:      "68.8976",
		212:           "212",
		21.000000672:  "21",
		0.5:           ".5",
		-0.25:         "-.25",
		1.23456:       "1.2346",
		0:             "0",
		100.1:         "100.1",
		math.Inf(-1):  "-∞",
		-0.00001:      "-0",
		1234567890.12: "1234567890.12",
	}
	for in, want := range cases {
		if got := FormatRounded(in); got != want {
			t.Fatalf("FormatRounded(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatRoundedTies(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1e23, "100000000000000000000000"},
		{0.03125, ".0312"},
		{0.09375, ".0938"},
		{1.00005, "1.0001"},
		{2.00005, "2"},
		{1.23455, "1.2346"},
		{9.99995, "10"},
		{0.00005, ".0001"},
	}
	for _, tc := range cases {
		if got := FormatRounded(tc.in); got != tc.want {
			t.Fatalf("FormatRounded(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestParseNumberAccepts(t *testing.T) {
	cases := map[string]float64{
		"21":       21,
		"0.":       0,
		"3.25":     3.25,
		" 7 ":      7,
		"1.0E7":    1e7,
		"2.5d":     2.5,
		"4f":       4,
		"Infinity": math.Inf(1),
		"1e400":    math.Inf(1),
	}
	for in, want := range cases {
		got, err := ParseNumber(in)
		if err != nil {
			t.Fatalf("ParseNumber(%q): unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseNumber(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestParseNumberRejects(t *testing.T) {
	for _, in := range []string{"", ".", "abc", "0x10", "1_000", "inf", "1.2.3", "--1"} {
		_, err := ParseNumber(in)
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("ParseNumber(%q): expected ErrInvalidNumber, got %v", in, err)
		}
	}
}

func TestPlainFormRoundTrips(t *testing.T) {
	for _, v := range []float64{68.89764, 20.999999999, 1e-9, 123456789.125, -42} {
		got, err := ParseNumber(FormatPlain(v))
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", v, err)
		}
		if got != v {
			t.Fatalf("expected %v to round trip, got %v", v, got)
		}
	}
}
