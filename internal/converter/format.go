package converter

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

const roundedDigits = 4

// FormatPlain renders v the way the buffer stores numbers: shortest
// round-trip digits with at least one fractional digit ("21.0"), switching to
// "1.0E7" notation outside [1e-3, 1e7).
func FormatPlain(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(n)
}

// FormatRounded renders v with the "#.####" pattern: up to four fraction
// digits rounded half-even, no trailing zeros and no leading zero before the
// point. Rounding works on the shortest decimal digits of v; a trailing 5 is
// only a tie when v's binary value equals that decimal exactly.
func FormatRounded(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	neg := math.Signbit(v)
	abs := math.Abs(v)

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(abs, 'e', -1, 64), "e")
	digits := []byte(strings.Replace(mantissa, ".", "", 1))
	e, _ := strconv.Atoi(exp)
	point := e + 1
	if point < 1 {
		digits = append([]byte(strings.Repeat("0", 1-point)), digits...)
		point = 1
	}
	for len(digits) < point {
		digits = append(digits, '0')
	}

	keep := point + roundedDigits
	if len(digits) > keep {
		rest := digits[keep:]
		digits = digits[:keep]
		if roundUp(abs, digits, rest) {
			digits = increment(digits)
			if len(digits) > keep {
				point++
			}
		}
	}

	intPart := strings.TrimLeft(string(digits[:point]), "0")
	fracPart := strings.TrimRight(string(digits[point:]), "0")
	s := intPart
	switch {
	case fracPart != "":
		s += "." + fracPart
	case s == "":
		s = "0"
	}
	if neg {
		return "-" + s
	}
	return s
}

// roundUp decides whether the kept digits round away from zero given the
// dropped digits in rest.
func roundUp(abs float64, kept, rest []byte) bool {
	switch {
	case rest[0] > '5':
		return true
	case rest[0] < '5':
		return false
	case strings.TrimRight(string(rest[1:]), "0") != "":
		return true
	}
	exact := new(big.Rat).SetFloat64(abs)
	shortest, ok := new(big.Rat).SetString(strconv.FormatFloat(abs, 'g', -1, 64))
	if exact != nil && ok {
		switch exact.Cmp(shortest) {
		case 1:
			return true
		case -1:
			return false
		}
	}
	return (kept[len(kept)-1]-'0')%2 == 1
}

// increment adds one unit in the last place, growing digits by one on carry
// out of the leading digit.
func increment(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}

// ParseNumber reads a decimal number from the input buffer. Surrounding
// whitespace and a trailing d/f suffix are accepted; hexadecimal literals and
// digit separators are not. Values beyond float64 range become infinities.
func ParseNumber(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &ParseError{Input: text, Err: ErrInvalidNumber}
	}
	if n := len(s); n > 1 && strings.ContainsRune("dDfF", rune(s[n-1])) {
		prev := s[n-2]
		if prev == '.' || (prev >= '0' && prev <= '9') {
			s = s[:n-1]
		}
	}
	if core := strings.TrimLeft(s, "+-"); core != "NaN" && core != "Infinity" {
		if strings.ContainsFunc(core, func(r rune) bool {
			return r == '_' || (unicode.IsLetter(r) && r != 'e' && r != 'E')
		}) {
			return 0, &ParseError{Input: text, Err: ErrInvalidNumber}
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &ParseError{Input: text, Err: ErrInvalidNumber}
	}
	return v, nil
}
