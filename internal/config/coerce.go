package config

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceNumber converts a loosely-typed value into a finite number.
//
// Numeric kinds convert directly. Strings are trimmed and parsed; an empty string
// counts as absent rather than zero. nil, booleans, NaN, infinities and anything
// else report ok=false.
func CoerceNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		return ParseNumber(n)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseNumber parses user-typed numeric text. Decimal and exponent forms are
// accepted, as are unsigned integers with a 0x, 0o or 0b prefix. Blank or
// non-numeric input is absent.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if base, digits, ok := radixPrefix(s); ok {
		n, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	if strings.ContainsAny(s, "xX_") {
		// ParseFloat also takes hex floats and digit separators.
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func radixPrefix(s string) (int, string, bool) {
	if len(s) < 2 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}
