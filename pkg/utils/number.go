package utils

import (
	"math"
	"strconv"
)

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// FormatThousands formata um inteiro com separador de milhar (1234567 -> "1,234,567").
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)

	negative := false
	if len(s) > 0 && s[0] == '-' {
		negative = true
		s = s[1:]
	}

	if len(s) <= 3 {
		if negative {
			return "-" + s
		}
		return s
	}

	var out []byte
	first := len(s) % 3
	if first > 0 {
		out = append(out, s[:first]...)
	}

	for i := first; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}
