package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatThousands formata contagens com separador de milhar (125000 -> 125,000)
func FormatThousands(n int) string {
	return humanize.Comma(int64(n))
}

// FormatFloat formata um float na notação curta, sempre com parte decimal (2 -> 2.0, 1.5 -> 1.5).
// Expoentes decimais abaixo de -4 ou a partir de 16 usam notação científica (1e-05, 1e+16).
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if sci := strconv.FormatFloat(f, 'e', -1, 64); f != 0 {
		_, exp, _ := strings.Cut(sci, "e")
		if e, err := strconv.Atoi(exp); err == nil && (e < -4 || e >= 16) {
			return sci
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
