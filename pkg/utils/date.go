package utils

import (
	"time"

	"github.com/pkg/errors"
)

// ErrDateOutOfRange indica uma data fora dos anos 1 a 9999
var ErrDateOutOfRange = errors.New("date value out of range")

// MaxLookbackDays limita a janela antes da aritmética de calendário
const MaxLookbackDays = 999999999

const (
	minYear = 1
	maxYear = 9999
)

// LookbackRange retorna o intervalo [now - days, now] usando aritmética de calendário.
// O início precisa cair entre os anos 1 e 9999.
func LookbackRange(now time.Time, days int) (start time.Time, end time.Time, err error) {
	if days > MaxLookbackDays || days < -MaxLookbackDays {
		return time.Time{}, time.Time{}, ErrDateOutOfRange
	}

	start = now.AddDate(0, 0, -days)
	if start.Year() < minYear || start.Year() > maxYear {
		return time.Time{}, time.Time{}, ErrDateOutOfRange
	}

	return start, now, nil
}

// FormatPeriod formata o intervalo como "YYYY-MM-DD to YYYY-MM-DD"
func FormatPeriod(start, end time.Time) string {
	return start.Format(time.DateOnly) + " to " + end.Format(time.DateOnly)
}
