package utils

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "125,000", FormatThousands(125000))
	assert.Equal(t, "3,500", FormatThousands(3500))
	assert.Equal(t, "999", FormatThousands(999))
	assert.Equal(t, "0", FormatThousands(0))
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		1.5:              "1.5",
		2:                "2.0",
		0.75:             "0.75",
		-3:               "-3.0",
		0:                "0.0",
		0.0001:           "0.0001",
		1e-5:             "1e-05",
		1.2345e-7:        "1.2345e-07",
		1e16:             "1e+16",
		1.5e16:           "1.5e+16",
		-1e16:            "-1e+16",
		9999999999999998: "9999999999999998.0",
		math.Inf(1):      "inf",
	}

	for in, want := range tests {
		assert.Equal(t, want, FormatFloat(in))
	}
	assert.Equal(t, "nan", FormatFloat(math.NaN()))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "-abc--", Center("abc", 6, "-"))
	assert.Equal(t, "--ab--", Center("ab", 6, "-"))
	assert.Equal(t, "toolong", Center("toolong", 3, "-"))

	title := Center("HIGH PRIORITY ACTIONS", RuleWidth, "-")
	assert.Len(t, title, RuleWidth)
	assert.True(t, strings.HasPrefix(title, strings.Repeat("-", 29)+"HIGH"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", FirstNonEmpty("a", "b"))
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "N/A", FirstNonEmpty("", "", "N/A"))
	assert.Equal(t, "", FirstNonEmpty())
}

func TestLookbackRange(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	start, end, err := LookbackRange(now, 7)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-23", start.Format(time.DateOnly))
	assert.Equal(t, now, end)
	assert.Equal(t, "2024-02-23 to 2024-03-01", FormatPeriod(start, end))

	start, _, err = LookbackRange(now, 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", start.Format(time.DateOnly))
}

func TestLookbackRange_OutOfRange(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
	}{
		{name: "Antes do ano 1", days: 800000},
		{name: "Depois do ano 9999", days: -3000000},
		{name: "Acima do limite de dias", days: MaxLookbackDays + 1},
		{name: "Abaixo do limite de dias", days: -MaxLookbackDays - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LookbackRange(now, tt.days)
			assert.ErrorIs(t, err, ErrDateOutOfRange)
		})
	}

	start, _, err := LookbackRange(now, 739905)
	require.NoError(t, err)
	assert.Equal(t, 1, start.Year())
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)

	out, err = PrettyJson([]byte(`{"b":[1,2]}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": [\n    1,\n    2\n  ]\n}", out)

	_, err = PrettyJson([]byte(`{`))
	assert.Error(t, err)
}
