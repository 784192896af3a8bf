package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{name: "zero total yields zero", value: 10, total: 0, expected: 0},
		{name: "zero value", value: 0, total: 100, expected: 0},
		{name: "half", value: 50, total: 100, expected: 50},
		{name: "one decimal rounding", value: 1, total: 3, expected: 33.3},
		{name: "rounds up", value: 2, total: 3, expected: 66.7},
		{name: "full", value: 100, total: 100, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percentage(tt.value, tt.total))
		})
	}
}

func TestPercentageBounds(t *testing.T) {
	// value <= total keeps the result inside [0, 100]
	for value := 0; value <= 50; value++ {
		got := Percentage(float64(value), 50)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       int
		expected string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-12345, "-12,345"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.in))
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 30))
	assert.Equal(t, "exactly-ten", TruncateWithEllipsis("exactly-ten", 11))
	assert.Equal(t, "a long campaign name that g...", TruncateWithEllipsis("a long campaign name that goes on and on", 30))
	assert.Len(t, []rune(TruncateWithEllipsis("a long campaign name that goes on and on", 30)), 30)
}
