package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "already rounded", input: 540, expected: 540},
		{name: "rounds down", input: 12.344, expected: 12.34},
		{name: "stored just above half rounds up", input: 12.345, expected: 12.35},
		{name: "negative rounds away from zero", input: -12.345, expected: -12.35},
		{name: "exact half rounds away from zero", input: 46.875, expected: 46.88},
		{name: "stored just below half rounds down", input: 1.005, expected: 1},
		{name: "bonus share stored below half rounds down", input: 26.775, expected: 26.77},
		{name: "float drift is absorbed", input: 0.1 + 0.2, expected: 0.3},
		{name: "zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Round2(tt.input))
		})
	}
}

func TestRound2_NonFinitePassThrough(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
}
