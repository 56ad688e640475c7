package rpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholzen/collections/pkg/stack"
)

func Test_Evaluate(t *testing.T) {
	tests := []struct {
		expr     string
		expected float64
	}{
		{"42", 42},
		{"3 4 +", 7},
		{"10 4 -", 6},
		{"3 4 + 2 *", 14},
		{"15 3 /", 5},
		{"1 2 3 4 + + +", 10},
		{"-2 3 *", -6},
		{"2.5 0.5 +", 3},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			result, err := Evaluate(tt.expr, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func Test_Evaluate_OperandUnderflow(t *testing.T) {
	_, err := Evaluate("1 +", Options{})
	assert.ErrorIs(t, err, stack.ErrEmptyStack)
}

func Test_Evaluate_MaxDepthExceeded(t *testing.T) {
	_, err := Evaluate("1 2 3 + +", Options{MaxDepth: 2})
	assert.ErrorIs(t, err, stack.ErrCapacityExceeded)
}

func Test_Evaluate_MaxDepthSufficient(t *testing.T) {
	result, err := Evaluate("1 2 + 3 +", Options{MaxDepth: 2})
	require.NoError(t, err)
	assert.Equal(t, float64(6), result)
}

func Test_Evaluate_DivisionByZero(t *testing.T) {
	_, err := Evaluate("1 0 /", Options{})
	assert.ErrorContains(t, err, "division by zero")
}

func Test_Evaluate_InvalidToken(t *testing.T) {
	_, err := Evaluate("1 2 %", Options{})
	assert.ErrorContains(t, err, "invalid token")
}

func Test_Evaluate_Empty(t *testing.T) {
	_, err := Evaluate("   ", Options{})
	assert.ErrorContains(t, err, "empty")
}

func Test_Evaluate_UnusedOperands(t *testing.T) {
	_, err := Evaluate("1 2 3 +", Options{})
	assert.ErrorContains(t, err, "unused operands")
}
