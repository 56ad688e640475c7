// Package rpn evaluates postfix (reverse Polish) arithmetic
// expressions using a bounded operand stack.
package rpn

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mholzen/collections/pkg/stack"
)

type Options struct {
	// MaxDepth bounds the operand stack. Zero or negative means unbounded.
	MaxDepth int
}

// Evaluate computes the value of a whitespace-separated postfix
// expression, e.g. "3 4 + 2 *". Operand underflow surfaces
// stack.ErrEmptyStack; exceeding MaxDepth surfaces
// stack.ErrCapacityExceeded.
func Evaluate(expr string, opts Options) (float64, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("expression is empty")
	}

	operands, err := newOperandStack(opts)
	if err != nil {
		return 0, err
	}

	slog.Debug("evaluating expression", "expr", expr, "max_depth", opts.MaxDepth)

	for _, token := range tokens {
		switch token {
		case "+", "-", "*", "/":
			result, err := applyOperator(operands, token)
			if err != nil {
				return 0, err
			}
			if err := operands.Push(result); err != nil {
				return 0, fmt.Errorf("cannot push result of %q: %w", token, err)
			}
		default:
			value, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid token %q", token)
			}
			if err := operands.Push(value); err != nil {
				return 0, fmt.Errorf("expression needs more than %d operands: %w", opts.MaxDepth, err)
			}
		}
	}

	result, err := operands.Pop()
	if err != nil {
		return 0, fmt.Errorf("expression has no result: %w", err)
	}
	if !operands.IsEmpty() {
		return 0, fmt.Errorf("expression leaves %d unused operands", operands.Size())
	}
	return result, nil
}

func newOperandStack(opts Options) (*stack.Stack[float64], error) {
	if opts.MaxDepth > 0 {
		return stack.NewBounded[float64](opts.MaxDepth)
	}
	return stack.New[float64](), nil
}

func applyOperator(operands *stack.Stack[float64], operator string) (float64, error) {
	right, err := operands.Pop()
	if err != nil {
		return 0, fmt.Errorf("operator %q needs two operands: %w", operator, err)
	}
	left, err := operands.Pop()
	if err != nil {
		return 0, fmt.Errorf("operator %q needs two operands: %w", operator, err)
	}

	switch operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("unknown operator %q", operator)
}
