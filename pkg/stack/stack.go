// Package stack provides a generic LIFO container, optionally bounded
// by a capacity fixed at construction.
package stack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStack is returned by Pop and Top when the stack holds no elements.
	ErrEmptyStack = errors.New("stack is empty")

	// ErrCapacityExceeded is returned by Push when a bounded stack is full.
	ErrCapacityExceeded = errors.New("stack capacity exceeded")
)

// Unbounded is the capacity reported by stacks without a configured limit.
const Unbounded = -1

// Stack is a last-in-first-out container of elements of type T.
// It owns its elements exclusively and is not safe for concurrent use.
type Stack[T any] struct {
	items    []T
	capacity int
}

// New returns an empty unbounded stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{capacity: Unbounded}
}

// NewBounded returns an empty stack that holds at most capacity elements.
// The capacity must be non-negative and cannot be changed later.
func NewBounded[T any](capacity int) (*Stack[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("capacity must be non-negative, got %d", capacity)
	}
	return &Stack[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}, nil
}

// Push places v on top of the stack. It returns ErrCapacityExceeded,
// leaving the stack unchanged, when a configured capacity is reached.
func (s *Stack[T]) Push(v T) error {
	if s.capacity != Unbounded && len(s.items) >= s.capacity {
		return ErrCapacityExceeded
	}
	s.items = append(s.items, v)
	return nil
}

// Pop removes and returns the top element. It returns ErrEmptyStack
// when the stack holds no elements.
func (s *Stack[T]) Pop() (T, error) {
	v, err := s.Top()
	if err != nil {
		return v, err
	}
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Top returns the top element without removing it. It returns
// ErrEmptyStack when the stack holds no elements.
func (s *Stack[T]) Top() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Cap returns the configured capacity, or Unbounded.
func (s *Stack[T]) Cap() int {
	return s.capacity
}

// Clear removes all elements. The capacity configuration is kept.
func (s *Stack[T]) Clear() {
	s.items = s.items[:0]
}

// Values returns a copy of the elements ordered bottom to top.
func (s *Stack[T]) Values() []T {
	values := make([]T, len(s.items))
	copy(values, s.items)
	return values
}

func (s *Stack[T]) String() string {
	return fmt.Sprint(s.items)
}
