package genexpr

import (
	"github.com/pkg/errors"
)

// operand is a partially built sub-expression along with the indices of the genes that produced it
type operand struct {
	expr    Expr
	indices []int
}

type staticOperandStack struct {
	stack  []operand
	length int
}

func newStaticOperandStack(length int) *staticOperandStack {
	return &staticOperandStack{
		stack:  make([]operand, length),
		length: 0,
	}
}

func (s *staticOperandStack) Push(v operand) error {
	if s.length >= len(s.stack) {
		return errors.Errorf("stack has reached maximum capacity (%d)", len(s.stack))
	}

	s.stack[s.length] = v
	s.length++
	return nil
}

func (s *staticOperandStack) Pop() (operand, error) {
	if s.length == 0 {
		return operand{}, errors.New("stack is empty")
	}

	s.length--
	v := s.stack[s.length]
	s.stack[s.length] = operand{}
	return v, nil
}

// Bottom returns the first operand pushed which is still on the stack
func (s *staticOperandStack) Bottom() (operand, error) {
	if s.length == 0 {
		return operand{}, errors.New("stack is empty")
	}

	return s.stack[0], nil
}

func (s *staticOperandStack) Size() int {
	return s.length
}
