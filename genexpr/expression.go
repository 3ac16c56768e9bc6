package genexpr

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrMalformedExpression = errors.New("malformed expression")
)

// Expr is a node of an expression tree built from a Chromosome
type Expr interface {
	// Eval reduces the expression with x substituted for the variable terminal
	Eval(x float64) (float64, error)
	String() string
}

// VarNode is a variable terminal. Only VariableSymbol resolves during evaluation.
type VarNode struct {
	Name byte
}

type ConstNode struct {
	Val float64
}

type BinaryNode struct {
	Op          byte
	Left, Right Expr
}

func (v *VarNode) Eval(x float64) (float64, error) {
	if v.Name != VariableSymbol {
		return 0, errors.Wrapf(ErrMalformedExpression, "unresolved variable %q", v.Name)
	}
	return x, nil
}

func (v *VarNode) String() string {
	return string(v.Name)
}

func (c *ConstNode) Eval(float64) (float64, error) {
	return c.Val, nil
}

func (c *ConstNode) String() string {
	return strconv.FormatFloat(c.Val, 'g', -1, 64)
}

func (b *BinaryNode) Eval(x float64) (float64, error) {
	if b.Left == nil || b.Right == nil {
		return 0, errors.Wrapf(ErrMalformedExpression, "operator %q is missing an operand", b.Op)
	}

	lhs, err := b.Left.Eval(x)
	if err != nil {
		return 0, err
	}
	rhs, err := b.Right.Eval(x)
	if err != nil {
		return 0, err
	}

	var result float64
	switch b.Op {
	case '+':
		result = lhs + rhs
	case '-':
		result = lhs - rhs
	case '*':
		result = lhs * rhs
	case '/':
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		result = lhs / rhs
	default:
		return 0, errors.Wrapf(ErrMalformedExpression, "unknown operator %q", b.Op)
	}

	if math.IsNaN(result) {
		return 0, errors.Wrapf(ErrMalformedExpression, "non-numeric result of %s", b)
	}
	return result, nil
}

func (b *BinaryNode) String() string {
	left, right := "?", "?"
	if b.Left != nil {
		left = b.Left.String()
	}
	if b.Right != nil {
		right = b.Right.String()
	}
	return fmt.Sprintf("(%s %c %s)", left, b.Op, right)
}

type Validity rune

const (
	// Gene contributes to the decoded expression
	Valid Validity = '+'
	// Operator skipped for lack of operands
	Invalid Validity = '-'
	// Gene belongs to a sub-expression discarded from the top of the stack
	Unused Validity = '.'
)

type DecodeResult struct {
	Expr Expr

	// Fully parenthesized infix rendering of Expr
	Expression string

	// A char for each gene indicating if it's valid '+', a skipped operator '-', or unused '.'
	Validity string
}

// Decode folds the Chromosome's genes over an operand stack into an expression tree
func (c *Chromosome) Decode() *DecodeResult {
	return decode(c.genes)
}

// BuildExpression folds genes over an operand stack: terminals push a leaf, operators
// pop b then a and push (a op b). Operators finding fewer than two operands are skipped.
// The first-pushed operand left on the stack is the result; constant zero if none is.
func BuildExpression(genes []Gene) Expr {
	return decode(genes).Expr
}

func decode(genes []Gene) *DecodeResult {
	stack := newStaticOperandStack(len(genes))
	validityBuf := make([]byte, len(genes))
	for i := range validityBuf {
		validityBuf[i] = byte(Unused)
	}

	for i, gene := range genes {
		if gene.IsTerminal() {
			if err := stack.Push(operand{expr: leafOf(gene), indices: []int{i}}); err != nil {
				// one slot per gene, so the stack cannot overflow
				panic(err)
			}
			continue
		}

		if stack.Size() < 2 {
			validityBuf[i] = byte(Invalid)
			continue
		}

		rhs, _ := stack.Pop()
		lhs, _ := stack.Pop()

		indices := make([]int, 0, len(lhs.indices)+len(rhs.indices)+1)
		indices = append(indices, lhs.indices...)
		indices = append(indices, rhs.indices...)
		indices = append(indices, i)

		if err := stack.Push(operand{
			expr:    &BinaryNode{Op: gene.Symbol, Left: lhs.expr, Right: rhs.expr},
			indices: indices,
		}); err != nil {
			panic(err)
		}
	}

	root, err := stack.Bottom()
	if err != nil {
		root = operand{expr: &ConstNode{Val: 0}}
	}
	for _, i := range root.indices {
		validityBuf[i] = byte(Valid)
	}

	return &DecodeResult{
		Expr:       root.expr,
		Expression: root.expr.String(),
		Validity:   string(validityBuf),
	}
}

func leafOf(gene Gene) Expr {
	if gene.Symbol >= '0' && gene.Symbol <= '9' {
		return &ConstNode{Val: float64(gene.Symbol - '0')}
	}
	return &VarNode{Name: gene.Symbol}
}
