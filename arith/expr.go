// Package arith provides the small expression trees the proving stack
// exchanges: formal variables, field constants, sums and products. A tree
// is immutable once built and evaluation is pure, so a single expression
// can be shared and evaluated concurrently.
package arith

import (
	"fmt"
	"strings"

	"github.com/only4sim/binius/field"
)

// Expr is a node of an arithmetic expression over the field F. Variables
// are indexed by natural numbers; an assignment binds variable i to
// point[i].
type Expr[F field.Element[F]] interface {
	fmt.Stringer
	// Eval evaluates the expression against the given assignment. It fails
	// iff the expression references a variable the assignment does not
	// cover.
	Eval(point []F) (F, error)
	// NumVars returns one plus the highest variable index referenced, i.e.
	// the minimum assignment length Eval accepts.
	NumVars() int
}

// Var is a reference to a formal variable.
type Var[F field.Element[F]] struct {
	Index uint
}

// Const is a field constant.
type Const[F field.Element[F]] struct {
	Value F
}

// Add is the sum of its arguments.
type Add[F field.Element[F]] struct {
	Args []Expr[F]
}

// Mul is the product of its arguments.
type Mul[F field.Element[F]] struct {
	Args []Expr[F]
}

// NewVar builds a reference to variable index.
func NewVar[F field.Element[F]](index uint) Var[F] {
	return Var[F]{Index: index}
}

// NewConst builds a constant node.
func NewConst[F field.Element[F]](value F) Const[F] {
	return Const[F]{Value: value}
}

// Sum combines zero or more expressions into their sum. The empty sum is
// the constant zero and a singleton collapses to its only term.
func Sum[F field.Element[F]](args ...Expr[F]) Expr[F] {
	switch len(args) {
	case 0:
		return Const[F]{Value: field.Zero[F]()}
	case 1:
		return args[0]
	}

	return Add[F]{Args: append([]Expr[F]{}, args...)}
}

// Product combines zero or more expressions into their product. The empty
// product is the constant one and a singleton collapses to its only term.
func Product[F field.Element[F]](args ...Expr[F]) Expr[F] {
	switch len(args) {
	case 0:
		return Const[F]{Value: field.One[F]()}
	case 1:
		return args[0]
	}

	return Mul[F]{Args: append([]Expr[F]{}, args...)}
}

// Eval implementation for the Expr interface.
func (e Var[F]) Eval(point []F) (F, error) {
	if int(e.Index) >= len(point) {
		var zero F
		return zero, fmt.Errorf("expression references variable x%d but the assignment has %d coordinates", e.Index, len(point))
	}

	return point[e.Index], nil
}

// NumVars implementation for the Expr interface.
func (e Var[F]) NumVars() int { return int(e.Index) + 1 }

func (e Var[F]) String() string { return fmt.Sprintf("x%d", e.Index) }

// Eval implementation for the Expr interface.
func (e Const[F]) Eval([]F) (F, error) { return e.Value, nil }

// NumVars implementation for the Expr interface.
func (e Const[F]) NumVars() int { return 0 }

func (e Const[F]) String() string { return e.Value.String() }

// Eval implementation for the Expr interface.
func (e Add[F]) Eval(point []F) (F, error) {
	acc := field.Zero[F]()

	for _, arg := range e.Args {
		v, err := arg.Eval(point)
		if err != nil {
			var zero F
			return zero, err
		}

		acc = acc.Add(v)
	}

	return acc, nil
}

// NumVars implementation for the Expr interface.
func (e Add[F]) NumVars() int { return numVarsOfTerms(e.Args) }

func (e Add[F]) String() string { return stringOfTerms("+", e.Args) }

// Eval implementation for the Expr interface.
func (e Mul[F]) Eval(point []F) (F, error) {
	acc := field.One[F]()

	for _, arg := range e.Args {
		v, err := arg.Eval(point)
		if err != nil {
			var zero F
			return zero, err
		}

		acc = acc.Mul(v)
	}

	return acc, nil
}

// NumVars implementation for the Expr interface.
func (e Mul[F]) NumVars() int { return numVarsOfTerms(e.Args) }

func (e Mul[F]) String() string { return stringOfTerms("*", e.Args) }

func numVarsOfTerms[F field.Element[F]](args []Expr[F]) int {
	res := 0
	for _, arg := range args {
		if n := arg.NumVars(); n > res {
			res = n
		}
	}

	return res
}

func stringOfTerms[F field.Element[F]](op string, args []Expr[F]) string {
	var sb strings.Builder

	sb.WriteString("(")
	sb.WriteString(op)

	for _, arg := range args {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}

	sb.WriteString(")")

	return sb.String()
}
