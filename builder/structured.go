// Package builder hosts the structured-column machinery of the
// arithmetization stack: the closed set of structured-column descriptions,
// the synthesis of their closed-form multilinear expressions, and the table
// and witness surfaces the rest of the prover builds on.
//
// A structured column is a table column whose values are fully determined
// by the row position, so its multilinear extension can be evaluated in
// closed form instead of being committed and proved row by row.
package builder

import (
	"fmt"

	"github.com/only4sim/binius/arith"
	"github.com/only4sim/binius/field"
)

// Structured describes how a structured column's values are generated and
// how many rows it can serve. It is a closed variant set: the marker method
// keeps implementations inside this package, and every consumer switches
// over the concrete variants exhaustively. Adding a variant is meant to be
// a breaking change that forces every switch to be revisited, because
// silently mishandling a column kind would corrupt a proof.
//
// A Structured value is immutable and safe to share and use concurrently.
type Structured interface {
	// LogCapacity returns the base-2 logarithm of the maximum row count
	// the column can serve.
	LogCapacity() uint

	// CheckTableSize fails with ErrCapacityExceedsTableSize iff a table
	// with 2^nVars rows is too large for the column. It is called at
	// table-finalize time, before any proving work, with no field bound.
	CheckTableSize(nVars uint) error

	isStructured()
}

// Incrementing is the structured column whose value at row r is the field
// element whose basis expansion over the 1-bit base field equals r, i.e.
// the sequence 0, 1, 2, ..., 2^MaxSizeLog - 1.
type Incrementing struct {
	// MaxSizeLog is the base-2 logarithm of the maximum row count served.
	MaxSizeLog uint
}

func (c Incrementing) LogCapacity() uint { return c.MaxSizeLog }

func (c Incrementing) CheckTableSize(nVars uint) error {
	if nVars > c.MaxSizeLog {
		return fmt.Errorf(
			"%w: table has 2^%d rows but the column only serves 2^%d",
			ErrCapacityExceedsTableSize, nVars, c.MaxSizeLog,
		)
	}
	return nil
}

func (Incrementing) isStructured() {}

// Expr synthesizes the closed-form expression of the structured column c
// over the tower field F. The expression is produced fresh on every call
// and owned by the caller; two calls with the same column and field always
// produce expressions with identical evaluation behavior.
//
// Expr is a free function rather than a method because Go methods cannot
// introduce the field type parameter.
func Expr[F field.Tower[F]](c Structured) (arith.Expr[F], error) {
	switch c := c.(type) {
	case Incrementing:
		return IncrementingExpr[F](c.MaxSizeLog)
	default:
		panic(fmt.Sprintf("unknown structured column variant %T", c))
	}
}

// IncrementingExpr builds the multilinear extension of the incrementing
// sequence: the sum over i < maxSizeLog of x_i * basis(i), where basis(i)
// is F's i-th canonical basis vector over the 1-bit base field. Evaluated
// at the bit expansion of a row index r it yields the field element whose
// basis expansion is r. The empty sum (maxSizeLog = 0) is the constant
// zero.
//
// Fails with ErrCapacityExceedsFieldWidth iff maxSizeLog exceeds the bit
// width of F; on any failure no partial expression is returned.
func IncrementingExpr[F field.Tower[F]](maxSizeLog uint) (arith.Expr[F], error) {
	if numBits := field.NumBits[F](); maxSizeLog > numBits {
		return nil, fmt.Errorf(
			"%w: capacity 2^%d needs %d basis vectors but the field has %d bits",
			ErrCapacityExceedsFieldWidth, maxSizeLog, maxSizeLog, numBits,
		)
	}

	terms := make([]arith.Expr[F], maxSizeLog)
	for i := uint(0); i < maxSizeLog; i++ {
		b, err := field.Basis[F](i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMath, err)
		}
		terms[i] = arith.Product[F](arith.NewVar[F](i), arith.NewConst(b))
	}

	return arith.Sum(terms...), nil
}
