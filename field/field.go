// Package field declares the generic algebra the rest of the module is
// written against. Concrete binary tower fields live in field/tower; a
// prime-field adapter over gnark-crypto lives in field/bn254.
package field

import "fmt"

// Element is the constraint satisfied by every scalar type handled by this
// module. The zero value of an implementation is the field's zero, and new
// values are built by calling SetUint64/SetBytes on a zero value. All
// operations are value-to-value; elements are immutable once built.
type Element[F any] interface {
	fmt.Stringer
	// Add returns x + y.
	Add(y F) F
	// Sub returns x - y.
	Sub(y F) F
	// Mul returns x * y.
	Mul(y F) F
	// Equal reports whether x and y are the same field element.
	Equal(y F) bool
	// IsZero reports whether x is the additive identity.
	IsZero() bool
	// IsOne reports whether x is the multiplicative identity.
	IsOne() bool
	// SetUint64 returns the field element canonically representing v.
	SetUint64(v uint64) F
	// SetBytes returns the field element derived from the big-endian bytes bs.
	SetBytes(bs []byte) F
}

// Tower is the constraint satisfied by binary tower fields, i.e. iterated
// quadratic extensions of GF(2) exposing their canonical basis. Only these
// fields can back structured columns, since the incrementing rule is defined
// through the basis decomposition over the 1-bit base field.
type Tower[F any] interface {
	Element[F]
	// NumBits returns the dimension of F as a GF(2) vector space.
	NumBits() uint
	// Basis returns the i-th canonical basis vector of F over GF(2). It
	// fails iff i >= NumBits().
	Basis(i uint) (F, error)
}

// Zero constructs the field element representing 0.
func Zero[F Element[F]]() F {
	var element F
	return element
}

// One constructs the field element representing 1.
func One[F Element[F]]() F {
	var element F
	return element.SetUint64(1)
}

// Uint64 constructs the field element canonically representing v.
func Uint64[F Element[F]](v uint64) F {
	var element F
	return element.SetUint64(v)
}

// NumBits returns the bit width of the tower field F.
func NumBits[F Tower[F]]() uint {
	var element F
	return element.NumBits()
}

// Basis returns the i-th canonical basis vector of the tower field F.
func Basis[F Tower[F]](i uint) (F, error) {
	var element F
	return element.Basis(i)
}
