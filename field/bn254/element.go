// Package bn254 adapts the scalar field of the BN254 curve, as implemented
// by gnark-crypto, to the module's generic field interface. It implements
// field.Element but not field.Tower: a prime field has no basis over GF(2),
// so the type system rejects it as a backing field for structured columns
// while every field-generic surface (expressions, bookkeeping tables,
// pools) remains usable with it.
package bn254

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/only4sim/binius/field"
)

// Element wraps fr.Element behind value semantics.
type Element struct {
	inner fr.Element
}

var _ field.Element[Element] = Element{}

// FromFr converts a raw fr.Element.
func FromFr(v fr.Element) Element { return Element{inner: v} }

// Fr returns the underlying fr.Element.
func (x Element) Fr() fr.Element { return x.inner }

// Add returns x + y.
func (x Element) Add(y Element) Element {
	var z fr.Element
	z.Add(&x.inner, &y.inner)

	return Element{inner: z}
}

// Sub returns x - y.
func (x Element) Sub(y Element) Element {
	var z fr.Element
	z.Sub(&x.inner, &y.inner)

	return Element{inner: z}
}

// Mul returns x * y.
func (x Element) Mul(y Element) Element {
	var z fr.Element
	z.Mul(&x.inner, &y.inner)

	return Element{inner: z}
}

// Equal reports whether x and y are the same field element.
func (x Element) Equal(y Element) bool { return x.inner.Equal(&y.inner) }

// IsZero reports whether x is zero.
func (x Element) IsZero() bool { return x.inner.IsZero() }

// IsOne reports whether x is one.
func (x Element) IsOne() bool { return x.inner.IsOne() }

// SetUint64 returns the field element representing v.
func (x Element) SetUint64(v uint64) Element {
	var z fr.Element
	z.SetUint64(v)

	return Element{inner: z}
}

// SetBytes returns the field element obtained by reducing the big-endian
// bytes bs modulo the field order.
func (x Element) SetBytes(bs []byte) Element {
	var z fr.Element
	z.SetBytes(bs)

	return Element{inner: z}
}

func (x Element) String() string { return x.inner.String() }
