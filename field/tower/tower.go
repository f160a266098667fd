// Package tower implements the binary tower fields backing structured
// columns: GF(2), GF(2^8), GF(2^16), GF(2^32), GF(2^64) and GF(2^128),
// each the iterated quadratic extension of the one below. Addition is XOR
// and the canonical basis vector i is the element with bit i set, so the
// basis expansion of an element is literally its bit pattern.
package tower

import (
	"fmt"

	"github.com/only4sim/binius/field"
)

// B1 is the 1-bit base field GF(2).
type B1 uint8

// B8 is the tower field GF(2^8).
type B8 uint8

// B16 is the tower field GF(2^16).
type B16 uint16

// B32 is the tower field GF(2^32).
type B32 uint32

// B64 is the tower field GF(2^64).
type B64 uint64

// B128 is the tower field GF(2^128), stored as two 64-bit coordinates over
// B64.
type B128 struct {
	Hi, Lo uint64
}

var (
	_ field.Tower[B1]   = B1(0)
	_ field.Tower[B8]   = B8(0)
	_ field.Tower[B16]  = B16(0)
	_ field.Tower[B32]  = B32(0)
	_ field.Tower[B64]  = B64(0)
	_ field.Tower[B128] = B128{}
)

func basisOutOfRange(i, numBits uint) error {
	return fmt.Errorf("basis index %d out of range for a %d-bit field", i, numBits)
}

// Add returns x + y.
func (x B1) Add(y B1) B1 { return (x ^ y) & 1 }

// Sub returns x - y. In characteristic 2 this coincides with Add.
func (x B1) Sub(y B1) B1 { return (x ^ y) & 1 }

// Mul returns x * y.
func (x B1) Mul(y B1) B1 { return x & y & 1 }

// Equal reports whether x and y are the same field element.
func (x B1) Equal(y B1) bool { return x&1 == y&1 }

// IsZero reports whether x is zero.
func (x B1) IsZero() bool { return x&1 == 0 }

// IsOne reports whether x is one.
func (x B1) IsOne() bool { return x&1 == 1 }

// SetUint64 returns the element whose bit expansion is the low bit of v.
func (x B1) SetUint64(v uint64) B1 { return B1(v & 1) }

// SetBytes returns the element derived from the big-endian bytes bs.
func (x B1) SetBytes(bs []byte) B1 { return B1(setBytes(bs, 0)) }

// NumBits returns the dimension of the field over GF(2).
func (x B1) NumBits() uint { return 1 }

// Basis returns the i-th canonical basis vector.
func (x B1) Basis(i uint) (B1, error) {
	if i >= 1 {
		return 0, basisOutOfRange(i, 1)
	}
	return 1, nil
}

func (x B1) String() string { return fmt.Sprintf("0x%x", uint8(x&1)) }

// Add returns x + y.
func (x B8) Add(y B8) B8 { return x ^ y }

// Sub returns x - y. In characteristic 2 this coincides with Add.
func (x B8) Sub(y B8) B8 { return x ^ y }

// Mul returns x * y.
func (x B8) Mul(y B8) B8 { return B8(mul(uint64(x), uint64(y), 3)) }

// Equal reports whether x and y are the same field element.
func (x B8) Equal(y B8) bool { return x == y }

// IsZero reports whether x is zero.
func (x B8) IsZero() bool { return x == 0 }

// IsOne reports whether x is one.
func (x B8) IsOne() bool { return x == 1 }

// SetUint64 returns the element whose bit expansion is the low 8 bits of v.
func (x B8) SetUint64(v uint64) B8 { return B8(v) }

// SetBytes returns the element derived from the big-endian bytes bs.
func (x B8) SetBytes(bs []byte) B8 { return B8(setBytes(bs, 3)) }

// NumBits returns the dimension of the field over GF(2).
func (x B8) NumBits() uint { return 8 }

// Basis returns the i-th canonical basis vector.
func (x B8) Basis(i uint) (B8, error) {
	if i >= 8 {
		return 0, basisOutOfRange(i, 8)
	}
	return 1 << i, nil
}

func (x B8) String() string { return fmt.Sprintf("0x%x", uint8(x)) }

// Add returns x + y.
func (x B16) Add(y B16) B16 { return x ^ y }

// Sub returns x - y. In characteristic 2 this coincides with Add.
func (x B16) Sub(y B16) B16 { return x ^ y }

// Mul returns x * y.
func (x B16) Mul(y B16) B16 { return B16(mul(uint64(x), uint64(y), 4)) }

// Equal reports whether x and y are the same field element.
func (x B16) Equal(y B16) bool { return x == y }

// IsZero reports whether x is zero.
func (x B16) IsZero() bool { return x == 0 }

// IsOne reports whether x is one.
func (x B16) IsOne() bool { return x == 1 }

// SetUint64 returns the element whose bit expansion is the low 16 bits of v.
func (x B16) SetUint64(v uint64) B16 { return B16(v) }

// SetBytes returns the element derived from the big-endian bytes bs.
func (x B16) SetBytes(bs []byte) B16 { return B16(setBytes(bs, 4)) }

// NumBits returns the dimension of the field over GF(2).
func (x B16) NumBits() uint { return 16 }

// Basis returns the i-th canonical basis vector.
func (x B16) Basis(i uint) (B16, error) {
	if i >= 16 {
		return 0, basisOutOfRange(i, 16)
	}
	return 1 << i, nil
}

func (x B16) String() string { return fmt.Sprintf("0x%x", uint16(x)) }

// Add returns x + y.
func (x B32) Add(y B32) B32 { return x ^ y }

// Sub returns x - y. In characteristic 2 this coincides with Add.
func (x B32) Sub(y B32) B32 { return x ^ y }

// Mul returns x * y.
func (x B32) Mul(y B32) B32 { return B32(mul(uint64(x), uint64(y), 5)) }

// Equal reports whether x and y are the same field element.
func (x B32) Equal(y B32) bool { return x == y }

// IsZero reports whether x is zero.
func (x B32) IsZero() bool { return x == 0 }

// IsOne reports whether x is one.
func (x B32) IsOne() bool { return x == 1 }

// SetUint64 returns the element whose bit expansion is the low 32 bits of v.
func (x B32) SetUint64(v uint64) B32 { return B32(v) }

// SetBytes returns the element derived from the big-endian bytes bs.
func (x B32) SetBytes(bs []byte) B32 { return B32(setBytes(bs, 5)) }

// NumBits returns the dimension of the field over GF(2).
func (x B32) NumBits() uint { return 32 }

// Basis returns the i-th canonical basis vector.
func (x B32) Basis(i uint) (B32, error) {
	if i >= 32 {
		return 0, basisOutOfRange(i, 32)
	}
	return 1 << i, nil
}

func (x B32) String() string { return fmt.Sprintf("0x%x", uint32(x)) }

// Add returns x + y.
func (x B64) Add(y B64) B64 { return x ^ y }

// Sub returns x - y. In characteristic 2 this coincides with Add.
func (x B64) Sub(y B64) B64 { return x ^ y }

// Mul returns x * y.
func (x B64) Mul(y B64) B64 { return B64(mul(uint64(x), uint64(y), 6)) }

// Equal reports whether x and y are the same field element.
func (x B64) Equal(y B64) bool { return x == y }

// IsZero reports whether x is zero.
func (x B64) IsZero() bool { return x == 0 }

// IsOne reports whether x is one.
func (x B64) IsOne() bool { return x == 1 }

// SetUint64 returns the element whose bit expansion is v.
func (x B64) SetUint64(v uint64) B64 { return B64(v) }

// SetBytes returns the element derived from the big-endian bytes bs.
func (x B64) SetBytes(bs []byte) B64 { return B64(setBytes(bs, 6)) }

// NumBits returns the dimension of the field over GF(2).
func (x B64) NumBits() uint { return 64 }

// Basis returns the i-th canonical basis vector.
func (x B64) Basis(i uint) (B64, error) {
	if i >= 64 {
		return 0, basisOutOfRange(i, 64)
	}
	return 1 << i, nil
}

func (x B64) String() string { return fmt.Sprintf("0x%x", uint64(x)) }

// Add returns x + y.
func (x B128) Add(y B128) B128 { return B128{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo} }

// Sub returns x - y. In characteristic 2 this coincides with Add.
func (x B128) Sub(y B128) B128 { return x.Add(y) }

// Mul returns x * y.
func (x B128) Mul(y B128) B128 {
	lo := mul(x.Lo, y.Lo, 6)
	hi := mul(x.Hi, y.Hi, 6)
	mid := mul(x.Lo^x.Hi, y.Lo^y.Hi, 6)

	// Same reduction as mul, one level up: the coordinates are B64 values
	// and the generator of this level squares to itself times the B64
	// generator, plus one.
	return B128{
		Hi: mid ^ lo ^ hi ^ mulAlpha(hi, 6),
		Lo: lo ^ hi,
	}
}

// Equal reports whether x and y are the same field element.
func (x B128) Equal(y B128) bool { return x == y }

// IsZero reports whether x is zero.
func (x B128) IsZero() bool { return x.Hi == 0 && x.Lo == 0 }

// IsOne reports whether x is one.
func (x B128) IsOne() bool { return x.Hi == 0 && x.Lo == 1 }

// SetUint64 returns the element whose bit expansion is v.
func (x B128) SetUint64(v uint64) B128 { return B128{Lo: v} }

// SetBytes returns the element derived from the big-endian bytes bs.
func (x B128) SetBytes(bs []byte) B128 {
	if len(bs) <= 8 {
		return B128{Lo: setBytes(bs, 6)}
	}
	return B128{
		Hi: setBytes(bs[:len(bs)-8], 6),
		Lo: setBytes(bs[len(bs)-8:], 6),
	}
}

// NumBits returns the dimension of the field over GF(2).
func (x B128) NumBits() uint { return 128 }

// Basis returns the i-th canonical basis vector.
func (x B128) Basis(i uint) (B128, error) {
	if i >= 128 {
		return B128{}, basisOutOfRange(i, 128)
	}
	if i < 64 {
		return B128{Lo: 1 << i}, nil
	}
	return B128{Hi: 1 << (i - 64)}, nil
}

func (x B128) String() string {
	if x.Hi == 0 {
		return fmt.Sprintf("0x%x", x.Lo)
	}
	return fmt.Sprintf("0x%x%016x", x.Hi, x.Lo)
}
