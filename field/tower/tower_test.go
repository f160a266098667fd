package tower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/only4sim/binius/field"
)

func TestKnownProductsB8(t *testing.T) {
	// X_0^2 = X_0 + 1
	assert.Equal(t, B8(0x3), B8(0x2).Mul(0x2))
	// X_1^2 = X_1*X_0 + 1
	assert.Equal(t, B8(0x9), B8(0x4).Mul(0x4))
	// X_2^2 = X_2*X_1 + 1
	assert.Equal(t, B8(0x41), B8(0x10).Mul(0x10))
	// X_0 * X_1
	assert.Equal(t, B8(0x8), B8(0x2).Mul(0x4))
	// X_0 * (X_0*X_1) = (X_0 + 1)*X_1
	assert.Equal(t, B8(0xc), B8(0x2).Mul(0x8))
}

func TestGeneratorSquares(t *testing.T) {
	// At every level, the generator squares to itself times the previous
	// generator, plus one.
	assert.Equal(t, B16(0x1001), B16(0x100).Mul(0x100))
	assert.Equal(t, B32(0x1000001), B32(0x10000).Mul(0x10000))
	assert.Equal(t, B64(1<<48|1), B64(1<<32).Mul(B64(1<<32)))
	assert.Equal(t, B128{Hi: 1 << 32, Lo: 1}, B128{Hi: 1}.Mul(B128{Hi: 1}))
}

func TestAddIsXor(t *testing.T) {
	for i := uint64(0); i < 64; i++ {
		x, y := i*i, i*0x9e3779b9
		assert.Equal(t, B32(x^y), B32(x).Add(B32(y)))
		assert.Equal(t, B32(x^y), B32(x).Sub(B32(y)))
		assert.True(t, B64(x).Add(B64(x)).IsZero())
	}
}

func TestFieldLawsB32(t *testing.T) {
	samples := sampleB32(32)

	one := field.One[B32]()
	for _, a := range samples {
		assert.Equal(t, a, a.Mul(one), "one is not neutral for %v", a)
		assert.True(t, a.Mul(B32(0)).IsZero())

		for _, b := range samples {
			assert.Equal(t, a.Mul(b), b.Mul(a), "commutativity %v %v", a, b)

			// No zero divisors
			if !a.IsZero() && !b.IsZero() {
				assert.False(t, a.Mul(b).IsZero(), "zero divisor %v %v", a, b)
			}

			// Frobenius: squaring is additive in characteristic 2
			sq := a.Add(b).Mul(a.Add(b))
			assert.Equal(t, a.Mul(a).Add(b.Mul(b)), sq)
		}
	}

	for i := 0; i+2 < len(samples); i++ {
		a, b, c := samples[i], samples[i+1], samples[i+2]
		assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), "associativity")
		assert.Equal(t, a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)), "distributivity")
	}
}

func TestFieldLawsB128(t *testing.T) {
	samples := make([]B128, 16)
	for i := range samples {
		samples[i] = B128{
			Hi: uint64(i) * 0xf45c9df123f,
			Lo: uint64(i*i) ^ 0x9e3779b97f4a7c15,
		}
	}

	for i := 0; i+2 < len(samples); i++ {
		a, b, c := samples[i], samples[i+1], samples[i+2]
		assert.Equal(t, a.Mul(b), b.Mul(a), "commutativity")
		assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), "associativity")
		assert.Equal(t, a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)), "distributivity")
	}
}

// Products of elements of a subfield must land in the subfield and agree
// with the subfield's own multiplication.
func TestSubfieldConsistency(t *testing.T) {
	for x := uint64(0); x < 256; x += 7 {
		for y := uint64(0); y < 256; y += 11 {
			expected := uint64(B8(x).Mul(B8(y)))

			assert.Equal(t, B16(expected), B16(x).Mul(B16(y)))
			assert.Equal(t, B32(expected), B32(x).Mul(B32(y)))
			assert.Equal(t, B64(expected), B64(x).Mul(B64(y)))
			assert.Equal(t, B128{Lo: expected}, B128{Lo: x}.Mul(B128{Lo: y}))
		}
	}
}

// Basis vectors are the multilinear monomials: two basis vectors with
// disjoint index bits multiply to the basis vector of the union.
func TestBasisMonomials(t *testing.T) {
	var f B32
	for i := uint(0); i < 32; i++ {
		for j := uint(0); j < 32; j++ {
			if i&j != 0 {
				continue
			}
			bi, err := f.Basis(i)
			require.NoError(t, err)
			bj, err := f.Basis(j)
			require.NoError(t, err)
			expected, err := f.Basis(i | j)
			require.NoError(t, err)

			assert.Equal(t, expected, bi.Mul(bj), "basis %v * basis %v", i, j)
		}
	}
}

func TestBasisRange(t *testing.T) {
	for i := uint(0); i < 8; i++ {
		b, err := B8(0).Basis(i)
		require.NoError(t, err)
		assert.Equal(t, B8(1)<<i, b)
	}

	_, err := B8(0).Basis(8)
	assert.Error(t, err)
	_, err = B32(0).Basis(32)
	assert.Error(t, err)
	_, err = B128{}.Basis(128)
	assert.Error(t, err)

	b, err := B128{}.Basis(64)
	require.NoError(t, err)
	assert.Equal(t, B128{Hi: 1}, b)
}

func TestSetBytes(t *testing.T) {
	assert.Equal(t, B32(0x01020304), B32(0).SetBytes([]byte{1, 2, 3, 4}))
	// Longer inputs keep the low-order bytes
	assert.Equal(t, B16(0x0304), B16(0).SetBytes([]byte{1, 2, 3, 4}))

	bs := make([]byte, 16)
	bs[0], bs[15] = 0xab, 0xcd
	assert.Equal(t, B128{Hi: 0xab << 56, Lo: 0xcd}, B128{}.SetBytes(bs))
}

func TestNumBits(t *testing.T) {
	assert.Equal(t, uint(1), field.NumBits[B1]())
	assert.Equal(t, uint(8), field.NumBits[B8]())
	assert.Equal(t, uint(16), field.NumBits[B16]())
	assert.Equal(t, uint(32), field.NumBits[B32]())
	assert.Equal(t, uint(64), field.NumBits[B64]())
	assert.Equal(t, uint(128), field.NumBits[B128]())
}

func TestB1(t *testing.T) {
	one := field.One[B1]()
	zero := field.Zero[B1]()

	assert.True(t, one.Mul(one).IsOne())
	assert.True(t, one.Add(one).IsZero())
	assert.Equal(t, one, zero.Add(one))
	assert.Equal(t, zero, B1(0).SetUint64(2))
}

func sampleB32(n int) []B32 {
	res := make([]B32, n)
	for i := range res {
		res[i] = B32(uint64(i)*uint64(i) ^ 0xf45c9df123f)
	}
	return res
}
