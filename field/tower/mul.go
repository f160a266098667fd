package tower

// The tower is built by iterated quadratic extensions of GF(2): level k has
// width 2^k bits and is obtained by adjoining a generator X_{k-1} to level
// k-1 subject to
//
//	X_{k-1}^2 = X_{k-1} * X_{k-2} + 1
//
// with X_{-1} = 1 at the bottom. An element of level k is stored as an
// integer whose bit i is the coefficient of the i-th basis monomial, the
// product of the X_j for every set bit j of i. The low and high halves of
// that integer are the two level-(k-1) coordinates of the element.

// mul multiplies two tower field elements packed in the low 1<<logW bits of
// a and b, and returns the product packed the same way.
func mul(a, b uint64, logW uint) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if logW == 0 {
		return a & b & 1
	}

	half := uint(1) << (logW - 1)
	mask := (uint64(1) << half) - 1

	aLo, aHi := a&mask, a>>half
	bLo, bHi := b&mask, b>>half

	// Karatsuba over the two half-width coordinates
	lo := mul(aLo, bLo, logW-1)
	hi := mul(aHi, bHi, logW-1)
	mid := mul(aLo^aHi, bLo^bHi, logW-1)

	// The generator X of this level satisfies X^2 = X*alpha + 1, where
	// alpha is the generator one level down. Hence
	//   (aHi*X + aLo)(bHi*X + bLo)
	//     = (mid + lo + hi + hi*alpha)*X + (lo + hi)
	outLo := lo ^ hi
	outHi := mid ^ lo ^ hi ^ mulAlpha(hi, logW-1)

	return outHi<<half | outLo
}

// mulAlpha multiplies a level-logW element by that level's own generator,
// i.e. by X_{logW-1}. The level-0 generator is 1.
func mulAlpha(a uint64, logW uint) uint64 {
	if logW == 0 {
		return a
	}

	half := uint(1) << (logW - 1)
	mask := (uint64(1) << half) - 1

	lo, hi := a&mask, a>>half

	// (hi*X + lo)*X = hi*X^2 + lo*X = (lo + hi*alpha)*X + hi
	return (lo^mulAlpha(hi, logW-1))<<half | hi
}

// setBytes packs the big-endian bytes bs into an integer, keeping only the
// low 1<<logW bits.
func setBytes(bs []byte, logW uint) uint64 {
	var v uint64
	for _, b := range bs {
		v = v<<8 | uint64(b)
	}

	if w := uint(1) << logW; w < 64 {
		v &= (uint64(1) << w) - 1
	}

	return v
}
