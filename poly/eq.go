package poly

import (
	"github.com/only4sim/binius/common"
	"github.com/only4sim/binius/field"
)

// EvalEq computes Eq(q1', ... , qn', h1', ... , hn') = Π_1^n Eq(qi', hi')
// where Eq(x,y) = xy + (1-x)(1-y) = 1 - x - y + xy + xy interpolates
//
//	_________________
//	|       |       |
//	|   0   |   1   |
//	|_______|_______|
//	|       |       |
//	|   1   |   0   |
//	|_______|_______|
//
// The formula holds over any field, including characteristic 2 where the
// doubled cross term vanishes.
func EvalEq[F field.Element[F]](qPrime, nextQPrime []F) F {
	one := field.One[F]()
	res := field.One[F]()
	for i := 0; i < len(qPrime); i++ {
		nxt := qPrime[i].Mul(nextQPrime[i]) // nxt <- qi' * hi'
		nxt = nxt.Add(nxt)                  // nxt <- 2 * qi' * hi'
		nxt = nxt.Add(one)                  // nxt <- 1 + 2 * qi' * hi'
		sum := qPrime[i].Add(nextQPrime[i]) // sum <- qi' + hi'
		nxt = nxt.Sub(sum)                  // nxt <- 1 + 2 * qi' * hi' - qi' - hi'
		res = res.Mul(nxt)                  // res <- res * nxt
	}
	return res
}

// FoldedEqTable ought to start life as a sparse bookkeeping table
// depending on 2n variables and containing 2^n ones only
// to be folded n times according to the values in qPrime.
// The resulting table will no longer be sparse.
// Instead we directly compute the folded array of length 2^n
// containing the values of Eq(q1, ... , qn, *, ... , *)
// where qPrime = [q1 ... qn].
func FoldedEqTable[F field.Element[F]](preallocated MultiLin[F], qPrime []F, multiplier ...F) (eq MultiLin[F]) {
	n := len(qPrime)

	preallocated[0] = field.One[F]()
	if len(multiplier) > 0 {
		preallocated[0] = multiplier[0]
	}

	for i, r := range qPrime {
		for j := 0; j < (1 << i); j++ {
			J := j << (n - i)
			JNext := J + 1<<(n-1-i)
			preallocated[JNext] = r.Mul(preallocated[J])
			preallocated[J] = preallocated[J].Sub(preallocated[JNext])
		}
	}

	return preallocated
}

// ChunkOfEqTable computes only a chunk of the eqTable for a given chunkSize
// and chunkID
func ChunkOfEqTable[F field.Element[F]](preallocatedEq MultiLin[F], chunkID, chunkSize int, qPrime []F, multiplier ...F) {
	nChunks := (1 << len(qPrime)) / chunkSize
	logNChunks := common.Log2Ceil(nChunks)
	one := field.One[F]()

	r := one

	if len(multiplier) > 0 {
		r = multiplier[0]
	}

	for k := 0; k < logNChunks; k++ {
		rho := qPrime[logNChunks-k-1]
		if chunkID>>k&1 == 1 { // If the k-th bit of i is 1
			r = r.Mul(rho)
		} else {
			r = r.Mul(one.Sub(rho))
		}
	}

	FoldedEqTable(
		preallocatedEq[chunkID*chunkSize:(chunkID+1)*chunkSize],
		qPrime[logNChunks:],
		r,
	)
}
