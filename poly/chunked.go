package poly

import (
	"github.com/only4sim/binius/common"
	"github.com/only4sim/binius/field"
)

// chunkedEvalRecombine folds the chunk-index variables of a chunked table.
// The chunk index carries the high bits of the row address, so the
// coordinates consumed here are the leading ones of the evaluation point.
func chunkedEvalRecombine[F field.Element[F]](chunks []MultiLin[F], qs []F) MultiLin[F] {
	logNChunks := common.Log2Ceil(len(chunks))
	if logNChunks != len(qs) {
		panic("q and chunks sizes are not compatible")
	}

	inp := chunks
	for _, q := range qs {
		mid := len(inp) / 2
		res := make([]MultiLin[F], mid)
		for k := range res {
			res[k] = make(MultiLin[F], len(inp[k]))
			for j := range res[k] {
				// res[k][j] <- inp[k][j] + q (inp[k+mid][j] - inp[k][j])
				res[k][j] = inp[k][j].Add(inp[k+mid][j].Sub(inp[k][j]).Mul(q))
			}
		}
		inp = res
	}

	return inp[0]
}

// EvaluateChunked evaluates a bookkeeping table stored as equally sized
// chunks, without reassembling it. The result matches evaluating the
// concatenated table at q.
func EvaluateChunked[F field.Element[F]](chunks []MultiLin[F], q []F) F {
	logNChunks := common.Log2Ceil(len(chunks))
	recombined := chunkedEvalRecombine(chunks, q[:logNChunks])
	return recombined.Evaluate(q[logNChunks:])
}
