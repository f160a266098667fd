package common

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/only4sim/binius/field"
)

// DerivePoints deterministically derives n field elements from a domain
// separation tag. Used wherever a reproducible but structureless evaluation
// point is needed, typically to compare two evaluation strategies away from
// the hypercube vertices.
func DerivePoints[F field.Element[F]](tag string, n int) []F {
	res := make([]F, n)
	for i := range res {
		h := sha3.New256()
		h.Write([]byte(tag))

		var idx [8]byte
		binary.BigEndian.PutUint64(idx[:], uint64(i))
		h.Write(idx[:])

		res[i] = field.Zero[F]().SetBytes(h.Sum(nil))
	}
	return res
}
