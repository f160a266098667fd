package common

import (
	"fmt"

	"github.com/only4sim/binius/field"
)

// SliceToString pretty prints a slice of field elements to ease debugging
func SliceToString[F field.Element[F]](slice []F) string {
	res := "["
	for _, x := range slice {
		res += fmt.Sprintf("%v, ", x.String())
	}
	res += "]"
	return res
}

// RandomArray returns a deterministic pseudo-random array
func RandomArray[F field.Element[F]](size int) []F {
	res := make([]F, size)
	for i := range res {
		res[i] = field.Uint64[F](uint64(i)*uint64(i) ^ 0xf45c9df123f)
	}
	return res
}
