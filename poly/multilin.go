// Package poly implements dense bookkeeping tables for multilinear
// polynomials, generic over the field they hold values in, together with
// the eq-table machinery and a pool for table-sized buffers.
package poly

import (
	"github.com/only4sim/binius/common"
	"github.com/only4sim/binius/field"
)

// MultiLin tracks the values of a (dense i.e. not sparse) multilinear polynomial
type MultiLin[F field.Element[F]] []F

func (m MultiLin[F]) String() string {
	return common.SliceToString(m)
}

// Fold folds the table on its first coordinate using the given value r.
// The first coordinate is the highest-index variable of the table's row
// addressing, so callers holding low-endian points reverse them before
// folding.
func (m *MultiLin[F]) Fold(r F) {
	mid := len(*m) / 2
	m.FoldChunk(r, 0, mid)
	*m = (*m)[:mid]
}

// FoldChunk folds one part of the table
func (m *MultiLin[F]) FoldChunk(r F, start, stop int) {
	mid := len(*m) / 2
	bottom, top := (*m)[:mid], (*m)[mid:]
	for i := start; i < stop; i++ {
		// updating bookkeeping table
		// table[i] <- table[i] + r (table[i + mid] - table[i])
		bottom[i] = bottom[i].Add(top[i].Sub(bottom[i]).Mul(r))
	}
}

// DeepCopy creates a deep copy of a bookkeeping table.
// Both multilinear interpolation and witness validation require folding an
// underlying array, but folding changes the array. To do both one requires
// a deep copy of the bookkeeping table.
func (m MultiLin[F]) DeepCopy() MultiLin[F] {
	tableDeepCopy := make([]F, len(m))
	copy(tableDeepCopy, m)
	return tableDeepCopy
}

// DeepCopyLarge creates a deep copy of a multilinear table, backed by the
// large pool.
func (m MultiLin[F]) DeepCopyLarge() MultiLin[F] {
	tableDeepCopy := MakeLarge[F](len(m))
	copy(tableDeepCopy, m)
	return tableDeepCopy
}

// Evaluate takes a dense bookkeeping table, deep copies it, folds it along the
// variables on which the table depends by substituting the corresponding coordinate
// from relevantCoordinates. After folding, bkCopy is reduced to a one item slice
// containing the evaluation of the original bkt at relevantCoordinates. This is returned.
func (m MultiLin[F]) Evaluate(coordinates []F) F {
	bkCopy := m.DeepCopy()
	for _, r := range coordinates {
		bkCopy.Fold(r)
	}

	return bkCopy[0]
}
