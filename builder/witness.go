package builder

import (
	"fmt"
	"sync"

	"github.com/only4sim/binius/arith"
	"github.com/only4sim/binius/common"
	"github.com/only4sim/binius/field"
	"github.com/only4sim/binius/poly"
)

// TableWitness materializes the per-row values of a finalized table's
// columns for a concrete field. Structured columns are filled from their
// synthesized expressions, fixed columns from expressions bound by the
// caller, committed columns directly through Column.
type TableWitness[F field.Tower[F]] struct {
	table   *Table
	columns []poly.MultiLin[F]
	exprs   []arith.Expr[F] // bound expression per column, nil when none
}

// NewTableWitness allocates a witness for the finalized table t, one
// 2^logRows buffer per column, and synthesizes the expression of every
// structured column. A capacity/field-width mismatch surfaces here, before
// any value is materialized.
func NewTableWitness[F field.Tower[F]](t *Table) (*TableWitness[F], error) {
	if !t.Finalized() {
		return nil, fmt.Errorf("table %v: witness requested before finalize", t.name)
	}

	exprByID, err := StructuredExprs[F](t)
	if err != nil {
		return nil, err
	}

	w := &TableWitness[F]{
		table:   t,
		columns: make([]poly.MultiLin[F], len(t.columns)),
		exprs:   make([]arith.Expr[F], len(t.columns)),
	}

	size := 1 << t.logRows
	for id := range t.columns {
		w.columns[id] = poly.MakeLarge[F](size)
		for i := range w.columns[id] {
			w.columns[id][i] = field.Zero[F]()
		}
		if e, ok := exprByID[ColumnID(id)]; ok {
			w.exprs[id] = e
		}
	}

	return w, nil
}

// RowPoint expands the row index r into nVars boolean coordinates of F,
// coordinate i carrying bit i of r.
func RowPoint[F field.Element[F]](r uint64, nVars int) []F {
	point := make([]F, nVars)
	one := field.One[F]()
	for i := 0; i < nVars; i++ {
		if r>>i&1 == 1 {
			point[i] = one
		} else {
			point[i] = field.Zero[F]()
		}
	}
	return point
}

// FillStructured materializes every structured column by evaluating its
// synthesized expression at each row's bit decomposition. Rows are
// processed in parallel ranges.
func (w *TableWitness[F]) FillStructured() error {
	timer := common.NewTimer(fmt.Sprintf("fill structured columns of %v", w.table.name))
	defer timer.Close()

	for id := range w.table.columns {
		if w.table.columns[id].kind != structuredColumn {
			continue
		}
		if err := w.fillFromExpr(ColumnID(id)); err != nil {
			return err
		}
	}
	return nil
}

// FillStructuredSegmented materializes the structured columns segment by
// segment. Segment boundaries never change derived values: the result is
// identical to FillStructured.
func (w *TableWitness[F]) FillStructuredSegmented(segmentSize int) error {
	if segmentSize <= 0 {
		return fmt.Errorf("table %v: segment size %d is not positive", w.table.name, segmentSize)
	}

	for id := range w.table.columns {
		if w.table.columns[id].kind != structuredColumn {
			continue
		}
		col := w.columns[id]
		for start := 0; start < len(col); start += segmentSize {
			stop := common.Min(start+segmentSize, len(col))
			if err := w.evalRange(ColumnID(id), start, stop); err != nil {
				return err
			}
		}
	}
	return nil
}

// BindFixed attaches the generating expression of a fixed column. The
// expression may reference any row-position bit of the table.
func (w *TableWitness[F]) BindFixed(id ColumnID, expr arith.Expr[F]) error {
	if w.table.columns[id].kind != fixedColumn {
		return fmt.Errorf("table %v, column %v: not a fixed column", w.table.name, w.table.columns[id].name)
	}
	w.exprs[id] = expr
	return nil
}

// FillFixed materializes every fixed column with a bound expression.
func (w *TableWitness[F]) FillFixed() error {
	for id := range w.table.columns {
		if w.table.columns[id].kind != fixedColumn || w.exprs[id] == nil {
			continue
		}
		if err := w.fillFromExpr(ColumnID(id)); err != nil {
			return err
		}
	}
	return nil
}

func (w *TableWitness[F]) fillFromExpr(id ColumnID) error {
	var (
		mu       sync.Mutex
		firstErr error
	)
	common.Parallelize(len(w.columns[id]), func(start, stop int) {
		if err := w.evalRange(id, start, stop); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	})
	return firstErr
}

func (w *TableWitness[F]) evalRange(id ColumnID, start, stop int) error {
	expr := w.exprs[id]
	col := w.columns[id]

	// The expression may reference capacity bits above the table height;
	// those coordinates stay zero so the extra terms vanish.
	nVars := common.Max(int(w.table.logRows), expr.NumVars())

	for r := start; r < stop; r++ {
		v, err := expr.Eval(RowPoint[F](uint64(r), nVars))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMath, err)
		}
		col[r] = v
	}
	return nil
}

// FillIncrementing is the fast-path gadget for the incrementing rule: it
// writes at row r the field element whose basis expansion is r, without
// building an expression tree. It agrees exactly with evaluating the
// synthesized expression at every row. A destination longer than the field
// has expansions for is rejected upfront, before any row is written.
func FillIncrementing[F field.Tower[F]](dst poly.MultiLin[F]) error {
	numBits := field.NumBits[F]()
	if numBits < 64 && uint64(len(dst)) > uint64(1)<<numBits {
		return fmt.Errorf("%w: %d rows have no basis expansion in a %d-bit field", ErrMath, len(dst), numBits)
	}

	basis := make([]F, common.Min(64, int(numBits)))
	for i := range basis {
		b, err := field.Basis[F](uint(i))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMath, err)
		}
		basis[i] = b
	}

	fillRange := func(start, stop int) {
		for r := start; r < stop; r++ {
			acc := field.Zero[F]()
			for i := 0; i < len(basis); i++ {
				if r>>i&1 == 1 {
					acc = acc.Add(basis[i])
				}
			}
			dst[r] = acc
		}
	}

	var wg sync.WaitGroup
	dispatched := common.TryDispatch(len(dst), 1<<10, func(start, stop int) {
		wg.Add(1)
		go func() {
			fillRange(start, stop)
			wg.Done()
		}()
	})
	if dispatched == 0 {
		// too small to be worth spreading over workers
		fillRange(0, len(dst))
	}
	wg.Wait()

	return nil
}

// Column returns the materialized values of a column. The returned table
// aliases the witness storage.
func (w *TableWitness[F]) Column(id ColumnID) poly.MultiLin[F] {
	return w.columns[id]
}

// EvaluateColumn computes the multilinear extension of a materialized
// column at the given point, coordinate i binding bit i of the row index.
// The column itself is left untouched: folding happens on a pooled copy.
func (w *TableWitness[F]) EvaluateColumn(id ColumnID, point []F) (F, error) {
	if len(point) != int(w.table.logRows) {
		var zero F
		return zero, fmt.Errorf(
			"table %v, column %v: point has %d coordinates but the table has 2^%d rows",
			w.table.name, w.table.columns[id].name, len(point), w.table.logRows,
		)
	}

	bk := w.columns[id].DeepCopyLarge()
	defer poly.DumpLarge(bk)

	// the fold consumes the highest-index variable first
	for i := len(point) - 1; i >= 0; i-- {
		bk.Fold(point[i])
	}
	return bk[0], nil
}

// Validate re-evaluates every expression-bound column at every row and
// compares with the materialized values. This is the agreement property
// the rest of the proving system depends on: a structured column must
// never drift from its closed form.
func (w *TableWitness[F]) Validate() error {
	for id := range w.table.columns {
		expr := w.exprs[id]
		if expr == nil {
			continue
		}

		col := w.columns[id]
		nVars := common.Max(int(w.table.logRows), expr.NumVars())
		for r := range col {
			v, err := expr.Eval(RowPoint[F](uint64(r), nVars))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrMath, err)
			}
			if !v.Equal(col[r]) {
				return fmt.Errorf(
					"table %v, column %v: row %d holds %v but the closed form gives %v",
					w.table.name, w.table.columns[id].name, r, col[r], v,
				)
			}
		}
	}
	return nil
}

// Free returns the column buffers to the pool. The witness must not be
// used afterwards.
func (w *TableWitness[F]) Free() {
	poly.DumpLarge(w.columns...)
	w.columns = nil
}
