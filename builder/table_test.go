package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/only4sim/binius/field/tower"
)

func TestFinalizeChecksStructuredColumns(t *testing.T) {
	cs := NewConstraintSystem()
	table := cs.AddTable("lookups")

	table.AddCommitted("values")
	id := table.AddStructured("row-index", Incrementing{MaxSizeLog: 5})

	err := table.Finalize(6)
	require.ErrorIs(t, err, ErrCapacityExceedsTableSize)
	assert.Contains(t, err.Error(), "row-index")
	assert.False(t, table.Finalized())

	// the failed finalize left the table reusable at an admissible height
	require.NoError(t, table.Finalize(5))
	assert.True(t, table.Finalized())
	assert.Equal(t, uint(5), table.LogRows())

	spec, ok := table.StructuredSpec(id)
	require.True(t, ok)
	assert.Equal(t, uint(5), spec.LogCapacity())
}

func TestConstraintSystemTables(t *testing.T) {
	cs := NewConstraintSystem()
	a := cs.AddTable("a")
	b := cs.AddTable("b")

	require.Len(t, cs.Tables(), 2)
	assert.Same(t, a, cs.Tables()[0])
	assert.Same(t, b, cs.Tables()[1])

	// finalizing a whole system walks the accessor
	for _, table := range cs.Tables() {
		require.NoError(t, table.Finalize(2))
	}
	assert.True(t, a.Finalized())
	assert.True(t, b.Finalized())
}

func TestRefinalizeFails(t *testing.T) {
	table := NewConstraintSystem().AddTable("t")
	require.NoError(t, table.Finalize(3))
	assert.Error(t, table.Finalize(3))
}

func TestAddColumnAfterFinalizePanics(t *testing.T) {
	table := NewConstraintSystem().AddTable("t")
	require.NoError(t, table.Finalize(3))
	assert.Panics(t, func() { table.AddCommitted("late") })
}

func TestLogRowsBeforeFinalizePanics(t *testing.T) {
	table := NewConstraintSystem().AddTable("t")
	assert.Panics(t, func() { table.LogRows() })
}

func TestStructuredExprsIsFieldDeferred(t *testing.T) {
	// One column, two candidate fields: the table check passes with no field
	// bound, then the same table synthesizes over B64 and is rejected over
	// B8 at the prove boundary
	table := NewConstraintSystem().AddTable("t")
	id := table.AddStructured("row-index", Incrementing{MaxSizeLog: 40})
	table.AddCommitted("payload")
	require.NoError(t, table.Finalize(10))

	exprs, err := StructuredExprs[tower.B64](table)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Equal(t, 40, exprs[id].NumVars())

	_, err = StructuredExprs[tower.B8](table)
	require.ErrorIs(t, err, ErrCapacityExceedsFieldWidth)
	assert.Contains(t, err.Error(), "row-index")
}

func TestNonStructuredColumnsHaveNoSpec(t *testing.T) {
	table := NewConstraintSystem().AddTable("t")
	committed := table.AddCommitted("a")
	fixed := table.AddFixed("b")

	_, ok := table.StructuredSpec(committed)
	assert.False(t, ok)
	_, ok = table.StructuredSpec(fixed)
	assert.False(t, ok)

	assert.Equal(t, 2, table.NumColumns())
	assert.Equal(t, "a", table.ColumnName(committed))
}
