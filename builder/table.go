package builder

import (
	"fmt"

	"github.com/only4sim/binius/arith"
	"github.com/only4sim/binius/field"
)

// ColumnID identifies a column within its table.
type ColumnID int

type columnKind uint8

const (
	committedColumn columnKind = iota
	structuredColumn
	fixedColumn
)

type column struct {
	name string
	kind columnKind
	spec Structured // set iff kind == structuredColumn
}

// ConstraintSystem owns the tables of an arithmetization. Declaring
// columns triggers no computation; all capacity checking happens at
// finalize and synthesis time.
type ConstraintSystem struct {
	tables []*Table
}

// NewConstraintSystem returns an empty constraint system.
func NewConstraintSystem() *ConstraintSystem {
	return &ConstraintSystem{}
}

// AddTable declares a new table.
func (cs *ConstraintSystem) AddTable(name string) *Table {
	t := &Table{name: name}
	cs.tables = append(cs.tables, t)
	return t
}

// Tables returns the declared tables in declaration order.
func (cs *ConstraintSystem) Tables() []*Table {
	return cs.tables
}

// Table collects column declarations and, once finalized, fixes the
// row-count exponent every structured column is checked against.
type Table struct {
	name      string
	columns   []column
	logRows   uint
	finalized bool
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// AddCommitted declares a plain committed column. Its values are provided
// row by row at witness time and carry no closed form.
func (t *Table) AddCommitted(name string) ColumnID {
	return t.addColumn(column{name: name, kind: committedColumn})
}

// AddStructured declares a structured column and stores its description
// against a fresh column id. No computation is triggered; the description
// is validated against the table height at Finalize time and against the
// field width at synthesis time.
func (t *Table) AddStructured(name string, c Structured) ColumnID {
	return t.addColumn(column{name: name, kind: structuredColumn, spec: c})
}

// AddFixed declares a fixed column: one whose values follow an arbitrary
// expression of the row-position bits. The expression itself is bound on
// the witness side, where the field type is known.
func (t *Table) AddFixed(name string) ColumnID {
	return t.addColumn(column{name: name, kind: fixedColumn})
}

func (t *Table) addColumn(c column) ColumnID {
	if t.finalized {
		panic(fmt.Sprintf("table %v: adding column %v after finalize", t.name, c.name))
	}
	t.columns = append(t.columns, c)
	return ColumnID(len(t.columns) - 1)
}

// Finalize fixes the table's row-count exponent and checks every
// structured column against it. On failure the table stays unfinalized and
// no witness surface is reachable; the error names the offending table and
// column.
func (t *Table) Finalize(logRows uint) error {
	if t.finalized {
		return fmt.Errorf("table %v: already finalized", t.name)
	}

	for id, c := range t.columns {
		if c.kind != structuredColumn {
			continue
		}
		if err := c.spec.CheckTableSize(logRows); err != nil {
			return fmt.Errorf("table %v, column %v (id %d): %w", t.name, c.name, id, err)
		}
	}

	t.logRows = logRows
	t.finalized = true
	return nil
}

// Finalized reports whether Finalize has succeeded.
func (t *Table) Finalized() bool { return t.finalized }

// LogRows returns the finalized row-count exponent. It panics on an
// unfinalized table, which is a caller contract violation.
func (t *Table) LogRows() uint {
	if !t.finalized {
		panic(fmt.Sprintf("table %v: LogRows before finalize", t.name))
	}
	return t.logRows
}

// NumColumns returns the number of declared columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// ColumnName returns the name a column was declared under.
func (t *Table) ColumnName(id ColumnID) string { return t.columns[id].name }

// StructuredSpec returns the description of a structured column, or false
// for committed and fixed columns.
func (t *Table) StructuredSpec(id ColumnID) (Structured, bool) {
	if c := t.columns[id]; c.kind == structuredColumn {
		return c.spec, true
	}
	return nil, false
}

// StructuredExprs synthesizes the closed-form expression of every
// structured column of t for the field F. This is the prove/verify
// boundary: a failure here, typically ErrCapacityExceedsFieldWidth, is a
// configuration fault surfaced before any proving work starts.
func StructuredExprs[F field.Tower[F]](t *Table) (map[ColumnID]arith.Expr[F], error) {
	res := make(map[ColumnID]arith.Expr[F])
	for id, c := range t.columns {
		if c.kind != structuredColumn {
			continue
		}
		e, err := Expr[F](c.spec)
		if err != nil {
			return nil, fmt.Errorf("table %v, column %v (id %d): %w", t.name, c.name, id, err)
		}
		res[ColumnID(id)] = e
	}
	return res, nil
}
