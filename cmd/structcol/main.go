// structcol is a small debugging tool around structured columns: it prints
// synthesized expressions, runs the capacity checks, and dumps a prefix of
// a column's materialized values.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/only4sim/binius/builder"
	"github.com/only4sim/binius/field"
	"github.com/only4sim/binius/field/tower"
)

var (
	verbose   bool
	fieldName string
	capacity  uint
	logRows   uint
	limit     int
)

func main() {
	root := &cobra.Command{
		Use:   "structcol",
		Short: "inspect structured columns and their closed-form expressions",
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&fieldName, "field", "f", "b128", "tower field to synthesize over (b8, b16, b32, b64, b128)")

	exprCmd := &cobra.Command{
		Use:   "expr",
		Short: "print the closed-form expression of an incrementing column",
		RunE: func(*cobra.Command, []string) error {
			return overField(printExpr[tower.B8], printExpr[tower.B16], printExpr[tower.B32], printExpr[tower.B64], printExpr[tower.B128])
		},
	}
	exprCmd.Flags().UintVarP(&capacity, "capacity", "c", 5, "log2 of the declared column capacity")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "run both capacity checks for a column declaration",
		RunE: func(*cobra.Command, []string) error {
			return overField(checkColumn[tower.B8], checkColumn[tower.B16], checkColumn[tower.B32], checkColumn[tower.B64], checkColumn[tower.B128])
		},
	}
	checkCmd.Flags().UintVarP(&capacity, "capacity", "c", 5, "log2 of the declared column capacity")
	checkCmd.Flags().UintVarP(&logRows, "rows", "r", 5, "log2 of the table row count")

	valuesCmd := &cobra.Command{
		Use:   "values",
		Short: "materialize an incrementing column and print a prefix",
		RunE: func(*cobra.Command, []string) error {
			return overField(dumpValues[tower.B8], dumpValues[tower.B16], dumpValues[tower.B32], dumpValues[tower.B64], dumpValues[tower.B128])
		},
	}
	valuesCmd.Flags().UintVarP(&capacity, "capacity", "c", 5, "log2 of the declared column capacity")
	valuesCmd.Flags().UintVarP(&logRows, "rows", "r", 5, "log2 of the table row count")
	valuesCmd.Flags().IntVarP(&limit, "limit", "n", 16, "number of rows to print")

	root.AddCommand(exprCmd, checkCmd, valuesCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// overField dispatches to the instantiation matching the --field flag. Go
// cannot pass an uninstantiated generic function around, so each command
// hands over its five instantiations explicitly.
func overField(b8, b16, b32, b64, b128 func() error) error {
	switch fieldName {
	case "b8":
		return b8()
	case "b16":
		return b16()
	case "b32":
		return b32()
	case "b64":
		return b64()
	case "b128":
		return b128()
	default:
		return fmt.Errorf("unknown field %q, want one of b8, b16, b32, b64, b128", fieldName)
	}
}

func printExpr[F field.Tower[F]]() error {
	expr, err := builder.IncrementingExpr[F](capacity)
	if err != nil {
		return err
	}

	fmt.Println(expr.String())
	return nil
}

func checkColumn[F field.Tower[F]]() error {
	col := builder.Incrementing{MaxSizeLog: capacity}

	if err := col.CheckTableSize(logRows); err != nil {
		return err
	}
	logrus.Debugf("table check passed: 2^%d rows within capacity 2^%d", logRows, capacity)

	if _, err := builder.Expr[F](col); err != nil {
		return err
	}
	logrus.Debugf("field check passed: capacity 2^%d fits a %d-bit field", capacity, field.NumBits[F]())

	fmt.Println("ok")
	return nil
}

func dumpValues[F field.Tower[F]]() error {
	table := builder.NewConstraintSystem().AddTable("inspect")
	id := table.AddStructured("row-index", builder.Incrementing{MaxSizeLog: capacity})
	if err := table.Finalize(logRows); err != nil {
		return err
	}

	w, err := builder.NewTableWitness[F](table)
	if err != nil {
		return err
	}
	defer w.Free()

	if err := w.FillStructured(); err != nil {
		return err
	}

	col := w.Column(id)
	n := limit
	if n > len(col) {
		n = len(col)
	}
	for r := 0; r < n; r++ {
		fmt.Printf("%6d  %v\n", r, col[r])
	}

	return nil
}
