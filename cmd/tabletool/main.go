// Command tabletool inspects and transforms sparse incidence tables in
// their line-oriented save format: show shape information, pretty-print
// the pattern, transpose it, or compose two patterns.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/topomesh/topomesh/table"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	log     *zap.Logger
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "tabletool",
		Short:         "Inspect and transform sparse incidence tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				log, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				a.log = log
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.newInfoCmd(), a.newPrintCmd(), a.newTransposeCmd(), a.newMultCmd())
	return root
}

func (a *app) loadTable(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := table.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	a.log.Debug("table loaded",
		zap.String("path", path),
		zap.Int("rows", tbl.NumRows()),
		zap.Int("connections", tbl.NumConnections()))
	return tbl, nil
}

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show a table's shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.loadTable(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rows:        %d\n", tbl.NumRows())
			fmt.Fprintf(cmd.OutOrStdout(), "connections: %d\n", tbl.NumConnections())
			fmt.Fprintf(cmd.OutOrStdout(), "width:       %d\n", tbl.Width())
			return nil
		},
	}
}

func (a *app) newPrintCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Pretty-print a table's pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.loadTable(args[0])
			if err != nil {
				return err
			}
			return tbl.Print(cmd.OutOrStdout(), width)
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "entries per line (0 = default)")
	return cmd
}

func (a *app) newTransposeCmd() *cobra.Command {
	var ncols int
	cmd := &cobra.Command{
		Use:   "transpose FILE",
		Short: "Transpose a table's pattern and write it in save format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.loadTable(args[0])
			if err != nil {
				return err
			}
			return table.Transpose(tbl, ncols).Save(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&ncols, "ncols", -1, "column count of the input (-1 = derive from the pattern)")
	return cmd
}

func (a *app) newMultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mult A B",
		Short: "Compose two patterns and write the result in save format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := a.loadTable(args[0])
			if err != nil {
				return err
			}
			right, err := a.loadTable(args[1])
			if err != nil {
				return err
			}
			if left.Width() > right.NumRows() {
				return fmt.Errorf("incompatible operands: width %d exceeds %d rows",
					left.Width(), right.NumRows())
			}
			return table.Mult(left, right).Save(cmd.OutOrStdout())
		},
	}
}
