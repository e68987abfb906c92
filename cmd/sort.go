package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"tablesort/internal/sorter"
	"tablesort/internal/source"
)

// SortArgs holds flags of the sort command.
type SortArgs struct {
	root *RootArgs

	TableID string
	Columns []int
	Numeric bool
	Output  string
}

func NewSortArgs(root *RootArgs) *SortArgs {
	return &SortArgs{root: root}
}

func (sa *SortArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sa.TableID, "table", "t", "", "Id of the table element to sort")
	cmd.Flags().IntSliceVarP(&sa.Columns, "column", "c", nil,
		"Zero-based column to sort by; repeat a column to toggle its direction")
	cmd.Flags().BoolVarP(&sa.Numeric, "numeric", "n", false, "Compare cells as numbers")
	cmd.Flags().StringVarP(&sa.Output, "output", "o", "", "Write the result here instead of stdout")

	must(cmd.MarkFlagRequired("table"))
	must(cmd.MarkFlagRequired("column"))
}

// NewSortCmd builds the non-interactive sort command.
func NewSortCmd(sa *SortArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <file.html|url>",
		Short: "Sort a table of an HTML document and print the document",
		Args:  cobra.ExactArgs(1),
		RunE:  sa.Run,
	}

	sa.AddFlags(cmd)
	bindEnvVars(cmd)

	return cmd
}

// Run applies one sort per listed column, in order, with a fresh registry.
func (sa *SortArgs) Run(cmd *cobra.Command, args []string) error {
	if len(sa.Columns) == 0 {
		return errors.New("at least one --column is required")
	}

	loader := source.NewLoader(source.NewHTTPClient(sa.root.Timeout))
	doc, err := loader.ReadDocument(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	comparator := sorter.CompareThreeWay
	if sa.root.Config != nil {
		comparator = sa.root.Config.SorterComparator()
	}
	s := sorter.New(sorter.NewRegistry(), sorter.WithComparator(comparator))

	for _, col := range sa.Columns {
		dir, err := s.SortTable(doc, col, sa.TableID, sa.Numeric)
		if err != nil {
			return err
		}
		slog.Info("sorted",
			slog.String("table", sa.TableID),
			slog.Int("column", col),
			slog.String("direction", dir.String()),
		)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return err
	}
	return sa.write(cmd.OutOrStdout(), &buf)
}

func (sa *SortArgs) write(stdout io.Writer, r io.Reader) error {
	if sa.Output == "" || sa.Output == "-" {
		_, err := io.Copy(stdout, r)
		return err
	}
	if err := atomic.WriteFile(sa.Output, r); err != nil {
		return fmt.Errorf("failed to write %s: %w", sa.Output, err)
	}
	if err := os.Chmod(sa.Output, 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", sa.Output, err)
	}
	return nil
}
