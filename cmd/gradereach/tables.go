package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gradereach/gradereach/pkg/grades"
	"github.com/gradereach/gradereach/pkg/numeric"
)

func newTablesCmd() *cobra.Command {
	var showGrades bool

	cmd := &cobra.Command{
		Use:   "tables [id]",
		Short: "List the built-in grade tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := grades.All()
			if len(args) == 1 {
				t, ok := grades.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown grade table %q", args[0])
				}
				tables = []*grades.Table{t}
				showGrades = true
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range tables {
				def := ""
				if t.ID == grades.DefaultID {
					def = "(default)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Name, strings.Join(t.Aliases, ","), def)
				if showGrades {
					for _, g := range t.Grades() {
						fmt.Fprintf(tw, "\t  %s\t%s%%\t\n", g.Label, numeric.Percent(g.Min))
					}
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&showGrades, "grades", false, "Show each table's grade thresholds")
	return cmd
}
