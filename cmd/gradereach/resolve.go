package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gradereach/gradereach/pkg/resolve"
	"github.com/gradereach/gradereach/pkg/surface"
)

type resolveOpts struct {
	sheet     sheetOpts
	target    string
	grade     string
	outOf     string
	outputFmt string
}

func newResolveCmd(g *globalOpts) *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Work out the result needed on the remaining coursework",
		Long: `Reads assignments from --row flags, a worksheet file or a share string,
then reports what is needed on the remaining weight to reach --target
(a percentage) or --grade (a label in the chosen grade table).

Weights are percentages: "2.5" and "2.5%" both mean 2.5% of the course.
Scores may be "49/50", "98%" or a fraction such as "0.98".`,
		Example: `  gradereach resolve --row "Midterm|0.9|40" --target 70 --out-of 20
  gradereach resolve --file cosc101.yaml --grade A+ --table UC`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, g, opts)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&opts.sheet.rows, "row", nil, `Assignment as "name|score|weight" (repeatable)`)
	f.StringVar(&opts.sheet.file, "file", "", "Worksheet yaml file")
	f.StringVar(&opts.sheet.state, "state", "", "Share string produced by `gradereach share`")
	f.StringVar(&opts.sheet.title, "title", "", "Title shown above the result")
	f.StringVar(&opts.sheet.table, "table", "", "Grade table id or alias (default from worksheet or config)")
	f.StringVar(&opts.target, "target", "", "Target percentage, e.g. 70 or 70%")
	f.StringVar(&opts.grade, "grade", "", "Target grade label, e.g. A+")
	f.StringVar(&opts.outOf, "out-of", "", "Express the required result out of this number (default 100)")
	f.StringVar(&opts.outputFmt, "output", "", "Output format: text or json (default from config)")
	cmd.MarkFlagsMutuallyExclusive("target", "grade")

	return cmd
}

func runResolve(cmd *cobra.Command, g *globalOpts, opts resolveOpts) error {
	cfg, log, err := setup(g)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ws, err := buildWorksheet(opts.sheet)
	if err != nil {
		return err
	}

	var target resolve.Target
	if opts.grade != "" {
		table, err := pickTable(opts.sheet.table, ws.TableID, cfg.Resolve.Table, log)
		if err != nil {
			return err
		}
		target = resolve.GradeTarget(opts.grade, table)
	} else {
		target = resolve.PercentTarget(opts.target)
	}

	outOf := resolve.ParseOutOf(firstNonEmpty(opts.outOf, ws.OutOf, cfg.Resolve.OutOf))
	outcome := resolve.Resolve(ws.All(), target, outOf)

	log.Debug("resolved",
		zap.Int("rows", ws.Len()),
		zap.String("mode", string(target.Mode)),
		zap.String("target", target.Text()),
		zap.String("table", target.TableID),
		zap.Stringer("out_of", outOf),
		zap.String("kind", string(outcome.Kind)),
	)

	format := firstNonEmpty(opts.outputFmt, cfg.Output.Format)
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format %q", format)
	}
	report := &surface.Report{Title: ws.Title, Outcome: outcome}
	if err := surface.ForFormat(format).Render(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}
