package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gradereach/gradereach/pkg/sharestate"
	"github.com/gradereach/gradereach/pkg/worksheet"
)

type shareOpts struct {
	sheet    sheetOpts
	template bool
	decode   string
}

func newShareCmd(g *globalOpts) *cobra.Command {
	var opts shareOpts

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Encode a worksheet as a share string, or decode one",
		Long: `Packs the assignments into a compact string that can be passed back
to "gradereach resolve --state". With --template the scores are left out
so others can fill in their own. With --decode the string is expanded
back into worksheet yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShare(cmd, g, opts)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&opts.sheet.rows, "row", nil, `Assignment as "name|score|weight" (repeatable)`)
	f.StringVar(&opts.sheet.file, "file", "", "Worksheet yaml file")
	f.StringVar(&opts.sheet.title, "title", "", "Worksheet title")
	f.StringVar(&opts.sheet.table, "table", "", "Grade table id to record")
	f.BoolVar(&opts.template, "template", false, "Leave scores out of the share string")
	f.StringVar(&opts.decode, "decode", "", "Decode a share string and print it as yaml")
	cmd.MarkFlagsMutuallyExclusive("decode", "template")
	cmd.MarkFlagsMutuallyExclusive("decode", "file")
	cmd.MarkFlagsMutuallyExclusive("decode", "row")

	return cmd
}

func runShare(cmd *cobra.Command, g *globalOpts, opts shareOpts) error {
	_, log, err := setup(g)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	out := cmd.OutOrStdout()

	if opts.decode != "" {
		ws, err := sharestate.Decode(opts.decode)
		if err != nil {
			return fmt.Errorf("decoding share string: %w", err)
		}
		log.Debug("decoded share string", zap.Int("rows", ws.Len()), zap.String("table", ws.TableID))
		return worksheet.Write(out, ws)
	}

	ws, err := buildWorksheet(opts.sheet)
	if err != nil {
		return err
	}
	if ws.Empty() {
		return errors.New("nothing to share: add --row or --file")
	}

	var s string
	if opts.template {
		s, err = sharestate.EncodeTemplate(ws)
	} else {
		s, err = sharestate.Encode(ws)
	}
	if err != nil {
		return fmt.Errorf("encoding share string: %w", err)
	}
	log.Debug("encoded share string",
		zap.Int("rows", ws.Len()),
		zap.Bool("template", opts.template),
		zap.Int("length", len(s)),
	)

	fmt.Fprintln(out, s)
	return nil
}
