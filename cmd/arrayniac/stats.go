package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/arloliu/arrayniac"
	"github.com/arloliu/arrayniac/compact"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: stats requires at least one input file", cli.ErrUsage)
	}

	opts := observerOpts(cfg.logger(), 0)
	for i, arg := range args {
		data, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("could not open input file %s: %w", arg, err)
		}
		res, err := arrayniac.Encode(data, opts...)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if err := writeStats(cc.Out, arg, res.Stats); err != nil {
			return err
		}
	}

	return nil
}

func writeStats(w io.Writer, name string, s compact.Stats) error {
	_, err := fmt.Fprintf(w, `%s
  paths:          %d
  shapes:         %d
  tagged paths:   %d
  objects:        %d
  input bytes:    %d
  document bytes: %d
  index bytes:    %d
  savings:        %.1f%%
`, name, s.Paths, s.Shapes, s.TaggedPaths, s.Objects,
		s.InputBytes, s.DocumentBytes, s.IndexBytes, s.Savings())

	return err
}
