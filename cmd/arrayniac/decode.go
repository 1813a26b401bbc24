package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/arloliu/arrayniac"
	"github.com/arloliu/arrayniac/compact"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 && len(args) != 2 {
		return fmt.Errorf("%w: decode takes a bundle or a compact document and its index", cli.ErrUsage)
	}

	if cfg.Out != "" {
		if err := newPrompter(os.Stdin, os.Stderr).checkOverwrite(cfg.Yes, cfg.Out); err != nil {
			return err
		}
	}

	out, err := decodeFiles(args, observerOpts(cfg.logger(), cfg.MaxDepth))
	if err != nil {
		return err
	}

	if cfg.Out != "" {
		return writeFile(cfg.Out, out)
	}

	_, err = cc.Out.Write(append(out, '\n'))

	return err
}

// decodeFiles decodes a bundle (one path) or a compact document and index pair.
func decodeFiles(paths []string, opts []compact.Option) ([]byte, error) {
	inputs := make([][]byte, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("could not open input file %s: %w", p, err)
		}
		inputs[i] = data
	}

	if len(inputs) == 1 {
		out, err := arrayniac.DecodeBundle(inputs[0], opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding bundle %s: %w", paths[0], err)
		}

		return out, nil
	}

	out, err := arrayniac.Decode(inputs[0], inputs[1], opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s with %s: %w", paths[0], paths[1], err)
	}

	return out, nil
}
