package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/arloliu/arrayniac"
	"github.com/arloliu/arrayniac/bundle"
	"github.com/arloliu/arrayniac/compact"
)

func encode(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}

	want := 3
	if cfg.Codec != "" {
		want = 2
	}
	if len(args) != want {
		return fmt.Errorf("%w: encode takes %d arguments, got %d", cli.ErrUsage, want, len(args))
	}

	var bundleOpts []bundle.Option
	if cfg.Codec != "" {
		ct, err := parseCodec(cfg.Codec)
		if err != nil {
			return err
		}
		bundleOpts = append(bundleOpts, bundle.WithCompression(ct))
	}

	if err := newPrompter(os.Stdin, os.Stderr).checkOverwrite(cfg.Yes, args[1:]...); err != nil {
		return err
	}

	logger := cfg.logger()
	st, err := encodeFile(args[0], args[1:], bundleOpts, observerOpts(logger, cfg.MaxDepth))
	if err != nil {
		return err
	}

	logger.Info("encoded",
		"input", args[0],
		"objects", st.Objects,
		"shapes", st.Shapes,
		"savings", fmt.Sprintf("%.1f%%", st.Savings()))

	return nil
}

// encodeFile compacts input. With bundleOpts set, outputs holds one bundle path,
// otherwise the compact document path and the index path.
func encodeFile(input string, outputs []string, bundleOpts []bundle.Option, opts []compact.Option) (compact.Stats, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return compact.Stats{}, fmt.Errorf("could not open input file %s: %w", input, err)
	}

	res, err := arrayniac.Encode(data, opts...)
	if err != nil {
		return compact.Stats{}, fmt.Errorf("error encoding %s: %w", input, err)
	}

	if len(bundleOpts) > 0 {
		blob, err := res.Pack(bundleOpts...)
		if err != nil {
			return compact.Stats{}, err
		}

		return res.Stats, writeFile(outputs[0], blob)
	}

	if err := writeFile(outputs[0], res.Document); err != nil {
		return compact.Stats{}, err
	}

	return res.Stats, writeFile(outputs[1], res.Index)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("failed to write to file %s: %w", path, err)
	}

	return nil
}
