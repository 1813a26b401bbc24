package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/arloliu/arrayniac/bundle"
	"github.com/arloliu/arrayniac/format"
)

func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: pack takes <compact> <index> <bundle>", cli.ErrUsage)
	}

	ct := format.CompressionZstd
	if cfg.Codec != "" {
		if ct, err = parseCodec(cfg.Codec); err != nil {
			return err
		}
	}
	opts := []bundle.Option{bundle.WithCompression(ct)}
	if cfg.BigEndian {
		opts = append(opts, bundle.WithBigEndian())
	}

	if err := newPrompter(os.Stdin, os.Stderr).checkOverwrite(cfg.Yes, args[2]); err != nil {
		return err
	}

	size, err := packFiles(args[0], args[1], args[2], opts)
	if err != nil {
		return err
	}
	cfg.logger().Info("packed", "bundle", args[2], "codec", ct, "bytes", size)

	return nil
}

func packFiles(documentPath, indexPath, bundlePath string, opts []bundle.Option) (int, error) {
	document, err := os.ReadFile(documentPath)
	if err != nil {
		return 0, fmt.Errorf("could not open input file %s: %w", documentPath, err)
	}
	index, err := os.ReadFile(indexPath)
	if err != nil {
		return 0, fmt.Errorf("could not open input file %s: %w", indexPath, err)
	}

	blob, err := bundle.Pack(document, index, opts...)
	if err != nil {
		return 0, err
	}

	return len(blob), writeFile(bundlePath, blob)
}

func unpack(cfg *UnpackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpack.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: unpack takes <bundle> <compact> <index>", cli.ErrUsage)
	}

	if err := newPrompter(os.Stdin, os.Stderr).checkOverwrite(cfg.Yes, args[1:]...); err != nil {
		return err
	}

	return unpackFile(args[0], args[1], args[2])
}

func unpackFile(bundlePath, documentPath, indexPath string) error {
	data, err := os.ReadFile(bundlePath)
	if err != nil {
		return fmt.Errorf("could not open input file %s: %w", bundlePath, err)
	}

	b, err := bundle.Unpack(data)
	if err != nil {
		return fmt.Errorf("error unpacking %s: %w", bundlePath, err)
	}

	if err := writeFile(documentPath, b.Document); err != nil {
		return err
	}

	return writeFile(indexPath, b.Index)
}
