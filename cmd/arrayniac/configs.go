package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/arloliu/arrayniac/format"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log path traversal at debug level'"`
	Quiet   bool `cli:"name=q aliases=quiet desc='do not log discovered shapes'"`

	Main *cli.Command
}

func (cfg *MainConfig) logger() *slog.Logger {
	level := slog.LevelInfo
	switch {
	case cfg.Quiet:
		level = slog.LevelWarn
	case cfg.Verbose:
		level = slog.LevelDebug
	}

	return newLogger(os.Stderr, level)
}

type EncodeConfig struct {
	*MainConfig

	Yes      bool   `cli:"name=y aliases=yes desc='overwrite existing output files without asking'"`
	Codec    string `cli:"name=c aliases=codec desc='write a bundle compressed with none, zstd, s2 or lz4 instead of two documents'"`
	MaxDepth int    `cli:"name=max-depth desc='maximum nesting depth (default 10000)'"`

	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig

	Out      string `cli:"name=o desc='output file (default stdout)'"`
	Yes      bool   `cli:"name=y aliases=yes desc='overwrite the output file without asking'"`
	MaxDepth int    `cli:"name=max-depth desc='maximum nesting depth (default 10000)'"`

	Decode *cli.Command
}

type PackConfig struct {
	*MainConfig

	Yes       bool   `cli:"name=y aliases=yes desc='overwrite the output file without asking'"`
	Codec     string `cli:"name=c aliases=codec desc='payload compression: none, zstd (default), s2 or lz4'"`
	BigEndian bool   `cli:"name=big-endian desc='write header fields big-endian'"`

	Pack *cli.Command
}

type UnpackConfig struct {
	*MainConfig

	Yes bool `cli:"name=y aliases=yes desc='overwrite existing output files without asking'"`

	Unpack *cli.Command
}

type StatsConfig struct {
	*MainConfig

	Stats *cli.Command
}

func parseCodec(name string) (format.CompressionType, error) {
	ct, ok := format.ParseCompression(name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown codec %q, want none, zstd, s2 or lz4", cli.ErrUsage, name)
	}

	return ct, nil
}
