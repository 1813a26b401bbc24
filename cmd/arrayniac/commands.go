package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "arrayniac").
		WithSynopsis("arrayniac [opts] command [opts]").
		WithDescription("arrayniac compacts JSON by replacing objects with positional arrays.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return arrayniacMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			PackCommand(cfg),
			UnpackCommand(cfg),
			StatsCommand(cfg))
}

func arrayniacMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose && cfg.Quiet {
		return fmt.Errorf("%w: -v and -q are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [-y] [-c codec] <input> <output> <index> | encode -c codec <input> <bundle>").
		WithDescription(encodeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encode(cfg, cc, args)
		})
}

const encodeDescription = `encode compacts a JSON document.

Every object is written as an array of its field values in sorted field name
order. The index document maps each path where objects occur to the field
positions of each shape seen there. Paths with more than one shape prefix every
object array with the shape id.

Existing output files are only replaced after confirmation, or with -y.
With -c the document and index are written as one compressed bundle.`

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "dec").
		WithSynopsis("decode [-o file] <compact> <index> | decode [-o file] <bundle>").
		WithDescription("decode rebuilds standard JSON from a compact document and its index, or from a bundle").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
}

func PackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PackConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Pack, "pack").
		WithAliases("p").
		WithSynopsis("pack [-y] [-c codec] [-big-endian] <compact> <index> <bundle>").
		WithDescription("pack stores a compact document and its index in one checksummed bundle").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pack(cfg, cc, args)
		})
}

func UnpackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnpackConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Unpack, "unpack").
		WithAliases("u").
		WithSynopsis("unpack [-y] <bundle> <compact> <index>").
		WithDescription("unpack verifies a bundle and writes its compact document and index").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unpack(cfg, cc, args)
		})
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithAliases("s").
		WithSynopsis("stats <input>...").
		WithDescription("stats reports the shapes found in JSON documents and the size of their compact form").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}
