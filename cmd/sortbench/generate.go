package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-bond/sortbench/dataset"
	"github.com/urfave/cli/v2"
)

var _FlagDatasetDir = &cli.StringFlag{
	Name:  "dir",
	Usage: "sets output dir",
	Value: "datasets",
}

var _FlagElements = &cli.IntFlag{
	Name:  "n",
	Usage: "sets number of elements per dataset",
	Value: dataset.DefaultN,
}

var _FlagSeed = &cli.Int64Flag{
	Name:  "seed",
	Usage: "sets base random seed",
	Value: dataset.DefaultSeed,
}

var _FlagZstd = &cli.BoolFlag{
	Name:  "zstd",
	Usage: "compresses datasets with zstd",
}

var _FlagConcurrency = &cli.IntFlag{
	Name:  "concurrency",
	Usage: "sets number of datasets written in parallel",
	Value: dataset.DefaultConcurrency,
}

var GenerateCommand *cli.Command

func init() {
	GenerateCommand = &cli.Command{
		Name:  "generate",
		Usage: "generates the benchmark datasets",
		Flags: []cli.Flag{
			_FlagDatasetDir,
			_FlagElements,
			_FlagSeed,
			_FlagZstd,
			_FlagConcurrency,
		},
		Action: func(ctx *cli.Context) error {
			n := ctx.Int(_FlagElements.Name)
			if n < 0 {
				return fmt.Errorf("invalid number of elements: %d", n)
			}

			gen := &dataset.Generator{
				N:           n,
				Seed:        ctx.Int64(_FlagSeed.Name),
				Concurrency: ctx.Int(_FlagConcurrency.Name),
				Compress:    ctx.Bool(_FlagZstd.Name),
			}
			dir := ctx.String(_FlagDatasetDir.Name)

			fmt.Fprintf(ctx.App.Writer, "=> Generating %s numbers per dataset into %s\n", humanize.Comma(int64(n)), dir)
			start := time.Now()

			generated, err := gen.GenerateAll(ctx.Context, dir, dataset.Plans())
			if err != nil {
				return err
			}

			for _, g := range generated {
				fmt.Fprintf(ctx.App.Writer, "==> %s (%s)\n", g.Path, humanize.Bytes(g.Size))
			}
			fmt.Fprintf(ctx.App.Writer, "=> Done in %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
