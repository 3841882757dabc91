package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func NewApp() *cli.App {
	return &cli.App{
		Name: "sortbench",
		Usage: "Benchmarks heap, merge, quick and library sort on numeric datasets.\n\n" +
			"sortbench generate --dir datasets\n" +
			"sortbench run --input datasets/seq06_int_rand.txt\n" +
			"sortbench run --input datasets/seq01_float_asc.txt --algorithm quick\n" +
			"sortbench history --history .sortbench",
		Commands: []*cli.Command{
			GenerateCommand,
			RunCommand,
			HistoryCommand,
		},
	}
}

func main() {
	if err := NewApp().Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[Error] %s\n", err.Error())
		os.Exit(1)
	}
}
