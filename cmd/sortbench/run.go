package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-bond/sortbench"
	"github.com/go-bond/sortbench/dataset"
	"github.com/go-bond/sortbench/history"
	"github.com/go-bond/sortbench/reporters"
	"github.com/urfave/cli/v2"
)

const allAlgorithms = "all"

var _FlagInput = &cli.StringFlag{
	Name:     "input",
	Aliases:  []string{"i"},
	Usage:    "sets input dataset, the file name must contain 'int' or 'float'",
	Required: true,
}

var _FlagAlgorithm = &cli.StringFlag{
	Name:    "algorithm",
	Aliases: []string{"a"},
	Usage:   "sets algorithm: heap, merge, quick, library or all",
	Value:   allAlgorithms,
}

var _FlagReport = &cli.StringFlag{
	Name:  "report",
	Usage: "sets report format: " + strings.Join(reporters.Names(), ", "),
	Value: "stdout",
}

var _FlagOut = &cli.StringFlag{
	Name:  "out",
	Usage: "writes the report to a file instead of stdout",
}

var _FlagVerify = &cli.BoolFlag{
	Name:  "verify",
	Usage: "checks that every sorted copy is ordered",
}

var _FlagNoLibrary = &cli.BoolFlag{
	Name:  "no-library",
	Usage: "reports the library sort as unavailable",
}

var _FlagHistory = &cli.StringFlag{
	Name:  "history",
	Usage: "sets history dir, reports are stored when set",
}

var RunCommand *cli.Command

func init() {
	RunCommand = &cli.Command{
		Name:  "run",
		Usage: "sorts a dataset with one or all algorithms and reports timings",
		Flags: []cli.Flag{
			_FlagInput,
			_FlagAlgorithm,
			_FlagReport,
			_FlagOut,
			_FlagVerify,
			_FlagNoLibrary,
			_FlagHistory,
		},
		Action: func(ctx *cli.Context) error {
			algorithms, err := parseAlgorithms(ctx.String(_FlagAlgorithm.Name))
			if err != nil {
				return err
			}

			// the report is rendered into buf and written out once complete
			var buf bytes.Buffer
			reporter, err := reporters.New(ctx.String(_FlagReport.Name), &buf)
			if err != nil {
				return err
			}

			input := ctx.String(_FlagInput.Name)
			seq, err := dataset.Read(input)
			if err != nil {
				return err
			}

			progress := ctx.App.ErrWriter
			fmt.Fprintf(progress, "=> Loaded %s %s numbers from %s\n", humanize.Comma(int64(seq.Len())), seq.Kind(), input)

			opts := sortbench.DefaultOptions()
			opts.Verify = ctx.Bool(_FlagVerify.Name)
			opts.Sorters = append(opts.Sorters, &sortbench.LibrarySorter{Disabled: ctx.Bool(_FlagNoLibrary.Name)})
			opts.BeforeRun = func(a sortbench.Algorithm) {
				fmt.Fprintf(progress, "==> Run %s\n", a)
			}

			report, err := sortbench.New(opts).RunSelected(seq, algorithms...)
			if err != nil {
				return err
			}
			report.Input = input

			if err := reporter.Report(report); err != nil {
				return fmt.Errorf("failed to generate report - %w", err)
			}
			if err := writeOutput(ctx.App.Writer, ctx.String(_FlagOut.Name), buf.Bytes()); err != nil {
				return fmt.Errorf("failed to write report - %w", err)
			}

			if dir := ctx.String(_FlagHistory.Name); dir != "" {
				return storeReport(dir, report)
			}
			return nil
		},
	}
}

func parseAlgorithms(s string) ([]sortbench.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(s), allAlgorithms) {
		return sortbench.Algorithms(), nil
	}

	var algorithms []sortbench.Algorithm
	for _, part := range strings.Split(s, ",") {
		a, err := sortbench.ParseAlgorithm(part)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, a)
	}
	return algorithms, nil
}

// writeOutput writes data to the file out, or to w when out is empty.
func writeOutput(w io.Writer, out string, data []byte) error {
	if out != "" {
		return os.WriteFile(out, data, 0644)
	}
	_, err := w.Write(data)
	return err
}

func storeReport(dir string, report *sortbench.Report) error {
	store, err := history.Open(dir, nil)
	if err != nil {
		return fmt.Errorf("failed to open history - %w", err)
	}

	if err := store.Put(report); err != nil {
		_ = store.Close()
		return err
	}
	return store.Close()
}
