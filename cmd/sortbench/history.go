package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-bond/sortbench/history"
	"github.com/urfave/cli/v2"
)

var _FlagHistoryDir = &cli.StringFlag{
	Name:     "history",
	Usage:    "sets history dir",
	Required: true,
}

var _FlagLimit = &cli.IntFlag{
	Name:  "limit",
	Usage: "sets max number of runs listed",
	Value: 10,
}

var HistoryCommand *cli.Command

func init() {
	HistoryCommand = &cli.Command{
		Name:  "history",
		Usage: "lists stored benchmark runs, newest first",
		Flags: []cli.Flag{
			_FlagHistoryDir,
			_FlagLimit,
		},
		Action: func(ctx *cli.Context) error {
			store, err := history.Open(ctx.String(_FlagHistoryDir.Name), nil)
			if err != nil {
				return err
			}
			defer store.Close()

			reports, err := store.List(ctx.Int(_FlagLimit.Name))
			if err != nil {
				return err
			}

			for _, report := range reports {
				fastest := "-"
				if res, ok := report.Fastest(); ok {
					fastest = fmt.Sprintf("%s (%.2f ms)", res.Algorithm, res.Milliseconds())
				}
				fmt.Fprintf(ctx.App.Writer, "%s  %s  %s %s  %s\n",
					report.CreatedAt.Format("2006-01-02 15:04:05"),
					report.Input,
					humanize.Comma(int64(report.Elements)),
					report.Kind,
					fastest,
				)
			}
			return nil
		},
	}
}
