package cmd

import (
	"os"

	"algoexam/src/bench"
	"algoexam/src/prompt"
	"algoexam/src/utils"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var stdinIsTerminal = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }

func CmdBench() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Action:    benchmark,
		Category:  "TOOL",
		Usage:     "sort the first N records with one algorithm and time it",
		ArgsUsage: "",
		Description: `
Sorts a copy of the first --rows records by --field using the chosen algorithm
and prints the first five sorted records with the elapsed time. Bubble and
insertion sort ask for confirmation at --large-n rows or more; pass --yes to
skip the question. Without a terminal and without --yes such runs are cancelled.

Examples:
$ algoexam bench -n 10000 -f LastName -a insertion
$ algoexam bench -n 100000 -f ID -a A --yes`,
		Flags: expandFlags(dataFlags(), []cli.Flag{
			&cli.IntFlag{
				Name:    "rows",
				Aliases: []string{"n"},
				Value:   1000,
				Usage:   "number of records to sort, taken from the start of the dataset",
			},
			&cli.StringFlag{
				Name:    "field",
				Aliases: []string{"f"},
				Value:   "ID",
				Usage:   "column to sort by: ID, FirstName or LastName",
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "merge",
				Usage:   "A/bubble, B/insertion or C/merge",
			},
			&cli.IntFlag{
				Name:  "large-n",
				Value: bench.DefaultLargeN,
				Usage: "ask before running O(n^2) sorts on at least this many rows",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "run large O(n^2) sorts without asking",
			},
		}),
	}
}

func benchmark(c *cli.Context) error {
	setup(c, 0)
	rs, err := loadDataset(c)
	if err != nil {
		return err
	}

	h := &bench.Harness{LargeN: c.Int("large-n"), Progress: utils.Spinner}
	if c.Bool("yes") {
		h.Confirm = prompt.AlwaysYes{}
	} else if stdinIsTerminal() {
		h.Confirm = prompt.User{}
	}

	res, err := h.Run(rs, bench.Request{
		N:         c.Int("rows"),
		Field:     c.String("field"),
		Algorithm: c.String("algorithm"),
	})
	if err != nil {
		logger.Debugf("benchmark: %v", err)
	}
	return reportRun(c.App.Writer, res, err)
}
