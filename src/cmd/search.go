package cmd

import (
	"fmt"
	"strings"

	"algoexam/src/search"

	"github.com/urfave/cli/v2"
)

func CmdSearch() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Action:    lookup,
		Category:  "TOOL",
		Usage:     "find records by partial ID or first name",
		ArgsUsage: "QUERY",
		Description: `
Matches records whose ID starts with QUERY or whose first name contains it,
ignoring case, and prints the first few in dataset order.

Examples:
$ algoexam search 1002
$ algoexam search ann --max 10`,
		Flags: expandFlags(dataFlags(), []cli.Flag{
			&cli.IntFlag{
				Name:  "max",
				Value: search.DefaultLimit,
				Usage: "maximum number of matches to show",
			},
		}),
	}
}

func lookup(c *cli.Context) error {
	setup(c, 1)
	rs, err := loadDataset(c)
	if err != nil {
		return err
	}
	query := strings.Join(c.Args().Slice(), " ")
	matches := search.FindMatches(rs, query, c.Int("max"))
	out := c.App.Writer
	if len(matches) == 0 {
		fmt.Fprintln(out, ">>> No matching records found.")
		return nil
	}
	fmt.Fprintf(out, "Showing top %d matches:\n", len(matches))
	printTable(out, matches)
	return nil
}
