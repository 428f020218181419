package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"algoexam/src/bench"
	"algoexam/src/prompt"
	"algoexam/src/record"
	"algoexam/src/search"
	"algoexam/src/sort"
	"algoexam/src/utils"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func CmdMenu() *cli.Command {
	return &cli.Command{
		Name:     "menu",
		Action:   menu,
		Category: "INTERACTIVE",
		Usage:    "search records and benchmark sorting algorithms from a menu",
		Description: `
Loads the dataset once and opens the main control menu. From there you can
look a student up by partial ID or first name, or run a sorting benchmark.

Examples:
$ algoexam menu --data data/generated_data.csv
$ algoexam menu -m "mysql://root:pass@(127.0.0.1:3306)/exam"`,
		Flags: expandFlags(dataFlags(), []cli.Flag{
			&cli.IntFlag{
				Name:  "large-n",
				Value: bench.DefaultLargeN,
				Usage: "ask before running O(n^2) sorts on at least this many rows",
			},
		}),
	}
}

func menu(c *cli.Context) error {
	setup(c, 0)
	fmt.Println("------------------------------------------------")
	fmt.Println("  PRELIM EXAM: ALGORITHM COMPLEXITY ANALYSIS   ")
	fmt.Println("------------------------------------------------")
	fmt.Println("[Status] Initializing system and loading data...")

	rs, err := loadDataset(c)
	if err != nil {
		return err
	}
	ui := prompt.User{}
	h := &bench.Harness{LargeN: c.Int("large-n"), Confirm: ui, Progress: utils.Spinner}
	return runMenu(ui, os.Stdout, rs, h)
}

const pausePrompt = "Press Enter to return to Menu..."

var menuOptions = []string{
	"[Quick Search] Find & Select a Student",
	"[Benchmark] Run Algorithm Stress Tests",
	"[Exit] Shut Down System",
}

func runMenu(ui prompt.UI, out io.Writer, rs []record.Record, h *bench.Harness) error {
	for {
		choice, err := ui.Select("MAIN CONTROL MENU", menuOptions)
		if err == nil {
			switch choice {
			case 0:
				err = quickSearch(ui, out, rs)
			case 1:
				err = runBenchmark(ui, out, rs, h)
			default:
				fmt.Fprintln(out, "\nExiting system.")
				return nil
			}
			if err == nil {
				_, err = ui.Input(pausePrompt, "")
			}
		}
		if errors.Is(err, prompt.ErrInterrupted) {
			fmt.Fprintln(out, "\nExiting system.")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func quickSearch(ui prompt.UI, out io.Writer, rs []record.Record) error {
	query, err := ui.Input("Enter partial ID or First Name to search:", "")
	if err != nil {
		return err
	}
	matches := search.FindMatches(rs, query, search.DefaultLimit)
	if len(matches) == 0 {
		fmt.Fprintln(out, ">>> No matching records found.")
		return nil
	}

	fmt.Fprintf(out, "\nShowing top %d matches:\n", len(matches))
	printTable(out, matches)

	options := make([]string, 0, len(matches)+1)
	for i, r := range matches {
		options = append(options, fmt.Sprintf("[%d] %d %s %s", i+1, r.ID, r.FirstName, r.LastName))
	}
	options = append(options, "[0] Cancel selection")
	pick, err := ui.Select("Select the person:", options)
	if err != nil {
		return err
	}
	if pick < 0 || pick >= len(matches) {
		fmt.Fprintln(out, "Selection cancelled.")
		return nil
	}
	chosen := matches[pick]
	fmt.Fprintln(out, "\n[!] RECORD FULLY ACCESSED:")
	fmt.Fprintf(out, "    - ID: %d\n", chosen.ID)
	fmt.Fprintf(out, "    - NAME: %s %s\n", chosen.FirstName, chosen.LastName)
	return nil
}

func runBenchmark(ui prompt.UI, out io.Writer, rs []record.Record, h *bench.Harness) error {
	fmt.Fprintln(out, "\n--- BENCHMARK CONFIGURATION ---")
	rows, err := ui.Input("How many rows to sort? (1000/10000/100000)", "1000")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(rows))
	if err != nil {
		fmt.Fprintln(out, "Invalid input. N must be a number.")
		return nil
	}
	field, err := ui.Input("Sort by which column? (ID/FirstName/LastName)", "ID")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nChoose Algorithm:")
	for _, a := range sort.Algorithms() {
		fmt.Fprintln(out, a.Label())
	}
	algo, err := ui.Input("Choice (A/B/C)", "C")
	if err != nil {
		return err
	}

	res, err := h.Run(rs, bench.Request{N: n, Field: field, Algorithm: algo})
	return reportRun(out, res, err)
}

// reportRun prints a finished run, or explains why there is none. Only
// unexpected errors are returned.
func reportRun(out io.Writer, res *bench.Result, err error) error {
	switch {
	case err == nil:
		printResult(out, res)
		return nil
	case errors.Is(err, bench.ErrCancelled):
		fmt.Fprintln(out, "Benchmark cancelled.")
		return nil
	case errors.Is(err, bench.ErrInvalidField):
		fmt.Fprintln(out, "Invalid column. Use ID, FirstName or LastName.")
		return nil
	case errors.Is(err, bench.ErrInvalidAlgorithm):
		fmt.Fprintln(out, "Invalid algorithm selection.")
		return nil
	case errors.Is(err, bench.ErrInvalidSize):
		fmt.Fprintln(out, "Invalid input. N must be a positive number.")
		return nil
	}
	return err
}

func printResult(out io.Writer, res *bench.Result) {
	fmt.Fprintf(out, "\n--- SORTING COMPLETE (%s, %d records by %s) ---\n", res.Algorithm, res.N, res.Field)
	fmt.Fprintf(out, "Top %d Results:\n", bench.PreviewSize)
	for _, r := range res.Preview(bench.PreviewSize) {
		fmt.Fprintf(out, " >> %s\n", r)
	}
	fmt.Fprintf(out, "\n>>> FINAL TIME: %.4f seconds\n", res.Seconds())
}

func printTable(out io.Writer, rs []record.Record) {
	fmt.Fprintf(out, "%-4s | %-12s | %s\n", "No.", "ID Number", "Full Name")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	for i, r := range rs {
		fmt.Fprintf(out, "[%d]  | %-12d | %s %s\n", i+1, r.ID, r.FirstName, r.LastName)
	}
}
