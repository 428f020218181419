package cmd

import (
	"fmt"

	"algoexam/src/dataset"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func CmdImport() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Action:    load,
		Category:  "ADMIN",
		Usage:     "copy a CSV dataset into the database",
		ArgsUsage: "CSV-FILE META-URL",
		Description: `
Creates the exam_person table if it does not exist and appends every record of
the CSV file, preserving file order. Later commands can then read the dataset
with --meta-url.

Examples:
$ algoexam import data/generated_data.csv "mysql://root:pass@(127.0.0.1:3306)/exam"
$ algoexam import --truncate --batch 5000 data/generated_data.csv "mysql://root:pass@(127.0.0.1:3306)/exam"`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "batch",
				Value: 1000,
				Usage: "rows per insert transaction",
			},
			&cli.BoolFlag{
				Name:  "truncate",
				Usage: "remove existing rows first",
			},
		},
	}
}

func load(c *cli.Context) error {
	setup(c, 2)
	src := c.Args().Get(0)
	metaURL := c.Args().Get(1)

	rs, err := dataset.LoadCSV(src)
	if err != nil {
		return err
	}
	store, err := dataset.OpenStore(metaURL)
	if err != nil {
		return err
	}
	defer store.Close()
	store.ShowSQL(c.Bool("trace"))

	if c.Bool("truncate") {
		if err = store.Truncate(); err != nil {
			logger.Warnf("truncate: %v", err)
		}
	}
	n, err := store.Import(rs, c.Int("batch"))
	if err != nil {
		return errors.Wrapf(err, "import %s", src)
	}
	total, err := store.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Imported %d records, %d stored.\n", n, total)
	return nil
}
