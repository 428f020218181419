package cmd

import (
	"github.com/urfave/cli/v2"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug", "v"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "enable trace log and print SQL statements",
		},
		&cli.BoolFlag{
			Name:  "no-agent",
			Usage: "disable pprof (:6060) and gops (:6070) agent",
		},
		&cli.StringFlag{
			Name:  "pyroscope",
			Usage: "pyroscope address",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
	}
}

func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			Aliases: []string{"d"},
			Value:   "data/generated_data.csv",
			EnvVars: []string{"ALGOEXAM_DATA"},
			Usage:   "CSV file with ID, FirstName and LastName columns",
		},
		&cli.StringFlag{
			Name:    "meta-url",
			Aliases: []string{"m"},
			EnvVars: []string{"ALGOEXAM_META_URL"},
			Usage:   "load records from a database instead, e.g. mysql://user:pass@(127.0.0.1:3306)/exam",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "load at most this many records (0 means all)",
		},
	}
}

func expandFlags(compoundFlags ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, fs := range compoundFlags {
		flags = append(flags, fs...)
	}
	return flags
}
