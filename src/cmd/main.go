package cmd

import (
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

func Main(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print version only",
	}
	return &cli.App{
		Name:                 "algoexam",
		Usage:                "Search student records and benchmark classic sorting algorithms.",
		Version:              version,
		EnableBashCompletion: true,
		DefaultCommand:       "menu",
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			CmdMenu(),
			CmdBench(),
			CmdSearch(),
			CmdImport(),
		},
	}
}
