package main

import (
	"os"

	"algoexam/src/cmd"
	"algoexam/src/utils"
)

var logger = utils.GetLogger("algoexam")

func main() {
	if err := cmd.Main(os.Args); err != nil {
		logger.Fatal(err)
	}
}
