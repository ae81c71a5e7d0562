package main

import (
	"os"

	"github.com/temanbulus/nfa-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
