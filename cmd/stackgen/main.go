package main

import (
	"os"

	"github.com/stackgen-dev/stackgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
