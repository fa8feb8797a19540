package main

import (
	"os"

	"github.com/confluence-tools/confluence-md-export/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
