// Package main is the entrypoint for the stabkit CLI.
package main

import (
	"os"

	"github.com/qecutil/stabkit/internal/cli"
)

func main() {
	os.Exit(cli.New().Execute())
}
