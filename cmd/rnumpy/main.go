// Package main provides the rnumpy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/rnumpy/internal/cli"
)

func main() {
	root := cli.NewCLI()
	err := root.Execute()
	_ = cli.Logger().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
