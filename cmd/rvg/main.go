// Command rvg prints random values of numpy-style scalar and record types.
package main

import (
	"os"

	"github.com/katalvlaran/rvg/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
