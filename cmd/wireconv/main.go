// Command wireconv converts wire values to their canonical form.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/wireconv/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
