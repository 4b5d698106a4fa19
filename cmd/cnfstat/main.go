// Command cnfstat validates a DIMACS CNF file and prints its clause width
// histogram.
package main

import (
	"os"

	"github.com/roach88/cnfstat/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
