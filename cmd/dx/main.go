// Dx differentiates expressions of one variable symbolically. It reads
// expressions from its arguments or from stdin, one per line, and prints
// their derivatives; with a terminal on stdin and no arguments, it runs
// interactively.
package main

import (
	"os"

	"src.dx.sh/pkg/buildinfo"
	"src.dx.sh/pkg/calc"
	"src.dx.sh/pkg/prog"
	"src.dx.sh/pkg/repl"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, calc.Program{}, repl.Program{})))
}
