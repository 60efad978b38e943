// Package prog provides the entry point to dx. Its subpackages correspond to
// subprograms of dx.
package prog

// This package sets up the basic environment and calls the appropriate
// "subprogram", one of the buildinfo printer, the batch calculator and the
// interactive mode.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"src.dx.sh/pkg/diag"
	"src.dx.sh/pkg/logutil"
	"src.dx.sh/pkg/pprof"
	"src.dx.sh/pkg/sys"
)

var logger = logutil.GetLogger("[prog] ")

// Flags keeps command-line flags.
type Flags struct {
	Log, CPUProfile, AllocsProfile string

	Help, Version, BuildInfo, JSON bool

	// Take all arguments as one expression.
	CodeInArg bool

	// Points, output format and derivative order. The zero values (and -1 for
	// Order) mean that the value from the configuration file is used.
	At     string
	Format string
	Order  int

	Check, Demo, History bool

	DB, RC string
	NoRc   bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("dx", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.StringVar(&f.CPUProfile, "cpuprofile", "", "write cpu profile to file")
	fs.StringVar(&f.AllocsProfile, "allocsprofile", "", "write memory allocation profile to file")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output in JSON; same as -format json for expressions")

	fs.BoolVar(&f.CodeInArg, "c", false, "take all arguments as a single expression")
	fs.StringVar(&f.At, "at", "", "comma-separated points to evaluate the derivative at")
	fs.StringVar(&f.Format, "format", "", "output format: text, json or yaml")
	fs.IntVar(&f.Order, "order", -1, "order of the derivative (default from rc file, or 1)")
	fs.BoolVar(&f.Check, "check", false, "check the derivative against a numeric one at the points; requires -order of at least 1")
	fs.BoolVar(&f.Demo, "demo", false, "differentiate a demo expression")
	fs.BoolVar(&f.History, "history", false, "show the expression history and quit")

	fs.StringVar(&f.DB, "db", "", "path to the expression history database")
	fs.StringVar(&f.RC, "rc", "", "path to rc.toml")
	fs.BoolVar(&f.NoRc, "norc", false, "run dx without reading rc.toml")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: dx [flags] [expression ...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// ParsePoints parses a comma-separated list of numbers, as accepted by -at.
// Whitespace around the numbers is ignored.
func ParsePoints(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	points := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q", field)
		}
		points[i] = v
	}
	return points, nil
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. dx defines -help, but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	// Handle flags common to all subprograms.
	defer pprof.Start(fds[2], f.CPUProfile, f.AllocsProfile)()

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	diag.SetStyled(sys.IsTerminal(fds[2]))

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	logger.Printf("running with args %q", args[1:])
	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var exitErr exitError
	switch {
	case errors.As(err, new(badUsageError)):
		usage(fds[2], fs)
	case errors.As(err, &exitErr):
		return exitErr.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
