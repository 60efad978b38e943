// Package calc implements the batch subprogram of dx, which differentiates
// expressions given as arguments or read from stdin, one per line.
package calc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"src.dx.sh/pkg/diag"
	"src.dx.sh/pkg/errutil"
	"src.dx.sh/pkg/logutil"
	"src.dx.sh/pkg/parse"
	"src.dx.sh/pkg/prog"
	"src.dx.sh/pkg/store"
	"src.dx.sh/pkg/store/storedefs"
	"src.dx.sh/pkg/sys"
)

var logger = logutil.GetLogger("[calc] ")

// DemoExpr is the expression differentiated by -demo.
const DemoExpr = "2 * x^2 / (x + 2)"

// Program is the batch subprogram. It runs when expressions are given as
// arguments, with -demo or -history, or when stdin is not a terminal.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.History {
		if len(args) > 0 {
			return prog.BadUsage("arguments are not allowed with -history")
		}
		opts, err := NewOptions(f)
		if err != nil {
			return err
		}
		return showHistory(fds[1], opts)
	}

	var sources []parse.Source
	switch {
	case f.Demo:
		sources = append(sources, parse.Source{Name: "[demo]", Code: DemoExpr})
	case f.CodeInArg:
		if len(args) == 0 {
			return prog.BadUsage("-c requires an expression")
		}
		return runSources(fds, f, []parse.Source{{Name: "[arg]", Code: strings.Join(args, " ")}})
	}
	for i, arg := range args {
		sources = append(sources, parse.Source{Name: fmt.Sprintf("[arg %d]", i+1), Code: arg})
	}
	if len(sources) == 0 {
		if sys.IsTerminal(fds[0]) {
			return prog.ErrNotSuitable
		}
		var err error
		sources, err = readSources(fds[0])
		if err != nil {
			return err
		}
	}
	return runSources(fds, f, sources)
}

// Reads one source per non-blank line.
func readSources(r io.Reader) ([]parse.Source, error) {
	var sources []parse.Source
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		code := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(code) == "" {
			continue
		}
		sources = append(sources, parse.Source{Name: fmt.Sprintf("[stdin line %d]", line), Code: code})
	}
	return sources, scanner.Err()
}

func runSources(fds [3]*os.File, f *prog.Flags, sources []parse.Source) (err error) {
	opts, err := NewOptions(f)
	if err != nil {
		return err
	}
	st, err := OpenStore(opts.DB)
	if err != nil {
		return err
	}
	if st != nil {
		defer func() { err = errutil.Multi(err, st.Close()) }()
	}

	enc := NewEncoder(fds[1], opts.Format)
	defer func() { err = errutil.Multi(err, enc.Close()) }()
	exit := 0
	for _, src := range sources {
		r, err := Compute(src, opts)
		if err != nil {
			diag.ShowError(fds[2], err)
			exit = 1
			continue
		}
		if st != nil {
			if _, err := st.AddExpr(src.Code); err != nil {
				logger.Printf("add %q to history: %v", src.Code, err)
			}
		}
		if err := enc.Encode(r); err != nil {
			return err
		}
		if !r.CheckOK() {
			exit = 1
		}
	}
	return prog.Exit(exit)
}

// OpenStore opens the history database at path. It returns nil if path is
// empty.
func OpenStore(path string) (store.DBStore, error) {
	if path == "" {
		return nil, nil
	}
	st, err := store.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open history database: %w", err)
	}
	return st, nil
}

func showHistory(w io.Writer, opts *Options) error {
	if opts.DB == "" {
		return prog.BadUsage("-history requires -db or db in rc.toml")
	}
	st, err := OpenStore(opts.DB)
	if err != nil {
		return err
	}
	defer st.Close()
	next, err := st.NextExprSeq()
	if err != nil {
		return err
	}
	exprs, err := st.Exprs(0, next)
	if err != nil {
		return err
	}
	WriteHistory(w, exprs)
	return nil
}

// WriteHistory writes history entries, one per line, prefixed with their
// sequence numbers.
func WriteHistory(w io.Writer, exprs []storedefs.Expr) {
	for _, e := range exprs {
		fmt.Fprintf(w, "%5d  %s\n", e.Seq, e.Text)
	}
}
