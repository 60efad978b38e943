// Package repl implements the interactive subprogram of dx.
//
// Each line is an expression, whose derivative is printed together with its
// values at the configured points, or one of the commands listed by :help.
// Line editing and in-memory history are provided by
// github.com/peterh/liner; history is also kept in the database when one is
// configured.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"src.dx.sh/pkg/calc"
	"src.dx.sh/pkg/diag"
	"src.dx.sh/pkg/logutil"
	"src.dx.sh/pkg/parse"
	"src.dx.sh/pkg/prog"
	"src.dx.sh/pkg/store/storedefs"
	"src.dx.sh/pkg/sys"
)

var logger = logutil.GetLogger("[repl] ")

// Number of history entries loaded from the database on start.
const historySeed = 1000

// LineReader reads lines interactively. It is implemented by *liner.State.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// Program is the interactive subprogram. It runs when no expressions are
// given and stdin is a terminal.
type Program struct {
	// If not nil, used instead of liner, and stdin need not be a terminal.
	reader LineReader
}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 || f.Demo || f.History || f.CodeInArg {
		return prog.ErrNotSuitable
	}
	reader := p.reader
	if reader == nil {
		if !sys.IsTerminal(fds[0]) {
			return prog.ErrNotSuitable
		}
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		reader = state
	}
	defer reader.Close()

	opts, err := calc.NewOptions(f)
	if err != nil {
		return err
	}
	st, err := calc.OpenStore(opts.DB)
	if err != nil {
		return err
	}
	r := &repl{reader: reader, out: fds[1], errOut: fds[2], opts: opts}
	if st != nil {
		defer st.Close()
		r.store = st
		r.seedHistory()
	}
	r.loop()
	return nil
}

type repl struct {
	reader      LineReader
	out, errOut io.Writer
	opts        *calc.Options
	// Nil when there is no database.
	store storedefs.Store
	// Number of lines read, for naming sources.
	lines int
}

func (r *repl) seedHistory() {
	exprs, err := r.store.LastExprs(historySeed)
	if err != nil {
		logger.Println("load history:", err)
		return
	}
	for _, e := range exprs {
		r.reader.AppendHistory(e.Text)
	}
}

func (r *repl) loop() {
	for {
		line, err := r.reader.Prompt(r.opts.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if err != io.EOF {
				logger.Println("read line:", err)
			}
			fmt.Fprintln(r.out)
			return
		}
		r.lines++
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, ":"):
			if quit := r.command(line); quit {
				return
			}
		default:
			r.eval(line)
		}
	}
}

func (r *repl) eval(line string) {
	src := parse.Source{Name: fmt.Sprintf("[tty %d]", r.lines), Code: line}
	res, err := calc.Compute(src, r.opts)
	if err != nil {
		diag.ShowError(r.errOut, err)
		return
	}
	r.reader.AppendHistory(line)
	if r.store != nil {
		if _, err := r.store.AddExpr(line); err != nil {
			logger.Printf("add %q to history: %v", line, err)
		}
	}
	io.WriteString(r.out, calc.Text(res))
}

const helpText = `Enter an expression in x to differentiate it, or a command:
  :at v1 v2 ...   set the points to evaluate at; without values, show them
  :order n        set the order of the derivative
  :check          toggle checking derivatives numerically
  :history [n]    show the last n expressions (default 10)
  :help           show this help
  :quit           quit
`

func (r *repl) command(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help":
		io.WriteString(r.out, helpText)
	case ":at":
		if len(args) == 0 {
			fmt.Fprintln(r.out, "points:", formatPoints(r.opts.Points))
			break
		}
		points, err := prog.ParsePoints(strings.Join(args, ","))
		if err != nil {
			diag.Complain(r.errOut, err.Error())
			break
		}
		r.opts.Points = points
	case ":order":
		n, err := parseOne(args)
		if err != nil || n < 0 {
			diag.Complain(r.errOut, "usage: :order n, with n >= 0")
			break
		}
		r.opts.Order = n
	case ":check":
		r.opts.Check = !r.opts.Check
		if r.opts.Check {
			fmt.Fprintln(r.out, "check on")
		} else {
			fmt.Fprintln(r.out, "check off")
		}
	case ":history":
		r.history(args)
	default:
		diag.Complainf(r.errOut, "unknown command %s; try :help", cmd)
	}
	return false
}

func (r *repl) history(args []string) {
	n := 10
	if len(args) > 0 {
		var err error
		n, err = parseOne(args)
		if err != nil || n <= 0 {
			diag.Complain(r.errOut, "usage: :history [n], with n > 0")
			return
		}
	}
	if r.store == nil {
		diag.Complain(r.errOut, "no history database; use -db or db in rc.toml")
		return
	}
	exprs, err := r.store.LastExprs(n)
	if err != nil {
		diag.Complain(r.errOut, err.Error())
		return
	}
	calc.WriteHistory(r.out, exprs)
}

func parseOne(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("want one argument")
	}
	return strconv.Atoi(args[0])
}

func formatPoints(points []float64) string {
	if len(points) == 0 {
		return "none"
	}
	s := make([]string, len(points))
	for i, p := range points {
		s[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return strings.Join(s, " ")
}
