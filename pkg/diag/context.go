// Package diag contains building blocks for formatting and processing
// diagnostic information, such as the location of a parse error in the
// expression it was found in.
package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Context is a range of text in a source. It is typically used for errors
// that can be associated with a part of the source, like parse errors.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the culprit and of error messages. They
// are changed by SetStyled.
var (
	culpritStart       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
	messageStart       = "\033[31;1m"
	messageEnd         = "\033[m"
)

// SetStyled turns the use of ANSI escape sequences in the output of Show,
// ShowCompact, ShowError and Complain on or off. Styling is on by default.
func SetStyled(styled bool) {
	if styled {
		culpritStart, culpritEnd = "\033[1;4m", "\033[m"
		messageStart, messageEnd = "\033[31;1m", "\033[m"
	} else {
		culpritStart, culpritEnd = "", ""
		messageStart, messageEnd = "", ""
	}
}

// Show shows the context on two lines: the position and the source with the
// culprit highlighted. The second line is prefixed by indent.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Name + ", " + c.describePosition() + ":\n" + indent + c.relevantSource()
}

// ShowCompact is like Show, but puts everything on one line.
func (c *Context) ShowCompact() string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Name + ", " + c.describePosition() + ": " + c.relevantSource()
}

func (c *Context) checkPosition() error {
	if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

// Describes the position as a line and a 1-based column counted in runes.
func (c *Context) describePosition() string {
	before := c.Source[:c.From]
	line := strings.Count(before, "\n") + 1
	col := utf8.RuneCountInString(lastLine(before)) + 1
	return fmt.Sprintf("line %d col %d", line, col)
}

func (c *Context) relevantSource() string {
	head := lastLine(c.Source[:c.From])
	culprit := firstLine(c.Source[c.From:c.To])
	var tail string
	if len(culprit) == c.To-c.From {
		tail = firstLine(c.Source[c.To:])
	}
	if culprit == "" {
		culprit = culpritPlaceHolder
	}
	return head + culpritStart + culprit + culpritEnd + tail
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens to
	// be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
