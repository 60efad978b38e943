// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file descriptor is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsTerminal is like IsATTY, but takes an *os.File. A nil file is not a
// terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && IsATTY(f.Fd())
}
