// Package pprof writes the profiles requested on the command line.
package pprof

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
)

// Start starts CPU profiling into cpuProfile and arranges for an allocation
// profile to be written to allocsProfile. Either path may be empty. A file
// that cannot be created is reported to stderr and skipped.
//
// The returned function stops profiling and must be called before exiting.
func Start(stderr io.Writer, cpuProfile, allocsProfile string) (stop func()) {
	var cleanups []func()
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			fmt.Fprintln(stderr, "Warning: cannot create CPU profile:", err)
			fmt.Fprintln(stderr, "Continuing without CPU profiling.")
		} else if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(stderr, "Warning: cannot start CPU profiling:", err)
			f.Close()
		} else {
			cleanups = append(cleanups, func() {
				pprof.StopCPUProfile()
				f.Close()
			})
		}
	}
	if allocsProfile != "" {
		f, err := os.Create(allocsProfile)
		if err != nil {
			fmt.Fprintln(stderr, "Warning: cannot create memory allocation profile:", err)
			fmt.Fprintln(stderr, "Continuing without memory allocation profiling.")
		} else {
			cleanups = append(cleanups, func() {
				pprof.Lookup("allocs").WriteTo(f, 0)
				f.Close()
			})
		}
	}
	return func() {
		for _, cleanup := range cleanups {
			cleanup()
		}
	}
}
