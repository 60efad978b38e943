// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.dx.sh/pkg/buildinfo.Var=value" to "go build" or
// "go get".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"src.dx.sh/pkg/prog"
)

// VersionBase is the version of dx. On development commits, it identifies the
// next release.
const VersionBase = "0.1.0"

// VCSOverride may be set during compilation to "time-commit" (e.g.
// "20220401235958-123456789012") to identify the development commit when the
// Go toolchain does not stamp VCS information.
var VCSOverride string

// Reproducible identifies whether the build is reproducible. This can be
// overridden when building dx.
var Reproducible = "false"

// Type contains all the build information fields.
type Type struct {
	Version      string `json:"version"`
	Reproducible bool   `json:"reproducible"`
	GoVersion    string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:      devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo),
	Reproducible: Reproducible == "true",
	GoVersion:    runtime.Version(),
}

func devVersion(next, vcsOverride string, f func() (*debug.BuildInfo, bool)) string {
	fallback := next + "-dev.unknown"
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	bi, ok := f()
	if !ok {
		return fallback
	}
	// If the main module's version is known, use it, but without the "v"
	// prefix. This is the case when dx is built with "go install
	// src.dx.sh/cmd/dx@version".
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return v[1:]
	}
	// If VCS information is available (i.e. when dx is built from a checked
	// out repo), build a pseudo version. See
	// https://go.dev/ref/mod#pseudo-versions.
	var revision, timeString string
	var modified bool
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			timeString = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339Nano, timeString)
	if err != nil {
		return fallback
	}
	v := fmt.Sprintf("%s-dev.0.%s-%s", next, t.UTC().Format("20060102150405"), revision[:12])
	if modified {
		return v + "-dirty"
	}
	return v
}

// Program is the buildinfo subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
			fmt.Fprintln(fds[1], "Reproducible build:", Value.Reproducible)
		}
	case f.Version:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
