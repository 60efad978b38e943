package pprof

import (
	"os"
	"strings"
	"testing"

	"src.dx.sh/pkg/testutil"
)

func TestStart(t *testing.T) {
	testutil.InTempDir(t)

	var stderr strings.Builder
	stop := Start(&stderr, "cpuprof", "allocsprof")
	stop()
	if stderr.Len() > 0 {
		t.Errorf("Start writes to stderr: %q", stderr.String())
	}
	// There isn't much to check beyond the files existing.
	for _, name := range []string{"cpuprof", "allocsprof"} {
		if _, err := os.Stat(name); err != nil {
			t.Errorf("%s does not exist: %v", name, err)
		}
	}
}

func TestStart_BadPath(t *testing.T) {
	var stderr strings.Builder
	stop := Start(&stderr, "/a/bad/path", "/a/bad/path")
	stop()
	for _, want := range []string{
		"Warning: cannot create CPU profile:",
		"Warning: cannot create memory allocation profile:",
	} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr %q does not contain %q", stderr.String(), want)
		}
	}
}

func TestStart_Nothing(t *testing.T) {
	var stderr strings.Builder
	Start(&stderr, "", "")()
	if stderr.Len() > 0 {
		t.Errorf("Start writes to stderr: %q", stderr.String())
	}
}
