package testutil

import (
	"os"
	"path/filepath"

	"src.dx.sh/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. It is different from testing.TB.TempDir in that it
// resolves symlinks in the path of the directory.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "dxtest"))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			println("failed to remove temp dir", dir)
		}
	})
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when a test finishes. It returns the directory for easier chaining.
func Chdir(c Cleanuper, dir string) string {
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(oldWd)) })
	return dir
}

// InTempDir is equivalent to Chdir(c, TempDir(c)).
func InTempDir(c Cleanuper) string {
	return Chdir(c, TempDir(c))
}

// TempHome is equivalent to Setenv(c, "HOME", TempDir(c)). It also clears
// XDG_CONFIG_HOME, so that configuration is looked up under the new home.
func TempHome(c Cleanuper) string {
	Unsetenv(c, "XDG_CONFIG_HOME")
	return Setenv(c, "HOME", TempDir(c))
}
