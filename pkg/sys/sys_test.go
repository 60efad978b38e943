package sys

import (
	"os"
	"testing"

	"src.dx.sh/pkg/must"
)

func TestIsTerminal_Pipe(t *testing.T) {
	r, w := must.OK2(os.Pipe())
	defer r.Close()
	defer w.Close()
	if IsTerminal(r) || IsTerminal(w) {
		t.Errorf("a pipe is reported as a terminal")
	}
}

func TestIsTerminal_Nil(t *testing.T) {
	if IsTerminal(nil) {
		t.Errorf("IsTerminal(nil) -> true")
	}
}
