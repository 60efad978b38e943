package calc_test

import (
	"path/filepath"
	"testing"

	"src.dx.sh/pkg/calc"
	"src.dx.sh/pkg/must"
	. "src.dx.sh/pkg/prog/progtest"
	"src.dx.sh/pkg/testutil"
)

const demoOutput = "d/dx (2 * x^2 / (x + 2)) = " +
	"(2 * (2 * x) * (x + 2) - (1 + 0) * (2 * x^2)) / (x + 2)^2\n"

func TestProgram(t *testing.T) {
	testutil.TempHome(t)

	Test(t, calc.Program{},
		ThatDx("x^2").WritesStdout("d/dx (x^2) = 2 * x\n"),
		ThatDx("x^2", "sin x").
			WritesStdout("d/dx (x^2) = 2 * x\nd/dx (sin x) = cos x * 1\n"),
		ThatDx("-demo").WritesStdout(demoOutput),
		ThatDx("-c", "sin", "x").WritesStdout("d/dx (sin x) = cos x * 1\n"),
		ThatDx("-c").ExitsWith(2).WritesStderrContaining("-c requires an expression"),

		ThatDx("-at", "1,2", "x^2").
			WritesStdout("d/dx (x^2) = 2 * x\n  at x = 1: 2\n  at x = 2: 4\n"),
		ThatDx("-at", "0", "1 / x").
			WritesStdoutContaining("  at x = 0: -Inf\n"),
		ThatDx("-order", "2", "x^3").WritesStdout("d^2/dx^2 (x^3) = 3 * (2 * x)\n"),
		ThatDx("-order", "0", "x^3").WritesStdout("x^3\n"),
	)
}

func TestProgram_Stdin(t *testing.T) {
	testutil.TempHome(t)

	Test(t, calc.Program{},
		ThatDx().WithStdin("x^2\n\n  \nsin x\r\n").
			WritesStdout("d/dx (x^2) = 2 * x\nd/dx (sin x) = cos x * 1\n"),
		ThatDx().WithStdin("x\n2x\n").
			ExitsWith(1).
			WritesStdout("d/dx (x) = 1\n").
			WritesStderr("Parse error: unexpected token\n  [stdin line 2], line 1 col 2: 2x\n"),
	)
}

func TestProgram_ParseErrors(t *testing.T) {
	testutil.TempHome(t)

	Test(t, calc.Program{},
		ThatDx("1 + y", "x").
			ExitsWith(1).
			WritesStdout("d/dx (x) = 1\n").
			WritesStderr("Parse error: invalid word \"y\"\n  [arg 1], line 1 col 5: 1 + y\n"),
		ThatDx("(x + 1").
			ExitsWith(1).
			WritesStderrContaining("unclosed parenthesis"),
	)
}

func TestProgram_Formats(t *testing.T) {
	testutil.TempHome(t)

	Test(t, calc.Program{},
		ThatDx("-format", "json", "-at", "0", "x").WritesStdout(
			`{"input":"x","parsed":"x","order":1,"derivative":"1",` +
				`"tree":{"kind":"num","value":"1"},"values":[{"x":0,"y":1}]}` + "\n"),
		ThatDx("-json", "-at", "-1", "x^0.5").
			WritesStdoutContaining(`"values":[{"x":-1,"y":"NaN"}]`),
		ThatDx("-format", "yaml", "x").WritesStdoutContaining(`derivative: "1"`),
		ThatDx("-format", "yaml", "-at", "-1", "x^0.5").WritesStdoutContaining("y: .nan"),
		ThatDx("-format", "xml", "x").
			ExitsWith(2).
			WritesStderrContaining(`invalid -format "xml"`),
		ThatDx("-at", "a", "x").
			ExitsWith(2).
			WritesStderrContaining(`invalid point "a"`),
	)
}

func TestProgram_Check(t *testing.T) {
	testutil.TempHome(t)

	Test(t, calc.Program{},
		ThatDx("-check", "-at", "1", "x^2").
			WritesStdoutContaining("  check at x = 1: ok (numeric "),
		ThatDx("-check", "-at", "-1", "ln x").
			WritesStdoutContaining("  check at x = -1: skipped\n"),
		ThatDx("-check", "-order", "2", "-at", "0.5", "sin x^2").
			WritesStdoutContaining("  check at x = 0.5: ok"),
		ThatDx("-check", "-order", "0", "x^2").
			ExitsWith(2).
			WritesStderrContaining("-check requires an order of at least 1\nUsage:"),
	)
}

func TestProgram_History(t *testing.T) {
	testutil.TempHome(t)
	db := filepath.Join(testutil.TempDir(t), "db")

	Test(t, calc.Program{},
		ThatDx("-db", db, "x^2", "1 +", "sin x").
			ExitsWith(1).
			WritesStdoutContaining("sin x").
			WritesStderrContaining("unexpected token"),
		ThatDx("-db", db, "-history").WritesStdout("    1  x^2\n    2  sin x\n"),
		ThatDx("-db", db, "-history", "x").
			ExitsWith(2).
			WritesStderrContaining("arguments are not allowed with -history"),
		ThatDx("-history").
			ExitsWith(2).
			WritesStderrContaining("-history requires -db"),
	)
}

func TestProgram_RcFile(t *testing.T) {
	home := testutil.TempHome(t)
	must.WriteFile(filepath.Join(home, ".config", "dx", "rc.toml"), "order = 2\n")
	rc := filepath.Join(testutil.TempDir(t), "rc.toml")
	must.WriteFile(rc, "points = [2.0]\n")

	Test(t, calc.Program{},
		ThatDx("x^3").WritesStdout("d^2/dx^2 (x^3) = 3 * (2 * x)\n"),
		ThatDx("-order", "1", "x^3").WritesStdout("d/dx (x^3) = 3 * x^2\n"),
		ThatDx("-norc", "x^3").WritesStdout("d/dx (x^3) = 3 * x^2\n"),
		ThatDx("-rc", rc, "x^2").WritesStdout("d/dx (x^2) = 2 * x\n  at x = 2: 4\n"),
		ThatDx("-rc", rc, "-at", "3", "x^2").
			WritesStdout("d/dx (x^2) = 2 * x\n  at x = 3: 6\n"),
		ThatDx("-rc", filepath.Join(home, "nonexistent.toml"), "x").
			ExitsWith(2).
			WritesStderrContaining("nonexistent.toml"),
	)
}
