package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects the diagnostics and output writers for one test.
func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr, oldNoColor := stdout, stderr, color.NoColor
	stdout, stderr, color.NoColor = out, errOut, true
	t.Cleanup(func() {
		stdout, stderr, color.NoColor = oldOut, oldErr, oldNoColor
		GMetrics = nil
	})
	return out, errOut
}

func run(args ...string) int {
	return realMain(append([]string{"exprtree"}, args...), strings.NewReader(""))
}

func TestMainArguments(t *testing.T) {
	out, errOut := capture(t)
	code := run("-t", "simplify", "--", "- + 2 15 4", "- + 2 15 c")
	assert.Equal(t, kExitSuccess, code, errOut.String())
	assert.Equal(t, "13\n- 17 c\n", out.String())
}

func TestMainDefaultToolIsPrefix(t *testing.T) {
	out, _ := capture(t)
	assert.Equal(t, kExitSuccess, run("  +   2   15 "))
	assert.Equal(t, "+ 2 15\n", out.String())
}

func TestMainStdin(t *testing.T) {
	out, errOut := capture(t)
	stdin := strings.NewReader("* 1 a\n\n- * 1 c + c 0\n+ 5 - 4\n")
	code := realMain([]string{"exprtree", "-t", "fancy"}, stdin)
	assert.Equal(t, kExitFailure, code)
	assert.Equal(t, "a\n0\n", out.String())
	assert.Contains(t, errOut.String(), "exprtree: error: ")
	assert.Contains(t, errOut.String(), "malformed expression")
}

func TestMainBindings(t *testing.T) {
	out, errOut := capture(t)
	code := run("-t", "substitute", "-D", "c=5", "+ c - c d")
	assert.Equal(t, kExitSuccess, code, errOut.String())
	assert.Equal(t, "+ 5 - 5 d\n", out.String())

	out.Reset()
	code = run("-t", "eval", "-D", "x=2", "-D", "y=-3", "* x - y 1")
	assert.Equal(t, kExitSuccess, code, errOut.String())
	assert.Equal(t, "-8\n", out.String())

	out.Reset()
	assert.Equal(t, kExitFailure, run("-t", "eval", "+ x 1"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `"x"`)

	assert.Equal(t, kExitUsage, run("-D", "x", "1"))
}

func TestMainStrict(t *testing.T) {
	out, _ := capture(t)
	assert.Equal(t, kExitSuccess, run("+ 1 2 3"))
	assert.Equal(t, "+ 1 2\n", out.String())
	assert.Equal(t, kExitFailure, run("-s", "+ 1 2 3"))
}

func TestMainFlags(t *testing.T) {
	out, errOut := capture(t)
	assert.Equal(t, kExitSuccess, run("-V"))
	assert.Equal(t, kExprtreeVersion+"\n", out.String())

	out.Reset()
	assert.Equal(t, kExitSuccess, run("-t", "list"))
	assert.Contains(t, out.String(), "simplify")
	assert.Contains(t, out.String(), "serve")

	assert.Equal(t, kExitUsage, run("-t", "simplfy", "1"))
	assert.Contains(t, errOut.String(), "did you mean 'simplify'?")

	assert.Equal(t, kExitUsage, run("-x"))
	assert.Contains(t, errOut.String(), "usage: exprtree")

	errOut.Reset()
	assert.Equal(t, kExitSuccess, run("-h"))
	assert.Contains(t, errOut.String(), "usage: exprtree")
	assert.Contains(t, errOut.String(), "  -h            print this help\n")

	assert.Equal(t, kExitUsage, run("-d", "stat"))
	assert.Contains(t, errOut.String(), "did you mean 'stats'?")
	assert.Equal(t, kExitSuccess, run("-d", "list"))
}

func TestMainStats(t *testing.T) {
	out, _ := capture(t)
	assert.Equal(t, kExitSuccess, run("-d", "stats", "-t", "infix", "+ 1 2", "* a b"))
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "(1+2)", lines[0])
	assert.Equal(t, "(a*b)", lines[1])
	assert.Contains(t, out.String(), "infix")
	assert.Contains(t, out.String(), "2 expression(s)")
}

func TestMainConfig(t *testing.T) {
	out, errOut := capture(t)
	fname := filepath.Join(t.TempDir(), "exprtree.gcfg")
	require.NoError(t, os.WriteFile(fname, []byte(
		"[expr]\ntool = eval\nstrict = true\n\n[binding \"c\"]\nvalue = 5\n"), 0o644))

	code := run("-c", fname, "-D", "x=3", "* c x")
	assert.Equal(t, kExitSuccess, code, errOut.String())
	assert.Equal(t, "15\n", out.String())

	// -D shadows the file, -t overrides the configured tool
	out.Reset()
	code = run("-c", fname, "-D", "c=1", "-t", "substitute", "+ c y")
	assert.Equal(t, kExitSuccess, code, errOut.String())
	assert.Equal(t, "+ 1 y\n", out.String())

	assert.Equal(t, kExitFailure, run("-c", fname, "+ c 1 2"), "strict from config")
	assert.Equal(t, kExitFailure, run("-c", filepath.Join(t.TempDir(), "missing")))
}
