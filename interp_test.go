/*
File    : golox/interp_test.go
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runSource drives the full pipeline the way the driver does for a file,
// with both streams captured.
func runSource(src string) (stdout string, stderr string, code int) {
	var out, errOut bytes.Buffer
	code = RunSource(src, &out, &errOut)
	return out.String(), errOut.String(), code
}

// represents one end-to-end scenario: program in, stdout and exit code out
type TestScenario struct {
	Name     string
	Src      string
	Stdout   string
	ExitCode int
}

func TestRunSource_Scenarios(t *testing.T) {
	tests := []TestScenario{
		{
			Name:     "arithmetic precedence",
			Src:      `print 1 + 2 * 3;`,
			Stdout:   "7\n",
			ExitCode: EXIT_OK,
		},
		{
			Name:     "string concatenation",
			Src:      `var a = "hi"; print a + " there";`,
			Stdout:   "hi there\n",
			ExitCode: EXIT_OK,
		},
		{
			Name:     "while loop",
			Src:      `var i = 0; while (i < 3) { print i; i = i + 1; }`,
			Stdout:   "0\n1\n2\n",
			ExitCode: EXIT_OK,
		},
		{
			Name: "closures",
			Src: `
fun makeCounter() {
  var n = 0;
  fun count() { n = n + 1; return n; }
  return count;
}
var c = makeCounter();
print c(); print c(); print c();
`,
			Stdout:   "1\n2\n3\n",
			ExitCode: EXIT_OK,
		},
		{
			Name: "early return through nested blocks",
			Src: `
fun f(x) { if (x > 0) { return "pos"; } return "np"; }
print f(5); print f(-1);
`,
			Stdout:   "pos\nnp\n",
			ExitCode: EXIT_OK,
		},
		{
			Name:     "for loop desugaring",
			Src:      `for (var i = 0; i < 2; i = i + 1) print i;`,
			Stdout:   "0\n1\n",
			ExitCode: EXIT_OK,
		},
	}

	for _, test := range tests {
		stdout, stderr, code := runSource(test.Src)
		assert.Equal(t, test.ExitCode, code, "%s: exit code", test.Name)
		assert.Equal(t, test.Stdout, stdout, "%s: stdout", test.Name)
		assert.Empty(t, stderr, "%s: stderr", test.Name)
	}
}

func TestRunSource_UndefinedVariableIsRuntimeError(t *testing.T) {
	stdout, stderr, code := runSource(`print x;`)
	assert.Equal(t, EXIT_SOFTWARE, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Undefined variable 'x'")
}

func TestRunSource_ParseErrorSkipsEvaluation(t *testing.T) {
	// The bad declaration is one diagnostic; recovery keeps parsing,
	// but the compile-time error means nothing ever runs.
	stdout, stderr, code := runSource("var ;\nprint 1;")
	assert.Equal(t, EXIT_DATAERR, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Expect variable name.")
}

func TestRunSource_LexErrorSkipsEvaluation(t *testing.T) {
	stdout, stderr, code := runSource("print 1;\nvar x = @;")
	assert.Equal(t, EXIT_DATAERR, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unexpected character '@'.")
}

func TestRunSource_UnterminatedString(t *testing.T) {
	stdout, stderr, code := runSource("var s = \"no close\nprint s;")
	assert.Equal(t, EXIT_DATAERR, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unterminated string.")
	assert.Contains(t, stderr, "string never closes")
}

func TestRunSource_TopLevelReturn(t *testing.T) {
	stdout, stderr, code := runSource(`return 1;`)
	assert.Equal(t, EXIT_SOFTWARE, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Cannot return from top-level code.")
}

func TestRunSource_RuntimeErrorAfterPartialOutput(t *testing.T) {
	stdout, stderr, code := runSource(`print "before"; print 1 + "a";`)
	assert.Equal(t, EXIT_SOFTWARE, code)
	assert.Equal(t, "before\n", stdout)
	assert.Contains(t, stderr, "Operands must be two numbers or two strings")
}

func TestRunSource_EmptyProgram(t *testing.T) {
	stdout, stderr, code := runSource("")
	assert.Equal(t, EXIT_OK, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRunSource_FunctionRendering(t *testing.T) {
	stdout, _, code := runSource(`fun greet() {} print greet;`)
	assert.Equal(t, EXIT_OK, code)
	assert.Equal(t, "<fn greet>\n", stdout)
}

func TestRun_UsageErrors(t *testing.T) {
	assert.Equal(t, EXIT_USAGE, Run([]string{}))
	assert.Equal(t, EXIT_USAGE, Run([]string{"a.lox", "b.lox"}))
}

func TestRun_MissingFile(t *testing.T) {
	assert.Equal(t, EXIT_USAGE, Run([]string{"definitely-not-here.lox"}))
}
