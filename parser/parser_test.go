/*
File    : golox/parser/parser_test.go
*/
package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qig123/golox/lexer"
	"github.com/qig123/golox/objects"
	"github.com/qig123/golox/reporter"
)

// parseSource runs the lexer and parser over src with diagnostics
// captured in the returned buffer.
func parseSource(src string) (*Parser, *RootNode, *bytes.Buffer) {
	var buf bytes.Buffer
	rep := reporter.NewReporter(src)
	rep.SetOut(&buf)
	lex := lexer.NewLexer(src, rep)
	par := NewParser(lex.ScanTokens(), rep)
	root := par.Parse()
	return par, root, &buf
}

func TestParser_Parse_NumberLiteralStatement(t *testing.T) {
	src := `12;`
	par, root, _ := parseSource(src)
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())

	// must: root has 1 statement
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatementNode)
	assert.True(t, can)
	lit, can := stmt.Expr.(*LiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "12", lit.Literal())
	if num, ok := lit.Value.(*objects.Number); ok {
		assert.Equal(t, 12.0, num.Value)
	} else {
		t.Errorf("Expected objects.Number, got %T", lit.Value)
	}
}

func TestParser_Parse_Precedence(t *testing.T) {
	src := `28 - 13 * 2;`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatementNode)
	assert.True(t, can)
	// Multiplication binds tighter: 28 - (13 * 2)
	exp, can := stmt.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MINUS_OP, exp.Operation.Type)

	left, can := exp.Left.(*LiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "28", left.Literal())

	right, can := exp.Right.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.STAR_OP, right.Operation.Type)
	assert.Equal(t, "28 - 13 * 2;", stmt.Literal())
}

func TestParser_Parse_GroupingBeatsPrecedence(t *testing.T) {
	src := `(28 - 13) * 2;`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())

	stmt := root.Statements[0].(*ExpressionStatementNode)
	exp, can := stmt.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.STAR_OP, exp.Operation.Type)

	group, can := exp.Left.(*GroupingExpressionNode)
	assert.True(t, can)
	inner, can := group.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MINUS_OP, inner.Operation.Type)
}

func TestParser_Parse_UnaryChain(t *testing.T) {
	src := `!!true; --1;`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 2, len(root.Statements))

	bang := root.Statements[0].(*ExpressionStatementNode).Expr.(*UnaryExpressionNode)
	assert.Equal(t, lexer.BANG_OP, bang.Operation.Type)
	_, can := bang.Right.(*UnaryExpressionNode)
	assert.True(t, can)

	minus := root.Statements[1].(*ExpressionStatementNode).Expr.(*UnaryExpressionNode)
	assert.Equal(t, lexer.MINUS_OP, minus.Operation.Type)
}

func TestParser_Parse_VarDeclaration(t *testing.T) {
	src := `var a = "hi"; var b;`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 2, len(root.Statements))

	decl, can := root.Statements[0].(*VarStatementNode)
	assert.True(t, can)
	assert.Equal(t, "a", decl.Name.Lexeme)
	lit, can := decl.Initializer.(*LiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, &objects.String{Value: "hi"}, lit.Value)

	bare, can := root.Statements[1].(*VarStatementNode)
	assert.True(t, can)
	assert.Nil(t, bare.Initializer)
}

func TestParser_Parse_AssignmentIsRightAssociative(t *testing.T) {
	src := `a = b = 5;`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())

	outer, can := root.Statements[0].(*ExpressionStatementNode).Expr.(*AssignExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner, can := outer.Value.(*AssignExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_Parse_InvalidAssignmentTarget(t *testing.T) {
	src := `a + b = 5;`
	par, _, buf := parseSource(src)
	assert.True(t, par.HasErrors())
	assert.Contains(t, buf.String(), "Invalid assignment target.")
	// The caret points at the '=' token.
	assert.Contains(t, buf.String(), "a + b = 5;")
	assert.Contains(t, buf.String(), "     |       ^-- Here.\n")
}

func TestParser_Parse_LogicalPrecedence(t *testing.T) {
	src := `a or b and c;`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())

	// and binds tighter: a or (b and c)
	or, can := root.Statements[0].(*ExpressionStatementNode).Expr.(*LogicalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.OR_KEY, or.Operation.Type)
	and, can := or.Right.(*LogicalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.AND_KEY, and.Operation.Type)
}

func TestParser_Parse_CallExpression(t *testing.T) {
	src := `f(1, 2)(3);`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())

	// Curried calls parse left to right: (f(1, 2))(3)
	outer, can := root.Statements[0].(*ExpressionStatementNode).Expr.(*CallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 1, len(outer.Args))
	inner, can := outer.Callee.(*CallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(inner.Args))
	_, can = inner.Callee.(*VariableExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_FunctionDeclaration(t *testing.T) {
	src := `fun add(a, b) { return a + b; }`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())

	fn, can := root.Statements[0].(*FunctionStatementNode)
	assert.True(t, can)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Equal(t, 2, len(fn.Params))
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
	assert.Equal(t, 1, len(fn.Body.Statements))
	_, can = fn.Body.Statements[0].(*ReturnStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_IfElseBindsToNearest(t *testing.T) {
	src := `if (a) if (b) print 1; else print 2;`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())

	outer, can := root.Statements[0].(*IfStatementNode)
	assert.True(t, can)
	assert.Nil(t, outer.Else)
	inner, can := outer.Then.(*IfStatementNode)
	assert.True(t, can)
	assert.NotNil(t, inner.Else)
}

func TestParser_Parse_ForLoopDesugarsToWhile(t *testing.T) {
	src := `for (var i = 0; i < 3; i = i + 1) print i;`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	// { var i = 0; while (i < 3) { print i; i = i + 1; } }
	block, can := root.Statements[0].(*BlockStatementNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(block.Statements))

	_, can = block.Statements[0].(*VarStatementNode)
	assert.True(t, can)

	loop, can := block.Statements[1].(*WhileStatementNode)
	assert.True(t, can)
	_, can = loop.Condition.(*BinaryExpressionNode)
	assert.True(t, can)

	body, can := loop.Body.(*BlockStatementNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(body.Statements))
	_, can = body.Statements[0].(*PrintStatementNode)
	assert.True(t, can)
	step, can := body.Statements[1].(*ExpressionStatementNode)
	assert.True(t, can)
	_, can = step.Expr.(*AssignExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_ForLoopWithAllPartsMissing(t *testing.T) {
	src := `for (;;) print 1;`
	par, root, _ := parseSource(src)
	assert.False(t, par.HasErrors())

	// No initializer and no step: just while (true) print 1;
	loop, can := root.Statements[0].(*WhileStatementNode)
	assert.True(t, can)
	cond, can := loop.Condition.(*LiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, &objects.Boolean{Value: true}, cond.Value)
	_, can = loop.Body.(*PrintStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_ErrorRecoverySynchronizes(t *testing.T) {
	src := `var ;
print 1;`
	par, root, buf := parseSource(src)

	// One diagnostic for the bad declaration, and recovery picks the
	// parse back up at the print statement.
	assert.True(t, par.HasErrors())
	assert.Equal(t, 1, len(par.GetErrors()))
	assert.Contains(t, buf.String(), "Expect variable name.")
	assert.Equal(t, 1, len(root.Statements))
	_, can := root.Statements[0].(*PrintStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_MultipleErrorsSurvive(t *testing.T) {
	src := `var ;
print (1;
var ok = 2;`
	par, root, _ := parseSource(src)

	assert.True(t, par.HasErrors())
	assert.GreaterOrEqual(t, len(par.GetErrors()), 2)
	// The good trailing declaration still parses.
	last := root.Statements[len(root.Statements)-1]
	decl, can := last.(*VarStatementNode)
	assert.True(t, can)
	assert.Equal(t, "ok", decl.Name.Lexeme)
}

func TestParser_Parse_TooManyArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	par, root, buf := parseSource(src)
	assert.True(t, par.HasErrors())
	assert.Contains(t, buf.String(), "Can't have more than 255 arguments.")
	// Parsing continues: the call node still carries every argument.
	call, can := root.Statements[0].(*ExpressionStatementNode).Expr.(*CallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 256, len(call.Args))
}

// TestParser_Reprint_RoundTrip re-parses the source-shaped rendering of
// a parse tree and checks the second rendering is identical, which is
// the structural round-trip property.
func TestParser_Reprint_RoundTrip(t *testing.T) {
	sources := []string{
		`print 1 + 2 * 3;`,
		`var a = "hi"; print a + " there";`,
		`var i = 0; while (i < 3) { print i; i = i + 1; }`,
		`fun f(x) { if (x > 0) { return "pos"; } return "np"; }`,
		`a = b = c;`,
		`print (1 + 2) * 3;`,
		`print nil or 1;`,
	}
	for _, src := range sources {
		par, root, _ := parseSource(src)
		assert.False(t, par.HasErrors(), "source: %q", src)

		first := root.Literal()
		par2, root2, _ := parseSource(first)
		assert.False(t, par2.HasErrors(), "reprint: %q", first)
		assert.Equal(t, first, root2.Literal(), "source: %q", src)
	}
}

// TestPrintingVisitor_TreeShape exercises the AST printer over a small
// program and spot-checks the rendered tree.
func TestPrintingVisitor_TreeShape(t *testing.T) {
	par, root, _ := parseSource(`var x = 1 + 2; print x;`)
	assert.False(t, par.HasErrors())

	printer := &PrintingVisitor{}
	root.Accept(printer)
	out := printer.Buf.String()

	assert.Contains(t, out, "Var [x]")
	assert.Contains(t, out, "Binary [+]")
	assert.Contains(t, out, "Literal [<number(1)>]")
	assert.Contains(t, out, "Print [print x;]")
	assert.Contains(t, out, "Variable [x]")
}
