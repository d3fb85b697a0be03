package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rtlang/lyth/ast"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parser errors on %q: %v", src, p.Errors())
	}
	return program
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
	}{
		{"let x = 5;", "x"},
		{"let y = true;", "y"},
		{"let foobar = y;", "foobar"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*ast.LetStatement)
		assert.True(t, ok)
		assert.Equal(t, tt.expectedIdentifier, stmt.Name.Value)
		assert.Equal(t, "let", stmt.TokenLiteral())
	}
}

func TestLetStatement_MissingAssignRecordsError(t *testing.T) {
	p := New("let x 5;")
	p.ParseProgram()
	assert.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "Expected peek_token to be")
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return true; return x;")
	assert.Len(t, program.Statements, 3)

	for _, stmt := range program.Statements {
		rs, ok := stmt.(*ast.ReturnStatement)
		assert.True(t, ok)
		assert.Equal(t, "return", rs.TokenLiteral())
	}
}

func TestIdentifierExpression(t *testing.T) {
	program := parseProgram(t, "foobar;")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ident, ok := stmt.Expression.(*ast.Identifier)
	assert.True(t, ok)
	assert.Equal(t, "foobar", ident.Value)
}

func TestIntegerLiteralExpression(t *testing.T) {
	program := parseProgram(t, "5;")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.IntegerLiteral)
	assert.True(t, ok)
	assert.Equal(t, int32(5), lit.Value)
}

func TestBooleanLiteralExpression(t *testing.T) {
	program := parseProgram(t, "true; false;")
	assert.Len(t, program.Statements, 2)

	first := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.BooleanLiteral)
	assert.True(t, first.Value)

	second := program.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.BooleanLiteral)
	assert.False(t, second.Value)
}

func TestParsingPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
	}{
		{"!5;", "!"},
		{"-15;", "-"},
		{"!true;", "!"},
		{"!false;", "!"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		exp, ok := stmt.Expression.(*ast.PrefixExpression)
		assert.True(t, ok)
		assert.Equal(t, tt.operator, exp.Operator)
	}
}

func TestParsingInfixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
	}{
		{"5 + 5;", "+"},
		{"5 - 5;", "-"},
		{"5 * 5;", "*"},
		{"5 / 5;", "/"},
		{"5 > 5;", ">"},
		{"5 < 5;", "<"},
		{"5 == 5;", "=="},
		{"5 != 5;", "!="},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		exp, ok := stmt.Expression.(*ast.InfixExpression)
		assert.True(t, ok)
		assert.Equal(t, tt.operator, exp.Operator)
	}
}

func TestOperatorPrecedenceRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.expected, program.String(), fmt.Sprintf("input: %s", tt.input))
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.IfExpression)
	assert.True(t, ok)
	assert.Len(t, exp.Consequence.Statements, 1)
	assert.Nil(t, exp.Alternative)
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.IfExpression)
	assert.True(t, ok)
	assert.Len(t, exp.Consequence.Statements, 1)
	assert.NotNil(t, exp.Alternative)
	assert.Len(t, exp.Alternative.Statements, 1)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	assert.True(t, ok)
	assert.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	assert.Len(t, fn.Body.Statements, 1)
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		fn := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.FunctionLiteral)
		assert.Len(t, fn.Parameters, len(tt.expected))
		for i, name := range tt.expected {
			assert.Equal(t, name, fn.Parameters[i].Value)
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.CallExpression)
	assert.True(t, ok)

	ident, ok := exp.Function.(*ast.Identifier)
	assert.True(t, ok)
	assert.Equal(t, "add", ident.Value)
	assert.Len(t, exp.Arguments, 3)
}

func TestIllegalTokenProducesNoPrefixParseFnError(t *testing.T) {
	p := New("@")
	p.ParseProgram()
	assert.NotEmpty(t, p.Errors())
}
