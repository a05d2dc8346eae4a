package parser

import (
	"strings"
	"testing"

	"tsfront/pkg/diag"
	"tsfront/pkg/source"
	"tsfront/pkg/worklist"
)

func parseText(t *testing.T, text string) (*source.Source, *diag.Store) {
	t.Helper()
	src := source.NewSource("test.ts", "test", text, true)
	diags := diag.NewStore()
	p := New(src, diags, worklist.New())
	p.ParseSource()
	return src, diags
}

func mustOneStatement(t *testing.T, src *source.Source) Statement {
	t.Helper()
	if len(src.Statements) != 1 {
		t.Fatalf("expected exactly one top-level statement, got %d", len(src.Statements))
	}
	stmt, ok := src.Statements[0].(Statement)
	if !ok {
		t.Fatalf("top-level node is not a Statement: %T", src.Statements[0])
	}
	return stmt
}

// Scenario 1: `const x: i32 = 1 + 2;`
func TestScenarioConstWithBinaryInitializer(t *testing.T) {
	src, diags := parseText(t, "const x: i32 = 1 + 2;")
	if diags.HasErrors() {
		t.Fatalf("expected zero diagnostics, got: %s", diag.Render(diags))
	}
	stmt := mustOneStatement(t, src)
	v, ok := stmt.(*VariableStatement)
	if !ok {
		t.Fatalf("expected *VariableStatement, got %T", stmt)
	}
	if v.Keyword != "const" || len(v.Declarators) != 1 {
		t.Fatalf("expected one const declarator, got %+v", v)
	}
	bin, ok := v.Declarators[0].Initializer.(*BinaryExpression)
	if !ok {
		t.Fatalf("expected BinaryExpression initializer, got %T", v.Declarators[0].Initializer)
	}
	if bin.Operator != "+" {
		t.Fatalf("expected '+' operator, got %q", bin.Operator)
	}
	if _, ok := bin.Left.(*IntegerLiteral); !ok {
		t.Fatalf("expected left operand IntegerLiteral, got %T", bin.Left)
	}
	if _, ok := bin.Right.(*IntegerLiteral); !ok {
		t.Fatalf("expected right operand IntegerLiteral, got %T", bin.Right)
	}
}

func TestVariableDeclaratorWithoutTypeIsRecoverable(t *testing.T) {
	src, diags := parseText(t, "let x;")
	if !diags.HasErrors() {
		t.Fatalf("expected a missing-type-annotation diagnostic")
	}
	found := false
	for _, d := range diags.All() {
		if d.Code == diag.CodeVariableImplicitAny {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CodeVariableImplicitAny, got: %s", diag.Render(diags))
	}
	if _, ok := mustOneStatement(t, src).(*VariableStatement); !ok {
		t.Fatalf("expected parsing to still recover a VariableStatement")
	}
}

// Scenario 2: `function add(a: i32, b: i32): i32 { return a + b; }`
func TestScenarioFunctionDeclarationWithReturn(t *testing.T) {
	src, diags := parseText(t, "function add(a: i32, b: i32): i32 { return a + b; }")
	if diags.HasErrors() {
		t.Fatalf("expected zero diagnostics, got: %s", diag.Render(diags))
	}
	stmt := mustOneStatement(t, src)
	fn, ok := stmt.(*FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *FunctionDeclaration, got %T", stmt)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected two parameters, got %d", len(fn.Parameters))
	}
	if fn.Body == nil || len(fn.Body.Statements) != 1 {
		t.Fatalf("expected a body with one statement")
	}
	ret, ok := fn.Body.Statements[0].(*ReturnStatement)
	if !ok {
		t.Fatalf("expected *ReturnStatement, got %T", fn.Body.Statements[0])
	}
	bin, ok := ret.Value.(*BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected (+ a b) return value, got %#v", ret.Value)
	}
}

func TestFunctionDeclarationWithoutReturnTypeIsRecoverable(t *testing.T) {
	src, diags := parseText(t, "function add(a: i32, b: i32) { return a + b; }")
	if !diags.HasErrors() {
		t.Fatalf("expected a missing-return-type diagnostic")
	}
	found := false
	for _, d := range diags.All() {
		if d.Code == diag.CodeFunctionImplicitReturnType {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CodeFunctionImplicitReturnType, got: %s", diag.Render(diags))
	}
	fn, ok := mustOneStatement(t, src).(*FunctionDeclaration)
	if !ok {
		t.Fatalf("expected parsing to still recover a FunctionDeclaration")
	}
	if fn.ReturnType != nil {
		t.Fatalf("expected a nil ReturnType when none was annotated")
	}
}

// Scenario 3: `export { foo as bar } from "./other";`
func TestScenarioExportFromEnqueuesDependency(t *testing.T) {
	src := source.NewSource("test.ts", "test", `export { foo as bar } from "./other";`, true)
	diags := diag.NewStore()
	work := worklist.New()
	p := New(src, diags, work)
	p.ParseSource()

	if diags.HasErrors() {
		t.Fatalf("expected zero diagnostics, got: %s", diag.Render(diags))
	}
	stmt := mustOneStatement(t, src)
	ex, ok := stmt.(*ExportFromStatement)
	if !ok {
		t.Fatalf("expected *ExportFromStatement, got %T", stmt)
	}
	if len(ex.Specifiers) != 1 || ex.Specifiers[0].Name != "foo" || ex.Specifiers[0].Alias != "bar" {
		t.Fatalf("expected one specifier foo as bar, got %+v", ex.Specifiers)
	}
	next, ok := work.Next()
	if !ok {
		t.Fatalf("expected the resolved path to be enqueued")
	}
	if next != "other" {
		t.Fatalf("expected normalized path 'other', got %q", next)
	}
}

// Scenario 4: `class A<T> extends B implements I, J { x: i32 = 0; m(): void {} }`
func TestScenarioClassDeclaration(t *testing.T) {
	src, diags := parseText(t, "class A<T> extends B implements I, J { x: i32 = 0; m(): void {} }")
	if diags.HasErrors() {
		t.Fatalf("expected zero diagnostics, got: %s", diag.Render(diags))
	}
	stmt := mustOneStatement(t, src)
	cls, ok := stmt.(*ClassDeclaration)
	if !ok {
		t.Fatalf("expected *ClassDeclaration, got %T", stmt)
	}
	if len(cls.TypeParameters) != 1 {
		t.Fatalf("expected one type parameter, got %d", len(cls.TypeParameters))
	}
	if cls.Extends == nil || cls.Extends.Name != "B" {
		t.Fatalf("expected extends B, got %+v", cls.Extends)
	}
	if len(cls.Implements) != 2 {
		t.Fatalf("expected two implements entries, got %d", len(cls.Implements))
	}
	if len(cls.Members) != 2 {
		t.Fatalf("expected two members, got %d", len(cls.Members))
	}
	field, ok := cls.Members[0].(*FieldDeclaration)
	if !ok || field.Name != "x" || field.Initializer == nil {
		t.Fatalf("expected field x with initializer, got %#v", cls.Members[0])
	}
	method, ok := cls.Members[1].(*MethodDeclaration)
	if !ok || method.Name != "m" || method.Body == nil || len(method.Body.Statements) != 0 {
		t.Fatalf("expected empty method m, got %#v", cls.Members[1])
	}
}

// Scenario 5: `if (a) b; else if (c) d;` — right-nested else.
func TestScenarioIfElseRightNests(t *testing.T) {
	src, diags := parseText(t, "if (a) b; else if (c) d;")
	if diags.HasErrors() {
		t.Fatalf("expected zero diagnostics, got: %s", diag.Render(diags))
	}
	stmt := mustOneStatement(t, src)
	outer, ok := stmt.(*IfStatement)
	if !ok {
		t.Fatalf("expected *IfStatement, got %T", stmt)
	}
	inner, ok := outer.Else.(*IfStatement)
	if !ok {
		t.Fatalf("expected the else branch to itself be an *IfStatement, got %T", outer.Else)
	}
	if inner.Else != nil {
		t.Fatalf("expected the inner if to have no else branch")
	}
}

// Scenario 6: `new Foo<T>(1, 2)` — the new/call tie-break.
func TestScenarioNewWithTypeArgumentsAndCall(t *testing.T) {
	src, diags := parseText(t, "new Foo<T>(1, 2);")
	if diags.HasErrors() {
		t.Fatalf("expected zero diagnostics, got: %s", diag.Render(diags))
	}
	stmt := mustOneStatement(t, src)
	exprStmt, ok := stmt.(*ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ExpressionStatement, got %T", stmt)
	}
	call, ok := exprStmt.Expr.(*CallExpression)
	if !ok {
		t.Fatalf("expected the new-expression wrapped in a *CallExpression, got %T", exprStmt.Expr)
	}
	if len(call.TypeArguments) != 1 || call.TypeArguments[0].Name != "T" {
		t.Fatalf("expected one type argument T, got %+v", call.TypeArguments)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("expected two call arguments, got %d", len(call.Arguments))
	}
	newExpr, ok := call.Callee.(*NewExpression)
	if !ok {
		t.Fatalf("expected callee to be a *NewExpression, got %T", call.Callee)
	}
	if len(newExpr.Arguments) != 0 {
		t.Fatalf("expected the NewExpression itself to carry no arguments, got %d", len(newExpr.Arguments))
	}
}

// Operator-precedence laws.

func TestPrecedenceAdditiveOverMultiplicative(t *testing.T) {
	src, _ := parseText(t, "a + b * c;")
	stmt := mustOneStatement(t, src).(*ExpressionStatement)
	bin := stmt.Expr.(*BinaryExpression)
	if bin.Operator != "+" {
		t.Fatalf("expected top-level '+', got %q", bin.Operator)
	}
	rhs, ok := bin.Right.(*BinaryExpression)
	if !ok || rhs.Operator != "*" {
		t.Fatalf("expected right operand '(* b c)', got %#v", bin.Right)
	}
}

func TestPrecedenceAssignmentRightAssociative(t *testing.T) {
	src, _ := parseText(t, "a = b = c;")
	stmt := mustOneStatement(t, src).(*ExpressionStatement)
	outer := stmt.Expr.(*BinaryExpression)
	if outer.Operator != "=" {
		t.Fatalf("expected top-level '=', got %q", outer.Operator)
	}
	inner, ok := outer.Right.(*BinaryExpression)
	if !ok || inner.Operator != "=" {
		t.Fatalf("expected right-nested '=', got %#v", outer.Right)
	}
}

func TestPrecedenceExponentRightAssociative(t *testing.T) {
	src, _ := parseText(t, "a ** b ** c;")
	stmt := mustOneStatement(t, src).(*ExpressionStatement)
	outer := stmt.Expr.(*BinaryExpression)
	if outer.Operator != "**" {
		t.Fatalf("expected top-level '**', got %q", outer.Operator)
	}
	inner, ok := outer.Right.(*BinaryExpression)
	if !ok || inner.Operator != "**" {
		t.Fatalf("expected right-nested '**', got %#v", outer.Right)
	}
}

func TestPrecedenceRelationalNotConfusedWithCall(t *testing.T) {
	src, diags := parseText(t, "a < b > c;")
	if diags.HasErrors() {
		t.Fatalf("expected zero diagnostics parsing 'a < b > c;', got: %s", diag.Render(diags))
	}
	stmt := mustOneStatement(t, src).(*ExpressionStatement)
	outer, ok := stmt.Expr.(*BinaryExpression)
	if !ok || outer.Operator != ">" {
		t.Fatalf("expected top-level '>', got %#v", stmt.Expr)
	}
	inner, ok := outer.Left.(*BinaryExpression)
	if !ok || inner.Operator != "<" {
		t.Fatalf("expected left operand '(< a b)', got %#v", outer.Left)
	}
}

func TestGenericCallWithSingleTypeArgument(t *testing.T) {
	src, diags := parseText(t, "f<T>(x);")
	if diags.HasErrors() {
		t.Fatalf("expected zero diagnostics, got: %s", diag.Render(diags))
	}
	stmt := mustOneStatement(t, src).(*ExpressionStatement)
	call, ok := stmt.Expr.(*CallExpression)
	if !ok {
		t.Fatalf("expected *CallExpression, got %T", stmt.Expr)
	}
	if len(call.TypeArguments) != 1 || call.TypeArguments[0].Name != "T" {
		t.Fatalf("expected one type argument T, got %+v", call.TypeArguments)
	}
}

func TestNestedGenericTypeArgumentsSplitSHR(t *testing.T) {
	src, diags := parseText(t, "let x: Array<Array<T>>;")
	if diags.HasErrors() {
		t.Fatalf("expected zero diagnostics parsing nested generics, got: %s", diag.Render(diags))
	}
	stmt := mustOneStatement(t, src).(*VariableStatement)
	typ := stmt.Declarators[0].Type
	if typ.Name != "Array" || len(typ.TypeArguments) != 1 {
		t.Fatalf("expected outer Array<...>, got %+v", typ)
	}
	inner := typ.TypeArguments[0]
	if inner.Name != "Array" || len(inner.TypeArguments) != 1 || inner.TypeArguments[0].Name != "T" {
		t.Fatalf("expected inner Array<T>, got %+v", inner)
	}
}

// Invariants.

func TestTopLevelStatementRangesWithinSourceBounds(t *testing.T) {
	src, _ := parseText(t, "const x: i32 = 1 + 2;\nfunction f(): void {}\n")
	var walk func(n Node)
	walk = func(n Node) {
		rng := n.NodeRange()
		if rng.Start < 0 || rng.End > len(src.Text) || rng.End < rng.Start {
			t.Fatalf("range out of bounds: %+v on %T", rng, n)
		}
	}
	for _, s := range src.Statements {
		walk(s.(Node))
	}
}

func TestReturnOutsideFunctionIsRecoverable(t *testing.T) {
	src, diags := parseText(t, "return 1;")
	if !diags.HasErrors() {
		t.Fatalf("expected a diagnostic for a top-level return")
	}
	stmt := mustOneStatement(t, src)
	if _, ok := stmt.(*ReturnStatement); !ok {
		t.Fatalf("expected parsing to still produce a ReturnStatement, got %T", stmt)
	}
}

func TestTypeAliasEmitsDiagnosticAndContinues(t *testing.T) {
	src, diags := parseText(t, "type X = Y;\nconst z = 1;")
	if !diags.HasErrors() {
		t.Fatalf("expected a diagnostic for an unsupported type alias")
	}
	if len(src.Statements) < 1 {
		t.Fatalf("expected parsing to continue past the type alias")
	}
}

// A misplaced `abstract` on a field should be reported at the modifier
// keyword itself, not at the start of the whole member, which only works
// if the collected *Modifier node's own range is consulted.
func TestMisplacedAbstractModifierPointsAtKeyword(t *testing.T) {
	text := "class A { abstract x; }"
	src, diags := parseText(t, text)
	if !diags.HasErrors() {
		t.Fatalf("expected a diagnostic for abstract on a field")
	}
	_ = src
	var found bool
	for _, d := range diags.All() {
		if d.Code != diag.CodeModifierCannotBeUsedHere {
			continue
		}
		found = true
		start, _, _ := d.Range.Bounds()
		want := strings.Index(text, "abstract")
		if start != want {
			t.Fatalf("expected diagnostic range to start at %d (the 'abstract' keyword), got %d", want, start)
		}
	}
	if !found {
		t.Fatalf("expected a CodeModifierCannotBeUsedHere diagnostic")
	}
}
