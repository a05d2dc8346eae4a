package parser

import (
	"bytes"
	"fmt"
	"strings"

	"tsfront/pkg/source"
)

// NodeKind discriminates every concrete AST node type. Unlike a
// class-per-kind hierarchy, every node here is a plain struct carrying a
// NodeBase header; type switches on Kind() replace virtual dispatch.
type NodeKind int

const (
	KindIdentifier NodeKind = iota
	KindNullLiteral
	KindTrueLiteral
	KindFalseLiteral
	KindIntegerLiteral
	KindFloatLiteral
	KindStringLiteral
	KindRegexpLiteral
	KindArrayLiteral
	KindParenthesizedExpression
	KindUnaryPrefixExpression
	KindUnaryPostfixExpression
	KindBinaryExpression
	KindSelectExpression
	KindCallExpression
	KindNewExpression
	KindElementAccessExpression
	KindPropertyAccessExpression
	KindPrefixAssertionExpression
	KindAsExpression

	KindBlockStatement
	KindBreakStatement
	KindContinueStatement
	KindDoWhileStatement
	KindEmptyStatement
	KindExpressionStatement
	KindForStatement
	KindIfStatement
	KindReturnStatement
	KindSwitchStatement
	KindSwitchCase
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindWhileStatement
	KindVariableStatement
	KindVariableDeclarator
	KindEnumDeclaration
	KindEnumMember
	KindFunctionDeclaration
	KindClassDeclaration
	KindFieldDeclaration
	KindMethodDeclaration
	KindImportStatement
	KindImportSpecifier
	KindExportStatement
	KindExportFromStatement
	KindExportImportStatement
	KindExportSpecifier
	KindDecorator
	KindParameter
	KindTypeParameter
	KindModifier
	KindTypeNode
)

var nodeKindNames = map[NodeKind]string{
	KindIdentifier:                "Identifier",
	KindNullLiteral:               "NullLiteral",
	KindTrueLiteral:               "TrueLiteral",
	KindFalseLiteral:              "FalseLiteral",
	KindIntegerLiteral:            "IntegerLiteral",
	KindFloatLiteral:              "FloatLiteral",
	KindStringLiteral:             "StringLiteral",
	KindRegexpLiteral:             "RegexpLiteral",
	KindArrayLiteral:              "ArrayLiteral",
	KindParenthesizedExpression:   "ParenthesizedExpression",
	KindUnaryPrefixExpression:     "UnaryPrefixExpression",
	KindUnaryPostfixExpression:    "UnaryPostfixExpression",
	KindBinaryExpression:          "BinaryExpression",
	KindSelectExpression:          "SelectExpression",
	KindCallExpression:            "CallExpression",
	KindNewExpression:             "NewExpression",
	KindElementAccessExpression:   "ElementAccessExpression",
	KindPropertyAccessExpression:  "PropertyAccessExpression",
	KindPrefixAssertionExpression: "PrefixAssertionExpression",
	KindAsExpression:              "AsExpression",
	KindBlockStatement:            "BlockStatement",
	KindBreakStatement:            "BreakStatement",
	KindContinueStatement:         "ContinueStatement",
	KindDoWhileStatement:          "DoWhileStatement",
	KindEmptyStatement:            "EmptyStatement",
	KindExpressionStatement:       "ExpressionStatement",
	KindForStatement:              "ForStatement",
	KindIfStatement:               "IfStatement",
	KindReturnStatement:           "ReturnStatement",
	KindSwitchStatement:           "SwitchStatement",
	KindSwitchCase:                "SwitchCase",
	KindThrowStatement:            "ThrowStatement",
	KindTryStatement:              "TryStatement",
	KindCatchClause:               "CatchClause",
	KindWhileStatement:            "WhileStatement",
	KindVariableStatement:         "VariableStatement",
	KindVariableDeclarator:        "VariableDeclarator",
	KindEnumDeclaration:           "EnumDeclaration",
	KindEnumMember:                "EnumMember",
	KindFunctionDeclaration:       "FunctionDeclaration",
	KindClassDeclaration:          "ClassDeclaration",
	KindFieldDeclaration:          "FieldDeclaration",
	KindMethodDeclaration:         "MethodDeclaration",
	KindImportStatement:           "ImportStatement",
	KindImportSpecifier:           "ImportSpecifier",
	KindExportStatement:           "ExportStatement",
	KindExportFromStatement:       "ExportFromStatement",
	KindExportImportStatement:     "ExportImportStatement",
	KindExportSpecifier:           "ExportSpecifier",
	KindDecorator:                 "Decorator",
	KindParameter:                 "Parameter",
	KindTypeParameter:             "TypeParameter",
	KindModifier:                  "Modifier",
	KindTypeNode:                  "TypeNode",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Node is satisfied by every AST node: a NodeKind discriminator, its
// source Range (satisfying source.Node so a Source can hold statements
// without importing this package), and a debug String().
type Node interface {
	Kind() NodeKind
	NodeRange() source.Range
	SetParent(*source.Source)
	String() string
}

// Expression is any Node usable in expression position. It carries no
// extra methods; the tag exists so parser signatures can say Expression
// instead of the bare Node when it matters for the reader.
type Expression interface {
	Node
	exprNode()
}

// Statement is any Node usable in statement position, including
// declarations (a FunctionDeclaration is a Statement).
type Statement interface {
	Node
	stmtNode()
}

// NodeBase is the shared header every concrete node embeds: its kind tag
// and the source range it occupies. Parent is set exactly once, when a
// top-level statement is appended to its owning Source.
type NodeBase struct {
	NodeKindValue NodeKind
	Range         source.Range
	Parent        *source.Source
}

func (n *NodeBase) Kind() NodeKind              { return n.NodeKindValue }
func (n *NodeBase) NodeRange() source.Range     { return n.Range }
func (n *NodeBase) SetParent(s *source.Source)  { n.Parent = s }

func base(kind NodeKind, rng source.Range) NodeBase {
	return NodeBase{NodeKindValue: kind, Range: rng}
}

// --- Expressions ---

type Identifier struct {
	NodeBase
	Name string
}

func (*Identifier) exprNode() {}
func (n *Identifier) String() string { return n.Name }

type NullLiteral struct{ NodeBase }

func (*NullLiteral) exprNode()        {}
func (*NullLiteral) String() string   { return "null" }

type TrueLiteral struct{ NodeBase }

func (*TrueLiteral) exprNode()      {}
func (*TrueLiteral) String() string { return "true" }

type FalseLiteral struct{ NodeBase }

func (*FalseLiteral) exprNode()      {}
func (*FalseLiteral) String() string { return "false" }

// IntegerLiteral stores the decoded 64-bit unsigned magnitude; sign is
// folded in by the surrounding unary-prefix expression, not here.
type IntegerLiteral struct {
	NodeBase
	Value uint64
	Raw   string
}

func (*IntegerLiteral) exprNode()        {}
func (n *IntegerLiteral) String() string { return n.Raw }

type FloatLiteral struct {
	NodeBase
	Value float64
	Raw   string
}

func (*FloatLiteral) exprNode()        {}
func (n *FloatLiteral) String() string { return n.Raw }

type StringLiteral struct {
	NodeBase
	Value string
}

func (*StringLiteral) exprNode()        {}
func (n *StringLiteral) String() string { return fmt.Sprintf("%q", n.Value) }

type RegexpLiteral struct {
	NodeBase
	Body  string
	Flags string
}

func (*RegexpLiteral) exprNode()        {}
func (n *RegexpLiteral) String() string { return "/" + n.Body + "/" + n.Flags }

// ArrayLiteral's Elements may contain nil entries: elision between commas
// per the language's array-hole semantics.
type ArrayLiteral struct {
	NodeBase
	Elements []Expression
}

func (*ArrayLiteral) exprNode() {}
func (n *ArrayLiteral) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		if e == nil {
			continue
		}
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type ParenthesizedExpression struct {
	NodeBase
	Expr Expression
}

func (*ParenthesizedExpression) exprNode()        {}
func (n *ParenthesizedExpression) String() string { return "(" + n.Expr.String() + ")" }

type UnaryPrefixExpression struct {
	NodeBase
	Operator string
	Operand  Expression
}

func (*UnaryPrefixExpression) exprNode() {}
func (n *UnaryPrefixExpression) String() string {
	return "(" + n.Operator + n.Operand.String() + ")"
}

type UnaryPostfixExpression struct {
	NodeBase
	Operator string
	Operand  Expression
}

func (*UnaryPostfixExpression) exprNode() {}
func (n *UnaryPostfixExpression) String() string {
	return "(" + n.Operand.String() + n.Operator + ")"
}

type BinaryExpression struct {
	NodeBase
	Operator string
	Left     Expression
	Right    Expression
}

func (*BinaryExpression) exprNode() {}
func (n *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Operator, n.Left.String(), n.Right.String())
}

// SelectExpression is the ternary conditional `cond ? then : else`.
type SelectExpression struct {
	NodeBase
	Condition Expression
	Then      Expression
	Else      Expression
}

func (*SelectExpression) exprNode() {}
func (n *SelectExpression) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", n.Condition.String(), n.Then.String(), n.Else.String())
}

type CallExpression struct {
	NodeBase
	Callee        Expression
	TypeArguments []*TypeNode
	Arguments     []Expression
}

func (*CallExpression) exprNode() {}
func (n *CallExpression) String() string {
	args := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Callee.String(), strings.Join(args, ", "))
}

type NewExpression struct {
	NodeBase
	Callee    Expression
	Arguments []Expression
}

func (*NewExpression) exprNode() {}
func (n *NewExpression) String() string {
	args := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("new %s(%s)", n.Callee.String(), strings.Join(args, ", "))
}

type ElementAccessExpression struct {
	NodeBase
	Object Expression
	Index  Expression
}

func (*ElementAccessExpression) exprNode() {}
func (n *ElementAccessExpression) String() string {
	return fmt.Sprintf("%s[%s]", n.Object.String(), n.Index.String())
}

type PropertyAccessExpression struct {
	NodeBase
	Object   Expression
	Property *Identifier
}

func (*PropertyAccessExpression) exprNode() {}
func (n *PropertyAccessExpression) String() string {
	return fmt.Sprintf("%s.%s", n.Object.String(), n.Property.String())
}

// PrefixAssertionExpression is the `<T>expr` type-assertion form.
type PrefixAssertionExpression struct {
	NodeBase
	Type *TypeNode
	Expr Expression
}

func (*PrefixAssertionExpression) exprNode() {}
func (n *PrefixAssertionExpression) String() string {
	return fmt.Sprintf("<%s>%s", n.Type.String(), n.Expr.String())
}

// AsExpression is the `expr as T` postfix assertion form.
type AsExpression struct {
	NodeBase
	Expr Expression
	Type *TypeNode
}

func (*AsExpression) exprNode() {}
func (n *AsExpression) String() string {
	return fmt.Sprintf("(%s as %s)", n.Expr.String(), n.Type.String())
}

// --- Types ---

// TypeNode names a type: an identifier (or a normalized keyword form),
// an ordered list of type arguments, and a nullable flag. A `[]` suffix
// wraps the preceding TypeNode as `Array<prev>` rather than adding a
// dedicated array-depth field, so nesting composes the same way `<T>`
// does.
type TypeNode struct {
	NodeBase
	Name          string
	TypeArguments []*TypeNode
	Nullable      bool
}

func (*TypeNode) exprNode() {}
func (n *TypeNode) String() string {
	var out bytes.Buffer
	out.WriteString(n.Name)
	if len(n.TypeArguments) > 0 {
		parts := make([]string, len(n.TypeArguments))
		for i, t := range n.TypeArguments {
			parts[i] = t.String()
		}
		out.WriteString("<" + strings.Join(parts, ", ") + ">")
	}
	if n.Nullable {
		out.WriteString(" | null")
	}
	return out.String()
}

// --- Modifiers, decorators, parameters, type parameters ---

type Modifier struct {
	NodeBase
	Keyword string
}

func (*Modifier) stmtNode()        {}
func (n *Modifier) String() string { return n.Keyword }

type Decorator struct {
	NodeBase
	Expr Expression
}

func (*Decorator) stmtNode()        {}
func (n *Decorator) String() string { return "@" + n.Expr.String() }

type Parameter struct {
	NodeBase
	Spread  bool
	Name    *Identifier
	Type    *TypeNode
	Default Expression
}

func (*Parameter) stmtNode() {}
func (n *Parameter) String() string {
	var out bytes.Buffer
	if n.Spread {
		out.WriteString("...")
	}
	out.WriteString(n.Name.String())
	if n.Type != nil {
		out.WriteString(": " + n.Type.String())
	}
	if n.Default != nil {
		out.WriteString(" = " + n.Default.String())
	}
	return out.String()
}

type TypeParameter struct {
	NodeBase
	Name string
}

func (*TypeParameter) stmtNode()        {}
func (n *TypeParameter) String() string { return n.Name }

// --- Statements ---

type BlockStatement struct {
	NodeBase
	Statements []Statement
}

func (*BlockStatement) stmtNode() {}
func (n *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range n.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

type BreakStatement struct {
	NodeBase
	Label string
}

func (*BreakStatement) stmtNode() {}
func (n *BreakStatement) String() string {
	if n.Label == "" {
		return "break;"
	}
	return "break " + n.Label + ";"
}

type ContinueStatement struct {
	NodeBase
	Label string
}

func (*ContinueStatement) stmtNode() {}
func (n *ContinueStatement) String() string {
	if n.Label == "" {
		return "continue;"
	}
	return "continue " + n.Label + ";"
}

type DoWhileStatement struct {
	NodeBase
	Body      Statement
	Condition Expression
}

func (*DoWhileStatement) stmtNode() {}
func (n *DoWhileStatement) String() string {
	return fmt.Sprintf("do %s while (%s);", n.Body.String(), n.Condition.String())
}

type EmptyStatement struct{ NodeBase }

func (*EmptyStatement) stmtNode()        {}
func (*EmptyStatement) String() string   { return ";" }

type ExpressionStatement struct {
	NodeBase
	Expr Expression
}

func (*ExpressionStatement) stmtNode() {}
func (n *ExpressionStatement) String() string {
	if n.Expr == nil {
		return ";"
	}
	return n.Expr.String() + ";"
}

// ForStatement's Init is either an ExpressionStatement or a
// VariableStatement, or nil.
type ForStatement struct {
	NodeBase
	Init      Statement
	Condition Expression
	Update    Expression
	Body      Statement
}

func (*ForStatement) stmtNode() {}
func (n *ForStatement) String() string {
	var initStr, condStr, updStr string
	if n.Init != nil {
		initStr = n.Init.String()
	}
	if n.Condition != nil {
		condStr = n.Condition.String()
	}
	if n.Update != nil {
		updStr = n.Update.String()
	}
	return fmt.Sprintf("for (%s %s; %s) %s", initStr, condStr, updStr, n.Body.String())
}

type IfStatement struct {
	NodeBase
	Condition Expression
	Then      Statement
	Else      Statement
}

func (*IfStatement) stmtNode() {}
func (n *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString(fmt.Sprintf("if (%s) %s", n.Condition.String(), n.Then.String()))
	if n.Else != nil {
		out.WriteString(" else " + n.Else.String())
	}
	return out.String()
}

type ReturnStatement struct {
	NodeBase
	Value Expression
}

func (*ReturnStatement) stmtNode() {}
func (n *ReturnStatement) String() string {
	if n.Value == nil {
		return "return;"
	}
	return "return " + n.Value.String() + ";"
}

type SwitchCase struct {
	NodeBase
	Test       Expression // nil for `default`
	Statements []Statement
}

func (*SwitchCase) stmtNode() {}
func (n *SwitchCase) String() string {
	var out bytes.Buffer
	if n.Test != nil {
		out.WriteString("case " + n.Test.String() + ":")
	} else {
		out.WriteString("default:")
	}
	for _, s := range n.Statements {
		out.WriteString(" " + s.String())
	}
	return out.String()
}

type SwitchStatement struct {
	NodeBase
	Discriminant Expression
	Cases        []*SwitchCase
}

func (*SwitchStatement) stmtNode() {}
func (n *SwitchStatement) String() string {
	var out bytes.Buffer
	out.WriteString(fmt.Sprintf("switch (%s) { ", n.Discriminant.String()))
	for _, c := range n.Cases {
		out.WriteString(c.String() + " ")
	}
	out.WriteString("}")
	return out.String()
}

type ThrowStatement struct {
	NodeBase
	Value Expression
}

func (*ThrowStatement) stmtNode()        {}
func (n *ThrowStatement) String() string { return "throw " + n.Value.String() + ";" }

type CatchClause struct {
	NodeBase
	Param *Identifier // nil if the catch binding was omitted
	Body  *BlockStatement
}

func (*CatchClause) stmtNode() {}
func (n *CatchClause) String() string {
	if n.Param == nil {
		return "catch " + n.Body.String()
	}
	return fmt.Sprintf("catch (%s) %s", n.Param.String(), n.Body.String())
}

type TryStatement struct {
	NodeBase
	Block   *BlockStatement
	Catch   *CatchClause     // nil if absent
	Finally *BlockStatement  // nil if absent
}

func (*TryStatement) stmtNode() {}
func (n *TryStatement) String() string {
	var out bytes.Buffer
	out.WriteString("try " + n.Block.String())
	if n.Catch != nil {
		out.WriteString(" " + n.Catch.String())
	}
	if n.Finally != nil {
		out.WriteString(" finally " + n.Finally.String())
	}
	return out.String()
}

type WhileStatement struct {
	NodeBase
	Condition Expression
	Body      Statement
}

func (*WhileStatement) stmtNode() {}
func (n *WhileStatement) String() string {
	return fmt.Sprintf("while (%s) %s", n.Condition.String(), n.Body.String())
}

type VariableDeclarator struct {
	NodeBase
	Name        *Identifier
	Type        *TypeNode
	Initializer Expression
}

func (*VariableDeclarator) stmtNode() {}
func (n *VariableDeclarator) String() string {
	var out bytes.Buffer
	out.WriteString(n.Name.String())
	if n.Type != nil {
		out.WriteString(": " + n.Type.String())
	}
	if n.Initializer != nil {
		out.WriteString(" = " + n.Initializer.String())
	}
	return out.String()
}

// VariableStatement covers const/let/var uniformly; Keyword records
// which one so downstream phases can apply hoisting/mutability rules.
type VariableStatement struct {
	NodeBase
	Keyword     string // "const", "let", "var"
	Declarators []*VariableDeclarator
	IsExport    bool
	IsDeclare   bool
}

func (*VariableStatement) stmtNode() {}
func (n *VariableStatement) String() string {
	parts := make([]string, len(n.Declarators))
	for i, d := range n.Declarators {
		parts[i] = d.String()
	}
	prefix := ""
	if n.IsExport {
		prefix += "export "
	}
	if n.IsDeclare {
		prefix += "declare "
	}
	return prefix + n.Keyword + " " + strings.Join(parts, ", ") + ";"
}

type EnumMember struct {
	NodeBase
	Name  string
	Value Expression // nil if not explicitly assigned
}

func (*EnumMember) stmtNode() {}
func (n *EnumMember) String() string {
	if n.Value == nil {
		return n.Name
	}
	return n.Name + " = " + n.Value.String()
}

type EnumDeclaration struct {
	NodeBase
	Name     string
	IsConst  bool
	Members  []*EnumMember
	IsExport bool
}

func (*EnumDeclaration) stmtNode() {}
func (n *EnumDeclaration) String() string {
	parts := make([]string, len(n.Members))
	for i, m := range n.Members {
		parts[i] = m.String()
	}
	prefix := ""
	if n.IsExport {
		prefix = "export "
	}
	if n.IsConst {
		prefix += "const "
	}
	return fmt.Sprintf("%senum %s { %s }", prefix, n.Name, strings.Join(parts, ", "))
}

type FunctionDeclaration struct {
	NodeBase
	Name           *Identifier
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	ReturnType     *TypeNode
	Body           *BlockStatement // nil under declare
	Decorators     []*Decorator
	IsExport       bool
	IsDeclare      bool
}

func (*FunctionDeclaration) stmtNode() {}
func (n *FunctionDeclaration) String() string {
	params := make([]string, len(n.Parameters))
	for i, p := range n.Parameters {
		params[i] = p.String()
	}
	sig := fmt.Sprintf("function %s(%s)", n.Name.String(), strings.Join(params, ", "))
	if n.ReturnType != nil {
		sig += ": " + n.ReturnType.String()
	}
	if n.Body != nil {
		return sig + " " + n.Body.String()
	}
	return sig + ";"
}

// FieldDeclaration and MethodDeclaration share the same modifier layout
// (visibility, then static/abstract, then get/set) but differ in shape,
// so they stay separate node kinds rather than one variant struct.
type FieldDeclaration struct {
	NodeBase
	Name        string
	Visibility  string // "", "public", "private", "protected"
	IsStatic    bool
	IsAbstract  bool
	Type        *TypeNode
	Initializer Expression
}

func (*FieldDeclaration) stmtNode() {}
func (n *FieldDeclaration) String() string {
	var out bytes.Buffer
	if n.Visibility != "" {
		out.WriteString(n.Visibility + " ")
	}
	if n.IsStatic {
		out.WriteString("static ")
	}
	out.WriteString(n.Name)
	if n.Type != nil {
		out.WriteString(": " + n.Type.String())
	}
	if n.Initializer != nil {
		out.WriteString(" = " + n.Initializer.String())
	}
	out.WriteString(";")
	return out.String()
}

type MethodDeclaration struct {
	NodeBase
	Name           string
	Visibility     string
	IsStatic       bool
	IsAbstract     bool
	Accessor       string // "", "get", "set"
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	ReturnType     *TypeNode
	Body           *BlockStatement // nil for an abstract method
}

func (*MethodDeclaration) stmtNode() {}
func (n *MethodDeclaration) String() string {
	var out bytes.Buffer
	if n.Visibility != "" {
		out.WriteString(n.Visibility + " ")
	}
	if n.IsStatic {
		out.WriteString("static ")
	}
	if n.Accessor != "" {
		out.WriteString(n.Accessor + " ")
	}
	params := make([]string, len(n.Parameters))
	for i, p := range n.Parameters {
		params[i] = p.String()
	}
	out.WriteString(fmt.Sprintf("%s(%s)", n.Name, strings.Join(params, ", ")))
	if n.ReturnType != nil {
		out.WriteString(": " + n.ReturnType.String())
	}
	if n.Body != nil {
		out.WriteString(" " + n.Body.String())
	} else {
		out.WriteString(";")
	}
	return out.String()
}

// ClassMember is either a *FieldDeclaration or a *MethodDeclaration.
type ClassMember interface {
	Statement
}

type ClassDeclaration struct {
	NodeBase
	Name           *Identifier
	IsAbstract     bool
	TypeParameters []*TypeParameter
	Extends        *TypeNode
	Implements     []*TypeNode
	Members        []ClassMember
	Decorators     []*Decorator
	IsExport       bool
}

func (*ClassDeclaration) stmtNode() {}
func (n *ClassDeclaration) String() string {
	var out bytes.Buffer
	if n.IsExport {
		out.WriteString("export ")
	}
	if n.IsAbstract {
		out.WriteString("abstract ")
	}
	out.WriteString("class " + n.Name.String())
	if n.Extends != nil {
		out.WriteString(" extends " + n.Extends.String())
	}
	if len(n.Implements) > 0 {
		parts := make([]string, len(n.Implements))
		for i, t := range n.Implements {
			parts[i] = t.String()
		}
		out.WriteString(" implements " + strings.Join(parts, ", "))
	}
	out.WriteString(" { ")
	for _, m := range n.Members {
		out.WriteString(m.String() + " ")
	}
	out.WriteString("}")
	return out.String()
}

type ImportSpecifier struct {
	NodeBase
	Name  string
	Alias string // "" if no `as` clause
}

func (*ImportSpecifier) stmtNode() {}
func (n *ImportSpecifier) String() string {
	if n.Alias == "" {
		return n.Name
	}
	return n.Name + " as " + n.Alias
}

type ImportStatement struct {
	NodeBase
	Specifiers []*ImportSpecifier
	Path       string // as written in source
	ResolvedPath string // normalized, work-list key
}

func (*ImportStatement) stmtNode() {}
func (n *ImportStatement) String() string {
	parts := make([]string, len(n.Specifiers))
	for i, s := range n.Specifiers {
		parts[i] = s.String()
	}
	return fmt.Sprintf("import { %s } from %q;", strings.Join(parts, ", "), n.Path)
}

type ExportSpecifier struct {
	NodeBase
	Name  string
	Alias string
}

func (*ExportSpecifier) stmtNode() {}
func (n *ExportSpecifier) String() string {
	if n.Alias == "" {
		return n.Name
	}
	return n.Name + " as " + n.Alias
}

type ExportStatement struct {
	NodeBase
	Specifiers []*ExportSpecifier
}

func (*ExportStatement) stmtNode() {}
func (n *ExportStatement) String() string {
	parts := make([]string, len(n.Specifiers))
	for i, s := range n.Specifiers {
		parts[i] = s.String()
	}
	return fmt.Sprintf("export { %s };", strings.Join(parts, ", "))
}

// ExportFromStatement is `export { ... } from "path"`.
type ExportFromStatement struct {
	NodeBase
	Specifiers   []*ExportSpecifier
	Path         string
	ResolvedPath string
}

func (*ExportFromStatement) stmtNode() {}
func (n *ExportFromStatement) String() string {
	parts := make([]string, len(n.Specifiers))
	for i, s := range n.Specifiers {
		parts[i] = s.String()
	}
	return fmt.Sprintf("export { %s } from %q;", strings.Join(parts, ", "), n.Path)
}

// ExportImportStatement is the re-export alias form `export import Name = Other;`.
type ExportImportStatement struct {
	NodeBase
	Name  *Identifier
	Value *Identifier
}

func (*ExportImportStatement) stmtNode() {}
func (n *ExportImportStatement) String() string {
	return fmt.Sprintf("export import %s = %s;", n.Name.String(), n.Value.String())
}
