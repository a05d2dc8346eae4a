package parser

import (
	"tsfront/pkg/diag"
	"tsfront/pkg/lexer"
)

// parseVariableOrEnumStatement implements section 4.5's variable-statement
// grammar. `const` is ambiguous with `const enum`, so it peeks one token
// ahead before committing to either production.
func (p *Parser) parseVariableOrEnumStatement(isExport, isDeclare bool) Statement {
	start := p.tok.Peek()
	if start.Type == lexer.CONST {
		// Consume 'const' and look at the token after it: 'enum' selects
		// the const-enum production, anything else a const variable statement.
		p.tok.Next()
		if p.tok.Peek().Type == lexer.ENUM {
			return p.finishEnumDeclaration(isExport, true, start)
		}
		return p.finishVariableStatement("const", isExport, isDeclare, start)
	}

	keyword := "let"
	if start.Type == lexer.VAR {
		keyword = "var"
	}
	p.tok.Next() // consume 'let'/'var'
	return p.finishVariableStatement(keyword, isExport, isDeclare, start)
}

func (p *Parser) finishVariableStatement(keyword string, isExport, isDeclare bool, start lexer.Token) Statement {
	var declarators []*VariableDeclarator
	declarators = append(declarators, p.parseVariableDeclarator(isDeclare))
	for p.tok.Skip(lexer.COMMA) {
		declarators = append(declarators, p.parseVariableDeclarator(isDeclare))
	}
	p.skipSemicolon()
	return &VariableStatement{
		NodeBase:    base(KindVariableStatement, p.tok.SpanFrom(start)),
		Keyword:     keyword,
		Declarators: declarators,
		IsExport:    isExport,
		IsDeclare:   isDeclare,
	}
}

func (p *Parser) parseVariableDeclarator(isDeclare bool) *VariableDeclarator {
	dstart := p.tok.Peek()
	name, _ := p.expectIdentifier()
	var typ *TypeNode
	if p.tok.Skip(lexer.COLON) {
		typ = p.parseType()
	} else if name != nil {
		p.diags.Error(diag.CodeVariableImplicitAny, name.Range, name.Name)
	}
	var init Expression
	if p.tok.Skip(lexer.ASSIGN) {
		if isDeclare {
			p.diags.Error(diag.CodeInitializerNotAllowedInAmbient, p.tok.RangeOf(p.tok.Token))
		}
		init = p.parseExpressionAtPrecedence(PrecAssign)
	}
	return &VariableDeclarator{
		NodeBase:    base(KindVariableDeclarator, p.tok.SpanFrom(dstart)),
		Name:        name,
		Type:        typ,
		Initializer: init,
	}
}

// parseEnumDeclaration handles the bare `enum` keyword form; the `const
// enum` form is reached through parseVariableOrEnumStatement instead,
// since 'const' has already been consumed there by the time it's known
// to be an enum.
func (p *Parser) parseEnumDeclaration(isExport, isConst bool) Statement {
	start := p.tok.Peek()
	return p.finishEnumDeclaration(isExport, isConst, start)
}

func (p *Parser) finishEnumDeclaration(isExport, isConst bool, start lexer.Token) Statement {
	p.expect(lexer.ENUM)
	name := ""
	if id, ok := p.expectIdentifier(); ok {
		name = id.Name
	}
	p.expect(lexer.LBRACE)
	var members []*EnumMember
	for p.tok.Peek().Type != lexer.RBRACE && p.tok.Peek().Type != lexer.EOF {
		members = append(members, p.parseEnumMember())
		if !p.tok.Skip(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RBRACE)
	return &EnumDeclaration{
		NodeBase: base(KindEnumDeclaration, p.tok.SpanFrom(start)),
		Name:     name,
		IsConst:  isConst,
		Members:  members,
		IsExport: isExport,
	}
}

func (p *Parser) parseEnumMember() *EnumMember {
	mstart := p.tok.Peek()
	name := ""
	if id, ok := p.expectIdentifier(); ok {
		name = id.Name
	}
	var value Expression
	if p.tok.Skip(lexer.ASSIGN) {
		value = p.parseExpressionAtPrecedence(PrecAssign)
	}
	return &EnumMember{NodeBase: base(KindEnumMember, p.tok.SpanFrom(mstart)), Name: name, Value: value}
}

// parseFunctionDeclaration implements section 4.5's function grammar: type
// parameters, a parameter list with optional spread/default/type
// annotations, a return type, and a body required unless the declaration
// is ambient.
func (p *Parser) parseFunctionDeclaration(isExport, isDeclare bool) Statement {
	start := p.tok.Peek()
	p.expect(lexer.FUNCTION)
	name, _ := p.expectIdentifier()
	typeParams := p.parseTypeParameterListIfPresent()
	params := p.parseParameterList()
	var retType *TypeNode
	if p.tok.Skip(lexer.COLON) {
		retType = p.parseType()
	} else if name != nil {
		p.diags.Error(diag.CodeFunctionImplicitReturnType, name.Range, name.Name)
	}

	var body *BlockStatement
	if p.tok.Peek().Type == lexer.LBRACE {
		body = p.parseBlockStatement(false).(*BlockStatement)
	} else if isDeclare {
		p.skipSemicolon()
	} else {
		p.diags.Error(diag.CodeFunctionImplementationMissing, p.tok.RangeOf(p.tok.Peek()))
	}
	if isDeclare && body != nil {
		p.diags.Error(diag.CodeImplementationNotAllowedInAmbient, body.Range)
	}

	return &FunctionDeclaration{
		NodeBase:       base(KindFunctionDeclaration, p.tok.SpanFrom(start)),
		Name:           name,
		TypeParameters: typeParams,
		Parameters:     params,
		ReturnType:     retType,
		Body:           body,
		IsExport:       isExport,
		IsDeclare:      isDeclare,
	}
}

func (p *Parser) parseTypeParameterListIfPresent() []*TypeParameter {
	if p.tok.Peek().Type != lexer.LT {
		return nil
	}
	p.tok.Next() // consume '<'
	var params []*TypeParameter
	if p.tok.Peek().Type != lexer.GT && p.tok.Peek().Type != lexer.SHR {
		tp := p.parseTypeParameter()
		params = append(params, tp)
		for p.tok.Skip(lexer.COMMA) {
			params = append(params, p.parseTypeParameter())
		}
	} else {
		p.diags.Error(diag.CodeTypeParameterListEmpty, p.tok.RangeOf(p.tok.Peek()))
	}
	if !p.tok.SplitGT() {
		p.diags.Error(diag.CodeTokenExpected, p.tok.RangeOf(p.tok.Peek()), ">")
	}
	return params
}

func (p *Parser) parseTypeParameter() *TypeParameter {
	tok := p.tok.Peek()
	name := ""
	if tok.Type == lexer.IDENT {
		name = tok.Literal
		p.tok.Next()
	} else {
		p.diags.Error(diag.CodeIdentifierExpected, p.tok.RangeOf(tok))
	}
	return &TypeParameter{NodeBase: base(KindTypeParameter, p.tok.RangeOf(tok)), Name: name}
}

// parseParameterList parses `(param, ...)`, where a parameter is
// `...`? Name `?`? (: Type)? (= Default)?. Spread and default value are
// tracked, but a `?` on the name has no dedicated flag since Parameter's
// optionality is fully determined by having no Default and, in practice,
// a nullable Type; it is accepted and discarded here to stay permissive.
func (p *Parser) parseParameterList() []*Parameter {
	p.expect(lexer.LPAREN)
	var params []*Parameter
	for p.tok.Peek().Type != lexer.RPAREN && p.tok.Peek().Type != lexer.EOF {
		params = append(params, p.parseParameter())
		if !p.tok.Skip(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RPAREN)
	return params
}

func (p *Parser) parseParameter() *Parameter {
	start := p.tok.Peek()
	spread := p.tok.Skip(lexer.SPREAD)
	name, _ := p.expectIdentifier()
	p.tok.Skip(lexer.QUESTION)
	var typ *TypeNode
	if p.tok.Skip(lexer.COLON) {
		typ = p.parseType()
	}
	var def Expression
	if p.tok.Skip(lexer.ASSIGN) {
		def = p.parseExpressionAtPrecedence(PrecAssign)
	}
	return &Parameter{
		NodeBase: base(KindParameter, p.tok.SpanFrom(start)),
		Spread:   spread,
		Name:     name,
		Type:     typ,
		Default:  def,
	}
}
