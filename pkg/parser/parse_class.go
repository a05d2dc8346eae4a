package parser

import (
	"tsfront/pkg/diag"
	"tsfront/pkg/lexer"
)

// parseClassDeclaration implements section 4.5's class grammar: an
// optional `abstract`, type parameters, an optional `extends`, an
// optional `implements` list, and a member list where each member's
// modifier ordering is visibility, then static/abstract, then get/set.
func (p *Parser) parseClassDeclaration(isExport bool) Statement {
	start := p.tok.Peek()
	isAbstract := p.tok.Skip(lexer.ABSTRACT)
	p.expect(lexer.CLASS)
	name, _ := p.expectIdentifier()
	typeParams := p.parseTypeParameterListIfPresent()

	var extends *TypeNode
	if p.tok.Skip(lexer.EXTENDS) {
		extends = p.parseTypeAt(false)
	}

	var implements []*TypeNode
	if p.tok.Skip(lexer.IMPLEMENTS) {
		implements = append(implements, p.parseTypeAt(false))
		for p.tok.Skip(lexer.COMMA) {
			implements = append(implements, p.parseTypeAt(false))
		}
	}

	p.expect(lexer.LBRACE)
	var members []ClassMember
	for p.tok.Peek().Type != lexer.RBRACE && p.tok.Peek().Type != lexer.EOF {
		if p.tok.Peek().Type == lexer.SEMICOLON {
			p.tok.Next()
			continue
		}
		members = append(members, p.parseClassMember())
	}
	p.expect(lexer.RBRACE)

	return &ClassDeclaration{
		NodeBase:       base(KindClassDeclaration, p.tok.SpanFrom(start)),
		Name:           name,
		IsAbstract:     isAbstract,
		TypeParameters: typeParams,
		Extends:        extends,
		Implements:     implements,
		Members:        members,
		IsExport:       isExport,
	}
}

// parseClassMember consumes the visibility/static/abstract/accessor
// modifier run, then disambiguates field vs. method by whether a `(`
// immediately follows the member name: a field never has a parameter
// list, so `(` unambiguously starts a method's parameters.
func (p *Parser) parseClassMember() ClassMember {
	start := p.tok.Peek()
	p.resetModifiers()

	visibility := ""
	switch p.tok.Peek().Type {
	case lexer.PUBLIC:
		visibility = "public"
		tok := p.tok.Peek()
		p.tok.Next()
		p.pushModifier(visibility, tok)
	case lexer.PRIVATE:
		visibility = "private"
		tok := p.tok.Peek()
		p.tok.Next()
		p.pushModifier(visibility, tok)
	case lexer.PROTECTED:
		visibility = "protected"
		tok := p.tok.Peek()
		p.tok.Next()
		p.pushModifier(visibility, tok)
	}

	isStatic := false
	if p.tok.Peek().Type == lexer.STATIC {
		tok := p.tok.Peek()
		isStatic = true
		p.tok.Next()
		p.pushModifier("static", tok)
	}

	isAbstract := false
	if p.tok.Peek().Type == lexer.ABSTRACT {
		tok := p.tok.Peek()
		isAbstract = true
		p.tok.Next()
		p.pushModifier("abstract", tok)
	}

	accessor := ""
	switch p.tok.Peek().Type {
	case lexer.GET:
		accessor = "get"
		tok := p.tok.Peek()
		p.tok.Next()
		p.pushModifier(accessor, tok)
	case lexer.SET:
		accessor = "set"
		tok := p.tok.Peek()
		p.tok.Next()
		p.pushModifier(accessor, tok)
	}

	name := ""
	if tok := p.tok.Peek(); tok.Type == lexer.IDENT {
		name = tok.Literal
		p.tok.Next()
	} else {
		p.diags.Error(diag.CodeIdentifierExpected, p.tok.RangeOf(tok))
	}

	if p.tok.Peek().Type != lexer.LPAREN {
		if isAbstract {
			p.diags.Error(diag.CodeModifierCannotBeUsedHere, p.modifierRange("abstract", p.tok.RangeOf(start)), "abstract")
		}
		if accessor != "" {
			p.diags.Error(diag.CodeModifierCannotBeUsedHere, p.modifierRange(accessor, p.tok.RangeOf(start)), accessor)
		}
		return p.finishFieldDeclaration(start, name, visibility, isStatic)
	}
	return p.finishMethodDeclaration(start, name, visibility, isStatic, isAbstract, accessor)
}

func (p *Parser) finishFieldDeclaration(start lexer.Token, name, visibility string, isStatic bool) *FieldDeclaration {
	var typ *TypeNode
	if p.tok.Skip(lexer.COLON) {
		typ = p.parseType()
	}
	var init Expression
	if p.tok.Skip(lexer.ASSIGN) {
		init = p.parseExpressionAtPrecedence(PrecAssign)
	}
	p.skipSemicolon()
	return &FieldDeclaration{
		NodeBase:    base(KindFieldDeclaration, p.tok.SpanFrom(start)),
		Name:        name,
		Visibility:  visibility,
		IsStatic:    isStatic,
		Type:        typ,
		Initializer: init,
	}
}

func (p *Parser) finishMethodDeclaration(start lexer.Token, name, visibility string, isStatic, isAbstract bool, accessor string) *MethodDeclaration {
	typeParams := p.parseTypeParameterListIfPresent()
	params := p.parseParameterList()
	var retType *TypeNode
	if p.tok.Skip(lexer.COLON) {
		retType = p.parseType()
	}

	var body *BlockStatement
	if p.tok.Peek().Type == lexer.LBRACE {
		if isAbstract {
			p.diags.Error(diag.CodeImplementationNotAllowedInAmbient, p.tok.RangeOf(p.tok.Peek()))
		}
		body = p.parseBlockStatement(false).(*BlockStatement)
	} else {
		p.skipSemicolon()
		if !isAbstract {
			p.diags.Error(diag.CodeFunctionImplementationMissing, p.tok.RangeOf(p.tok.Peek()))
		}
	}

	return &MethodDeclaration{
		NodeBase:       base(KindMethodDeclaration, p.tok.SpanFrom(start)),
		Name:           name,
		Visibility:     visibility,
		IsStatic:       isStatic,
		IsAbstract:     isAbstract,
		Accessor:       accessor,
		TypeParameters: typeParams,
		Parameters:     params,
		ReturnType:     retType,
		Body:           body,
	}
}
