package parser

import (
	"tsfront/pkg/diag"
	"tsfront/pkg/lexer"
)

// parseStatement implements section 4.4's statement dispatch. topLevel
// propagates into nested blocks only to decide whether a bare `return`
// should be flagged; it does not gate which statement forms are legal.
func (p *Parser) parseStatement(topLevel bool) Statement {
	tok := p.tok.Peek()
	switch tok.Type {
	case lexer.BREAK:
		return p.parseBreakOrContinue(true)
	case lexer.CONTINUE:
		return p.parseBreakOrContinue(false)
	case lexer.DO:
		return p.parseDoWhileStatement(topLevel)
	case lexer.FOR:
		return p.parseForStatement(topLevel)
	case lexer.IF:
		return p.parseIfStatement(topLevel)
	case lexer.RETURN:
		return p.parseReturnStatement(topLevel)
	case lexer.SWITCH:
		return p.parseSwitchStatement(topLevel)
	case lexer.THROW:
		return p.parseThrowStatement()
	case lexer.TRY:
		return p.parseTryStatement(topLevel)
	case lexer.WHILE:
		return p.parseWhileStatement(topLevel)
	case lexer.LBRACE:
		return p.parseBlockStatement(topLevel)
	case lexer.SEMICOLON:
		p.tok.Next()
		return &EmptyStatement{NodeBase: base(KindEmptyStatement, p.tok.RangeOf(tok))}
	case lexer.CONST, lexer.LET, lexer.VAR:
		return p.parseVariableOrEnumStatement(false, false)
	default:
		start := tok
		expr := p.parseExpression()
		p.skipSemicolon()
		return &ExpressionStatement{NodeBase: base(KindExpressionStatement, p.tok.SpanFrom(start)), Expr: expr}
	}
}

func (p *Parser) parseBreakOrContinue(isBreak bool) Statement {
	start := p.tok.Peek()
	p.tok.Next() // consume 'break'/'continue'
	var label string
	if p.tok.Peek().Type == lexer.IDENT && !p.tok.NextTokenOnNewLine {
		label = p.tok.Peek().Literal
		p.tok.Next()
	}
	p.skipSemicolon()
	if isBreak {
		return &BreakStatement{NodeBase: base(KindBreakStatement, p.tok.SpanFrom(start)), Label: label}
	}
	return &ContinueStatement{NodeBase: base(KindContinueStatement, p.tok.SpanFrom(start)), Label: label}
}

func (p *Parser) parseDoWhileStatement(topLevel bool) Statement {
	start := p.tok.Peek()
	p.tok.Next() // consume 'do'
	body := p.parseStatement(topLevel)
	p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	p.skipSemicolon()
	return &DoWhileStatement{NodeBase: base(KindDoWhileStatement, p.tok.SpanFrom(start)), Body: body, Condition: cond}
}

func (p *Parser) parseWhileStatement(topLevel bool) Statement {
	start := p.tok.Peek()
	p.tok.Next() // consume 'while'
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	body := p.parseStatement(topLevel)
	return &WhileStatement{NodeBase: base(KindWhileStatement, p.tok.SpanFrom(start)), Condition: cond, Body: body}
}

func (p *Parser) parseIfStatement(topLevel bool) Statement {
	start := p.tok.Peek()
	p.tok.Next() // consume 'if'
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	then := p.parseStatement(topLevel)
	var elseStmt Statement
	if p.tok.Peek().Type == lexer.ELSE {
		p.tok.Next()
		elseStmt = p.parseStatement(topLevel)
	}
	return &IfStatement{NodeBase: base(KindIfStatement, p.tok.SpanFrom(start)), Condition: cond, Then: then, Else: elseStmt}
}

// parseForStatement implements `for (Init Cond?; Update?) Stmt`; Init
// must be either an expression statement or a variable statement, and
// missing that is recoverable ("expression expected").
func (p *Parser) parseForStatement(topLevel bool) Statement {
	start := p.tok.Peek()
	p.tok.Next() // consume 'for'
	p.expect(lexer.LPAREN)

	var init Statement
	switch p.tok.Peek().Type {
	case lexer.SEMICOLON:
		p.tok.Next()
	case lexer.CONST, lexer.LET, lexer.VAR:
		init = p.parseVariableOrEnumStatement(false, false)
	default:
		exprStart := p.tok.Peek()
		expr := p.parseExpression()
		init = &ExpressionStatement{NodeBase: base(KindExpressionStatement, p.tok.SpanFrom(exprStart)), Expr: expr}
		p.expect(lexer.SEMICOLON)
	}

	var cond Expression
	if p.tok.Peek().Type != lexer.SEMICOLON {
		cond = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)

	var update Expression
	if p.tok.Peek().Type != lexer.RPAREN {
		update = p.parseExpression()
	}
	p.expect(lexer.RPAREN)

	body := p.parseStatement(topLevel)
	return &ForStatement{NodeBase: base(KindForStatement, p.tok.SpanFrom(start)), Init: init, Condition: cond, Update: update, Body: body}
}

// parseReturnStatement flags a top-level `return` recoverably (section
// 4.4) and omits the expression when the next token is `;`, `}`, or
// starts a new line.
func (p *Parser) parseReturnStatement(topLevel bool) Statement {
	start := p.tok.Peek()
	p.tok.Next() // consume 'return'
	if topLevel {
		p.diags.Error(diag.CodeReturnOutsideFunction, p.tok.RangeOf(start))
	}
	var value Expression
	next := p.tok.Peek()
	if next.Type != lexer.SEMICOLON && next.Type != lexer.RBRACE && next.Type != lexer.EOF && !p.tok.NextTokenOnNewLine {
		value = p.parseExpression()
	}
	p.skipSemicolon()
	return &ReturnStatement{NodeBase: base(KindReturnStatement, p.tok.SpanFrom(start)), Value: value}
}

func (p *Parser) parseSwitchStatement(topLevel bool) Statement {
	start := p.tok.Peek()
	p.tok.Next() // consume 'switch'
	p.expect(lexer.LPAREN)
	discriminant := p.parseExpression()
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)

	var cases []*SwitchCase
	for p.tok.Peek().Type != lexer.RBRACE && p.tok.Peek().Type != lexer.EOF {
		cases = append(cases, p.parseSwitchCase(topLevel))
	}
	p.expect(lexer.RBRACE)
	return &SwitchStatement{NodeBase: base(KindSwitchStatement, p.tok.SpanFrom(start)), Discriminant: discriminant, Cases: cases}
}

func (p *Parser) parseSwitchCase(topLevel bool) *SwitchCase {
	start := p.tok.Peek()
	var test Expression
	switch p.tok.Peek().Type {
	case lexer.CASE:
		p.tok.Next()
		test = p.parseExpressionAtPrecedence(PrecSpread + 1) // precedence > comma
		p.expect(lexer.COLON)
	case lexer.DEFAULT:
		p.tok.Next()
		p.expect(lexer.COLON)
	default:
		p.diags.Error(diag.CodeCaseOrDefaultExpected, p.tok.RangeOf(p.tok.Peek()))
	}

	var stmts []Statement
	for {
		next := p.tok.Peek().Type
		if next == lexer.CASE || next == lexer.DEFAULT || next == lexer.RBRACE || next == lexer.EOF {
			break
		}
		stmts = append(stmts, p.parseStatement(topLevel))
	}
	return &SwitchCase{NodeBase: base(KindSwitchCase, p.tok.SpanFrom(start)), Test: test, Statements: stmts}
}

func (p *Parser) parseThrowStatement() Statement {
	start := p.tok.Peek()
	p.tok.Next() // consume 'throw'
	value := p.parseExpression()
	p.skipSemicolon()
	return &ThrowStatement{NodeBase: base(KindThrowStatement, p.tok.SpanFrom(start)), Value: value}
}

// parseTryStatement requires at least one of catch/finally; the block
// itself is a hard grammar requirement so a missing `{` still produces a
// (possibly empty) BlockStatement rather than aborting the statement.
func (p *Parser) parseTryStatement(topLevel bool) Statement {
	start := p.tok.Peek()
	p.tok.Next() // consume 'try'
	block := p.parseBlockStatement(topLevel).(*BlockStatement)

	var catch *CatchClause
	if p.tok.Peek().Type == lexer.CATCH {
		catchStart := p.tok.Peek()
		p.tok.Next()
		var param *Identifier
		if p.tok.Peek().Type == lexer.LPAREN {
			p.tok.Next()
			param, _ = p.expectIdentifier()
			p.expect(lexer.RPAREN)
		}
		body := p.parseBlockStatement(topLevel).(*BlockStatement)
		catch = &CatchClause{NodeBase: base(KindCatchClause, p.tok.SpanFrom(catchStart)), Param: param, Body: body}
	}

	var finally *BlockStatement
	if p.tok.Peek().Type == lexer.FINALLY {
		p.tok.Next()
		finally = p.parseBlockStatement(topLevel).(*BlockStatement)
	}

	if catch == nil && finally == nil {
		p.diags.Error(diag.CodeTokenExpected, p.tok.RangeOf(p.tok.Peek()), "catch")
	}

	return &TryStatement{NodeBase: base(KindTryStatement, p.tok.SpanFrom(start)), Block: block, Catch: catch, Finally: finally}
}

func (p *Parser) parseBlockStatement(topLevel bool) Statement {
	start := p.tok.Peek()
	p.expect(lexer.LBRACE)
	var stmts []Statement
	for p.tok.Peek().Type != lexer.RBRACE && p.tok.Peek().Type != lexer.EOF {
		stmts = append(stmts, p.parseStatement(topLevel))
	}
	p.expect(lexer.RBRACE)
	return &BlockStatement{NodeBase: base(KindBlockStatement, p.tok.SpanFrom(start)), Statements: stmts}
}
