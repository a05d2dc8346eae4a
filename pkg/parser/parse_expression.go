package parser

import (
	"tsfront/pkg/diag"
	"tsfront/pkg/lexer"
	"tsfront/pkg/source"
)

// Precedence levels, low to high, matching the 20-level ladder of
// section 4.7. Comma, spread, and yield have no infix realization in
// this subset's grammar (no SequenceExpression, SpreadExpression, or
// YieldExpression node kind exists) — they exist here only so the levels
// above them line up with the specification's numbering.
const (
	precNone = iota
	PrecComma
	PrecSpread
	PrecYield
	PrecAssign
	PrecConditional
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecExponent
	PrecUnaryPrefix
	PrecUnaryPostfix
	PrecCall
	PrecMember
)

func precedenceOf(tt lexer.TokenType) int {
	switch tt {
	case lexer.ASSIGN:
		return PrecAssign
	case lexer.QUESTION:
		return PrecConditional
	case lexer.LOGICAL_OR:
		return PrecLogicalOr
	case lexer.LOGICAL_AND:
		return PrecLogicalAnd
	case lexer.PIPE:
		return PrecBitOr
	case lexer.CARET:
		return PrecBitXor
	case lexer.AMP:
		return PrecBitAnd
	case lexer.EQ, lexer.NOT_EQ:
		return PrecEquality
	case lexer.LT, lexer.GT, lexer.LE, lexer.GE, lexer.AS, lexer.IN, lexer.INSTANCEOF:
		return PrecRelational
	case lexer.SHL, lexer.SHR:
		return PrecShift
	case lexer.PLUS, lexer.MINUS:
		return PrecAdditive
	case lexer.ASTERISK, lexer.SLASH, lexer.PERCENT:
		return PrecMultiplicative
	case lexer.EXPONENT:
		return PrecExponent
	case lexer.INC, lexer.DEC:
		return PrecUnaryPostfix
	case lexer.LPAREN:
		return PrecCall
	case lexer.DOT, lexer.LBRACKET:
		return PrecMember
	default:
		return precNone
	}
}

func isRightAssoc(tt lexer.TokenType) bool {
	switch tt {
	case lexer.ASSIGN, lexer.QUESTION, lexer.EXPONENT:
		return true
	default:
		return false
	}
}

// parseExpression parses at the widest precedence any single expression
// in this grammar can use — assignment level, since comma/spread/yield
// have no infix form to climb through.
func (p *Parser) parseExpression() Expression {
	return p.parseExpressionAtPrecedence(PrecAssign)
}

// parseExpressionAtPrecedence implements the whole of section 4.7: a
// prefix production, one initial call/type-argument attempt, then a
// generalized precedence-climbing loop that also handles member access,
// element access, postfix increment/decrement, and the ternary form —
// all of which section 4.7 folds into the same climb.
func (p *Parser) parseExpressionAtPrecedence(minPrec int) Expression {
	left := p.parsePrefix()
	left = p.maybeParseInitialCall(left)

	for {
		tok := p.tok.Peek()
		prec := precedenceOf(tok.Type)
		if prec == precNone || prec < minPrec {
			return left
		}
		left = p.parseInfix(left, tok, prec)
	}
}

func (p *Parser) maybeParseInitialCall(left Expression) Expression {
	var typeArgs []*TypeNode
	if p.tok.Peek().Type == lexer.LT {
		if args, ok := p.tryParseTypeArgumentsBeforeArguments(); ok {
			typeArgs = args
		}
	}
	if typeArgs == nil && p.tok.Peek().Type != lexer.LPAREN {
		return left
	}
	args := p.parseArgumentList()
	return &CallExpression{
		NodeBase:      base(KindCallExpression, source.Join(left.NodeRange(), p.tok.RangeOf(p.tok.Token))),
		Callee:        left,
		TypeArguments: typeArgs,
		Arguments:     args,
	}
}

// tryParseTypeArgumentsBeforeArguments disambiguates `f<T>(x)` from
// `a < b` by speculatively parsing a type-argument list and only
// accepting it if it is immediately followed by '('. Any diagnostics
// emitted during a failed attempt are rolled back along with the cursor.
func (p *Parser) tryParseTypeArgumentsBeforeArguments() ([]*TypeNode, bool) {
	savedDiags := p.diags.Len()
	p.tok.Mark()

	p.tok.Next() // consume '<'
	if p.tok.Peek().Type == lexer.GT {
		p.tok.Reset()
		p.diags.Truncate(savedDiags)
		return nil, false
	}

	args := []*TypeNode{p.parseTypeAt(false)}
	for p.tok.Skip(lexer.COMMA) {
		args = append(args, p.parseTypeAt(false))
	}

	if !p.tok.SplitGT() || p.tok.Peek().Type != lexer.LPAREN {
		p.tok.Reset()
		p.diags.Truncate(savedDiags)
		return nil, false
	}
	return args, true
}

func (p *Parser) parseArgumentList() []Expression {
	p.tok.Next() // consume '(', already confirmed present by the caller
	var args []Expression
	if p.tok.Peek().Type != lexer.RPAREN {
		args = append(args, p.parseExpressionAtPrecedence(PrecAssign))
		for p.tok.Skip(lexer.COMMA) {
			args = append(args, p.parseExpressionAtPrecedence(PrecAssign))
		}
	}
	p.expect(lexer.RPAREN)
	return args
}

func (p *Parser) parseInfix(left Expression, tok lexer.Token, prec int) Expression {
	switch tok.Type {
	case lexer.ASSIGN:
		p.tok.Next()
		right := p.parseExpressionAtPrecedence(PrecAssign)
		return &BinaryExpression{
			NodeBase: base(KindBinaryExpression, source.Join(left.NodeRange(), right.NodeRange())),
			Operator: tok.Literal, Left: left, Right: right,
		}
	case lexer.QUESTION:
		p.tok.Next()
		then := p.parseExpressionAtPrecedence(PrecAssign)
		p.expect(lexer.COLON)
		elseExpr := p.parseExpressionAtPrecedence(PrecConditional)
		return &SelectExpression{
			NodeBase:  base(KindSelectExpression, source.Join(left.NodeRange(), elseExpr.NodeRange())),
			Condition: left, Then: then, Else: elseExpr,
		}
	case lexer.AS:
		p.tok.Next()
		typ := p.parseType()
		return &AsExpression{
			NodeBase: base(KindAsExpression, source.Join(left.NodeRange(), typ.Range)),
			Expr:     left, Type: typ,
		}
	case lexer.LBRACKET:
		p.tok.Next()
		index := p.parseExpressionAtPrecedence(PrecAssign) // the inner expression resets precedence
		p.expect(lexer.RBRACKET)
		return &ElementAccessExpression{
			NodeBase: base(KindElementAccessExpression, source.Join(left.NodeRange(), p.tok.RangeOf(p.tok.Token))),
			Object:   left, Index: index,
		}
	case lexer.DOT:
		p.tok.Next()
		prop, ok := p.expectIdentifier()
		if !ok {
			prop = &Identifier{NodeBase: base(KindIdentifier, p.tok.RangeOf(p.tok.Token))}
		}
		return &PropertyAccessExpression{
			NodeBase: base(KindPropertyAccessExpression, source.Join(left.NodeRange(), prop.Range)),
			Object:   left, Property: prop,
		}
	case lexer.LPAREN:
		args := p.parseArgumentList()
		return &CallExpression{
			NodeBase: base(KindCallExpression, source.Join(left.NodeRange(), p.tok.RangeOf(p.tok.Token))),
			Callee:   left, Arguments: args,
		}
	case lexer.INC, lexer.DEC:
		p.tok.Next()
		if !isAssignableOperand(left) {
			p.diags.Error(diag.CodeIncrementOperandMustBeVariable, left.NodeRange())
		}
		return &UnaryPostfixExpression{
			NodeBase: base(KindUnaryPostfixExpression, source.Join(left.NodeRange(), p.tok.RangeOf(p.tok.Token))),
			Operator: tok.Literal, Operand: left,
		}
	default:
		p.tok.Next()
		nextMin := prec + 1
		if isRightAssoc(tok.Type) {
			nextMin = prec
		}
		right := p.parseExpressionAtPrecedence(nextMin)
		return &BinaryExpression{
			NodeBase: base(KindBinaryExpression, source.Join(left.NodeRange(), right.NodeRange())),
			Operator: tok.Literal, Left: left, Right: right,
		}
	}
}

func isAssignableOperand(e Expression) bool {
	switch e.(type) {
	case *Identifier, *ElementAccessExpression, *PropertyAccessExpression:
		return true
	default:
		return false
	}
}

// parsePrefix implements parseExpressionPrefix from section 4.7.
func (p *Parser) parsePrefix() Expression {
	tok := p.tok.Peek()
	switch tok.Type {
	case lexer.NULL:
		p.tok.Next()
		return &NullLiteral{NodeBase: base(KindNullLiteral, p.tok.RangeOf(tok))}
	case lexer.TRUE:
		p.tok.Next()
		return &TrueLiteral{NodeBase: base(KindTrueLiteral, p.tok.RangeOf(tok))}
	case lexer.FALSE:
		p.tok.Next()
		return &FalseLiteral{NodeBase: base(KindFalseLiteral, p.tok.RangeOf(tok))}
	case lexer.INTEGER:
		p.tok.Next()
		val, err := p.tok.ReadInteger()
		if err != nil {
			p.diags.Error(diag.CodeExpressionExpected, p.tok.RangeOf(tok))
		}
		return &IntegerLiteral{NodeBase: base(KindIntegerLiteral, p.tok.RangeOf(tok)), Value: val, Raw: tok.Literal}
	case lexer.FLOAT:
		p.tok.Next()
		val, err := p.tok.ReadFloat()
		if err != nil {
			p.diags.Error(diag.CodeExpressionExpected, p.tok.RangeOf(tok))
		}
		return &FloatLiteral{NodeBase: base(KindFloatLiteral, p.tok.RangeOf(tok)), Value: val, Raw: tok.Literal}
	case lexer.STRING:
		p.tok.Next()
		return &StringLiteral{NodeBase: base(KindStringLiteral, p.tok.RangeOf(tok)), Value: tok.Literal}
	case lexer.REGEXP:
		p.tok.Next()
		body, flags, err := p.tok.ReadRegexp()
		if err != nil {
			p.diags.Error(diag.CodeInvalidRegexp, p.tok.RangeOf(tok), err.Error())
		}
		return &RegexpLiteral{NodeBase: base(KindRegexpLiteral, p.tok.RangeOf(tok)), Body: body, Flags: flags}
	case lexer.IDENT:
		p.tok.Next()
		return &Identifier{NodeBase: base(KindIdentifier, p.tok.RangeOf(tok)), Name: tok.Literal}
	case lexer.THIS:
		p.tok.Next()
		return &Identifier{NodeBase: base(KindIdentifier, p.tok.RangeOf(tok)), Name: "this"}
	case lexer.LPAREN:
		p.tok.Next()
		inner := p.parseExpressionAtPrecedence(PrecAssign)
		p.expect(lexer.RPAREN)
		return &ParenthesizedExpression{NodeBase: base(KindParenthesizedExpression, p.tok.SpanFrom(tok)), Expr: inner}
	case lexer.LBRACKET:
		return p.parseArrayLiteral()
	case lexer.LT:
		return p.parsePrefixAssertion()
	case lexer.NEW:
		return p.parseNewExpression()
	case lexer.BANG, lexer.MINUS, lexer.PLUS, lexer.TILDE, lexer.INC, lexer.DEC, lexer.VOID:
		p.tok.Next()
		operand := p.parseExpressionAtPrecedence(PrecUnaryPrefix)
		return &UnaryPrefixExpression{
			NodeBase: base(KindUnaryPrefixExpression, source.Join(p.tok.RangeOf(tok), operand.NodeRange())),
			Operator: tok.Literal, Operand: operand,
		}
	default:
		p.diags.Error(diag.CodeExpressionExpected, p.tok.RangeOf(tok))
		p.tok.Next()
		return &Identifier{NodeBase: base(KindIdentifier, p.tok.RangeOf(tok)), Name: ""}
	}
}

func (p *Parser) parsePrefixAssertion() Expression {
	start := p.tok.Peek()
	p.tok.Next() // consume '<'
	typ := p.parseTypeAt(false)
	if !p.tok.SplitGT() {
		p.diags.Error(diag.CodeTokenExpected, p.tok.RangeOf(p.tok.Peek()), ">")
	}
	operand := p.parseExpressionAtPrecedence(PrecUnaryPrefix)
	return &PrefixAssertionExpression{
		NodeBase: base(KindPrefixAssertionExpression, source.Join(p.tok.RangeOf(start), operand.NodeRange())),
		Type:     typ, Expr: operand,
	}
}

func (p *Parser) parseArrayLiteral() Expression {
	start := p.tok.Peek()
	p.tok.Next() // consume '['
	var elems []Expression
	for p.tok.Peek().Type != lexer.RBRACKET && p.tok.Peek().Type != lexer.EOF {
		if p.tok.Peek().Type == lexer.COMMA {
			elems = append(elems, nil)
			p.tok.Next()
			continue
		}
		elems = append(elems, p.parseExpressionAtPrecedence(PrecAssign))
		if p.tok.Peek().Type == lexer.COMMA {
			p.tok.Next()
			continue
		}
		break
	}
	p.expect(lexer.RBRACKET)
	return &ArrayLiteral{NodeBase: base(KindArrayLiteral, p.tok.SpanFrom(start)), Elements: elems}
}

// parseNewExpression implements the `new` production of section 4.7's
// prefix dispatch. The type-arguments-before-arguments tie-break for
// `new Foo<T>(1, 2)` (scenario 6 of section 8) happens one level up, in
// maybeParseInitialCall, once this returns a bare NewExpression with no
// arguments — that's why this only greedily consumes `(args)` when '('
// directly follows the callee, and never itself looks for '<'.
func (p *Parser) parseNewExpression() Expression {
	start := p.tok.Peek()
	p.tok.Next() // consume 'new'
	callee := p.parseNewCallee()
	var args []Expression
	if p.tok.Peek().Type == lexer.LPAREN {
		args = p.parseArgumentList()
	}
	return &NewExpression{NodeBase: base(KindNewExpression, p.tok.SpanFrom(start)), Callee: callee, Arguments: args}
}

func (p *Parser) parseNewCallee() Expression {
	ident, ok := p.expectIdentifier()
	if !ok {
		return &Identifier{NodeBase: base(KindIdentifier, p.tok.RangeOf(p.tok.Token))}
	}
	var result Expression = ident
	for p.tok.Peek().Type == lexer.DOT {
		p.tok.Next()
		prop, ok := p.expectIdentifier()
		if !ok {
			break
		}
		result = &PropertyAccessExpression{
			NodeBase: base(KindPropertyAccessExpression, source.Join(result.NodeRange(), prop.Range)),
			Object:   result, Property: prop,
		}
	}
	return result
}
