package parser

import (
	"tsfront/pkg/diag"
	"tsfront/pkg/lexer"
)

// parseType parses a TypeNode per section 4.6, accepting a parenthesized
// form only at this outermost call.
func (p *Parser) parseType() *TypeNode {
	return p.parseTypeAt(true)
}

func (p *Parser) parseTypeAt(acceptParenthesized bool) *TypeNode {
	start := p.tok.Peek()
	atomic := p.parseAtomicType(acceptParenthesized, start)
	return p.parseTypeSuffixes(atomic, start)
}

func (p *Parser) parseAtomicType(acceptParenthesized bool, start lexer.Token) *TypeNode {
	tok := p.tok.Peek()
	switch tok.Type {
	case lexer.VOID:
		p.tok.Next()
		return &TypeNode{NodeBase: base(KindTypeNode, p.tok.SpanFrom(start)), Name: "void"}
	case lexer.THIS:
		p.tok.Next()
		return &TypeNode{NodeBase: base(KindTypeNode, p.tok.SpanFrom(start)), Name: "this"}
	case lexer.TRUE, lexer.FALSE:
		p.tok.Next()
		return &TypeNode{NodeBase: base(KindTypeNode, p.tok.SpanFrom(start)), Name: "bool"}
	case lexer.STRING:
		p.tok.Next()
		return &TypeNode{NodeBase: base(KindTypeNode, p.tok.SpanFrom(start)), Name: "string"}
	case lexer.LPAREN:
		if !acceptParenthesized {
			p.diags.Error(diag.CodeTypeExpected, p.tok.RangeOf(tok))
			return &TypeNode{NodeBase: base(KindTypeNode, p.tok.RangeOf(tok)), Name: "unknown"}
		}
		p.tok.Next()
		inner := p.parseTypeAt(false)
		p.expect(lexer.RPAREN)
		inner.Range = p.tok.SpanFrom(start)
		return inner
	case lexer.IDENT:
		p.tok.Next()
		node := &TypeNode{NodeBase: base(KindTypeNode, p.tok.RangeOf(tok)), Name: tok.Literal}
		if p.tok.Peek().Type == lexer.LT {
			p.tok.Next()
			node.TypeArguments = append(node.TypeArguments, p.parseTypeAt(false))
			for p.tok.Skip(lexer.COMMA) {
				node.TypeArguments = append(node.TypeArguments, p.parseTypeAt(false))
			}
			if !p.tok.SplitGT() {
				p.diags.Error(diag.CodeTokenExpected, p.tok.RangeOf(p.tok.Peek()), ">")
			}
			node.Range = p.tok.SpanFrom(start)
		}
		return node
	default:
		p.diags.Error(diag.CodeTypeExpected, p.tok.RangeOf(tok))
		return &TypeNode{NodeBase: base(KindTypeNode, p.tok.RangeOf(tok)), Name: "unknown"}
	}
}

// parseTypeSuffixes applies any number of `[]` array wrappers and an
// optional trailing `| null`, in the order section 4.6 describes: once a
// `[]` level has been marked nullable, no further `[]` wrapping is
// accepted.
func (p *Parser) parseTypeSuffixes(node *TypeNode, start lexer.Token) *TypeNode {
	for {
		switch p.tok.Peek().Type {
		case lexer.LBRACKET:
			if node.Nullable {
				p.diags.Error(diag.CodeTypeExpected, p.tok.RangeOf(p.tok.Peek()))
				return node
			}
			p.tok.Next()
			p.expect(lexer.RBRACKET)
			node = &TypeNode{
				NodeBase:      base(KindTypeNode, p.tok.SpanFrom(start)),
				Name:          "Array",
				TypeArguments: []*TypeNode{node},
			}
		case lexer.PIPE:
			// Look one token past '|' with a throwaway scanner instead of
			// Mark/Reset, so a caller's speculative checkpoint stays intact.
			after := lexer.NewLexer(p.src.Text[p.tok.Peek().EndPos:]).Scan(true)
			if after.Type != lexer.NULL {
				return node
			}
			p.tok.Next() // consume '|'
			p.tok.Next() // consume 'null'
			node.Nullable = true
			node.Range = p.tok.SpanFrom(start)
			continue
		default:
			return node
		}
	}
}
