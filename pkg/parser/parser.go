// Package parser implements the recursive-descent statement and
// expression parser: top-level dispatch, declaration grammar, and the
// operator-precedence-climbing expression engine, all built on top of
// pkg/lexer's Tokenizer and emitting into a shared pkg/diag.Store.
package parser

import (
	"tsfront/pkg/diag"
	"tsfront/pkg/lexer"
	"tsfront/pkg/source"
	"tsfront/pkg/worklist"
)

// Parser parses exactly one Source. A fresh Parser is created per file by
// the driver package, which owns the Program and the shared work-list
// across files.
type Parser struct {
	src   *source.Source
	tok   *lexer.Tokenizer
	diags *diag.Store
	work  *worklist.WorkList

	decorators []*Decorator

	// modifierList is the reusable-slot analogue of the spec's
	// process-wide "reusable modifier list": scratch space for
	// accumulating modifiers before they are attached to a declaration.
	// It lives per-Parser, since each Source gets its own Parser and
	// nothing outlives a single file; correctness never depends on it
	// being reused across parses.
	modifierList []*Modifier
}

// New creates a Parser bound to src, sharing diags and work with the rest
// of the parse job.
func New(src *source.Source, diags *diag.Store, work *worklist.WorkList) *Parser {
	p := &Parser{
		src:   src,
		tok:   lexer.New(src, diags),
		diags: diags,
		work:  work,
	}
	src.Tokenizer = p.tok
	return p
}

// ParseSource runs the top-level loop of section 4.3: consume decorators
// and modifiers, dispatch on the following keyword, and append whatever
// statement results to the bound Source until end-of-file.
func (p *Parser) ParseSource() {
	for {
		if p.tok.Peek().Type == lexer.EOF {
			return
		}
		stmt := p.parseTopLevelStatement()
		if stmt == nil {
			// An unrecoverable failure already emitted a diagnostic;
			// per section 7, already-parsed siblings are retained and
			// the loop simply stops making progress on this file.
			return
		}
		stmt.SetParent(p.src)
		p.src.Append(stmt)
	}
}

func (p *Parser) parseTopLevelStatement() Statement {
	p.collectDecorators()

	isExport, isDeclare, declareLineBreak := p.collectModifiers()
	if isDeclare && declareLineBreak {
		p.diags.Warning(diag.CodeLineBreakNotPermittedHere, p.tok.RangeOf(p.tok.Token))
	}

	next := p.tok.Peek()
	var stmt Statement
	switch next.Type {
	case lexer.CONST, lexer.VAR, lexer.LET:
		stmt = p.parseVariableOrEnumStatement(isExport, isDeclare)
	case lexer.ENUM:
		stmt = p.parseEnumDeclaration(isExport, false)
	case lexer.FUNCTION:
		stmt = p.parseFunctionDeclaration(isExport, isDeclare)
		p.attachDecorators(stmt)
	case lexer.ABSTRACT, lexer.CLASS:
		stmt = p.parseClassDeclaration(isExport)
		p.attachDecorators(stmt)
	case lexer.IMPORT:
		stmt = p.parseImportOrExportImport(isExport)
	case lexer.TYPE:
		// Reserved: type aliases are not yet supported. The dispatcher
		// never produces a node for this keyword, so make that explicit
		// with a diagnostic rather than silently dropping the input,
		// and still consume a generic statement to keep making
		// progress on the rest of the file.
		p.diags.Error(diag.CodeTypeAliasNotSupported, p.tok.RangeOf(next))
		stmt = p.parseStatement(true)
	default:
		if isExport {
			stmt = p.parseExportFromStatement()
		} else {
			stmt = p.parseStatement(true)
		}
	}

	if len(p.decorators) > 0 {
		for _, d := range p.decorators {
			p.diags.Error(diag.CodeDecoratorsNotValidHere, d.Range)
		}
		p.decorators = nil
	}

	return stmt
}

// collectDecorators consumes zero or more leading @decorator(...) entries
// into the accumulator, to be attached by whichever declaration follows.
func (p *Parser) collectDecorators() {
	for p.tok.Peek().Type == lexer.AT {
		start := p.tok.Peek()
		p.tok.Next() // consume '@'
		expr := p.parseExpressionAtPrecedence(PrecCall)
		p.decorators = append(p.decorators, &Decorator{
			NodeBase: base(KindDecorator, p.tok.SpanFrom(start)),
			Expr:     expr,
		})
	}
}

func (p *Parser) attachDecorators(stmt Statement) {
	switch s := stmt.(type) {
	case *FunctionDeclaration:
		s.Decorators = p.decorators
	case *ClassDeclaration:
		s.Decorators = p.decorators
	}
	p.decorators = nil
}

// resetModifiers clears the reusable modifier scratch slot ahead of the
// next declaration, keeping its underlying array so repeated declarations
// across a file don't force a fresh allocation each time.
func (p *Parser) resetModifiers() {
	p.modifierList = p.modifierList[:0]
}

// pushModifier records a consumed modifier keyword into the reusable slot
// and returns the node, so callers can later recover its exact source
// range for a modifier-specific diagnostic.
func (p *Parser) pushModifier(keyword string, tok lexer.Token) *Modifier {
	m := &Modifier{NodeBase: base(KindModifier, p.tok.RangeOf(tok)), Keyword: keyword}
	p.modifierList = append(p.modifierList, m)
	return m
}

// modifierRange returns the range of the most recently collected modifier
// with the given keyword, or fallback if none was collected under that
// keyword this declaration.
func (p *Parser) modifierRange(keyword string, fallback source.Range) source.Range {
	for _, m := range p.modifierList {
		if m.Keyword == keyword {
			return m.Range
		}
	}
	return fallback
}

// collectModifiers consumes leading `export`/`declare` modifiers. It
// reports whether a line break separated `declare` from the token after
// it, the one compatibility warning section 4.3 calls out explicitly.
func (p *Parser) collectModifiers() (isExport, isDeclare, declareLineBreak bool) {
	p.resetModifiers()
	for {
		tok := p.tok.Peek()
		switch tok.Type {
		case lexer.EXPORT:
			isExport = true
			p.tok.Next()
			p.pushModifier("export", tok)
		case lexer.DECLARE:
			isDeclare = true
			p.tok.Next()
			declareLineBreak = p.tok.NextTokenOnNewLine
			p.pushModifier("declare", tok)
		default:
			return
		}
	}
}

// expect consumes the next token if it matches tt, emitting
// CodeTokenExpected and returning false otherwise.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.tok.Peek().Type != tt {
		p.diags.Error(diag.CodeTokenExpected, p.tok.RangeOf(p.tok.Peek()), string(tt))
		return false
	}
	p.tok.Next()
	return true
}

func (p *Parser) expectIdentifier() (*Identifier, bool) {
	tok := p.tok.Peek()
	if tok.Type != lexer.IDENT {
		p.diags.Error(diag.CodeIdentifierExpected, p.tok.RangeOf(tok))
		return nil, false
	}
	p.tok.Next()
	return &Identifier{NodeBase: base(KindIdentifier, p.tok.RangeOf(tok)), Name: tok.Literal}, true
}

// skipSemicolon consumes an optional trailing ';', matching every
// statement grammar in section 4 that ends in `';'?`.
func (p *Parser) skipSemicolon() {
	p.tok.Skip(lexer.SEMICOLON)
}
