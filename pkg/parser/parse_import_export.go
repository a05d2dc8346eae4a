package parser

import (
	"tsfront/pkg/diag"
	"tsfront/pkg/lexer"
	"tsfront/pkg/source"
)

// parseImportOrExportImport handles the two forms starting with `import`:
// the specifier-list `import { a, b as c } from "path"` and the re-export
// alias `export import Name = Other;` (only reachable when isExport is
// true and the token after `import` is an identifier followed by `=`).
func (p *Parser) parseImportOrExportImport(isExport bool) Statement {
	start := p.tok.Peek()
	p.expect(lexer.IMPORT)

	if isExport {
		name, ok := p.expectIdentifier()
		if ok && p.tok.Peek().Type == lexer.ASSIGN {
			p.tok.Next()
			value, _ := p.expectIdentifier()
			p.skipSemicolon()
			return &ExportImportStatement{
				NodeBase: base(KindExportImportStatement, p.tok.SpanFrom(start)),
				Name:     name,
				Value:    value,
			}
		}
		// Not the `export import` alias form after all; the identifier
		// consumed above, if any, does not fit `import { ... }` either,
		// so this is a malformed statement. Report and keep going.
		p.diags.Error(diag.CodeTokenExpected, p.tok.RangeOf(p.tok.Peek()), "{")
		return &ImportStatement{NodeBase: base(KindImportStatement, p.tok.SpanFrom(start))}
	}

	specifiers := p.parseImportSpecifierList()
	p.expect(lexer.FROM)
	path := p.expectStringLiteral()
	p.skipSemicolon()

	resolved := p.resolveAndEnqueue(path)
	return &ImportStatement{
		NodeBase:     base(KindImportStatement, p.tok.SpanFrom(start)),
		Specifiers:   specifiers,
		Path:         path,
		ResolvedPath: resolved,
	}
}

func (p *Parser) parseImportSpecifierList() []*ImportSpecifier {
	p.expect(lexer.LBRACE)
	var specs []*ImportSpecifier
	for p.tok.Peek().Type != lexer.RBRACE && p.tok.Peek().Type != lexer.EOF {
		specs = append(specs, p.parseImportSpecifier())
		if !p.tok.Skip(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RBRACE)
	return specs
}

func (p *Parser) parseImportSpecifier() *ImportSpecifier {
	start := p.tok.Peek()
	name := ""
	if id, ok := p.expectIdentifier(); ok {
		name = id.Name
	}
	alias := ""
	if p.tok.Skip(lexer.AS) {
		if id, ok := p.expectIdentifier(); ok {
			alias = id.Name
		}
	}
	return &ImportSpecifier{NodeBase: base(KindImportSpecifier, p.tok.SpanFrom(start)), Name: name, Alias: alias}
}

// parseExportFromStatement handles the two `export { ... }` forms —
// `export { a, b as c };` and `export { a, b as c } from "path";` — which
// only diverge on whether a trailing `from` clause follows the specifier
// list.
func (p *Parser) parseExportFromStatement() Statement {
	start := p.tok.Peek()
	p.expect(lexer.LBRACE)
	var specs []*ExportSpecifier
	for p.tok.Peek().Type != lexer.RBRACE && p.tok.Peek().Type != lexer.EOF {
		specs = append(specs, p.parseExportSpecifier())
		if !p.tok.Skip(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RBRACE)

	if p.tok.Peek().Type == lexer.FROM {
		p.tok.Next()
		path := p.expectStringLiteral()
		p.skipSemicolon()
		resolved := p.resolveAndEnqueue(path)
		return &ExportFromStatement{
			NodeBase:     base(KindExportFromStatement, p.tok.SpanFrom(start)),
			Specifiers:   specs,
			Path:         path,
			ResolvedPath: resolved,
		}
	}

	p.skipSemicolon()
	return &ExportStatement{NodeBase: base(KindExportStatement, p.tok.SpanFrom(start)), Specifiers: specs}
}

func (p *Parser) parseExportSpecifier() *ExportSpecifier {
	start := p.tok.Peek()
	name := ""
	if id, ok := p.expectIdentifier(); ok {
		name = id.Name
	}
	alias := ""
	if p.tok.Skip(lexer.AS) {
		if id, ok := p.expectIdentifier(); ok {
			alias = id.Name
		}
	}
	return &ExportSpecifier{NodeBase: base(KindExportSpecifier, p.tok.SpanFrom(start)), Name: name, Alias: alias}
}

func (p *Parser) expectStringLiteral() string {
	tok := p.tok.Peek()
	if tok.Type != lexer.STRING {
		p.diags.Error(diag.CodeStringLiteralExpected, p.tok.RangeOf(tok))
		return ""
	}
	p.tok.Next()
	return p.tok.ReadString()
}

// resolveAndEnqueue normalizes an import/export path relative to the
// current source and enqueues it onto the shared work-list, so the
// driver eventually parses every file transitively reachable from the
// entry source. Re-imports of an already-seen path are a silent no-op,
// per the work-list's dedup contract.
func (p *Parser) resolveAndEnqueue(raw string) string {
	resolved := source.NormalizePath(p.src.NormalizedPath, raw)
	if p.work != nil {
		p.work.Enqueue(resolved)
	}
	return resolved
}
