// Package driver is the public façade over the lexer/parser pipeline: it
// owns the Program aggregate and the shared work-list across every file
// transitively reached from an entry source, presenting the whole thing
// as a handful of methods a host embeds in a build tool or editor
// service.
package driver

import (
	"fmt"

	"tsfront/pkg/diag"
	"tsfront/pkg/parser"
	"tsfront/pkg/source"
	"tsfront/pkg/worklist"
)

// Parser drives one parse job: an entry file plus every file transitively
// reachable from its import/export-from directives. The name matches the
// single type callers instantiate; internally each Source gets its own
// short-lived pkg/parser.Parser.
type Parser struct {
	program *source.Program
	work    *worklist.WorkList
}

// New creates an empty parse job with a fresh Program and work-list.
func New() *Parser {
	return &Parser{
		program: source.NewProgram(),
		work:    worklist.New(),
	}
}

// ParseFile normalizes path, constructs a Source over text, and parses it
// immediately, appending its top-level statements to the Program and
// enqueuing anything it imports. Adding two files that normalize to the
// same path is the one hard failure in this pipeline: it always returns
// a *source.DuplicateSourceError rather than a diagnostic, since the
// caller's file set is malformed in a way parsing can't recover from.
func (p *Parser) ParseFile(text, path string, isEntry bool) error {
	normalized := source.NormalizePath("", path)
	if p.program.Lookup(normalized) != nil {
		return &source.DuplicateSourceError{Path: normalized}
	}

	src := source.NewSource(path, normalized, text, isEntry)
	if err := p.program.Add(src); err != nil {
		return err
	}
	p.work.MarkSeen(normalized)

	pp := parser.New(src, p.program.Diagnostics, p.work)
	pp.ParseSource()
	return nil
}

// NextFile dequeues the next normalized path discovered through an
// import or export-from directive but not yet parsed. The host is
// expected to resolve it to source text (however it resolves modules —
// filesystem, virtual FS, network fetch) and feed the result back
// through ParseFile.
func (p *Parser) NextFile() (path string, ok bool) {
	return p.work.Next()
}

// Finish reports whether every discovered import has been satisfied. Per
// section 4.8, a non-empty backlog at the point the host declares itself
// done is a hard failure — it means some import was never resolved back
// through ParseFile — so this returns an error rather than a diagnostic.
func (p *Parser) Finish() (*source.Program, error) {
	if !p.work.Empty() {
		return nil, fmt.Errorf("driver: %d imported file(s) never resolved", p.work.Len())
	}
	return p.program, nil
}

// Diagnostics returns the diagnostic store shared by every file parsed in
// this job so far.
func (p *Parser) Diagnostics() *diag.Store {
	return p.program.Diagnostics
}
