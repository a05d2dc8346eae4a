// Package source implements the parser's Source Buffer and Program
// aggregate: the immutable text blobs the tokenizer scans over, and the
// root object that owns every Source belonging to one parse job.
package source

import (
	"path"
	"strings"

	"tsfront/pkg/diag"

	"golang.org/x/text/unicode/norm"
)

// Range is a half-open [Start, End) span of byte offsets into a Source's
// text, plus a back-pointer to that Source. Every AST node carries exactly
// one Range.
type Range struct {
	Src        *Source
	Start, End int
}

// Join returns the smallest Range covering both a and b. Both ranges must
// belong to the same Source; joining ranges from different sources is a
// parser bug and panics rather than silently producing a bogus span.
func Join(a, b Range) Range {
	if a.Src != b.Src {
		panic("source: Join across different sources")
	}
	start, end := a.Start, a.End
	if b.Start < start {
		start = b.Start
	}
	if b.End > end {
		end = b.End
	}
	return Range{Src: a.Src, Start: start, End: end}
}

// Bounds implements diag.Ranger.
func (r Range) Bounds() (start, end int, sourceName string) {
	name := "<unknown>"
	if r.Src != nil {
		name = r.Src.DisplayPath()
	}
	return r.Start, r.End, name
}

// Text implements diag.Ranger.
func (r Range) Text() string {
	if r.Src == nil {
		return ""
	}
	return r.Src.Text
}

// Resolve implements diag.Ranger, converting the range's start offset into
// a 1-based line/column pair against the given text.
func (r Range) Resolve(text string) diag.Position {
	line, col := 1, 1
	limit := r.Start
	if limit > len(text) {
		limit = len(text)
	}
	for i := 0; i < limit; i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return diag.Position{Line: line, Column: col}
}

// Node is the minimal shape a top-level AST node must have to be appended
// to a Source: something that can report the Range it occupies. It is
// declared here, rather than depended on from pkg/parser, so that Source
// can hold statements without pkg/source importing pkg/parser — the
// concrete statement types satisfy this interface structurally.
type Node interface {
	NodeRange() Range
}

// Source is one compilation unit: an immutable text blob with a
// normalized path and an entry-file flag. It owns its Tokenizer (attached
// by the parser once construction begins) and, once parsed, its ordered
// top-level statements.
type Source struct {
	OriginalPath   string
	NormalizedPath string
	Text           string
	IsEntry        bool

	Statements []Node
	Tokenizer  interface{}

	// Each top-level statement points back to this Source through its own
	// Parent field, which the parser sets once before appending it.
}

// DisplayPath returns the best path for diagnostics: normalized when
// known, otherwise the original path as given by the host.
func (s *Source) DisplayPath() string {
	if s.NormalizedPath != "" {
		return s.NormalizedPath
	}
	return s.OriginalPath
}

// NewSource constructs a Source Buffer over immutable text.
func NewSource(originalPath, normalizedPath, text string, isEntry bool) *Source {
	return &Source{
		OriginalPath:   originalPath,
		NormalizedPath: normalizedPath,
		Text:           text,
		IsEntry:        isEntry,
	}
}

// Append adds a fully parsed top-level statement to the Source, in order.
func (s *Source) Append(stmt Node) {
	s.Statements = append(s.Statements, stmt)
}

// Program is the root aggregate: an ordered sequence of Sources, a shared
// Diagnostic Store, and a symbol-table slot left for the next phase.
type Program struct {
	Sources     []*Source
	Diagnostics *diag.Store

	// Symbols is left empty by the parser; downstream semantic analysis
	// populates it. It exists here only so the Program's shape matches
	// what that phase expects to receive.
	Symbols map[string]interface{}

	byPath map[string]*Source
}

// NewProgram creates an empty Program with a fresh Diagnostic Store.
func NewProgram() *Program {
	return &Program{
		Diagnostics: diag.NewStore(),
		Symbols:     make(map[string]interface{}),
		byPath:      make(map[string]*Source),
	}
}

// Lookup returns the Source previously added under the given normalized
// path, or nil if none exists yet.
func (p *Program) Lookup(normalizedPath string) *Source {
	return p.byPath[normalizedPath]
}

// Add inserts src into the Program. It is a hard error — the only
// exceptional failure the parser raises — to add two Sources with the
// same normalized path.
func (p *Program) Add(src *Source) error {
	if _, exists := p.byPath[src.NormalizedPath]; exists {
		return &DuplicateSourceError{Path: src.NormalizedPath}
	}
	p.byPath[src.NormalizedPath] = src
	p.Sources = append(p.Sources, src)
	return nil
}

// DuplicateSourceError is raised when parseFile is asked to parse a path
// that normalizes to one already present in the Program.
type DuplicateSourceError struct {
	Path string
}

func (e *DuplicateSourceError) Error() string {
	return "source: duplicate source file: " + e.Path
}

// sourceExtensions lists the host language's source-file suffixes that
// NormalizePath elides from a resolved module path.
var sourceExtensions = []string{".d.ts", ".tsx", ".ts"}

// NormalizePath canonicalizes a path the way the work-list and Program
// require: slash-canonical, "." and ".." collapsed relative to the
// importing file's directory, any known source-file extension elided,
// case preserved.
//
// Unicode-bearing paths are first put into Normalization Form C so that
// two import specifiers that are visually identical but differ in
// combining-character decomposition dedupe to the same key.
func NormalizePath(fromNormalizedPath, raw string) string {
	nfc := norm.NFC.String(raw)
	clean := strings.ReplaceAll(nfc, "\\", "/")

	if strings.HasPrefix(clean, "./") || strings.HasPrefix(clean, "../") || clean == "." || clean == ".." {
		baseDir := path.Dir(strings.ReplaceAll(norm.NFC.String(fromNormalizedPath), "\\", "/"))
		clean = path.Join(baseDir, clean)
	}
	clean = path.Clean(clean)

	for _, ext := range sourceExtensions {
		if strings.HasSuffix(clean, ext) {
			clean = strings.TrimSuffix(clean, ext)
			break
		}
	}
	return clean
}
