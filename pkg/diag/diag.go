// Package diag implements the parser's diagnostic-emission substrate: an
// append-only store of diagnostic records shared by every component above
// it (tokenizer, AST factory, parser).
package diag

import (
	"fmt"
	"strings"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Position is a 1-based line/column pair used only for display; the
// authoritative location on a Diagnostic is its Range.
type Position struct {
	Line   int
	Column int
}

// Range mirrors source.Range without importing the source package, which
// would create an import cycle (source diagnostics need diag, and diag
// wants to print ranges). Concrete Range values are supplied by callers
// through the Ranger interface below.
type Ranger interface {
	// Bounds returns the half-open byte offsets of the range and a display
	// name for the source it belongs to (normalized path or a synthetic
	// name such as "<eval>").
	Bounds() (start, end int, sourceName string)
	// Resolve turns the start offset into a 1-based line/column pair,
	// given the source's raw text.
	Resolve(text string) Position
	// Text returns the underlying source text this range indexes into.
	Text() string
}

// Diagnostic is one emitted record: a numeric code borrowed from the host
// language's standard diagnostic set (for editor compatibility), a
// severity, the source Range it points at, and any substitution arguments
// used to format its message.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Range    Ranger
	Args     []interface{}
}

// Message renders the diagnostic's message template with its arguments.
func (d Diagnostic) Message() string {
	tmpl, ok := messages[d.Code]
	if !ok {
		tmpl = "unknown diagnostic"
	}
	if len(d.Args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, d.Args...)
}

// Store is the append-only collection of diagnostics. Every higher
// component (tokenizer, AST factory, parser) holds a reference to the same
// Store for the lifetime of a parse job. Emission never panics or returns
// an error; callers are expected to keep working with a best-effort tree
// after a recoverable diagnostic.
type Store struct {
	records []Diagnostic
}

// NewStore creates an empty diagnostic store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) emit(code Code, sev Severity, rng Ranger, args ...interface{}) {
	s.records = append(s.records, Diagnostic{
		Code:     code,
		Severity: sev,
		Range:    rng,
		Args:     args,
	})
}

// Error appends an error-severity diagnostic.
func (s *Store) Error(code Code, rng Ranger, args ...interface{}) {
	s.emit(code, SeverityError, rng, args...)
}

// Warning appends a warning-severity diagnostic.
func (s *Store) Warning(code Code, rng Ranger, args ...interface{}) {
	s.emit(code, SeverityWarning, rng, args...)
}

// Info appends an info-severity diagnostic.
func (s *Store) Info(code Code, rng Ranger, args ...interface{}) {
	s.emit(code, SeverityInfo, rng, args...)
}

// All returns every diagnostic recorded so far, in emission order.
func (s *Store) All() []Diagnostic {
	return s.records
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *Store) HasErrors() bool {
	for _, d := range s.records {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Len reports the number of diagnostics recorded so far.
func (s *Store) Len() int {
	return len(s.records)
}

// Truncate drops every diagnostic recorded after index n, undoing a
// speculative parse attempt that emitted diagnostics before being rolled
// back by the caller's mark/reset.
func (s *Store) Truncate(n int) {
	s.records = s.records[:n]
}

// Render formats every diagnostic as a human-readable report with the
// offending source line and a caret marker, in the manner of a compiler's
// terminal output.
func Render(store *Store) string {
	var out strings.Builder
	for _, d := range store.All() {
		start, _, sourceName := d.Range.Bounds()
		text := d.Range.Text()
		pos := d.Range.Resolve(text)
		fmt.Fprintf(&out, "%s: %s TS%d: %s\n", sourceName, d.Severity, d.Code, d.Message())

		lines := strings.Split(text, "\n")
		lineIdx := pos.Line - 1
		if lineIdx >= 0 && lineIdx < len(lines) {
			srcLine := strings.TrimRight(lines[lineIdx], "\r")
			fmt.Fprintf(&out, "  %s\n", srcLine)
			col := pos.Column - 1
			if col < 0 {
				col = 0
			}
			fmt.Fprintf(&out, "  %s^\n", strings.Repeat(" ", col))
		}
		_ = start
	}
	return out.String()
}
