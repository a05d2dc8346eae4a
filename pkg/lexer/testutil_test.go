package lexer

import (
	"testing"

	"tsfront/pkg/diag"
	"tsfront/pkg/source"
)

func newTestSource(t *testing.T, text string) *source.Source {
	t.Helper()
	return source.NewSource("test.ts", "test", text, true)
}

func newTestTokenizer(t *testing.T, src *source.Source) *Tokenizer {
	t.Helper()
	return New(src, diag.NewStore())
}
