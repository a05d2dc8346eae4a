package lexer

import "testing"

func TestTokenizerLookaheadAndAdvance(t *testing.T) {
	src := newTestSource(t, "a + b")
	tz := newTestTokenizer(t, src)

	if tz.Peek().Type != IDENT {
		t.Fatalf("expected IDENT lookahead, got %q", tz.Peek().Type)
	}
	first := tz.Next()
	if first.Literal != "a" {
		t.Fatalf("expected 'a', got %q", first.Literal)
	}
	if tz.Peek().Type != PLUS {
		t.Fatalf("expected PLUS lookahead, got %q", tz.Peek().Type)
	}
}

func TestTokenizerMarkReset(t *testing.T) {
	src := newTestSource(t, "a b c")
	tz := newTestTokenizer(t, src)

	tz.Next() // 'a'
	tz.Mark()
	tz.Next() // 'b'
	if tz.Token.Literal != "b" {
		t.Fatalf("expected 'b' before reset, got %q", tz.Token.Literal)
	}
	tz.Reset()
	if tz.Token.Literal != "a" {
		t.Fatalf("expected reset to restore 'a', got %q", tz.Token.Literal)
	}
	if tz.Peek().Literal != "b" {
		t.Fatalf("expected lookahead to be 'b' again after reset, got %q", tz.Peek().Literal)
	}
}

func TestTokenizerSplitGTOnPlainGT(t *testing.T) {
	src := newTestSource(t, "Array<T>")
	tz := newTestTokenizer(t, src)
	tz.Next() // 'Array'
	tz.Next() // '<'
	tz.Next() // 'T'
	if !tz.SplitGT() {
		t.Fatalf("expected SplitGT to consume a plain '>'")
	}
	if tz.Token.Type != GT {
		t.Fatalf("expected current token GT, got %q", tz.Token.Type)
	}
}

func TestTokenizerSplitGTOnMergedSHR(t *testing.T) {
	src := newTestSource(t, "Array<Array<T>>")
	tz := newTestTokenizer(t, src)
	for tz.Peek().Type != SHR {
		tz.Next()
	}
	if !tz.SplitGT() {
		t.Fatalf("expected SplitGT to split a merged SHR")
	}
	if tz.Token.Type != GT {
		t.Fatalf("expected first split token GT, got %q", tz.Token.Type)
	}
	if tz.Peek().Type != GT {
		t.Fatalf("expected second split token GT lookahead, got %q", tz.Peek().Type)
	}
	tz.Next()
	if tz.Token.Type != GT {
		t.Fatalf("expected to advance onto the second split GT, got %q", tz.Token.Type)
	}
}

func TestTokenizerReadIntegerForms(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"42", 42},
		{"0x1F", 31},
		{"0o17", 15},
		{"0b101", 5},
	}
	for _, tt := range tests {
		src := newTestSource(t, tt.input)
		tz := newTestTokenizer(t, src)
		tz.Next()
		got, err := tz.ReadInteger()
		if err != nil {
			t.Fatalf("unexpected error decoding %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("decoding %q: expected %d, got %d", tt.input, tt.want, got)
		}
	}
}

func TestTokenizerNextTokenOnNewLine(t *testing.T) {
	src := newTestSource(t, "a\nb")
	tz := newTestTokenizer(t, src)
	tz.Next() // 'a'
	if !tz.NextTokenOnNewLine {
		t.Fatalf("expected NextTokenOnNewLine to be true before consuming 'b'")
	}
}

func TestTokenizerRangeOfMatchesSourceText(t *testing.T) {
	src := newTestSource(t, "foo bar")
	tz := newTestTokenizer(t, src)
	tok := tz.Next()
	rng := tz.RangeOf(tok)
	if rng.Src != src {
		t.Fatalf("expected range to reference the tokenizer's source")
	}
	if src.Text[rng.Start:rng.End] != "foo" {
		t.Fatalf("expected range text 'foo', got %q", src.Text[rng.Start:rng.End])
	}
}
