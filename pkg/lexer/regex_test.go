package lexer

import "testing"

func TestScanRegexpLiterals(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
	}{
		{"simple", "/hello/", "/hello/"},
		{"with flags", "/world/gi", "/world/gi"},
		{"character class with slash", "/[a/b]/", "/[a/b]/"},
		{"escaped slash", `/a\/b/`, `/a\/b/`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			tok := l.Scan(true)
			if tok.Type != REGEXP {
				t.Fatalf("expected REGEXP, got %q", tok.Type)
			}
			if tok.Literal != tt.literal {
				t.Fatalf("expected literal %q, got %q", tt.literal, tok.Literal)
			}
		})
	}
}

func TestScanSlashAsDivisionWhenRegexpNotAllowed(t *testing.T) {
	l := NewLexer("/5")
	tok := l.Scan(false)
	if tok.Type != SLASH {
		t.Fatalf("expected SLASH, got %q", tok.Type)
	}
}

func TestScanUnterminatedRegexp(t *testing.T) {
	l := NewLexer("/abc")
	tok := l.Scan(true)
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %q", tok.Type)
	}
}

func TestTokenizerReadRegexpValidatesBody(t *testing.T) {
	src := newTestSource(t, "/[a-z]+/i")
	tz := newTestTokenizer(t, src)
	if tz.Peek().Type != REGEXP {
		t.Fatalf("expected REGEXP lookahead, got %q", tz.Peek().Type)
	}
	tz.Next()
	body, flags, err := tz.ReadRegexp()
	if err != nil {
		t.Fatalf("unexpected error validating regexp body: %v", err)
	}
	if body != "[a-z]+" || flags != "i" {
		t.Fatalf("expected body %q flags %q, got body %q flags %q", "[a-z]+", "i", body, flags)
	}
}

func TestTokenizerReadRegexpRejectsInvalidBody(t *testing.T) {
	src := newTestSource(t, "/[/")
	tz := newTestTokenizer(t, src)
	tz.Next()
	if _, _, err := tz.ReadRegexp(); err == nil {
		t.Fatalf("expected an error validating an unbalanced character class")
	}
}
