package lexer

import (
	"errors"
	"strconv"
	"strings"

	"tsfront/pkg/diag"
	"tsfront/pkg/source"

	"github.com/dlclark/regexp2"
)

// Tokenizer streams tokens over a Lexer with one-token lookahead, a
// single mark/reset checkpoint for speculative parsing, and a
// semicolon-insertion-aware newline tracker. It is the component the
// Parser actually talks to; Lexer stays a dumb byte scanner underneath.
type Tokenizer struct {
	lex  *Lexer
	diag *diag.Store
	src  *source.Source

	Token              Token // last token returned by Next
	TokenPos           int   // Token.StartPos, kept as its own field per the external contract
	NextToken          Token // token Peek()/the next Next() will return
	NextTokenOnNewLine bool  // whether a line break separates Token from NextToken
	Pos                int   // current scanning cursor, mirrors lex.CurrentPosition()

	checkpoint *checkpoint
}

type checkpoint struct {
	lexPos             int
	token              Token
	tokenPos           int
	nextToken          Token
	nextTokenOnNewLine bool
}

// New creates a Tokenizer over src's text, sharing diagStore for
// lexical-level diagnostics (unterminated strings, comments, and regular
// expression literals) and using src to stamp every Range it hands back to
// the parser. An illegal character is passed on as an ILLEGAL token without
// a diagnostic of its own here.
func New(src *source.Source, diagStore *diag.Store) *Tokenizer {
	t := &Tokenizer{
		lex:  NewLexer(src.Text),
		diag: diagStore,
		src:  src,
	}
	// Prime the lookahead: NextToken() and Peek() must have something to
	// return before the first Next() call.
	t.NextToken = t.scan()
	t.NextTokenOnNewLine = t.NextToken.HadNewlineBefore
	t.Pos = t.lex.CurrentPosition()
	return t
}

// RangeOf returns the source.Range a token occupies in this Tokenizer's
// Source.
func (t *Tokenizer) RangeOf(tok Token) source.Range {
	return source.Range{Src: t.src, Start: tok.StartPos, End: tok.EndPos}
}

// SpanFrom returns the source.Range from startTok's start through the end
// of the currently-consumed Token, for constructs that need to cover
// everything parsed since some earlier mark.
func (t *Tokenizer) SpanFrom(startTok Token) source.Range {
	return source.Range{Src: t.src, Start: startTok.StartPos, End: t.Token.EndPos}
}

// regexpAllowedAfter reports whether a '/' following a token of type prev
// can legally start a regexp literal: only where an expression prefix is
// syntactically permitted, e.g. after an operator, an opening bracket, or
// at the very start of an expression statement.
func regexpAllowedAfter(prev TokenType) bool {
	switch prev {
	case IDENT, INTEGER, FLOAT, STRING, REGEXP, RPAREN, RBRACKET, RBRACE,
		THIS, TRUE, FALSE, NULL, INC, DEC:
		return false
	default:
		return true
	}
}

func (t *Tokenizer) scan() Token {
	regexpAllowed := regexpAllowedAfter(t.Token.Type)
	tok := t.lex.Scan(regexpAllowed)
	if tok.Type == ILLEGAL {
		t.reportIllegal(tok)
	}
	return tok
}

func (t *Tokenizer) reportIllegal(tok Token) {
	rng := t.RangeOf(tok)
	switch tok.Literal {
	case "unterminated string literal":
		t.diag.Error(diag.CodeUnterminatedString, rng)
	case "unterminated multi-line comment":
		t.diag.Error(diag.CodeUnterminatedComment, rng)
	case "unterminated regular expression literal":
		t.diag.Error(diag.CodeInvalidRegexp, rng, "unterminated")
	}
}

// Next advances the tokenizer and returns the newly current token.
func (t *Tokenizer) Next() Token {
	t.Token = t.NextToken
	t.TokenPos = t.Token.StartPos
	t.NextToken = t.scan()
	t.NextTokenOnNewLine = t.NextToken.HadNewlineBefore
	t.Pos = t.lex.CurrentPosition()
	return t.Token
}

// Peek returns the next token without advancing.
func (t *Tokenizer) Peek() Token {
	return t.NextToken
}

// Skip advances past NextToken iff it matches expected, returning whether
// it did.
func (t *Tokenizer) Skip(expected TokenType) bool {
	if t.NextToken.Type != expected {
		return false
	}
	t.Next()
	return true
}

// SplitGT consumes a single '>' where the scanner may instead have
// produced a merged '>>' (SHR) token, the classic nested-generics problem
// (`Array<Array<T>>`). On a plain GT it behaves like Skip(GT). On an SHR
// it splits the token in place: the first '>' is consumed as the current
// token and the second becomes the new lookahead, without re-scanning.
// Reports false, consuming nothing, if neither applies.
func (t *Tokenizer) SplitGT() bool {
	switch t.NextToken.Type {
	case GT:
		t.Next()
		return true
	case SHR:
		orig := t.NextToken
		t.Token = Token{Type: GT, Literal: ">", StartPos: orig.StartPos, EndPos: orig.StartPos + 1, HadNewlineBefore: orig.HadNewlineBefore}
		t.TokenPos = t.Token.StartPos
		t.NextToken = Token{Type: GT, Literal: ">", StartPos: orig.StartPos + 1, EndPos: orig.EndPos}
		t.NextTokenOnNewLine = false
		t.Pos = t.lex.CurrentPosition()
		return true
	default:
		return false
	}
}

// Mark saves a single checkpoint of the tokenizer's full mutable state.
// Only one checkpoint slot is supported; a second Mark before Reset
// overwrites the first, matching the "single-slot" contract — no call
// site needs nested checkpoints.
func (t *Tokenizer) Mark() {
	t.checkpoint = &checkpoint{
		lexPos:             t.lex.CurrentPosition(),
		token:              t.Token,
		tokenPos:           t.TokenPos,
		nextToken:          t.NextToken,
		nextTokenOnNewLine: t.NextTokenOnNewLine,
	}
}

// Reset restores the tokenizer to the last Mark. Calling Reset without a
// prior Mark is a no-op.
func (t *Tokenizer) Reset() {
	if t.checkpoint == nil {
		return
	}
	cp := t.checkpoint
	t.lex.SetPosition(cp.lexPos)
	t.Token = cp.token
	t.TokenPos = cp.tokenPos
	t.NextToken = cp.nextToken
	t.NextTokenOnNewLine = cp.nextTokenOnNewLine
	t.Pos = t.lex.CurrentPosition()
	t.checkpoint = nil
}

// Range returns a diag.Ranger-shaped pair of offsets for the current
// token, or for explicit bounds when given.
func (t *Tokenizer) Range(bounds ...int) (start, end int) {
	if len(bounds) == 2 {
		return bounds[0], bounds[1]
	}
	return t.Token.StartPos, t.Token.EndPos
}

// ReadIdentifier returns the current token's identifier text. The caller
// is expected to have checked Token.Type is IDENT or a contextual
// keyword usable as an identifier.
func (t *Tokenizer) ReadIdentifier() string {
	return t.Token.Literal
}

// ReadString returns the current STRING token's already-decoded value.
func (t *Tokenizer) ReadString() string {
	return t.Token.Literal
}

// ReadInteger decodes the current INTEGER token, accepting decimal,
// hexadecimal (0x), octal (0o), and binary (0b) forms, into a 64-bit
// unsigned magnitude. Sign is not handled here — it is folded in by the
// prefix-expression parser from a leading unary '-'.
func (t *Tokenizer) ReadInteger() (uint64, error) {
	lit := t.Token.Literal
	lower := strings.ToLower(lit)
	switch {
	case strings.HasPrefix(lower, "0x"):
		return strconv.ParseUint(lit[2:], 16, 64)
	case strings.HasPrefix(lower, "0o"):
		return strconv.ParseUint(lit[2:], 8, 64)
	case strings.HasPrefix(lower, "0b"):
		return strconv.ParseUint(lit[2:], 2, 64)
	default:
		return strconv.ParseUint(lit, 10, 64)
	}
}

// ReadFloat decodes the current FLOAT token into a float64.
func (t *Tokenizer) ReadFloat() (float64, error) {
	return strconv.ParseFloat(t.Token.Literal, 64)
}

// ReadRegexp decodes the current REGEXP token's "/body/flags" literal and
// validates the body compiles under a Perl-compatible engine, on the
// theory that a body the source language would reject syntactically is
// worth flagging even though the parser does not itself execute regexps.
// If the current token is not a well-formed "/body/flags" literal (an
// unterminated one is scanned as ILLEGAL), it returns an error.
func (t *Tokenizer) ReadRegexp() (body, flags string, err error) {
	lit := t.Token.Literal
	end := strings.LastIndexByte(lit, '/')
	if len(lit) < 2 || lit[0] != '/' || end <= 0 {
		return "", "", errors.New("not a terminated regular expression literal")
	}
	body = lit[1:end]
	flags = lit[end+1:]
	_, err = regexp2.Compile(body, translateFlags(flags))
	return body, flags, err
}

func translateFlags(flags string) regexp2.RegexOptions {
	opts := regexp2.None
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		}
	}
	return opts
}
