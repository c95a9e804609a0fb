package token_test

import (
	"testing"

	"hel/internal/source"
	"hel/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.FloatLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.KwNull,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.PlusEq, token.Minus, token.MinusEq,
		token.Percent, token.PercentEq, token.Slash, token.SlashEq,
		token.Star, token.StarEq, token.StarStar, token.StarStarEq,
		token.Bang, token.BangEq, token.Eq, token.EqEq,
		token.Gt, token.GtEq, token.Lt, token.LtEq,
		token.Amp, token.AmpEq, token.Pipe, token.PipeEq,
		token.Caret, token.CaretEq,
		token.Arrow, token.PipeGt, token.ColonColon, token.DotDot,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.LBracket, token.RBracket,
		token.Comma, token.Dot, token.Question, token.At, token.Dollar, token.Colon,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.IntLit, token.EOF}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwLet, token.KwNull, token.KwAnd, token.KwOr, token.KwTrue,
		token.KwFalse, token.KwFn, token.KwType, token.KwStruct, token.KwImport,
		token.KwIf, token.KwThen, token.KwElse, token.KwFor, token.KwIn,
		token.KwLoop, token.KwReturn, token.KwDefer, token.KwCopy,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatalf("Ident must not be keyword")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.EOF:        "EOF",
		token.Ident:      "Ident",
		token.PlusEq:     "+=",
		token.StarStarEq: "**=",
		token.PipeGt:     "|>",
		token.KwLet:      "let",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
