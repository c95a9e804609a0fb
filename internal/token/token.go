package token

import (
	"hel/internal/source"
)

// Token represents a single source token with its location and adjacency flags.
//
// WSBefore is true when whitespace or a comment was skipped before the token,
// or the token starts at offset 0. WSAfter is true when the byte right after
// the token is whitespace or absent; a comment directly after the token
// leaves it false. The parser uses them for
// adjacency-sensitive constructs ('::' in a path binds only without
// surrounding whitespace). The EOF token always reports WSAfter == false.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string  // decoded payload for Ident/StringLit, raw lexeme otherwise
	Int      uint64  // decoded value when Kind == IntLit
	Float    float64 // decoded value when Kind == FloatLit
	WSBefore bool
	WSAfter  bool
}

// IsLiteral reports whether the token is a numeric, boolean, string, or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, PlusEq, Minus, MinusEq, Percent, PercentEq, Slash, SlashEq,
		Star, StarEq, StarStar, StarStarEq, Bang, BangEq, Eq, EqEq,
		Gt, GtEq, Lt, LtEq, Amp, AmpEq, Pipe, PipeEq, Caret, CaretEq,
		Arrow, PipeGt, ColonColon, DotDot,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket,
		Comma, Dot, Question, At, Dollar, Colon:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwNull, KwAnd, KwOr, KwTrue, KwFalse, KwFn, KwType, KwStruct,
		KwImport, KwIf, KwThen, KwElse, KwFor, KwIn, KwLoop, KwReturn,
		KwDefer, KwCopy:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
