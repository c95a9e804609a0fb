package diag

import (
	"strings"

	"hel/internal/token"
)

// UnexpectedTokenBuilder refines an "unexpected token" diagnostic with the
// set of expected alternatives before committing it to a Reporter.
//
// The builder MUST be consumed: exactly one terminal method (ExpectedKind,
// ExpectedKinds, or Expected) commits the diagnostic. Committing twice
// panics; Committed lets callers and tests verify the contract.
type UnexpectedTokenBuilder struct {
	reporter  Reporter
	tok       token.Token
	committed bool
}

// UnexpectedToken starts an unexpected-token diagnostic for tok.
func UnexpectedToken(r Reporter, tok token.Token) *UnexpectedTokenBuilder {
	return &UnexpectedTokenBuilder{reporter: r, tok: tok}
}

// Committed reports whether a terminal method has already run.
func (b *UnexpectedTokenBuilder) Committed() bool {
	return b != nil && b.committed
}

// ExpectedKind commits "unexpected X token, expected K".
func (b *UnexpectedTokenBuilder) ExpectedKind(expected token.Kind) {
	b.commit("expected '" + expected.String() + "'")
}

// ExpectedKinds commits "unexpected X token, expected K1, K2, or K3".
func (b *UnexpectedTokenBuilder) ExpectedKinds(expected ...token.Kind) {
	if len(expected) == 0 {
		b.commit("")
		return
	}
	var sb strings.Builder
	sb.WriteString("expected ")
	for i, k := range expected {
		sb.WriteString("'" + k.String() + "'")
		if i+2 < len(expected) {
			sb.WriteString(", ")
		} else if i+2 == len(expected) {
			sb.WriteString(", or ")
		}
	}
	b.commit(sb.String())
}

// Expected commits "unexpected X token, expected <what>" with a free-form description.
func (b *UnexpectedTokenBuilder) Expected(what string) {
	b.commit("expected " + what)
}

func (b *UnexpectedTokenBuilder) commit(expected string) {
	if b == nil {
		return
	}
	if b.committed {
		panic("diag: unexpected-token builder committed twice")
	}
	b.committed = true

	msg := "unexpected '" + describeToken(b.tok) + "' token"
	if expected != "" {
		msg += ", " + expected
	}
	if b.reporter != nil {
		b.reporter.Report(SynUnexpectedToken, SevError, b.tok.Span, msg, nil)
	}
}

func describeToken(tok token.Token) string {
	switch tok.Kind {
	case token.Ident, token.StringLit, token.IntLit, token.FloatLit, token.Invalid:
		if tok.Text != "" {
			return tok.Text
		}
	}
	return tok.Kind.String()
}
