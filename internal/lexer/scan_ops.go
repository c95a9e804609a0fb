package lexer

import (
	"hel/internal/diag"
	"hel/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: lx.lexeme(sp),
		}
	}

	switch {
	case lx.try3('*', '*', '='):
		return emit(token.StarStarEq)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	case lx.try2('*', '='):
		return emit(token.StarEq)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('|', '>'):
		return emit(token.PipeGt)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('+', '='):
		return emit(token.PlusEq)
	case lx.try2('-', '='):
		return emit(token.MinusEq)
	case lx.try2('/', '='):
		return emit(token.SlashEq)
	case lx.try2('%', '='):
		return emit(token.PercentEq)
	case lx.try2('&', '='):
		return emit(token.AmpEq)
	case lx.try2('|', '='):
		return emit(token.PipeEq)
	case lx.try2('^', '='):
		return emit(token.CaretEq)
	}

	// односимвольные
	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Eq)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '^':
		return emit(token.Caret)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '@':
		return emit(token.At)
	case '$':
		return emit(token.Dollar)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	default:
		// неизвестный символ
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character '"+lx.lexeme(sp)+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
	}
}
