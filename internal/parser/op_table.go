package parser

import (
	"hel/internal/ast"
	"hel/internal/token"
)

// binaryOpFromToken преобразует токен в бинарный оператор.
// Приоритеты и ассоциативность живут на ast.BinaryOp.
func binaryOpFromToken(kind token.Kind) (ast.BinaryOp, bool) {
	switch kind {
	case token.PipeGt:
		return ast.BinaryPipe, true
	case token.Plus:
		return ast.BinaryAdd, true
	case token.Minus:
		return ast.BinarySub, true
	case token.Star:
		return ast.BinaryMul, true
	case token.Slash:
		return ast.BinaryDiv, true
	case token.Percent:
		return ast.BinaryMod, true
	case token.StarStar:
		return ast.BinaryPow, true
	case token.Amp:
		return ast.BinaryBitAnd, true
	case token.Pipe:
		return ast.BinaryBitOr, true
	case token.Caret:
		return ast.BinaryBitXor, true
	case token.KwAnd:
		return ast.BinaryAnd, true
	case token.KwOr:
		return ast.BinaryOr, true
	case token.EqEq:
		return ast.BinaryEq, true
	case token.BangEq:
		return ast.BinaryNotEq, true
	case token.Lt:
		return ast.BinaryLess, true
	case token.LtEq:
		return ast.BinaryLessEq, true
	case token.Gt:
		return ast.BinaryGreater, true
	case token.GtEq:
		return ast.BinaryGreaterEq, true
	default:
		return 0, false
	}
}

// unaryOpFromToken преобразует токен в унарный оператор.
func unaryOpFromToken(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Amp:
		return ast.UnaryRef, true
	case token.Dollar:
		return ast.UnaryDeref, true
	case token.Minus:
		return ast.UnaryNeg, true
	case token.Plus:
		return ast.UnaryAbs, true
	case token.Bang:
		return ast.UnaryNot, true
	default:
		return 0, false
	}
}

// assignOpFromToken преобразует токен в оператор присваивания.
// Присваивание существует только на уровне statement.
func assignOpFromToken(kind token.Kind) (ast.AssignOp, bool) {
	switch kind {
	case token.Eq:
		return ast.AssignPlain, true
	case token.PlusEq:
		return ast.AssignAdd, true
	case token.MinusEq:
		return ast.AssignSub, true
	case token.StarEq:
		return ast.AssignMul, true
	case token.SlashEq:
		return ast.AssignDiv, true
	case token.PercentEq:
		return ast.AssignMod, true
	case token.StarStarEq:
		return ast.AssignPow, true
	case token.AmpEq:
		return ast.AssignBitAnd, true
	case token.PipeEq:
		return ast.AssignBitOr, true
	case token.CaretEq:
		return ast.AssignBitXor, true
	default:
		return 0, false
	}
}
