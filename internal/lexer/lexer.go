package lexer

import (
	"hel/internal/source"
	"hel/internal/token"
)

// Lexer converts source content into a stream of tokens with one token of
// lookahead. Whitespace and comments are absorbed; adjacency is surfaced
// through the WSBefore/WSAfter flags on every emitted token.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

// New creates a new Lexer for the provided file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next возвращает следующий **значимый** токен.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) Пропустить whitespace и комментарии, запомнив факт пропуска
	sawTrivia := lx.skipTrivia()

	// 3) Если EOF → вернуть EOF (WSAfter всегда false: после него нет байтов)
	if lx.cursor.EOF() {
		return token.Token{
			Kind:     token.EOF,
			Span:     lx.EmptySpan(),
			WSBefore: sawTrivia || lx.cursor.Off == 0,
			WSAfter:  false,
		}
	}

	// 4) Посмотреть текущий байт и выбрать сканер
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch >= 0x80:
		// буква/underscore или возможный Unicode идентификатор
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	// 5) Смежность: слева — trivia или начало файла, справа — следующий байт
	tok.WSBefore = sawTrivia || tok.Span.Start == 0
	tok.WSAfter = lx.cursor.EOF() || isWhitespaceByte(lx.cursor.Peek())

	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Push injects a token back into the lookahead buffer.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the file being tokenized.
func (lx *Lexer) File() *source.File {
	return lx.file
}
