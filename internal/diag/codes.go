package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexInvalidEscape            Code = 1004
	LexBadFloat                 Code = 1005
	LexBadNumber                Code = 1006

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectType         Code = 2003
	SynExpectExpression   Code = 2004
	SynExpectStatement    Code = 2005
	SynUnexpectedTopLevel Code = 2006
	SynPipeRightNotCall   Code = 2007
	SynFnBodyBrace        Code = 2008
	SynExpectFieldName    Code = 2009
	SynExpectClosureParam Code = 2010

	// I/O
	IOLoadFileError Code = 4001

	// Проектные (модульный резолвер)
	ProjInfo              Code = 5000
	ProjMissingModule     Code = 5001
	ProjDuplicateModule   Code = 5002
	ProjInvalidImportPath Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexer information",
	LexUnknownChar:              "unexpected character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated multiline comment",
	LexInvalidEscape:            "invalid escape character",
	LexBadFloat:                 "invalid float literal",
	LexBadNumber:                "invalid numeric literal",
	SynInfo:                     "Parser information",
	SynUnexpectedToken:          "unexpected token",
	SynExpectIdentifier:         "expected identifier",
	SynExpectType:               "expected type",
	SynExpectExpression:         "expected expression",
	SynExpectStatement:          "expected statement",
	SynUnexpectedTopLevel:       "unexpected top-level construct",
	SynPipeRightNotCall:         "right side of '|>' must be a function invocation",
	SynFnBodyBrace:              "function body after '=' must not be a bare block",
	SynExpectFieldName:          "expected field name",
	SynExpectClosureParam:       "expected closure parameter",
	IOLoadFileError:             "I/O load file error",
	ProjInfo:                    "Project information",
	ProjMissingModule:           "missing module",
	ProjDuplicateModule:         "duplicate module definition",
	ProjInvalidImportPath:       "invalid import path",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
