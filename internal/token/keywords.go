package token

var keywords = map[string]Kind{
	"let":    KwLet,
	"null":   KwNull,
	"and":    KwAnd,
	"or":     KwOr,
	"true":   KwTrue,
	"false":  KwFalse,
	"fn":     KwFn,
	"type":   KwType,
	"struct": KwStruct,
	"import": KwImport,
	"if":     KwIf,
	"then":   KwThen,
	"else":   KwElse,
	"for":    KwFor,
	"in":     KwIn,
	"loop":   KwLoop,
	"return": KwReturn,
	"defer":  KwDefer,
	"copy":   KwCopy,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
