package lexer_test

import (
	"fmt"
	"testing"

	"hel/internal/diag"
	"hel/internal/lexer"
	"hel/internal/source"
	"hel/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.hel", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// collectAllTokens собирает все токены включая EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

type lexeme struct {
	text string
	kind token.Kind
}

func basicTokens() []lexeme {
	return []lexeme{
		{"(", token.LParen},
		{")", token.RParen},
		{"{", token.LBrace},
		{"}", token.RBrace},
		{"[", token.LBracket},
		{"]", token.RBracket},
		{",", token.Comma},
		{".", token.Dot},
		{"?", token.Question},
		{"@", token.At},
		{"$", token.Dollar},
		{":", token.Colon},
		//
		{"+", token.Plus},
		{"+=", token.PlusEq},
		{"-", token.Minus},
		{"-=", token.MinusEq},
		{"%", token.Percent},
		{"%=", token.PercentEq},
		{"/", token.Slash},
		{"/=", token.SlashEq},
		{"*", token.Star},
		{"*=", token.StarEq},
		{"!", token.Bang},
		{"!=", token.BangEq},
		{"=", token.Eq},
		{"==", token.EqEq},
		{">", token.Gt},
		{">=", token.GtEq},
		{"<", token.Lt},
		{"<=", token.LtEq},
		{"&", token.Amp},
		{"&=", token.AmpEq},
		{"|", token.Pipe},
		{"|=", token.PipeEq},
		{"^", token.Caret},
		{"^=", token.CaretEq},
		//
		{"->", token.Arrow},
		{"|>", token.PipeGt},
		{"::", token.ColonColon},
		{"..", token.DotDot},
		//
		{"**", token.StarStar},
		{"**=", token.StarStarEq},
		//
		{"let", token.KwLet},
		{"null", token.KwNull},
		{"and", token.KwAnd},
		{"or", token.KwOr},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"fn", token.KwFn},
		{"type", token.KwType},
		{"struct", token.KwStruct},
		{"import", token.KwImport},
		{"if", token.KwIf},
		{"then", token.KwThen},
		{"else", token.KwElse},
		{"for", token.KwFor},
		{"in", token.KwIn},
		{"loop", token.KwLoop},
		{"return", token.KwReturn},
		{"defer", token.KwDefer},
		{"copy", token.KwCopy},
	}
}

func valueTokens() []lexeme {
	return []lexeme{
		{"498035872", token.IntLit},
		{"some_identifier", token.Ident},
		{"0xdeadbeef", token.IntLit},
		{"1.234", token.FloatLit},
		{"1e9", token.FloatLit},
		{"0b101010", token.IntLit},
		{"my_1st_variable", token.Ident},
	}
}

func allTokens() []lexeme {
	return append(basicTokens(), valueTokens()...)
}

// TestSingleTokens: каждый канонический лексем даёт ровно [kind, EOF],
// span равен [0, len) и диагностик нет.
func TestSingleTokens(t *testing.T) {
	for _, lex := range allTokens() {
		lx, reporter := makeTestLexer(lex.text)
		tokens := collectAllTokens(lx)

		if len(tokens) != 2 {
			t.Fatalf("%q: expected [token, EOF], got %d tokens", lex.text, len(tokens))
		}
		tok := tokens[0]
		if tok.Kind != lex.kind {
			t.Errorf("%q: kind = %v, want %v", lex.text, tok.Kind, lex.kind)
		}
		if tok.Span.Start != 0 || int(tok.Span.End) != len(lex.text) {
			t.Errorf("%q: span = %v, want [0,%d)", lex.text, tok.Span, len(lex.text))
		}
		if tokens[1].Kind != token.EOF {
			t.Errorf("%q: last token must be EOF", lex.text)
		}
		if tokens[1].WSAfter {
			t.Errorf("%q: EOF must have WSAfter == false", lex.text)
		}
		if len(reporter.diagnostics) != 0 {
			t.Errorf("%q: unexpected diagnostics: %v", lex.text, reporter.ErrorMessages())
		}
	}
}

// requireSeparation сообщает, сливается ли конкатенация двух лексем в
// другую последовательность токенов (проверка против maximal-munch таблицы).
func requireSeparation(k1, k2 lexeme) bool {
	wordy := func(k token.Kind) bool {
		return k == token.Ident || k == token.IntLit || k == token.FloatLit ||
			token.Token{Kind: k}.IsKeyword()
	}
	if wordy(k1.kind) && wordy(k2.kind) {
		return true
	}
	if (k1.kind == token.IntLit || k1.kind == token.FloatLit) &&
		(k2.kind == token.Dot || k2.kind == token.DotDot) {
		return true
	}

	type pair struct{ a, b token.Kind }
	fusing := map[pair]bool{
		{token.Colon, token.Colon}:         true,
		{token.Colon, token.ColonColon}:    true,
		{token.Dot, token.Dot}:             true,
		{token.Dot, token.DotDot}:          true,
		{token.Star, token.Star}:           true,
		{token.Star, token.StarStar}:       true,
		{token.Star, token.StarEq}:         true,
		{token.Star, token.StarStarEq}:     true,
		{token.Star, token.Eq}:             true,
		{token.Star, token.EqEq}:           true,
		{token.StarStar, token.Eq}:         true,
		{token.StarStar, token.EqEq}:       true,
		{token.StarStar, token.StarStarEq}: true,
		{token.Plus, token.Eq}:             true,
		{token.Plus, token.EqEq}:           true,
		{token.Minus, token.Eq}:            true,
		{token.Minus, token.EqEq}:          true,
		{token.Minus, token.Gt}:            true,
		{token.Minus, token.GtEq}:          true,
		{token.Slash, token.Eq}:            true,
		{token.Slash, token.EqEq}:          true,
		{token.Percent, token.Eq}:          true,
		{token.Percent, token.EqEq}:        true,
		{token.Amp, token.Eq}:              true,
		{token.Amp, token.EqEq}:            true,
		{token.Pipe, token.Eq}:             true,
		{token.Pipe, token.EqEq}:           true,
		{token.Pipe, token.Gt}:             true,
		{token.Pipe, token.GtEq}:           true,
		{token.Caret, token.Eq}:            true,
		{token.Caret, token.EqEq}:          true,
		{token.Bang, token.Eq}:             true,
		{token.Bang, token.EqEq}:           true,
		{token.Eq, token.Eq}:               true,
		{token.Eq, token.EqEq}:             true,
		{token.Lt, token.Eq}:               true,
		{token.Lt, token.EqEq}:             true,
		{token.Gt, token.Eq}:               true,
		{token.Gt, token.EqEq}:             true,
	}
	return fusing[pair{k1.kind, k2.kind}]
}

// TestTokenPairs: несливающиеся пары лексятся вплотную с выключенными
// флагами смежности; сливающиеся проверяются через пробел с включёнными.
func TestTokenPairs(t *testing.T) {
	for _, first := range allTokens() {
		for _, second := range allTokens() {
			if requireSeparation(first, second) {
				lx, reporter := makeTestLexer(first.text + " " + second.text)
				tokens := collectAllTokens(lx)
				if len(tokens) != 3 || tokens[0].Kind != first.kind || tokens[1].Kind != second.kind {
					t.Fatalf("%q + %q: got %v", first.text, second.text, kindsOf(tokens))
				}
				if !tokens[0].WSAfter {
					t.Errorf("%q %q: first token must have WSAfter", first.text, second.text)
				}
				if !tokens[1].WSBefore {
					t.Errorf("%q %q: second token must have WSBefore", first.text, second.text)
				}
				if len(reporter.diagnostics) != 0 {
					t.Errorf("%q %q: diagnostics %v", first.text, second.text, reporter.ErrorMessages())
				}
			} else {
				lx, reporter := makeTestLexer(first.text + second.text)
				tokens := collectAllTokens(lx)
				if len(tokens) != 3 || tokens[0].Kind != first.kind || tokens[1].Kind != second.kind {
					t.Fatalf("%q%q: got %v", first.text, second.text, kindsOf(tokens))
				}
				if tokens[0].WSAfter {
					t.Errorf("%q%q: first token must not have WSAfter", first.text, second.text)
				}
				if tokens[1].WSBefore {
					t.Errorf("%q%q: second token must not have WSBefore", first.text, second.text)
				}
				if len(reporter.diagnostics) != 0 {
					t.Errorf("%q%q: diagnostics %v", first.text, second.text, reporter.ErrorMessages())
				}
			}
		}
	}
}

func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

// TestWhitespaceOnly: любой непустой whitespace даёт только EOF с
// WSBefore == true и без диагностик.
func TestWhitespaceOnly(t *testing.T) {
	inputs := []string{" ", "\t", "\n", "\r", "  \t\n\r ", "\n\n\n", " \t \t "}
	for _, input := range inputs {
		lx, reporter := makeTestLexer(input)
		tokens := collectAllTokens(lx)
		if len(tokens) != 1 || tokens[0].Kind != token.EOF {
			t.Fatalf("%q: expected only EOF, got %v", input, kindsOf(tokens))
		}
		if !tokens[0].WSBefore {
			t.Errorf("%q: EOF must have WSBefore", input)
		}
		if tokens[0].WSAfter {
			t.Errorf("%q: EOF must not have WSAfter", input)
		}
		if len(reporter.diagnostics) != 0 {
			t.Errorf("%q: diagnostics %v", input, reporter.ErrorMessages())
		}
	}
}

func TestNumericBases(t *testing.T) {
	intCases := []struct {
		input string
		want  uint64
	}{
		{"0b101010", 42},
		{"0x2a", 42},
		{"42", 42},
		{"0", 0},
		{"0xDEADBEEF", 0xDEADBEEF},
	}
	for _, c := range intCases {
		lx, reporter := makeTestLexer(c.input)
		tok := lx.Next()
		if tok.Kind != token.IntLit || tok.Int != c.want {
			t.Errorf("%q: got %v(%d), want IntLit(%d)", c.input, tok.Kind, tok.Int, c.want)
		}
		if len(reporter.diagnostics) != 0 {
			t.Errorf("%q: diagnostics %v", c.input, reporter.ErrorMessages())
		}
	}

	floatCases := []struct {
		input string
		want  float64
	}{
		{"1.25", 1.25},
		{"1e3", 1000.0},
		{"2.5e-1", 0.25},
		{"1.0e+10", 1.0e+10},
	}
	for _, c := range floatCases {
		lx, reporter := makeTestLexer(c.input)
		tok := lx.Next()
		if tok.Kind != token.FloatLit || tok.Float != c.want {
			t.Errorf("%q: got %v(%g), want FloatLit(%g)", c.input, tok.Kind, tok.Float, c.want)
		}
		if len(reporter.diagnostics) != 0 {
			t.Errorf("%q: diagnostics %v", c.input, reporter.ErrorMessages())
		}
	}
}

// TestDotAfterInteger: точка поглощается числом только перед цифрой,
// поэтому `1.foo` — это Int, Dot, Ident.
func TestDotAfterInteger(t *testing.T) {
	lx, reporter := makeTestLexer("1.foo")
	tokens := collectAllTokens(lx)
	wantKinds := []token.Kind{token.IntLit, token.Dot, token.Ident, token.EOF}
	if len(tokens) != len(wantKinds) {
		t.Fatalf("got %v", kindsOf(tokens))
	}
	for i, k := range wantKinds {
		if tokens[i].Kind != k {
			t.Fatalf("token %d: got %v, want %v", i, tokens[i].Kind, k)
		}
	}
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("diagnostics: %v", reporter.ErrorMessages())
	}
}

func TestStringEscapes(t *testing.T) {
	lx, reporter := makeTestLexer(`"a\"b"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit || tok.Text != `a"b` {
		t.Fatalf(`got %v %q, want StringLit a"b`, tok.Kind, tok.Text)
	}
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("diagnostics: %v", reporter.ErrorMessages())
	}

	for _, input := range []string{`"\n"`, `"\t"`, `"\r"`, `"\\"`} {
		lx, reporter := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != token.StringLit || len(tok.Text) != 1 {
			t.Errorf("%q: got %v %q", input, tok.Kind, tok.Text)
		}
		if len(reporter.diagnostics) != 0 {
			t.Errorf("%q: diagnostics %v", input, reporter.ErrorMessages())
		}
	}
}

func TestInvalidEscape(t *testing.T) {
	lx, reporter := makeTestLexer(`"\x"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("got %v, want StringLit", tok.Kind)
	}
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", reporter.ErrorMessages())
	}
	if reporter.diagnostics[0].Code != diag.LexInvalidEscape {
		t.Fatalf("expected LexInvalidEscape, got %v", reporter.diagnostics[0].Code)
	}
	// позиция — обратный слэш, не сам символ
	if got := reporter.diagnostics[0].Primary; got.Start != 1 || got.End != 2 {
		t.Fatalf("diagnostic span = %v, want [1,2)", got)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"abc`)
	tok := lx.Next()
	if tok.Kind != token.StringLit || tok.Text != "abc" {
		t.Fatalf("got %v %q, want StringLit %q", tok.Kind, tok.Text, "abc")
	}
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", reporter.ErrorMessages())
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected LexUnterminatedString, got %v", reporter.diagnostics[0].Code)
	}
}

func TestLineComment(t *testing.T) {
	lx, reporter := makeTestLexer("a # comment here\nb")
	tokens := collectAllTokens(lx)
	wantKinds := []token.Kind{token.Ident, token.Ident, token.EOF}
	if len(tokens) != len(wantKinds) {
		t.Fatalf("got %v", kindsOf(tokens))
	}
	if !tokens[1].WSBefore {
		t.Fatalf("token after comment must have WSBefore")
	}
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("diagnostics: %v", reporter.ErrorMessages())
	}
}

func TestBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("a #- block #- nested -# still -# b")
	tokens := collectAllTokens(lx)
	wantKinds := []token.Kind{token.Ident, token.Ident, token.EOF}
	if len(tokens) != len(wantKinds) {
		t.Fatalf("got %v", kindsOf(tokens))
	}
	if tokens[0].Text != "a" || tokens[1].Text != "b" {
		t.Fatalf("got %q, %q", tokens[0].Text, tokens[1].Text)
	}
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("diagnostics: %v", reporter.ErrorMessages())
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("a #- never closed")
	tokens := collectAllTokens(lx)
	if len(tokens) != 2 || tokens[0].Kind != token.Ident {
		t.Fatalf("got %v", kindsOf(tokens))
	}
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", reporter.ErrorMessages())
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected LexUnterminatedBlockComment, got %v", reporter.diagnostics[0].Code)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	lx, reporter := makeTestLexer("a ~ b")
	tokens := collectAllTokens(lx)
	wantKinds := []token.Kind{token.Ident, token.Invalid, token.Ident, token.EOF}
	if len(tokens) != len(wantKinds) {
		t.Fatalf("got %v", kindsOf(tokens))
	}
	for i, k := range wantKinds {
		if tokens[i].Kind != k {
			t.Fatalf("token %d: got %v, want %v", i, tokens[i].Kind, k)
		}
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected one LexUnknownChar, got %v", reporter.ErrorMessages())
	}
}

// TestEOFIdempotent: после EOF лексер продолжает отдавать EOF.
func TestEOFIdempotent(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.Next() // x
	for range 3 {
		tok := lx.Next()
		if tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
		if tok.WSAfter {
			t.Fatalf("EOF must never have WSAfter")
		}
	}
}

// TestPeekIdempotent: Peek не потребляет токен.
func TestPeekIdempotent(t *testing.T) {
	lx, _ := makeTestLexer("let x")
	first := lx.Peek()
	second := lx.Peek()
	if first.Kind != second.Kind || first.Span != second.Span {
		t.Fatalf("Peek must be idempotent: %v vs %v", first, second)
	}
	if lx.Next().Kind != token.KwLet {
		t.Fatalf("Next after Peek must return the peeked token")
	}
}

func TestAdjacencyInPath(t *testing.T) {
	lx, _ := makeTestLexer("a::b")
	a := lx.Next()
	cc := lx.Next()
	b := lx.Next()
	if a.WSAfter || cc.WSBefore || cc.WSAfter || b.WSBefore {
		t.Fatalf("a::b must be fully adjacent: %v %v %v", a, cc, b)
	}

	lx, _ = makeTestLexer("a :: b")
	a = lx.Next()
	cc = lx.Next()
	if !a.WSAfter || !cc.WSBefore {
		t.Fatalf("a :: b must report whitespace around '::'")
	}
}

func TestStringSpanCoversQuotes(t *testing.T) {
	lx, _ := makeTestLexer(`"hi"`)
	tok := lx.Next()
	if tok.Span.Start != 0 || tok.Span.End != 4 {
		t.Fatalf("string span = %v, want [0,4)", tok.Span)
	}
}
