package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"hel/internal/source"
	"hel/internal/token"
)

// TokenOutput represents a token in the JSON output.
type TokenOutput struct {
	Kind     string      `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Int      uint64      `json:"int,omitempty"`
	Float    float64     `json:"float,omitempty"`
	Span     source.Span `json:"span"`
	WSBefore bool        `json:"ws_before"`
	WSAfter  bool        `json:"ws_after"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String()); err != nil {
			return err
		}

		if tok.Text != "" && tok.Text != tok.Kind.String() {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}

		adjacency := ""
		if tok.WSBefore {
			adjacency += " ws-before"
		}
		if tok.WSAfter {
			adjacency += " ws-after"
		}
		if adjacency != "" {
			if _, err := fmt.Fprintf(w, " (%s)", adjacency[1:]); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokenOutputsJSON готовит токены к сериализации в JSON формате.
func TokenOutputsJSON(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Int:      tok.Int,
			Float:    tok.Float,
			Span:     tok.Span,
			WSBefore: tok.WSBefore,
			WSAfter:  tok.WSAfter,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := TokenOutputsJSON(tokens)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
