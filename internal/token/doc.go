// Package token defines lexical token kinds for the hel compiler.
// Invariants:
//   - Token.Span matches the lexeme exactly (Start..End, byte offsets).
//   - Token.Text carries the decoded payload for Ident and StringLit
//     (escape sequences already interpreted) and the raw lexeme otherwise.
//   - Whitespace and comments never appear in the token stream; they are
//     absorbed by the lexer and surface only through the WSBefore/WSAfter
//     adjacency flags.
//   - Built-in type names (u8, i32, ...) are identifiers. They are
//     recognized by later phases, not the lexer.
package token
