// Package token defines the lexical tokens produced from a regex pattern
// string and consumed by the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind uint8

const (
	// CHAR is a single literal character (escaped or not).
	CHAR Kind = iota
	// DOT is the wildcard metacharacter '.'.
	DOT
	// CARET is '^', either the start anchor or a class negation marker.
	CARET
	// DOLLAR is the end anchor '$'.
	DOLLAR
	// SHORTHAND is a predicate class escape: d, D, w, W, s, S.
	SHORTHAND
	// STAR is the '*' quantifier.
	STAR
	// PLUS is the '+' quantifier.
	PLUS
	// QUESTION is the '?' quantifier.
	QUESTION
	// LBRACE is '{'.
	LBRACE
	// RBRACE is '}'.
	RBRACE
	// LPAREN is '('.
	LPAREN
	// RPAREN is ')'.
	RPAREN
	// LBRACKET is '['.
	LBRACKET
	// RBRACKET is ']'.
	RBRACKET
	// PIPE is '|'.
	PIPE
	// DASH is '-' inside a character class.
	DASH
	// COMMA is ',' inside a bounded quantifier.
	COMMA
	// EOF marks the end of the token stream.
	EOF
)

// String returns a human-readable name for k, used in error messages.
func (k Kind) String() string {
	switch k {
	case CHAR:
		return "CHAR"
	case DOT:
		return "DOT"
	case CARET:
		return "CARET"
	case DOLLAR:
		return "DOLLAR"
	case SHORTHAND:
		return "SHORTHAND"
	case STAR:
		return "STAR"
	case PLUS:
		return "PLUS"
	case QUESTION:
		return "QUESTION"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACKET:
		return "LBRACKET"
	case RBRACKET:
		return "RBRACKET"
	case PIPE:
		return "PIPE"
	case DASH:
		return "DASH"
	case COMMA:
		return "COMMA"
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token is a single lexical unit produced by the lexer. Payload is only
// meaningful when HasPayload is true (CHAR and SHORTHAND tokens); Pos is
// the zero-based rune offset of the token in the source pattern.
type Token struct {
	Kind       Kind
	Payload    rune
	HasPayload bool
	Pos        int
}

// New creates a token with no payload (e.g. STAR, LPAREN, EOF).
func New(kind Kind, pos int) Token {
	return Token{Kind: kind, Pos: pos}
}

// NewWithPayload creates a token carrying a character payload (CHAR or
// SHORTHAND).
func NewWithPayload(kind Kind, payload rune, pos int) Token {
	return Token{Kind: kind, Payload: payload, HasPayload: true, Pos: pos}
}

// String implements fmt.Stringer for debugging and error messages.
func (t Token) String() string {
	if t.HasPayload {
		return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Payload, t.Pos)
	}
	return fmt.Sprintf("%s@%d", t.Kind, t.Pos)
}
