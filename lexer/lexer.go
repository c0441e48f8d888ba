// Package lexer converts a regex pattern string into a flat token stream.
//
// The lexer performs a single left-to-right pass and tracks exactly one
// bit of context: whether the cursor is currently inside a character class
// ([...]). Validation of the grammar itself is deferred to the parser; the
// lexer only rejects malformed escape sequences.
package lexer

import (
	"github.com/coregx/regexlite/rxerr"
	"github.com/coregx/regexlite/token"
)

const hexDigits = "0123456789abcdefABCDEF"

// escapable is the set of characters that may be escaped to produce a
// literal CHAR token outside a character class.
var escapable = map[rune]bool{
	'.': true, '*': true, '+': true, '?': true, '|': true,
	'(': true, ')': true, '[': true, ']': true,
	'{': true, '}': true, '^': true, '$': true, '\\': true,
}

// Lex tokenizes pattern into a slice of tokens terminated by a single EOF
// token positioned at len(pattern). It returns a *rxerr.SyntaxError for
// dangling or malformed escape sequences.
func Lex(pattern string) ([]token.Token, error) {
	runes := []rune(pattern)
	l := &lexer{src: runes, pos: 0}
	var tokens []token.Token
	for !l.eof() {
		pos := l.pos
		ch := l.src[l.pos]
		var tok token.Token
		var err error
		if l.inClass {
			tok, err = l.lexClassChar(pos, ch)
		} else {
			tok, err = l.lexRegularChar(pos, ch)
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		switch tok.Kind {
		case token.LBRACKET:
			l.inClass = true
		case token.RBRACKET:
			l.inClass = false
		}
	}
	tokens = append(tokens, token.New(token.EOF, len(runes)))
	return tokens, nil
}

type lexer struct {
	src     []rune
	pos     int
	inClass bool
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) advance() rune {
	ch := l.src[l.pos]
	l.pos++
	return ch
}

// lexRegularChar lexes a character outside of a character class.
func (l *lexer) lexRegularChar(pos int, ch rune) (token.Token, error) {
	l.advance()
	switch ch {
	case '\\':
		return l.readEscape(pos)
	case '.':
		return token.New(token.DOT, pos), nil
	case '*':
		return token.New(token.STAR, pos), nil
	case '+':
		return token.New(token.PLUS, pos), nil
	case '?':
		return token.New(token.QUESTION, pos), nil
	case '(':
		return token.New(token.LPAREN, pos), nil
	case ')':
		return token.New(token.RPAREN, pos), nil
	case '[':
		return token.New(token.LBRACKET, pos), nil
	case ']':
		return token.New(token.RBRACKET, pos), nil
	case '{':
		return token.New(token.LBRACE, pos), nil
	case '}':
		return token.New(token.RBRACE, pos), nil
	case '|':
		return token.New(token.PIPE, pos), nil
	case '^':
		return token.New(token.CARET, pos), nil
	case '$':
		return token.New(token.DOLLAR, pos), nil
	case ',':
		return token.New(token.COMMA, pos), nil
	case '-':
		// A literal '-' outside a class is just a CHAR.
		return token.NewWithPayload(token.CHAR, '-', pos), nil
	default:
		return token.NewWithPayload(token.CHAR, ch, pos), nil
	}
}

// lexClassChar lexes a character appearing inside a [...] character class.
func (l *lexer) lexClassChar(pos int, ch rune) (token.Token, error) {
	l.advance()
	switch ch {
	case '\\':
		return l.readEscape(pos)
	case ']':
		return token.New(token.RBRACKET, pos), nil
	case '-':
		return token.New(token.DASH, pos), nil
	case '^':
		// Leading-negation semantics are a parser concern.
		return token.New(token.CARET, pos), nil
	default:
		return token.NewWithPayload(token.CHAR, ch, pos), nil
	}
}

// readEscape handles the character(s) following a backslash. pos is the
// offset of the backslash itself, used for error reporting.
func (l *lexer) readEscape(pos int) (token.Token, error) {
	if l.eof() {
		return token.Token{}, rxerr.NewSyntaxError(pos, "dangling escape")
	}
	ch := l.advance()
	switch ch {
	case 't':
		return token.NewWithPayload(token.CHAR, '\t', pos), nil
	case 'n':
		return token.NewWithPayload(token.CHAR, '\n', pos), nil
	case 'r':
		return token.NewWithPayload(token.CHAR, '\r', pos), nil
	case 'x':
		return l.readHexEscape(pos)
	case 'd', 'D', 'w', 'W', 's', 'S':
		return token.NewWithPayload(token.SHORTHAND, ch, pos), nil
	default:
		if escapable[ch] || l.inClass && (ch == '-' || ch == ']') {
			return token.NewWithPayload(token.CHAR, ch, pos), nil
		}
		// Unknown escape: treated as a literal character (non-fatal).
		return token.NewWithPayload(token.CHAR, ch, pos), nil
	}
}

// readHexEscape parses the two hex digits following \x.
func (l *lexer) readHexEscape(pos int) (token.Token, error) {
	if l.pos+2 > len(l.src) {
		return token.Token{}, rxerr.NewSyntaxError(pos, "incomplete hex escape")
	}
	h1, h2 := l.src[l.pos], l.src[l.pos+1]
	if !isHexDigit(h1) || !isHexDigit(h2) {
		return token.Token{}, rxerr.NewSyntaxError(pos, "invalid hex escape")
	}
	l.pos += 2
	v := hexVal(h1)<<4 | hexVal(h2)
	return token.NewWithPayload(token.CHAR, rune(v), pos), nil
}

func isHexDigit(r rune) bool {
	for _, d := range hexDigits {
		if d == r {
			return true
		}
	}
	return false
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 0
}
