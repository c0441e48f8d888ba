// Package parser implements a recursive-descent parser that turns a regex
// pattern's token stream into a typed syntax tree (package ast), enforcing
// a grammar with precedence alternation < concatenation < quantification <
// atom (spec.md §4.2).
package parser

import (
	"github.com/coregx/regexlite/ast"
	"github.com/coregx/regexlite/lexer"
	"github.com/coregx/regexlite/rxerr"
	"github.com/coregx/regexlite/token"
)

// Parse lexes and parses pattern, returning the root syntax tree node.
// Errors are always *rxerr.SyntaxError carrying the offending position.
func Parse(pattern string) (ast.Node, error) {
	toks, err := lexer.Lex(pattern)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: toks}
	expr, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != token.EOF {
		return nil, rxerr.NewSyntaxError(p.peek().Pos, "trailing input after valid expression")
	}
	return expr, nil
}

type parser struct {
	tokens     []token.Token
	pos        int
	groupCount int
}

func (p *parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(k int) token.Token {
	idx := p.pos + k
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *parser) advance() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) match(kind token.Kind) bool {
	if p.peek().Kind == kind {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(kind token.Kind, msg string) (token.Token, error) {
	if p.peek().Kind != kind {
		return token.Token{}, rxerr.NewSyntaxError(p.peek().Pos, "%s", msg)
	}
	return p.advance(), nil
}

// parseAlt := Concat ('|' Concat)*
func (p *parser) parseAlt() (ast.Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	options := []ast.Node{left}
	for p.match(token.PIPE) {
		opt, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	if len(options) == 1 {
		return left, nil
	}
	return ast.Alt{Options: options}, nil
}

// parseConcat := Repeat+ (zero is allowed only to produce the empty match;
// spec.md §4.2 allows an empty alternative as a Concat with no parts).
func (p *parser) parseConcat() (ast.Node, error) {
	var parts []ast.Node
	for {
		t := p.peek()
		if t.Kind == token.EOF || t.Kind == token.RPAREN || t.Kind == token.PIPE {
			break
		}
		// Stray '?' after a completed quantifier is accepted as a literal '?'.
		if t.Kind == token.QUESTION && len(parts) > 0 {
			if _, ok := parts[len(parts)-1].(ast.Repeat); ok {
				p.advance()
				parts = append(parts, ast.Literal{Char: '?'})
				continue
			}
		}
		part, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return ast.Concat{}, nil
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return ast.Concat{Parts: parts}, nil
}

// parseRepeat := Primary ( '*' | '+' | '?' | '{' Num [',' [Num]] '}' )*
func (p *parser) parseRepeat() (ast.Node, error) {
	switch p.peek().Kind {
	case token.STAR, token.PLUS, token.QUESTION, token.LBRACE:
		return nil, rxerr.NewSyntaxError(p.peek().Pos, "quantifier without target")
	}
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	applied := false
	for {
		t := p.peek()
		if t.Kind == token.QUESTION && applied {
			// A second consecutive '?' after a quantifier is a stray literal,
			// handled by parseConcat; stop accumulating quantifiers here.
			return expr, nil
		}
		switch t.Kind {
		case token.STAR:
			p.advance()
			expr = ast.Repeat{Expr: expr, Kind: ast.Star, M: 0, N: ast.NoLimit}
			applied = true
		case token.PLUS:
			p.advance()
			expr = ast.Repeat{Expr: expr, Kind: ast.Plus, M: 1, N: ast.NoLimit}
			applied = true
		case token.QUESTION:
			p.advance()
			expr = ast.Repeat{Expr: expr, Kind: ast.Question, M: 0, N: 1}
			applied = true
		case token.LBRACE:
			expr, err = p.parseBraceQuant(expr)
			if err != nil {
				return nil, err
			}
			applied = true
		default:
			return expr, nil
		}
	}
}

// parseNumber reads a run of CHAR tokens whose payload is a decimal digit.
// Returns (value, true) on success, or (0, false) if no digits were found.
func (p *parser) parseNumber() (int, bool) {
	start := p.pos
	n := 0
	for p.peek().Kind == token.CHAR && p.peek().HasPayload && isDigit(p.peek().Payload) {
		n = n*10 + int(p.peek().Payload-'0')
		p.advance()
	}
	if p.pos == start {
		return 0, false
	}
	return n, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// parseBraceQuant parses {m}, {m,} or {m,n} given expr as the atom already
// parsed. The opening '{' has not yet been consumed.
func (p *parser) parseBraceQuant(expr ast.Node) (ast.Node, error) {
	lbrace := p.advance() // consume '{'
	startPos := lbrace.Pos
	m, ok := p.parseNumber()
	if !ok {
		return nil, rxerr.NewSyntaxError(p.peek().Pos, "expected number")
	}
	if p.match(token.RBRACE) {
		return ast.Repeat{Expr: expr, Kind: ast.Exactly, M: m, N: m}, nil
	}
	if _, err := p.expect(token.COMMA, "expected ',' in quantifier"); err != nil {
		return nil, err
	}
	if p.match(token.RBRACE) {
		return ast.Repeat{Expr: expr, Kind: ast.AtLeast, M: m, N: ast.NoLimit}, nil
	}
	n, ok := p.parseNumber()
	if !ok {
		return nil, rxerr.NewSyntaxError(p.peek().Pos, "expected number")
	}
	if m > n {
		return nil, rxerr.NewSyntaxError(startPos, "invalid range in quantifier")
	}
	if _, err := p.expect(token.RBRACE, "expected '}'"); err != nil {
		return nil, err
	}
	return ast.Repeat{Expr: expr, Kind: ast.Bounded, M: m, N: n}, nil
}

// parsePrimary := CHAR | DOT | CARET | DOLLAR | SHORTHAND
//
//	| '(' Alt ')'
//	| '[' ['^'] ClassItem+ ']'
func (p *parser) parsePrimary() (ast.Node, error) {
	t := p.peek()
	switch t.Kind {
	case token.CHAR:
		p.advance()
		return ast.Literal{Char: t.Payload}, nil
	case token.DOT:
		p.advance()
		return ast.Dot{}, nil
	case token.CARET:
		p.advance()
		return ast.AnchorStart{}, nil
	case token.DOLLAR:
		p.advance()
		return ast.AnchorEnd{}, nil
	case token.SHORTHAND:
		p.advance()
		return ast.Shorthand{Kind: ast.ShorthandKind(t.Payload)}, nil
	case token.LPAREN:
		p.advance()
		p.groupCount++
		idx := p.groupCount
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "unmatched '('"); err != nil {
			return nil, rxerr.NewSyntaxError(t.Pos, "unmatched '('")
		}
		return ast.Group{Expr: inner, Index: idx}, nil
	case token.LBRACKET:
		return p.parseCharClass()
	default:
		return nil, rxerr.NewSyntaxError(t.Pos, "unexpected token")
	}
}

// parseCharClass := '[' ['^'] ClassItem+ ']'
func (p *parser) parseCharClass() (ast.Node, error) {
	lbracket, err := p.expect(token.LBRACKET, "expected '['")
	if err != nil {
		return nil, err
	}
	negated := false
	if p.peek().Kind == token.CARET {
		p.advance()
		negated = true
	}
	var items []ast.ClassItem
	for {
		t := p.peek()
		if t.Kind == token.EOF {
			return nil, rxerr.NewSyntaxError(lbracket.Pos, "unterminated character class")
		}
		if t.Kind == token.RBRACKET {
			p.advance()
			break
		}
		item, err := p.parseClassAtom()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind == token.DASH && p.peekAt(1).Kind != token.RBRACKET {
			p.advance() // consume '-'
			end, err := p.parseClassAtom()
			if err != nil {
				return nil, err
			}
			lo, loOK := item.(ast.ClassLiteral)
			hi, hiOK := end.(ast.ClassLiteral)
			if !loOK || !hiOK {
				return nil, rxerr.NewSyntaxError(t.Pos, "invalid range")
			}
			if lo.Char > hi.Char {
				return nil, rxerr.NewSyntaxError(t.Pos, "invalid range")
			}
			items = append(items, ast.ClassRange{Lo: lo.Char, Hi: hi.Char})
		} else {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, rxerr.NewSyntaxError(lbracket.Pos, "empty character class")
	}
	return ast.CharClass{Items: items, Negated: negated}, nil
}

// parseClassAtom parses a single item within a character class.
func (p *parser) parseClassAtom() (ast.ClassItem, error) {
	t := p.peek()
	switch t.Kind {
	case token.EOF:
		return nil, rxerr.NewSyntaxError(t.Pos, "unterminated character class")
	case token.CHAR:
		p.advance()
		return ast.ClassLiteral{Char: t.Payload}, nil
	case token.SHORTHAND:
		p.advance()
		return ast.ClassShorthand{Kind: ast.ShorthandKind(t.Payload)}, nil
	case token.DASH:
		p.advance()
		return ast.ClassLiteral{Char: '-'}, nil
	case token.CARET:
		p.advance()
		return ast.ClassLiteral{Char: '^'}, nil
	default:
		p.advance()
		return ast.ClassLiteral{Char: t.Payload}, nil
	}
}
