package literal

import "github.com/coregx/regexlite/ast"

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from complex patterns:
//   - MaxLiterals: prevents memory bloat from alternations like (a|b|c|d|...)
//   - MaxLiteralLen: prevents extracting very long literals that hurt cache locality
//   - MaxClassSize: prevents expanding large character classes like [a-z]
type ExtractorConfig struct {
	MaxLiterals   int
	MaxLiteralLen int
	MaxClassSize  int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts literal sequences from a compiled syntax tree
// (package ast), for use as a prefilter ahead of the full NFA simulation.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns every literal byte string a match of node must
// begin with. Extraction stops at the first point where the pattern no
// longer determines an exact, bounded set of leading bytes — a '.', an
// unbounded or optional repeat, a negated or oversized character class,
// a shorthand predicate. Literal.Complete is true only when node's
// entire match is pinned to one of the returned byte strings (e.g. node
// is a plain alternation of fixed strings), which callers can use to
// skip the NFA entirely on a prefilter hit.
func (e *Extractor) ExtractPrefixes(node ast.Node) *Seq {
	seq, exact := e.walk(node)
	if seq.IsEmpty() {
		return seq
	}
	for i := range seq.literals {
		seq.literals[i].Complete = exact
	}
	return seq
}

// walk returns the literal possibilities contributed by node, and whether
// node resolves to nothing but that finite literal set (so a Concat
// sibling may be cross-joined into it).
func (e *Extractor) walk(node ast.Node) (*Seq, bool) {
	switch n := node.(type) {
	case ast.Literal:
		return NewSeq(NewLiteral([]byte(string(n.Char)), false)), true
	case ast.Group:
		return e.walk(n.Expr)
	case ast.Concat:
		return e.walkConcat(n.Parts)
	case ast.Alt:
		return e.walkAlt(n.Options)
	case ast.CharClass:
		return e.walkClass(n)
	case ast.Repeat:
		return e.walkRepeat(n)
	default:
		// Dot, Shorthand, AnchorStart, AnchorEnd contribute no literal bytes.
		return NewSeq(), false
	}
}

func (e *Extractor) walkConcat(parts []ast.Node) (*Seq, bool) {
	acc := NewSeq(NewLiteral(nil, false))
	for _, part := range parts {
		next, exact := e.walk(part)
		if next.IsEmpty() {
			return acc, false
		}
		joined := e.crossJoin(acc, next)
		if joined == nil {
			return acc, false
		}
		acc = joined
		if !exact {
			return acc, false
		}
	}
	return acc, true
}

func (e *Extractor) walkAlt(options []ast.Node) (*Seq, bool) {
	var all []Literal
	allExact := true
	for _, opt := range options {
		s, exact := e.walk(opt)
		if s.IsEmpty() {
			return NewSeq(), false
		}
		if !exact {
			allExact = false
		}
		for i := 0; i < s.Len(); i++ {
			all = append(all, s.Get(i))
		}
		if len(all) > e.config.MaxLiterals {
			return NewSeq(), false
		}
	}
	return &Seq{literals: all}, allExact
}

func (e *Extractor) walkClass(n ast.CharClass) (*Seq, bool) {
	if n.Negated {
		return NewSeq(), false
	}
	chars := e.expandClassChars(n)
	if len(chars) == 0 || len(chars) > e.config.MaxClassSize {
		return NewSeq(), false
	}
	lits := make([]Literal, len(chars))
	for i, c := range chars {
		lits[i] = NewLiteral([]byte(string(c)), false)
	}
	return &Seq{literals: lits}, true
}

func (e *Extractor) expandClassChars(n ast.CharClass) []rune {
	var out []rune
	for _, item := range n.Items {
		switch it := item.(type) {
		case ast.ClassLiteral:
			out = append(out, it.Char)
		case ast.ClassRange:
			for c := it.Lo; c <= it.Hi; c++ {
				out = append(out, c)
				if len(out) > e.config.MaxClassSize {
					return nil
				}
			}
		case ast.ClassShorthand:
			return nil
		}
	}
	return out
}

// walkRepeat extracts a literal prefix from the mandatory (M >= 1)
// portion of a quantified sub-expression. A Repeat whose optional tail
// could extend the match further (Plus, AtLeast, an unequal Bounded
// range) is not exact: the mandatory copies are still valid required
// prefix bytes, but extraction must stop there.
func (e *Extractor) walkRepeat(n ast.Repeat) (*Seq, bool) {
	if n.M == 0 {
		return NewSeq(), false
	}
	inner, exact := e.walk(n.Expr)
	if inner.IsEmpty() || !exact {
		return NewSeq(), false
	}
	acc := inner
	for i := 1; i < n.M; i++ {
		joined := e.crossJoin(acc, inner)
		if joined == nil {
			return NewSeq(), false
		}
		acc = joined
	}
	exactOverall := n.Kind == ast.Exactly || (n.Kind == ast.Bounded && n.M == n.N)
	return acc, exactOverall
}

// crossJoin concatenates every literal in a with every literal in b,
// capped by MaxLiterals/MaxLiteralLen; returns nil if the cap is exceeded.
func (e *Extractor) crossJoin(a, b *Seq) *Seq {
	if a.IsEmpty() {
		return b.Clone()
	}
	if b.IsEmpty() {
		return a.Clone()
	}
	out := make([]Literal, 0, a.Len()*b.Len())
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < b.Len(); j++ {
			al, bl := a.Get(i), b.Get(j)
			if len(al.Bytes)+len(bl.Bytes) > e.config.MaxLiteralLen {
				return nil
			}
			combined := make([]byte, 0, len(al.Bytes)+len(bl.Bytes))
			combined = append(combined, al.Bytes...)
			combined = append(combined, bl.Bytes...)
			out = append(out, NewLiteral(combined, false))
			if len(out) > e.config.MaxLiterals {
				return nil
			}
		}
	}
	return &Seq{literals: out}
}
