package nfa

import (
	"github.com/coregx/regexlite/ast"
	"github.com/coregx/regexlite/rxerr"
)

// CompileConfig bounds the resources a single compilation may consume,
// following the coregex meta.Config / DefaultConfig() idiom: a documented,
// validated options struct rather than bare parameters.
type CompileConfig struct {
	// MaxRepeatExpansion caps the number of fragment clones a single bounded
	// quantifier may produce. Guards against adversarial blowup from
	// patterns like a{9999999} (spec.md §5). Default 1000.
	MaxRepeatExpansion int
}

// DefaultCompileConfig returns the default resource bounds.
func DefaultCompileConfig() CompileConfig {
	return CompileConfig{MaxRepeatExpansion: 1000}
}

// Validate reports whether the configuration is usable.
func (c CompileConfig) Validate() error {
	if c.MaxRepeatExpansion <= 0 {
		return rxerr.NewCompileError("MaxRepeatExpansion must be positive, got %d", c.MaxRepeatExpansion)
	}
	return nil
}

// Compile performs Thompson construction over node, producing an immutable
// NFA (spec.md §4.3). config.MaxRepeatExpansion bounds bounded-quantifier
// expansion; exceeding it yields a *rxerr.CompileError, not a panic.
func Compile(node ast.Node, config CompileConfig) (*NFA, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := &compiler{b: newBuilder(), cfg: config}
	f, err := c.build(node)
	if err != nil {
		return nil, err
	}
	c.b.state(f.accept).Accept = true
	return &NFA{States: c.b.states, Start: f.start, NumGroups: c.maxGroup}, nil
}

type compiler struct {
	b        *builder
	cfg      CompileConfig
	maxGroup int
}

// build dispatches on node's concrete type, the exhaustive type-switch
// idiom used throughout this module for closed ast.Node variants.
func (c *compiler) build(node ast.Node) (fragment, error) {
	switch n := node.(type) {
	case ast.Literal:
		return c.buildLiteral(n), nil
	case ast.Dot:
		return c.buildDot(), nil
	case ast.Shorthand:
		return c.buildShorthand(n), nil
	case ast.CharClass:
		return c.buildCharClass(n)
	case ast.AnchorStart:
		return c.buildAnchorStart(), nil
	case ast.AnchorEnd:
		return c.buildAnchorEnd(), nil
	case ast.Group:
		return c.buildGroup(n)
	case ast.Concat:
		return c.buildConcat(n)
	case ast.Alt:
		return c.buildAlt(n)
	case ast.Repeat:
		return c.buildRepeat(n)
	default:
		return fragment{}, rxerr.NewInternalError("unreachable ast node variant %T", node)
	}
}

func (c *compiler) buildLiteral(n ast.Literal) fragment {
	s := c.b.addState()
	a := c.b.addState()
	c.b.state(s).Edges = append(c.b.state(s).Edges, Edge{Kind: EdgeChar, Char: n.Char, Target: a})
	return fragment{start: s, accept: a}
}

func (c *compiler) buildDot() fragment {
	s := c.b.addState()
	a := c.b.addState()
	c.b.state(s).Edges = append(c.b.state(s).Edges, Edge{Kind: EdgeDot, Target: a})
	return fragment{start: s, accept: a}
}

func (c *compiler) buildShorthand(n ast.Shorthand) fragment {
	s := c.b.addState()
	a := c.b.addState()
	c.b.state(s).Edges = append(c.b.state(s).Edges, Edge{Kind: EdgePred, Pred: ShorthandKind(n.Kind), Target: a})
	return fragment{start: s, accept: a}
}

func (c *compiler) buildCharClass(n ast.CharClass) (fragment, error) {
	spec := ClassSpec{Negated: n.Negated}
	for _, item := range n.Items {
		switch it := item.(type) {
		case ast.ClassLiteral:
			spec.Literals = append(spec.Literals, it.Char)
		case ast.ClassRange:
			spec.Ranges = append(spec.Ranges, ClassRange{Lo: it.Lo, Hi: it.Hi})
		case ast.ClassShorthand:
			spec.Shorthands = append(spec.Shorthands, ShorthandKind(it.Kind))
		default:
			return fragment{}, rxerr.NewInternalError("unreachable class item variant %T", item)
		}
	}
	s := c.b.addState()
	a := c.b.addState()
	c.b.state(s).Edges = append(c.b.state(s).Edges, Edge{Kind: EdgeClass, Class: spec, Target: a})
	return fragment{start: s, accept: a}, nil
}

func (c *compiler) buildAnchorStart() fragment {
	s := c.b.addState()
	a := c.b.addState()
	c.b.state(s).RequireBOL = true
	c.b.addEpsilon(s, a)
	return fragment{start: s, accept: a}
}

func (c *compiler) buildAnchorEnd() fragment {
	s := c.b.addState()
	a := c.b.addState()
	c.b.state(s).RequireEOL = true
	c.b.addEpsilon(s, a)
	return fragment{start: s, accept: a}
}

func (c *compiler) buildGroup(n ast.Group) (fragment, error) {
	inner, err := c.build(n.Expr)
	if err != nil {
		return fragment{}, err
	}
	if n.Index > c.maxGroup {
		c.maxGroup = n.Index
	}
	c.b.state(inner.start).EnterGroups = append(c.b.state(inner.start).EnterGroups, n.Index)
	c.b.state(inner.accept).ExitGroups = append(c.b.state(inner.accept).ExitGroups, n.Index)
	return inner, nil
}

func (c *compiler) buildConcat(n ast.Concat) (fragment, error) {
	if len(n.Parts) == 0 {
		s := c.b.addState()
		a := c.b.addState()
		c.b.addEpsilon(s, a)
		return fragment{start: s, accept: a}, nil
	}
	first, err := c.build(n.Parts[0])
	if err != nil {
		return fragment{}, err
	}
	curStart, curAccept := first.start, first.accept
	for _, part := range n.Parts[1:] {
		next, err := c.build(part)
		if err != nil {
			return fragment{}, err
		}
		c.b.state(curAccept).Accept = false
		c.b.addEpsilon(curAccept, next.start)
		curAccept = next.accept
	}
	return fragment{start: curStart, accept: curAccept}, nil
}

func (c *compiler) buildAlt(n ast.Alt) (fragment, error) {
	start := c.b.addState()
	accept := c.b.addState()
	for _, opt := range n.Options {
		f, err := c.build(opt)
		if err != nil {
			return fragment{}, err
		}
		c.b.addEpsilon(start, f.start)
		c.b.state(f.accept).Accept = false
		c.b.addEpsilon(f.accept, accept)
	}
	return fragment{start: start, accept: accept}, nil
}

// buildRepeat expands a quantified sub-expression into: m mandatory fresh
// clones concatenated in series, then either (n - m) further clones each
// independently bypassable (bounded case) or a single trailing
// self-looping accepting state (unbounded case). The body is built once by
// recursive compilation as an unlinked template; every iteration,
// including the first, is a deep copy of that template via builder.clone,
// so no state is shared between iterations and no clone picks up states
// linked after the template (spec.md §4.3, DESIGN.md Open Question 1).
func (c *compiler) buildRepeat(n ast.Repeat) (fragment, error) {
	m, limit := n.M, n.N
	if limit != ast.NoLimit && m > limit {
		return fragment{}, rxerr.NewCompileError("invalid repeat bounds: m=%d > n=%d", m, limit)
	}
	expansion := m
	if limit != ast.NoLimit {
		expansion = limit
	}
	if expansion == 0 {
		expansion = 1 // the loop/empty fragment itself still costs one build
	}
	if expansion > c.cfg.MaxRepeatExpansion {
		return fragment{}, rxerr.NewCompileError(
			"quantifier expansion %d exceeds cap %d", expansion, c.cfg.MaxRepeatExpansion)
	}

	var template *fragment
	freshClone := func() (fragment, error) {
		if template == nil {
			f, err := c.build(n.Expr)
			if err != nil {
				return fragment{}, err
			}
			template = &f
		}
		return c.b.clone(*template), nil
	}

	var curStart, curAccept StateID
	have := false

	for i := 0; i < m; i++ {
		f, err := freshClone()
		if err != nil {
			return fragment{}, err
		}
		if !have {
			curStart, curAccept = f.start, f.accept
			have = true
			continue
		}
		c.b.state(curAccept).Accept = false
		c.b.addEpsilon(curAccept, f.start)
		curAccept = f.accept
	}

	if limit != ast.NoLimit {
		return c.buildBoundedTail(m, limit, have, curStart, curAccept, freshClone)
	}
	return c.buildUnboundedTail(have, curStart, curAccept, freshClone)
}

// buildBoundedTail appends (limit - m) optional clones, each wired so the
// match may bypass it directly to a join state of its own — the only way
// to make iterations m+1..limit independently optional without reusing a
// single state across them.
func (c *compiler) buildBoundedTail(
	m, limit int, have bool, curStart, curAccept StateID,
	freshClone func() (fragment, error),
) (fragment, error) {
	if limit == m {
		if !have {
			s := c.b.addState()
			a := c.b.addState()
			c.b.addEpsilon(s, a)
			return fragment{start: s, accept: a}, nil
		}
		return fragment{start: curStart, accept: curAccept}, nil
	}

	for i := m; i < limit; i++ {
		f, err := freshClone()
		if err != nil {
			return fragment{}, err
		}
		join := c.b.addState()
		entry := c.b.addState()
		if have {
			c.b.state(curAccept).Accept = false
			c.b.addEpsilon(curAccept, entry)
		} else {
			curStart = entry
		}
		c.b.addEpsilon(entry, f.start)
		c.b.addEpsilon(entry, join)
		c.b.state(f.accept).Accept = false
		c.b.addEpsilon(f.accept, join)
		curAccept = join
		have = true
	}
	return fragment{start: curStart, accept: curAccept}, nil
}

// buildUnboundedTail appends a single trailing state that is itself
// accepting and loops back into one more clone of the body — so the match
// may exit after any completed iteration without an explicit join state
// per iteration (the "trailing loop" choice recorded in DESIGN.md).
func (c *compiler) buildUnboundedTail(
	have bool, curStart, curAccept StateID, freshClone func() (fragment, error),
) (fragment, error) {
	loop := c.b.addState()
	c.b.state(loop).Accept = true
	if have {
		c.b.state(curAccept).Accept = false
		c.b.addEpsilon(curAccept, loop)
	} else {
		curStart = loop
	}
	f, err := freshClone()
	if err != nil {
		return fragment{}, err
	}
	c.b.addEpsilon(loop, f.start)
	c.b.state(f.accept).Accept = false
	c.b.addEpsilon(f.accept, loop)
	return fragment{start: curStart, accept: loop}, nil
}
