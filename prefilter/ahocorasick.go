package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexlite/literal"
)

// ahoCorasickPrefilter scans for any of several required literals at once
// using a single Aho-Corasick automaton, rather than a separate pass per
// literal. This is the strategy for an alternation of literals too wide
// for a one-needle scan, e.g. the prefix set extracted from (cat|dog|fish).
type ahoCorasickPrefilter struct {
	automaton  *ahocorasick.Automaton
	complete   bool
	literalLen int
}

// newAhoCorasickPrefilter builds an automaton over every literal in seq.
// complete is set only when every literal in seq is itself a complete
// match (literal.Literal.Complete); in that case a single automaton hit
// settles the match outright and literalLen reports that hit's length via
// LiteralLen only when all literals share one length (the common case for
// a fixed-width alternation) — otherwise callers must use the automaton
// match span directly through FindMatch.
func newAhoCorasickPrefilter(seq *literal.Seq) (Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	complete := true
	literalLen := -1
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		if !lit.Complete {
			complete = false
		}
		if literalLen == -1 {
			literalLen = len(lit.Bytes)
		} else if literalLen != len(lit.Bytes) {
			literalLen = 0
		}
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	if literalLen < 0 {
		literalLen = 0
	}
	return &ahoCorasickPrefilter{automaton: automaton, complete: complete, literalLen: literalLen}, nil
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// FindMatch returns the [start, end) span of the first automaton hit at or
// after start, or (-1, -1) if there is none. Unlike LiteralLen, it gives
// the hit's length even when the literals have mixed lengths.
func (p *ahoCorasickPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	if start < 0 || start > len(haystack) {
		return -1, -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }

func (p *ahoCorasickPrefilter) LiteralLen() int {
	if p.complete {
		return p.literalLen
	}
	return 0
}

func (p *ahoCorasickPrefilter) HeapBytes() int { return 0 }
