package nfa

import (
	"unicode"

	"github.com/coregx/regexlite/internal/conv"
	"github.com/coregx/regexlite/internal/sparse"
)

// Flags selects the matching-time behaviors recognized by this engine:
// ignore-case, multiline anchors, and dotall. Unknown letters passed to
// ParseFlags are ignored (spec.md §6).
type Flags struct {
	IgnoreCase bool
	Multiline  bool
	DotAll     bool
}

// ParseFlags turns a flag-letter string ("ims" in any order/repetition)
// into a Flags value.
func ParseFlags(s string) Flags {
	var f Flags
	for _, r := range s {
		switch r {
		case 'i':
			f.IgnoreCase = true
		case 'm':
			f.Multiline = true
		case 's':
			f.DotAll = true
		}
	}
	return f
}

// Span is a half-open interval [Start, End) over rune positions of the
// subject.
type Span struct {
	Start, End int
}

// Match is one nonoverlapping match: its overall span and, for each
// capturing group 1..NumGroups in order, the group's span or nil if the
// group did not participate.
type Match struct {
	Span   Span
	Groups []*Span
}

// Matcher runs the position-aware epsilon-closure simulation described in
// spec.md §4.4 over an immutable *NFA. A Matcher holds only reusable
// scratch space; it is safe to run FindAll with different subjects from
// multiple goroutines provided each goroutine uses its own Matcher (the
// *NFA itself is immutable and safely shared, per spec.md §5).
type Matcher struct {
	nfa   *NFA
	flags Flags

	visited *sparse.SparseSet
	stack   []StateID
	frontA  []StateID
	frontB  []StateID
}

// NewMatcher prepares a Matcher bound to nfa and flags.
func NewMatcher(n *NFA, flags Flags) *Matcher {
	return &Matcher{
		nfa:     n,
		flags:   flags,
		visited: sparse.NewSparseSet(conv.IntToUint32(len(n.States))),
	}
}

// FindAll runs the per-start-position restart algorithm over subject and
// returns every nonoverlapping match in left-to-right order. Subject
// positions are rune indices, following this module's original Python
// implementation (see DESIGN.md, "code-unit positions").
func (m *Matcher) FindAll(subject string) []Match {
	runes := []rune(subject)
	var results []Match
	i := 0
	for i <= len(runes) {
		match, ok := m.matchAt(runes, i)
		if ok {
			results = append(results, match)
			if match.Span.End > i {
				i = match.Span.End
			} else {
				i++
			}
			continue
		}
		i++
	}
	return results
}

// matchAt attempts a greedy, longest match starting exactly at position i.
func (m *Matcher) matchAt(runes []rune, i int) (Match, bool) {
	groupStarts := make(map[int]int)
	groupSpans := make(map[int]Span)

	m.frontA = append(m.frontA[:0], m.nfa.Start)
	closed := m.closureAt(m.frontA, i, runes, groupStarts, groupSpans)

	bestEnd := -1
	var bestGroups map[int]Span
	if m.acceptSatisfied(closed, i, runes) {
		bestEnd = i
		bestGroups = cloneSpans(groupSpans)
	}

	j := i
	for j < len(runes) {
		stepped := m.step(closed, runes[j])
		if len(stepped) == 0 {
			break
		}
		j++
		closed = m.closureAt(stepped, j, runes, groupStarts, groupSpans)
		if m.acceptSatisfied(closed, j, runes) {
			bestEnd = j
			bestGroups = cloneSpans(groupSpans)
		}
	}

	if bestEnd == -1 {
		return Match{}, false
	}
	return Match{
		Span:   Span{Start: i, End: bestEnd},
		Groups: normalizeGroups(bestGroups, m.nfa.NumGroups),
	}, true
}

// closureAt computes the position-aware epsilon closure of seed at pos,
// gating entry on each state's RequireBOL/RequireEOL and, for every newly
// added state, recording its enter/exit group hooks into groupStarts and
// groupSpans (spec.md §4.4). The returned slice is a copy; it does not
// alias m's scratch space and is safe to use across later closureAt calls.
func (m *Matcher) closureAt(
	seed []StateID, pos int, runes []rune,
	groupStarts map[int]int, groupSpans map[int]Span,
) []StateID {
	m.visited.Clear()
	m.stack = append(m.stack[:0], seed...)

	for len(m.stack) > 0 {
		u := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]

		if m.visited.Contains(conv.IntToUint32(int(u))) {
			continue
		}
		st := &m.nfa.States[u]
		if st.RequireBOL && !atBOL(pos, runes, m.flags) {
			continue
		}
		if st.RequireEOL && !atEOL(pos, runes, m.flags) {
			continue
		}
		m.visited.Insert(conv.IntToUint32(int(u)))

		for _, g := range st.EnterGroups {
			groupStarts[g] = pos
		}
		for _, g := range st.ExitGroups {
			if start, ok := groupStarts[g]; ok {
				groupSpans[g] = Span{Start: start, End: pos}
			}
		}
		m.stack = append(m.stack, st.Epsilons...)
	}

	out := make([]StateID, 0, m.visited.Len())
	m.visited.Iter(func(v uint32) { out = append(out, StateID(v)) })
	return out
}

// step computes the set of states reachable from closed by exactly one
// consuming edge matching ch under m.flags.
func (m *Matcher) step(closed []StateID, ch rune) []StateID {
	out := m.frontB[:0]
	for _, u := range closed {
		for _, e := range m.nfa.States[u].Edges {
			if m.matchEdge(e, ch) {
				out = append(out, e.Target)
			}
		}
	}
	m.frontB = out
	return out
}

// acceptSatisfied reports whether closed contains at least one accepting
// state, and every accepting state's end-of-line requirement (if any)
// holds at pos. In this implementation closureAt already gates RequireEOL
// states at entry, so this is a defensive re-check rather than a separate
// filtering pass.
func (m *Matcher) acceptSatisfied(closed []StateID, pos int, runes []rune) bool {
	hasAccept := false
	for _, u := range closed {
		st := &m.nfa.States[u]
		if !st.Accept {
			continue
		}
		hasAccept = true
		if st.RequireEOL && !atEOL(pos, runes, m.flags) {
			return false
		}
	}
	return hasAccept
}

func (m *Matcher) matchEdge(e Edge, ch rune) bool {
	switch e.Kind {
	case EdgeChar:
		if m.flags.IgnoreCase {
			return unicode.ToLower(ch) == unicode.ToLower(e.Char)
		}
		return ch == e.Char
	case EdgeDot:
		if ch == '\n' {
			return m.flags.DotAll
		}
		return true
	case EdgePred:
		return matchPred(e.Pred, ch)
	case EdgeClass:
		return matchClass(e.Class, ch, m.flags.IgnoreCase)
	default:
		return false
	}
}

func matchPred(kind ShorthandKind, ch rune) bool {
	switch kind {
	case Digit:
		return isASCIIDigit(ch)
	case NotDigit:
		return !isASCIIDigit(ch)
	case Word:
		return isASCIIWord(ch)
	case NotWord:
		return !isASCIIWord(ch)
	case Space:
		return isASCIISpace(ch)
	case NotSpace:
		return !isASCIISpace(ch)
	default:
		return false
	}
}

func matchClass(spec ClassSpec, ch rune, ignoreCase bool) bool {
	c := ch
	if ignoreCase {
		c = unicode.ToLower(c)
	}
	hit := false
	for _, lit := range spec.Literals {
		l := lit
		if ignoreCase {
			l = unicode.ToLower(l)
		}
		if c == l {
			hit = true
			break
		}
	}
	if !hit {
		for _, rg := range spec.Ranges {
			lo, hi := rg.Lo, rg.Hi
			if ignoreCase {
				lo, hi = unicode.ToLower(lo), unicode.ToLower(hi)
			}
			if c >= lo && c <= hi {
				hit = true
				break
			}
		}
	}
	if !hit {
		for _, sh := range spec.Shorthands {
			if matchPred(sh, ch) {
				hit = true
				break
			}
		}
	}
	if spec.Negated {
		return !hit
	}
	return hit
}

// ASCII shorthand predicates (spec.md Non-goals: no Unicode property
// classes beyond these).
func isASCIIDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isASCIIWord(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || isASCIIDigit(ch)
}

func isASCIISpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func atBOL(pos int, runes []rune, flags Flags) bool {
	if pos == 0 {
		return true
	}
	return flags.Multiline && runes[pos-1] == '\n'
}

func atEOL(pos int, runes []rune, flags Flags) bool {
	n := len(runes)
	if pos == n {
		return true
	}
	return flags.Multiline && runes[pos] == '\n'
}

func cloneSpans(m map[int]Span) map[int]Span {
	out := make(map[int]Span, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// normalizeGroups turns the sparse group_spans map into a dense 0-based
// slice of length numGroups (the highest group index in the whole
// pattern), with nil for groups that did not participate in this match.
func normalizeGroups(spans map[int]Span, numGroups int) []*Span {
	if numGroups == 0 {
		return nil
	}
	out := make([]*Span, numGroups)
	for g, span := range spans {
		if g >= 1 && g <= numGroups {
			s := span
			out[g-1] = &s
		}
	}
	return out
}
