// Package regexlite implements a small, from-scratch regular expression
// engine: a hand-rolled lexer/parser/AST pipeline, a Thompson-NFA compiler,
// and a position-aware epsilon-closure matcher, wrapped in a public API in
// the spirit of the standard library's regexp package.
//
// regexlite intentionally does not implement Perl/PCRE in full. It covers
// literals, '.', anchors, the \d \D \w \W \s \S shorthands, character
// classes, groups, alternation, and the *, +, ?, {m,n} quantifiers, with
// ignore-case/multiline/dotall flags — see the per-package docs for exact
// grammar and matching semantics.
//
// Basic usage:
//
//	re, err := regexlite.Compile(`\d+`, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	match := re.Find([]byte("hello 123 world"))
//	fmt.Println(string(match)) // "123"
package regexlite

import (
	"bytes"

	"github.com/coregx/regexlite/literal"
	"github.com/coregx/regexlite/nfa"
	"github.com/coregx/regexlite/parser"
	"github.com/coregx/regexlite/prefilter"
)

// Config controls pattern-compilation limits.
type Config struct {
	// MaxRepeatExpansion bounds the number of NFA fragments a single
	// bounded quantifier ({m,n}) may unroll into. Exceeding it is a
	// rxerr.CompileError, not a panic or silent truncation.
	MaxRepeatExpansion int
}

// DefaultConfig returns the default compilation limits.
func DefaultConfig() Config {
	return Config{MaxRepeatExpansion: nfa.DefaultCompileConfig().MaxRepeatExpansion}
}

func (c Config) toNFAConfig() nfa.CompileConfig {
	return nfa.CompileConfig{MaxRepeatExpansion: c.MaxRepeatExpansion}
}

// Regex is a compiled pattern. A Regex is immutable after Compile returns
// and is safe for concurrent use by multiple goroutines (spec.md §5);
// each exported search method builds its own nfa.Matcher scratch space
// rather than sharing one across calls.
type Regex struct {
	pattern string
	flags   string
	program *nfa.NFA
	fl      nfa.Flags
	pf      prefilter.Prefilter
}

// Compile parses pattern and builds a Regex using DefaultConfig. flags is
// a string of any combination of 'i' (ignore-case), 'm' (multiline
// ^/$), 's' (dotall .); unrecognized letters are ignored.
func Compile(pattern, flags string) (*Regex, error) {
	return CompileWithConfig(pattern, flags, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern is invalid. Intended
// for patterns fixed at init time.
func MustCompile(pattern, flags string) *Regex {
	re, err := Compile(pattern, flags)
	if err != nil {
		panic("regexlite: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig is like Compile but with caller-supplied compilation
// limits.
func CompileWithConfig(pattern, flags string, config Config) (*Regex, error) {
	node, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}

	program, err := nfa.Compile(node, config.toNFAConfig())
	if err != nil {
		return nil, err
	}

	extractor := literal.New(literal.DefaultConfig())
	prefixes := extractor.ExtractPrefixes(node)
	pf := prefilter.NewBuilder(prefixes).Build()

	return &Regex{
		pattern: pattern,
		flags:   flags,
		program: program,
		fl:      nfa.ParseFlags(flags),
		pf:      pf,
	}, nil
}

// String returns the source pattern text.
func (r *Regex) String() string { return r.pattern }

// Flags returns the flag letters the pattern was compiled with.
func (r *Regex) Flags() string { return r.flags }

// NumSubexp returns the number of capturing groups in the pattern (not
// counting the implicit whole-match group 0).
func (r *Regex) NumSubexp() int { return r.program.NumGroups }

// Match is one nonoverlapping match of a pattern against a subject.
// Start/End and group spans are rune indices into the subject (spec.md
// §6's "code-unit positions" — see DESIGN.md), not byte offsets.
type Match struct {
	span   nfa.Span
	groups []*nfa.Span
}

// Span returns the match's [start, end) rune range.
func (m Match) Span() (int, int) { return m.span.Start, m.span.End }

// Group returns capture group i's [start, end) rune range (i is 1-based;
// group 0 is the whole match, available via Span). ok is false if the
// group did not participate in this match.
func (m Match) Group(i int) (start, end int, ok bool) {
	if i == 0 {
		s, e := m.Span()
		return s, e, true
	}
	if i < 1 || i > len(m.groups) || m.groups[i-1] == nil {
		return 0, 0, false
	}
	g := m.groups[i-1]
	return g.Start, g.End, true
}

func toMatches(raw []nfa.Match) []Match {
	if raw == nil {
		return nil
	}
	out := make([]Match, len(raw))
	for i, m := range raw {
		out[i] = Match{span: m.Span, groups: m.Groups}
	}
	return out
}

// newMatcher builds a fresh matcher for one search. A new Matcher per
// call (rather than one shared on Regex) keeps Regex safe to use from
// multiple goroutines simultaneously without a lock.
func (r *Regex) newMatcher() *nfa.Matcher {
	return nfa.NewMatcher(r.program, r.fl)
}

// hasRequiredLiteral reports whether subject could possibly contain a
// match, using the extracted literal prefix as a cheap existence
// pre-check: any match must begin with one of the prefilter's literals,
// so if none occurs anywhere in subject, no match is possible. This is
// the only point the prefilter is consulted — see DESIGN.md for why it
// is not used to skip candidate start positions (the prefilter works in
// byte offsets, matcher positions are rune indices).
//
// The extracted literals are the pattern's exact case-sensitive bytes,
// so this gate is skipped entirely under the ignore-case flag: the
// subject may match through a case fold the prefilter never sees (e.g.
// pattern "AbC" against "abc"), and the matcher, not the prefilter, is
// the one that understands folding.
func (r *Regex) hasRequiredLiteral(subject []byte) bool {
	if r.pf == nil || r.fl.IgnoreCase {
		return true
	}
	return r.pf.Find(subject, 0) != -1
}

// FindAll returns every nonoverlapping leftmost-longest match of the
// pattern in subject, in left-to-right order (spec.md §4.5 find_all).
func (r *Regex) FindAll(subject []byte) []Match {
	if !r.hasRequiredLiteral(subject) {
		return nil
	}
	return toMatches(r.newMatcher().FindAll(string(subject)))
}

// FindAllString is FindAll over a string subject.
func (r *Regex) FindAllString(subject string) []Match {
	return r.FindAll([]byte(subject))
}

// Match reports whether subject contains any match of the pattern.
func (r *Regex) Match(subject []byte) bool {
	return len(r.FindAll(subject)) > 0
}

// MatchString reports whether subject contains any match of the pattern.
func (r *Regex) MatchString(subject string) bool {
	return r.Match([]byte(subject))
}

// Find returns the leftmost match's text, or nil if there is none.
func (r *Regex) Find(subject []byte) []byte {
	matches := r.FindAll(subject)
	if len(matches) == 0 {
		return nil
	}
	runes := []rune(string(subject))
	s, e := matches[0].Span()
	return []byte(string(runes[s:e]))
}

// FindString is Find over a string subject.
func (r *Regex) FindString(subject string) string {
	b := r.Find([]byte(subject))
	if b == nil {
		return ""
	}
	return string(b)
}

// FindIndex returns the leftmost match's [start, end) rune range, or nil
// if there is none.
func (r *Regex) FindIndex(subject []byte) []int {
	matches := r.FindAll(subject)
	if len(matches) == 0 {
		return nil
	}
	s, e := matches[0].Span()
	return []int{s, e}
}

// Replace finds every match of the pattern in subject and reconstructs
// the subject with repl substituted at each match range; repl is emitted
// verbatim, with no backreference expansion (spec.md §4.5 replace).
// Returns the rebuilt subject and the number of matches replaced.
func (r *Regex) Replace(subject []byte, repl []byte) ([]byte, int) {
	matches := r.FindAll(subject)
	if len(matches) == 0 {
		return append([]byte(nil), subject...), 0
	}

	runes := []rune(string(subject))
	var out bytes.Buffer
	last := 0
	for _, m := range matches {
		s, e := m.Span()
		out.WriteString(string(runes[last:s]))
		out.Write(repl)
		last = e
	}
	out.WriteString(string(runes[last:]))
	return out.Bytes(), len(matches)
}

// ReplaceString is Replace over string arguments.
func (r *Regex) ReplaceString(subject, repl string) (string, int) {
	out, n := r.Replace([]byte(subject), []byte(repl))
	return string(out), n
}

// Split divides subject at each match of the pattern, returning the
// substrings between matches (spec.md §4.5 split). A pattern that never
// matches returns a single-element slice containing all of subject.
func (r *Regex) Split(subject []byte) [][]byte {
	matches := r.FindAll(subject)
	runes := []rune(string(subject))
	if len(matches) == 0 {
		return [][]byte{append([]byte(nil), subject...)}
	}

	out := make([][]byte, 0, len(matches)+1)
	last := 0
	for _, m := range matches {
		s, e := m.Span()
		out = append(out, []byte(string(runes[last:s])))
		last = e
	}
	out = append(out, []byte(string(runes[last:])))
	return out
}

// SplitString is Split over a string subject.
func (r *Regex) SplitString(subject string) []string {
	parts := r.Split([]byte(subject))
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out
}

// Descriptor is a serializable view of the compiled NFA, the shape a
// /compile-style inspection endpoint would marshal to JSON (spec.md §6).
type Descriptor struct {
	Start      int
	StateCount int
	Accepts    []int
	States     []StateDescriptor
}

// StateDescriptor describes one NFA state.
type StateDescriptor struct {
	Index              int
	Accept             bool
	Edges              []EdgeDescriptor
	EpsilonTransitions []int
	RequireBOL         bool
	RequireEOL         bool
}

// EdgeDescriptor describes one consuming transition.
type EdgeDescriptor struct {
	Kind   string
	Target int
}

// Describe returns a serializable snapshot of the compiled NFA.
func (r *Regex) Describe() Descriptor {
	d := Descriptor{
		Start:      int(r.program.Start),
		StateCount: len(r.program.States),
		States:     make([]StateDescriptor, len(r.program.States)),
	}
	for i, st := range r.program.States {
		if st.Accept {
			d.Accepts = append(d.Accepts, i)
		}
		sd := StateDescriptor{
			Index:      i,
			Accept:     st.Accept,
			RequireBOL: st.RequireBOL,
			RequireEOL: st.RequireEOL,
		}
		for _, eps := range st.Epsilons {
			sd.EpsilonTransitions = append(sd.EpsilonTransitions, int(eps))
		}
		for _, e := range st.Edges {
			sd.Edges = append(sd.Edges, EdgeDescriptor{Kind: edgeKindName(e.Kind), Target: int(e.Target)})
		}
		d.States[i] = sd
	}
	return d
}

func edgeKindName(k nfa.EdgeKind) string {
	switch k {
	case nfa.EdgeChar:
		return "char"
	case nfa.EdgeDot:
		return "dot"
	case nfa.EdgePred:
		return "pred"
	case nfa.EdgeClass:
		return "class"
	default:
		return "unknown"
	}
}
