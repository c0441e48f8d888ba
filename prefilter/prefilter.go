// Package prefilter provides fast candidate-position scanning ahead of the
// full NFA simulation in package nfa.
//
// A prefilter never decides whether a pattern matches. It only narrows the
// positions the matcher has to try: given literal bytes that every match
// must begin with (package literal), it scans the subject for the next
// place one of those literals occurs and hands that position back as a
// candidate. The caller still runs the real matcher there — unless
// IsComplete reports that finding the literal already settles the match.
package prefilter

import "github.com/coregx/regexlite/literal"

// Prefilter narrows the positions worth handing to the full matcher.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or
	// -1 if none remains in haystack.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a Find hit is itself a full match, with
	// no NFA verification required.
	IsComplete() bool

	// LiteralLen returns the length of the matched literal when
	// IsComplete is true and every literal has that one length, and 0
	// otherwise.
	LiteralLen() int

	// HeapBytes reports the heap memory this prefilter holds, for
	// profiling and memory budgeting.
	HeapBytes() int
}

// Builder selects the cheapest effective Prefilter for a set of extracted
// literal prefixes.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a Builder over the literal prefixes extracted from a
// compiled pattern (see literal.Extractor.ExtractPrefixes). prefixes may be
// nil or empty, in which case Build returns nil.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build constructs the best available prefilter, or nil if the literals
// are too sparse or absent for prefiltering to help.
func (b *Builder) Build() Prefilter {
	return selectPrefilter(b.prefixes)
}

// selectPrefilter picks a strategy by literal count:
//
//	0 literals           -> nil, nothing to scan for
//	1 literal, 1 byte    -> bytePrefilter
//	1 literal, N bytes   -> substringPrefilter
//	2+ literals          -> ahoCorasickPrefilter
//
// The teacher additionally special-cases 2-8 literals of length >= 3 with
// a SIMD multi-pattern matcher (Teddy); this repo carries no hand-written
// assembly (DESIGN.md), so every multi-literal case goes straight to
// Aho-Corasick instead, which is pure Go and scales to any literal count.
func selectPrefilter(seq *literal.Seq) Prefilter {
	if seq == nil || seq.IsEmpty() {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newBytePrefilter(lit.Bytes[0], lit.Complete)
		}
		return newSubstringPrefilter(lit.Bytes, lit.Complete)
	}

	pf, err := newAhoCorasickPrefilter(seq)
	if err != nil {
		return nil
	}
	return pf
}

// bytePrefilter scans for a single required byte.
type bytePrefilter struct {
	needle   byte
	complete bool
}

func newBytePrefilter(needle byte, complete bool) Prefilter {
	return &bytePrefilter{needle: needle, complete: complete}
}

func (p *bytePrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	idx := findByte(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

func (p *bytePrefilter) IsComplete() bool { return p.complete }

func (p *bytePrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *bytePrefilter) HeapBytes() int { return 0 }

// substringPrefilter scans for a single required byte string longer than
// one byte.
type substringPrefilter struct {
	needle   []byte
	complete bool
}

func newSubstringPrefilter(needle []byte, complete bool) Prefilter {
	cp := make([]byte, len(needle))
	copy(cp, needle)
	return &substringPrefilter{needle: cp, complete: complete}
}

func (p *substringPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	idx := findSubstring(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

func (p *substringPrefilter) IsComplete() bool { return p.complete }

func (p *substringPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

func (p *substringPrefilter) HeapBytes() int { return len(p.needle) }
