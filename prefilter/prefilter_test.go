package prefilter

import (
	"testing"

	"github.com/coregx/regexlite/literal"
)

func seqOf(lits ...string) *literal.Seq {
	out := make([]literal.Literal, len(lits))
	for i, s := range lits {
		out[i] = literal.NewLiteral([]byte(s), true)
	}
	return literal.NewSeq(out...)
}

func TestSelectPrefilterEmpty(t *testing.T) {
	if pf := selectPrefilter(nil); pf != nil {
		t.Errorf("nil seq: want nil prefilter, got %T", pf)
	}
	if pf := selectPrefilter(literal.NewSeq()); pf != nil {
		t.Errorf("empty seq: want nil prefilter, got %T", pf)
	}
}

func TestSelectPrefilterSingleByte(t *testing.T) {
	pf := selectPrefilter(seqOf("a"))
	bp, ok := pf.(*bytePrefilter)
	if !ok {
		t.Fatalf("got %T, want *bytePrefilter", pf)
	}
	if bp.needle != 'a' {
		t.Errorf("needle = %q, want 'a'", bp.needle)
	}
	if !bp.IsComplete() || bp.LiteralLen() != 1 {
		t.Errorf("single complete literal should report complete, len 1")
	}
}

func TestSelectPrefilterSubstring(t *testing.T) {
	pf := selectPrefilter(seqOf("hello"))
	sp, ok := pf.(*substringPrefilter)
	if !ok {
		t.Fatalf("got %T, want *substringPrefilter", pf)
	}
	if string(sp.needle) != "hello" {
		t.Errorf("needle = %q, want %q", sp.needle, "hello")
	}
}

func TestSelectPrefilterMultipleLiteralsUsesAhoCorasick(t *testing.T) {
	pf := selectPrefilter(seqOf("foo", "bar", "baz"))
	if _, ok := pf.(*ahoCorasickPrefilter); !ok {
		t.Fatalf("got %T, want *ahoCorasickPrefilter", pf)
	}
}

func TestBytePrefilterFind(t *testing.T) {
	pf := newBytePrefilter('x', true)
	if got := pf.Find([]byte("abcxdef"), 0); got != 3 {
		t.Errorf("Find = %d, want 3", got)
	}
	if got := pf.Find([]byte("abcxdef"), 4); got != -1 {
		t.Errorf("Find from 4 = %d, want -1", got)
	}
}

func TestSubstringPrefilterFind(t *testing.T) {
	pf := newSubstringPrefilter([]byte("needle"), false)
	haystack := []byte("hay hay hay needle stack")
	if got := pf.Find(haystack, 0); got != 12 {
		t.Errorf("Find = %d, want 12", got)
	}
	if pf.IsComplete() {
		t.Error("incomplete literal should not report IsComplete")
	}
}

func TestAhoCorasickPrefilterFind(t *testing.T) {
	pf, err := newAhoCorasickPrefilter(seqOf("cat", "dog", "fish"))
	if err != nil {
		t.Fatalf("newAhoCorasickPrefilter: %v", err)
	}
	haystack := []byte("I have a dog and a cat")
	pos := pf.Find(haystack, 0)
	if pos != 9 {
		t.Errorf("Find = %d, want 9 (dog)", pos)
	}
	if !pf.IsComplete() {
		t.Error("all-complete, equal-length literal set should report IsComplete")
	}
	if pf.LiteralLen() != 3 {
		t.Errorf("LiteralLen = %d, want 3", pf.LiteralLen())
	}
}

func TestAhoCorasickPrefilterMixedLengthNotLiteralLen(t *testing.T) {
	pf, err := newAhoCorasickPrefilter(seqOf("cat", "elephant"))
	if err != nil {
		t.Fatalf("newAhoCorasickPrefilter: %v", err)
	}
	if pf.LiteralLen() != 0 {
		t.Errorf("LiteralLen = %d, want 0 for mixed-length literal set", pf.LiteralLen())
	}
}
