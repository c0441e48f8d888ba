package literal

import (
	"testing"

	"github.com/coregx/regexlite/ast"
)

func strOf(lits []Literal) []string {
	out := make([]string, len(lits))
	for i, l := range lits {
		out[i] = string(l.Bytes)
	}
	return out
}

func TestExtractPrefixesLiteralConcat(t *testing.T) {
	node := ast.Concat{Parts: []ast.Node{
		ast.Literal{Char: 'a'}, ast.Literal{Char: 'b'}, ast.Literal{Char: 'c'},
	}}
	seq := New(DefaultConfig()).ExtractPrefixes(node)
	if seq.Len() != 1 || string(seq.Get(0).Bytes) != "abc" {
		t.Fatalf("got %v, want [\"abc\"]", strOf(seq.literals))
	}
	if !seq.Get(0).Complete {
		t.Error("a fully-literal concat should extract as Complete")
	}
}

func TestExtractPrefixesStopsAtDot(t *testing.T) {
	node := ast.Concat{Parts: []ast.Node{
		ast.Literal{Char: 'a'}, ast.Dot{}, ast.Literal{Char: 'c'},
	}}
	seq := New(DefaultConfig()).ExtractPrefixes(node)
	if seq.Len() != 1 || string(seq.Get(0).Bytes) != "a" {
		t.Fatalf("got %v, want [\"a\"]", strOf(seq.literals))
	}
	if seq.Get(0).Complete {
		t.Error("extraction truncated by '.' should not be Complete")
	}
}

func TestExtractPrefixesAlternationOfLiterals(t *testing.T) {
	node := ast.Alt{Options: []ast.Node{
		ast.Concat{Parts: []ast.Node{ast.Literal{Char: 'f'}, ast.Literal{Char: 'o'}, ast.Literal{Char: 'o'}}},
		ast.Concat{Parts: []ast.Node{ast.Literal{Char: 'b'}, ast.Literal{Char: 'a'}, ast.Literal{Char: 'r'}}},
	}}
	seq := New(DefaultConfig()).ExtractPrefixes(node)
	if seq.Len() != 2 {
		t.Fatalf("got %v, want 2 literals", strOf(seq.literals))
	}
	for i := 0; i < seq.Len(); i++ {
		if !seq.Get(i).Complete {
			t.Errorf("literal %d not Complete: an alternation of pure literals should be", i)
		}
	}
}

func TestExtractPrefixesSmallCharClass(t *testing.T) {
	node := ast.CharClass{Items: []ast.ClassItem{
		ast.ClassLiteral{Char: 'a'}, ast.ClassLiteral{Char: 'b'},
	}}
	seq := New(DefaultConfig()).ExtractPrefixes(node)
	if seq.Len() != 2 {
		t.Fatalf("got %v, want 2 single-char literals", strOf(seq.literals))
	}
}

func TestExtractPrefixesNegatedClassStops(t *testing.T) {
	node := ast.CharClass{Negated: true, Items: []ast.ClassItem{ast.ClassLiteral{Char: 'a'}}}
	seq := New(DefaultConfig()).ExtractPrefixes(node)
	if !seq.IsEmpty() {
		t.Fatalf("got %v, want empty (negated class yields no literal)", strOf(seq.literals))
	}
}

func TestExtractPrefixesOptionalRepeatStops(t *testing.T) {
	node := ast.Concat{Parts: []ast.Node{
		ast.Literal{Char: 'a'},
		ast.Repeat{Expr: ast.Literal{Char: 'b'}, Kind: ast.Star, M: 0, N: ast.NoLimit},
	}}
	seq := New(DefaultConfig()).ExtractPrefixes(node)
	if seq.Len() != 1 || string(seq.Get(0).Bytes) != "a" {
		t.Fatalf("got %v, want [\"a\"]", strOf(seq.literals))
	}
}

func TestExtractPrefixesMandatoryRepeat(t *testing.T) {
	node := ast.Repeat{Expr: ast.Literal{Char: 'a'}, Kind: ast.Exactly, M: 3, N: 3}
	seq := New(DefaultConfig()).ExtractPrefixes(node)
	if seq.Len() != 1 || string(seq.Get(0).Bytes) != "aaa" {
		t.Fatalf("got %v, want [\"aaa\"]", strOf(seq.literals))
	}
	if !seq.Get(0).Complete {
		t.Error("{3} of a literal is a fully-pinned match, should be Complete")
	}
}

func TestExtractPrefixesGroupTransparent(t *testing.T) {
	node := ast.Group{Index: 1, Expr: ast.Concat{Parts: []ast.Node{
		ast.Literal{Char: 'x'}, ast.Literal{Char: 'y'},
	}}}
	seq := New(DefaultConfig()).ExtractPrefixes(node)
	if seq.Len() != 1 || string(seq.Get(0).Bytes) != "xy" {
		t.Fatalf("got %v, want [\"xy\"]", strOf(seq.literals))
	}
}
