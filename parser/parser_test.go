package parser

import (
	"testing"

	"github.com/coregx/regexlite/ast"
	"github.com/coregx/regexlite/rxerr"
)

func TestParseLiteralConcat(t *testing.T) {
	node, err := Parse(`ab`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	concat, ok := node.(ast.Concat)
	if !ok || len(concat.Parts) != 2 {
		t.Fatalf("got %#v, want 2-part Concat", node)
	}
}

func TestParseAlternation(t *testing.T) {
	node, err := Parse(`ab|cd`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	alt, ok := node.(ast.Alt)
	if !ok || len(alt.Options) != 2 {
		t.Fatalf("got %#v, want 2-option Alt", node)
	}
}

func TestParseGroupNumbering(t *testing.T) {
	node, err := Parse(`(a(b)c)(d)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	concat := node.(ast.Concat)
	outer := concat.Parts[0].(ast.Group)
	if outer.Index != 1 {
		t.Errorf("outer group index = %d, want 1", outer.Index)
	}
	innerConcat := outer.Expr.(ast.Concat)
	inner := innerConcat.Parts[1].(ast.Group)
	if inner.Index != 2 {
		t.Errorf("inner group index = %d, want 2", inner.Index)
	}
	last := concat.Parts[1].(ast.Group)
	if last.Index != 3 {
		t.Errorf("last group index = %d, want 3", last.Index)
	}
}

func TestParseQuantifiers(t *testing.T) {
	tests := []struct {
		pattern  string
		wantKind ast.RepeatKind
		wantM, N int
	}{
		{`a*`, ast.Star, 0, ast.NoLimit},
		{`a+`, ast.Plus, 1, ast.NoLimit},
		{`a?`, ast.Question, 0, 1},
		{`a{3}`, ast.Exactly, 3, 3},
		{`a{3,}`, ast.AtLeast, 3, ast.NoLimit},
		{`a{3,5}`, ast.Bounded, 3, 5},
	}
	for _, tc := range tests {
		node, err := Parse(tc.pattern)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.pattern, err)
		}
		rep, ok := node.(ast.Repeat)
		if !ok {
			t.Fatalf("Parse(%q) = %#v, want ast.Repeat", tc.pattern, node)
		}
		if rep.Kind != tc.wantKind || rep.M != tc.wantM || rep.N != tc.N {
			t.Errorf("Parse(%q) = %+v, want kind=%v m=%d n=%d", tc.pattern, rep, tc.wantKind, tc.wantM, tc.N)
		}
	}
}

func TestParseStrayQuestionAfterQuantifier(t *testing.T) {
	node, err := Parse(`a*?`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	concat, ok := node.(ast.Concat)
	if !ok || len(concat.Parts) != 2 {
		t.Fatalf("got %#v, want [Repeat, Literal('?')]", node)
	}
	if _, ok := concat.Parts[0].(ast.Repeat); !ok {
		t.Errorf("part 0 = %#v, want ast.Repeat", concat.Parts[0])
	}
	lit, ok := concat.Parts[1].(ast.Literal)
	if !ok || lit.Char != '?' {
		t.Errorf("part 1 = %#v, want literal '?'", concat.Parts[1])
	}
}

func TestParseCharClass(t *testing.T) {
	node, err := Parse(`[a-z_0-9]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cc, ok := node.(ast.CharClass)
	if !ok {
		t.Fatalf("got %#v, want ast.CharClass", node)
	}
	if cc.Negated {
		t.Errorf("Negated = true, want false")
	}
	if len(cc.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(cc.Items))
	}
	if _, ok := cc.Items[0].(ast.ClassRange); !ok {
		t.Errorf("item 0 = %#v, want ClassRange", cc.Items[0])
	}
}

func TestParseNegatedCharClass(t *testing.T) {
	node, err := Parse(`[^abc]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cc := node.(ast.CharClass)
	if !cc.Negated {
		t.Errorf("Negated = false, want true")
	}
}

func TestParseEmptyPattern(t *testing.T) {
	node, err := Parse(``)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	concat, ok := node.(ast.Concat)
	if !ok || len(concat.Parts) != 0 {
		t.Fatalf("got %#v, want empty Concat", node)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		wantPos int
	}{
		{`*a`, 0},
		{`{3}a`, 0},
		{`(abc`, 0},
		{`a)`, 1},
		{`a{,3}`, 2},
		{`a{3`, 3},
		{`a{3,2}`, 1},
		{`[]`, 0},
		{`[a`, 0},
		{`[z-a]`, 1},
		{`a b)`, 3},
	}
	for _, tc := range tests {
		_, err := Parse(tc.pattern)
		if err == nil {
			t.Errorf("Parse(%q): expected error, got nil", tc.pattern)
			continue
		}
		se, ok := err.(*rxerr.SyntaxError)
		if !ok {
			t.Errorf("Parse(%q): error type = %T, want *rxerr.SyntaxError", tc.pattern, err)
			continue
		}
		if se.Pos != tc.wantPos {
			t.Errorf("Parse(%q): Pos = %d, want %d (%v)", tc.pattern, se.Pos, tc.wantPos, se)
		}
	}
}

func TestParseTrailingInput(t *testing.T) {
	_, err := Parse(`a)b`)
	if err == nil {
		t.Fatal("expected error")
	}
}
