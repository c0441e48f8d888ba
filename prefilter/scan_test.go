package prefilter

import "testing"

func TestFindByte(t *testing.T) {
	cases := []struct {
		haystack string
		needle   byte
		want     int
	}{
		{"", 'a', -1},
		{"abc", 'b', 1},
		{"abcdefghijklmnop", 'p', 15},
		{"aaaaaaaaaaaaaaaa", 'b', -1},
		{"aaaaaaaaaaaaaaaab", 'b', 16},
	}
	for _, c := range cases {
		if got := findByte([]byte(c.haystack), c.needle); got != c.want {
			t.Errorf("findByte(%q, %q) = %d, want %d", c.haystack, c.needle, got, c.want)
		}
	}
}

func TestFindSubstring(t *testing.T) {
	cases := []struct {
		haystack, needle string
		want             int
	}{
		{"", "a", -1},
		{"abc", "", 0},
		{"hello world", "world", 6},
		{"aaaaaaaaaaaaaaaaaaaaneedle", "needle", 20},
		{"short", "longer than short", -1},
	}
	for _, c := range cases {
		if got := findSubstring([]byte(c.haystack), []byte(c.needle)); got != c.want {
			t.Errorf("findSubstring(%q, %q) = %d, want %d", c.haystack, c.needle, got, c.want)
		}
	}
}

func TestHasZeroByte(t *testing.T) {
	if !hasZeroByte(0x0100000000000000) {
		t.Error("expected a zero byte to be detected")
	}
	if hasZeroByte(0x0101010101010101) {
		t.Error("expected no zero byte")
	}
}
