package prefilter

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// hasSWARHint is set once at package init and used to pick between a
// byte-at-a-time scan and a word-at-a-time (SWAR) scan. The teacher gates
// its hand-written amd64 assembly on golang.org/x/sys/cpu feature flags;
// this repo carries no assembly (see DESIGN.md), so the flag instead picks
// between two portable Go scan strategies — still a legitimate use of the
// same capability hint, just without a machine-code payload behind it.
var hasSWARHint = cpu.X86.HasSSE42

const wordSize = 8

// broadcast repeats b across all 8 bytes of a uint64.
func broadcast(b byte) uint64 {
	return 0x0101010101010101 * uint64(b)
}

// hasZeroByte reports whether any byte of w is zero, using the classic
// SWAR bit trick (Knuth/HAKMEM): a byte is zero iff subtracting one from
// it borrows into a bit that wasn't already set.
func hasZeroByte(w uint64) bool {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	return (w-lo)&^w&hi != 0
}

// findByte returns the index of the first occurrence of needle in
// haystack, or -1. It scans a word at a time once hasSWARHint indicates
// the platform likes wide loads, falling back to a byte loop for the tail
// and on platforms without the hint.
func findByte(haystack []byte, needle byte) int {
	if !hasSWARHint || len(haystack) < wordSize {
		return findByteScalar(haystack, 0, needle)
	}

	mask := broadcast(needle)
	i := 0
	n := len(haystack)
	for ; i+wordSize <= n; i += wordSize {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if hasZeroByte(w ^ mask) {
			if pos := findByteScalar(haystack, i, needle); pos != -1 {
				return pos
			}
		}
	}
	return findByteScalar(haystack, i, needle)
}

func findByteScalar(haystack []byte, from int, needle byte) int {
	for i := from; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// findSubstring returns the index of the first occurrence of needle in
// haystack at or after 0, or -1. It uses findByte to locate candidates on
// needle's first byte (the "rare byte" heuristic every pack prefilter
// relies on) and verifies the remaining bytes with a direct comparison.
func findSubstring(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(haystack) {
		return -1
	}
	first := needle[0]
	limit := len(haystack) - len(needle)
	for start := 0; start <= limit; {
		rel := findByte(haystack[start:limit+1], first)
		if rel == -1 {
			return -1
		}
		pos := start + rel
		if matchesAt(haystack, needle, pos) {
			return pos
		}
		start = pos + 1
	}
	return -1
}

func matchesAt(haystack, needle []byte, pos int) bool {
	if pos+len(needle) > len(haystack) {
		return false
	}
	for i, b := range needle {
		if haystack[pos+i] != b {
			return false
		}
	}
	return true
}
