package delta

import (
	"sync/atomic"

	"github.com/rivo/uniseg"
)

// supportUnicode holds the process-wide grapheme-counting strategy toggle.
// It defaults to true: string length and
// slicing operate on extended grapheme clusters, matching the behavior of
// the JavaScript reference implementation's use of the grapheme-splitter
// library. Servers and browsers that exchange deltas must agree on this
// setting, so it is fixed once at process start-up and never toggled
// mid-flight; storing it as an atomic only guards against the degenerate
// case of SetGraphemeMode being called from an init() in a package that's
// imported after this one, not against concurrent mutation during normal
// operation.
var supportUnicode atomic.Bool

func init() {
	supportUnicode.Store(true)
}

// SetGraphemeMode sets the process-wide string measurement strategy. When
// unicode is true (the default), string operation length and slicing count
// and cut at extended grapheme cluster boundaries. When false, they operate
// on raw bytes. Call this once, before building any Delta; changing it
// afterward makes previously computed lengths inconsistent with newly
// computed ones.
func SetGraphemeMode(unicode bool) {
	supportUnicode.Store(unicode)
}

// GraphemeMode reports the current string measurement strategy.
func GraphemeMode() bool {
	return supportUnicode.Load()
}

// stringLength returns the length of s under the current grapheme-counting
// strategy: the number of extended grapheme clusters, or the raw byte
// count.
func stringLength(s string) int {
	if s == "" {
		return 0
	}
	if !supportUnicode.Load() {
		return len(s)
	}
	return uniseg.GraphemeClusterCount(s)
}

// stringSlice splits s at position idx under the current grapheme-counting
// strategy, returning the head (first idx units) and tail (the rest).
func stringSlice(s string, idx int) (head, tail string) {
	if idx <= 0 {
		return "", s
	}
	if !supportUnicode.Load() {
		if idx >= len(s) {
			return s, ""
		}
		return s[:idx], s[idx:]
	}

	gr := uniseg.NewGraphemes(s)
	pos := 0
	byteIdx := 0
	for gr.Next() {
		if pos == idx {
			break
		}
		_, to := gr.Positions()
		byteIdx = to
		pos++
	}
	if pos < idx {
		return s, ""
	}
	return s[:byteIdx], s[byteIdx:]
}
