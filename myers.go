package delta

// Diff's character-level comparison is an adaptation of the Myers O(ND)
// shortest-edit-script algorithm. Recommended reading:
// https://blog.jcoglan.com/2017/02/17/the-myers-diff-algorithm-part-3/
//
// Unlike a line diff, Diff needs the equal runs as well as the
// insert/delete runs — they become Retain operations carrying the
// attribute-level difference between the two sides — so the script built
// here keeps every span instead of discarding the diagonals the way a
// line-oriented diff would.

type diffKind int

const (
	diffEqual diffKind = iota
	diffInsert
	diffDelete
)

type diffSpan struct {
	Kind   diffKind
	Length int
}

// myersDiff returns the shortest edit script turning a into b, as a
// sequence of equal/insert/delete spans measured in elements of a and b.
func myersDiff(a, b []string) []diffSpan {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	trace, offset := myersShortestSeq(a, b)
	snakes := myersBacktrack(trace, len(a), len(b), offset)
	return myersScript(snakes, len(a), len(b))
}

// myersShortestSeq computes, for each edit distance d, the furthest-reaching
// x coordinate on every diagonal k (where k = x - y). M and N are the
// lengths of a and b; x indexes into a, y into b.
func myersShortestSeq(a, b []string) ([][]int, int) {
	M, N := len(a), len(b)
	V := make([]int, 2*(N+M)+1)
	offset := N + M
	trace := make([][]int, N+M+1)
	for d := 0; d <= N+M; d++ {
		newV := make([]int, len(V))
		for k := -d; k <= d; k += 2 {
			// We prioritize the maximum x value, preferring deletions to
			// insertions on a tie.
			var x int
			if k == -d || (k != d && V[k-1+offset] < V[k+1+offset]) {
				x = V[k+1+offset] // down: insert from b
			} else {
				x = V[k-1+offset] + 1 // right: delete from a
			}
			y := x - k
			for x < M && y < N && a[x] == b[y] {
				x++
				y++
			}
			V[k+offset] = x
			if x == M && y == N {
				copy(newV, V)
				trace[d] = newV
				return trace, offset
			}
		}
		copy(newV, V)
		trace[d] = newV
	}
	return trace, offset
}

// myersBacktrack walks the trace from (len(a), len(b)) back to the origin,
// recording the (x, y) coordinate reached at the end of each distance d's
// snake (a single insert-or-delete step followed by a run of diagonals).
func myersBacktrack(trace [][]int, x, y, offset int) [][]int {
	snakes := make([][]int, len(trace))
	d := len(trace) - 1
	for ; x >= 0 && y >= 0 && d > 0; d-- {
		V := trace[d]
		if len(V) == 0 {
			continue
		}
		snakes[d] = []int{x, y}

		k := x - y
		var kPrev int
		if k == -d || (k != d && V[k-1+offset] < V[k+1+offset]) {
			kPrev = k + 1
		} else {
			kPrev = k - 1
		}
		x = V[kPrev+offset]
		y = x - kPrev
	}
	if x < 0 || y < 0 {
		return snakes
	}
	snakes[d] = []int{x, y}
	return snakes
}

// myersScript replays the snakes forward, turning each step-then-diagonal
// into equal/insert/delete spans and merging adjacent spans of the same
// kind into one.
func myersScript(snakes [][]int, M, N int) []diffSpan {
	var out []diffSpan
	push := func(kind diffKind, n int) {
		if n <= 0 {
			return
		}
		if last := len(out) - 1; last >= 0 && out[last].Kind == kind {
			out[last].Length += n
			return
		}
		out = append(out, diffSpan{Kind: kind, Length: n})
	}

	x, y := 0, 0
	for _, snake := range snakes {
		if len(snake) < 2 {
			continue
		}
		if snake[0]-snake[1] > x-y {
			push(diffDelete, 1)
			x++
		} else if snake[0]-snake[1] < x-y {
			push(diffInsert, 1)
			y++
		}
		for x < snake[0] && y < snake[1] {
			push(diffEqual, 1)
			x++
			y++
		}
		if x >= M && y >= N {
			break
		}
	}
	return out
}
