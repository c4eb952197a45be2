package wordlist

import "iter"

// Product lazily yields the cartesian product of sets in the declared order.
// Every tuple (w1, ..., wN) has wi drawn from sets[i]. The yielded slice is
// reused between iterations and must not be retained by the caller.
// Product of no sets, or of any empty set, yields nothing.
func Product(sets ...[]string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if len(sets) == 0 {
			return
		}
		for _, s := range sets {
			if len(s) == 0 {
				return
			}
		}

		idx := make([]int, len(sets))
		tuple := make([]string, len(sets))
		for {
			for i, j := range idx {
				tuple[i] = sets[i][j]
			}
			if !yield(tuple) {
				return
			}

			// advance the odometer, rightmost position first
			pos := len(idx) - 1
			for pos >= 0 {
				idx[pos]++
				if idx[pos] < len(sets[pos]) {
					break
				}
				idx[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}

// Permutations lazily yields every ordered selection of k distinct indexes out of [0, n),
// in lexicographic order of positions (the same order as Python's itertools.permutations).
// The yielded slice is reused between iterations.
func Permutations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k <= 0 || k > n {
			return
		}
		perm := make([]int, k)
		used := make([]bool, n)
		// pos is the position currently being (re)assigned; perm[pos] holds
		// the last index tried there, or -1 if none has been tried yet.
		for i := range perm {
			perm[i] = -1
		}
		pos := 0
		for pos >= 0 {
			if perm[pos] >= 0 {
				used[perm[pos]] = false
			}
			next := perm[pos] + 1
			for next < n && used[next] {
				next++
			}
			if next == n {
				perm[pos] = -1
				pos--
				continue
			}
			perm[pos] = next
			used[next] = true
			if pos < k-1 {
				pos++
				continue
			}
			if !yield(perm) {
				return
			}
		}
	}
}
