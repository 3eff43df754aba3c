package differ

import "slices"

// lcsTable is a flat (m+1)x(n+1) dynamic-programming table. Both alignment
// passes work on small, short-lived matrices recomputed per comparison, so
// the cells live in a single pre-sized slice instead of per-row allocations.
type lcsTable struct {
	cells []int
	cols  int
}

func newLCSTable(m, n int) lcsTable {
	return lcsTable{cells: make([]int, (m+1)*(n+1)), cols: n + 1}
}

func (t lcsTable) at(i, j int) int { return t.cells[i*t.cols+j] }
func (t lcsTable) set(i, j, v int) { t.cells[i*t.cols+j] = v }

// matchPair couples one matched element of an LCS backtrack: Old and New are
// indices into the respective input sequences.
type matchPair struct {
	Old int
	New int
}

// longestCommonSubsequence computes a maximal order-preserving set of
// matched index pairs between two sequences of lengths m and n, using the
// provided similarity predicate in place of equality. The backtrack takes a
// similar pair diagonally whenever one is available and otherwise consumes
// the old index on ties, so the output is deterministic. Matches are
// returned in ascending order of both indices.
func longestCommonSubsequence(m, n int, similar func(i, j int) bool) []matchPair {
	table := newLCSTable(m, n)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			best := table.at(i-1, j)
			if v := table.at(i, j-1); v > best {
				best = v
			}
			if similar(i-1, j-1) {
				if v := table.at(i-1, j-1) + 1; v > best {
					best = v
				}
			}
			table.set(i, j, best)
		}
	}

	matches := make([]matchPair, 0, table.at(m, n))
	i, j := m, n
	for i > 0 && j > 0 {
		switch {
		case similar(i-1, j-1):
			matches = append(matches, matchPair{Old: i - 1, New: j - 1})
			i--
			j--
		case table.at(i-1, j) >= table.at(i, j-1):
			i--
		default:
			j--
		}
	}
	slices.Reverse(matches)
	return matches
}
