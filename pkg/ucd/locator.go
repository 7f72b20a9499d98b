package ucd

import "sort"

// locateRun implements C6, the range locator: it returns the index of
// the run that codepoint c falls into, given c's property's coalesced
// boundary table. This is a direct port of the original miniucd C
// generator's miniucdGetRange, which maintains the invariant
// R[min-1] <= c < R[max-1] throughout the search; Go's sort.Search
// expresses the same upper-bound binary search without hand-rolled
// index arithmetic.
//
// boundaries must be sorted ascending (guaranteed by the coalescer, C2).
// The returned run index i satisfies:
//
//	i == 0                    if len(boundaries) == 0 || c < boundaries[0]
//	boundaries[i-1] <= c      otherwise
//	c < boundaries[i]         unless i == len(boundaries) (last run, open-ended)
func locateRun(boundaries []int32, c int32) int {
	return sort.Search(len(boundaries), func(i int) bool {
		return boundaries[i] > c
	})
}

// LocateRun is the exported form of locateRun, used by generic dispatch
// in query.go and available to callers who want the raw run index
// (e.g. to detect whether two codepoints share a run without decoding
// either value).
func LocateRun(ranges *RuneRanges, c rune) int {
	return locateRun(ranges.Boundaries, int32(c))
}
