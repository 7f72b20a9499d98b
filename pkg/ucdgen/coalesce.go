package ucdgen

import "sort"

// Coalesce implements C2: it turns an unordered, possibly overlapping
// set of (range, value) Records into the minimal sorted sequence of
// non-overlapping runs spanning [0, maxCP], filling any gap the input
// left unmentioned with spec.Default. Later Records win over earlier
// ones at any codepoint they both cover, matching the UCD convention
// that a file's explicit entries override its own "@missing" default
// line (modeled here as Records simply being applied in input order).
func Coalesce(spec PropertySpec, records []Record, maxCP rune) ([]Run, error) {
	if len(records) == 0 {
		return []Run{{Start: 0, End: maxCP + 1, Value: spec.Default}}, nil
	}

	// Sweep-line coalescing: since later records override earlier ones
	// at shared codepoints, we materialize value-per-boundary directly
	// rather than a generic interval-overlap count.
	type point struct {
		at      rune
		recIdx  int
		isStart bool
	}
	points := make([]point, 0, len(records)*2)
	for i, r := range records {
		points = append(points, point{at: r.From, recIdx: i, isStart: true})
		points = append(points, point{at: r.To + 1, recIdx: i, isStart: false})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].at < points[j].at })

	active := []int{} // indices into records, kept ascending; the last (latest record) wins
	var runs []Run
	var cursor rune = 0

	i := 0
	for i < len(points) {
		at := points[i].at
		if cursor < at {
			val := spec.Default
			if len(active) > 0 {
				val = records[active[len(active)-1]].Value
			}
			appendRun(&runs, cursor, at, val)
			cursor = at
		}
		for i < len(points) && points[i].at == at {
			if points[i].isStart {
				k := sort.SearchInts(active, points[i].recIdx)
				active = append(active, 0)
				copy(active[k+1:], active[k:])
				active[k] = points[i].recIdx
			} else {
				for k := len(active) - 1; k >= 0; k-- {
					if active[k] == points[i].recIdx {
						active = append(active[:k], active[k+1:]...)
						break
					}
				}
			}
			i++
		}
	}
	if cursor <= maxCP {
		val := spec.Default
		if len(active) > 0 {
			val = records[active[len(active)-1]].Value
		}
		appendRun(&runs, cursor, maxCP+1, val)
	}
	return runs, nil
}

// appendRun merges an adjacent same-value run instead of emitting a
// redundant boundary, keeping the coalesced sequence minimal (spec §4.2:
// the range table stores only where values actually change).
func appendRun(runs *[]Run, start, end rune, value string) {
	if start >= end {
		return
	}
	if n := len(*runs); n > 0 && (*runs)[n-1].Value == value && (*runs)[n-1].End == start {
		(*runs)[n-1].End = end
		return
	}
	*runs = append(*runs, Run{Start: start, End: end, Value: value})
}

// Boundaries extracts the C5-ready boundary array from a coalesced run
// sequence: every run's End except the last (which is implicitly
// maxCP+1 and never stored, per spec §3).
func Boundaries(runs []Run) []int32 {
	if len(runs) == 0 {
		return nil
	}
	b := make([]int32, 0, len(runs)-1)
	for _, r := range runs[:len(runs)-1] {
		b = append(b, int32(r.End))
	}
	return b
}
