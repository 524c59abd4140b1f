// gui_dirty.go - Dirty-region tracker (§4.4)

package main

// maxDirtyRects is the fixed capacity of the dirty set.
const maxDirtyRects = 4

// DirtyRect is an inclusive rectangle in screen pixels. MinX <= MaxX and
// MinY <= MaxY always hold for a rectangle in the set.
type DirtyRect struct {
	MinX, MinY, MaxX, MaxY uint32
}

func (r DirtyRect) area() uint32 {
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// union returns the smallest rectangle covering both r and other.
func (r DirtyRect) union(other DirtyRect) DirtyRect {
	c := DirtyRect{MinX: r.MinX, MaxX: r.MaxX, MinY: r.MinY, MaxY: r.MaxY}
	if other.MinX < c.MinX {
		c.MinX = other.MinX
	}
	if other.MaxX > c.MaxX {
		c.MaxX = other.MaxX
	}
	if other.MinY < c.MinY {
		c.MinY = other.MinY
	}
	if other.MaxY > c.MaxY {
		c.MaxY = other.MaxY
	}
	return c
}

// overlapArea returns the area shared by r and other, zero if disjoint.
func (r DirtyRect) overlapArea(other DirtyRect) uint32 {
	minX, maxX := r.MinX, r.MaxX
	if other.MinX > minX {
		minX = other.MinX
	}
	if other.MaxX < maxX {
		maxX = other.MaxX
	}
	minY, maxY := r.MinY, r.MaxY
	if other.MinY > minY {
		minY = other.MinY
	}
	if other.MaxY < maxY {
		maxY = other.MaxY
	}
	if minX > maxX || minY > maxY {
		return 0
	}
	return (maxX - minX + 1) * (maxY - minY + 1)
}

// dirtySet tracks up to maxDirtyRects merged dirty rectangles. Its
// invariant: the union of the set covers every pixel written to the back
// buffer since the last flush (§3, §8 invariant 3).
type dirtySet struct {
	rects []DirtyRect

	// forcedMerges counts SPEC_FULL §13's chosen resolution for slot
	// exhaustion: diagnostic only, never affects behavior.
	forcedMerges uint64
}

// Submit tries to merge new with an existing entry under the area
// heuristic (§4.4): merge when the combined rectangle wastes at most 25%
// of its area versus the actual touched area. Falls back to appending a
// new entry, and — if the set is already full and no merge was accepted —
// force-merges into the entry that minimizes wasted area (SPEC_FULL §13,
// the robustness option the spec explicitly permits).
func (d *dirtySet) Submit(next DirtyRect) {
	for i, r := range d.rects {
		comb := r.union(next)
		overlap := r.overlapArea(next)
		actual := r.area() + next.area() - overlap
		if 4*actual >= 3*comb.area() {
			d.rects[i] = comb
			return
		}
	}

	if len(d.rects) < maxDirtyRects {
		d.rects = append(d.rects, next)
		return
	}

	// All four slots are full and none accepted a cheap merge: force-merge
	// into whichever slot wastes the least additional area (SPEC_FULL §13
	// resolution of the "slot exhaustion" Open Question).
	best := 0
	bestWaste := uint32(0xFFFFFFFF)
	for i, r := range d.rects {
		comb := r.union(next)
		overlap := r.overlapArea(next)
		actual := r.area() + next.area() - overlap
		waste := comb.area() - actual
		if waste < bestWaste {
			bestWaste = waste
			best = i
		}
	}
	d.rects[best] = d.rects[best].union(next)
	d.forcedMerges++
}

// snapshotAndReset returns the current rectangles and empties the set,
// matching GuiFlushScreen's snapshot-then-clear sequencing (§4.7).
func (d *dirtySet) snapshotAndReset() []DirtyRect {
	out := d.rects
	d.rects = nil
	return out
}

func (d *dirtySet) Len() int {
	return len(d.rects)
}
