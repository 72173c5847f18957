// Package ordering implements the dense display-order arithmetic shared by
// every ordered content collection. Positions within a collection are always
// the permutation 0..N-1 of the list order; deletes and moves renumber the
// survivors instead of leaving gaps.
package ordering

// Direction selects where a move operation sends an item.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection validates a client-supplied direction string.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), true
	}
	return "", false
}

// AppendPosition returns the position a newly created item receives when the
// client omits an explicit order: the current collection length.
func AppendPosition(count int) int {
	return count
}

// Normalize returns positions 0..len(ids)-1 matching the slice order. The
// input slice is assumed to already be in display order; relative order is
// preserved. The result maps id -> position.
func Normalize(ids []uint64) map[uint64]int {
	out := make(map[uint64]int, len(ids))
	for i, id := range ids {
		out[id] = i
	}
	return out
}

// Move swaps the item at index i with its neighbor in the given direction and
// returns the reordered id slice plus true. Moving the first item up or the
// last item down is a no-op and returns the input unchanged plus false.
func Move(ids []uint64, i int, dir Direction) ([]uint64, bool) {
	if i < 0 || i >= len(ids) {
		return ids, false
	}
	j := i - 1
	if dir == Down {
		j = i + 1
	}
	if j < 0 || j >= len(ids) {
		return ids, false
	}
	out := make([]uint64, len(ids))
	copy(out, ids)
	out[i], out[j] = out[j], out[i]
	return out, true
}

// IndexOf returns the index of id in ids, or -1 when absent.
func IndexOf(ids []uint64, id uint64) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// IsDense reports whether positions form exactly 0..len(positions)-1 in
// slice order.
func IsDense(positions []int) bool {
	for i, p := range positions {
		if p != i {
			return false
		}
	}
	return true
}
