package sokoban

// Heuristic estimates the remaining cost of s as the sum over boxes of the
// Manhattan distance to the nearest target. The estimate is 0 exactly on
// goal states and never exceeds the true remaining action count under
// unit costs (each push advances one box by one cell), so it is admissible
// for A*.
//
// Complexity: O(B·T) with B boxes and T targets.
func (l *Level) Heuristic(s State) int {
	total := 0
	for _, b := range s.boxes {
		best := -1
		for _, t := range l.targetList {
			d := b.Manhattan(t)
			if best < 0 || d < best {
				best = d
			}
		}
		if best > 0 {
			total += best
		}
	}

	return total
}

// IsCornerDeadlock reports whether cell c is a dead corner for a box:
// two orthogonally adjacent impassable cells forming a corner, on a
// non-target cell. A box parked there can never reach a target.
func (l *Level) IsCornerDeadlock(c Coord) bool {
	if l.IsTarget(c) {
		return false
	}
	up := l.Blocked(c.Step(Up))
	down := l.Blocked(c.Step(Down))
	left := l.Blocked(c.Step(Left))
	right := l.Blocked(c.Step(Right))

	return (up || down) && (left || right)
}
