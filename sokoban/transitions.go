package sokoban

// dirs fixes the successor generation order. Every solver relies on this
// order for deterministic, reproducible traversals.
var dirs = [dirCount]Dir{Up, Down, Left, Right}

// Transitions returns the legal successor moves of s in fixed U, D, L, R
// order. For each direction the agent either walks into a free adjacent
// cell, or pushes an adjacent box when the cell beyond it is free.
// A box is only ever pushed, never pulled; nothing leaves the grid.
//
// Complexity: O(B log B) per push successor for the canonical box slice
// (B = box count), O(1) per walk successor.
func (l *Level) Transitions(s State) []Move {
	out := make([]Move, 0, dirCount)
	for _, d := range dirs {
		next := s.agent.Step(d)
		if l.Blocked(next) {
			continue
		}
		if s.HasBox(next) {
			beyond := next.Step(d)
			if l.Blocked(beyond) || s.HasBox(beyond) {
				continue
			}
			out = append(out, Move{
				Action: Action{Dir: d, Push: true},
				State:  s.withPushedBox(next, beyond),
			})

			continue
		}
		out = append(out, Move{
			Action: Action{Dir: d, Push: false},
			State:  s.withAgent(next),
		})
	}

	return out
}

// Apply executes action a on state s, returning the successor.
// It reports ok=false when a is not legal in s.
func (l *Level) Apply(s State, a Action) (State, bool) {
	for _, mv := range l.Transitions(s) {
		if mv.Action == a {
			return mv.State, true
		}
	}

	return s, false
}
