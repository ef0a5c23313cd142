package sokoban

import (
	"sort"
	"strconv"
	"strings"
)

// State is an immutable snapshot of one puzzle situation: the agent position
// plus the set of box positions. Box identity is irrelevant; the box slice is
// kept sorted row-major so that two states with the same occupancy compare
// equal. States are deduplicated by their canonical Key.
type State struct {
	agent Coord
	boxes []Coord // sorted row-major; never mutated after construction
	key   string
}

// NewState builds a State from an agent position and any box ordering.
// The box slice is copied and canonicalized; the caller keeps ownership
// of its input.
func NewState(agent Coord, boxes []Coord) State {
	bs := make([]Coord, len(boxes))
	copy(bs, boxes)
	sort.Slice(bs, func(i, j int) bool { return bs[i].less(bs[j]) })

	return newSortedState(agent, bs)
}

// newSortedState wraps an already-sorted box slice without copying.
// The slice must never be mutated afterwards.
func newSortedState(agent Coord, sorted []Coord) State {
	return State{agent: agent, boxes: sorted, key: stateKey(agent, sorted)}
}

// stateKey encodes agent and boxes into a canonical dedup key.
func stateKey(agent Coord, sorted []Coord) string {
	var b strings.Builder
	b.Grow(8 + 8*len(sorted))
	b.WriteString(strconv.Itoa(agent.R))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(agent.C))
	for _, c := range sorted {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(c.R))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.C))
	}

	return b.String()
}

// Agent returns the agent position.
func (s State) Agent() Coord { return s.agent }

// Boxes returns a copy of the box positions in canonical order.
func (s State) Boxes() []Coord {
	out := make([]Coord, len(s.boxes))
	copy(out, s.boxes)

	return out
}

// BoxCount returns the number of boxes.
func (s State) BoxCount() int { return len(s.boxes) }

// HasBox reports whether a box occupies cell c.
func (s State) HasBox(c Coord) bool {
	i := sort.Search(len(s.boxes), func(i int) bool { return !s.boxes[i].less(c) })

	return i < len(s.boxes) && s.boxes[i] == c
}

// Key returns the canonical dedup key. Two states are the same situation
// iff their keys are equal.
func (s State) Key() string { return s.key }

// Equal reports whether s and o describe the same situation.
func (s State) Equal(o State) bool { return s.key == o.key }

func (s State) String() string { return s.key }

// withAgent derives a walk successor: same boxes, new agent position.
func (s State) withAgent(agent Coord) State {
	return newSortedState(agent, s.boxes)
}

// withPushedBox derives a push successor: the box at from moves to to,
// the agent steps into from.
func (s State) withPushedBox(from, to Coord) State {
	bs := make([]Coord, 0, len(s.boxes))
	for _, b := range s.boxes {
		if b == from {
			continue
		}
		bs = append(bs, b)
	}
	bs = append(bs, to)
	sort.Slice(bs, func(i, j int) bool { return bs[i].less(bs[j]) })

	return newSortedState(from, bs)
}
