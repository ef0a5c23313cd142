// Package sokoban models Sokoban puzzle instances as immutable values:
// a static Level (walls, targets, dimensions) plus lightweight State
// snapshots (agent position and box occupancy).
//
// The model guarantees standard well-formedness at construction time:
// every box and the agent start on non-wall cells inside the grid, and the
// number of boxes equals the number of targets. Violations surface as
// sentinel errors and are never silently corrected.
package sokoban

import (
	"fmt"
	"sort"
	"strings"
)

// Level is the immutable static description of one puzzle instance.
// It is constructed once, validated eagerly, and safely shareable across
// any number of concurrent solver runs.
type Level struct {
	rows, cols int
	walls      map[Coord]struct{}
	targets    map[Coord]struct{}
	targetList []Coord // sorted row-major for deterministic iteration
	startAgent Coord
	startBoxes []Coord // sorted row-major
}

// NewLevel constructs a validated Level. All input slices are copied; the
// caller keeps ownership. Validation order: dimensions, bounds, agent cell,
// box cells, duplicate boxes, box/target count parity.
func NewLevel(rows, cols int, walls, targets []Coord, agent Coord, boxes []Coord) (*Level, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrNoCells
	}

	l := &Level{
		rows:       rows,
		cols:       cols,
		walls:      make(map[Coord]struct{}, len(walls)),
		targets:    make(map[Coord]struct{}, len(targets)),
		startAgent: agent,
	}

	for _, c := range walls {
		if !l.InBounds(c) {
			return nil, fmt.Errorf("%w: wall %v", ErrOutOfBounds, c)
		}
		l.walls[c] = struct{}{}
	}
	for _, c := range targets {
		if !l.InBounds(c) {
			return nil, fmt.Errorf("%w: target %v", ErrOutOfBounds, c)
		}
		l.targets[c] = struct{}{}
	}

	if !l.InBounds(agent) {
		return nil, fmt.Errorf("%w: agent %v", ErrOutOfBounds, agent)
	}
	if l.IsWall(agent) {
		return nil, fmt.Errorf("%w: %v", ErrAgentOnWall, agent)
	}

	seen := make(map[Coord]struct{}, len(boxes))
	l.startBoxes = make([]Coord, 0, len(boxes))
	for _, c := range boxes {
		if !l.InBounds(c) {
			return nil, fmt.Errorf("%w: box %v", ErrOutOfBounds, c)
		}
		if l.IsWall(c) {
			return nil, fmt.Errorf("%w: %v", ErrBoxOnWall, c)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateBox, c)
		}
		seen[c] = struct{}{}
		l.startBoxes = append(l.startBoxes, c)
	}

	if len(l.startBoxes) != len(l.targets) {
		return nil, fmt.Errorf("%w: %d boxes, %d targets",
			ErrBoxTargetMismatch, len(l.startBoxes), len(l.targets))
	}

	sort.Slice(l.startBoxes, func(i, j int) bool { return l.startBoxes[i].less(l.startBoxes[j]) })
	l.targetList = make([]Coord, 0, len(l.targets))
	for c := range l.targets {
		l.targetList = append(l.targetList, c)
	}
	sort.Slice(l.targetList, func(i, j int) bool { return l.targetList[i].less(l.targetList[j]) })

	return l, nil
}

// Parse converts a character grid into a Level.
//
// Symbols:
//
//	#  wall
//	.  target
//	$  box
//	*  box on target
//	@  agent
//	+  agent on target
//	␣  floor (also '-')
//
// Blank lines are skipped. All remaining rows must have equal length;
// a ragged grid is rejected with ErrRaggedGrid (never padded).
func Parse(text string) (*Level, error) {
	var lines []string
	for _, row := range strings.Split(text, "\n") {
		if strings.TrimSpace(row) == "" {
			continue
		}
		lines = append(lines, row)
	}
	if len(lines) == 0 {
		return nil, ErrNoCells
	}

	cols := len(lines[0])
	var (
		walls, targets, boxes []Coord
		agent                 Coord
		agentSeen             bool
	)
	for r, row := range lines {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, r, len(row), cols)
		}
		for c, ch := range row {
			cell := Coord{R: r, C: c}
			switch ch {
			case SymWall:
				walls = append(walls, cell)
			case SymTarget:
				targets = append(targets, cell)
			case SymBox:
				boxes = append(boxes, cell)
			case SymBoxOnTarget:
				boxes = append(boxes, cell)
				targets = append(targets, cell)
			case SymAgent:
				agent, agentSeen = cell, true
			case SymAgentOnTarget:
				agent, agentSeen = cell, true
				targets = append(targets, cell)
			case SymFloor, SymFloorAlt:
				// plain floor
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownSymbol, ch, r, c)
			}
		}
	}
	if !agentSeen {
		return nil, ErrNoAgent
	}

	return NewLevel(len(lines), cols, walls, targets, agent, boxes)
}

// Rows returns the grid height.
func (l *Level) Rows() int { return l.rows }

// Cols returns the grid width.
func (l *Level) Cols() int { return l.cols }

// InBounds reports whether c lies inside the grid.
func (l *Level) InBounds(c Coord) bool {
	return c.R >= 0 && c.R < l.rows && c.C >= 0 && c.C < l.cols
}

// IsWall reports whether c is a wall cell. Out-of-grid cells are not walls;
// use Blocked for the combined test.
func (l *Level) IsWall(c Coord) bool {
	_, ok := l.walls[c]

	return ok
}

// Blocked reports whether c is impassable terrain: outside the grid or a wall.
func (l *Level) Blocked(c Coord) bool {
	return !l.InBounds(c) || l.IsWall(c)
}

// IsTarget reports whether c is a target cell.
func (l *Level) IsTarget(c Coord) bool {
	_, ok := l.targets[c]

	return ok
}

// Targets returns the target cells in row-major order.
func (l *Level) Targets() []Coord {
	out := make([]Coord, len(l.targetList))
	copy(out, l.targetList)

	return out
}

// BoxCount returns the number of boxes (equal to the number of targets).
func (l *Level) BoxCount() int { return len(l.startBoxes) }

// InitialState returns the starting snapshot of the puzzle.
func (l *Level) InitialState() State {
	return NewState(l.startAgent, l.startBoxes)
}

// IsGoal reports whether every box in s rests on a target.
// Box and target counts are equal by construction, so it suffices to check
// that each box cell is a target cell.
func (l *Level) IsGoal(s State) bool {
	for _, b := range s.boxes {
		if !l.IsTarget(b) {
			return false
		}
	}

	return true
}

// Render draws the level with state s overlaid, using the Parse symbols.
// Intended for demos and test diagnostics.
func (l *Level) Render(s State) string {
	var b strings.Builder
	b.Grow((l.cols + 1) * l.rows)
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			cell := Coord{R: r, C: c}
			var ch byte
			switch {
			case l.IsWall(cell):
				ch = SymWall
			case s.HasBox(cell) && l.IsTarget(cell):
				ch = SymBoxOnTarget
			case s.HasBox(cell):
				ch = SymBox
			case cell == s.agent && l.IsTarget(cell):
				ch = SymAgentOnTarget
			case cell == s.agent:
				ch = SymAgent
			case l.IsTarget(cell):
				ch = SymTarget
			default:
				ch = SymFloor
			}
			b.WriteByte(ch)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
