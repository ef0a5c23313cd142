package sokoban

import (
	"errors"
	"strconv"
)

// Sentinel errors raised during Level construction and parsing.
// All of them describe a malformed level; none is ever silently corrected.
var (
	// ErrNoCells indicates a level with no rows or no columns.
	ErrNoCells = errors.New("sokoban: level must have at least one row and one column")

	// ErrRaggedGrid indicates grid rows of differing lengths.
	ErrRaggedGrid = errors.New("sokoban: all grid rows must have the same length")

	// ErrOutOfBounds indicates a wall, target, box, or agent cell outside the grid.
	ErrOutOfBounds = errors.New("sokoban: cell outside the grid")

	// ErrNoAgent indicates a parsed grid without an agent symbol.
	ErrNoAgent = errors.New("sokoban: level has no agent start position")

	// ErrAgentOnWall indicates the agent starting on a wall cell.
	ErrAgentOnWall = errors.New("sokoban: agent start position is a wall cell")

	// ErrBoxOnWall indicates a box starting on a wall cell.
	ErrBoxOnWall = errors.New("sokoban: box start position is a wall cell")

	// ErrDuplicateBox indicates two boxes sharing one starting cell.
	ErrDuplicateBox = errors.New("sokoban: duplicate box start position")

	// ErrBoxTargetMismatch indicates unequal box and target counts.
	ErrBoxTargetMismatch = errors.New("sokoban: box count must equal target count")

	// ErrUnknownSymbol indicates an unrecognized character in a grid string.
	ErrUnknownSymbol = errors.New("sokoban: unknown grid symbol")
)

// Grid symbols accepted by Parse and emitted by Render.
const (
	SymWall          = '#' // wall cell
	SymFloor         = ' ' // plain floor
	SymFloorAlt      = '-' // plain floor (alternate notation)
	SymTarget        = '.' // empty target cell
	SymBox           = '$' // box on plain floor
	SymBoxOnTarget   = '*' // box resting on a target
	SymAgent         = '@' // agent on plain floor
	SymAgentOnTarget = '+' // agent standing on a target
)

// Coord addresses one grid cell as (row, column), zero-based from the top-left.
type Coord struct {
	R, C int
}

// Step returns the cell one move away from c in direction d.
func (c Coord) Step(d Dir) Coord {
	dr, dc := d.Delta()

	return Coord{R: c.R + dr, C: c.C + dc}
}

// Manhattan returns the Manhattan distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.R-o.R) + abs(c.C-o.C)
}

func (c Coord) String() string {
	return "(" + strconv.Itoa(c.R) + "," + strconv.Itoa(c.C) + ")"
}

// less orders coordinates row-major; used to keep box slices canonical.
func (c Coord) less(o Coord) bool {
	if c.R != o.R {
		return c.R < o.R
	}

	return c.C < o.C
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Dir is one of the four orthogonal movement directions.
type Dir uint8

const (
	Up Dir = iota
	Down
	Left
	Right
)

// dirCount is the number of movement directions.
const dirCount = 4

// Delta returns the (row, column) offset of one step in direction d.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Dir) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	default:
		return "R"
	}
}

// Action is one agent move: a direction tagged as a walk or a push.
type Action struct {
	Dir  Dir
	Push bool
}

// String renders the action as its direction letter; pushes carry a "!" suffix.
func (a Action) String() string {
	if a.Push {
		return a.Dir.String() + "!"
	}

	return a.Dir.String()
}

// Move pairs an Action with the State it produces.
type Move struct {
	Action Action
	State  State
}
