package sokoban_test

import (
	"testing"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// TestTransitions_Order verifies the fixed U, D, L, R successor order on an
// open cell.
func TestTransitions_Order(t *testing.T) {
	l, err := sokoban.Parse(`#####
#   #
# @ #
#  .#
##$##
#####`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	moves := l.Transitions(l.InitialState())
	want := []sokoban.Dir{sokoban.Up, sokoban.Down, sokoban.Left, sokoban.Right}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves; want %d", len(moves), len(want))
	}
	for i, mv := range moves {
		if mv.Action.Dir != want[i] {
			t.Errorf("move %d = %v; want %v", i, mv.Action.Dir, want[i])
		}
		if mv.Action.Push {
			t.Errorf("move %d marked as push on an open cell", i)
		}
	}
}

// TestTransitions_WallsAndPushes covers blocked walks, a legal push, a push
// into a wall, and a push into another box.
func TestTransitions_WallsAndPushes(t *testing.T) {
	// Agent against the left wall; box to its right with free space beyond;
	// below the agent a box backed by another box.
	l, err := sokoban.Parse(`#####
#@$ #
#$  #
#$..#
#. ##
#####`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := l.InitialState()
	moves := l.Transitions(s)

	// Up and Left hit walls. Down pushes the (2,1) box onto (3,1)? No:
	// (3,1) already holds a box, so Down is illegal too. Right pushes.
	if len(moves) != 1 {
		t.Fatalf("got %d moves (%v); want 1", len(moves), moves)
	}
	mv := moves[0]
	if mv.Action != (sokoban.Action{Dir: sokoban.Right, Push: true}) {
		t.Fatalf("move = %v; want push Right", mv.Action)
	}
	if mv.State.Agent() != (sokoban.Coord{R: 1, C: 2}) {
		t.Errorf("agent after push = %v; want (1,2)", mv.State.Agent())
	}
	if !mv.State.HasBox(sokoban.Coord{R: 1, C: 3}) || mv.State.HasBox(sokoban.Coord{R: 1, C: 2}) {
		t.Errorf("box positions after push = %v", mv.State.Boxes())
	}
}

// TestTransitions_PushIntoWall verifies a box backed by a wall cannot move.
func TestTransitions_PushIntoWall(t *testing.T) {
	l, err := sokoban.Parse(`####
#@$#
#. #
####`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, mv := range l.Transitions(l.InitialState()) {
		if mv.Action.Push {
			t.Errorf("push %v generated against a wall-backed box", mv.Action)
		}
	}
}

// TestApply covers legal replay and the rejection of illegal actions.
func TestApply(t *testing.T) {
	l, err := sokoban.Parse(microLevel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := l.InitialState()

	next, ok := l.Apply(s, sokoban.Action{Dir: sokoban.Right, Push: true})
	if !ok {
		t.Fatal("legal push rejected")
	}
	if !l.IsGoal(next) {
		t.Errorf("after push: %v not a goal", next)
	}

	if _, ok := l.Apply(s, sokoban.Action{Dir: sokoban.Up}); ok {
		t.Error("walk into a wall accepted")
	}
	// The push flag is part of the action: a plain walk Right is illegal
	// while a box stands there.
	if _, ok := l.Apply(s, sokoban.Action{Dir: sokoban.Right}); ok {
		t.Error("walk onto a box accepted")
	}
}
