// Package sokoban models the puzzle itself: the immutable Level (walls,
// targets, dimensions, start configuration), the immutable State (agent
// position plus canonically sorted box positions), the deterministic
// transition function, and the admissible nearest-target heuristic.
//
// Levels are built from the common text notation:
//
//	#######
//	#@ $ .#
//	#######
//
// with '#' walls, ' ' or '-' floor, '.' targets, '$' boxes, '*' a box on a
// target, '@' the agent and '+' the agent on a target. Parse validates
// strictly and returns a sentinel error for any malformed grid; it never
// repairs input.
//
// States carry a canonical string Key, so any strategy can deduplicate
// configurations in a plain map regardless of box ordering. All types in
// this package are safe for concurrent readers; nothing mutates after
// construction.
package sokoban
